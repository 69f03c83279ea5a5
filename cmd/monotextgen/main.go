// monotextgen renders a text corpus into a dataset of fixed height
// monochrome bitmaps, one per input line.
//
// Usage:
//
//	monotextgen -font path/to/face.ttf -size 12 -height 12 \
//	    -in corpus.txt -out corpus.mono
//
// The output is a gzip-compressed stream of length-prefixed pixel
// records (see dataset.go) plus a sidecar offsets index, so consumers
// can slice individual sentences back out. With -preview, renders are
// printed to stdout as ascii art instead of being written anywhere.
package main

import "os"
import "fmt"
import "flag"
import "log"
import "bufio"

import "golang.org/x/text/unicode/norm"

import "github.com/velbri/monotext"
import "github.com/velbri/monotext/font"
import "github.com/velbri/monotext/opentype"

const progressEvery = 10000

func main() {
	log.SetFlags(0)
	log.SetPrefix("monotextgen: ")

	fontPath := flag.String("font", "", "path to the .ttf/.otf font face (required)")
	fontSize := flag.Int("size", 12, "font pixel size")
	height := flag.Int("height", 12, "fixed height of the rendered bitmaps")
	inPath := flag.String("in", "", "input corpus, one sentence per line (default stdin)")
	outPrefix := flag.String("out", "", "output prefix for the dataset files")
	preview := flag.Bool("preview", false, "print renders as ascii art instead of writing a dataset")
	flag.Parse()

	if *fontPath == "" {
		log.Fatal("missing required -font flag")
	}
	if !*preview && *outPrefix == "" {
		log.Fatal("missing required -out flag (or use -preview)")
	}

	sfntFont, fontName, err := font.ParseFromPath(*fontPath)
	if err != nil { log.Fatalf("can't load font: %s", err) }
	log.Printf("loaded font %q at %dpx, target height %d", fontName, *fontSize, *height)

	renderer := monotext.NewRenderer(opentype.NewSource(sfntFont, *fontSize), *height)

	input := os.Stdin
	if *inPath != "" {
		input, err = os.Open(*inPath)
		if err != nil { log.Fatalf("can't open corpus: %s", err) }
		defer input.Close()
	}

	if *preview {
		err = previewCorpus(renderer, input)
	} else {
		err = writeDataset(renderer, input, *outPrefix)
	}
	if err != nil { log.Fatal(err) }
}

func previewCorpus(renderer *monotext.Renderer, input *os.File) error {
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		sentence := norm.NFC.String(scanner.Text())
		canvas, err := renderer.Font().RenderTextHeight(sentence, renderer.TargetHeight())
		if err != nil {
			return fmt.Errorf("rendering %q: %w", sentence, err)
		}
		fmt.Print(canvas.String())
		fmt.Println()
	}
	return scanner.Err()
}

func writeDataset(renderer *monotext.Renderer, input *os.File, outPrefix string) error {
	writer, err := newDatasetWriter(outPrefix)
	if err != nil { return err }

	scanner := bufio.NewScanner(input)
	lineNo := 0
	for scanner.Scan() {
		lineNo += 1
		sentence := norm.NFC.String(scanner.Text())
		width, height, pixels, err := renderer.Render(sentence)
		if err != nil {
			writer.Close()
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if height != renderer.TargetHeight() {
			// renders either match the target height or fail, but the
			// dataset contract requires the check on this side too
			writer.Close()
			return fmt.Errorf("line %d: height %d != target %d", lineNo, height, renderer.TargetHeight())
		}
		err = writer.Append(width, height, pixels)
		if err != nil {
			writer.Close()
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if lineNo%progressEvery == 0 {
			log.Printf("rendered %d sentences", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		writer.Close()
		return err
	}

	err = writer.Close()
	if err != nil { return err }
	log.Printf("done: %d sentences written to %s", lineNo, outPrefix)
	return nil
}
