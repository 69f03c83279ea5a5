package monotext

import "github.com/velbri/monotext/glyph"

// Renderer binds a [Font] to a fixed target height and produces the
// flat 0/1 pixel buffers that dataset builders consume. It's a thin
// convenience on top of [Font.RenderTextHeight]; use the Font
// directly if you want [bitmap.Bitmap] values instead.
type Renderer struct {
	font *Font
	targetHeight int
}

// Creates a [Renderer] that rasterizes through the given source and
// renders every sentence at the given fixed height. Negative target
// heights panic (a dev mistake, not a runtime condition).
func NewRenderer(source glyph.Source, targetHeight int) *Renderer {
	if targetHeight < 0 { panic("targetHeight < 0") }
	return &Renderer{
		font: NewFont(source),
		targetHeight: targetHeight,
	}
}

// Returns the underlying [Font], e.g. to render previews or reach
// the glyph metrics.
func (self *Renderer) Font() *Font { return self.font }

// Returns the fixed height the renderer was created with.
func (self *Renderer) TargetHeight() int { return self.targetHeight }

// Renders the given sentence and returns its dimensions along with
// a flat row-major pixel buffer holding one byte per pixel, 1 for on
// and 0 for off. The returned height always equals the renderer's
// target height on success.
func (self *Renderer) Render(sentence string) (int, int, []byte, error) {
	canvas, err := self.font.RenderTextHeight(sentence, self.targetHeight)
	if err != nil { return 0, 0, nil, err }

	bools := canvas.Pix()
	pixels := make([]byte, len(bools))
	for i, on := range bools {
		if on { pixels[i] = 1 }
	}
	return canvas.Width(), canvas.Height(), pixels, nil
}
