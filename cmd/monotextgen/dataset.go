package main

import "os"
import "compress/gzip"
import "encoding/binary"

// Dataset layout: <prefix>.bin.gz holds, gzip-compressed, one record
// per sentence: two little-endian uint32 values (width, height)
// followed by width*height pixel bytes (0 or 1, row-major).
// <prefix>.idx holds one little-endian uint64 per record with its
// byte offset into the uncompressed stream, so consumers can slice
// sentences back out after decompressing.
type datasetWriter struct {
	dataFile *os.File
	indexFile *os.File
	data *gzip.Writer
	offset uint64
	closed bool
}

func newDatasetWriter(prefix string) (*datasetWriter, error) {
	dataFile, err := os.Create(prefix + ".bin.gz")
	if err != nil { return nil, err }
	indexFile, err := os.Create(prefix + ".idx")
	if err != nil {
		dataFile.Close()
		return nil, err
	}
	return &datasetWriter{
		dataFile: dataFile,
		indexFile: indexFile,
		data: gzip.NewWriter(dataFile),
	}, nil
}

func (self *datasetWriter) Append(width, height int, pixels []byte) error {
	err := binary.Write(self.indexFile, binary.LittleEndian, self.offset)
	if err != nil { return err }

	header := [2]uint32{uint32(width), uint32(height)}
	err = binary.Write(self.data, binary.LittleEndian, header)
	if err != nil { return err }
	_, err = self.data.Write(pixels)
	if err != nil { return err }

	self.offset += 8 + uint64(len(pixels))
	return nil
}

func (self *datasetWriter) Close() error {
	if self.closed { return nil }
	self.closed = true

	err := self.data.Close()
	if closeErr := self.dataFile.Close(); err == nil { err = closeErr }
	if closeErr := self.indexFile.Close(); err == nil { err = closeErr }
	return err
}
