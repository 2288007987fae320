package svgico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
)

const (
	icoHeaderSize = 6
	icoEntrySize  = 16

	// iconResource identifies the directory as holding icons rather than cursors.
	iconResource = 1

	// bmpInfoHeaderSize is the length of a BITMAPINFOHEADER.
	bmpInfoHeaderSize = 40

	// maxFrames is the capacity of the directory's 16 bit entry count field.
	maxFrames = 0xffff
)

var (
	// ErrEmptyContainer is returned when the encoder is given no frames at all.
	ErrEmptyContainer = errors.New("icon container needs at least one frame")

	// ErrTooManyFrames is returned when the frame count cannot be stored in
	// the directory's entry count field.
	ErrTooManyFrames = errors.New("too many icon frames")
)

// payload is one encoded image inside the container. Frames that fit the
// legacy bitmap headers are stored as uncompressed BMP data; anything
// reaching 256 pixels on either side is stored as PNG, which icon readers
// accept since Windows Vista.
type payload interface {
	encode() ([]byte, error)
}

func payloadFor(f *Frame) payload {
	if f.Width >= MaxEdge || f.Height >= MaxEdge {
		return pngPayload{f}
	}
	return bmpPayload{f}
}

// EncodeICO serialises the frames into an ICO byte stream: a 6 byte header,
// one 16 byte directory entry per frame and the frame payloads, placed
// contiguously in the order the caller supplied them. Nothing is written
// until every payload has been encoded, so a failed encode leaves the
// writer untouched.
func EncodeICO(w io.Writer, frames []*Frame) error {
	if len(frames) == 0 {
		return ErrEmptyContainer
	}
	if len(frames) > maxFrames {
		return fmt.Errorf("%w: %d exceeds the 16 bit entry count", ErrTooManyFrames, len(frames))
	}

	encoded := make([][]byte, len(frames))
	for i, f := range frames {
		if err := f.validate(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		data, err := payloadFor(f).encode()
		if err != nil {
			return fmt.Errorf("frame %d (%dx%d): %w", i, f.Width, f.Height, err)
		}
		encoded[i] = data
	}

	dir := bytes.NewBuffer(make([]byte, 0, icoHeaderSize+icoEntrySize*len(frames)))
	binary.Write(dir, binary.LittleEndian, uint16(0)) // reserved
	binary.Write(dir, binary.LittleEndian, uint16(iconResource))
	binary.Write(dir, binary.LittleEndian, uint16(len(frames)))

	// Payloads start right after the directory table; each entry's offset is
	// the running total of everything placed before it.
	offset := icoHeaderSize + icoEntrySize*len(frames)
	for i, f := range frames {
		dir.WriteByte(edgeByte(f.Width))
		dir.WriteByte(edgeByte(f.Height))
		dir.WriteByte(0) // palette size, zero for truecolour
		dir.WriteByte(0) // reserved
		binary.Write(dir, binary.LittleEndian, uint16(0))  // colour planes
		binary.Write(dir, binary.LittleEndian, uint16(32)) // bits per pixel
		binary.Write(dir, binary.LittleEndian, uint32(len(encoded[i])))
		binary.Write(dir, binary.LittleEndian, uint32(offset))
		offset += len(encoded[i])
	}

	if _, err := w.Write(dir.Bytes()); err != nil {
		return err
	}
	for _, data := range encoded {
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// edgeByte serialises a directory dimension: the single byte field cannot
// hold 256, which the format encodes as 0.
func edgeByte(v int) byte {
	if v >= MaxEdge {
		return 0
	}
	return byte(v)
}

// bmpPayload is the legacy uncompressed path: a BITMAPINFOHEADER followed by
// the bottom-up BGRA pixel block and a 1 bit AND mask.
type bmpPayload struct {
	frame *Frame
}

func (p bmpPayload) encode() ([]byte, error) {
	f := p.frame

	// Mask rows are padded to 32 bit boundaries.
	maskStride := ((f.Width + 31) / 32) * 4
	pixLen := f.Width * f.Height * 4

	buf := bytes.NewBuffer(make([]byte, 0, bmpInfoHeaderSize+pixLen+maskStride*f.Height))
	binary.Write(buf, binary.LittleEndian, uint32(bmpInfoHeaderSize))
	binary.Write(buf, binary.LittleEndian, int32(f.Width))
	// The height field covers both the pixel block and the mask block.
	binary.Write(buf, binary.LittleEndian, int32(f.Height*2))
	binary.Write(buf, binary.LittleEndian, uint16(1))  // planes
	binary.Write(buf, binary.LittleEndian, uint16(32)) // bits per pixel
	binary.Write(buf, binary.LittleEndian, uint32(0))  // BI_RGB, uncompressed
	binary.Write(buf, binary.LittleEndian, uint32(pixLen))
	binary.Write(buf, binary.LittleEndian, int32(0))  // x pixels per metre
	binary.Write(buf, binary.LittleEndian, int32(0))  // y pixels per metre
	binary.Write(buf, binary.LittleEndian, uint32(0)) // palette colours
	binary.Write(buf, binary.LittleEndian, uint32(0)) // important colours

	// Pixel block: bottom row first, channels reordered from RGBA to BGRA.
	for y := f.Height - 1; y >= 0; y-- {
		row := f.Pix[y*f.Width*4 : (y+1)*f.Width*4]
		for x := 0; x < len(row); x += 4 {
			buf.WriteByte(row[x+2])
			buf.WriteByte(row[x+1])
			buf.WriteByte(row[x])
			buf.WriteByte(row[x+3])
		}
	}

	// Transparency already lives in the alpha channel, so every mask bit is
	// left clear, marking each pixel opaque to pre-alpha readers.
	buf.Write(make([]byte, maskStride*f.Height))

	return buf.Bytes(), nil
}

// pngPayload is the fallback path for frames too large for the legacy bitmap
// headers: a lossless PNG stream carrying the same straight alpha RGBA data.
type pngPayload struct {
	frame *Frame
}

func (p pngPayload) encode() ([]byte, error) {
	img := image.NewNRGBA(image.Rect(0, 0, p.frame.Width, p.frame.Height))
	copy(img.Pix, p.frame.Pix)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
