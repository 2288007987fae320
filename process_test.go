package svgico

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"
)

func TestProcess_SVGSource(t *testing.T) {
	p := &Processor{Sizes: []uint{16, 32}}

	var buf bytes.Buffer
	if err := p.Process(strings.NewReader(squareSVG), &buf); err != nil {
		t.Fatalf("Should convert the SVG source: %v", err)
	}

	entries := readDirectory(t, buf.Bytes())
	if len(entries) != 2 {
		t.Fatalf("Entry count expected to be 2. Got %v", len(entries))
	}
	if entries[0].width != 16 || entries[1].width != 32 {
		t.Errorf("Entry sizes expected to be 16 and 32. Got %v and %v",
			entries[0].width, entries[1].width)
	}
}

func TestProcess_InvalidSizeBeforeRendering(t *testing.T) {
	p := &Processor{Sizes: []uint{300}}

	var buf bytes.Buffer
	// The source is not even readable markup: size validation has to reject
	// the request before any rasterisation is attempted.
	err := p.Process(strings.NewReader("garbage"), &buf)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Error expected to be ErrInvalidSize. Got %v", err)
	}

	p.Sizes = []uint{0}
	err = p.Process(strings.NewReader("garbage"), &buf)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Error expected to be ErrInvalidSize. Got %v", err)
	}
}

func TestProcess_NonSquareSource(t *testing.T) {
	p := &Processor{Sizes: []uint{48}}

	var buf bytes.Buffer
	if err := p.Process(strings.NewReader(wideSVG), &buf); err != nil {
		t.Fatalf("Should convert the wider than tall source: %v", err)
	}

	entries := readDirectory(t, buf.Bytes())
	if len(entries) != 1 || entries[0].width != 48 || entries[0].height != 48 {
		t.Errorf("Entry expected to be a single 48x48 frame. Got %+v", entries)
	}
}

func TestProcess_MalformedSVG(t *testing.T) {
	p := &Processor{Sizes: []uint{16}}

	var buf bytes.Buffer
	if err := p.Process(strings.NewReader("<svg><rect"), &buf); err == nil {
		t.Errorf("Malformed SVG input expected to fail the conversion")
	}
}

func TestProcess_RasterSource(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 6))
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 0xff
	}
	var srcBuf bytes.Buffer
	if err := png.Encode(&srcBuf, src); err != nil {
		t.Fatalf("Should encode the PNG fixture: %v", err)
	}

	p := &Processor{Sizes: []uint{16}}

	var buf bytes.Buffer
	if err := p.Process(&srcBuf, &buf); err != nil {
		t.Fatalf("Should convert the raster source: %v", err)
	}

	entries := readDirectory(t, buf.Bytes())
	if len(entries) != 1 || entries[0].width != 16 || entries[0].height != 16 {
		t.Errorf("Entry expected to be a single 16x16 frame. Got %+v", entries)
	}
}

func TestProcess_DefaultSizes(t *testing.T) {
	p := &Processor{}

	var buf bytes.Buffer
	if err := p.Process(strings.NewReader(squareSVG), &buf); err != nil {
		t.Fatalf("Should convert with the default size set: %v", err)
	}

	entries := readDirectory(t, buf.Bytes())
	if len(entries) != len(DefaultSizes) {
		t.Errorf("Entry count expected to be %v. Got %v", len(DefaultSizes), len(entries))
	}
}
