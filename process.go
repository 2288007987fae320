package svgico

import (
	"bytes"
	"fmt"
	"io"

	"github.com/Ortham/svg-to-ico/utils"
)

// DefaultDPI is the density used to interpret documents that declare their
// size in physical units.
const DefaultDPI = 96.0

// DefaultSizes is the size set used when the caller does not request one,
// covering the dimensions Windows expects from application icons.
var DefaultSizes = []uint{16, 20, 24, 30, 32, 36, 40, 48, 60, 64, 72, 80, 96, 128, 256}

// Processor options
type Processor struct {
	// Sizes holds the requested icon edge lengths, 1 to 256 pixels each.
	Sizes []uint

	// DPI is the density hint used to resolve the document's intrinsic size.
	DPI float64

	// Workers caps the number of sizes rasterised concurrently.
	// Zero means one worker per CPU.
	Workers int

	// Spinner is the progress indicator shown while the conversion runs.
	Spinner *utils.Spinner
}

// Process reads a vector or raster source image from r, renders it at every
// requested size and writes the assembled icon container to w. The input is
// rendered in the requested size order and the output directory preserves
// that order. Any failure aborts the whole conversion; nothing is retried.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	if p.Spinner != nil {
		p.Spinner.Start()
		defer p.Spinner.Stop()
	}

	sizes := p.Sizes
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	if err := resolveSizes(sizes); err != nil {
		return err
	}

	dpi := p.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read the source image: %w", err)
	}

	var frames []*Frame
	if isSVG(src) {
		doc, err := parseSVG(src, dpi)
		if err != nil {
			return err
		}
		if frames, err = doc.renderAll(sizes, p.Workers); err != nil {
			return err
		}
	} else {
		img, err := decodeRaster(bytes.NewReader(src))
		if err != nil {
			return err
		}
		if frames, err = rescaleAll(img, sizes); err != nil {
			return err
		}
	}

	return EncodeICO(w, frames)
}
