package svgico

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"runtime"
	"sync"

	"github.com/Ortham/svg-to-ico/utils"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// document is a parsed SVG source together with its intrinsic pixel size.
// The raw markup is kept around because every render works on its own parse:
// the icon object carries mutable target state and cannot be shared between
// rendering goroutines.
type document struct {
	src    []byte
	width  float64
	height float64
}

// parseSVG validates the SVG markup and resolves the document's intrinsic
// size. The density hint is only consulted when the document declares no
// usable viewbox, in which case it is treated as one unit square.
func parseSVG(src []byte, dpi float64) (*document, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("unable to parse the SVG document: %w", err)
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = dpi, dpi
	}
	return &document{src: src, width: w, height: h}, nil
}

// render rasterises the document into an edge sized square frame, scaling
// the longer side to the edge and centring the shorter one.
func (d *document) render(edge int) (*Frame, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(d.src))
	if err != nil {
		return nil, fmt.Errorf("unable to parse the SVG document: %w", err)
	}

	w, h, ox, oy := fitToEdge(d.width, d.height, edge)
	icon.SetTarget(float64(ox), float64(oy), float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, edge, edge))
	scanner := rasterx.NewScannerGV(edge, edge, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(edge, edge, scanner), 1.0)

	return NewFrame(edge, edge, rgbaToStraight(img))
}

// renderAll rasterises every requested size, fanning the work out to at most
// workers goroutines. Each result is slotted back by index so the frame
// order always matches the requested size order.
func (d *document) renderAll(sizes []uint, workers int) ([]*Frame, error) {
	frames := make([]*Frame, len(sizes))
	errs := make([]error, len(sizes))

	if workers < 1 {
		workers = runtime.NumCPU()
	}
	workers = utils.Min(workers, len(sizes))

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				frames[i], errs[i] = d.render(int(sizes[i]))
			}
		}()
	}
	for i := range sizes {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("size %d: %w", sizes[i], err)
		}
	}
	return frames, nil
}

// rgbaToStraight converts the rasteriser's premultiplied output into the
// straight alpha layout icon payloads use.
func rgbaToStraight(img *image.RGBA) []uint8 {
	b := img.Bounds()
	pix := make([]uint8, 0, b.Dx()*b.Dy()*4)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.RGBAAt(x, y)).(color.NRGBA)
			pix = append(pix, c.R, c.G, c.B, c.A)
		}
	}
	return pix
}
