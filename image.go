package svgico

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// isSVG sniffs the payload for an svg root element. http.DetectContentType
// carries no SVG signature, so the check is done on the raw markup.
func isSVG(data []byte) bool {
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	return bytes.Contains(head, []byte("<svg"))
}

// decodeRaster decodes an already rasterised source image in any of the
// registered formats (PNG, JPEG, GIF, BMP, TIFF, WebP).
func decodeRaster(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("unable to decode the source image: %w", err)
	}
	return img, nil
}

// rescaleAll produces one frame per requested size from a raster source,
// scaling the longer side to each edge with Lanczos resampling and centring
// the result on a transparent square canvas.
func rescaleAll(src image.Image, sizes []uint) ([]*Frame, error) {
	b := src.Bounds()
	frames := make([]*Frame, len(sizes))
	for i, s := range sizes {
		edge := int(s)
		w, h, _, _ := fitToEdge(float64(b.Dx()), float64(b.Dy()), edge)
		fitted := imaging.Resize(src, w, h, imaging.Lanczos)
		canvas := imaging.PasteCenter(image.NewNRGBA(image.Rect(0, 0, edge, edge)), fitted)

		f, err := NewFrame(edge, edge, canvas.Pix)
		if err != nil {
			return nil, fmt.Errorf("size %d: %w", s, err)
		}
		frames[i] = f
	}
	return frames, nil
}
