package svgico

import (
	"image"
	"testing"
)

func TestImage_IsSVG(t *testing.T) {
	testCases := []struct {
		name string
		data string
		want bool
	}{
		{name: "plain markup", data: squareSVG, want: true},
		{name: "xml prologue", data: `<?xml version="1.0"?><svg viewBox="0 0 1 1"/>`, want: true},
		{name: "png signature", data: "\x89PNG\r\n\x1a\n", want: false},
		{name: "empty", data: "", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isSVG([]byte(tc.data)); got != tc.want {
				t.Errorf("Sniff result expected to be %v. Got %v", tc.want, got)
			}
		})
	}
}

func TestImage_RescaleAllFitsLongerSide(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 32))
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 0xff
	}

	frames, err := rescaleAll(src, []uint{48, 16})
	if err != nil {
		t.Fatalf("Should rescale the raster source: %v", err)
	}

	for i, want := range []int{48, 16} {
		f := frames[i]
		if f.Width != want || f.Height != want {
			t.Errorf("Frame %v expected to be %vx%v. Got %vx%v", i, want, want, f.Width, f.Height)
		}
	}

	// A 64x32 source fitted to 48 fills a 48x24 band; the canvas corners
	// stay transparent while the centre is opaque.
	f := frames[0]
	if got := f.Pix[(2*f.Width+24)*4+3]; got != 0 {
		t.Errorf("Pixel above the content band expected to be transparent. Got alpha %v", got)
	}
	if got := f.Pix[(24*f.Width+24)*4+3]; got != 0xff {
		t.Errorf("Pixel inside the content band expected to be opaque. Got alpha %v", got)
	}
}
