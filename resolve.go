package svgico

import (
	"errors"
	"fmt"
	"math"

	"github.com/Ortham/svg-to-ico/utils"
)

// ErrInvalidSize is returned when a requested icon size cannot be represented
// by an icon directory entry.
var ErrInvalidSize = errors.New("invalid icon size")

// resolveSizes checks that every requested edge length can be described by
// the container format before any rendering work is started.
func resolveSizes(sizes []uint) error {
	if len(sizes) == 0 {
		return fmt.Errorf("%w: no sizes requested", ErrInvalidSize)
	}
	for _, s := range sizes {
		if s < 1 || s > MaxEdge {
			return fmt.Errorf("%w: %d is outside the 1-256 pixel range", ErrInvalidSize, s)
		}
	}
	return nil
}

// fitToEdge scales a source of vw x vh so that its longer side matches edge
// while keeping the aspect ratio, and centres the shorter side inside the
// edge sized square. The arithmetic is symmetric for wide, tall and square
// sources and never underflows.
func fitToEdge(vw, vh float64, edge int) (w, h, ox, oy int) {
	if vw <= 0 || vh <= 0 {
		return edge, edge, 0, 0
	}
	if vw >= vh {
		w = edge
		h = int(math.Round(float64(edge) * vh / vw))
	} else {
		h = edge
		w = int(math.Round(float64(edge) * vw / vh))
	}
	w = utils.Min(utils.Max(w, 1), edge)
	h = utils.Min(utils.Max(h, 1), edge)

	return w, h, (edge - w) / 2, (edge - h) / 2
}
