package svgico

import (
	"errors"
	"testing"
)

func TestNewFrame_ValidGeometry(t *testing.T) {
	f, err := NewFrame(16, 32, make([]uint8, 16*32*4))
	if err != nil {
		t.Fatalf("Should build the frame: %v", err)
	}
	if f.Width != 16 || f.Height != 32 {
		t.Errorf("Frame dimensions expected to be 16x32. Got %vx%v", f.Width, f.Height)
	}
}

func TestNewFrame_RejectsBadGeometry(t *testing.T) {
	testCases := []struct {
		name   string
		width  int
		height int
		buflen int
	}{
		{name: "zero width", width: 0, height: 16, buflen: 0},
		{name: "zero height", width: 16, height: 0, buflen: 0},
		{name: "width above 256", width: 257, height: 16, buflen: 257 * 16 * 4},
		{name: "height above 256", width: 16, height: 300, buflen: 16 * 300 * 4},
		{name: "short buffer", width: 16, height: 16, buflen: 16 * 16 * 4 / 2},
		{name: "long buffer", width: 16, height: 16, buflen: 16*16*4 + 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFrame(tc.width, tc.height, make([]uint8, tc.buflen))
			if !errors.Is(err, ErrInvalidFrame) {
				t.Errorf("Error expected to be ErrInvalidFrame. Got %v", err)
			}
		})
	}
}
