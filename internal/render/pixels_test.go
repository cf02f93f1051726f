package render

import (
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0, 1}
	buf := make([]byte, 4*len(cells))
	fillBinaryRGBA(buf, cells, color.White, color.Black)

	want := []byte{
		255, 255, 255, 255,
		0, 0, 0, 255,
		255, 255, 255, 255,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}
}
