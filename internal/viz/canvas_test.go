package viz

import (
	"strings"
	"testing"
)

func TestCanvas_SetAndClear(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(1, 5)
	if !c.IsSet(1, 5) {
		t.Fatal("dot not set")
	}
	if got := []rune(c.Rows()[1])[0]; got != 0x2810 {
		t.Errorf("cell = %U, want U+2810", got)
	}

	c.Set(-1, 0)
	c.Set(6, 0)
	c.Set(0, 8)

	c.Clear()
	for _, row := range c.Rows() {
		if strings.Trim(row, "⠀") != "" {
			t.Errorf("canvas not cleared: %q", row)
		}
	}
}

func TestCanvas_Line(t *testing.T) {
	c := NewCanvas(10, 3)
	c.Line(0, 0, 19, 11)
	if !c.IsSet(0, 0) || !c.IsSet(19, 11) {
		t.Error("line endpoints missing")
	}

	c.Clear()
	c.Line(5, 4, 5, 4)
	if !c.IsSet(5, 4) {
		t.Error("degenerate line should set one dot")
	}
}

func TestCanvas_FillRect(t *testing.T) {
	c := NewCanvas(4, 2)
	c.FillRect(3, 3, 1, 1)
	n := 0
	for y := 0; y < c.DotsY(); y++ {
		for x := 0; x < c.DotsX(); x++ {
			if c.IsSet(x, y) {
				n++
			}
		}
	}
	if n != 9 {
		t.Errorf("filled %d dots, want 9", n)
	}
}
