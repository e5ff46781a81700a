package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if s.Get(3, 2) != '#' {
		t.Errorf("Get(3, 2) = %q, expected '#'", s.Get(3, 2))
	}

	// Out-of-bounds writes must be ignored, reads return space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 5) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetColored(1, 1, '█', ColorCyan)
	cell := s.GetCell(1, 1)
	if cell.Rune != '█' || cell.Color != ColorCyan {
		t.Errorf("GetCell(1, 1) = %+v, expected cyan block", cell)
	}

	// Clear resets both rune and color
	s.Clear()
	cell = s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, GetCell(1, 1) = %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if got := s.Row(1); !strings.Contains(got, "hello") {
		t.Errorf("Row(1) = %q, expected to contain 'hello'", got)
	}

	// Clipped text must not panic
	s.DrawText(8, 0, "overflow")
	if s.Get(9, 0) != 'v' {
		t.Errorf("Get(9, 0) = %q, expected 'v'", s.Get(9, 0))
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(8, 4)
	s.Set(2, 2, '@')

	s.Resize(12, 6)
	if s.Get(2, 2) != '@' {
		t.Error("Resize should preserve existing content")
	}
	if s.Width() != 12 || s.Height() != 6 {
		t.Errorf("dimensions = %dx%d, expected 12x6", s.Width(), s.Height())
	}

	// Shrinking drops out-of-range content without panicking
	s.Resize(2, 2)
	if s.Get(2, 2) != ' ' {
		t.Error("shrunk screen should return space for old coordinates")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 || Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs mismatch")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionLeft) {
		t.Error("empty frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionRotateCW)
	if !f.Has(ActionLeft) || !f.Has(ActionRotateCW) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should be independent of the original")
	}
}
