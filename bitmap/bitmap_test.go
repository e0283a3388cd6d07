package bitmap

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestNewImage(t *testing.T) {
	tests := []struct {
		name    string
		w       int
		wantW   int
		wantLen int
	}{
		{"full width", Width, Width, Width},
		{"narrow", 3, 3, 3},
		{"empty", 0, 0, 0},
		{"negative clamps to empty", -4, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage(tt.w)
			if w := img.Bounds().Dx(); w != tt.wantW {
				t.Errorf("width = %d, want %d", w, tt.wantW)
			}
			if h := img.Bounds().Dy(); h != Height {
				t.Errorf("height = %d, want %d", h, Height)
			}
			if len(img.Cols) != tt.wantLen {
				t.Errorf("len(Cols) = %d, want %d", len(img.Cols), tt.wantLen)
			}
		})
	}
}

func TestImageSetGet(t *testing.T) {
	img := NewImage(4)

	img.SetIntensity(0, 0, 1)
	img.SetIntensity(3, 6, 200)
	img.SetIntensity(2, 3, 0x80)

	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 1},
		{3, 6, 200},
		{2, 3, 0x80},
		{1, 1, 0},
	}
	for _, tt := range tests {
		if got := img.IntensityAt(tt.x, tt.y); got != tt.want {
			t.Errorf("IntensityAt(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}

	// Memory layout: column major, row index inside the column.
	if img.Cols[3][6] != 200 {
		t.Errorf("Cols[3][6] = %d, want 200", img.Cols[3][6])
	}
}

func TestImageOutOfBounds(t *testing.T) {
	img := NewImage(2)

	img.SetIntensity(-1, 0, 0xFF)
	img.SetIntensity(2, 0, 0xFF)
	img.SetIntensity(0, Height, 0xFF)
	img.SetIntensity(0, -1, 0xFF)

	for x, c := range img.Cols {
		if !c.Empty() {
			t.Errorf("column %d = %v, want empty after out-of-bounds writes", x, c)
		}
	}
	if got := img.IntensityAt(5, 5); got != 0 {
		t.Errorf("IntensityAt(5, 5) = %d, want 0", got)
	}
}

func TestImageAtAndSet(t *testing.T) {
	img := NewImage(2)

	img.Set(0, 0, color.White)
	img.Set(1, 0, color.Gray{Y: 0x42})

	g, ok := img.At(0, 0).(color.Gray)
	if !ok {
		t.Fatalf("At(0, 0) returned %T, want color.Gray", img.At(0, 0))
	}
	if g.Y != 0xFF {
		t.Errorf("At(0, 0).Y = %d, want 255", g.Y)
	}
	if got := img.IntensityAt(1, 0); got != 0x42 {
		t.Errorf("IntensityAt(1, 0) = %d, want 0x42", got)
	}
}

func TestImageColorModel(t *testing.T) {
	img := NewImage(1)
	if img.ColorModel() != color.GrayModel {
		t.Error("ColorModel() did not return color.GrayModel")
	}
}

func TestImageDraw(t *testing.T) {
	img := NewImage(Width)
	draw.Draw(img, image.Rect(2, 1, 4, 3), image.NewUniform(color.White), image.Point{}, draw.Src)

	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			want := uint8(0)
			if x >= 2 && x < 4 && y >= 1 && y < 3 {
				want = 0xFF
			}
			if got := img.IntensityAt(x, y); got != want {
				t.Errorf("IntensityAt(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestColumnEmpty(t *testing.T) {
	var c Column
	if !c.Empty() {
		t.Error("zero Column should be empty")
	}
	c[Height-1] = 1
	if c.Empty() {
		t.Error("Column with a lit pixel should not be empty")
	}
}
