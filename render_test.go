package main

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"
	"time"
)

func testRenderer(t *testing.T, qr bool) *Renderer {
	t.Helper()
	r, err := NewRenderer(RendererConfig{QR: qr})
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	return r
}

func testSets(n int) []NumberSet {
	g := testGenerator(11)
	sets := make([]NumberSet, n)
	for i := range sets {
		sets[i] = g.Generate()
	}
	return sets
}

func TestRenderSize(t *testing.T) {
	r := testRenderer(t, false)
	for n := 1; n <= MaxSets; n++ {
		img, err := r.Render(testSets(n), time.Now(), "ABCDEFGHI")
		if err != nil {
			t.Fatalf("render %d: %v", n, err)
		}
		b := img.Bounds()
		if b.Dx() != 1200 || b.Dy() != (300+80*n)*2 {
			t.Fatalf("n=%d: got %dx%d", n, b.Dx(), b.Dy())
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	r := testRenderer(t, false)
	if _, err := r.Render(nil, time.Now(), "X"); !errors.Is(err, ErrEmptyTicket) {
		t.Fatalf("expected ErrEmptyTicket, got %v", err)
	}
}

func TestRenderRejectsInvalidSets(t *testing.T) {
	r := testRenderer(t, false)
	bad := []NumberSet{{ID: "bad", Numbers: [6]int{1, 2, 3, 4, 5, 46}}}
	if _, err := r.Render(bad, time.Now(), "X"); err == nil {
		t.Fatal("expected error for out of range number")
	}
	if _, err := r.Render(testSets(MaxSets+1), time.Now(), "X"); !errors.Is(err, ErrTicketFull) {
		t.Fatalf("expected ErrTicketFull, got %v", err)
	}
}

func TestRenderBadgeColours(t *testing.T) {
	r := testRenderer(t, false)
	sets := []NumberSet{
		{ID: "a", Numbers: [6]int{1, 11, 21, 31, 41, 45}},
		{ID: "b", Numbers: [6]int{10, 20, 30, 40, 42, 44}},
	}
	img, err := r.Render(sets, time.Now(), "ABCDEFGHI")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	l := DefaultLayout
	for i, s := range sets {
		y := int(l.RowY(i) * l.Scale)
		for j, n := range s.Numbers {
			// left of the digits, inside the circle
			x := int((l.BadgeCenterX(j) - l.BadgeR + 5) * l.Scale)
			got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if want := BandOf(n).FillColor(); got != want {
				t.Fatalf("row %d badge %d (%d): got %v, want %v", i, j, n, got, want)
			}
		}
	}
}

func TestRenderWithQR(t *testing.T) {
	r := testRenderer(t, true)
	if _, err := r.Render(testSets(3), time.Now(), "ABCDEFGHI"); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestEncodePNG(t *testing.T) {
	r := testRenderer(t, false)
	b, err := r.EncodePNG(testSets(2), time.Now(), "ABCDEFGHI")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 1200 || cfg.Height != 920 {
		t.Fatalf("got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestNewRendererBadFont(t *testing.T) {
	if _, err := NewRenderer(RendererConfig{FontRegular: "/nonexistent/font.ttf"}); err == nil {
		t.Fatal("expected error for missing font")
	}
}

func TestLayoutPixelSize(t *testing.T) {
	w, h := DefaultLayout.PixelSize(0)
	if w != 1200 || h != 600 {
		t.Fatalf("got %dx%d", w, h)
	}
	if got := DefaultLayout.FooterY(2); got != 260 {
		t.Fatalf("footer y = %v", got)
	}
}

func TestQRPayload(t *testing.T) {
	sets := []NumberSet{{Numbers: [6]int{1, 2, 3, 4, 5, 6}}}
	want := "LOTTO645 #ABC\nA 01 02 03 04 05 06"
	if got := qrPayload(sets, "ABC"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
