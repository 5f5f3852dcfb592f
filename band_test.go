package main

import (
	"strings"
	"testing"
)

func TestBandOf(t *testing.T) {
	cases := []struct {
		n    int
		band string
	}{
		{1, "A"}, {10, "A"},
		{11, "B"}, {20, "B"},
		{21, "C"}, {30, "C"},
		{31, "D"}, {40, "D"},
		{41, "E"}, {45, "E"},
	}
	for _, tc := range cases {
		if got := BandOf(tc.n).Name; got != tc.band {
			t.Fatalf("BandOf(%d) = %s, want %s", tc.n, got, tc.band)
		}
	}
}

func TestBandTextContrast(t *testing.T) {
	for n := 1; n <= 45; n++ {
		b := BandOf(n)
		if want := n >= 31 && n <= 40; b.Dark() != want {
			t.Fatalf("BandOf(%d).Dark() = %v, want %v", n, b.Dark(), want)
		}
	}
}

func TestBandColours(t *testing.T) {
	c := BandOf(5).FillColor()
	if c.R != 0xfa || c.G != 0xcc || c.B != 0x15 || c.A != 0xff {
		t.Fatalf("unexpected fill %v", c)
	}
	if _, err := parseHex("facc15"); err == nil {
		t.Fatal("expected error for hex without #")
	}
}

func TestChatViewUsesBands(t *testing.T) {
	loc, _ := NewLocale("en")
	set := NumberSet{ID: "x", Numbers: [6]int{3, 12, 25, 33, 41, 45}}
	text := ticketText(loc, []NumberSet{set}, false)
	for _, n := range set.Numbers {
		want := BandOf(n).Emoji + " " + formatNumbers([]int{n}, "")
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in %q", want, text)
		}
	}
}
