package main

import (
	"fmt"
	"image/color"
)

// Band is the colour category of a lotto number.
type Band struct {
	Name  string
	Fill  string // hex, shared by every view
	Text  string
	Emoji string
}

var bands = [...]Band{
	{Name: "A", Fill: "#facc15", Text: "#000000", Emoji: "🟡"}, // 1-10
	{Name: "B", Fill: "#60a5fa", Text: "#000000", Emoji: "🔵"}, // 11-20
	{Name: "C", Fill: "#f87171", Text: "#000000", Emoji: "🔴"}, // 21-30
	{Name: "D", Fill: "#4b5563", Text: "#ffffff", Emoji: "⚫"}, // 31-40
	{Name: "E", Fill: "#4ade80", Text: "#000000", Emoji: "🟢"}, // 41-45
}

// BandOf maps n to its band. Values outside [1,45] are clamped.
func BandOf(n int) Band {
	switch {
	case n <= 10:
		return bands[0]
	case n <= 20:
		return bands[1]
	case n <= 30:
		return bands[2]
	case n <= 40:
		return bands[3]
	default:
		return bands[4]
	}
}

// Dark reports whether the band needs light text on top of it.
func (b Band) Dark() bool {
	return b.Text == "#ffffff"
}

func (b Band) FillColor() color.NRGBA {
	return mustHex(b.Fill)
}

func (b Band) TextColor() color.NRGBA {
	return mustHex(b.Text)
}

func parseHex(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xff}
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("invalid hex colour %q", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return c, nil
}

func mustHex(s string) color.NRGBA {
	c, err := parseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
