package main

// Layout holds the ticket geometry in logical (unscaled) pixels.
type Layout struct {
	Scale float64

	Width      float64
	BaseHeight float64
	RowStep    float64 // canvas growth per set

	Margin     float64
	TitleY     float64
	DateY      float64
	FirstRowY  float64
	RowPitch   float64 // distance between row centres
	RowBoxX    float64
	RowBoxW    float64
	RowBoxH    float64
	LabelX     float64
	LabelR     float64
	BadgeX     float64
	BadgeStep  float64
	BadgeR     float64
	FooterBase float64
}

var DefaultLayout = Layout{
	Scale: 2,

	Width:      600,
	BaseHeight: 300,
	RowStep:    80,

	Margin:     20,
	TitleY:     70,
	DateY:      100,
	FirstRowY:  140,
	RowPitch:   70,
	RowBoxX:    40,
	RowBoxW:    520,
	RowBoxH:    60,
	LabelX:     80,
	LabelR:     20,
	BadgeX:     150,
	BadgeStep:  60,
	BadgeR:     24,
	FooterBase: 120,
}

// Height is the logical canvas height for n rows.
func (l Layout) Height(n int) float64 {
	return l.BaseHeight + l.RowStep*float64(n)
}

// PixelSize is the rasterized size for n rows.
func (l Layout) PixelSize(n int) (int, int) {
	return int(l.Width * l.Scale), int(l.Height(n) * l.Scale)
}

func (l Layout) RowY(i int) float64 {
	return l.FirstRowY + l.RowPitch*float64(i)
}

func (l Layout) BadgeCenterX(j int) float64 {
	return l.BadgeX + l.BadgeStep*float64(j)
}

func (l Layout) FooterY(n int) float64 {
	return l.FooterBase + l.RowPitch*float64(n)
}
