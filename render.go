package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	colorBackground = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	colorBorder     = mustHex("#d1d5db")
	colorTitle      = mustHex("#1f2937")
	colorMuted      = mustHex("#6b7280")
	colorFaint      = mustHex("#9ca3af")
	colorRowFill    = mustHex("#f9fafb")
	colorRowLine    = mustHex("#e5e7eb")
	colorLabelTop   = mustHex("#a855f7")
	colorLabelBtm   = mustHex("#ec4899")
	colorShadow     = color.NRGBA{0, 0, 0, 26}
)

type RendererConfig struct {
	Layout      Layout
	Locale      *Locale
	FontRegular string // TTF path, Go Regular when empty
	FontBold    string
	QR          bool
}

// Renderer rasterizes tickets. It is safe for concurrent use; font faces
// are created per call.
type Renderer struct {
	layout  Layout
	loc     *Locale
	regular *truetype.Font
	bold    *truetype.Font
	mono    *truetype.Font
	qr      bool
}

func NewRenderer(cfg RendererConfig) (*Renderer, error) {
	if cfg.Layout.Scale == 0 {
		cfg.Layout = DefaultLayout
	}
	loc := cfg.Locale
	if loc == nil {
		loc, _ = NewLocale("en")
	}

	regular, err := loadFont(cfg.FontRegular, goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := loadFont(cfg.FontBold, gobold.TTF)
	if err != nil {
		return nil, err
	}
	mono, err := loadFont("", gomono.TTF)
	if err != nil {
		return nil, err
	}

	// Go fonts have no Hangul glyphs
	if cfg.FontRegular == "" || cfg.FontBold == "" {
		loc, _ = NewLocale("en")
	}

	return &Renderer{
		layout:  cfg.Layout,
		loc:     loc,
		regular: regular,
		bold:    bold,
		mono:    mono,
		qr:      cfg.QR,
	}, nil
}

func loadFont(path string, fallback []byte) (*truetype.Font, error) {
	b := fallback
	if path != "" {
		var err error
		if b, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read font file: %w", err)
		}
	}
	f, err := truetype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return f, nil
}

func validateSets(sets []NumberSet) error {
	if len(sets) == 0 {
		return ErrEmptyTicket
	}
	if len(sets) > MaxSets {
		return fmt.Errorf("%d sets: %w", len(sets), ErrTicketFull)
	}
	for _, s := range sets {
		for i, n := range s.Numbers {
			if n < lottoMin || n > lottoMax || (i > 0 && n <= s.Numbers[i-1]) {
				return fmt.Errorf("set %s has invalid numbers %v", s.ID, s.Numbers)
			}
		}
	}
	return nil
}

// Render draws the ticket at the layout's scale.
func (r *Renderer) Render(sets []NumberSet, now time.Time, issueNo string) (image.Image, error) {
	if err := validateSets(sets); err != nil {
		return nil, err
	}

	l := r.layout
	n := len(sets)
	w, h := l.PixelSize(n)
	s := func(v float64) float64 { return v * l.Scale }

	dc := gg.NewContext(w, h)
	dc.SetColor(colorBackground)
	dc.Clear()

	// 테두리
	dc.SetColor(colorBorder)
	dc.SetLineWidth(s(2))
	dc.SetDash(s(10), s(5))
	dc.DrawRectangle(s(l.Margin), s(l.Margin), s(l.Width-2*l.Margin), s(l.Height(n)-2*l.Margin))
	dc.Stroke()
	dc.SetDash()

	cx := s(l.Width / 2)

	dc.SetFontFace(r.face(r.bold, s(36)))
	dc.SetColor(colorTitle)
	dc.DrawStringAnchored("LOTTO 6/45", cx, s(l.TitleY), 0.5, 0)

	dc.SetFontFace(r.face(r.regular, s(16)))
	dc.SetColor(colorMuted)
	dc.DrawStringAnchored(r.loc.Date(now), cx, s(l.DateY), 0.5, 0)

	for i := range sets {
		y := l.RowY(i)
		dc.SetColor(colorRowFill)
		dc.DrawRectangle(s(l.RowBoxX), s(y-l.RowBoxH/2), s(l.RowBoxW), s(l.RowBoxH))
		dc.Fill()
		dc.SetColor(colorRowLine)
		dc.SetLineWidth(s(1))
		dc.DrawRectangle(s(l.RowBoxX), s(y-l.RowBoxH/2), s(l.RowBoxW), s(l.RowBoxH))
		dc.Stroke()
	}

	dc.DrawImage(r.shadows(sets, w, h), 0, 0)

	labelFace := r.face(r.bold, s(16))
	numFace := r.face(r.bold, s(18))
	for i, set := range sets {
		y := l.RowY(i)

		grad := gg.NewLinearGradient(s(l.LabelX), s(y-l.LabelR), s(l.LabelX), s(y+l.LabelR))
		grad.AddColorStop(0, colorLabelTop)
		grad.AddColorStop(1, colorLabelBtm)
		dc.SetFillStyle(grad)
		dc.DrawCircle(s(l.LabelX), s(y), s(l.LabelR))
		dc.Fill()

		dc.SetFontFace(labelFace)
		dc.SetColor(colorBackground)
		dc.DrawStringAnchored(Label(i), s(l.LabelX), s(y), 0.5, 0.5)

		dc.SetFontFace(numFace)
		for j, num := range set.Numbers {
			x := l.BadgeCenterX(j)
			b := BandOf(num)
			dc.SetColor(b.FillColor())
			dc.DrawCircle(s(x), s(y), s(l.BadgeR))
			dc.Fill()
			dc.SetColor(b.TextColor())
			dc.DrawStringAnchored(fmt.Sprint(num), s(x), s(y), 0.5, 0.5)
		}
	}

	bottomY := l.FooterY(n)
	dc.SetColor(colorRowLine)
	dc.SetLineWidth(s(2))
	dc.DrawLine(s(l.RowBoxX), s(bottomY+20), s(l.RowBoxX+l.RowBoxW), s(bottomY+20))
	dc.Stroke()

	dc.SetFontFace(r.face(r.regular, s(14)))
	dc.SetColor(colorMuted)
	dc.DrawStringAnchored(r.loc.T(msgIssueNo), cx, s(bottomY+50), 0.5, 0)

	dc.SetFontFace(r.face(r.mono, s(12)))
	dc.SetColor(colorFaint)
	dc.DrawStringAnchored("#"+issueNo, cx, s(bottomY+70), 0.5, 0)

	dc.SetFontFace(r.face(r.regular, s(12)))
	dc.DrawStringAnchored(r.loc.T(msgDisclaimer), cx, s(bottomY+100), 0.5, 0)
	dc.DrawStringAnchored(r.loc.T(msgGoodLuck), cx, s(bottomY+120), 0.5, 0)

	dc.SetFontFace(r.face(r.regular, s(11)))
	dc.SetColor(colorBorder)
	dc.DrawStringAnchored(copyrightLine, cx, s(bottomY+150), 0.5, 0)

	if r.qr {
		qr, err := qrcode.New(qrPayload(sets, issueNo), qrcode.Medium)
		if err != nil {
			return nil, fmt.Errorf("failed to encode QR code: %w", err)
		}
		qr.DisableBorder = true
		size := int(s(56))
		dc.DrawImage(qr.Image(size), int(s(l.RowBoxX+l.RowBoxW))-size, int(s(bottomY+40)))
	}

	return dc.Image(), nil
}

// shadows returns a transparent layer with the blurred badge shadows.
func (r *Renderer) shadows(sets []NumberSet, w, h int) image.Image {
	l := r.layout
	s := func(v float64) float64 { return v * l.Scale }

	layer := gg.NewContext(w, h)
	layer.SetColor(colorShadow)
	for i := range sets {
		y := l.RowY(i) + 2
		for j := range lottoPickCnt {
			layer.DrawCircle(s(l.BadgeCenterX(j)), s(y), s(l.BadgeR))
		}
	}
	layer.Fill()
	return imaging.Blur(layer.Image(), s(4)/2)
}

func (r *Renderer) face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull})
}

func qrPayload(sets []NumberSet, issueNo string) string {
	var sb strings.Builder
	sb.WriteString("LOTTO645 #")
	sb.WriteString(issueNo)
	for i, set := range sets {
		fmt.Fprintf(&sb, "\n%s %s", Label(i), formatNumbers(set.Numbers[:], " "))
	}
	return sb.String()
}

func formatNumbers(nums []int, sep string) string {
	strs := make([]string, len(nums))
	for i, n := range nums {
		strs[i] = fmt.Sprintf("%02d", n)
	}
	return strings.Join(strs, sep)
}

// EncodePNG renders the ticket and encodes it as PNG.
func (r *Renderer) EncodePNG(sets []NumberSet, now time.Time, issueNo string) ([]byte, error) {
	img, err := r.Render(sets, now, issueNo)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
