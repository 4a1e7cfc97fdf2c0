package tui

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

const (
	maxLogoRows = 8
	// Pixels with alpha below this are treated as transparent.
	alphaThreshold = 0x8000
)

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Logo returns the sidebar logo: the PNG at path drawn with half blocks, or
// the built-in brand logo when path is empty, missing or undecodable.
func Logo(path string, width int, logger zerolog.Logger) string {
	if path == "" {
		return BrandLogo()
	}
	art, err := LoadLogo(path, width)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("using built-in logo")
		return BrandLogo()
	}
	return art
}

// LoadLogo decodes the PNG at path and draws it width columns wide.
func LoadLogo(path string, width int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening logo: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decoding logo: %w", err)
	}
	return HalfBlocks(img, width)
}

// HalfBlocks draws img using one "▀" per two vertical pixels, scaled to width
// columns and at most maxLogoRows rows.
func HalfBlocks(img image.Image, width int) (string, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return "", ErrEmptyImage
	}
	if width <= 0 || width > b.Dx() {
		width = b.Dx()
	}

	rows := (b.Dy()*width/b.Dx() + 1) / 2
	rows = max(1, min(rows, maxLogoRows))
	pixelRows := rows * 2

	sample := func(x, y int) (lipgloss.Color, bool) {
		sx := b.Min.X + x*b.Dx()/width
		sy := b.Min.Y + y*b.Dy()/pixelRows
		r, g, bl, a := img.At(sx, sy).RGBA()
		if a < alphaThreshold {
			return "", false
		}
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, bl>>8)), true
	}

	lines := make([]string, rows)
	for row := range rows {
		var sb strings.Builder
		for x := range width {
			top, topOK := sample(x, row*2)
			bottom, bottomOK := sample(x, row*2+1)
			switch {
			case topOK && bottomOK:
				sb.WriteString(lipgloss.NewStyle().Foreground(top).Background(bottom).Render("▀"))
			case topOK:
				sb.WriteString(lipgloss.NewStyle().Foreground(top).Render("▀"))
			case bottomOK:
				sb.WriteString(lipgloss.NewStyle().Foreground(bottom).Render("▄"))
			default:
				sb.WriteByte(' ')
			}
		}
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n"), nil
}

// BrandLogo is the built-in wordmark: "MASSY" in navy and "ENERGY" in red
// over a navy bar.
func BrandLogo() string {
	massy := lipgloss.NewStyle().Bold(true).Foreground(colorNavy).Render("MASSY")
	energy := lipgloss.NewStyle().Bold(true).Foreground(colorBrandRed).Render("ENERGY")
	bar := lipgloss.NewStyle().Foreground(colorNavy).Render(strings.Repeat("▀", len("MASSY ENERGY")))
	return LogoStyle.Render(massy + " " + energy + "\n" + bar)
}
