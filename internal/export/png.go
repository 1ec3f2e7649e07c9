package export

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"image/draw"
	"image/png"
	"io"

	"wcagpal/internal/color"
)

const (
	sheetColumns = 3
	tileSize     = 160
	tileGap      = 8
	barHeight    = 24
	barInset     = 24
)

func rgba(hex string) stdcolor.RGBA {
	c := color.FromHex(hex)
	return stdcolor.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// SheetBounds returns the image size for n swatches.
func SheetBounds(n int) image.Rectangle {
	rows := (n + sheetColumns - 1) / sheetColumns
	cols := min(n, sheetColumns)
	width := cols*tileSize + (cols+1)*tileGap
	height := rows*tileSize + (rows+1)*tileGap
	return image.Rect(0, 0, width, height)
}

// Each tile is filled with the background and carries a bar in the foreground
// color where the sample text would sit.
func writePNG(w io.Writer, doc Document) error {
	if len(doc.Combinations) == 0 {
		return fmt.Errorf("could not render swatch sheet: palette is empty")
	}

	img := image.NewRGBA(SheetBounds(len(doc.Combinations)))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: stdcolor.White}, image.Point{}, draw.Src)

	for i, e := range doc.Combinations {
		col, row := i%sheetColumns, i/sheetColumns
		x := tileGap + col*(tileSize+tileGap)
		y := tileGap + row*(tileSize+tileGap)

		tile := image.Rect(x, y, x+tileSize, y+tileSize)
		draw.Draw(img, tile, &image.Uniform{C: rgba(e.Background)}, image.Point{}, draw.Src)

		barY := y + (tileSize-barHeight)/2
		bar := image.Rect(x+barInset, barY, x+tileSize-barInset, barY+barHeight)
		draw.Draw(img, bar, &image.Uniform{C: rgba(e.Foreground)}, image.Point{}, draw.Src)
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("could not encode swatch sheet: %w", err)
	}
	return nil
}
