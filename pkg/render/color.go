// pkg/render/color.go
package render

import "image/color"

// BoardColors holds all the color definitions needed to render the board.
type BoardColors struct {
	Background  color.RGBA
	Empty       color.RGBA
	Alternative color.RGBA
	Wall        color.RGBA
	Tower       color.RGBA
	SpawnPoint  color.RGBA
	Destination color.RGBA
	Arrow       color.RGBA
	Shadow      color.RGBA
	StrokeWidth float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor adds amount to every channel, saturating at 255.
func LightenColor(c color.RGBA, amount int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+amount)),
		G: uint8(min(255, int(c.G)+amount)),
		B: uint8(min(255, int(c.B)+amount)),
		A: 255,
	}
}
