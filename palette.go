package main

import "image/color"

// Colors used by the walker, the replay highlight and the overhead map.
var (
	colBlack        = color.RGBA{0, 0, 0, 255}
	colBlank        = color.RGBA{0, 0, 0, 0}
	colGrey         = color.RGBA{192, 192, 192, 255}
	colDarkGrey     = color.RGBA{128, 128, 128, 255}
	colVeryDarkGrey = color.RGBA{64, 64, 64, 255}
	colBlue         = color.RGBA{0, 0, 255, 255}
	colDarkBlue     = color.RGBA{0, 0, 128, 255}
	colRed          = color.RGBA{255, 0, 0, 255}
	colDarkRed      = color.RGBA{128, 0, 0, 255}
	colGreen        = color.RGBA{0, 255, 0, 255}
	colDarkGreen    = color.RGBA{0, 128, 0, 255}
	colMagenta      = color.RGBA{255, 0, 255, 255}
	colCyan         = color.RGBA{0, 255, 255, 255}
	colYellow       = color.RGBA{255, 255, 0, 255}
	colLowerWall    = color.RGBA{191, 64, 191, 255}
)

// shade is the three-colour band of one vertical span: the first row, the
// rows strictly between, and the last row.
type shade struct {
	top, fill, bottom color.RGBA
}

var (
	shadeCeiling   = shade{colDarkGrey, colVeryDarkGrey, colDarkGrey}
	shadeFloor     = shade{colBlue, colDarkBlue, colBlue}
	shadeWall      = shade{colBlack, colGrey, colBlack}
	shadeWallEdge  = shade{colBlack, colBlack, colBlack}
	shadeLower     = shade{colBlack, colLowerWall, colBlack}
	shadeLowerEdge = shade{colBlack, colBlank, colBlack}
	shadeFiller    = shade{colRed, colDarkRed, colRed}
	shadeHighlight = shade{colGreen, colDarkGreen, colGreen}
)
