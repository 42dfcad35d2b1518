package treetext

import (
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var fileColors = map[string]tcell.Color{
	"txt":  tcell.ColorWhite,
	"py":   tcell.ColorLightGreen,
	"js":   tcell.ColorYellow,
	"html": tcell.ColorOrangeRed,
	"md":   tcell.ColorBisque,
	"css":  tcell.ColorViolet,
	"json": tcell.ColorGold,
	"xml":  tcell.ColorLightYellow,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"dart": tcell.ColorAqua,
	"java": tcell.ColorOrange,
	"cpp":  tcell.ColorDodgerBlue,
	"c":    tcell.ColorDodgerBlue,
}

// GetColorByFileExt returns the list color for a file name, defaulting
// to a neutral color for anything not in the table.
func GetColorByFileExt(name string) tcell.Color {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if color, ok := fileColors[ext]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}
