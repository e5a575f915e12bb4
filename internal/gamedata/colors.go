package gamedata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrBadColor is returned for color strings that are not #rgb or #rrggbb.
var ErrBadColor = errors.New("bad color")

// ParseHexColor converts "#rrggbb", "rrggbb" or the "#rgb" shorthand used in
// kingdom and art files to a tcell color.
func ParseHexColor(s string) (tcell.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return tcell.NewHexColor(int32(v)), nil
}
