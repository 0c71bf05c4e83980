package powder

import (
	"fmt"
	"strings"
)

// Cell is the material held by one grid position.
type Cell uint8

const (
	Empty Cell = iota
	Sand
	Water
	Stone
)

// NumCells is the number of defined materials. Valid cells are < NumCells.
const NumCells = int(Stone) + 1

var cellNames = [NumCells]string{"empty", "sand", "water", "stone"}

var cellRunes = [NumCells]rune{'.', 's', '~', '#'}

// Materials lists every material in enum order.
func Materials() []Cell {
	return []Cell{Empty, Sand, Water, Stone}
}

// Valid reports whether c is one of the defined materials.
func (c Cell) Valid() bool { return int(c) < NumCells }

// String returns the lower-case material name.
func (c Cell) String() string {
	if !c.Valid() {
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
	return cellNames[c]
}

// Rune returns the single character used by text dumps.
func (c Cell) Rune() rune {
	if !c.Valid() {
		return '?'
	}
	return cellRunes[c]
}

// ParseCell resolves a material from its name or text-dump rune.
func ParseCell(s string) (Cell, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range cellNames {
		if s == name || s == string(cellRunes[i]) {
			return Cell(i), nil
		}
	}
	return Empty, fmt.Errorf("unknown material %q", s)
}
