package grid

import "fmt"

// Direction is the way a word reads from its first letter.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	AngledUpRight
	AngledDownRight
	AngledUpLeft
	AngledDownLeft
)

// Directions lists all eight directions.
var Directions = []Direction{
	Up, Down, Left, Right,
	AngledUpRight, AngledDownRight, AngledUpLeft, AngledDownLeft,
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "RIGHT to LEFT"
	case Right:
		return "LEFT to RIGHT"
	case AngledUpRight:
		return "UP to the RIGHT"
	case AngledDownRight:
		return "DOWN to the RIGHT"
	case AngledUpLeft:
		return "UP to the LEFT"
	case AngledDownLeft:
		return "DOWN to the LEFT"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Offset returns the row and column step taken per letter.
func (d Direction) Offset() (row, col int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case AngledUpRight:
		return -1, 1
	case AngledDownRight:
		return 1, 1
	case AngledUpLeft:
		return -1, -1
	case AngledDownLeft:
		return 1, -1
	default:
		return 0, 0
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	case AngledUpRight:
		return AngledDownLeft
	case AngledDownLeft:
		return AngledUpRight
	case AngledUpLeft:
		return AngledDownRight
	case AngledDownRight:
		return AngledUpLeft
	default:
		return d
	}
}

// Location is a 0-indexed grid cell.
type Location struct {
	Row    int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d, %d", l.Row, l.Column)
}

// Step moves n letters from l in direction d.
func (l Location) Step(d Direction, n int) Location {
	dr, dc := d.Offset()
	return Location{Row: l.Row + n*dr, Column: l.Column + n*dc}
}

// Match is where a word was found.
type Match struct {
	Start     Location
	Direction Direction
	Length    int
}

// Cells lists the locations covered by m, first letter first.
func (m Match) Cells() []Location {
	cells := make([]Location, m.Length)
	for i := range cells {
		cells[i] = m.Start.Step(m.Direction, i)
	}
	return cells
}
