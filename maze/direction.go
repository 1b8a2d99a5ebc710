package maze

import (
	"fmt"
	"strings"
)

// Direction is a single-step movement intent.
type Direction uint8

// Movement directions.
const (
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
)

var directionNames = map[string]Direction{
	"up":         Up,
	"down":       Down,
	"left":       Left,
	"right":      Right,
	"w":          Up,
	"s":          Down,
	"a":          Left,
	"d":          Right,
	"arrowup":    Up,
	"arrowdown":  Down,
	"arrowleft":  Left,
	"arrowright": Right,
}

// ParseDirection maps a direction or key name to a Direction.
func ParseDirection(s string) (Direction, error) {
	d, ok := directionNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return NoDirection, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
	return d, nil
}

// Delta returns the unit step for d, or the zero position for NoDirection.
func (d Direction) Delta() Position {
	switch d {
	case Up:
		return Position{X: 0, Y: -1}
	case Down:
		return Position{X: 0, Y: 1}
	case Left:
		return Position{X: -1, Y: 0}
	case Right:
		return Position{X: 1, Y: 0}
	}
	return Position{}
}

// Valid reports whether d is one of the four movement directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
