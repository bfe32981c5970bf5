package tapes

import "fmt"

type Direction uint8

const (
	Stay Direction = iota
	Left
	Right
)

var directionNames = [...]string{
	Stay:  "STAY",
	Left:  "LEFT",
	Right: "RIGHT",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

func (d Direction) Valid() bool {
	return int(d) < len(directionNames)
}

func ParseDirection(name string) (Direction, error) {
	for d, n := range directionNames {
		if n == name {
			return Direction(d), nil
		}
	}
	return Stay, fmt.Errorf("%w: %q", ErrBadDirection, name)
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadDirection, d)
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
