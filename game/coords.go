package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord is an ordered tuple of axis values identifying one square. Its
// length always matches the board's axis count.
type Coord []int

func (c Coord) Clone() Coord {
	out := make(Coord, len(c))
	copy(out, c)
	return out
}

func (c Coord) Equal(other Coord) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Key returns the canonical "3,0,2,1" form used to index occupancy maps.
// It doubles as the wire and CLI spelling of a coordinate.
func (c Coord) Key() string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (c Coord) String() string {
	return "(" + c.Key() + ")"
}

// ParseCoord parses the "3,0,2,1" form. Whitespace around components is
// tolerated.
func ParseCoord(s string) (Coord, error) {
	parts := strings.Split(s, ",")
	out := make(Coord, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Dims holds the size of each axis. Axis i admits values 0..Dims[i]-1.
type Dims []int

func (d Dims) Clone() Dims {
	out := make(Dims, len(d))
	copy(out, d)
	return out
}

func (d Dims) Equal(other Dims) bool {
	return Coord(d).Equal(Coord(other))
}

func (d Dims) Validate() error {
	if len(d) == 0 {
		return fmt.Errorf("board needs at least one axis")
	}
	for i, size := range d {
		if size < 1 {
			return fmt.Errorf("axis %d has size %d, want at least 1", i, size)
		}
	}
	return nil
}

func (d Dims) String() string {
	parts := make([]string, len(d))
	for i, v := range d {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "x")
}

// ParseDims parses "8,8,8,8" into axis sizes.
func ParseDims(s string) (Dims, error) {
	c, err := ParseCoord(s)
	if err != nil {
		return nil, err
	}
	d := Dims(c)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// CubeDims returns a cubic shape: axes axes, each of the given size.
func CubeDims(axes, size int) Dims {
	d := make(Dims, axes)
	for i := range d {
		d[i] = size
	}
	return d
}

// InBounds reports whether c has one value per axis, each within its bound.
func InBounds(c Coord, d Dims) bool {
	if len(c) != len(d) {
		return false
	}
	for i, v := range c {
		if v < 0 || v >= d[i] {
			return false
		}
	}
	return true
}

// Offset returns c shifted componentwise by delta and whether the result
// stays on a board of the given dims.
func Offset(c Coord, delta []int, d Dims) (Coord, bool) {
	if len(delta) != len(c) {
		return nil, false
	}
	out := make(Coord, len(c))
	for i := range c {
		out[i] = c[i] + delta[i]
	}
	return out, InBounds(out, d)
}
