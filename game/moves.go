package game

import (
	"golang.org/x/exp/slices"
)

// CoordSet is a set of squares keyed by Coord.Key.
type CoordSet map[string]Coord

func (s CoordSet) Add(c Coord) {
	s[c.Key()] = c
}

func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c.Key()]
	return ok
}

// Sorted returns the member coordinates in lexicographic order.
func (s CoordSet) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for _, c := range s {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Coord) int { return slices.Compare(a, b) })
	return out
}

// Destinations generates every square the piece may move to, honoring
// demotion. Outputs are bounds-checked, blocking-checked, and never include
// squares held by the mover's own pieces. players supplies pawn orientation
// per owner index.
func (b *Board) Destinations(p *Piece, players []Player) CoordSet {
	out := make(CoordSet)
	if p == nil || p.pos == nil {
		return out
	}
	for _, class := range p.Classes() {
		switch class {
		case Stepping:
			b.step(p, out)
		case SlideSingleAxis:
			b.slide(p, axisDirections(len(b.dims)), out)
		case SlideMultiAxis:
			b.slide(p, diagonalDirections(len(b.dims)), out)
		case LeapKnight:
			b.leap(p, out)
		case PawnForward:
			b.pawnForward(p, players[p.Owner], out)
		case CatHybrid:
			b.catHops(p, out)
			b.catSlips(p, out)
		}
	}
	return out
}

// step adds all single-step destinations, one per nonzero {-1,0,1} vector.
func (b *Board) step(p *Piece, out CoordSet) {
	for _, delta := range unitDeltas(len(b.dims)) {
		to, ok := Offset(p.pos, delta, b.dims)
		if !ok {
			continue
		}
		if t := b.PieceAt(to); t != nil && t.Owner == p.Owner {
			continue
		}
		out.Add(to)
	}
}

// slide walks each direction until the edge or an own piece (exclusive), or
// the first enemy square (inclusive).
func (b *Board) slide(p *Piece, directions [][]int, out CoordSet) {
	for _, dir := range directions {
		cur := p.pos
		for {
			next, ok := Offset(cur, dir, b.dims)
			if !ok {
				break
			}
			if t := b.PieceAt(next); t != nil {
				if t.Owner != p.Owner {
					out.Add(next)
				}
				break
			}
			out.Add(next)
			cur = next
		}
	}
}

// leap adds knight destinations. Leaps ignore blocking.
func (b *Board) leap(p *Piece, out CoordSet) {
	for _, delta := range knightLeaps(len(b.dims)) {
		to, ok := Offset(p.pos, delta, b.dims)
		if !ok {
			continue
		}
		if t := b.PieceAt(to); t != nil && t.Owner == p.Owner {
			continue
		}
		out.Add(to)
	}
}

// pawnForward adds the single step, the double step for an unmoved pawn,
// and diagonal captures one step sideways on exactly one other axis.
func (b *Board) pawnForward(p *Piece, owner Player, out CoordSet) {
	axes := len(b.dims)
	forward := make([]int, axes)
	forward[owner.ForwardAxis] = owner.ForwardDir

	one, ok := Offset(p.pos, forward, b.dims)
	if ok && b.PieceAt(one) == nil {
		out.Add(one)
		if !p.HasMoved {
			if two, ok := Offset(one, forward, b.dims); ok && b.PieceAt(two) == nil {
				out.Add(two)
			}
		}
	}

	for axis := 0; axis < axes; axis++ {
		if axis == owner.ForwardAxis {
			continue
		}
		for _, side := range []int{-1, 1} {
			delta := make([]int, axes)
			delta[owner.ForwardAxis] = owner.ForwardDir
			delta[axis] = side
			to, ok := Offset(p.pos, delta, b.dims)
			if !ok {
				continue
			}
			if t := b.PieceAt(to); t != nil && t.Owner != p.Owner {
				out.Add(to)
			}
		}
	}
}

// catHops adds every reordering of the cat's own coordinate values. A hop
// may leave the board when axis sizes differ; those are dropped. Enemy
// squares are included since landing there scratches rather than captures.
func (b *Board) catHops(p *Piece, out CoordSet) {
	for _, to := range permutations(p.pos) {
		if to.Equal(p.pos) || !InBounds(to, b.dims) {
			continue
		}
		if t := b.PieceAt(to); t != nil && t.Owner == p.Owner {
			continue
		}
		out.Add(to)
	}
}

// catSlips adds every square differing from the cat's position on at most
// two axes, any magnitude. Slips are leaps: intervening pieces are ignored.
func (b *Board) catSlips(p *Piece, out CoordSet) {
	axes := len(b.dims)
	add := func(to Coord) {
		if t := b.PieceAt(to); t != nil && t.Owner == p.Owner {
			return
		}
		out.Add(to)
	}
	for a := 0; a < axes; a++ {
		for va := 0; va < b.dims[a]; va++ {
			if va == p.pos[a] {
				continue
			}
			to := p.pos.Clone()
			to[a] = va
			add(to)
			for c := a + 1; c < axes; c++ {
				for vc := 0; vc < b.dims[c]; vc++ {
					if vc == p.pos[c] {
						continue
					}
					pair := to.Clone()
					pair[c] = vc
					add(pair)
				}
			}
		}
	}
}

// unitDeltas enumerates every nonzero vector with components in {-1,0,1}.
func unitDeltas(axes int) [][]int {
	total := 1
	for i := 0; i < axes; i++ {
		total *= 3
	}
	out := make([][]int, 0, total-1)
	for n := 0; n < total; n++ {
		delta := make([]int, axes)
		v := n
		zero := true
		for i := 0; i < axes; i++ {
			delta[i] = v%3 - 1
			v /= 3
			if delta[i] != 0 {
				zero = false
			}
		}
		if zero {
			continue
		}
		out = append(out, delta)
	}
	return out
}

// axisDirections returns the 2*axes unit vectors along single axes.
func axisDirections(axes int) [][]int {
	out := make([][]int, 0, 2*axes)
	for _, delta := range unitDeltas(axes) {
		if nonZeroCount(delta) == 1 {
			out = append(out, delta)
		}
	}
	return out
}

// diagonalDirections returns every {-1,0,1} vector moving on two or more
// axes at once.
func diagonalDirections(axes int) [][]int {
	var out [][]int
	for _, delta := range unitDeltas(axes) {
		if nonZeroCount(delta) >= 2 {
			out = append(out, delta)
		}
	}
	return out
}

// knightLeaps returns every vector with magnitude 2 on one axis and
// magnitude 1 on a single distinct axis.
func knightLeaps(axes int) [][]int {
	var out [][]int
	for long := 0; long < axes; long++ {
		for short := 0; short < axes; short++ {
			if short == long {
				continue
			}
			for _, longStep := range []int{-2, 2} {
				for _, shortStep := range []int{-1, 1} {
					delta := make([]int, axes)
					delta[long] = longStep
					delta[short] = shortStep
					out = append(out, delta)
				}
			}
		}
	}
	return out
}

func nonZeroCount(delta []int) int {
	count := 0
	for _, v := range delta {
		if v != 0 {
			count++
		}
	}
	return count
}

// permutations returns every ordering of the values of c. Orderings that
// coincide (repeated values) appear once per index arrangement; callers
// dedupe through CoordSet.
func permutations(c Coord) []Coord {
	n := len(c)
	idx := make([]int, n)
	used := make([]bool, n)
	var out []Coord
	var walk func(depth int)
	walk = func(depth int) {
		if depth == n {
			to := make(Coord, n)
			for i, j := range idx {
				to[i] = c[j]
			}
			out = append(out, to)
			return
		}
		for j := 0; j < n; j++ {
			if used[j] {
				continue
			}
			used[j] = true
			idx[depth] = j
			walk(depth + 1)
			used[j] = false
		}
	}
	walk(0)
	return out
}
