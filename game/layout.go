package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// LayoutOpKind names one of the alien's board-wide operations.
type LayoutOpKind string

const (
	Transpose   LayoutOpKind = "transpose"
	SwapAxis    LayoutOpKind = "swapaxis"
	MoveAxis    LayoutOpKind = "moveaxis"
	ReshapeAxis LayoutOpKind = "reshapeaxis"
)

// LayoutOp is one alien operation plus its integer arguments: transpose
// takes a full axis permutation, swapaxis and moveaxis take two axis
// indices, reshapeaxis takes an axis index and a row count.
type LayoutOp struct {
	Kind LayoutOpKind `json:"kind"`
	Args []int        `json:"args"`
}

func (op LayoutOp) String() string {
	return fmt.Sprintf("%s%v", op.Kind, op.Args)
}

// Compile validates op against the current dims and returns the coordinate
// mapping plus the dims after the operation. The mapping is a bijection on
// the board's squares; compiling never mutates anything.
func (op LayoutOp) Compile(dims Dims) (func(Coord) Coord, Dims, error) {
	switch op.Kind {
	case Transpose:
		return compileTranspose(op.Args, dims)
	case SwapAxis:
		return compileSwapAxis(op.Args, dims)
	case MoveAxis:
		return compileMoveAxis(op.Args, dims)
	case ReshapeAxis:
		return compileReshapeAxis(op.Args, dims)
	default:
		return nil, nil, fmt.Errorf("%w: unknown operation %q", ErrIllegalAlienOp, op.Kind)
	}
}

// compileTranspose reorders axes: new[i] = old[order[i]], dims permuted the
// same way.
func compileTranspose(order []int, dims Dims) (func(Coord) Coord, Dims, error) {
	if len(order) != len(dims) {
		return nil, nil, fmt.Errorf("%w: transpose wants %d axis indices, got %d", ErrIllegalAlienOp, len(dims), len(order))
	}
	seen := make([]bool, len(dims))
	for _, axis := range order {
		if axis < 0 || axis >= len(dims) || seen[axis] {
			return nil, nil, fmt.Errorf("%w: %v is not a permutation of the axes", ErrIllegalAlienOp, order)
		}
		seen[axis] = true
	}

	perm := slices.Clone(order)
	newDims := make(Dims, len(dims))
	for i, axis := range perm {
		newDims[i] = dims[axis]
	}
	mapper := func(c Coord) Coord {
		to := make(Coord, len(perm))
		for i, axis := range perm {
			to[i] = c[axis]
		}
		return to
	}
	return mapper, newDims, nil
}

func compileSwapAxis(args []int, dims Dims) (func(Coord) Coord, Dims, error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%w: swapaxis wants two axis indices, got %d", ErrIllegalAlienOp, len(args))
	}
	i, j := args[0], args[1]
	if !validAxis(i, dims) || !validAxis(j, dims) {
		return nil, nil, fmt.Errorf("%w: axis out of range for %d axes", ErrIllegalAlienOp, len(dims))
	}
	order := identityOrder(len(dims))
	order[i], order[j] = order[j], order[i]
	return compileTranspose(order, dims)
}

// compileMoveAxis removes axis src and reinserts it at position dst, with
// dst interpreted against the sequence after removal.
func compileMoveAxis(args []int, dims Dims) (func(Coord) Coord, Dims, error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%w: moveaxis wants source and destination, got %d args", ErrIllegalAlienOp, len(args))
	}
	src, dst := args[0], args[1]
	if !validAxis(src, dims) || !validAxis(dst, dims) {
		return nil, nil, fmt.Errorf("%w: axis out of range for %d axes", ErrIllegalAlienOp, len(dims))
	}
	order := identityOrder(len(dims))
	order = append(order[:src], order[src+1:]...)
	order = slices.Insert(order, dst, src)
	return compileTranspose(order, dims)
}

// compileReshapeAxis refolds the values of one axis: with rows r dividing
// the axis size into columns m = size/r, value c becomes (c mod m)*r +
// (c div m). Axis sizes are unchanged; r parameterizes the bijection only.
func compileReshapeAxis(args []int, dims Dims) (func(Coord) Coord, Dims, error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%w: reshapeaxis wants an axis and a row count, got %d args", ErrIllegalAlienOp, len(args))
	}
	axis, rows := args[0], args[1]
	if !validAxis(axis, dims) {
		return nil, nil, fmt.Errorf("%w: axis out of range for %d axes", ErrIllegalAlienOp, len(dims))
	}
	if rows <= 0 || dims[axis]%rows != 0 {
		return nil, nil, fmt.Errorf("%w: %d does not divide axis %d of size %d", ErrIllegalAlienOp, rows, axis, dims[axis])
	}
	cols := dims[axis] / rows
	mapper := func(c Coord) Coord {
		to := c.Clone()
		to[axis] = (c[axis]%cols)*rows + c[axis]/cols
		return to
	}
	return mapper, dims.Clone(), nil
}

func validAxis(axis int, dims Dims) bool {
	return axis >= 0 && axis < len(dims)
}

func identityOrder(axes int) []int {
	order := make([]int, axes)
	for i := range order {
		order[i] = i
	}
	return order
}
