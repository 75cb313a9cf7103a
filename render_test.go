package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"hyperchess/game"
)

func TestRenderProjectionDefaultGame(t *testing.T) {
	gs, err := game.NewGame(2, nil)
	require.NoError(t, err)

	lines, err := renderProjection(gs.Snapshot(), nil)
	require.NoError(t, err)

	// 8x8 planes for every z,w pair: header, eight rows, one blank line.
	require.Len(t, lines, 64*10)
	require.Equal(t, "Depth 2=0,3=0", lines[0])

	// Alpha's home plane: back rank in column 0, pawns in column 1.
	require.Equal(t, "RP......", lines[1])
	require.Equal(t, "QP......", lines[4])
	require.Equal(t, "KP......", lines[5])

	// Beta's pieces render lowercase in the far z=0,w=7 plane.
	require.Equal(t, "Depth 2=0,3=7", lines[70])
	require.Equal(t, "......pr", lines[71])
	require.Equal(t, "......pk", lines[75])

	// The alien sits one step off the king along the fourth axis, the cat
	// one step off the queen along the third.
	require.Equal(t, "A.......", lines[15])
	require.Equal(t, "C.......", lines[84])

	upper, lower := countGlyphs(lines)
	require.Equal(t, 18, upper, "all of Alpha's pieces are drawn")
	require.Equal(t, 18, lower, "all of Beta's pieces are drawn")
}

func TestRenderProjectionTwoAxes(t *testing.T) {
	players, err := game.DefaultPlayers(2)
	require.NoError(t, err)
	gs, err := game.NewCustomGame(players, game.Dims{4, 4})
	require.NoError(t, err)
	_, err = gs.Board.Spawn(0, game.King, game.Coord{2, 1})
	require.NoError(t, err)
	_, err = gs.Board.Spawn(1, game.King, game.Coord{0, 3})
	require.NoError(t, err)

	lines, err := renderProjection(gs.Snapshot(), nil)
	require.NoError(t, err)

	// No depth axes, so a single plane with no header.
	require.Equal(t, []string{
		"....",
		"..K.",
		"....",
		"k...",
		"",
	}, lines)
}

func TestRenderProjectionReorderedAxes(t *testing.T) {
	players, err := game.DefaultPlayers(2)
	require.NoError(t, err)
	gs, err := game.NewCustomGame(players, game.Dims{4, 4, 4, 4})
	require.NoError(t, err)
	_, err = gs.Board.Spawn(0, game.King, game.Coord{1, 2, 3, 0})
	require.NoError(t, err)

	lines, err := renderProjection(gs.Snapshot(), []int{2, 3, 0, 1})
	require.NoError(t, err)
	require.Len(t, lines, 16*6)

	// Axes 0 and 1 become the depth; the king shows up in plane 0=1,1=2
	// at column c[2]=3, row c[3]=0.
	require.Equal(t, "Depth 0=1,1=2", lines[36])
	require.Equal(t, "...K", lines[37])
}

func TestRenderProjectionOrderValidation(t *testing.T) {
	gs, err := game.NewGame(2, nil)
	require.NoError(t, err)
	snap := gs.Snapshot()

	for _, order := range [][]int{
		{0, 0, 1, 1},
		{0, 1, 2},
		{0, 1, 2, 9},
	} {
		_, err := renderProjection(snap, order)
		require.Error(t, err, "order %v", order)
	}
}

func countGlyphs(lines []string) (upper, lower int) {
	for _, line := range lines {
		if strings.HasPrefix(line, "Depth ") {
			continue
		}
		for _, r := range line {
			switch {
			case r >= 'A' && r <= 'Z':
				upper++
			case r >= 'a' && r <= 'z':
				lower++
			}
		}
	}
	return upper, lower
}
