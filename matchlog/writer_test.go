package matchlog

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"hyperchess/game"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriterRecordsMatch(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	gs, err := game.NewGame(2, nil)
	require.NoError(t, err)

	delta, err := gs.SubmitMove(0, game.Coord{1, 3, 0, 0}, game.Coord{3, 3, 0, 0})
	require.NoError(t, err)
	require.NoError(t, w.WriteAction(delta))

	delta, err = gs.SubmitAlienOp(1, game.LayoutOp{Kind: game.SwapAxis, Args: []int{2, 3}})
	require.NoError(t, err)
	require.NoError(t, w.WriteAction(delta))

	require.NoError(t, w.WriteResult(gs.Result, gs.MoveCount))
	require.NoError(t, w.Close())

	rows := readCSV(t, filepath.Join(w.Dir(), "actions.csv"))
	require.Len(t, rows, 3, "header plus two actions")
	require.Equal(t, actionsHeader, rows[0])
	require.Equal(t, []string{"1", "0", "move", "1,3,0,0", "3,3,0,0", "", "", "", ""}, rows[1])
	require.Equal(t, "2", rows[2][0])
	require.Equal(t, "alien", rows[2][2])
	require.Equal(t, "swapaxis", rows[2][5])
	require.Equal(t, "2 3", rows[2][6])

	result := readCSV(t, filepath.Join(w.Dir(), "result.csv"))
	require.Equal(t, [][]string{{"winner", "draw", "actions"}, {"", "false", "2"}}, result)
}

func TestWriterRecordsOutcome(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.WriteResult(&game.Result{Winner: 2}, 41))
	require.NoError(t, w.Close())

	rows := readCSV(t, filepath.Join(w.Dir(), "result.csv"))
	require.Equal(t, []string{"2", "false", "41"}, rows[1])
}
