package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"hyperchess/game"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	gs, err := game.NewGame(2, nil)
	require.NoError(t, err)
	return New(gs)
}

func TestSubmitMovePublishesUpdate(t *testing.T) {
	e := newEngine(t)
	updates := e.Updates()

	delta, err := e.SubmitMove(0, game.Coord{1, 3, 0, 0}, game.Coord{3, 3, 0, 0})
	require.NoError(t, err)

	select {
	case u := <-updates:
		require.Equal(t, delta.Seq, u.Delta.Seq)
		require.Equal(t, 1, u.Status.CurrentPlayer)
	default:
		t.Fatal("expected a buffered update")
	}
}

func TestRejectionsPublishNothing(t *testing.T) {
	e := newEngine(t)
	updates := e.Updates()

	_, err := e.SubmitMove(1, game.Coord{6, 0, 0, 7}, game.Coord{5, 0, 0, 7})
	require.ErrorIs(t, err, game.ErrNotYourTurn)

	select {
	case u := <-updates:
		t.Fatalf("unexpected update %+v", u)
	default:
	}
}

func TestEveryFeedGetsEveryUpdate(t *testing.T) {
	e := newEngine(t)
	first := e.Updates()
	second := e.Updates()

	_, err := e.SubmitMove(0, game.Coord{1, 3, 0, 0}, game.Coord{3, 3, 0, 0})
	require.NoError(t, err)

	for _, updates := range []<-chan Update{first, second} {
		select {
		case u := <-updates:
			require.Equal(t, 1, u.Delta.Seq)
		default:
			t.Fatal("expected the update on every feed")
		}
	}
}

func TestUpdatesCloseWhenGameEnds(t *testing.T) {
	players, err := game.DefaultPlayers(2)
	require.NoError(t, err)
	gs, err := game.NewCustomGame(players, game.Dims{8, 8})
	require.NoError(t, err)
	_, err = gs.Board.Spawn(0, game.King, game.Coord{0, 0})
	require.NoError(t, err)
	_, err = gs.Board.Spawn(1, game.King, game.Coord{3, 6})
	require.NoError(t, err)
	_, err = gs.Board.Spawn(0, game.Rook, game.Coord{3, 3})
	require.NoError(t, err)
	e := New(gs)
	updates := e.Updates()

	delta, err := e.SubmitMove(0, game.Coord{3, 3}, game.Coord{3, 6})
	require.NoError(t, err)
	require.NotNil(t, delta.Result)

	u, ok := <-updates
	require.True(t, ok, "the final update is delivered first")
	require.NotNil(t, u.Delta.Result)

	_, ok = <-updates
	require.False(t, ok, "the feed closes after the final update")

	_, ok = <-e.Updates()
	require.False(t, ok, "feeds opened after the end are already closed")

	_, err = e.SubmitMove(1, game.Coord{0, 0}, game.Coord{0, 1})
	require.ErrorIs(t, err, game.ErrGameOver)
}

func TestConcurrentReadersAndWriter(t *testing.T) {
	e := newEngine(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				e.Status()
				e.Snapshot()
				_, _ = e.LegalDestinations(game.Coord{0, 4, 0, 0})
			}
		}()
	}
	var moveErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, moveErr = e.SubmitMove(0, game.Coord{1, 3, 0, 0}, game.Coord{3, 3, 0, 0})
	}()
	wg.Wait()

	require.NoError(t, moveErr)
	require.Equal(t, 1, e.Status().MoveCount)
}

func TestSnapshotRoundTripsThroughEngine(t *testing.T) {
	e := newEngine(t)

	_, err := e.SubmitMove(0, game.Coord{1, 0, 0, 0}, game.Coord{2, 0, 0, 0})
	require.NoError(t, err)

	snap := e.Snapshot()
	restored, err := game.RestoreSnapshot(snap)
	require.NoError(t, err)
	require.Equal(t, 1, restored.MoveCount)
	require.Equal(t, 1, restored.Turn)
}
