package engine

import (
	"sync"

	"github.com/rs/zerolog/log"

	"hyperchess/game"
	"hyperchess/meta"
)

// Update is one accepted action as seen by collaborators: the delta plus
// the match status after it.
type Update struct {
	Delta  *game.Delta `json:"delta"`
	Status game.Status `json:"status"`
}

// Engine serializes access to one match. Every accepted action is pushed
// to the update feeds; readers between actions always observe a settled
// board. The zero value is not usable, construct with New.
type Engine struct {
	mu    sync.Mutex
	state *game.GameState
	subs  []chan Update
	done  bool
}

func New(state *game.GameState) *Engine {
	return &Engine{state: state}
}

// Updates opens a feed of accepted actions. Each call returns an
// independent feed; every accepted action reaches every feed. Feeds close
// when the game ends, and a feed opened after that is already closed.
// Slow consumers miss updates rather than stall the match; they can
// recover with Snapshot.
func (e *Engine) Updates() <-chan Update {
	e.mu.Lock()
	defer e.mu.Unlock()
	ch := make(chan Update, meta.UPDATE_BUFFER)
	if e.done {
		close(ch)
		return ch
	}
	e.subs = append(e.subs, ch)
	return ch
}

// SubmitMove relays a movement action to the match.
func (e *Engine) SubmitMove(player int, from, to game.Coord) (*game.Delta, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delta, err := e.state.SubmitMove(player, from, to)
	if err != nil {
		log.Debug().Msgf("rejected move by player %d: %v", player, err)
		return nil, err
	}
	log.Info().Msgf("player %d %s %v -> %v", player, delta.Action, from, to)
	e.publish(delta)
	return delta, nil
}

// SubmitAlienOp relays a layout operation to the match.
func (e *Engine) SubmitAlienOp(player int, op game.LayoutOp) (*game.Delta, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delta, err := e.state.SubmitAlienOp(player, op)
	if err != nil {
		log.Debug().Msgf("rejected alien op by player %d: %v", player, err)
		return nil, err
	}
	log.Info().Msgf("player %d alien %s, %d moved, %d removed", player, op, len(delta.Moves), len(delta.Removals))
	e.publish(delta)
	return delta, nil
}

// LegalDestinations lists the moves open to the piece on the square.
func (e *Engine) LegalDestinations(at game.Coord) ([]game.Coord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.LegalDestinations(at)
}

// Status returns the match summary.
func (e *Engine) Status() game.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Status()
}

// Snapshot returns the full serializable view of the match.
func (e *Engine) Snapshot() game.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Snapshot()
}

// publish pushes the delta to every feed and closes them once the game
// is over. Caller holds mu.
func (e *Engine) publish(delta *game.Delta) {
	if e.done {
		return
	}
	up := Update{Delta: delta, Status: e.state.Status()}
	for _, ch := range e.subs {
		select {
		case ch <- up:
		default:
			log.Warn().Msgf("update feed full, dropping seq %d", delta.Seq)
		}
	}
	if delta.Result != nil {
		log.Info().Msgf("game over after %d actions: %s", delta.Seq, delta.Result)
		for _, ch := range e.subs {
			close(ch)
		}
		e.subs = nil
		e.done = true
	}
}
