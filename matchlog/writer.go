package matchlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"hyperchess/game"
)

// Writer records one match as CSV files in a timestamped directory:
// actions.csv gets a row per accepted action, result.csv the outcome.
type Writer struct {
	baseDir string
	file    *os.File
	actions *csv.Writer
}

var actionsHeader = []string{"seq", "player", "action", "from", "to", "op", "args", "removed", "demoted"}

func NewWriter(root string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(filepath.Join(baseDir, "actions.csv"))
	if err != nil {
		return nil, fmt.Errorf("failed to create actions file: %w", err)
	}
	actions := csv.NewWriter(f)
	if err := actions.Write(actionsHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write actions header: %w", err)
	}

	return &Writer{baseDir: baseDir, file: f, actions: actions}, nil
}

// Dir returns the directory this match is being written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteAction appends one accepted action. Rows are flushed immediately so
// a crash loses at most the in-flight row.
func (w *Writer) WriteAction(delta *game.Delta) error {
	var from, to string
	if delta.Action != game.AlienAction && len(delta.Moves) > 0 {
		from = delta.Moves[0].From.Key()
		to = delta.Moves[0].To.Key()
	}
	var op, args string
	if delta.Op != nil {
		op = string(delta.Op.Kind)
		args = joinInts(delta.Op.Args)
	}
	removed := make([]int, 0, len(delta.Removals))
	for _, r := range delta.Removals {
		removed = append(removed, r.PieceID)
	}

	row := []string{
		strconv.Itoa(delta.Seq),
		strconv.Itoa(delta.Player),
		string(delta.Action),
		from,
		to,
		op,
		args,
		joinInts(removed),
		joinInts(delta.Demotions),
	}
	if err := w.actions.Write(row); err != nil {
		return fmt.Errorf("failed to write action row: %w", err)
	}
	w.actions.Flush()
	return w.actions.Error()
}

// WriteResult writes result.csv. Call it once, when the match ends.
func (w *Writer) WriteResult(result *game.Result, moveCount int) error {
	path := filepath.Join(w.baseDir, "result.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create result file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write([]string{"winner", "draw", "actions"}); err != nil {
		return fmt.Errorf("failed to write result header: %w", err)
	}
	winner, draw := "", "false"
	if result != nil {
		winner = strconv.Itoa(result.Winner)
		draw = strconv.FormatBool(result.Draw)
	}
	if err := writer.Write([]string{winner, draw, strconv.Itoa(moveCount)}); err != nil {
		return fmt.Errorf("failed to write result row: %w", err)
	}
	return nil
}

func (w *Writer) Close() error {
	w.actions.Flush()
	if err := w.actions.Error(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
