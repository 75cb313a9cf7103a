package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hyperchess/engine"
	"hyperchess/game"
)

const cliHelp = `Commands:
  show [axis order]       Print the board as 2-D planes. The order picks the
                          plane axes, e.g. "show 2 3 0 1".
  status                  Print whose turn it is and who is still standing.
  moves x,y,z,w           List the legal destinations for one square.
  move x,y,z,w a,b,c,d    Move the current player's piece.
  alien <op> <args...>    Run a layout operation. Examples:
                          alien transpose 1 0 2 3
                          alien swapaxis 0 2
                          alien moveaxis 3 0
                          alien reshapeaxis 0 4
  help                    Show this message.
  quit                    Exit the game.`

// runCLI drives one hot-seat match: every action is entered on behalf of
// the player whose turn it is. It returns once the game ends or the input
// runs out.
func runCLI(e *engine.Engine, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "hyperchess: type 'help' for the commands.")
	scanner := bufio.NewScanner(in)
	for {
		st := e.Status()
		if st.Result != nil {
			printStatus(out, st)
			return nil
		}
		fmt.Fprintf(out, "[%s] > ", st.Players[st.CurrentPlayer].Name)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			fmt.Fprintln(out, "Exiting game.")
			return nil
		case "help":
			fmt.Fprintln(out, cliHelp)
		case "show":
			order, err := parseInts(fields[1:])
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			lines, err := renderProjection(e.Snapshot(), order)
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			fmt.Fprintln(out, strings.Join(lines, "\n"))
		case "status":
			printStatus(out, st)
		case "moves":
			if len(fields) != 2 {
				fmt.Fprintln(out, "Usage: moves x,y,z,w")
				continue
			}
			at, err := game.ParseCoord(fields[1])
			if err == nil {
				var dests []game.Coord
				dests, err = e.LegalDestinations(at)
				if err == nil {
					fmt.Fprintln(out, formatCoords(dests))
				}
			}
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
		case "move":
			if len(fields) != 3 {
				fmt.Fprintln(out, "Usage: move x,y,z,w a,b,c,d")
				continue
			}
			delta, err := submitMove(e, st.CurrentPlayer, fields[1], fields[2])
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			fmt.Fprintln(out, describeDelta(delta))
		case "alien":
			if len(fields) < 2 {
				fmt.Fprintln(out, "Usage: alien <op> <args...>")
				continue
			}
			args, err := parseInts(fields[2:])
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			op := game.LayoutOp{Kind: game.LayoutOpKind(strings.ToLower(fields[1])), Args: args}
			delta, err := e.SubmitAlienOp(st.CurrentPlayer, op)
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			fmt.Fprintln(out, describeDelta(delta))
		default:
			fmt.Fprintln(out, "Unknown command. Type 'help' for the list.")
		}
	}
}

func submitMove(e *engine.Engine, player int, fromText, toText string) (*game.Delta, error) {
	from, err := game.ParseCoord(fromText)
	if err != nil {
		return nil, err
	}
	to, err := game.ParseCoord(toText)
	if err != nil {
		return nil, err
	}
	return e.SubmitMove(player, from, to)
}

// printStatus mirrors the board-side view of the match: whose turn, each
// king's fate, and the outcome once there is one.
func printStatus(out io.Writer, st game.Status) {
	fmt.Fprintf(out, "Turn: %s\n", st.Players[st.CurrentPlayer].Name)
	for _, pl := range st.Players {
		state := "alive"
		if !pl.Alive {
			state = "captured"
		} else if pl.KingDemoted {
			state = "alive (scratched)"
		}
		fmt.Fprintf(out, "%s king: %s\n", pl.Name, state)
	}
	if st.Result == nil {
		return
	}
	if st.Result.Draw {
		fmt.Fprintln(out, "Draw")
	} else {
		fmt.Fprintf(out, "Winner: %s\n", st.Players[st.Result.Winner].Name)
	}
}

func describeDelta(d *game.Delta) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s accepted", d.Action)
	for _, r := range d.Removals {
		fmt.Fprintf(&b, "; %s %s at %s (%s)", playerTag(r.Owner), r.Kind, r.From, r.Reason)
	}
	if len(d.Demotions) > 0 {
		b.WriteString("; victim demoted")
	}
	for _, pl := range d.Eliminated {
		fmt.Fprintf(&b, "; %s eliminated", playerTag(pl))
	}
	if d.Action == game.AlienAction {
		fmt.Fprintf(&b, "; board is now %s", d.Dims)
	}
	return b.String()
}

func playerTag(index int) string {
	return "p" + strconv.Itoa(index)
}

func formatCoords(coords []game.Coord) string {
	if len(coords) == 0 {
		return "no legal destinations"
	}
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = c.Key()
	}
	return strings.Join(parts, " ")
}

// parseInts reads command arguments as integers; no arguments means nil.
func parseInts(fields []string) ([]int, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", f)
		}
		values[i] = v
	}
	return values, nil
}
