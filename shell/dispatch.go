package shell

import (
	"fmt"
	"strings"

	"github.com/hqdem/gatesynth/equiv"
)

// ErrExit is returned by Dispatch for the exit verb: not a failure, a
// signal to whatever loop is driving Dispatch that it should stop.
var ErrExit = fmt.Errorf("shell: exit requested")

// Dispatch runs one shell verb with its positional args against s and
// returns the text a caller should print. cmd/gatesynth uses this both
// for one-shot cobra subcommands and for each line of the interactive
// REPL, so the verb implementations above never need to know which
// driver is calling them.
func Dispatch(s *Session, verb string, args []string) (string, error) {
	switch verb {
	case "read_graphml":
		if len(args) != 1 {
			return "", fmt.Errorf("shell: read_graphml takes exactly one path")
		}
		if err := s.ReadGraphML(args[0]); err != nil {
			return "", err
		}
		return "graphml loaded", nil

	case "read_firrtl":
		return "", s.ReadFIRRTL(firstArg(args))

	case "read_liberty":
		return "", s.ReadLiberty(firstArg(args))

	case "set_name":
		if len(args) != 1 {
			return "", fmt.Errorf("shell: set_name takes exactly one name")
		}
		if err := s.SetName(args[0]); err != nil {
			return "", err
		}
		return "", nil

	case "save_point":
		if len(args) != 1 {
			return "", fmt.Errorf("shell: save_point takes exactly one tag")
		}
		return "", s.SavePoint(args[0])

	case "goto_point":
		if len(args) != 1 {
			return "", fmt.Errorf("shell: goto_point takes exactly one tag")
		}
		return "", s.GotoPoint(args[0])

	case "list_points":
		tags, err := s.ListPoints()
		if err != nil {
			return "", err
		}
		return strings.Join(tags, "\n"), nil

	case "delete_design":
		return "", s.DeleteDesign()

	case "stat_design":
		stat, err := s.StatDesign()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("design %s: %d subnets, %d arcs, library=%v (%d cells), checkpoints=%v",
			stat.Name, stat.NumSubnets, stat.NumArcs, stat.HasLibrary, stat.NumCellTypes, stat.Checkpoints), nil

	case "logopt":
		if len(args) < 1 {
			return "", fmt.Errorf("shell: logopt takes a pass name")
		}
		return "", s.Logopt(args[0], args[1:]...)

	case "techmap":
		objective := "area"
		if s.Config.DefaultObjective != "" {
			objective = s.Config.DefaultObjective
		}
		if len(args) > 0 {
			objective = args[0]
		}
		return "", s.Techmap(objective)

	case "unmap":
		return "", s.Unmap()

	case "lec":
		if len(args) != 3 {
			return "", fmt.Errorf("shell: lec takes a method and two subnet names")
		}
		result, err := s.LEC(args[0], args[1], args[2])
		if err != nil {
			return "", err
		}
		if result == equiv.Unknown {
			return result.String(), &lecUnknownError{}
		}
		return result.String(), nil

	case "write_verilog":
		return "", s.WriteVerilog(firstArg(args))

	case "write_dot":
		if len(args) != 1 {
			return "", fmt.Errorf("shell: write_dot takes exactly one path")
		}
		return "", s.WriteDot(args[0])

	case "write_debug":
		if len(args) != 1 {
			return "", fmt.Errorf("shell: write_debug takes exactly one path")
		}
		return "", s.WriteDebug(args[0])

	case "write_dataflow":
		if len(args) != 1 {
			return "", fmt.Errorf("shell: write_dataflow takes exactly one path")
		}
		return "", s.WriteDataflow(args[0])

	case "version":
		return Version, nil

	case "exit":
		return "", ErrExit

	default:
		return "", fmt.Errorf("shell: unknown command %q", verb)
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// lecUnknownError distinguishes lec's "unknown" outcome from an input
// error: it still carries an error value (so callers that only check
// err != nil notice something is off), but ExitCodeFor maps it to
// ExitLECUnknown rather than ExitInputError.
type lecUnknownError struct{}

func (*lecUnknownError) Error() string { return "shell: equivalence result is unknown" }

// ExitCodeFor maps a Dispatch error to the exit code cmd/gatesynth
// returns, distinguishing an ordinary input error from lec's inconclusive
// outcome.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if _, ok := err.(*lecUnknownError); ok {
		return ExitLECUnknown
	}
	return ExitInputError
}
