// Command gatesynth is the CLI shell surface over the logic-synthesis
// engine: one subcommand per verb for scripted/batch use, plus an
// interactive "shell" subcommand that re-dispatches the same verbs line
// by line.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hqdem/gatesynth/shell"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	sess := shell.NewSession(os.Stdout)
	if home := os.Getenv(shell.EnvHome); home != "" {
		cfg, err := shell.LoadConfig(filepath.Join(home, ".gatesynth.yml"))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return shell.ExitInputError
		}
		sess.Config = cfg
	}

	root := newRootCmd(sess)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return shell.ExitCodeFor(err)
	}
	return lastExitCode
}

// lastExitCode carries a verb's exit code out of cobra's RunE, which
// only distinguishes error/no-error, not which non-zero code applies.
var lastExitCode int

func newRootCmd(sess *shell.Session) *cobra.Command {
	root := &cobra.Command{
		Use:   "gatesynth",
		Short: "logic synthesis and technology mapping shell",
		SilenceUsage: true,
	}

	verbs := []string{
		"read_graphml", "read_firrtl", "read_liberty", "set_name",
		"save_point", "goto_point", "list_points", "delete_design",
		"stat_design", "logopt", "techmap", "unmap", "lec",
		"write_verilog", "write_dot", "write_debug", "write_dataflow",
		"version",
	}
	for _, verb := range verbs {
		root.AddCommand(newVerbCmd(sess, verb))
	}
	root.AddCommand(newShellCmd(sess))
	return root
}

func newVerbCmd(sess *shell.Session, verb string) *cobra.Command {
	return &cobra.Command{
		Use:                verb,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := shell.Dispatch(sess, verb, args)
			lastExitCode = shell.ExitCodeFor(err)
			if text != "" {
				fmt.Fprintln(sess.Out, text)
			}
			return err
		},
	}
}

func newShellCmd(sess *shell.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "run an interactive session reading verbs from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(sess, cmd.InOrStdin())
		},
	}
}

func runREPL(sess *shell.Session, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		verb, args := fields[0], fields[1:]

		text, err := shell.Dispatch(sess, verb, args)
		if err == shell.ErrExit {
			return nil
		}
		if text != "" {
			fmt.Fprintln(sess.Out, text)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return scanner.Err()
}
