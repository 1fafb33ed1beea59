// Package shell implements the verbs of the interactive gatesynth shell
// as plain Go methods on Session, independent of any particular CLI
// framework, plus Dispatch, the string-args-in/string-out adapter that
// cmd/gatesynth wires to cobra for one-shot invocation and to a REPL
// loop for interactive use. Keeping the verbs themselves free of cobra
// types means they can be unit tested without spinning up a command
// tree.
package shell
