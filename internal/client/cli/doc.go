// Package cli provides the interactive crew center terminal client.
//
// It wires configuration, the local store, the IVAO gateway and the
// screens into a REPL. On start the saved session and language are
// restored; toasts raised by background polling are printed as they
// arrive.
//
// Commands:
//   - login / logout / whoami / update
//   - dashboard / map / select / refresh
//   - events / profile
//   - lang / toasts / dismiss
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
