// Package cli provides the interactive CareerForge command-line client.
//
// It wires configuration, the local state database, the API client and the
// view-models into a REPL. The prompt shows the signed-in user and the active
// language; commands that need a session are hidden until login.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, commands and runREPL for details.
package cli
