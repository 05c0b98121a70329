// Package cli provides the interactive CA Final study tracker.
//
// It wires configuration, local storage, the account and data services and
// the sync coordinator behind a line-oriented REPL. Typical flow: resume the
// previous session if one is recorded, otherwise register or log in, then
// plan chapters, log study hours and track SPOM mock exams. Changes are
// written back to the local database after a short quiet period.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
