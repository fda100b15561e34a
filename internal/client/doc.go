// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the sync engine, and the background event
// stream into a single process lifecycle.
package client
