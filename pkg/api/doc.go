// Package api wires the cookbook server together: logging, the entry
// store, and the HTTP surface, with graceful shutdown on SIGINT/SIGTERM.
package api
