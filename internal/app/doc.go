// Package app wires configuration, logging, sessions and the HTTP API into
// the two pathgrid commands.
package app
