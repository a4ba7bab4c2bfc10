// Package cli parses the pathgrid command line. It resolves the layered
// configuration (defaults, HCL file, .env, environment) and applies the
// flags the user set explicitly on top.
package cli
