// Package config loads pathgrid settings from an HCL file, a .env file and
// PATHGRID_* environment variables, in that order of increasing precedence.
// Command-line flags are applied on top by the caller.
//
// A file may hold any of the blocks grid, run, maze, server and log, each
// optional:
//
//	grid {
//	  size       = "small"   # preset, overridden by rows/cols
//	  seed       = 42
//	  min_weight = 1
//	  max_weight = 9
//	}
//	run {
//	  algorithm = "dijkstra"
//	  start     = "0,0"
//	  goal      = env.PATHGRID_GOAL
//	  interval  = "25ms"
//	}
//	maze {
//	  kind    = "scatter"
//	  density = 0.25
//	}
//	server { addr = ":9090" }
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
// Expressions are evaluated with one variable, env, an object holding the
// process environment.
package config
