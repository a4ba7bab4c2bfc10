// Package session pairs one grid with its endpoints and at most one active
// searcher, and drives that searcher step by step.
//
// What:
//
//   - Session owns a grid, a start and goal cell, and the searcher of the
//     current run. Every method takes the session mutex, so a session may be
//     shared between goroutines (HTTP handlers, an animation loop).
//   - Manager is a registry of sessions keyed by uuid.
//
// Lifecycle:
//
//	s, _ := session.New(session.Config{Rows: 20, Cols: 30, Seed: 7})
//	s.SetEndpoints("0,0", "19,29")
//	_ = s.Start(algorithms.AStar)
//	sum, _ := s.Complete(ctx)
//	fmt.Println(sum) // Path Cost: 131.0 (Steps: 48)
//
// Edits (walls, terrain, mazes) abort the current run: search state is
// cleared and Step returns ErrNoRun until Start is called again.
//
// Logging goes through log/slog; each session logger carries session_id.
package session
