package session

import "fmt"

// Summary describes the outcome of the current run.
type Summary struct {
	// Algorithm is the display label of the run's algorithm, empty when
	// there is no run.
	Algorithm string `json:"algorithm"`
	Finished  bool   `json:"finished"`
	Found     bool   `json:"found"`
	// Cost is the sum of edge weights along the path.
	Cost float64 `json:"cost"`
	// Steps is the number of edges on the path.
	Steps int `json:"steps"`
	// Expanded counts cells taken off the frontier so far.
	Expanded int `json:"expanded"`
}

// String renders the summary the way the status line shows it.
func (s Summary) String() string {
	switch {
	case s.Algorithm == "":
		return "-"
	case !s.Finished:
		return "Searching..."
	case !s.Found:
		return "No path found!"
	}

	return fmt.Sprintf("Path Cost: %.1f (Steps: %d)", s.Cost, s.Steps)
}
