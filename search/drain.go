package search

import "context"

// Drain steps s until it terminates and returns the number of Step calls
// made. ctx is checked before every step; on cancellation Drain returns
// ctx.Err() and s is left resumable.
func Drain(ctx context.Context, s Searcher) (int, error) {
	steps := 0
	for !s.Finished() {
		select {
		case <-ctx.Done():
			return steps, ctx.Err()
		default:
		}
		s.Step()
		steps++
	}

	return steps, nil
}
