package algorithms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/bfs"
	"github.com/katalvlaran/pathgrid/dfs"
	"github.com/katalvlaran/pathgrid/dijkstra"
	"github.com/katalvlaran/pathgrid/search"
)

// ErrUnknownKind is returned for an algorithm name or Kind outside the set.
var ErrUnknownKind = errors.New("algorithms: unknown algorithm")

// Kind names one of the search algorithms.
type Kind int

const (
	// BFS is breadth-first search; it finds the path with fewest edges.
	BFS Kind = iota
	// DFS is depth-first search; its path is valid but rarely shortest.
	DFS
	// Dijkstra is uniform-cost search; its path is the cheapest.
	Dijkstra
	// AStar is Dijkstra guided by a Manhattan estimate of the remaining cost.
	AStar
)

var kindNames = [...]string{"bfs", "dfs", "dijkstra", "astar"}

// Kinds lists every algorithm in display order.
func Kinds() []Kind {
	return []Kind{BFS, DFS, Dijkstra, AStar}
}

// String returns the canonical lower-case name.
func (k Kind) String() string {
	if k < BFS || k > AStar {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// Label returns the display name.
func (k Kind) Label() string {
	switch k {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case Dijkstra:
		return "Dijkstra"
	case AStar:
		return "A*"
	}

	return k.String()
}

// Weighted reports whether k minimises total edge weight.
func (k Kind) Weighted() bool {
	return k == Dijkstra || k == AStar
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < BFS || k > AStar {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseKind.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// ParseKind parses a case-insensitive algorithm name. "a*" and "a-star"
// are accepted for AStar.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New constructs an unbound searcher of the given kind.
func New(kind Kind, opts ...search.Option) (search.Searcher, error) {
	switch kind {
	case BFS:
		return bfs.New(opts...), nil
	case DFS:
		return dfs.New(opts...), nil
	case Dijkstra:
		return dijkstra.New(opts...), nil
	case AStar:
		return astar.New(opts...), nil
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
}

// Progress is implemented by every searcher New returns.
type Progress interface {
	Expanded() int
}

// Expanded returns how many cells s has expanded, or 0 when s does not
// track it.
func Expanded(s search.Searcher) int {
	if p, ok := s.(Progress); ok {
		return p.Expanded()
	}

	return 0
}
