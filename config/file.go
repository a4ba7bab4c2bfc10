package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/pathgrid/algorithms"
	"github.com/katalvlaran/pathgrid/session"
)

// hclFile is the top-level structure of a config file. Every block and
// attribute is optional; nil means "keep the current value".
type hclFile struct {
	Grid   *hclGrid   `hcl:"grid,block"`
	Run    *hclRun    `hcl:"run,block"`
	Maze   *hclMaze   `hcl:"maze,block"`
	Server *hclServer `hcl:"server,block"`
	Log    *hclLog    `hcl:"log,block"`
}

type hclGrid struct {
	Size      *string `hcl:"size,optional"`
	Rows      *int    `hcl:"rows,optional"`
	Cols      *int    `hcl:"cols,optional"`
	Seed      *int64  `hcl:"seed,optional"`
	MinWeight *int    `hcl:"min_weight,optional"`
	MaxWeight *int    `hcl:"max_weight,optional"`
}

type hclRun struct {
	Algorithm       *string `hcl:"algorithm,optional"`
	Start           *string `hcl:"start,optional"`
	Goal            *string `hcl:"goal,optional"`
	Interval        *string `hcl:"interval,optional"`
	IndexedFrontier *bool   `hcl:"indexed_frontier,optional"`
	Color           *bool   `hcl:"color,optional"`
	ShowWeights     *bool   `hcl:"show_weights,optional"`
}

type hclMaze struct {
	Kind    *string  `hcl:"kind,optional"`
	Density *float64 `hcl:"density,optional"`
}

type hclServer struct {
	Addr *string `hcl:"addr,optional"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// LoadFile reads the HCL file at path and applies it over c.
func LoadFile(path string, c *Config) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrParse, path, err)
	}

	return Decode(path, src, c)
}

// Decode parses src as HCL and applies it over c. filename is used in
// diagnostics only.
func Decode(filename string, src []byte, c *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("%w %s: %w", ErrParse, filename, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, evalContext(os.Environ()), &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("%w %s: %w", ErrParse, filename, diags)
	}

	return parsed.apply(c)
}

// evalContext exposes environ as the object variable env.
func evalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

func (f *hclFile) apply(c *Config) error {
	if g := f.Grid; g != nil {
		if g.Size != nil {
			p, err := session.ParsePreset(*g.Size)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalid, err)
			}
			c.Rows, c.Cols = p.Rows, p.Cols
		}
		setInt(&c.Rows, g.Rows)
		setInt(&c.Cols, g.Cols)
		if g.Seed != nil {
			c.Seed = *g.Seed
		}
		setInt(&c.MinWeight, g.MinWeight)
		setInt(&c.MaxWeight, g.MaxWeight)
	}

	if r := f.Run; r != nil {
		if r.Algorithm != nil {
			k, err := algorithms.ParseKind(*r.Algorithm)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalid, err)
			}
			c.Algorithm = k
		}
		setString(&c.Start, r.Start)
		setString(&c.Goal, r.Goal)
		if r.Interval != nil {
			d, err := time.ParseDuration(*r.Interval)
			if err != nil {
				return fmt.Errorf("%w: interval: %w", ErrInvalid, err)
			}
			c.Interval = d
		}
		setBool(&c.IndexedFrontier, r.IndexedFrontier)
		setBool(&c.Color, r.Color)
		setBool(&c.ShowWeights, r.ShowWeights)
	}

	if m := f.Maze; m != nil {
		setString(&c.Maze, m.Kind)
		if m.Density != nil {
			c.MazeDensity = *m.Density
		}
	}
	if s := f.Server; s != nil {
		setString(&c.Addr, s.Addr)
	}
	if l := f.Log; l != nil {
		setString(&c.LogLevel, l.Level)
		setString(&c.LogFormat, l.Format)
	}

	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
