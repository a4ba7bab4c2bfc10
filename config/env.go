package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/pathgrid/algorithms"
	"github.com/katalvlaran/pathgrid/session"
)

// EnvPrefix starts every environment variable the loader reads.
const EnvPrefix = "PATHGRID_"

// LoadDotEnv loads the given .env files (".env" when none are named) into
// the process environment. Variables already set are not overwritten and
// missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("%w %s: %w", ErrParse, f, err)
		}
	}

	return nil
}

// ApplyEnv applies PATHGRID_* variables found by lookup over c.
// os.LookupEnv is the usual lookup.
func ApplyEnv(c *Config, lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		return lookup(EnvPrefix + name)
	}

	if v, ok := get("SIZE"); ok {
		p, err := session.ParsePreset(v)
		if err != nil {
			return fmt.Errorf("%w: %sSIZE: %w", ErrInvalid, EnvPrefix, err)
		}
		c.Rows, c.Cols = p.Rows, p.Cols
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"ROWS", &c.Rows},
		{"COLS", &c.Cols},
		{"MIN_WEIGHT", &c.MinWeight},
		{"MAX_WEIGHT", &c.MaxWeight},
	}
	for _, it := range ints {
		v, ok := get(it.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalid, EnvPrefix, it.name, v)
		}
		*it.dst = n
	}

	if v, ok := get("SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q is not an integer", ErrInvalid, EnvPrefix, v)
		}
		c.Seed = n
	}

	if v, ok := get("ALGORITHM"); ok {
		k, err := algorithms.ParseKind(v)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		c.Algorithm = k
	}

	if v, ok := get("INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %sINTERVAL: %w", ErrInvalid, EnvPrefix, err)
		}
		c.Interval = d
	}

	if v, ok := get("MAZE_DENSITY"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %sMAZE_DENSITY=%q is not a number", ErrInvalid, EnvPrefix, v)
		}
		c.MazeDensity = f
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{"INDEXED_FRONTIER", &c.IndexedFrontier},
		{"COLOR", &c.Color},
		{"SHOW_WEIGHTS", &c.ShowWeights},
	}
	for _, it := range bools {
		v, ok := get(it.name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not a boolean", ErrInvalid, EnvPrefix, it.name, v)
		}
		*it.dst = b
	}

	strs := []struct {
		name string
		dst  *string
	}{
		{"START", &c.Start},
		{"GOAL", &c.Goal},
		{"MAZE", &c.Maze},
		{"ADDR", &c.Addr},
		{"LOG_LEVEL", &c.LogLevel},
		{"LOG_FORMAT", &c.LogFormat},
	}
	for _, it := range strs {
		if v, ok := get(it.name); ok {
			*it.dst = v
		}
	}

	return nil
}

// Load builds a Config from the defaults, the HCL file at path (skipped
// when path is empty), the .env file in the working directory and the
// PATHGRID_* environment, then validates it.
func Load(path string) (Config, error) {
	c := Default()
	if err := LoadDotEnv(); err != nil {
		return c, err
	}
	if path != "" {
		if err := LoadFile(path, &c); err != nil {
			return c, err
		}
	}
	if err := ApplyEnv(&c, os.LookupEnv); err != nil {
		return c, err
	}

	return c, c.Validate()
}
