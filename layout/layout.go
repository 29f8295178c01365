// Package layout reads and writes the persisted grid record
// {grid, start, end}: the occupancy matrix plus the chosen endpoints.
//
// JSON is the native format (`{"grid": [[0,1],...], "start": [r,c],
// "end": [r,c]}`); YAML carries the same fields. File helpers pick the
// format from the extension.
package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for layout decoding.
var (
	// ErrUnknownFormat indicates a format value or file extension with no codec.
	ErrUnknownFormat = errors.New("layout: unknown format")

	// ErrMissingGrid indicates a record without a grid field or with no rows.
	ErrMissingGrid = errors.New("layout: missing grid")
)

// Format selects a codec.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf maps a file path to its codec by extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Layout is one saved grid. Start and End are [row, col].
type Layout struct {
	Grid  [][]int `json:"grid" yaml:"grid"`
	Start [2]int  `json:"start" yaml:"start,flow"`
	End   [2]int  `json:"end" yaml:"end,flow"`
}

// FromMap captures g and the endpoints as a Layout.
func FromMap(g *grid.Map, start, end grid.Cell) Layout {
	return Layout{
		Grid:  g.Values(),
		Start: [2]int{start.Row, start.Col},
		End:   [2]int{end.Row, end.Col},
	}
}

// Map builds the occupancy grid. It fails with ErrMissingGrid or with the
// grid package's shape errors.
func (l Layout) Map() (*grid.Map, error) {
	if len(l.Grid) == 0 {
		return nil, ErrMissingGrid
	}
	g, err := grid.New(l.Grid)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return g, nil
}

// StartCell returns Start as a grid.Cell.
func (l Layout) StartCell() grid.Cell { return grid.At(l.Start[0], l.Start[1]) }

// EndCell returns End as a grid.Cell.
func (l Layout) EndCell() grid.Cell { return grid.At(l.End[0], l.End[1]) }

// Decode reads one Layout from r.
func Decode(r io.Reader, f Format) (Layout, error) {
	var l Layout
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(&l)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&l)
	default:
		return Layout{}, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return Layout{}, fmt.Errorf("layout: decode %v: %w", f, err)
	}
	if len(l.Grid) == 0 {
		return Layout{}, ErrMissingGrid
	}
	return l, nil
}

// Encode writes l to w.
func (l Layout) Encode(w io.Writer, f Format) error {
	switch f {
	case JSON:
		return json.NewEncoder(w).Encode(l)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(l); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// Load reads the layout stored at path.
func Load(path string) (Layout, error) {
	f, err := FormatOf(path)
	if err != nil {
		return Layout{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return Layout{}, err
	}
	defer file.Close()
	return Decode(file, f)
}

// Save writes l to path, replacing any existing file.
func (l Layout) Save(path string) (err error) {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return l.Encode(file, f)
}
