// SPDX-License-Identifier: MIT
// Package scenario replays scripted operations against a neighborhood graph.
//
// A scenario file (YAML or TOML, chosen by extension) lists vertices, an
// optional edge list applied first, and a sequence of operations. Run writes
// one transcript line per operation; the transcript depends only on the file,
// never on the registry hash seed.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vicinity/neighborhood"
)

// Operation names.
const (
	OpAddEdge = "add_edge"
	OpDelete  = "delete"
	OpMax     = "max"
	OpWeight  = "weight"
	OpCounts  = "counts"
	OpPrint   = "print"
)

var (
	// ErrFormat indicates an unsupported extension or a malformed document.
	ErrFormat = errors.New("scenario: bad format")

	// ErrUnknownOp indicates an operation name outside the supported set.
	ErrUnknownOp = errors.New("scenario: unknown operation")

	// ErrDiverged indicates the graph failed validation during a replay.
	ErrDiverged = errors.New("scenario: graph invariant broken")
)

// Vertex is one scripted vertex.
type Vertex struct {
	ID     int64 `yaml:"id" toml:"id"`
	Weight int64 `yaml:"weight" toml:"weight"`
}

// Op is one scripted operation. U and V serve add_edge; ID serves delete and weight.
type Op struct {
	Op string `yaml:"op" toml:"op"`
	U  int64  `yaml:"u" toml:"u"`
	V  int64  `yaml:"v" toml:"v"`
	ID int64  `yaml:"id" toml:"id"`
}

// Scenario is a decoded scenario file.
type Scenario struct {
	Name       string    `yaml:"name" toml:"name"`
	Seed       int64     `yaml:"seed" toml:"seed"`
	LoadFactor float64   `yaml:"load_factor" toml:"load_factor"`
	EdgeChecks bool      `yaml:"edge_checks" toml:"edge_checks"`
	VerifyEach bool      `yaml:"validate" toml:"validate"`
	Vertices   []Vertex  `yaml:"vertices" toml:"vertices"`
	Edges      [][]int64 `yaml:"edges" toml:"edges"`
	Ops        []Op      `yaml:"ops" toml:"ops"`
}

// Load reads and checks a scenario file; .yaml/.yml and .toml are accepted.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	return Parse(data, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
}

// Parse decodes data in format "yaml", "yml" or "toml". Unknown keys are
// rejected in both formats.
func Parse(data []byte, format string) (*Scenario, error) {
	var s Scenario
	switch format {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: yaml: %v", ErrFormat, err)
		}
	case "toml":
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return nil, fmt.Errorf("%w: toml: %v", ErrFormat, err)
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			return nil, fmt.Errorf("%w: toml: unknown keys %v", ErrFormat, extra)
		}
	default:
		return nil, fmt.Errorf("%w: extension %q", ErrFormat, format)
	}
	if err := s.Check(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Check validates edge pairs and operation names without running anything.
func (s *Scenario) Check() error {
	for i, e := range s.Edges {
		if len(e) != 2 {
			return fmt.Errorf("%w: edge %d has %d endpoints", ErrFormat, i, len(e))
		}
	}
	for i, op := range s.Ops {
		switch op.Op {
		case OpAddEdge, OpDelete, OpMax, OpWeight, OpCounts, OpPrint:
		default:
			return fmt.Errorf("%w: %q at op %d", ErrUnknownOp, op.Op, i)
		}
	}
	if s.LoadFactor < 0 || s.LoadFactor > 1 {
		return fmt.Errorf("%w: load_factor=%v", ErrFormat, s.LoadFactor)
	}
	return nil
}

// Graph builds the scripted vertex set with the scripted options.
func (s *Scenario) Graph() (*neighborhood.Graph, error) {
	vs := make([]neighborhood.Vertex, len(s.Vertices))
	for i, v := range s.Vertices {
		vs[i] = neighborhood.Vertex{ID: v.ID, Weight: v.Weight}
	}
	opts := []neighborhood.GraphOption{neighborhood.WithSeed(s.Seed)}
	if s.LoadFactor > 0 {
		opts = append(opts, neighborhood.WithLoadFactor(s.LoadFactor))
	}
	if s.EdgeChecks {
		opts = append(opts, neighborhood.WithEdgeChecks())
	}

	return neighborhood.New(vs, opts...)
}

// Run builds the graph, applies Edges then Ops, and writes the transcript to w.
// It returns the final graph.
func (s *Scenario) Run(w io.Writer) (*neighborhood.Graph, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}
	g, err := s.Graph()
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	t := &transcript{w: w}
	t.linef("scenario: %s (%d vertices)", s.Name, len(s.Vertices))
	if t.err != nil {
		return g, fmt.Errorf("scenario %q: write: %w", s.Name, t.err)
	}

	steps := make([]Op, 0, len(s.Edges)+len(s.Ops))
	for _, e := range s.Edges {
		steps = append(steps, Op{Op: OpAddEdge, U: e[0], V: e[1]})
	}
	steps = append(steps, s.Ops...)

	for i, op := range steps {
		apply(g, op, t)
		if t.err != nil {
			return g, fmt.Errorf("scenario %q: write: %w", s.Name, t.err)
		}
		if s.VerifyEach {
			if err := g.Validate(); err != nil {
				return g, fmt.Errorf("%w: step %d (%s): %v", ErrDiverged, i, op.Op, err)
			}
		}
	}

	return g, nil
}

// apply executes one checked op and records its outcome.
func apply(g *neighborhood.Graph, op Op, t *transcript) {
	switch op.Op {
	case OpAddEdge:
		t.linef("add_edge %d %d: %s", op.U, op.V, outcome(g.AddEdge(op.U, op.V)))
	case OpDelete:
		t.linef("delete %d: %s", op.ID, outcome(g.DeleteNode(op.ID)))
	case OpMax:
		if top, ok := g.MaxNeighborhoodWeight(); ok {
			t.linef("max: id=%d w=%d nw=%d", top.ID, top.Weight, top.NeighborhoodWeight)
		} else {
			t.linef("max: empty")
		}
	case OpWeight:
		if nw, ok := g.NeighborhoodWeight(op.ID); ok {
			t.linef("weight %d: %d", op.ID, nw)
		} else {
			t.linef("weight %d: absent", op.ID)
		}
	case OpCounts:
		t.linef("counts: nodes=%d edges=%d", g.NodeCount(), g.EdgeCount())
	case OpPrint:
		t.write(g.String())
	}
}

func outcome(applied bool) string {
	if applied {
		return "applied"
	}
	return "noop"
}

// transcript latches the first write error.
type transcript struct {
	w   io.Writer
	err error
}

func (t *transcript) linef(format string, args ...interface{}) {
	t.write(fmt.Sprintf(format, args...) + "\n")
}

func (t *transcript) write(s string) {
	if t.err != nil {
		return
	}
	_, t.err = io.WriteString(t.w, s)
}
