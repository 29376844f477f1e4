// SPDX-License-Identifier: MIT
//
// Package yamlgraph decodes a core.Graph from a YAML document.
//
// Document layout:
//
//	directed: true        # default orientation, defaults to true
//	multi_edges: true     # allow parallel edges
//	loops: false          # allow self-loops
//	mixed: false          # allow per-edge "directed" overrides
//	vertices:
//	  - id: thor
//	    properties: {realm: asgard}
//	edges:
//	  - {from: thor, to: odin, label: parents, properties: {role: father}}
//
// Vertices are added in document order, then edges in document order, so the
// edge order of the document is the enumeration order of the resulting graph.
// Edge endpoints that are not listed under vertices are created on the fly.
// Unknown keys are rejected.
package yamlgraph

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gremlin/core"
)

// ErrInvalidDocument is returned for documents that are not valid YAML, use
// unknown keys, or describe a graph core refuses to build.
var ErrInvalidDocument = errors.New("yamlgraph: invalid document")

// Document is the YAML shape of a graph.
type Document struct {
	Directed   *bool        `yaml:"directed,omitempty"`
	MultiEdges bool         `yaml:"multi_edges,omitempty"`
	Loops      bool         `yaml:"loops,omitempty"`
	Mixed      bool         `yaml:"mixed,omitempty"`
	Vertices   []VertexSpec `yaml:"vertices,omitempty"`
	Edges      []EdgeSpec   `yaml:"edges,omitempty"`
}

// VertexSpec describes one vertex.
type VertexSpec struct {
	ID         string                 `yaml:"id"`
	Properties map[string]interface{} `yaml:"properties,omitempty"`
}

// EdgeSpec describes one edge. Directed overrides the graph default and needs mixed: true.
type EdgeSpec struct {
	From       string                 `yaml:"from"`
	To         string                 `yaml:"to"`
	Label      string                 `yaml:"label,omitempty"`
	Directed   *bool                  `yaml:"directed,omitempty"`
	Properties map[string]interface{} `yaml:"properties,omitempty"`
}

// Decode reads one YAML document from r and builds the graph it describes.
func Decode(r io.Reader) (*core.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}

		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return doc.Build()
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte) (*core.Graph, error) {
	return Decode(bytes.NewReader(data))
}

// LoadFile decodes the graph stored at path.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("yamlgraph: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Build creates a graph from d.
func (d Document) Build() (*core.Graph, error) {
	directed := true
	if d.Directed != nil {
		directed = *d.Directed
	}

	opts := []core.GraphOption{core.WithDirected(directed)}
	if d.MultiEdges {
		opts = append(opts, core.WithMultiEdges())
	}
	if d.Loops {
		opts = append(opts, core.WithLoops())
	}
	if d.Mixed {
		opts = append(opts, core.WithMixedEdges())
	}
	g := core.NewGraph(opts...)

	seen := make(map[string]struct{}, len(d.Vertices))
	for i, v := range d.Vertices {
		if _, dup := seen[v.ID]; dup {
			return nil, fmt.Errorf("%w: vertices[%d]: duplicate id %q", ErrInvalidDocument, i, v.ID)
		}
		seen[v.ID] = struct{}{}

		if err := g.AddVertex(v.ID); err != nil {
			return nil, fmt.Errorf("%w: vertices[%d]: %w", ErrInvalidDocument, i, err)
		}
		for k, val := range v.Properties {
			if err := g.SetVertexProperty(v.ID, k, val); err != nil {
				return nil, fmt.Errorf("%w: vertices[%d]: %w", ErrInvalidDocument, i, err)
			}
		}
	}

	for i, e := range d.Edges {
		var eopts []core.EdgeOption
		if e.Directed != nil {
			eopts = append(eopts, core.WithEdgeDirected(*e.Directed))
		}
		for k, val := range e.Properties {
			eopts = append(eopts, core.WithEdgeProperty(k, val))
		}
		if _, err := g.AddEdge(e.From, e.To, e.Label, eopts...); err != nil {
			return nil, fmt.Errorf("%w: edges[%d] %s->%s: %w", ErrInvalidDocument, i, e.From, e.To, err)
		}
	}

	return g, nil
}
