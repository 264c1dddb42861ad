// SPDX-License-Identifier: MIT

package seedfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/adjset/core"
)

var (
	// ErrMalformedEntries indicates that "entries" is not a mapping of
	// node to neighbor list.
	ErrMalformedEntries = errors.New("seedfile: malformed entries")

	// ErrMalformedEdge indicates an "edges" item that is not a pair.
	ErrMalformedEdge = errors.New("seedfile: malformed edge")
)

const (
	keyEntries = "entries"
	keyEdges   = "edges"
)

// Document is a decoded seed file.
type Document struct {
	// Entries keep document order; a repeated node appears twice and the
	// later set wins when seeded.
	Entries []core.Entry[string]

	// Edges are applied with SetEdge after seeding.
	Edges []core.Edge[string]
}

// rawDocument mirrors the on-disk layout. Entries stays a node so that
// mapping order survives decoding.
type rawDocument struct {
	Entries yaml.Node  `yaml:"entries,omitempty"`
	Edges   [][]string `yaml:"edges,omitempty"`
}

// Decode reads one seed document from r. An empty input yields an empty
// Document.
func Decode(r io.Reader) (*Document, error) {
	var raw rawDocument
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return &Document{}, nil
		}
		return nil, fmt.Errorf("seedfile: decode: %w", err)
	}

	doc := &Document{}
	if err := doc.decodeEntries(&raw.Entries); err != nil {
		return nil, err
	}
	for i, pair := range raw.Edges {
		if len(pair) != 2 {
			return nil, fmt.Errorf("seedfile: %s[%d] has %d items, want 2: %w",
				keyEdges, i, len(pair), ErrMalformedEdge)
		}
		doc.Edges = append(doc.Edges, core.Edge[string]{From: pair[0], To: pair[1]})
	}
	log.Debugf("decoded %d entries, %d edges", len(doc.Entries), len(doc.Edges))

	return doc, nil
}

func (d *Document) decodeEntries(n *yaml.Node) error {
	if n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null") {
		return nil // absent or "entries: ~"
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("seedfile: line %d: %s must be a mapping: %w",
			n.Line, keyEntries, ErrMalformedEntries)
	}

	d.Entries = make([]core.Entry[string], 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		var (
			node      string
			neighbors []string
		)
		if err := n.Content[i].Decode(&node); err != nil {
			return fmt.Errorf("seedfile: line %d: node key: %v: %w",
				n.Content[i].Line, err, ErrMalformedEntries)
		}
		if err := n.Content[i+1].Decode(&neighbors); err != nil {
			return fmt.Errorf("seedfile: line %d: neighbors of %q: %v: %w",
				n.Content[i+1].Line, node, err, ErrMalformedEntries)
		}
		d.Entries = append(d.Entries, core.Entry[string]{
			Node:      node,
			Neighbors: core.NewSet(neighbors...),
		})
	}

	return nil
}

// Load decodes the seed document stored at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seedfile: load %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Graph seeds a new graph from the entries, then applies the edges.
func (d *Document) Graph() *core.Graph[string] {
	g := core.NewGraph(d.Entries...)
	for _, e := range d.Edges {
		g.SetEdge(e.From, e.To)
	}

	return g
}

// Encode writes g to w as a seed document holding only entries.
func Encode(w io.Writer, g *core.Graph[string]) error {
	entries := &yaml.Node{Kind: yaml.MappingNode}
	for node, neighbors := range g.All() {
		list := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for v := range neighbors.All() {
			list.Content = append(list.Content, strNode(v))
		}
		entries.Content = append(entries.Content, strNode(node), list)
	}
	root := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{strNode(keyEntries), entries},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("seedfile: encode: %w", err)
	}

	return enc.Close()
}

// strNode returns a string scalar; the encoder quotes values that would
// otherwise resolve to another type.
func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
