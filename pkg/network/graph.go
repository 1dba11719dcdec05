package network

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Interaction is one undirected pair from an interaction file.
type Interaction [2]string

// ReadInteractions parses a tab separated interaction file. Lines starting
// with '!' and blank lines are skipped; columns past the second are ignored.
func ReadInteractions(r io.Reader) ([]Interaction, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var pairs []Interaction
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		fields := strings.Split(strings.TrimSpace(line), "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("interaction line %d: expected two tab separated gene ids, got %q", lineNo, line)
		}
		pairs = append(pairs, Interaction{strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("interaction file: %w", err)
	}
	return pairs, nil
}

// Graph is the symmetric adjacency of one species. It is read-only once built.
type Graph struct {
	adj   map[string][]string
	seen  map[string]map[string]struct{}
	order []string
}

// NewGraph indexes pairs in order. Each gene lists its interactors in
// first-seen order without duplicates; a self-loop only appears when the
// source lists one.
func NewGraph(pairs []Interaction) *Graph {
	g := &Graph{
		adj:  make(map[string][]string),
		seen: make(map[string]map[string]struct{}),
	}
	for _, p := range pairs {
		g.link(p[0], p[1])
		if p[0] != p[1] {
			g.link(p[1], p[0])
		}
	}
	return g
}

func (g *Graph) link(a, b string) {
	s, ok := g.seen[a]
	if !ok {
		s = make(map[string]struct{})
		g.seen[a] = s
		g.order = append(g.order, a)
	}
	if _, dup := s[b]; dup {
		return
	}
	s[b] = struct{}{}
	g.adj[a] = append(g.adj[a], b)
}

// Interactors returns a copy of gene's interactor list.
func (g *Graph) Interactors(gene string) ([]string, bool) {
	list, ok := g.adj[gene]
	if !ok {
		return nil, false
	}
	return append([]string{}, list...), true
}

func (g *Graph) Has(gene string) bool {
	if g == nil {
		return false
	}
	_, ok := g.adj[gene]
	return ok
}

func (g *Graph) Interacts(a, b string) bool {
	_, ok := g.seen[a][b]
	return ok
}

// Len is the number of genes with at least one interaction.
func (g *Graph) Len() int {
	return len(g.order)
}

func (g *Graph) Genes() []string {
	return append([]string{}, g.order...)
}
