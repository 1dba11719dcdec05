package ortho

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Orthogroup is one orthologous family, gene ids from both species in file order.
type Orthogroup []string

// CoMembers returns the family without gene.
func (o Orthogroup) CoMembers(gene string) []string {
	out := make([]string, 0, len(o))
	for _, g := range o {
		if g != gene {
			out = append(out, g)
		}
	}
	return out
}

// Groups indexes orthogroups by gene. A gene listed in several families
// belongs to the last one read.
type Groups struct {
	groups []Orthogroup
	byGene map[string]int
}

func NewGroups(groups []Orthogroup) *Groups {
	g := &Groups{
		groups: groups,
		byGene: make(map[string]int),
	}
	for i, group := range groups {
		for _, gene := range group {
			g.byGene[gene] = i
		}
	}
	return g
}

// ReadOrthogroups parses one tab separated family per line; lines starting
// with '!' are comments.
func ReadOrthogroups(r io.Reader) (*Groups, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	var groups []Orthogroup
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		var group Orthogroup
		for _, f := range strings.Split(line, "\t") {
			if f = strings.TrimSpace(f); f != "" {
				group = append(group, f)
			}
		}
		groups = append(groups, group)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("orthogroup file: %w", err)
	}
	return NewGroups(groups), nil
}

func (g *Groups) Lookup(gene string) (Orthogroup, bool) {
	i, ok := g.byGene[gene]
	if !ok {
		return nil, false
	}
	return g.groups[i], true
}

func (g *Groups) Len() int {
	return len(g.groups)
}
