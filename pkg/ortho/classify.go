package ortho

import (
	"github.com/yumyai/netalign/logger"
	"github.com/yumyai/netalign/pkg/model"
	"go.uber.org/zap"
)

// Membership answers whether a gene is part of a full species network.
type Membership interface {
	Has(gene string) bool
}

type Input struct {
	Graph  model.Graph // subnetwork as produced by network.Extract
	Groups *Groups
	// Full species networks, species 1 first. They place co-members that are
	// not in the subnetwork; either may be nil.
	Networks [2]Membership
}

// Partition splits subnetwork genes by orthology label, in graph order.
type Partition struct {
	Nonexist  []string
	ExistsIn  []string
	ExistsOut []string
	NonOrtho  []string
}

// Index maps a gene to one cross-species orthologous partner.
type Index struct {
	partner map[string]string
}

func (i *Index) Partner(gene string) (string, bool) {
	if i == nil {
		return "", false
	}
	p, ok := i.partner[gene]
	return p, ok
}

func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.partner)
}

type Result struct {
	// Graph is a classified copy of the input, sorted by class string.
	Graph     model.Graph
	Partition Partition
	Index     *Index
	Labels    map[string]string // gene id -> orthology label
}

func (r *Result) Label(gene string) string {
	return r.Labels[gene]
}

// Classify labels every protein of the subnetwork with exactly one of
// ortho_nonexist, ortho_exists_in, ortho_exists_out or nonortho.
//
// Co-members are visited in family order and the last cross-species
// co-member decides between exists_in and exists_out. The partner index is
// filled both ways and later pairs overwrite earlier ones.
func Classify(in Input) *Result {
	members := in.Graph.Members()
	index := &Index{partner: make(map[string]string)}
	labels := make(map[string]string, len(members))
	var part Partition

	graph := in.Graph.Clone()
	for _, node := range graph {
		if !node.IsProtein() {
			continue
		}
		gene := node.GeneID

		label := model.OrthoNonexist
		var group Orthogroup
		var found bool
		if in.Groups != nil {
			group, found = in.Groups.Lookup(gene)
		}
		if found {
			label = model.NonOrtho
			for _, co := range group.CoMembers(gene) {
				if speciesOf(co, members, in.Networks) == node.Species {
					continue
				}
				index.partner[co] = gene
				index.partner[gene] = co

				if _, inSub := members[co]; inSub {
					label = model.OrthoExistsIn
				} else {
					label = model.OrthoExistsOut
				}
			}
		}

		labels[gene] = label
		node.Classes = append(node.Classes, label)

		switch label {
		case model.OrthoNonexist:
			part.Nonexist = append(part.Nonexist, gene)
		case model.OrthoExistsIn:
			part.ExistsIn = append(part.ExistsIn, gene)
		case model.OrthoExistsOut:
			part.ExistsOut = append(part.ExistsOut, gene)
		default:
			part.NonOrtho = append(part.NonOrtho, gene)
		}
	}

	graph.SortByClasses()

	logger.Debug("Classified orthology",
		zap.Int("ortho_nonexist", len(part.Nonexist)),
		zap.Int("ortho_exists_in", len(part.ExistsIn)),
		zap.Int("ortho_exists_out", len(part.ExistsOut)),
		zap.Int("nonortho", len(part.NonOrtho)),
		zap.Int("partners", index.Len()))

	return &Result{
		Graph:     graph,
		Partition: part,
		Index:     index,
		Labels:    labels,
	}
}

// speciesOf places a gene by subnetwork membership first, then by the full
// networks. Zero means it cannot be placed and never matches a node.
func speciesOf(gene string, members map[string]model.Species, networks [2]Membership) model.Species {
	if s, ok := members[gene]; ok {
		return s
	}
	in1 := networks[0] != nil && networks[0].Has(gene)
	in2 := networks[1] != nil && networks[1].Has(gene)
	switch {
	case in1 && !in2:
		return model.Species1
	case in2 && !in1:
		return model.Species2
	default:
		return 0
	}
}
