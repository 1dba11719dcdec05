package network

import (
	"context"
	"fmt"
	"strconv"

	"github.com/yumyai/netalign/logger"
	"github.com/yumyai/netalign/pkg/ensembl"
	"github.com/yumyai/netalign/pkg/model"
	"go.uber.org/zap"
)

// Query is one species' half of a subnetwork request.
type Query struct {
	Name     string // species display name
	Graph    *Graph
	GeneID   string
	Resolver ensembl.Resolver
}

// Extract builds the ego-subnetwork of both query genes: the two species
// containers, then each species' protein nodes followed by its edges.
// Both queries are checked before anything is built.
func Extract(ctx context.Context, s1, s2 Query) (model.Graph, error) {
	queries := [2]Query{s1, s2}
	interactors := [2][]string{}

	for i, q := range queries {
		species := model.Species(i + 1)
		if q.Graph == nil {
			return nil, &UnknownProteinError{Species: species, GeneID: q.GeneID}
		}
		list, ok := q.Graph.Interactors(q.GeneID)
		if !ok {
			return nil, &UnknownProteinError{Species: species, GeneID: q.GeneID}
		}
		interactors[i] = list
	}

	graph := model.Graph{
		container(model.Species1, s1.Name),
		container(model.Species2, s2.Name),
	}

	for i, q := range queries {
		species := model.Species(i + 1)
		nodes, edges, err := ego(ctx, species, q, interactors[i])
		if err != nil {
			return nil, err
		}
		graph = append(graph, nodes...)
		graph = append(graph, edges...)

		logger.Debug("Extracted subnetwork",
			zap.String("species", q.Name),
			zap.String("query", q.GeneID),
			zap.Int("nodes", len(nodes)),
			zap.Int("edges", len(edges)))
	}

	return graph, nil
}

func container(species model.Species, name string) *model.Element {
	return &model.Element{
		Kind:    model.KindContainer,
		ID:      species.ContainerID(),
		Name:    name,
		Species: species,
		Classes: model.Classes{model.TagContainer, species.Short()},
	}
}

// ego numbers the interactors first and the query last, then links the
// query to every interactor.
func ego(ctx context.Context, species model.Species, q Query, interactors []string) (model.Graph, model.Graph, error) {
	members := make([]string, 0, len(interactors)+1)
	for _, gene := range interactors {
		if gene != q.GeneID {
			members = append(members, gene)
		}
	}
	members = append(members, q.GeneID)

	ids := make(map[string]string, len(members))
	nodes := make(model.Graph, 0, len(members))

	for n, gene := range members {
		var xrefs ensembl.Bundle
		if q.Resolver != nil {
			b, err := q.Resolver.Resolve(ctx, gene)
			if err != nil {
				return nil, nil, fmt.Errorf("resolve identifiers of %s: %w", gene, err)
			}
			xrefs = b
		} else {
			xrefs = ensembl.NewBundle()
		}

		name := xrefs.First(ensembl.KindName)
		if name == "" {
			name = gene
		}

		node := &model.Element{
			Kind:    model.KindProtein,
			ID:      strconv.Itoa(int(species)) + "." + strconv.Itoa(n),
			Name:    name,
			Parent:  species.ContainerID(),
			GeneID:  gene,
			Species: species,
			Xrefs:   xrefs,
			Classes: model.Classes{species.Tag(), model.TagProtein},
		}
		if gene == q.GeneID {
			node.Classes = append(node.Classes, model.TagQuery)
		}
		ids[gene] = node.ID
		nodes = append(nodes, node)
	}

	edges := make(model.Graph, 0, len(members)-1)
	for _, gene := range members[:len(members)-1] {
		edges = append(edges, &model.Element{
			Kind:    model.KindEdge,
			Source:  ids[q.GeneID],
			Target:  ids[gene],
			Classes: model.Classes{species.Tag(), model.InteractionEdge},
		})
	}

	return nodes, edges, nil
}
