package align

import (
	"strconv"
	"strings"

	"github.com/yumyai/netalign/pkg/model"
)

const pairEdgeWeight = 5

// EdgeClass derives the class of a pair edge from the tokens of its label.
func EdgeClass(label string) string {
	tokens := map[string]bool{}
	for _, t := range strings.Split(label, "_") {
		tokens[t] = true
	}
	switch {
	case tokens["ortho"] && tokens["nonalign"]:
		return model.OrthoEdge
	case tokens["align"] && tokens["nonortho"]:
		return model.AlignEdge
	case tokens["align"] && tokens["ortho"]:
		return model.AlignOrthoEdge
	default:
		return ""
	}
}

// relabel swaps every orthology tag for the alignment label.
func relabel(classes model.Classes, label string) model.Classes {
	out := make(model.Classes, len(classes))
	for i, c := range classes {
		if strings.Contains(c, "ortho") {
			out[i] = label
		} else {
			out[i] = c
		}
	}
	return out
}

// Assemble builds the alignment view from the labels and the orthology view.
// Each labelled pair is placed under a compound group node and linked by a
// weighted pair edge. Interaction edges between labelled nodes follow; they
// take the shared label when both ends agree on an aligned label, otherwise
// they are demoted to plain interactions of weight 1. Inputs are not modified.
func Assemble(labels *Labels, orthology model.Graph) model.Graph {
	var out model.Graph

	for _, e := range orthology {
		if e.Kind == model.KindContainer {
			c := e.Clone()
			c.Classes = model.Classes{model.TagAlignment, e.Species.Short()}
			out = append(out, c)
		}
	}

	nodes := make(map[string]*model.Element)
	for gene, e := range orthology.Proteins() {
		nodes[gene] = e.Clone()
	}

	parents := make(map[string]string)
	assigned := make(map[string]string)
	added := make(map[string]bool)
	next := 0

	for _, entry := range labels.Pairs() {
		a, okA := nodes[entry.Gene]
		b, okB := nodes[entry.Partner]
		if !okA || !okB {
			continue
		}

		a.Classes = relabel(a.Classes, entry.Label)
		b.Classes = relabel(b.Classes, entry.Label)

		group, ok := parents[a.ID]
		if !ok {
			group, ok = parents[b.ID]
		}
		if !ok {
			group = "group" + strconv.Itoa(next)
			next++
			out = append(out, &model.Element{
				Kind:    model.KindGroup,
				ID:      group,
				Classes: model.Classes{model.TagCompound},
			})
		}
		parents[a.ID] = group
		parents[b.ID] = group
		a.Parent = group
		b.Parent = group

		for _, n := range []*model.Element{a, b} {
			if !added[n.GeneID] {
				out = append(out, n)
				added[n.GeneID] = true
			}
		}
		assigned[a.ID] = entry.Label
		assigned[b.ID] = entry.Label

		out = append(out, &model.Element{
			Kind:    model.KindEdge,
			Source:  a.ID,
			Target:  b.ID,
			Weight:  pairEdgeWeight,
			Classes: model.Classes{EdgeClass(entry.Label)},
		})
	}

	for _, e := range orthology {
		if !e.IsEdge() {
			continue
		}
		src, okS := assigned[e.Source]
		dst, okT := assigned[e.Target]
		if !okS || !okT {
			continue
		}
		c := e.Clone()
		if src == dst && !strings.Contains(src, "nonalign") {
			c.Classes = model.Classes{src}
		} else {
			for i, tag := range c.Classes {
				c.Classes[i] = strings.Replace(tag, model.InteractionEdge, model.PlainEdge, 1)
			}
			c.Weight = 1
		}
		out = append(out, c)
	}

	return out
}
