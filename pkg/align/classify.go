package align

import (
	"io"

	"github.com/yumyai/netalign/logger"
	"github.com/yumyai/netalign/pkg/model"
	"github.com/yumyai/netalign/pkg/ortho"
	"go.uber.org/zap"
)

// Entry is one direction of a labelled pair.
type Entry struct {
	Gene    string
	Partner string
	Label   string
}

// Labels is the symmetric gene -> (partner, label) mapping of the alignment
// view. Every gene has at most one partner.
type Labels struct {
	order   []string
	entries map[string]Entry
}

func newLabels() *Labels {
	return &Labels{entries: make(map[string]Entry)}
}

func (l *Labels) set(a, b, label string) {
	for _, e := range []Entry{{a, b, label}, {b, a, label}} {
		if _, ok := l.entries[e.Gene]; !ok {
			l.order = append(l.order, e.Gene)
		}
		l.entries[e.Gene] = e
	}
}

func (l *Labels) Get(gene string) (Entry, bool) {
	e, ok := l.entries[gene]
	return e, ok
}

func (l *Labels) Len() int {
	return len(l.order)
}

// Pairs returns one entry per unordered pair, in the order pairs were labelled.
func (l *Labels) Pairs() []Entry {
	done := make(map[string]struct{}, len(l.order))
	var out []Entry
	for _, gene := range l.order {
		if _, ok := done[gene]; ok {
			continue
		}
		e := l.entries[gene]
		done[e.Gene] = struct{}{}
		done[e.Partner] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Map returns gene -> {partner: label}.
func (l *Labels) Map() map[string]map[string]string {
	m := make(map[string]map[string]string, len(l.entries))
	for gene, e := range l.entries {
		m[gene] = map[string]string{e.Partner: e.Label}
	}
	return m
}

// Classify reads the alignment mapping against the classified orthology view.
//
// Each kept pair is labelled once per direction in field order: the
// align_nonortho default is reapplied, then upgraded to align_ortho when that
// direction's gene is ortho_exists_in. The second field therefore decides. Genes left without an alignment partner are
// paired as nonalign_ortho with their orthology partner when that partner is
// an unpaired subnetwork member of the other species.
func Classify(alignment io.Reader, orth *ortho.Result) (*Labels, []Pair, error) {
	members := orth.Graph.Members()

	pairs, err := ScanPairs(alignment, members)
	if err != nil {
		return nil, nil, err
	}

	labels := newLabels()
	for _, p := range pairs {
		for _, gene := range [2]string{p.S1, p.S2} {
			label := model.AlignNonOrtho
			if orth.Label(gene) == model.OrthoExistsIn {
				label = model.AlignOrtho
			}
			labels.set(p.S1, p.S2, label)
		}
	}

	for _, node := range orth.Graph {
		if !node.IsProtein() {
			continue
		}
		gene := node.GeneID
		if _, ok := labels.Get(gene); ok {
			continue
		}
		partner, ok := orth.Index.Partner(gene)
		if !ok {
			continue
		}
		species, inSub := members[partner]
		if !inSub || species == node.Species {
			continue
		}
		if _, taken := labels.Get(partner); taken {
			continue
		}
		labels.set(gene, partner, model.NonAlignOrtho)
	}

	logger.Debug("Classified alignment",
		zap.Int("pairs", len(pairs)),
		zap.Int("labelled", labels.Len()))

	return labels, pairs, nil
}
