package align

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumyai/netalign/pkg/model"
	"github.com/yumyai/netalign/pkg/network"
	"github.com/yumyai/netalign/pkg/ortho"
)

func TestClassifyScenario(t *testing.T) {
	labels, pairs, err := Classify(strings.NewReader("X\tZ\n"), scenario(t))
	require.NoError(t, err)

	assert.Equal(t, []Pair{{"X", "Z"}}, pairs)
	assert.Equal(t, map[string]map[string]string{
		"X": {"Z": model.AlignOrtho},
		"Z": {"X": model.AlignOrtho},
	}, labels.Map())
}

func TestClassifyLabels(t *testing.T) {
	// species 1: Q - A, B, C ; species 2: R - E, F, G
	orth := classified(t,
		[]network.Interaction{{"Q", "A"}, {"Q", "B"}, {"Q", "C"}},
		[]network.Interaction{{"R", "E"}, {"R", "F"}, {"R", "G"}},
		"Q", "R",
		ortho.Orthogroup{"A", "E"},
		ortho.Orthogroup{"C", "G"},
	)
	// A-F aligned although A's ortholog is E; B-R aligned with no orthology.
	// F has no orthogroup, so the pair stays align_nonortho.
	labels, _, err := Classify(strings.NewReader("A\tF\nB\tR\n"), orth)
	require.NoError(t, err)

	a, ok := labels.Get("A")
	require.True(t, ok)
	assert.Equal(t, Entry{"A", "F", model.AlignNonOrtho}, a)

	f, _ := labels.Get("F")
	assert.Equal(t, Entry{"F", "A", model.AlignNonOrtho}, f)

	b, _ := labels.Get("B")
	assert.Equal(t, model.AlignNonOrtho, b.Label)

	// C and G are unaligned orthologs inside the subnetwork.
	c, _ := labels.Get("C")
	assert.Equal(t, Entry{"C", "G", model.NonAlignOrtho}, c)
	g, _ := labels.Get("G")
	assert.Equal(t, Entry{"G", "C", model.NonAlignOrtho}, g)

	// E's ortholog A is already aligned with F, so E stays out of the view.
	_, ok = labels.Get("E")
	assert.False(t, ok)
	_, ok = labels.Get("Q")
	assert.False(t, ok)
}

func TestClassifySecondFieldDecidesUpgrade(t *testing.T) {
	// A and E are orthologs inside the subnetwork; F and B have no family.
	orth := classified(t,
		[]network.Interaction{{"Q", "A"}, {"Q", "B"}},
		[]network.Interaction{{"R", "E"}, {"R", "F"}},
		"Q", "R",
		ortho.Orthogroup{"A", "E"},
	)
	require.Equal(t, model.OrthoExistsIn, orth.Label("A"))
	require.Equal(t, model.OrthoExistsIn, orth.Label("E"))

	tests := []struct {
		line string
		gene string
		want string
	}{
		{"A\tF\n", "A", model.AlignNonOrtho},
		{"F\tA\n", "A", model.AlignOrtho},
		{"B\tE\n", "E", model.AlignOrtho},
		{"E\tB\n", "E", model.AlignNonOrtho},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(strings.ReplaceAll(tt.line, "\t", "-")), func(t *testing.T) {
			labels, pairs, err := Classify(strings.NewReader(tt.line), orth)
			require.NoError(t, err)
			require.Len(t, pairs, 1)

			e, ok := labels.Get(tt.gene)
			require.True(t, ok)
			assert.Equal(t, tt.want, e.Label)

			back, ok := labels.Get(e.Partner)
			require.True(t, ok)
			assert.Equal(t, tt.want, back.Label)
		})
	}
}

func TestClassifyIsSymmetric(t *testing.T) {
	orth := classified(t,
		[]network.Interaction{{"Q", "A"}, {"Q", "B"}, {"Q", "C"}},
		[]network.Interaction{{"R", "E"}, {"R", "F"}, {"R", "G"}},
		"Q", "R",
		ortho.Orthogroup{"B", "G"},
		ortho.Orthogroup{"C", "F", "OUT"},
	)
	labels, _, err := Classify(strings.NewReader("A\tE\nQ\tR\n"), orth)
	require.NoError(t, err)

	for gene, partners := range labels.Map() {
		require.Len(t, partners, 1)
		for partner, label := range partners {
			back, ok := labels.Get(partner)
			require.True(t, ok, partner)
			assert.Equal(t, gene, back.Partner)
			assert.Equal(t, label, back.Label)
		}
	}
	assert.Len(t, labels.Pairs(), labels.Len()/2)
}

func TestClassifyNoAlignmentNoOrthology(t *testing.T) {
	orth := classified(t,
		[]network.Interaction{{"Q", "A"}},
		[]network.Interaction{{"R", "E"}},
		"Q", "R")

	labels, pairs, err := Classify(strings.NewReader(""), orth)
	require.NoError(t, err)
	assert.Empty(t, pairs)
	assert.Equal(t, 0, labels.Len())
	assert.Empty(t, Assemble(labels, orth.Graph).Edges())
}
