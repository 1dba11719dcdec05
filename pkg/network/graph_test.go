package network

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInteractions(t *testing.T) {
	input := "! BioGRID export\n\nQ\tX\tpubmed:1\nQ\tY\n\n! trailing comment\nX\tQ\n"

	pairs, err := ReadInteractions(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Interaction{{"Q", "X"}, {"Q", "Y"}, {"X", "Q"}}, pairs)
}

func TestReadInteractionsMalformed(t *testing.T) {
	_, err := ReadInteractions(strings.NewReader("Q\tX\nlonely\n"))
	assert.ErrorContains(t, err, "line 2")
}

func TestGraphIsSymmetric(t *testing.T) {
	g := NewGraph([]Interaction{{"Q", "X"}, {"Q", "Y"}, {"X", "Q"}, {"Y", "Z"}})

	q, ok := g.Interactors("Q")
	require.True(t, ok)
	assert.Equal(t, []string{"X", "Y"}, q)

	y, _ := g.Interactors("Y")
	assert.Equal(t, []string{"Q", "Z"}, y)

	for _, a := range g.Genes() {
		list, _ := g.Interactors(a)
		for _, b := range list {
			assert.True(t, g.Interacts(b, a), "%s-%s", b, a)
		}
	}
	assert.Equal(t, 4, g.Len())
}

func TestGraphSelfLoop(t *testing.T) {
	g := NewGraph([]Interaction{{"A", "A"}, {"A", "B"}})

	a, _ := g.Interactors("A")
	assert.Equal(t, []string{"A", "B"}, a)
	b, _ := g.Interactors("B")
	assert.Equal(t, []string{"A"}, b)
	assert.False(t, g.Has("C"))
}

func TestInteractorsReturnsCopy(t *testing.T) {
	g := NewGraph([]Interaction{{"A", "B"}})
	a, _ := g.Interactors("A")
	a[0] = "Z"

	again, _ := g.Interactors("A")
	assert.Equal(t, []string{"B"}, again)
}
