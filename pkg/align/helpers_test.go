package align

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yumyai/netalign/pkg/network"
	"github.com/yumyai/netalign/pkg/ortho"
)

func classified(t *testing.T, s1, s2 []network.Interaction, q1, q2 string, groups ...ortho.Orthogroup) *ortho.Result {
	t.Helper()
	g1 := network.NewGraph(s1)
	g2 := network.NewGraph(s2)
	sub, err := network.Extract(context.Background(),
		network.Query{Name: "S cerevisiae", Graph: g1, GeneID: q1},
		network.Query{Name: "C elegans", Graph: g2, GeneID: q2})
	require.NoError(t, err)

	return ortho.Classify(ortho.Input{
		Graph:    sub,
		Groups:   ortho.NewGroups(groups),
		Networks: [2]ortho.Membership{g1, g2},
	})
}

// scenario: species 1 {Q: X, Y}, species 2 {Z: W}, orthogroup [X, Z].
func scenario(t *testing.T) *ortho.Result {
	return classified(t,
		[]network.Interaction{{"Q", "X"}, {"Q", "Y"}},
		[]network.Interaction{{"Z", "W"}},
		"Q", "Z",
		ortho.Orthogroup{"X", "Z"})
}
