package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumyai/netalign/pkg/ensembl"
)

func TestSpeciesNames(t *testing.T) {
	assert.Equal(t, "species2", Species2.Tag())
	assert.Equal(t, "s1", Species1.Short())
	assert.Equal(t, "species1", Species1.ContainerID())
	assert.False(t, Species(3).Valid())
}

func TestProteinJSON(t *testing.T) {
	xrefs := ensembl.NewBundle()
	xrefs.Add(ensembl.KindName, "CDC33")
	xrefs.Add(ensembl.KindSwissProt, "P07260")
	xrefs.Add(ensembl.KindSwissProt, "P07261")

	e := &Element{
		Kind:    KindProtein,
		ID:      "1.3",
		Name:    "CDC33",
		Parent:  "species1",
		GeneID:  "YOL139C",
		Species: Species1,
		Xrefs:   xrefs,
		Classes: Classes{"species1", "protein", "query"},
	}

	raw, err := json.Marshal(e)
	require.NoError(t, err)

	var got struct {
		Data    map[string]any `json:"data"`
		Classes string         `json:"classes"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "species1 protein query", got.Classes)
	assert.Equal(t, "1.3", got.Data["id"])
	assert.Equal(t, "YOL139C", got.Data["e_id"])
	assert.Equal(t, "P07260", got.Data["swissprot"])
	assert.Equal(t, "", got.Data["ncbi"])
	assert.Equal(t, "species1", got.Data["parent"])
	assert.Len(t, got.Data["xrefs"].(map[string]any)["swissprot"], 2)
}

func TestContainerAndEdgeJSON(t *testing.T) {
	group, err := json.Marshal(&Element{Kind: KindGroup, ID: "group0", Classes: Classes{TagCompound}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"id":"group0","name":""},"classes":"compound"}`, string(group))

	edge, err := json.Marshal(&Element{Kind: KindEdge, Source: "1.0", Target: "2.0", Weight: 5, Classes: Classes{AlignOrthoEdge}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"source":"1.0","target":"2.0","weight":5},"classes":"alignortho_edge"}`, string(edge))

	plain, err := json.Marshal(&Element{Kind: KindEdge, Source: "1.3", Target: "1.0", Classes: Classes{"species1", "edge"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"source":"1.3","target":"1.0"},"classes":"species1 edge"}`, string(plain))
}

func TestSortByClassesIsStable(t *testing.T) {
	g := Graph{
		{Kind: KindEdge, Source: "a", Classes: Classes{"species1", "edge"}},
		{Kind: KindContainer, ID: "species1", Classes: Classes{"container", "s1"}},
		{Kind: KindEdge, Source: "b", Classes: Classes{"species1", "edge"}},
		{Kind: KindProtein, ID: "1.0", Classes: Classes{"species1", "protein", "nonortho"}},
	}
	g.SortByClasses()

	require.True(t, g.IsSortedByClasses())
	assert.Equal(t, "species1", g[0].ID)
	assert.Equal(t, "a", g[1].Source)
	assert.Equal(t, "b", g[2].Source)
	assert.Equal(t, "1.0", g[3].ID)
}

func TestCloneIsDeep(t *testing.T) {
	xrefs := ensembl.NewBundle()
	xrefs.Add(ensembl.KindName, "ife-1")
	g := Graph{{Kind: KindProtein, GeneID: "W", Xrefs: xrefs, Classes: Classes{"species2", "protein"}}}

	c := g.Clone()
	c[0].Classes[1] = "changed"
	c[0].Xrefs[ensembl.KindName][0] = "changed"

	assert.Equal(t, "protein", g[0].Classes[1])
	assert.Equal(t, "ife-1", g[0].Xrefs.First(ensembl.KindName))
	assert.Equal(t, map[string]Species{"W": 0}, g.Members())
}
