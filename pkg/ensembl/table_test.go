package ensembl

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ncbiTable = `Gene stable ID	Transcript stable ID	Protein stable ID	Gene name	NCBI gene ID
YOL139C	YOL139C_mRNA	YOL139C	CDC33	854021
YOL139C	YOL139C_mRNA	YOL139C	CDC33	854021
YAL001C	YAL001C_mRNA	YAL001C		851190
YBR002W	YBR002W_mRNA
`

const othersTable = `Gene stable ID	Transcript stable ID	Protein stable ID	Gene name	UniProtKB/Swiss-Prot ID	UniProtKB/TrEMBL ID	RefSeq peptide ID
YOL139C	YOL139C_mRNA	YOL139C	CDC33	P07260		NP_014502
YOL139C	YOL139C_mRNA_2	YOL139C	CDC33	P07260	A0A6A5	NP_014502
WBGene00002061	F53A2.6	F53A2.6	ife-1	P48598
`

func loadTables(t *testing.T) *Table {
	t.Helper()
	table := NewTable()
	require.NoError(t, ReadNCBITable(strings.NewReader(ncbiTable), table))
	require.NoError(t, ReadOthersTable(strings.NewReader(othersTable), table))
	return table
}

func TestMergeKeepsFirstSeenOrder(t *testing.T) {
	table := loadTables(t)
	b, err := table.Resolve(context.Background(), "YOL139C")
	require.NoError(t, err)

	assert.Equal(t, []string{"YOL139C_mRNA", "YOL139C_mRNA_2"}, b[KindTranscript])
	assert.Equal(t, []string{"YOL139C"}, b[KindProtein])
	assert.Equal(t, []string{"CDC33"}, b[KindName])
	assert.Equal(t, []string{"854021"}, b[KindNCBI])
	assert.Equal(t, []string{"P07260"}, b[KindSwissProt])
	assert.Equal(t, []string{"A0A6A5"}, b[KindTrEMBL])
	assert.Equal(t, []string{"NP_014502"}, b[KindRefSeq])
}

func TestMergeDuplicateLeavesBundleUnchanged(t *testing.T) {
	table := loadTables(t)
	before, _ := table.Resolve(context.Background(), "YOL139C")

	table.Merge("YOL139C", []string{"YOL139C_mRNA", "", "CDC33"})
	after, _ := table.Resolve(context.Background(), "YOL139C")

	assert.Equal(t, before, after)
}

func TestSlotsAreNeverNil(t *testing.T) {
	table := loadTables(t)

	b, _ := table.Resolve(context.Background(), "YBR002W")
	for k := KindTranscript; k < NumKinds; k++ {
		assert.NotNil(t, b[k], k.String())
	}
	assert.Empty(t, b[KindName])
	assert.Equal(t, "", b.First(KindName))

	missing, err := table.Resolve(context.Background(), "NOPE")
	require.NoError(t, err)
	assert.True(t, missing.Empty())
	assert.NotNil(t, missing[KindRefSeq])
}

func TestOthersOnlyGeneGetsFreshBundle(t *testing.T) {
	table := loadTables(t)
	require.True(t, table.Has("WBGene00002061"))

	b, _ := table.Resolve(context.Background(), "WBGene00002061")
	assert.Equal(t, "ife-1", b.First(KindName))
	assert.Empty(t, b[KindNCBI])
	assert.Equal(t, "P48598", b.First(KindSwissProt))
	assert.Equal(t, []string{"YOL139C", "YAL001C", "YBR002W", "WBGene00002061"}, table.Genes())
}

func TestResolveReturnsCopy(t *testing.T) {
	table := loadTables(t)
	b, _ := table.Resolve(context.Background(), "YOL139C")
	b[KindName][0] = "changed"

	again, _ := table.Resolve(context.Background(), "YOL139C")
	assert.Equal(t, "CDC33", again.First(KindName))
}

func TestMissingGeneID(t *testing.T) {
	err := ReadNCBITable(strings.NewReader("header\n\tT1\tP1\n"), NewTable())
	assert.ErrorContains(t, err, "line 2")
}

func TestBundleMap(t *testing.T) {
	b := NewBundle()
	b.Add(KindNCBI, "42")
	m := b.Map()
	assert.Len(t, m, int(NumKinds))
	assert.Equal(t, []string{"42"}, m["ncbi"])
	assert.Equal(t, []string{}, m["refseq"])
}
