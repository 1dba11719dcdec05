// Identifier bundles merged from the Ensembl BioMart exports of one species.

package ensembl

import "context"

type Kind int

const (
	KindTranscript Kind = iota
	KindProtein
	KindName
	KindNCBI
	KindSwissProt
	KindTrEMBL
	KindRefSeq
	NumKinds
)

func (k Kind) String() string {
	switch k {
	case KindTranscript:
		return "t_id"
	case KindProtein:
		return "p_id"
	case KindName:
		return "name"
	case KindNCBI:
		return "ncbi"
	case KindSwissProt:
		return "swissprot"
	case KindTrEMBL:
		return "trembl"
	case KindRefSeq:
		return "refseq"
	default:
		return "unknown"
	}
}

// Bundle holds every identifier known for one gene, one ordered slot per Kind.
// Slots are never nil once the bundle came out of a Table or a Resolver.
type Bundle [NumKinds][]string

func NewBundle() Bundle {
	var b Bundle
	for i := range b {
		b[i] = []string{}
	}
	return b
}

// Add appends value to the slot unless it is empty or already present.
func (b *Bundle) Add(kind Kind, value string) bool {
	if value == "" || kind < 0 || kind >= NumKinds {
		return false
	}
	for _, v := range b[kind] {
		if v == value {
			return false
		}
	}
	b[kind] = append(b[kind], value)
	return true
}

// First returns the first identifier of the slot or "".
func (b Bundle) First(kind Kind) string {
	if kind < 0 || kind >= NumKinds || len(b[kind]) == 0 {
		return ""
	}
	return b[kind][0]
}

func (b Bundle) Empty() bool {
	for _, slot := range b {
		if len(slot) > 0 {
			return false
		}
	}
	return true
}

func (b Bundle) Clone() Bundle {
	var c Bundle
	for i, slot := range b {
		c[i] = append([]string{}, slot...)
	}
	return c
}

// Map keys each slot by its JSON field name.
func (b Bundle) Map() map[string][]string {
	m := make(map[string][]string, NumKinds)
	for k := KindTranscript; k < NumKinds; k++ {
		slot := b[k]
		if slot == nil {
			slot = []string{}
		}
		m[k.String()] = slot
	}
	return m
}

// Resolver returns the identifier bundle of a gene. Unknown genes resolve to
// an empty bundle, not an error.
type Resolver interface {
	Resolve(ctx context.Context, geneID string) (Bundle, error)
}
