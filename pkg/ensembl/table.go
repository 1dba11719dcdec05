package ensembl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Table is an in-memory gene id -> Bundle map that remembers insertion order.
type Table struct {
	bundles map[string]*Bundle
	order   []string
}

func NewTable() *Table {
	return &Table{bundles: make(map[string]*Bundle)}
}

// Merge folds positional slot values into the gene's bundle. Earlier values
// are never replaced; new non-empty values are appended to their slot.
func (t *Table) Merge(geneID string, values []string) {
	b, ok := t.bundles[geneID]
	if !ok {
		nb := NewBundle()
		b = &nb
		t.bundles[geneID] = b
		t.order = append(t.order, geneID)
	}
	for i, v := range values {
		if Kind(i) >= NumKinds {
			break
		}
		b.Add(Kind(i), strings.TrimSpace(v))
	}
}

func (t *Table) Resolve(_ context.Context, geneID string) (Bundle, error) {
	if b, ok := t.bundles[geneID]; ok {
		return b.Clone(), nil
	}
	return NewBundle(), nil
}

func (t *Table) Has(geneID string) bool {
	_, ok := t.bundles[geneID]
	return ok
}

// Genes lists gene ids in first-seen order.
func (t *Table) Genes() []string {
	return append([]string{}, t.order...)
}

func (t *Table) Len() int {
	return len(t.order)
}

// ReadNCBITable merges the primary export (transcript, protein, name, ncbi).
func ReadNCBITable(r io.Reader, t *Table) error {
	return readTable(r, t, false)
}

// ReadOthersTable merges the secondary export (transcript, protein, name,
// swissprot, trembl, refseq). An empty ncbi placeholder is inserted so the
// columns line up with the Bundle slots.
func ReadOthersTable(r io.Reader, t *Table) error {
	return readTable(r, t, true)
}

func readTable(r io.Reader, t *Table, insertNCBI bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		// header
		if lineNo == 1 {
			continue
		}
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		geneID := strings.TrimSpace(fields[0])
		if geneID == "" {
			return fmt.Errorf("identifier table line %d: missing gene id", lineNo)
		}

		values := fields[1:]
		if insertNCBI {
			values = insertAt(values, int(KindNCBI), "")
		}
		for len(values) < int(NumKinds) {
			values = append(values, "")
		}
		t.Merge(geneID, values)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("identifier table: %w", err)
	}
	return nil
}

func insertAt(values []string, idx int, v string) []string {
	for len(values) < idx {
		values = append(values, "")
	}
	out := make([]string, 0, len(values)+1)
	out = append(out, values[:idx]...)
	out = append(out, v)
	return append(out, values[idx:]...)
}
