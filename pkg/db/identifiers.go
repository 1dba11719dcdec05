package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yumyai/netalign/logger"
	"github.com/yumyai/netalign/pkg/ensembl"
	"go.uber.org/zap"
)

const identifierSchema = `
CREATE TABLE IF NOT EXISTS genes (
	species TEXT NOT NULL,
	gene_id TEXT NOT NULL,
	PRIMARY KEY (species, gene_id)
);
CREATE TABLE IF NOT EXISTS gene_identifiers (
	species TEXT NOT NULL,
	gene_id TEXT NOT NULL,
	kind    INTEGER NOT NULL,
	value   TEXT NOT NULL,
	UNIQUE (species, gene_id, kind, value)
);
CREATE INDEX IF NOT EXISTS gene_identifiers_gene ON gene_identifiers (species, gene_id);
`

// IdentifierStore keeps the merged Ensembl identifier tables of every species.
// Values keep their first-seen order through rowid and duplicates are ignored
// on insert.
type IdentifierStore struct {
	db *sql.DB
}

func NewIdentifierStore(db *sql.DB) (*IdentifierStore, error) {
	if _, err := db.ExecContext(context.Background(), identifierSchema); err != nil {
		return nil, fmt.Errorf("NewIdentifierStore: schema failed: %w", err)
	}
	return &IdentifierStore{db: db}, nil
}

// Import replaces everything stored under species with the bundles of table,
// in one transaction.
func (s *IdentifierStore) Import(ctx context.Context, species string, table *ensembl.Table) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Import: begin failed: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM gene_identifiers WHERE species = ?`,
		`DELETE FROM genes WHERE species = ?`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, species); err != nil {
			return fmt.Errorf("Import: clear failed: %w", err)
		}
	}

	geneStm, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO genes (species, gene_id) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("Import: prepare failed: %w", err)
	}
	defer geneStm.Close()

	idStm, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO gene_identifiers (species, gene_id, kind, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("Import: prepare failed: %w", err)
	}
	defer idStm.Close()

	for _, gene := range table.Genes() {
		if _, err := geneStm.ExecContext(ctx, species, gene); err != nil {
			return fmt.Errorf("Import: gene %s: %w", gene, err)
		}
		bundle, _ := table.Resolve(ctx, gene)
		for kind := ensembl.KindTranscript; kind < ensembl.NumKinds; kind++ {
			for _, v := range bundle[kind] {
				if _, err := idStm.ExecContext(ctx, species, gene, int(kind), v); err != nil {
					return fmt.Errorf("Import: gene %s %s: %w", gene, kind, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Import: commit failed: %w", err)
	}

	logger.Info("Imported identifiers", zap.String("species", species), zap.Int("genes", table.Len()))
	return nil
}

// Resolve returns the bundle of gene under species; unknown genes give an
// empty bundle.
func (s *IdentifierStore) Resolve(ctx context.Context, species, gene string) (ensembl.Bundle, error) {
	bundle := ensembl.NewBundle()

	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, value FROM gene_identifiers WHERE species = ? AND gene_id = ? ORDER BY kind, rowid`,
		species, gene)
	if err != nil {
		return bundle, fmt.Errorf("Resolve: query failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind int
		var value string
		if err := rows.Scan(&kind, &value); err != nil {
			return bundle, fmt.Errorf("Resolve: scan failed: %w", err)
		}
		bundle.Add(ensembl.Kind(kind), value)
	}
	return bundle, rows.Err()
}

// CountGenes reports how many genes were imported for species.
func (s *IdentifierStore) CountGenes(ctx context.Context, species string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM genes WHERE species = ?`, species).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("CountGenes: %w", err)
	}
	return n, nil
}

// Resolver binds the store to one species.
func (s *IdentifierStore) Resolver(species string) ensembl.Resolver {
	return &speciesResolver{store: s, species: species}
}

type speciesResolver struct {
	store   *IdentifierStore
	species string
}

func (r *speciesResolver) Resolve(ctx context.Context, gene string) (ensembl.Bundle, error) {
	return r.store.Resolve(ctx, r.species, gene)
}
