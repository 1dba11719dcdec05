package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/yumyai/netalign/logger"
	"github.com/yumyai/netalign/pkg/config"
	"github.com/yumyai/netalign/pkg/db"
	"github.com/yumyai/netalign/pkg/ensembl"
	"github.com/yumyai/netalign/pkg/model"
	"github.com/yumyai/netalign/pkg/network"
	"github.com/yumyai/netalign/pkg/ortho"
	"go.uber.org/zap"
)

// Load reads every file of the manifest once. Identifier tables are imported
// into store when it is non-nil and resolved from memory otherwise.
func Load(ctx context.Context, manifest *config.Dataset, store *db.IdentifierStore) (*Dataset, error) {
	ds := &Dataset{
		Defaults: [2]string{manifest.Defaults.Query1, manifest.Defaults.Query2},
	}

	for i, files := range []config.SpeciesFiles{manifest.Species1, manifest.Species2} {
		species := model.Species(i + 1)

		graph, err := loadNetwork(files.Network)
		if err != nil {
			return nil, err
		}

		table, err := loadIdentifiers(files)
		if err != nil {
			return nil, err
		}

		var resolver ensembl.Resolver = table
		if store != nil {
			if err := store.Import(ctx, species.Tag(), table); err != nil {
				return nil, fmt.Errorf("import identifiers of %s: %w", files.Name, err)
			}
			resolver = store.Resolver(species.Tag())

			stored, err := store.CountGenes(ctx, species.Tag())
			if err != nil {
				return nil, err
			}
			logger.Debug("Imported identifiers", zap.String("species", files.Name), zap.Int("stored_genes", stored))
		}

		ds.Species[i] = Species{Name: files.Name, Graph: graph, Resolver: resolver}

		logger.Info("Loaded species",
			zap.String("species", files.Name),
			zap.Int("proteins", graph.Len()),
			zap.Int("identifiers", table.Len()))
	}

	groups, err := withFile(manifest.Orthogroups, ortho.ReadOrthogroups)
	if err != nil {
		return nil, err
	}
	ds.Groups = groups

	alignment := manifest.Alignment
	ds.OpenAlignment = func() (io.ReadCloser, error) {
		return os.Open(alignment)
	}

	logger.Info("Loaded orthogroups", zap.Int("groups", groups.Len()))
	return ds, nil
}

func loadNetwork(path string) (*network.Graph, error) {
	pairs, err := withFile(path, network.ReadInteractions)
	if err != nil {
		return nil, err
	}
	return network.NewGraph(pairs), nil
}

func loadIdentifiers(files config.SpeciesFiles) (*ensembl.Table, error) {
	table := ensembl.NewTable()
	readers := []struct {
		path string
		read func(io.Reader, *ensembl.Table) error
	}{
		{files.EnsemblNCBI, ensembl.ReadNCBITable},
		{files.EnsemblOthers, ensembl.ReadOthersTable},
	}
	for _, rd := range readers {
		_, err := withFile(rd.path, func(r io.Reader) (struct{}, error) {
			return struct{}{}, rd.read(r, table)
		})
		if err != nil {
			return nil, err
		}
	}
	return table, nil
}

func withFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	v, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return v, nil
}
