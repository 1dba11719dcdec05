package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/yumyai/netalign/logger"
	"github.com/yumyai/netalign/pkg/align"
	"github.com/yumyai/netalign/pkg/ensembl"
	"github.com/yumyai/netalign/pkg/model"
	"github.com/yumyai/netalign/pkg/network"
	"github.com/yumyai/netalign/pkg/ortho"
	"go.uber.org/zap"
)

// Species is one side of a dataset.
type Species struct {
	Name     string
	Graph    *network.Graph
	Resolver ensembl.Resolver
}

// Dataset is everything a run needs besides the two query genes. It is
// read-only after construction and safe to share between goroutines.
type Dataset struct {
	Species [2]Species
	Groups  *ortho.Groups

	// OpenAlignment returns a fresh reader over the alignment mapping.
	// The scan stops early, so each run opens its own.
	OpenAlignment func() (io.ReadCloser, error)

	// Defaults are the query genes used when a caller leaves one empty.
	Defaults [2]string
}

type Result struct {
	Query1     string
	Query2     string
	Subnetwork model.Graph
	Orthology  model.Graph
	Alignment  model.Graph
	Partition  ortho.Partition
	Labels     *align.Labels
	Pairs      []align.Pair
}

// Run extracts the subnetwork of q1 and q2 and builds both views.
func (d *Dataset) Run(ctx context.Context, q1, q2 string) (*Result, error) {
	start := time.Now()
	if q1 == "" {
		q1 = d.Defaults[0]
	}
	if q2 == "" {
		q2 = d.Defaults[1]
	}

	sub, err := network.Extract(ctx, d.query(0, q1), d.query(1, q2))
	if err != nil {
		return nil, err
	}

	orth := ortho.Classify(ortho.Input{
		Graph:    sub,
		Groups:   d.Groups,
		Networks: [2]ortho.Membership{d.Species[0].Graph, d.Species[1].Graph},
	})

	if d.OpenAlignment == nil {
		return nil, fmt.Errorf("dataset has no alignment source")
	}
	rc, err := d.OpenAlignment()
	if err != nil {
		return nil, fmt.Errorf("open alignment: %w", err)
	}
	defer rc.Close()

	labels, pairs, err := align.Classify(rc, orth)
	if err != nil {
		return nil, fmt.Errorf("classify alignment: %w", err)
	}

	res := &Result{
		Query1:     q1,
		Query2:     q2,
		Subnetwork: sub,
		Orthology:  orth.Graph,
		Alignment:  align.Assemble(labels, orth.Graph),
		Partition:  orth.Partition,
		Labels:     labels,
		Pairs:      pairs,
	}

	logger.Info("Pipeline finished",
		zap.String("query1", q1),
		zap.String("query2", q2),
		zap.Int("orthology_elements", len(res.Orthology)),
		zap.Int("alignment_elements", len(res.Alignment)),
		zap.Duration("duration", time.Since(start)))

	return res, nil
}

func (d *Dataset) query(i int, gene string) network.Query {
	sp := d.Species[i]
	return network.Query{
		Name:     sp.Name,
		Graph:    sp.Graph,
		GeneID:   gene,
		Resolver: sp.Resolver,
	}
}
