package handler

// DI for all handlers alike.

import (
	"github.com/yumyai/netalign/pkg/metrics"
	"github.com/yumyai/netalign/pkg/pipeline"
)

type NetContext struct {
	Dataset *pipeline.Dataset
	Metrics *metrics.Collector // optional
}
