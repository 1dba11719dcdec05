// Command netalign writes the orthology and alignment views of one query
// pair as JSON files.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/yumyai/netalign/logger"
	"github.com/yumyai/netalign/pkg/config"
	"github.com/yumyai/netalign/pkg/db"
	"github.com/yumyai/netalign/pkg/model"
	"github.com/yumyai/netalign/pkg/network"
	"github.com/yumyai/netalign/pkg/pipeline"
	"go.uber.org/zap"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUnknown = 2
)

type options struct {
	dataset  string
	q1, q2   string
	out      string
	db       string
	logLevel string
}

func parseOptions(argv []string, stderr io.Writer) (options, error) {
	env := config.LoadEnv()

	var o options
	fs := flag.NewFlagSet("netalign", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.dataset, "dataset", env.DatasetFile, "dataset manifest (TOML)")
	fs.StringVar(&o.q1, "q1", "", "species 1 query gene (manifest default when empty)")
	fs.StringVar(&o.q2, "q2", "", "species 2 query gene (manifest default when empty)")
	fs.StringVar(&o.out, "out", ".", "output directory")
	fs.StringVar(&o.db, "db", env.IdentifierDB, "SQLite file for identifier tables")
	fs.StringVar(&o.logLevel, "log-level", env.LogLevel, "debug|info|warn|error")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return o, nil
}

func run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	// The environment is read while parsing flags, so log first.
	if err := logger.InitLogger(logger.ParseLevel(os.Getenv("NETALIGN_LOG_LEVEL"))); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	defer logger.Sync()

	o, err := parseOptions(argv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	logger.SetLevel(logger.ParseLevel(o.logLevel))

	o1, o2, err := generate(ctx, o)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, network.ErrUnknownProtein) {
			return exitUnknown
		}
		return exitFailure
	}

	fmt.Fprintln(stdout, o1)
	fmt.Fprintln(stdout, o2)
	return exitOK
}

// generate runs the pipeline once and returns the two written paths.
func generate(ctx context.Context, o options) (string, string, error) {
	manifest, err := config.LoadDataset(o.dataset)
	if err != nil {
		return "", "", err
	}

	netdb, err := db.Open(o.db)
	if err != nil {
		return "", "", err
	}
	defer netdb.Close()

	ds, err := pipeline.Load(ctx, manifest, netdb.Identifiers)
	if err != nil {
		return "", "", err
	}

	res, err := ds.Run(ctx, o.q1, o.q2)
	if err != nil {
		return "", "", err
	}

	orthoName, err := viewFileName("o", res.Query1, res.Query2)
	if err != nil {
		return "", "", err
	}
	alignName, err := viewFileName("a", res.Query1, res.Query2)
	if err != nil {
		return "", "", err
	}
	if err := os.MkdirAll(o.out, 0o755); err != nil {
		return "", "", fmt.Errorf("create output directory: %w", err)
	}
	orthoPath := filepath.Join(o.out, orthoName)
	alignPath := filepath.Join(o.out, alignName)

	if err := writeGraph(orthoPath, res.Orthology); err != nil {
		return "", "", err
	}
	if err := writeGraph(alignPath, res.Alignment); err != nil {
		return "", "", err
	}

	logger.Info("Wrote views",
		zap.String("orthology", orthoPath),
		zap.String("alignment", alignPath))
	return orthoPath, alignPath, nil
}

// viewFileName builds <prefix>_<q1>_<q2>.json. Ids that could leave the
// output directory are rejected.
func viewFileName(prefix, q1, q2 string) (string, error) {
	for _, id := range []string{q1, q2} {
		if id == "." || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
			return "", fmt.Errorf("query id %q cannot be used in a file name", id)
		}
	}
	return fmt.Sprintf("%s_%s_%s.json", prefix, q1, q2), nil
}

func writeGraph(path string, g model.Graph) error {
	raw, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
