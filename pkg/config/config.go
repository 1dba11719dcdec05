package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/yumyai/netalign/internal/util"
	"github.com/yumyai/netalign/logger"
	"go.uber.org/zap"
)

// Env is the process configuration read from the environment (and .env).
type Env struct {
	DataDir      string
	DatasetFile  string
	IdentifierDB string
	Addr         string
	LogLevel     string
}

// LoadEnv loads .env when present and fills defaults for unset variables.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env found, using local environment")
	}

	env := Env{
		DataDir:      os.Getenv("NETALIGN_DATA"),
		DatasetFile:  os.Getenv("NETALIGN_DATASET"),
		IdentifierDB: os.Getenv("NETALIGN_IDENTIFIER_DB"),
		Addr:         os.Getenv("NETALIGN_ADDR"),
		LogLevel:     os.Getenv("NETALIGN_LOG_LEVEL"),
	}

	if env.DataDir == "" {
		logger.Warn("No local environment (NETALIGN_DATA), using default value (./data)")
		env.DataDir = "./data"
	}
	if !util.DirExists(env.DataDir) {
		logger.Warn("Data directory does not exist", zap.String("dir", env.DataDir))
	}
	if env.DatasetFile == "" {
		env.DatasetFile = filepath.Join(env.DataDir, "dataset.toml")
	}
	if env.IdentifierDB == "" {
		env.IdentifierDB = ":memory:"
	}
	if env.Addr == "" {
		env.Addr = "0.0.0.0:8080"
	}
	return env
}

type SpeciesFiles struct {
	Name          string `toml:"name" validate:"required"`
	Network       string `toml:"network" validate:"required"`
	EnsemblNCBI   string `toml:"ensembl_ncbi" validate:"required"`
	EnsemblOthers string `toml:"ensembl_others" validate:"required"`
}

type Defaults struct {
	Query1 string `toml:"query1"`
	Query2 string `toml:"query2"`
}

// Dataset is the manifest of one species pair.
type Dataset struct {
	Species1    SpeciesFiles `toml:"species1"`
	Species2    SpeciesFiles `toml:"species2"`
	Orthogroups string       `toml:"orthogroups" validate:"required"`
	Alignment   string       `toml:"alignment" validate:"required"`
	Defaults    Defaults     `toml:"defaults"`
}

var validate = validator.New()

// LoadDataset reads a TOML manifest. Relative paths are resolved against the
// manifest's directory and every referenced file must exist.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset manifest '%s': %w", path, err)
	}

	var ds Dataset
	if err := toml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	base := filepath.Dir(path)
	for _, sp := range []*SpeciesFiles{&ds.Species1, &ds.Species2} {
		sp.Network = util.ResolvePath(base, sp.Network)
		sp.EnsemblNCBI = util.ResolvePath(base, sp.EnsemblNCBI)
		sp.EnsemblOthers = util.ResolvePath(base, sp.EnsemblOthers)
	}
	ds.Orthogroups = util.ResolvePath(base, ds.Orthogroups)
	ds.Alignment = util.ResolvePath(base, ds.Alignment)

	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("dataset manifest '%s': %w", path, err)
	}
	return &ds, nil
}

// Validate checks required fields, then that every file is present.
func (ds *Dataset) Validate() error {
	if err := validate.Struct(ds); err != nil {
		return formatValidationError(err)
	}

	var missing []string
	for _, f := range ds.Files() {
		if !util.FileExists(f) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", os.ErrNotExist, strings.Join(missing, ", "))
	}
	return nil
}

// Files lists every input file of the manifest.
func (ds *Dataset) Files() []string {
	return []string{
		ds.Species1.Network, ds.Species1.EnsemblNCBI, ds.Species1.EnsemblOthers,
		ds.Species2.Network, ds.Species2.EnsemblNCBI, ds.Species2.EnsemblOthers,
		ds.Orthogroups, ds.Alignment,
	}
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.TrimPrefix(e.Namespace(), "Dataset.")
		msgs = append(msgs, fmt.Sprintf("%s is %s", strings.ToLower(field), e.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
