// Package dataset loads the roster once at startup. Whatever a source returns
// is validated and then treated as immutable for the rest of the process.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jask/admissions/internal/config"
	"github.com/jask/admissions/internal/roster"
)

var ErrUnknownSource = errors.New("unknown dataset source")

// Source yields the candidate roster.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]roster.Candidate, error)
}

// Static serves the built-in sample roster.
type Static struct{}

func (Static) Name() string { return config.SourceSample }

func (Static) Load(context.Context) ([]roster.Candidate, error) {
	return roster.Sample(), nil
}

// FromConfig picks the source named in cfg.
func FromConfig(cfg config.DatasetConfig) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Source)) {
	case "", config.SourceSample:
		return Static{}, nil
	case config.SourceYAML:
		return YAMLFile{Path: cfg.Path}, nil
	case config.SourceSQLite:
		return SQLite{Path: cfg.Path}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownSource, cfg.Source)
}

// Load reads src and validates the result.
func Load(ctx context.Context, src Source, logger *zap.Logger) ([]roster.Candidate, error) {
	cands, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s roster: %w", src.Name(), err)
	}
	if err := roster.Validate(cands); err != nil {
		return nil, fmt.Errorf("validate %s roster: %w", src.Name(), err)
	}
	stamps := 0
	for _, c := range cands {
		stamps += len(c.Stamps)
		if !c.Status.Known() {
			logger.Warn("unrecognised status, rendering as pending",
				zap.Int("candidate", c.ID), zap.String("status", string(c.Status)))
		}
	}
	logger.Info("roster loaded",
		zap.String("source", src.Name()),
		zap.Int("candidates", len(cands)),
		zap.Int("stamps", stamps))
	return cands, nil
}
