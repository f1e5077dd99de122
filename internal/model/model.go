package model

import (
	"errors"
	"fmt"
	"log/slog"

	"heat-risk/internal/config"
	"heat-risk/internal/risk"
)

const (
	KindLinear = "linear"
	KindRemote = "remote"
)

// ErrMissingURL means a remote model was selected without an endpoint
var ErrMissingURL = errors.New("model.url is required for a remote model")

// New loads the model selected by configuration. It is called once at startup.
func New(cfg config.ModelConfig, logger *slog.Logger) (risk.Model, error) {
	switch cfg.Kind {
	case KindLinear:
		m, err := LoadLinear(cfg.Path)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded linear model", "path", cfg.Path)
		return m, nil
	case KindRemote:
		if cfg.URL == "" {
			return nil, ErrMissingURL
		}
		logger.Info("using remote model", "url", cfg.URL, "timeout", cfg.Timeout)
		return NewRemote(cfg.URL, cfg.Timeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown model kind %q", cfg.Kind)
	}
}
