// Package logging builds the zap loggers used by codepdf.
package logging

import (
	"go.uber.org/zap"
)

// Logger is the logger installed by the last successful Setup.
var Logger = zap.NewNop()

// Options selects how the logger is built.
type Options struct {
	Debug   bool
	Name    string
	Version string
	// OutputPaths defaults to stderr so the run summary on stdout stays clean.
	OutputPaths []string
}

// Config returns the zap configuration for opts: the development config in
// debug mode, the production config otherwise. Sampling is off since a run
// logs at most one entry per skipped file.
func Config(opts Options) zap.Config {
	var cfg zap.Config
	if opts.Debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Sampling = nil

	cfg.OutputPaths = []string{"stderr"}
	if len(opts.OutputPaths) > 0 {
		cfg.OutputPaths = opts.OutputPaths
	}
	cfg.ErrorOutputPaths = []string{"stderr"}

	cfg.InitialFields = map[string]interface{}{
		"appName":    opts.Name,
		"appVersion": opts.Version,
	}
	return cfg
}

// Setup builds a logger from opts and installs it as Logger and as zap's
// global logger. On failure Logger is left unchanged.
func Setup(opts Options) (*zap.Logger, error) {
	l, err := Config(opts).Build()
	if err != nil {
		return nil, err
	}
	Logger = l
	zap.ReplaceGlobals(l)
	return l, nil
}
