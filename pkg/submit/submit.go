// Package submit runs the whole pipeline: select the project's files, lay
// out the header and every file, and write the PDF.
package submit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"codepdf/pkg/ignore"
	"codepdf/pkg/layout"
	"codepdf/pkg/pdfdoc"
	"codepdf/pkg/selector"
	"codepdf/pkg/source"
	"codepdf/pkg/version"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Run renders the project described by args into args.Output. Files that
// cannot be read are skipped and reported in the Summary; failing to write
// the output is an error.
func Run(args Arguments, logger *zap.Logger) (Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	if args.Output == "" {
		return Summary{}, errors.New("output path is required")
	}
	if args.Root == "" {
		args.Root = "."
	}
	root, err := filepath.Abs(args.Root)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to get absolute path: %w", err)
	}
	output, err := filepath.Abs(args.Output)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to get absolute output path: %w", err)
	}
	logger.Info("Starting PDF generation", zap.String("root", root), zap.String("output", output))

	cfg := layout.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}

	matcher, err := ignore.Load(logger, args.IgnoreFile, filepath.Join(root, ignore.FileName))
	if err != nil {
		logger.Error("Failed to load ignore patterns", zap.Error(err))
		return Summary{}, fmt.Errorf("failed to load ignore patterns: %w", err)
	}

	rules := selector.DefaultRules().WithExtensions(args.ExtraExtensions...)
	excluded := append(selector.DefaultExcludedDirs(), args.ExtraExcludeDirs...)
	sel, err := selector.Select(root, excluded, rules.Include, selector.Options{
		Ignore:  matcher,
		Verbose: args.Verbose,
	}, logger)
	if err != nil {
		logger.Error("Failed to collect files", zap.Error(err))
		return Summary{}, fmt.Errorf("failed to collect files: %w", err)
	}
	if len(sel.Files) == 0 {
		logger.Warn("No files to render after filtering.")
	}

	header, headerErr := loadHeader(root, args.Header, logger)
	if args.Tree {
		header.Tree = selector.Tree(sel.Files)
	}

	doc := pdfdoc.New(cfg.Geometry, logger)
	doc.SetTitle(cfg.DocumentTitle, version.Get().Creator())
	summary, err := Compose(doc, cfg, root, sel.Files, header, logger)
	if err != nil {
		return summary, err
	}
	summary.Output = output
	summary.Skipped = multierr.Combine(sel.Skipped, headerErr, summary.Skipped)

	if err := doc.WriteFile(output); err != nil {
		logger.Error("Failed to write PDF", zap.String("output", output), zap.Error(err))
		return summary, fmt.Errorf("failed to write %s: %w", output, err)
	}

	summary.Pages = doc.Pages()
	if n, err := pdfdoc.PageCount(output); err != nil {
		logger.Warn("Could not re-read written PDF", zap.String("output", output), zap.Error(err))
	} else {
		summary.Pages = n
	}

	logger.Info("PDF generation completed",
		zap.String("output", output),
		zap.Int("files", len(summary.Files)),
		zap.Int("pages", summary.Pages),
		zap.Int("skipped", len(multierr.Errors(summary.Skipped))),
		zap.Duration("elapsed", time.Since(startTime)))
	return summary, nil
}

// Compose draws the header section and then each file, in order, onto c.
// Files are loaded one at a time and dropped once drawn.
func Compose(c layout.Canvas, cfg layout.Config, root string, files []string, header layout.Header, logger *zap.Logger) (Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var summary Summary

	cur, err := layout.NewCursor(c, cfg.Geometry)
	if err != nil {
		return summary, err
	}
	layout.RenderHeader(cur, cfg, header)

	for _, rel := range files {
		f, err := source.Load(root, rel, logger)
		if err != nil {
			summary.Skipped = multierr.Append(summary.Skipped, fmt.Errorf("%s: %w", rel, err))
			continue
		}
		stats := layout.RenderFile(cur, cfg, f)
		logger.Debug("Rendered file",
			zap.String("filePath", stats.Path),
			zap.Int("fontSize", stats.FontSize),
			zap.Int("lines", stats.Lines),
			zap.Int("pages", stats.Pages))
		summary.Files = append(summary.Files, stats)
	}
	summary.Pages = cur.Pages()
	return summary, nil
}

// loadHeader reads the header text. A missing or unreadable file turns into
// a one-line notice in the header section; only the unreadable case is
// returned as an error, for the summary.
func loadHeader(root, headerPath string, logger *zap.Logger) (layout.Header, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if headerPath == "" {
		return layout.Header{}, nil
	}
	path := headerPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	path = filepath.Clean(path)

	if _, err := os.Stat(path); err != nil {
		logger.Warn("Header file not found", zap.String("path", path), zap.Error(err))
		return layout.Header{Notice: fmt.Sprintf("(Header file not found: %s)", path)}, nil
	}
	text, _, err := source.ReadText(path)
	if err != nil {
		logger.Warn("Header file could not be read", zap.String("path", path), zap.Error(err))
		return layout.Header{Notice: fmt.Sprintf("(Header file could not be read: %s)", path)}, fmt.Errorf("header: %w", err)
	}
	return layout.Header{Text: text}, nil
}
