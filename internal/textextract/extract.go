// Package textextract converts a report PDF into its plain-text dump by
// invoking the poppler pdftotext utility. The parser downstream only ever
// sees the resulting string; this is the single blocking-I/O boundary of the
// parsing path.
package textextract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ErrExtractionTool marks a failed or missing pdftotext invocation. The
// failure is fatal and non-retryable for the document; no sections are
// processed after it.
var ErrExtractionTool = errors.New("text extraction tool failed")

type Config struct {
	Pdftotext string        // binary name or absolute path; if empty -> "pdftotext"
	Timeout   time.Duration // per-invocation deadline; if zero -> 30s
}

// Result is the plain-text dump of one PDF.
type Result struct {
	Text     string
	Pages    int
	Duration time.Duration
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Extractor{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

// WithRunner swaps the command runner; tests use it to avoid spawning the
// real binary.
func (e *Extractor) WithRunner(r Runner) *Extractor {
	e.runner = r
	return e
}

// Extract runs pdftotext with layout preservation and returns the full text
// of the document. Layout mode matters: the parser's line-start anchoring
// assumes the columnar layout survives extraction.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	e.logger.Debug("starting text extraction", "path", path)

	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrExtractionTool, strings.TrimSpace(string(errb)), err)
	}

	text := string(out)
	// A form-feed \f is used as page separator by default.
	res := Result{
		Text:     text,
		Pages:    1 + strings.Count(text, "\f"),
		Duration: time.Since(start),
	}
	e.logger.Debug("text extraction done", "path", path, "pages", res.Pages, "bytes", len(text))
	return res, nil
}
