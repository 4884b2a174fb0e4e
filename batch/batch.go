// Package batch processes directories of PDF files, writing one JSON
// outline per input document.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/tsawler/titulus"
	"github.com/tsawler/titulus/model"
	"github.com/tsawler/titulus/outline"
)

// DefaultWorkers is the worker count used when none is configured.
const DefaultWorkers = 4

// Processor walks an input directory and writes <name>.json outlines to
// an output directory.
type Processor struct {
	inputDir  string
	outputDir string
	workers   int
	language  string
	config    outline.Config
	log       *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithWorkers sets the number of concurrent workers.
func WithWorkers(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithLanguage forces a language code for every document instead of
// auto-detecting per document.
func WithLanguage(code string) Option {
	return func(p *Processor) { p.language = code }
}

// WithConfig replaces the engine configuration.
func WithConfig(cfg outline.Config) Option {
	return func(p *Processor) { p.config = cfg }
}

// WithLogger sets the logger. The default discards nothing and writes
// to slog's default handler.
func WithLogger(log *slog.Logger) Option {
	return func(p *Processor) {
		if log != nil {
			p.log = log
		}
	}
}

// NewProcessor creates a Processor for the given directories.
func NewProcessor(inputDir, outputDir string, opts ...Option) *Processor {
	p := &Processor{
		inputDir:  inputDir,
		outputDir: outputDir,
		workers:   DefaultWorkers,
		config:    outline.DefaultConfig(),
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Summary reports the outcome of one batch run.
type Summary struct {
	Processed int
	Failed    int
	Elapsed   time.Duration
}

// Run processes every *.pdf file in the input directory with bounded
// concurrency. A document that cannot be read still produces an output
// file holding an empty outline, so downstream consumers always find
// one JSON per input. Run returns an error only when the directories
// themselves are unusable or the context is cancelled.
func (p *Processor) Run(ctx context.Context) (Summary, error) {
	start := time.Now()

	files, err := p.listInputs()
	if err != nil {
		return Summary{}, err
	}
	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output dir: %w", err)
	}

	var (
		mu      sync.Mutex
		summary Summary
		wg      sync.WaitGroup
		sem     = make(chan struct{}, p.workers)
	)

	for _, file := range files {
		select {
		case <-ctx.Done():
			wg.Wait()
			summary.Elapsed = time.Since(start)
			return summary, ctx.Err()
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(file string) {
			defer wg.Done()
			defer func() { <-sem }()

			ok := p.processOne(file)

			mu.Lock()
			if ok {
				summary.Processed++
			} else {
				summary.Failed++
			}
			mu.Unlock()
		}(file)
	}

	wg.Wait()
	summary.Elapsed = time.Since(start)
	p.log.Info("batch complete",
		"processed", summary.Processed,
		"failed", summary.Failed,
		"elapsed", summary.Elapsed)
	return summary, nil
}

// listInputs returns the PDF files of the input directory, sorted as the
// directory listing reports them.
func (p *Processor) listInputs() ([]string, error) {
	entries, err := os.ReadDir(p.inputDir)
	if err != nil {
		return nil, fmt.Errorf("reading input dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			files = append(files, filepath.Join(p.inputDir, entry.Name()))
		}
	}
	return files, nil
}

// processOne infers one document's outline and writes its JSON. It
// reports false when the document could not be read; an empty outline
// is still written in that case.
func (p *Processor) processOne(file string) bool {
	log := p.log.With("file", filepath.Base(file))

	ext := titulus.Open(file)
	if p.language != "" {
		ext = ext.Language(p.language)
	}
	ext = ext.WithConfig(p.config)

	result, err := ext.Outline()
	ok := err == nil
	if err != nil {
		log.Warn("extraction failed, writing empty outline", "error", err)
		result = titulus.Result{Outline: []model.OutlineEntry{}}
	} else {
		log.Info("extracted outline", "title", result.Title, "headings", len(result.Outline))
	}

	if err := p.writeResult(file, result); err != nil {
		log.Error("writing output failed", "error", err)
		return false
	}
	return ok
}

// writeResult serializes one result next to its input name in the
// output directory.
func (p *Processor) writeResult(file string, result titulus.Result) error {
	data, err := sonic.ConfigDefault.MarshalIndent(result, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)) + ".json"
	out := filepath.Join(p.outputDir, name)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}
