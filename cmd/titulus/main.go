// Command titulus infers PDF outlines from the command line.
//
// Single-file mode prints the outline JSON to stdout:
//
//	titulus document.pdf
//
// Batch mode writes one JSON file per input PDF:
//
//	titulus -input ./pdfs -output ./outlines -workers 8
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tsawler/titulus"
	"github.com/tsawler/titulus/batch"
)

func main() {
	var (
		inputDir   = flag.String("input", "", "directory of PDF files to process")
		outputDir  = flag.String("output", "", "directory for JSON outlines")
		workers    = flag.Int("workers", 0, "concurrent workers in batch mode (default 4)")
		language   = flag.String("lang", "", "force a language code instead of auto-detecting")
		configPath = flag.String("config", "", "optional YAML config file")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	fc, engine, err := loadConfig(*configPath)
	if err != nil {
		log.Error("config", "error", err)
		os.Exit(1)
	}
	if *language == "" {
		*language = fc.Language
	}
	if *workers == 0 {
		*workers = fc.Workers
	}

	// Single-file mode: one positional argument, JSON to stdout.
	if flag.NArg() == 1 {
		ext := titulus.Open(flag.Arg(0)).WithConfig(engine)
		if *language != "" {
			ext = ext.Language(*language)
		}
		data, err := ext.JSON()
		if err != nil {
			log.Error("extraction failed", "file", flag.Arg(0), "error", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	if *inputDir == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "usage: titulus <file.pdf> | titulus -input DIR -output DIR [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	opts := []batch.Option{
		batch.WithConfig(engine),
		batch.WithLogger(log),
	}
	if *workers > 0 {
		opts = append(opts, batch.WithWorkers(*workers))
	}
	if *language != "" {
		opts = append(opts, batch.WithLanguage(*language))
	}

	summary, err := batch.NewProcessor(*inputDir, *outputDir, opts...).Run(context.Background())
	if err != nil {
		log.Error("batch run failed", "error", err)
		os.Exit(1)
	}
	if summary.Failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d documents could not be read\n",
			summary.Failed, summary.Processed+summary.Failed)
	}
}
