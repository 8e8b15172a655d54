// Package build implements the 'indexlab build' subcommand.
package build

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Chebil-Ilef/Indexation-Lab1/internal/analysis"
	"github.com/Chebil-Ilef/Indexation-Lab1/internal/config"
	"github.com/Chebil-Ilef/Indexation-Lab1/internal/corpus"
	"github.com/Chebil-Ilef/Indexation-Lab1/internal/index"
	"github.com/Chebil-Ilef/Indexation-Lab1/internal/logging"
	"github.com/Chebil-Ilef/Indexation-Lab1/internal/sizeof"
)

func Run(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	corpusPath := fs.String("corpus", "", "Corpus file (.txt, .json, optionally .zst); empty uses the built-in sample")
	workers := fs.Int("workers", 0, "Parallel workers (overrides config; 0 = GOMAXPROCS)")
	sequential := fs.Bool("sequential", false, "Build single-threaded")
	outPath := fs.String("out", "", "Write the index as JSON to this path (.zst compresses)")
	timeout := fs.Duration("timeout", 0, "Abort the build after this duration (0 = no limit)")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}

	ctx := logging.ContextWithRunID(context.Background(), uuid.NewString())
	logger := logging.New(logging.ParseLevel(cfg.LogLevel)).WithContext(ctx)

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, logger)
	}

	texts, source, err := loadCorpus(*corpusPath)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}
	logger.Info("corpus loaded", "source", source, "documents", len(texts))

	analyzer, err := analysis.New(cfg.Analysis)
	if err != nil {
		log.Fatalf("Failed to create analyzer: %v", err)
	}
	docs := analyzer.AnalyzeAll(texts)

	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	start := time.Now()
	var idx index.Index
	if *sequential {
		idx = index.Build(docs)
	} else {
		idx, err = index.BuildParallel(ctx, docs, index.Options{Workers: cfg.Workers})
		if err != nil {
			log.Fatalf("Build failed: %v", err)
		}
	}
	elapsed := time.Since(start)

	logger.Info("index built",
		"documents", len(docs),
		"terms", len(idx),
		"elapsed", elapsed.String(),
		"size", sizeof.FormatBytes(sizeof.Index(idx)),
	)

	fmt.Printf("Indexed %d documents into %d terms in %s (%s)\n",
		len(docs), len(idx), elapsed, sizeof.FormatBytes(sizeof.Index(idx)))

	if *outPath != "" {
		if err := corpus.WriteIndexJSON(*outPath, idx); err != nil {
			log.Fatalf("Failed to write index dump: %v", err)
		}
		fmt.Printf("Index written to %s\n", *outPath)
	}
}

func loadCorpus(path string) ([]string, string, error) {
	if path == "" {
		return corpus.Sample(), "sample", nil
	}
	texts, err := corpus.Load(path)
	return texts, path, err
}

func serveMetrics(addr string, logger *logging.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("metrics listener started", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics listener failed", "error", err)
	}
}
