// Package bench implements the 'indexlab bench' subcommand: it builds the
// same corpus sequentially and in parallel, verifies both agree, measures
// compression, and exercises index maintenance.
package bench

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Chebil-Ilef/Indexation-Lab1/internal/analysis"
	"github.com/Chebil-Ilef/Indexation-Lab1/internal/config"
	"github.com/Chebil-Ilef/Indexation-Lab1/internal/corpus"
	"github.com/Chebil-Ilef/Indexation-Lab1/internal/index"
	"github.com/Chebil-Ilef/Indexation-Lab1/internal/logging"
	"github.com/Chebil-Ilef/Indexation-Lab1/internal/metrics"
	"github.com/Chebil-Ilef/Indexation-Lab1/internal/sizeof"
)

func Run(args []string) {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	corpusPath := fs.String("corpus", "", "Corpus file; empty uses the built-in sample")
	workers := fs.Int("workers", 0, "Parallel workers (overrides config; 0 = GOMAXPROCS)")
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

	texts := corpus.Sample()
	if *corpusPath != "" {
		texts, err = corpus.Load(*corpusPath)
		if err != nil {
			log.Fatalf("Failed to load corpus: %v", err)
		}
	}

	analyzer, err := analysis.New(cfg.Analysis)
	if err != nil {
		log.Fatalf("Failed to create analyzer: %v", err)
	}
	docs := analyzer.AnalyzeAll(texts)

	// Sequential build.
	start := time.Now()
	seqIdx := index.Build(docs)
	seqTime := time.Since(start)
	fmt.Printf("[Sequential] Index built in %s\n", seqTime)

	// Parallel build.
	start = time.Now()
	parIdx, err := index.BuildParallel(ctx, docs, index.Options{Workers: cfg.Workers})
	if err != nil {
		log.Fatalf("Parallel build failed: %v", err)
	}
	parTime := time.Since(start)
	fmt.Printf("[Parallel]   Index built in %s\n", parTime)

	if !seqIdx.Equal(parIdx) {
		log.Fatalf("Sequential and parallel indexes differ")
	}
	fmt.Println("Sequential == Parallel index ? true")

	// Compression.
	sizeBefore := sizeof.Index(seqIdx)
	compact, err := index.Compress(seqIdx)
	if err != nil {
		log.Fatalf("Compression failed: %v", err)
	}
	sizeAfter := sizeof.Compact(compact)
	metrics.CompressionRatio.Set(float64(sizeAfter) / float64(sizeBefore))

	fmt.Println("\n[Memory]")
	fmt.Printf("Size before compression : %s\n", sizeof.FormatBytes(sizeBefore))
	fmt.Printf("Size after  compression : %s\n", sizeof.FormatBytes(sizeAfter))

	back, err := index.Decompress(compact)
	if err != nil {
		log.Fatalf("Decompression failed: %v", err)
	}
	fmt.Printf("Index recovered after decompression ? %v\n", back.Equal(seqIdx))

	// Maintenance.
	fmt.Println("\n[Maintenance]")
	newDocID := uint32(len(docs))
	newTokens := analyzer.Analyze("A new document about information retrieval.")
	fmt.Printf("Adding doc %d with tokens: %v\n", newDocID, newTokens)
	seqIdx.AddDocument(newDocID, newTokens)

	fmt.Println("Removing doc 0 from index...")
	seqIdx.RemoveDocument(0)

	logger.Info("bench finished",
		"documents", len(docs),
		"terms", len(parIdx),
		"sequential", seqTime.String(),
		"parallel", parTime.String(),
		"ratio", float64(sizeAfter)/float64(sizeBefore),
	)

	fmt.Println("\n[Summary]")
	if parTime > 0 {
		fmt.Printf("- Speedup (sequential/parallel): %.2f\n", float64(seqTime)/float64(parTime))
	}
	fmt.Printf("- Compression ratio (compact/in-memory): %.2f\n", float64(sizeAfter)/float64(sizeBefore))
}
