// Package corpus loads document collections and writes index dumps.
package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/Chebil-Ilef/Indexation-Lab1/internal/index"
)

// Sample returns a small built-in corpus of information-retrieval sentences,
// useful for demos and smoke tests.
func Sample() []string {
	return []string{
		"Information retrieval is about finding relevant documents.",
		"An inverted index maps terms to documents.",
		"Text preprocessing includes tokenization and normalization.",
		"Go is a great language for text processing.",
		"Indexation is a key concept in search engines.",
		"Stopwords are common words that are often removed.",
		"Document similarity can be computed using vectors.",
		"The corpus we use is very small but illustrative.",
		"Tokenization splits text into individual words.",
		"Normalization may include lowercasing and removing punctuation.",
		"Stemming and lemmatization reduce words to their base form.",
		"Query expansion can improve search results.",
		"Term frequency is important in ranking models.",
		"Inverse document frequency helps downweight common terms.",
		"Vector space models represent documents as points in space.",
		"Word embeddings capture semantic relationships.",
		"Evaluation of IR systems uses metrics like precision and recall.",
		"Relevance feedback allows users to refine their queries.",
		"Language models are increasingly used in search.",
		"This is the last document in our tiny corpus.",
	}
}

// Load reads a corpus from path: a JSON array of strings for .json files,
// otherwise one document per non-empty line. Files ending in .zst are
// decompressed transparently.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	name := path
	if strings.HasSuffix(name, ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open zstd corpus: %w", err)
		}
		defer zr.Close()
		r = zr
		name = strings.TrimSuffix(name, ".zst")
	}

	if strings.HasSuffix(name, ".json") {
		var docs []string
		if err := json.NewDecoder(r).Decode(&docs); err != nil {
			return nil, fmt.Errorf("decode corpus %s: %w", path, err)
		}
		return docs, nil
	}

	var docs []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		docs = append(docs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	return docs, nil
}

// WriteIndexJSON dumps an index to path as JSON with terms in sorted order.
// Paths ending in .zst are zstd-compressed.
func WriteIndexJSON(path string, idx index.Index) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}
	data = append(data, '\n')

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dump: %w", err)
	}
	defer f.Close()

	var w io.Writer = f
	var zw *zstd.Encoder
	if strings.HasSuffix(path, ".zst") {
		zw, err = zstd.NewWriter(f)
		if err != nil {
			return fmt.Errorf("create zstd dump: %w", err)
		}
		w = zw
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write dump: %w", err)
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			return fmt.Errorf("close zstd dump: %w", err)
		}
	}
	return f.Close()
}
