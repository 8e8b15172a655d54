package analysis

import (
	"fmt"

	"github.com/kljensen/snowball"
)

// Analyzer runs the full pipeline: tokenize, remove stopwords, stem.
type Analyzer struct {
	cfg       *Config
	tokenizer Tokenizer
}

// New creates an Analyzer for the given config. A nil config selects the
// defaults.
func New(cfg *Config) (*Analyzer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("analysis config: %w", err)
	}
	return &Analyzer{
		cfg:       cfg.Clone(),
		tokenizer: newTokenizer(cfg),
	}, nil
}

// Analyze converts raw text into the normalized term sequence the index
// builders consume. The output order follows the input text.
func (a *Analyzer) Analyze(text string) []string {
	tokens := a.tokenizer.Tokenize(text)

	if a.cfg.RemoveStopwords {
		tokens = RemoveStopwords(tokens)
	}

	if a.cfg.Stemming {
		for i, token := range tokens {
			stemmed, err := snowball.Stem(token, a.cfg.Language, false)
			if err != nil || stemmed == "" {
				// Tokens the stemmer cannot handle are kept verbatim.
				continue
			}
			tokens[i] = stemmed
		}
	}

	return tokens
}

// AnalyzeAll analyzes a whole corpus, one token sequence per document, in
// corpus order.
func (a *Analyzer) AnalyzeAll(texts []string) [][]string {
	docs := make([][]string, len(texts))
	for i, text := range texts {
		docs[i] = a.Analyze(text)
	}
	return docs
}
