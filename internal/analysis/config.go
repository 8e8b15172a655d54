// Package analysis turns raw document text into the normalized token
// sequences the index consumes.
package analysis

import "fmt"

// Config controls the analysis pipeline for a corpus.
type Config struct {
	Tokenizer       string `json:"tokenizer"`        // default "word"
	Language        string `json:"language"`         // default "english"
	CaseSensitive   bool   `json:"case_sensitive"`   // default false
	ASCIIFolding    bool   `json:"ascii_folding"`    // default true
	RemoveStopwords bool   `json:"remove_stopwords"` // default true
	Stemming        bool   `json:"stemming"`         // default true
}

// Supported tokenizers.
var SupportedTokenizers = map[string]bool{
	"word":       true, // word boundaries: letters, digits, underscore
	"whitespace": true, // split on whitespace only
}

// Languages the snowball stemmer supports.
var SupportedLanguages = map[string]bool{
	"english":   true,
	"spanish":   true,
	"french":    true,
	"russian":   true,
	"swedish":   true,
	"norwegian": true,
	"hungarian": true,
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Tokenizer:       "word",
		Language:        "english",
		CaseSensitive:   false,
		ASCIIFolding:    true,
		RemoveStopwords: true,
		Stemming:        true,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Tokenizer == "" {
		return fmt.Errorf("tokenizer cannot be empty")
	}
	if !SupportedTokenizers[c.Tokenizer] {
		return fmt.Errorf("unsupported tokenizer: %q", c.Tokenizer)
	}
	if c.Language == "" {
		return fmt.Errorf("language cannot be empty")
	}
	if !SupportedLanguages[c.Language] {
		return fmt.Errorf("unsupported language: %q", c.Language)
	}
	return nil
}

// Clone creates a deep copy of the config.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
