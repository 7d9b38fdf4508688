// Package lexicon normalizes multilingual symptom mentions in free text
// to their canonical English terms before symptom detection runs.
package lexicon

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry maps one local-language phrase to its canonical English term.
// Several phrases may share a canonical term.
type Entry struct {
	Phrase    string `yaml:"phrase" json:"phrase"`
	Canonical string `yaml:"canonical" json:"canonical"`
}

type compiledEntry struct {
	entry Entry
	lower string
	re    *regexp.Regexp
}

// Lexicon is an ordered phrase table. Entry order is the definition
// order and determines replacement order during Normalize.
type Lexicon struct {
	entries []compiledEntry
}

type fileFormat struct {
	Entries []Entry `yaml:"entries"`
}

// Load reads a lexicon from a YAML file, or returns the built-in table
// when path is empty.
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return New(DefaultEntries())
	}

	content, err := ioutil.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var cfg fileFormat
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Entries) == 0 {
		return nil, fmt.Errorf("lexicon defines no entries")
	}
	return New(cfg.Entries)
}

// New builds a lexicon from the given entries, preserving their order.
// Phrases are quoted before pattern compilation so a phrase containing
// regex metacharacters matches literally.
func New(entries []Entry) (*Lexicon, error) {
	lex := &Lexicon{entries: make([]compiledEntry, 0, len(entries))}
	for i, e := range entries {
		if e.Phrase == "" || e.Canonical == "" {
			return nil, fmt.Errorf("lexicon entry at position %d missing phrase or canonical term", i)
		}
		re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(e.Phrase))
		if err != nil {
			return nil, fmt.Errorf("lexicon entry %q: %w", e.Phrase, err)
		}
		lex.entries = append(lex.entries, compiledEntry{
			entry: e,
			lower: strings.ToLower(e.Phrase),
			re:    re,
		})
	}
	return lex, nil
}

// Len returns the number of entries.
func (l *Lexicon) Len() int { return len(l.entries) }

// Entries returns a copy of the entry table in definition order.
func (l *Lexicon) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	for i, ce := range l.entries {
		out[i] = ce.entry
	}
	return out
}

// Normalize replaces local-language symptom mentions with their canonical
// English terms. Entries are applied in definition order: each phrase is
// tested case-insensitively against the original input and, when present,
// every occurrence is replaced in the working string, so later entries
// see the partially translated text. The input is returned unchanged when
// no phrase matches; Normalize never fails.
func (l *Lexicon) Normalize(text string) string {
	lowered := strings.ToLower(text)
	translated := text

	for _, ce := range l.entries {
		if !strings.Contains(lowered, ce.lower) {
			continue
		}
		translated = ce.re.ReplaceAllString(translated, ce.entry.Canonical)
	}

	return translated
}
