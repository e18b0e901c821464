// Package catalog holds the read-only item catalog the bot normalizes
// item names against. The backing JSON file is produced offline by
// cmd/catalog-scraper; at runtime the store is loaded once and never
// mutated.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"arctraders-backend/lib/textutil"
)

type Entry struct {
	// canonical item name, e.g. "Anvil"
	Name string `json:"name"`
	// alternate spellings that resolve to Name, e.g. "Anvil Blueprint"
	Aliases   []string `json:"aliases,omitempty"`
	Workshop  string   `json:"workshop,omitempty"`
	SourceUrl string   `json:"source_url,omitempty"`
}

type Store struct {
	entries []Entry
	// normalized alias -> index into entries
	byAlias map[string]int
}

func New(entries []Entry) *Store {
	s := &Store{
		entries: entries,
		byAlias: make(map[string]int),
	}
	for i, e := range entries {
		key := textutil.NormalizeName(e.Name)
		if _, taken := s.byAlias[key]; !taken {
			s.byAlias[key] = i
		}
		for _, alias := range e.Aliases {
			key := textutil.NormalizeName(alias)
			if _, taken := s.byAlias[key]; !taken {
				s.byAlias[key] = i
			}
		}
	}
	return s
}

func Load(path string) (*Store, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	err = json.Unmarshal(contents, &entries)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return New(entries), nil
}

// Entries returns entries in file order. Callers must not mutate the
// returned slice.
func (s *Store) Entries() []Entry {
	return s.entries
}

func (s *Store) Len() int {
	return len(s.entries)
}

// Lookup resolves a name or alias to its entry, ignoring casing and
// whitespace.
func (s *Store) Lookup(name string) (Entry, bool) {
	idx, ok := s.byAlias[textutil.NormalizeName(name)]
	if !ok {
		return Entry{}, false
	}
	return s.entries[idx], true
}

// Names returns every scoreable name in the store: canonical names and
// aliases, each paired with the index of the entry it belongs to.
// Ordering follows file order, canonical name before its aliases.
func (s *Store) Names() []Name {
	var out []Name
	for i, e := range s.entries {
		out = append(out, Name{Text: e.Name, Entry: i})
		for _, alias := range e.Aliases {
			out = append(out, Name{Text: alias, Entry: i})
		}
	}
	return out
}

type Name struct {
	Text  string
	Entry int
}
