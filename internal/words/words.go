// internal/words/words.go
//
// Category catalog for the hangman game.
//
// Responsibilities:
//   - Load the category → words mapping from a YAML file or the embedded default.
//   - Normalize entries (words upper case, category names title case).
//   - Supply Pick (uniform category, then uniform word), All and Stats.
//
// File format:
//
//	categories:
//	  - name: Fruits
//	    words: [APPLE, MANGO]
//
// Constraints:
//   • Words must be letters A–Z only (after upper-casing).
//   • Every category needs at least one word; names must be unique.
//   • A bad catalog is a configuration defect and fails Load.

package words

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordplay/assets"
	"github.com/robalobadob/wordplay/internal/rng"
)

// ErrEmptyCatalog is returned when a file yields no categories.
var ErrEmptyCatalog = errors.New("words: catalog has no categories")

// Category is a named group of candidate words.
type Category struct {
	Name  string   `yaml:"name"`
	Words []string `yaml:"words"`
}

type file struct {
	Categories []Category `yaml:"categories"`
}

// Catalog is an immutable, validated set of categories.
type Catalog struct {
	categories []Category
	intn       rng.Intn
}

// Load reads the catalog at path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(assets.Words())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Categories) == 0 {
		return nil, ErrEmptyCatalog
	}

	upper := cases.Upper(language.Und)
	title := cases.Title(language.English)
	seen := make(map[string]struct{}, len(f.Categories))
	out := make([]Category, 0, len(f.Categories))

	for _, c := range f.Categories {
		name := title.String(strings.TrimSpace(c.Name))
		if name == "" {
			return nil, errors.New("words: category without a name")
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("words: duplicate category %q", name)
		}
		seen[name] = struct{}{}

		if len(c.Words) == 0 {
			return nil, fmt.Errorf("words: category %q has no words", name)
		}
		ws := make([]string, 0, len(c.Words))
		for _, w := range c.Words {
			w = upper.String(strings.TrimSpace(w))
			if !isAlpha(w) {
				return nil, fmt.Errorf("words: %q in %q must be letters A-Z", w, name)
			}
			ws = append(ws, w)
		}
		out = append(out, Category{Name: name, Words: ws})
	}
	return &Catalog{categories: out, intn: rng.Crypto}, nil
}

// WithRand returns a copy of c drawing indexes from intn.
func (c *Catalog) WithRand(intn rng.Intn) *Catalog {
	cp := *c
	cp.intn = intn
	return &cp
}

// Pick chooses a category uniformly, then a word uniformly within it.
func (c *Catalog) Pick() (category, word string) {
	cat := c.categories[c.intn(len(c.categories))]
	return cat.Name, cat.Words[c.intn(len(cat.Words))]
}

// Categories returns the categories in file order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = Category{Name: cat.Name, Words: append([]string(nil), cat.Words...)}
	}
	return out
}

// Entry is a word together with its category.
type Entry struct {
	Category string
	Word     string
}

// All flattens the catalog in file order. The order is stable, so an index
// into it (e.g. the daily word) is reproducible across restarts.
func (c *Catalog) All() []Entry {
	var out []Entry
	for _, cat := range c.categories {
		for _, w := range cat.Words {
			out = append(out, Entry{Category: cat.Name, Word: w})
		}
	}
	return out
}

// Contains reports whether word belongs to any category.
func (c *Catalog) Contains(word string) bool {
	for _, cat := range c.categories {
		for _, w := range cat.Words {
			if w == word {
				return true
			}
		}
	}
	return false
}

// Stats returns counts of loaded categories and words.
func (c *Catalog) Stats() (categories int, words int) {
	for _, cat := range c.categories {
		words += len(cat.Words)
	}
	return len(c.categories), words
}

// isAlpha reports whether s is non-empty and all upper-case ASCII letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
