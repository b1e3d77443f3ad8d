// Package quotes is the motivational quote picker.
//
// A Book holds a fixed list of quotes; Inspire draws one uniformly at random
// with replacement, so consecutive calls may repeat.
package quotes

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordplay/assets"
	"github.com/robalobadob/wordplay/internal/rng"
)

// Prompt is shown until the user asks for a quote.
const Prompt = "Click the button to receive your daily inspiration!"

// ErrNoQuotes is returned when a quote file is empty.
var ErrNoQuotes = errors.New("quotes: list is empty")

type file struct {
	Quotes []string `yaml:"quotes"`
}

// Book is an immutable quote list.
type Book struct {
	quotes []string
	intn   rng.Intn
}

// Load reads quotes from path, or the embedded default when path is empty.
func Load(path string) (*Book, error) {
	if path == "" {
		return Parse(assets.Quotes())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML quote list. Blank entries are dropped.
func Parse(data []byte) (*Book, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	var qs []string
	for _, q := range f.Quotes {
		if q = strings.TrimSpace(q); q != "" {
			qs = append(qs, q)
		}
	}
	if len(qs) == 0 {
		return nil, ErrNoQuotes
	}
	return &Book{quotes: qs, intn: rng.Crypto}, nil
}

// WithRand returns a copy of b drawing from intn.
func (b *Book) WithRand(intn rng.Intn) *Book {
	cp := *b
	cp.intn = intn
	return &cp
}

// Inspire returns one quote chosen uniformly at random.
func (b *Book) Inspire() string {
	return b.quotes[b.intn(len(b.quotes))]
}

// All returns a copy of the list.
func (b *Book) All() []string { return append([]string(nil), b.quotes...) }

// Len is the number of quotes.
func (b *Book) Len() int { return len(b.quotes) }
