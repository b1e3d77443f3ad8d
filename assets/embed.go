// assets/embed.go
//
// Embedded defaults shipped with the binary:
//   - words.yaml:   hangman category catalog
//   - quotes.yaml:  quote picker list
//   - migrations/:  SQLite schema, applied in lexical order

package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.yaml quotes.yaml migrations/*.sql
var FS embed.FS

// Words returns the embedded default catalog.
func Words() []byte {
	b, _ := FS.ReadFile("words.yaml")
	return b
}

// Quotes returns the embedded default quote list.
func Quotes() []byte {
	b, _ := FS.ReadFile("quotes.yaml")
	return b
}

// Migrations exposes the migrations directory rooted at its own path.
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "migrations")
	if err != nil {
		// The directory is embedded at build time; Sub only fails on bad patterns.
		panic(err)
	}
	return sub
}
