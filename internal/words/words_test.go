package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordplay/internal/rng"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	cats, ws := c.Stats()
	assert.Equal(t, 4, cats)
	assert.Equal(t, 20, ws)

	names := []string{}
	for _, cat := range c.Categories() {
		names = append(names, cat.Name)
	}
	assert.Equal(t, []string{"Animals", "Countries", "Fruits", "Sports"}, names)
	assert.True(t, c.Contains("MANGO"))
}

func TestParseNormalizesCase(t *testing.T) {
	c, err := Parse([]byte("categories:\n  - name: fruits\n    words: [apple, ' Mango ']\n"))
	require.NoError(t, err)

	cats := c.Categories()
	require.Len(t, cats, 1)
	assert.Equal(t, "Fruits", cats[0].Name)
	assert.Equal(t, []string{"APPLE", "MANGO"}, cats[0].Words)
}

func TestParseRejectsBadCatalogs(t *testing.T) {
	cases := map[string]string{
		"empty":        "categories: []\n",
		"no words":     "categories:\n  - name: A\n    words: []\n",
		"non letters":  "categories:\n  - name: A\n    words: [ICE-CREAM]\n",
		"empty word":   "categories:\n  - name: A\n    words: ['']\n",
		"no name":      "categories:\n  - words: [APPLE]\n",
		"duplicate":    "categories:\n  - name: A\n    words: [X]\n  - name: a\n    words: [Y]\n",
		"invalid yaml": "categories: [",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestPickIsMemberOfCategory(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	byName := map[string][]string{}
	for _, cat := range c.Categories() {
		byName[cat.Name] = cat.Words
	}
	for i := 0; i < 200; i++ {
		cat, w := c.Pick()
		assert.Contains(t, byName[cat], w)
	}
}

func TestPickUsesCategoryThenWord(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	cat, w := c.WithRand(rng.Fixed(2, 3)).Pick()
	assert.Equal(t, "Fruits", cat)
	assert.Equal(t, "MANGO", w)
}

func TestAllIsStable(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	all := c.All()
	require.Len(t, all, 20)
	assert.Equal(t, Entry{Category: "Animals", Word: "ELEPHANT"}, all[0])
	assert.Equal(t, Entry{Category: "Sports", Word: "SWIMMING"}, all[19])
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - name: Colors\n    words: [RED, BLUE]\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	cats, ws := c.Stats()
	assert.Equal(t, 1, cats)
	assert.Equal(t, 2, ws)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
