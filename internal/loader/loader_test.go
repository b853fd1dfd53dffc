package loader

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func storeFS(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	for name, content := range files {
		require.NoError(t, util.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func TestValidateSelector(t *testing.T) {
	require.NoError(t, ValidateSelector("complete"))
	require.NoError(t, ValidateSelector("with-dash_and_underscore"))

	for _, selector := range []string{"", "a/b", `a\b`, "..", ".hidden", "../escape"} {
		err := ValidateSelector(selector)
		assert.ErrorIs(t, err, ErrInvalidSelector, "selector %q", selector)
	}
}

func TestLoadMapping(t *testing.T) {
	fs := storeFS(t, map[string]string{"config.yaml": "name: test\nid: 7\n"})
	l := New(fs, nil)

	doc, err := l.Load("config")
	require.NoError(t, err)
	require.Equal(t, yaml.DocumentNode, doc.Kind)

	var out struct {
		Name string `yaml:"name"`
		ID   int    `yaml:"id"`
	}
	require.NoError(t, doc.Decode(&out))
	assert.Equal(t, "test", out.Name)
	assert.Equal(t, 7, out.ID)
}

func TestLoadScalarRoot(t *testing.T) {
	fs := storeFS(t, map[string]string{"answer.yaml": "42\n"})
	l := New(fs, nil)

	doc, err := l.Load("answer")
	require.NoError(t, err)

	var n int
	require.NoError(t, doc.Decode(&n))
	assert.Equal(t, 42, n)
}

func TestExtensionPrecedence(t *testing.T) {
	fs := storeFS(t, map[string]string{
		"doc.yaml": "from: yaml\n",
		"doc.yml":  "from: yml\n",
		"alt.yml":  "from: yml\n",
	})
	l := New(fs, nil)

	name, _, err := l.Stat("doc")
	require.NoError(t, err)
	assert.Equal(t, "doc.yaml", name)

	name, _, err = l.Stat("alt")
	require.NoError(t, err)
	assert.Equal(t, "alt.yml", name)
}

func TestLoadNotFound(t *testing.T) {
	fs := storeFS(t, map[string]string{"present.yaml": "a: 1\n"})
	l := New(fs, nil)

	_, err := l.Load("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadRejectsSelectorBeforeIO(t *testing.T) {
	// The traversal target exists relative to the root, but validation must
	// refuse the selector without touching the filesystem.
	fs := storeFS(t, map[string]string{"secret.yaml": "leak: true\n"})
	l := New(fs, nil)

	_, err := l.Load("../secret")
	assert.ErrorIs(t, err, ErrInvalidSelector)
}

func TestLoadParseFailure(t *testing.T) {
	fs := storeFS(t, map[string]string{"broken.yaml": "key: [unclosed\n"})
	l := New(fs, nil)

	_, err := l.Load("broken")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "broken", pe.Selector)
	assert.Error(t, pe.Cause)
}

func TestCustomExtensions(t *testing.T) {
	fs := storeFS(t, map[string]string{"doc.config": "a: 1\n"})
	l := New(fs, []string{"config"})

	_, err := l.Load("doc")
	require.NoError(t, err)
}

func TestList(t *testing.T) {
	fs := storeFS(t, map[string]string{
		"beta.yaml":   "b: 1\n",
		"alpha.yaml":  "a: 1\n",
		"alpha.yml":   "a: 2\n",
		"notes.txt":   "ignored\n",
		".hidden.yml": "x: 1\n",
	})
	l := New(fs, nil)

	selectors, err := l.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, selectors)
}
