package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Run("no frontmatter", func(t *testing.T) {
		fm, body, had, nl, err := Split([]byte("# Title\n"))
		require.NoError(t, err)
		assert.False(t, had)
		assert.Nil(t, fm)
		assert.Equal(t, "# Title\n", string(body))
		assert.Equal(t, "\n", nl)
	})

	t.Run("with frontmatter", func(t *testing.T) {
		fm, body, had, _, err := Split([]byte("---\ntitle: Closure\n---\n# Closure\n"))
		require.NoError(t, err)
		assert.True(t, had)
		assert.Equal(t, "title: Closure\n", string(fm))
		assert.Equal(t, "# Closure\n", string(body))
	})

	t.Run("empty frontmatter", func(t *testing.T) {
		fm, body, had, _, err := Split([]byte("---\n---\nbody"))
		require.NoError(t, err)
		assert.True(t, had)
		assert.Empty(t, fm)
		assert.Equal(t, "body", string(body))
	})

	t.Run("crlf", func(t *testing.T) {
		fm, body, had, nl, err := Split([]byte("---\r\ntitle: A\r\n---\r\nbody\r\n"))
		require.NoError(t, err)
		assert.True(t, had)
		assert.Equal(t, "\r\n", nl)
		assert.Equal(t, "title: A\r\n", string(fm))
		assert.Equal(t, "body\r\n", string(body))
	})

	t.Run("unterminated", func(t *testing.T) {
		_, _, _, _, err := Split([]byte("---\ntitle: A\nbody\n"))
		require.ErrorIs(t, err, ErrMissingClosingDelimiter)
	})
}

func TestParseAndBytes(t *testing.T) {
	doc, err := Parse([]byte("---\ntitle: 闭包\ntags: [js]\n---\n# 闭包\n"))
	require.NoError(t, err)

	title, ok := doc.String("title")
	assert.True(t, ok)
	assert.Equal(t, "闭包", title)
	_, ok = doc.String("missing")
	assert.False(t, ok)

	doc.Fields["draft"] = true
	out, err := doc.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "---\ndraft: true\ntags:\n  - js\ntitle: 闭包\n---\n# 闭包\n", string(out))
}

func TestBytes_NoFrontmatterPassthrough(t *testing.T) {
	doc, err := Parse([]byte("plain\n"))
	require.NoError(t, err)
	out, err := doc.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "plain\n", string(out))
}

func TestSerializeYAML_SortsNestedKeys(t *testing.T) {
	out, err := SerializeYAML(map[string]any{
		"b": map[string]any{"z": 1, "a": 2},
		"a": "x",
	}, "\n")
	require.NoError(t, err)
	assert.Equal(t, "a: x\nb:\n  a: 2\n  z: 1\n", string(out))
}
