//go:build unit

package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		delim    string
		expected string
	}{
		{"should keep literal content verbatim", `C:\path`, delimLiteral, `C:\path`},
		{"should decode basic escapes", `a\tb\"c\\`, delimBasic, "a\tb\"c\\"},
		{"should decode unicode escapes", `caf\u00e9`, delimBasic, "café"},
		{"should decode long unicode escapes", `\U0001F600`, delimBasic, "😀"},
		{"should trim the first newline of a multi-line string", "\n1.0", delimMultiBasic, "1.0"},
		{"should join lines ending with a backslash", "1.\\\n   0", delimMultiBasic, "1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			result, err := decodeString(tt.raw, tt.delim)

			// then
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	t.Run("should reject an unknown escape", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := decodeString(`\q`, delimBasic)

		// then
		require.Error(t, err)
	})
}

func TestEncodeString(t *testing.T) {
	t.Parallel()

	t.Run("should keep the literal delimiter", func(t *testing.T) {
		t.Parallel()

		// when
		result := encodeString("1.2.0", delimLiteral)

		// then
		assert.Equal(t, "'1.2.0'", result)
	})

	t.Run("should fall back to a basic string when a literal cannot hold the value", func(t *testing.T) {
		t.Parallel()

		// when
		result := encodeString("it's", delimLiteral)

		// then
		assert.Equal(t, `"it's"`, result)
	})

	t.Run("should escape quotes in a basic string", func(t *testing.T) {
		t.Parallel()

		// when
		result := encodeString(`a"b`, delimBasic)

		// then
		assert.Equal(t, `"a\"b"`, result)
	})
}

func TestScannerSpans(t *testing.T) {
	t.Parallel()

	t.Run("should record the exact span of a version string", func(t *testing.T) {
		t.Parallel()

		// given
		src := []byte("[dependencies]\nfoo = { version = \"1.0\" }\n")
		sc := &scanner{src: src}

		// when
		err := sc.scan()

		// then
		require.NoError(t, err)
		var found *stringToken
		for _, n := range sc.nodes {
			if len(n.path) == 3 && n.path[2] == "version" {
				found = n.value.str
			}
		}
		require.NotNil(t, found)
		assert.Equal(t, `"1.0"`, string(src[found.span.start:found.span.end]))
		assert.Equal(t, "1.0", found.value)
	})

	t.Run("should handle multi-line strings ending with quotes", func(t *testing.T) {
		t.Parallel()

		// given
		src := []byte("[package]\ndescription = \"\"\"say \"hi\"\"\"\"\n[dependencies]\nfoo = \"1\"\n")
		sc := &scanner{src: src}

		// when
		err := sc.scan()

		// then
		require.NoError(t, err)
		assert.Equal(t, "say \"hi\"", sc.nodes[1].value.str.value)
	})
}
