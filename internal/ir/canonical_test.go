package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ndfmt/internal/syntax"
)

func TestMarshalCanonicalTree(t *testing.T) {
	n := syntax.New(syntax.TypeExpression,
		syntax.New(syntax.TypeAnd,
			syntax.Leaf(syntax.TypeVariable, "p"),
			&syntax.Node{Type: syntax.TypeVariable, Missing: true},
		),
	)

	got, err := MarshalCanonicalTree(n)
	require.NoError(t, err)
	assert.Equal(t,
		`{"children":[{"children":[{"text":"p","type":"variable"},{"missing":true,"type":"variable"}],"type":"and"}],"type":"expression"}`,
		string(got))
}

func TestMarshalCanonicalTree_IgnoresPositions(t *testing.T) {
	a := &syntax.Node{Type: syntax.TypeVariable, Text: "p", Row: 1, Column: 1}
	b := &syntax.Node{Type: syntax.TypeVariable, Text: "p", Row: 9, Column: 4}

	ca, err := MarshalCanonicalTree(a)
	require.NoError(t, err)
	cb, err := MarshalCanonicalTree(b)
	require.NoError(t, err)
	assert.Equal(t, ca, cb)
}

func TestMarshalCanonicalTree_NoHTMLEscape(t *testing.T) {
	got, err := MarshalCanonicalTree(syntax.Leaf(syntax.TypeComment, "// a < b && c > d"))
	require.NoError(t, err)
	assert.Equal(t, `{"text":"// a < b && c > d","type":"comment"}`, string(got))
}

func TestMarshalCanonicalTree_NFC(t *testing.T) {
	// "\u00e9" as a single code point vs "e" + combining acute accent.
	nfc := syntax.Leaf(syntax.TypeVariable, "caf\u00e9")
	nfd := syntax.Leaf(syntax.TypeVariable, "cafe\u0301")

	a, err := MarshalCanonicalTree(nfc)
	require.NoError(t, err)
	b, err := MarshalCanonicalTree(nfd)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMarshalCanonicalTree_LineSeparators(t *testing.T) {
	got, err := MarshalCanonicalTree(syntax.Leaf(syntax.TypeComment, "a\u2028b\u2029c"))
	require.NoError(t, err)
	assert.Equal(t, "{\"text\":\"a\u2028b\u2029c\",\"type\":\"comment\"}", string(got))
}

func TestMarshalCanonicalTree_EscapedBackslash(t *testing.T) {
	// A literal backslash followed by "u2028" must stay escaped.
	got, err := MarshalCanonicalTree(syntax.Leaf(syntax.TypeComment, `\u2028`))
	require.NoError(t, err)
	assert.Equal(t, `{"text":"\\u2028","type":"comment"}`, string(got))
}

func TestMarshalCanonicalTree_Nil(t *testing.T) {
	_, err := MarshalCanonicalTree(nil)
	require.Error(t, err)

	_, err = MarshalCanonicalTree(syntax.New(syntax.TypeBlock, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "block[0]")
}
