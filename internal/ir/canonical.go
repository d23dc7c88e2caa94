package ir

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/ndfmt/internal/syntax"
)

// MarshalCanonicalTree produces RFC 8785 canonical JSON for a syntax tree.
// It is the only serialization used for tree identity.
//
// Differences from json.Marshal:
//  1. Object keys in UTF-16 code unit order (all keys here are ASCII, so
//     the order is fixed: children, missing, text, type)
//  2. No HTML escaping
//  3. Strings are NFC normalized
//  4. Source positions are left out; moving a proof around in its file does
//     not change its identity
func MarshalCanonicalTree(n *syntax.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeCanonicalNode(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCanonicalNode(buf *bytes.Buffer, n *syntax.Node) error {
	if n == nil {
		return fmt.Errorf("nil node is forbidden in canonical JSON")
	}

	buf.WriteByte('{')
	if len(n.Children) > 0 {
		buf.WriteString(`"children":[`)
		for i, c := range n.Children {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonicalNode(buf, c); err != nil {
				return fmt.Errorf("%s[%d]: %w", n.Type, i, err)
			}
		}
		buf.WriteString("],")
	}
	if n.Missing {
		buf.WriteString(`"missing":true,`)
	}
	if n.Text != "" {
		buf.WriteString(`"text":`)
		if err := writeCanonicalString(buf, n.Text); err != nil {
			return err
		}
		buf.WriteByte(',')
	}
	buf.WriteString(`"type":`)
	if err := writeCanonicalString(buf, n.Type); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

// writeCanonicalString writes a canonical JSON string with NFC normalization.
// Only control characters, backslash and quote are escaped; U+2028 and U+2029
// stay literal as RFC 8785 requires.
func writeCanonicalString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(norm.NFC.String(s)); err != nil {
		return err
	}

	out := bytes.TrimSuffix(tmp.Bytes(), []byte("\n"))
	buf.Write(unescapeLineSeparators(out))
	return nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes emitted by
// encoding/json back into literal characters. Escapes are consumed in pairs
// so an escaped backslash followed by "u2028" is left alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		if data[i+1] == 'u' && i+6 <= len(data) && string(data[i+2:i+5]) == "202" {
			switch data[i+5] {
			case '8':
				out = append(out, "\u2028"...)
				i += 5
				continue
			case '9':
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		out = append(out, data[i], data[i+1])
		i++
	}
	return out
}
