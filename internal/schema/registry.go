// Package schema provides centralized JSON schema versioning and
// deterministic encoding for matchc's structured diagnostics.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Schema version constants.
const (
	ErrorV1 = "matchc.error/v1"
	TreeV1  = "matchc.tree/v1"
)

// Accepts checks if a schema version is compatible with the expected
// version, supporting forward compatibility within major versions.
func Accepts(got, wantPrefix string) bool {
	if got == wantPrefix {
		return true
	}
	if strings.HasPrefix(got, wantPrefix+".") {
		return true
	}
	return false
}

// CompactMode, when set, makes FormatJSON compact rather than indented.
var CompactMode = false

// SetCompactMode enables or disables compact JSON output.
func SetCompactMode(enabled bool) { CompactMode = enabled }

// FormatJSON re-formats data according to CompactMode.
func FormatJSON(data []byte) ([]byte, error) {
	if CompactMode {
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalDeterministic marshals a value to JSON with sorted object keys,
// so that two structurally-identical reports always encode to the same
// bytes — required for golden-file and --json CLI output.
func MarshalDeterministic(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("initial marshal failed: %w", err)
	}
	data := bytes.TrimRight(buf.Bytes(), "\n")

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return data, nil
	}
	return marshalSorted(generic)
}

func marshalSorted(v any) ([]byte, error) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var out bytes.Buffer
		out.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				out.WriteByte(',')
			}
			keyJSON, err := encodeNoHTMLEscape(k)
			if err != nil {
				return nil, err
			}
			valJSON, err := marshalSorted(val[k])
			if err != nil {
				return nil, err
			}
			out.Write(keyJSON)
			out.WriteByte(':')
			out.Write(valJSON)
		}
		out.WriteByte('}')
		return out.Bytes(), nil

	case []any:
		var out bytes.Buffer
		out.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				out.WriteByte(',')
			}
			itemJSON, err := marshalSorted(item)
			if err != nil {
				return nil, err
			}
			out.Write(itemJSON)
		}
		out.WriteByte(']')
		return out.Bytes(), nil

	default:
		return encodeNoHTMLEscape(v)
	}
}

func encodeNoHTMLEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
