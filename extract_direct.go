package sap

import (
	"io"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// tryDirectParse attempts a strict parse when the trimmed text looks like a
// complete JSON value. Any parse error falls through to the next strategy
// rather than propagating — a failed strict parse is a cue to keep trying,
// not a reason to give up.
func (x *extractor) tryDirectParse(text string) (*Value, bool) {
	trimmed := strings.TrimSpace(text)
	if !looksLikeJSON(trimmed) {
		return nil, false
	}
	v, err := decodeOrderedJSON(trimmed)
	if err != nil {
		return nil, false
	}
	return v, true
}

// decodeOrderedJSON strict-parses a complete JSON text into a Value tree,
// preserving object-key declaration order via a token-level walk rather
// than decoding into map[string]any (which Go's map type would scramble).
func decodeOrderedJSON(text string) (*Value, error) {
	dec := jsontext.NewDecoder(strings.NewReader(text))
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	// Reject trailing garbage: a direct parse must consume the whole value
	// and nothing else (aside from trailing whitespace).
	if _, err := dec.ReadToken(); err != io.EOF {
		return nil, errTrailingContent
	}
	return v, nil
}

func decodeValue(dec *jsontext.Decoder) (*Value, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *jsontext.Decoder, tok jsontext.Token) (*Value, error) {
	switch tok.Kind() {
	case 'n':
		return Null(), nil
	case 't', 'f':
		return Bool(tok.Bool()), nil
	case '"':
		return String(tok.String()), nil
	case '0':
		return Number(tok.Float()), nil
	case '{':
		obj := NewObject()
		for {
			keyTok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			if keyTok.Kind() == '}' {
				return Obj(obj), nil
			}
			key := keyTok.String()
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, val)
		}
	case '[':
		var items []*Value
		for {
			peekTok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			if peekTok.Kind() == ']' {
				return Array(items), nil
			}
			val, err := decodeFromToken(dec, peekTok)
			if err != nil {
				return nil, err
			}
			items = append(items, val)
		}
	default:
		return nil, errUnexpectedToken
	}
}
