package transform

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// StringField returns the value of a top-level string field of a JSON object.
func StringField(doc []byte, field string) (string, error) {
	v, err := lookupString(doc, field)
	if err != nil {
		return "", err
	}

	return v.Str, nil
}

// ReplaceString swaps the value of a top-level string field in place. Every
// other byte of the document, including key order and whitespace, is kept.
func ReplaceString(doc []byte, field, value string) ([]byte, error) {
	v, err := lookupString(doc, field)
	if err != nil {
		return nil, err
	}

	start, end := v.Index, v.Index+len(v.Raw)

	if start <= 0 || end > len(doc) || !bytes.Equal(doc[start:end], []byte(v.Raw)) {
		return nil, errors.Errorf("could not locate field %q", field)
	}

	quoted, err := quote(value)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(doc)-len(v.Raw)+len(quoted))
	out = append(out, doc[:start]...)
	out = append(out, quoted...)
	out = append(out, doc[end:]...)

	return out, nil
}

func lookupString(doc []byte, field string) (gjson.Result, error) {
	if !utf8.Valid(doc) {
		return gjson.Result{}, errors.New("payload is not valid utf-8")
	}

	if !gjson.ValidBytes(doc) {
		return gjson.Result{}, errors.New("payload is not valid json")
	}

	obj := gjson.ParseBytes(doc)

	if !obj.IsObject() {
		return gjson.Result{}, errors.New("payload is not a json object")
	}

	// decoders disagree on which duplicate wins, so a repeated field is ambiguous
	n := 0
	obj.ForEach(func(k, _ gjson.Result) bool {
		if k.Str == field {
			n++
		}
		return true
	})

	if n > 1 {
		return gjson.Result{}, errors.Errorf("field %q is repeated", field)
	}

	v := gjson.GetBytes(doc, escapePath(field))

	if !v.Exists() {
		return gjson.Result{}, errors.Errorf("field %q not found", field)
	}

	if v.Type != gjson.String {
		return gjson.Result{}, errors.Errorf("field %q is not a string", field)
	}

	return v, nil
}

func quote(s string) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return nil, errors.WithStack(err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// escapePath makes a key literal for gjson, which treats punctuation such as
// '.', '*', '?' and '#' as path syntax
func escapePath(key string) string {
	var b strings.Builder

	for _, c := range key {
		if !(c == '_' || c == '-' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c > '~') {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}

	return b.String()
}
