package show

import (
	"bytes"
	"encoding/json"
	"io"
)

// member is one key/value pair of a JSON object, value left undecoded.
type member struct {
	key   string
	value json.RawMessage
}

// objectMembers decodes raw as a JSON object and returns its members in
// document order. ok is false when raw holds anything other than a single object.
func objectMembers(raw []byte) (members []member, ok bool, err error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, false, err
	}
	if delim, isDelim := tok.(json.Delim); !isDelim || delim != '{' {
		return nil, false, nil
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false, err
		}
		key, _ := tok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, false, err
		}
		members = append(members, member{key: key, value: value})
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, false, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false, nil
	}
	return members, true, nil
}

// isObject reports whether raw is a JSON object, without decoding its members.
func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// entryName returns the string "name" field of an entry's metadata.
func entryName(raw json.RawMessage) (string, bool) {
	if !isObject(raw) {
		return "", false
	}
	var meta map[string]json.RawMessage
	if err := json.Unmarshal(raw, &meta); err != nil {
		return "", false
	}
	field, ok := meta["name"]
	if !ok {
		return "", false
	}
	var name string
	if err := json.Unmarshal(field, &name); err != nil {
		return "", false
	}
	return name, true
}
