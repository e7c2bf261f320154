package task

import (
	"bytes"
	_ "embed"
	"encoding/json"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tasks.schema.json
var schemaJSON string

var storedSchema = jsonschema.MustCompileString("tasks.schema.json", schemaJSON)

// Decode parses a stored blob into a list. It fails soft: an empty,
// malformed, or schema-invalid payload yields an empty list, never an
// error. Records persisted without an id (legacy or foreign data) get
// one synthesized via gen; such ids are only stable across reloads once
// the list is saved again.
func Decode(data []byte, gen IDGen) List {
	if gen == nil {
		gen = NewID
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return List{}
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return List{}
	}
	if err := storedSchema.Validate(doc); err != nil {
		return List{}
	}

	var l List
	if err := json.Unmarshal(data, &l); err != nil {
		return List{}
	}
	for i := range l {
		if l[i].ID == "" {
			l[i].ID = gen()
		}
	}
	return l
}

// Encode serializes the full list with 2-space indentation and a
// trailing newline.
func Encode(l List) ([]byte, error) {
	if l == nil {
		l = List{}
	}
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
