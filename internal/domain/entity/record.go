package entity

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Record is anything stored in a collection under an integer id.
type Record interface {
	RecordID() int
}

// Extra holds the keys of a stored record that no struct field models.
// They are written back unchanged so other clients' data survives rewrites.
type Extra map[string]json.RawMessage

// marshalWithExtra encodes known and merges in the extra keys it does not set.
func marshalWithExtra(known any, extra Extra) ([]byte, error) {
	data, err := json.Marshal(known)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return data, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}

	return json.Marshal(merged)
}

// unmarshalWithExtra decodes data into known and returns every key whose
// name is not one of known's json fields.
func unmarshalWithExtra(data []byte, known any, name string) (Extra, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	if err := json.Unmarshal(data, known); err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}

	for _, key := range jsonKeys(reflect.TypeOf(known).Elem()) {
		delete(raw, key)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	return raw, nil
}

func jsonKeys(t reflect.Type) []string {
	keys := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = field.Name
		}
		keys = append(keys, name)
	}

	return keys
}
