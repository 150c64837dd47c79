package value

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Extra is a call chained onto the value returned by a generator,
// e.g. date.past followed by toLocaleDateString.
type Extra struct {
	Function  string        `json:"function"`
	Arguments []interface{} `json:"arguments,omitempty"`
}

// Definition names a library generator and the arguments to call it with.
type Definition struct {
	Generator string        `json:"generator"`
	Arguments []interface{} `json:"arguments,omitempty"`
	Extra     *Extra        `json:"extra,omitempty"`
	Weight    *float64      `json:"weight,omitempty"`
}

// W returns the selection weight of the definition. Unset weights count as 1.
func (d Definition) W() float64 {
	if d.Weight == nil {
		return 1
	}
	return *d.Weight
}

// UnmarshalJSON accepts either a bare generator name or a definition object.
// A non-list "arguments" value is treated as a single argument.
func (d *Definition) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return err
		}
		*d = Definition{Generator: name}
		return nil
	}

	var raw struct {
		Generator string          `json:"generator"`
		Arguments json.RawMessage `json:"arguments"`
		Extra     *struct {
			Function  string          `json:"function"`
			Arguments json.RawMessage `json:"arguments"`
		} `json:"extra"`
		Weight *float64 `json:"weight"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("value: generator definition: %w", err)
	}

	args, err := decodeArgs(raw.Arguments)
	if err != nil {
		return err
	}
	*d = Definition{Generator: raw.Generator, Arguments: args, Weight: raw.Weight}

	if raw.Extra != nil {
		extraArgs, err := decodeArgs(raw.Extra.Arguments)
		if err != nil {
			return err
		}
		d.Extra = &Extra{Function: raw.Extra.Function, Arguments: extraArgs}
	}
	return nil
}

func decodeArgs(b json.RawMessage) ([]interface{}, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil, nil
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("value: generator arguments: %w", err)
	}
	if list, ok := v.([]interface{}); ok {
		return list, nil
	}
	return []interface{}{v}, nil
}

// Definitions is one or more generator definitions. It decodes from a
// generator name, a definition object or a list of either.
type Definitions []Definition

// UnmarshalJSON implements json.Unmarshaler.
func (ds *Definitions) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var list []Definition
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		*ds = list
		return nil
	}

	var d Definition
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*ds = Definitions{d}
	return nil
}

// Weights returns the weight of every definition, in order.
func (ds Definitions) Weights() []float64 {
	ws := make([]float64, len(ds))
	for i, d := range ds {
		ws[i] = d.W()
	}
	return ws
}
