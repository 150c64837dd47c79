package tsmock

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gqlc/tsmock/value"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Circular selects how factories terminate circular relationships.
type Circular uint8

// Circular relationship modes.
const (
	// CircularOff lets factories call each other unconditionally.
	CircularOff Circular = iota
	// CircularCopy gives every factory its own copy of the omission set.
	CircularCopy
	// CircularImmediate shares one omission set across the whole call tree.
	CircularImmediate
)

// UnmarshalJSON accepts a boolean or the string "immediate".
func (c *Circular) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch t := v.(type) {
	case nil:
		*c = CircularOff
	case bool:
		*c = CircularOff
		if t {
			*c = CircularCopy
		}
	case string:
		if t != "immediate" {
			return fmt.Errorf("unknown circular relationship mode: %q", t)
		}
		*c = CircularImmediate
	default:
		return fmt.Errorf("unknown circular relationship mode: %v", t)
	}
	return nil
}

// ScalarMapping holds the generators of a scalar. Input object fields
// use Input, every other field uses Output.
type ScalarMapping struct {
	Input  value.Definitions
	Output value.Definitions
}

// UnmarshalJSON accepts generator options or an {input, output} pair.
func (m *ScalarMapping) UnmarshalJSON(b []byte) error {
	var split struct {
		Input  value.Definitions `json:"input"`
		Output value.Definitions `json:"output"`
	}
	if err := json.Unmarshal(b, &split); err == nil && split.Input != nil && split.Output != nil {
		m.Input, m.Output = split.Input, split.Output
		return nil
	}

	var defs value.Definitions
	if err := json.Unmarshal(b, &defs); err != nil {
		return err
	}
	m.Input, m.Output = defs, defs
	return nil
}

func (m ScalarMapping) defs(input bool) value.Definitions {
	if input {
		return m.Input
	}
	return m.Output
}

// Options configures a render.
type Options struct {
	TypesFile                      string                                  `json:"typesFile"`
	EnumValues                     string                                  `json:"enumValues"`
	TypeNames                      string                                  `json:"typeNames"`
	AddTypename                    bool                                    `json:"addTypename"`
	Prefix                         string                                  `json:"prefix"`
	Scalars                        map[string]ScalarMapping                `json:"scalars"`
	TerminateCircularRelationships Circular                                `json:"terminateCircularRelationships"`
	TypesPrefix                    string                                  `json:"typesPrefix"`
	EnumsPrefix                    string                                  `json:"enumsPrefix"`
	TransformUnderscore            bool                                    `json:"transformUnderscore"`
	ListElementCount               int                                     `json:"listElementCount"`
	DynamicValues                  bool                                    `json:"dynamicValues"`
	GenerateLibrary                value.Library                           `json:"generateLibrary"`
	FieldGeneration                map[string]map[string]value.Definitions `json:"fieldGeneration"`
	Locale                         string                                  `json:"locale"`
	EnumsAsTypes                   bool                                    `json:"enumsAsTypes"`
	UseImplementingTypes           bool                                    `json:"useImplementingTypes"`
	DefaultNullableToNull          bool                                    `json:"defaultNullableToNull"`
	UseTypeImports                 bool                                    `json:"useTypeImports"`
	TypeNamesMapping               map[string]string                       `json:"typeNamesMapping"`
	IncludedTypes                  []string                                `json:"includedTypes"`
	ExcludedTypes                  []string                                `json:"excludedTypes"`
	DefineWeightedChoice           bool                                    `json:"defineWeightedChoice"`

	// Filename overrides the name of the written file.
	Filename string `json:"filename"`
}

// DefaultOptions returns the options used for unset keys.
func DefaultOptions() *Options {
	return &Options{
		EnumValues:          DefaultConvention,
		TypeNames:           DefaultConvention,
		TransformUnderscore: true,
		ListElementCount:    1,
		GenerateLibrary:     value.Casual,
	}
}

// listCount clamps the configured list length at zero.
func (o *Options) listCount() int {
	if o.ListElementCount < 0 {
		return 0
	}
	return o.ListElementCount
}

// included reports whether factories and imports are generated for name.
func (o *Options) included(name string) bool {
	if len(o.IncludedTypes) > 0 && !contains(o.IncludedTypes, name) {
		return false
	}
	return !contains(o.ExcludedTypes, name)
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

//go:embed options.schema.json
var optionsSchemaSrc string

var (
	optionsSchema     *jsonschema.Schema
	optionsSchemaErr  error
	optionsSchemaOnce sync.Once
)

func compileOptionsSchema() (*jsonschema.Schema, error) {
	optionsSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("options.schema.json", strings.NewReader(optionsSchemaSrc)); err != nil {
			optionsSchemaErr = err
			return
		}
		optionsSchema, optionsSchemaErr = compiler.Compile("options.schema.json")
	})
	return optionsSchema, optionsSchemaErr
}

// DecodeOptions validates raw generator options and decodes them over
// DefaultOptions.
func DecodeOptions(raw map[string]interface{}) (*Options, error) {
	if v, ok := raw["typenames"]; ok {
		return nil, &ConfigError{
			Option:  "typenames",
			Value:   v,
			Message: "Config `typenames` was renamed to `typeNames`. Please update your config",
		}
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return nil, &ConfigError{Message: "options are not serializable", Cause: err}
	}

	// The validator only understands plain JSON values.
	var doc interface{}
	if err = json.Unmarshal(b, &doc); err != nil {
		return nil, &ConfigError{Cause: err}
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}

	schema, err := compileOptionsSchema()
	if err != nil {
		return nil, fmt.Errorf("tsmock: compiling options schema: %w", err)
	}
	if err = schema.Validate(doc); err != nil {
		return nil, validationError(err, doc)
	}

	opts := DefaultOptions()
	if err = json.Unmarshal(b, opts); err != nil {
		return nil, &ConfigError{Cause: err}
	}
	return opts, nil
}

// validationError converts the deepest schema violation into a ConfigError
// naming the top level option.
func validationError(err error, doc interface{}) error {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return &ConfigError{Cause: err}
	}

	leaf := verr
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}

	option := strings.TrimPrefix(leaf.InstanceLocation, "/")
	if i := strings.IndexByte(option, '/'); i >= 0 {
		option = option[:i]
	}

	cerr := &ConfigError{Option: option, Message: leaf.Message}
	if m, ok := doc.(map[string]interface{}); ok && option != "" {
		cerr.Value = m[option]
	}
	return cerr
}
