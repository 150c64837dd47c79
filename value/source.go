package value

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// source is the seeded random state behind the static backends.
type source struct {
	pcg *rand.PCG
	rng *rand.Rand
	loc *locale
}

func newSource() *source {
	pcg := rand.NewPCG(0, 0)
	return &source{pcg: pcg, rng: rand.New(pcg), loc: locales[0]}
}

func (s *source) seed(seed int64) { s.pcg.Seed(uint64(seed), 0) }

func (s *source) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.IntN(n)
}

// between draws from [min, max].
func (s *source) between(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + s.intn(max-min+1)
}

func (s *source) float(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

func (s *source) pick(list []string) string { return list[s.intn(len(list))] }

// Read fills p from the generator so uuids follow the seed.
func (s *source) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(s.rng.Uint32())
	}
	return len(p), nil
}

func (s *source) uuid() string {
	id, err := uuid.NewRandomFromReader(s)
	if err != nil {
		// the reader never fails
		panic(err)
	}
	return id.String()
}

// epochMillis draws a time from the first weeks of the epoch, matching
// a JavaScript Date built from a unix timestamp in seconds.
func (s *source) epochMillis() time.Time {
	return time.UnixMilli(s.rng.Int64N(1462361249)).UTC()
}

func (s *source) pastYear(ref time.Time) time.Time {
	d := time.Duration(s.rng.Int64N(int64(365 * 24 * time.Hour)))
	return ref.Add(-d).UTC()
}

func (s *source) words(list []string, n int) []string {
	out := make([]string, max(n, 0))
	for i := range out {
		out[i] = s.pick(list)
	}
	return out
}

func (s *source) sentence(list []string, min, max int) string {
	w := strings.Join(s.words(list, s.between(min, max)), " ")
	return strings.ToUpper(w[:1]) + w[1:] + "."
}

// quote renders a TypeScript single quoted string literal.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// Quote renders s as a TypeScript string literal.
func Quote(s string) string { return quote(s) }

const isoLayout = "2006-01-02T15:04:05.000Z"

func number(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// literal renders a generated value as TypeScript source. Strings are
// quoted, numbers and booleans are bare, anything else is JSON.
func literal(v interface{}) (string, error) {
	switch x := v.(type) {
	case nil:
		return "null", nil
	case string:
		return quote(x), nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case float64:
		return number(x), nil
	case time.Time:
		return `"` + x.UTC().Format(isoLayout) + `"`, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// jsonArgs renders arguments for a spread call, e.g. [1,100].
func jsonArgs(args []interface{}) string {
	b, err := json.Marshal(args)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// applyExtra evaluates a chained call on a generated value.
func applyExtra(v interface{}, e *Extra) (interface{}, error) {
	switch e.Function {
	case "toISOString":
		t, ok := v.(time.Time)
		if !ok {
			return nil, fmt.Errorf("%w: toISOString on %T", ErrBadArguments, v)
		}
		return t.UTC().Format(isoLayout), nil
	case "toLocaleDateString":
		t, ok := v.(time.Time)
		if !ok {
			return nil, fmt.Errorf("%w: toLocaleDateString on %T", ErrBadArguments, v)
		}
		t = t.UTC()
		return fmt.Sprintf("%d/%d/%d", t.Month(), t.Day(), t.Year()), nil
	case "toFixed":
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("%w: toFixed on %T", ErrBadArguments, v)
		}
		return strconv.FormatFloat(f, 'f', argInt(e.Arguments, 0, 0), 64), nil
	case "toUpperCase":
		return strings.ToUpper(toString(v)), nil
	case "toLowerCase":
		return strings.ToLower(toString(v)), nil
	case "toString":
		return toString(v), nil
	case "join":
		list, ok := v.([]string)
		if !ok {
			return nil, fmt.Errorf("%w: join on %T", ErrBadArguments, v)
		}
		return strings.Join(list, argString(e.Arguments, 0, ",")), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownExtra, e.Function)
}

func toString(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case time.Time:
		return x.UTC().Format(time.RFC1123)
	case float64:
		return number(x)
	case []string:
		return strings.Join(x, ",")
	}
	return fmt.Sprint(v)
}

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	}
	return 0, false
}

func argInt(args []interface{}, i, def int) int {
	if i >= len(args) {
		return def
	}
	if f, ok := toFloat(args[i]); ok {
		return int(f)
	}
	return def
}

// argCount reads a length argument. Negative lengths yield empty values,
// as in the JavaScript libraries.
func argCount(args []interface{}, i, def int) int {
	return max(argInt(args, i, def), 0)
}

func argFloat(args []interface{}, i int, def float64) float64 {
	if i >= len(args) {
		return def
	}
	if f, ok := toFloat(args[i]); ok {
		return f
	}
	return def
}

func argString(args []interface{}, i int, def string) string {
	if i >= len(args) {
		return def
	}
	if s, ok := args[i].(string); ok {
		return s
	}
	return def
}

func argList(args []interface{}, i int) ([]interface{}, bool) {
	if i >= len(args) {
		return nil, false
	}
	list, ok := args[i].([]interface{})
	return list, ok
}

// argKeys returns the sorted keys of an object argument.
func argKeys(args []interface{}, i int) []string {
	if i >= len(args) {
		return nil
	}
	m, ok := args[i].(map[string]interface{})
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// argOpt reads a numeric key from an options object argument.
func argOpt(args []interface{}, i int, key string, def float64) float64 {
	if i >= len(args) {
		return def
	}
	m, ok := args[i].(map[string]interface{})
	if !ok {
		return def
	}
	if f, ok := toFloat(m[key]); ok {
		return f
	}
	return def
}

// generator is one named library generator. Property generators are
// referenced without a call in dynamic output.
type generator struct {
	call bool
	fn   func(s *source, args []interface{}) (interface{}, error)
}

func prop(fn func(s *source) interface{}) generator {
	return generator{fn: func(s *source, _ []interface{}) (interface{}, error) { return fn(s), nil }}
}

func call(fn func(s *source, args []interface{}) interface{}) generator {
	return generator{call: true, fn: func(s *source, args []interface{}) (interface{}, error) { return fn(s, args), nil }}
}

// staticCustom evaluates def against a generator table.
func staticCustom(s *source, table map[string]generator, def Definition) (string, error) {
	g, ok := table[def.Generator]
	if !ok {
		return def.Generator, nil
	}

	v, err := g.fn(s, def.Arguments)
	if err != nil {
		return "", fmt.Errorf("value: %s: %w", def.Generator, err)
	}
	if def.Extra != nil {
		if v, err = applyExtra(v, def.Extra); err != nil {
			return "", err
		}
	}
	return literal(v)
}

// dynamicExtra renders the chained call suffix of a dynamic expression.
func dynamicExtra(e *Extra) string {
	if e == nil {
		return ""
	}
	if len(e.Arguments) == 0 {
		return "." + e.Function + "()"
	}
	return "." + e.Function + "(..." + jsonArgs(e.Arguments) + ")"
}

// Generators lists the generator names known to a library, sorted.
func Generators(lib Library) []string {
	var table map[string]generator
	switch lib {
	case Casual:
		table = casualGenerators
	case Faker:
		table = fakerGenerators
	}

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
