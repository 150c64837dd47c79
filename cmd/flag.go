package cmd

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/gqlc/tsmock/gen"
)

// headerFlag represents a flag for setting HTTP headers
// Any repeats will not override. They will append.
//
// format: a=1,b=2
//
type headerFlag struct {
	value   *http.Header
	changed bool
}

func (*headerFlag) String() string { return "" }

func (*headerFlag) Type() string { return "map[string][]string" }

func (f *headerFlag) Set(val string) error {
	var ss []string
	n := strings.Count(val, "=")
	switch n {
	case 0:
		return fmt.Errorf("%s must be formatted as key=value", val)
	case 1:
		ss = append(ss, strings.Trim(val, `"`))
	default:
		r := csv.NewReader(strings.NewReader(val))
		var err error
		ss, err = r.Read()
		if err != nil {
			return err
		}
	}

	out := make(http.Header, len(ss))
	for _, pair := range ss {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return fmt.Errorf("%s must be formatted as key=value", pair)
		}
		out.Add(kv[0], strings.Trim(kv[1], "\""))
	}
	if !f.changed {
		*f.value = out
	} else {
		for k, v := range out {
			for _, s := range v {
				f.value.Add(k, s)
			}
		}
	}
	f.changed = true
	return nil
}

// generator is a Generator along with the state of its flags.
type generator struct {
	gen.Generator

	// name identifies the generator in config files, e.g. tsmock for tsmock_out.
	name    string
	outFlag string
	optFlag string
	help    string

	opts     map[string]interface{}
	fileOpts map[string]interface{}
	outDir   string
	enabled  bool
}

func newGenerator(g gen.Generator, outFlag, optFlag, help string) *generator {
	return &generator{
		Generator: g,
		name:      strings.TrimSuffix(outFlag, "_out"),
		outFlag:   outFlag,
		optFlag:   optFlag,
		help:      help,
		opts:      make(map[string]interface{}),
	}
}

// options merges config file options with flag options, flags taking precedence.
func (g *generator) options() map[string]interface{} {
	out := make(map[string]interface{}, len(g.fileOpts)+len(g.opts))
	for k, v := range g.fileOpts {
		out[k] = v
	}
	for k, v := range g.opts {
		out[k] = v
	}
	return out
}

// genFlag represents a Generator flag: *_out or *_opt
type genFlag struct {
	gen *generator
	fp  *fparser

	isOpt bool
}

func (*genFlag) String() string { return "" }

func (*genFlag) Type() string { return "string" }

func (f *genFlag) Set(arg string) (err error) {
	dir := new(string)

	f.fp.Init(strings.NewReader(arg))
	f.fp.Filename = arg
	err = f.fp.parse(parseArg, dir, f.gen.opts)
	if err != nil {
		return err
	}

	if f.isOpt {
		switch {
		case *dir == "":
		case !strings.ContainsAny(*dir, `/\.`):
			// a trailing bare key is a boolean option
			return addValue(f.gen.opts, *dir, true)
		default:
			return fmt.Errorf("tsmock: unexpected output directory in %s: %s", f.gen.optFlag, *dir)
		}
		return nil
	}

	if *dir == "" {
		*dir = "."
	}
	f.gen.outDir = filepath.Clean(*dir)
	f.gen.enabled = true
	return nil
}

type stateFn func(*fparser, *string, map[string]interface{}) stateFn

type fparser struct {
	*scanner.Scanner
}

func (p *fparser) errorf(format string, args ...interface{}) { panic(fmt.Errorf(format, args...)) }

func (p *fparser) error(err error) { panic(err) }

func (p *fparser) recover(err *error) {
	e := recover()
	if e != nil {
		*err = e.(error)
	}
}

func (p *fparser) parse(root stateFn, dir *string, opts map[string]interface{}) (err error) {
	defer p.recover(&err)

	for state := root; state != nil; {
		state = state(p, dir, opts)
	}
	return
}

func parseArg(p *fparser, dir *string, opts map[string]interface{}) stateFn {
	switch t := p.Scan(); t {
	case os.PathSeparator:
		*dir += string(os.PathSeparator)
		return parseDir(p, dir)
	case '.':
		t = p.Peek()
		if t == '.' || t == '/' {
			*dir += p.TokenText()
			return parseDir(p, dir)
		}

		*dir = "."
		return nil
	}

	key := p.TokenText()

	switch tt := p.Scan(); tt {
	case ':':
		fallthrough
	case ',':
		opts[key] = true
		return parseArg
	case '=':
		return parseValue(key)
	case os.PathSeparator:
		*dir = *dir + key + string(os.PathSeparator)
		return parseDir(p, dir)
	case scanner.EOF:
		*dir = key
	}

	return nil
}

func parseValue(key string) stateFn {
	return func(p *fparser, dir *string, opts map[string]interface{}) stateFn {
		tt := p.Scan()
		valStr := p.TokenText()

		var err error
		switch tt {
		case scanner.Int:
			var v int64
			if v, err = strconv.ParseInt(valStr, 10, 64); err == nil {
				err = addValue(opts, key, v)
			}
		case scanner.Float:
			var v float64
			if v, err = strconv.ParseFloat(valStr, 64); err == nil {
				err = addValue(opts, key, v)
			}
		case scanner.Ident:
			if valStr == "true" || valStr == "false" {
				err = addValue(opts, key, valStr == "true")
				break
			}
			err = addValue(opts, key, valStr)
		case scanner.String, scanner.RawString:
			var v string
			if v, err = strconv.Unquote(valStr); err == nil {
				err = addValue(opts, key, v)
			}
		default:
			p.errorf("tsmock: unexpected character in generator option, %s, value: %s", key, string(tt))
		}
		if err != nil {
			p.error(err)
		}

		if t := p.Scan(); t == ':' {
			return parseDir(p, dir)
		}

		return parseArg
	}
}

// addValue sets key to v, collecting repeated keys into a slice.
func addValue[T any](opts map[string]interface{}, key string, v T) error {
	old, ok := opts[key]
	if !ok {
		opts[key] = v
		return nil
	}

	switch o := old.(type) {
	case T:
		opts[key] = []T{o, v}
	case []T:
		opts[key] = append(o, v)
	default:
		return fmt.Errorf("tsmock: mixed value types for generator option, %s", key)
	}
	return nil
}

func parseDir(p *fparser, dir *string) stateFn {
	for t := p.Scan(); t != scanner.EOF; {
		*dir += p.TokenText()
		t = p.Scan()
	}
	return nil
}
