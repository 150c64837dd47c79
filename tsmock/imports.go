package tsmock

import (
	"regexp"
	"strings"

	"github.com/gqlc/tsmock/value"
	"github.com/vektah/gqlparser/v2/ast"
)

var fileExt = regexp.MustCompile(`\.\w+$`)

// typesModule returns the module specifier of the types file.
func (g *generation) typesModule() string {
	return fileExt.ReplaceAllString(g.opts.TypesFile, "")
}

// importName returns the import specifier of an object, input or
// interface type.
func (g *generation) importName(name string) string {
	spec := g.typeName(name, g.opts.TypesPrefix)
	if mapped, ok := g.opts.TypeNamesMapping[name]; ok {
		spec += " as " + mapped
	}
	return spec
}

// imports renders the statement importing every referenced type from the
// types file, or nothing when no types file is configured.
func (g *generation) imports(defs []*ast.Definition) string {
	if g.opts.TypesFile == "" {
		return ""
	}

	var names []string
	if p := g.opts.TypesPrefix; strings.HasSuffix(p, ".") {
		names = append(names, strings.TrimSuffix(p, "."))
	} else {
		for _, def := range defs {
			names = append(names, g.importName(def.Name))
		}
	}

	if !g.opts.EnumsAsTypes || g.opts.UseTypeImports {
		if p := g.opts.EnumsPrefix; strings.HasSuffix(p, ".") {
			names = append(names, strings.TrimSuffix(p, "."))
		} else {
			for _, e := range g.reg.Enums() {
				names = append(names, g.typeName(e.Name, p))
			}
		}
	}

	seen := make(map[string]struct{}, len(names))
	uniq := names[:0]
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		uniq = append(uniq, n)
	}

	keyword := "import"
	if g.opts.UseTypeImports {
		keyword = "import type"
	}
	return keyword + " { " + strings.Join(uniq, ", ") + " } from " + value.Quote(g.typesModule()) + ";\n"
}
