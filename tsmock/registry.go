package tsmock

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// Kind classifies a registry entry.
type Kind uint8

// Registry entry kinds.
const (
	KindEnum Kind = iota + 1
	KindScalar
	KindUnion
	KindImplement
)

func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindScalar:
		return "scalar"
	case KindUnion:
		return "union"
	case KindImplement:
		return "implement"
	}
	return "unknown"
}

// Entry is a named type the resolver handles specially.
type Entry struct {
	Name string
	Kind Kind

	// Values holds enum members in declaration order.
	Values []string

	// Members holds union member type names in declaration order.
	Members []string

	// Object is the implementing object for KindImplement entries.
	Object *ast.Definition
}

// implements reports whether the entry's object implements iface.
func (e *Entry) implements(iface string) bool {
	if e.Object == nil {
		return false
	}
	for _, name := range e.Object.Interfaces {
		if name == iface {
			return true
		}
	}
	return false
}

// Registry catalogs enums, unions, scalars and, optionally, interface
// implementors of a schema. It is immutable once built.
type Registry struct {
	entries []*Entry
	byName  map[string]struct{}
}

// NewRegistry walks defs once, in order. The first definition of a name wins.
// Objects implementing interfaces are only recorded with implementors set.
func NewRegistry(defs []*ast.Definition, implementors bool) *Registry {
	r := &Registry{byName: make(map[string]struct{}, len(defs))}

	for _, def := range defs {
		e := &Entry{Name: def.Name}

		switch def.Kind {
		case ast.Enum:
			e.Kind = KindEnum
			e.Values = make([]string, len(def.EnumValues))
			for i, v := range def.EnumValues {
				e.Values[i] = v.Name
			}
		case ast.Union:
			e.Kind = KindUnion
			e.Members = append([]string(nil), def.Types...)
		case ast.Scalar:
			e.Kind = KindScalar
		case ast.Object:
			if !implementors || len(def.Interfaces) == 0 {
				continue
			}
			e.Kind = KindImplement
			e.Object = def
		default:
			continue
		}

		r.add(e)
	}
	return r
}

func (r *Registry) add(e *Entry) {
	if _, exists := r.byName[e.Name]; exists {
		return
	}
	r.byName[e.Name] = struct{}{}
	r.entries = append(r.entries, e)
}

// Lookup returns every entry resolving a reference to name, in registry
// order. Implement entries match when their object implements name, all
// other entries match by name.
func (r *Registry) Lookup(name string) []*Entry {
	var found []*Entry
	for _, e := range r.entries {
		if e.Kind == KindImplement {
			if e.implements(name) {
				found = append(found, e)
			}
			continue
		}
		if e.Name == name {
			found = append(found, e)
		}
	}
	return found
}

// Enums returns the enum entries in registry order.
func (r *Registry) Enums() []*Entry {
	var enums []*Entry
	for _, e := range r.entries {
		if e.Kind == KindEnum {
			enums = append(enums, e)
		}
	}
	return enums
}

// Len returns the number of entries.
func (r *Registry) Len() int { return len(r.entries) }
