package tsmock

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Keep leaves names untouched.
const Keep = "keep"

// DefaultConvention is used for type names and enum values unless configured.
const DefaultConvention = "change-case-all#pascalCase"

// Casers hold state, so each call gets its own.
func upper(s string) string { return cases.Upper(language.Und).String(s) }
func lower(s string) string { return cases.Lower(language.Und).String(s) }
func title(s string) string { return cases.Title(language.Und).String(s) }

func words(s string) string { return strcase.ToDelimited(s, ' ') }

func upperFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return upper(string(r)) + s[n:]
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return lower(string(r)) + s[n:]
}

func pascal(s string) string { return strcase.ToCamel(strcase.ToSnake(s)) }

// caseFuncs maps change-case function names onto implementations.
var caseFuncs = map[string]func(string) string{
	"pascalCase":     pascal,
	"camelCase":      func(s string) string { return lowerFirst(pascal(s)) },
	"constantCase":   strcase.ToScreamingSnake,
	"snakeCase":      strcase.ToSnake,
	"paramCase":      strcase.ToKebab,
	"kebabCase":      strcase.ToKebab,
	"dotCase":        func(s string) string { return strcase.ToDelimited(s, '.') },
	"pathCase":       func(s string) string { return strcase.ToDelimited(s, '/') },
	"noCase":         words,
	"capitalCase":    func(s string) string { return title(words(s)) },
	"titleCase":      func(s string) string { return title(words(s)) },
	"headerCase":     func(s string) string { return strings.ReplaceAll(title(words(s)), " ", "-") },
	"sentenceCase":   func(s string) string { return upperFirst(words(s)) },
	"upperCase":      upper,
	"lowerCase":      lower,
	"upperCaseFirst": upperFirst,
	"lowerCaseFirst": lowerFirst,
	"swapCase": func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsUpper(r) {
				return unicode.ToLower(r)
			}
			return unicode.ToUpper(r)
		}, s)
	},
}

// caseFunc resolves a naming convention such as "change-case-all#camelCase".
// Unknown conventions fall back to pascal case.
func caseFunc(convention string) func(string) string {
	if i := strings.LastIndexByte(convention, '#'); i >= 0 {
		convention = convention[i+1:]
	}
	if fn, ok := caseFuncs[convention]; ok {
		return fn
	}
	return pascal
}

// converter renders a name under a naming convention with a raw prefix.
type converter func(value, prefix string) string

func newConverter(convention string, transformUnderscore bool) converter {
	if convention == Keep {
		return func(value, prefix string) string { return prefix + value }
	}

	fn := caseFunc(convention)
	return func(value, prefix string) string {
		if transformUnderscore {
			return prefix + fn(value)
		}

		parts := strings.Split(value, "_")
		for i, p := range parts {
			parts[i] = fn(p)
		}
		return prefix + strings.Join(parts, "_")
	}
}

// mockName returns the factory name for a type: the prefix when given,
// otherwise the indefinite article of the type's first word.
func mockName(typeName, casedName, prefix string) string {
	if prefix != "" {
		return prefix + casedName
	}

	first := upperFirst(words(typeName))
	if i := strings.IndexByte(first, ' '); i >= 0 {
		first = first[:i]
	}
	return article(first) + casedName
}

var (
	// letters whose spoken name starts with a vowel sound
	anLetters = "AEFHILMNORSX"

	anPrefixes = []string{"hour", "honest", "honor", "honour", "heir"}
	aPrefixes  = []string{"uni", "use", "usu", "usa", "uti", "ure", "uri", "uro", "ubi", "uga", "uku", "eu", "ewe", "one", "once"}
)

// article picks "a" or "an" for a word.
func article(word string) string {
	if word == "" {
		return "a"
	}

	if len(word) == 1 && word == upper(word) {
		if strings.Contains(anLetters, word) {
			return "an"
		}
		return "a"
	}

	w := lower(word)
	for _, p := range anPrefixes {
		if strings.HasPrefix(w, p) {
			return "an"
		}
	}
	for _, p := range aPrefixes {
		if strings.HasPrefix(w, p) {
			return "a"
		}
	}
	if strings.ContainsRune("aeiou", rune(w[0])) {
		return "an"
	}
	return "a"
}
