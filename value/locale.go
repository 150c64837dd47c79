package value

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = language.MustParse(l.code)
	}
	return language.NewMatcher(tags)
}()

// matchLocale resolves a locale name such as "en_US" or "de" to the closest
// supported data set. An empty name selects English.
func matchLocale(name string) (*locale, error) {
	if name == "" {
		return locales[0], nil
	}

	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLocale, name)
	}

	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return nil, fmt.Errorf("%w: %s (supported: %s)", ErrUnknownLocale, name, strings.Join(Locales(), ", "))
	}
	return locales[idx], nil
}

// Locales lists the supported locale codes.
func Locales() []string {
	codes := make([]string, len(locales))
	for i, l := range locales {
		codes[i] = l.code
	}
	return codes
}
