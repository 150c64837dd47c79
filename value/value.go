// Package value produces mock values for GraphQL scalars.
//
// A Backend either bakes a literal into the generated source (static mode)
// or emits an expression which calls the backing JavaScript library when
// the mocks run (dynamic mode). Static backends are reseeded before every
// draw so the output is a pure function of the seed.
//
// A Backend carries mutable seed state and must not be shared between
// concurrent renders.
//
package value

import (
	"errors"
	"fmt"
	"unicode/utf16"
)

// Library names a JavaScript random data library targeted by generated code.
type Library string

// Supported libraries.
const (
	Casual Library = "casual"
	Faker  Library = "faker"
)

// Sentinel errors returned by New and Backend.Custom.
var (
	ErrUnknownLibrary = errors.New("value: unknown generator library")
	ErrUnknownLocale  = errors.New("value: unknown locale")
	ErrUnknownExtra   = errors.New("value: unknown extra function")
	ErrBadArguments   = errors.New("value: bad generator arguments")

	ErrStaticUnsupported = errors.New("value: generator is only available with dynamic values")
)

// Tokens are the source snippets a dynamic mock file needs around
// its factories.
type Tokens struct {
	Import       string
	Seed         string
	SeedFunction string
}

// Backend is a random data source.
type Backend interface {
	Library() Library
	Dynamic() bool

	// Seed resets the random state. Static draws following a Seed
	// are fully determined by it.
	Seed(seed int64)

	Word() string
	UUID() string
	Boolean() string
	Integer() string
	Float() string
	Date() string

	// Random draws from [0, 1) at generation time.
	Random() float64
	// RandomExpr is the source expression drawing from [0, 1) at runtime.
	RandomExpr() string

	// Custom resolves a named library generator. Names the backend does not
	// know are returned verbatim so they act as raw expressions.
	Custom(def Definition) (string, error)

	Tokens() Tokens
}

// Config selects and configures a Backend.
type Config struct {
	Library Library
	Dynamic bool
	Locale  string
}

// New returns the Backend described by cfg. An empty Library selects Casual.
func New(cfg Config) (Backend, error) {
	switch cfg.Library {
	case "", Casual:
		return newCasual(cfg.Dynamic), nil
	case Faker:
		loc, err := matchLocale(cfg.Locale)
		if err != nil {
			return nil, err
		}
		return newFaker(cfg.Dynamic, loc), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownLibrary, cfg.Library)
	}
}

// Hash returns the 32 bit string hash used to derive the seed of a static
// draw, h = h*31 + c over the UTF-16 code units of s.
func Hash(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(c)
	}
	return h
}
