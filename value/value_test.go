package value

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	testCases := []struct {
		Name string
		In   string
		Out  int32
	}{
		{Name: "Empty", In: "", Out: 0},
		{Name: "Single", In: "a", Out: 97},
		{Name: "Pair", In: "ab", Out: 97*31 + 98},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(subT *testing.T) {
			assert.Equal(subT, testCase.Out, Hash(testCase.In))
		})
	}

	// 31^7 overflows an int32, the result must wrap rather than saturate
	h := Hash("zzzzzzzz")
	var want int32
	for _, c := range "zzzzzzzz" {
		want = want*31 + int32(c)
	}
	assert.Equal(t, want, h)
}

func TestNew(t *testing.T) {
	b, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, Casual, b.Library())
	assert.False(t, b.Dynamic())

	b, err = New(Config{Library: Faker, Dynamic: true, Locale: "en_US"})
	require.NoError(t, err)
	assert.Equal(t, Faker, b.Library())
	assert.True(t, b.Dynamic())

	_, err = New(Config{Library: "chance"})
	assert.ErrorIs(t, err, ErrUnknownLibrary)

	_, err = New(Config{Library: Faker, Locale: "not a locale"})
	assert.ErrorIs(t, err, ErrUnknownLocale)
}

func TestStaticDeterminism(t *testing.T) {
	draw := func(b Backend) []string {
		b.Seed(int64(Hash("Userid")))
		out := []string{b.UUID(), b.Word(), b.Integer(), b.Float(), b.Boolean(), b.Date()}
		b.Seed(int64(Hash("Userid")))
		return append(out, b.UUID())
	}

	for _, lib := range []Library{Casual, Faker} {
		t.Run(string(lib), func(subT *testing.T) {
			a, err := New(Config{Library: lib})
			require.NoError(subT, err)
			b, err := New(Config{Library: lib})
			require.NoError(subT, err)

			first, second := draw(a), draw(b)
			assert.Equal(subT, first, second)
			assert.Equal(subT, first[0], first[len(first)-1], "reseeding must repeat the draw")
		})
	}
}

func TestStaticShapes(t *testing.T) {
	uuidRe := regexp.MustCompile(`^'[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}'$`)
	dateRe := regexp.MustCompile(`^'\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z'$`)
	intRe := regexp.MustCompile(`^\d{1,4}$`)
	floatRe := regexp.MustCompile(`^\d{1,2}(\.\d{1,2})?$`)

	for _, lib := range []Library{Casual, Faker} {
		t.Run(string(lib), func(subT *testing.T) {
			b, err := New(Config{Library: lib})
			require.NoError(subT, err)

			for i := int64(0); i < 50; i++ {
				b.Seed(i)
				assert.Regexp(subT, uuidRe, b.UUID())
				assert.Regexp(subT, dateRe, b.Date())
				assert.Regexp(subT, intRe, b.Integer())
				assert.Regexp(subT, floatRe, b.Float())
				assert.Contains(subT, []string{"true", "false"}, b.Boolean())
				assert.Regexp(subT, `^'[a-z]+'$`, b.Word())

				r := b.Random()
				assert.True(subT, r >= 0 && r < 1)
			}
		})
	}
}

func TestDynamicExpressions(t *testing.T) {
	testCases := []struct {
		Name   string
		Lib    Library
		Expect []string
	}{
		{
			Name: "Casual",
			Lib:  Casual,
			Expect: []string{
				"casual.word",
				"casual.uuid",
				"casual.boolean",
				"casual.integer(0, 9999)",
				"Math.round(casual.double(0, 10) * 100) / 100",
				"new Date(casual.unix_time).toISOString()",
				"casual.double(0, 1.0)",
			},
		},
		{
			Name: "Faker",
			Lib:  Faker,
			Expect: []string{
				"faker.lorem.word()",
				"faker.datatype.uuid()",
				"faker.datatype.boolean()",
				"faker.datatype.number({ min: 0, max: 9999 })",
				"faker.datatype.float({ min: 0, max: 10, precision: 0.1 })",
				"faker.date.past(1, new Date(2022, 0)).toISOString()",
				"faker.datatype.float({ max: 1.0 })",
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(subT *testing.T) {
			b, err := New(Config{Library: testCase.Lib, Dynamic: true})
			require.NoError(subT, err)

			got := []string{b.Word(), b.UUID(), b.Boolean(), b.Integer(), b.Float(), b.Date(), b.RandomExpr()}
			assert.Equal(subT, testCase.Expect, got)
		})
	}
}

func TestTokens(t *testing.T) {
	b, _ := New(Config{Library: Casual, Dynamic: true})
	assert.Equal(t, Tokens{
		Import:       "import casual from 'casual';",
		Seed:         "casual.seed(0);",
		SeedFunction: "export const seedMocks = (seed: number) => casual.seed(seed);",
	}, b.Tokens())

	b, _ = New(Config{Library: Faker, Dynamic: true})
	assert.Equal(t, "import { faker } from '@faker-js/faker';", b.Tokens().Import)
	assert.Equal(t, "faker.seed(0);", b.Tokens().Seed)

	b, _ = New(Config{Library: Faker, Dynamic: true, Locale: "de"})
	assert.Equal(t, "import { fakerDE as faker } from '@faker-js/faker';", b.Tokens().Import)
}

func TestCustom(t *testing.T) {
	def := func(s string) Definition {
		var d Definition
		require.NoError(t, json.Unmarshal([]byte(s), &d))
		return d
	}

	testCases := []struct {
		Name    string
		Lib     Library
		Dynamic bool
		Def     Definition
		Expect  string
		Match   string
		Err     error
	}{
		{Name: "CasualUnknownVerbatim", Lib: Casual, Def: def(`"'abc'"`), Expect: "'abc'"},
		{Name: "CasualUnknownNull", Lib: Casual, Dynamic: true, Def: def(`"null"`), Expect: "null"},
		{Name: "FakerUnknownVerbatim", Lib: Faker, Def: def(`"myGenerator()"`), Expect: "myGenerator()"},
		{Name: "CasualDynamicProperty", Lib: Casual, Dynamic: true, Def: def(`"email"`), Expect: "casual['email']"},
		{
			Name:    "CasualDynamicCall",
			Lib:     Casual,
			Dynamic: true,
			Def:     def(`{"generator":"integer","arguments":[1,100]}`),
			Expect:  "casual['integer'](...[1,100])",
		},
		{
			Name:    "CasualDynamicScalarArgument",
			Lib:     Casual,
			Dynamic: true,
			Def:     def(`{"generator":"date","arguments":"YYYY-MM-DD"}`),
			Expect:  `casual['date'](...["YYYY-MM-DD"])`,
		},
		{
			Name:    "FakerDynamicNoArgs",
			Lib:     Faker,
			Dynamic: true,
			Def:     def(`"internet.email"`),
			Expect:  "faker['internet']['email']()",
		},
		{
			Name:    "FakerDynamicExtra",
			Lib:     Faker,
			Dynamic: true,
			Def:     def(`{"generator":"date.past","arguments":[10],"extra":{"function":"toLocaleDateString"}}`),
			Expect:  "faker['date']['past'](...[10]).toLocaleDateString()",
		},
		{
			Name:    "FakerDynamicExtraArgs",
			Lib:     Faker,
			Dynamic: true,
			Def:     def(`{"generator":"datatype.float","extra":{"function":"toFixed","arguments":2}}`),
			Expect:  "faker['datatype']['float']().toFixed(...[2])",
		},
		{Name: "CasualStaticInteger", Lib: Casual, Def: def(`{"generator":"integer","arguments":[1,1]}`), Expect: "1"},
		{Name: "CasualStaticString", Lib: Casual, Def: def(`"email"`), Match: `^'[a-z]+\.[a-z]+@[a-z]+\.[a-z]+'$`},
		{Name: "CasualStaticDateFormat", Lib: Casual, Def: def(`{"generator":"date","arguments":"YYYY-MM-DD"}`), Match: `^'\d{4}-\d{2}-\d{2}'$`},
		{Name: "CasualStaticArray", Lib: Casual, Def: def(`{"generator":"array_of_digits","arguments":3}`), Match: `^\[\d,\d,\d\]$`},
		{Name: "FakerStaticDateObject", Lib: Faker, Def: def(`"date.past"`), Match: `^"\d{4}-\d{2}-\d{2}T[\d:.]+Z"$`},
		{
			Name:  "FakerStaticExtra",
			Lib:   Faker,
			Def:   def(`{"generator":"date.past","arguments":[10],"extra":{"function":"toLocaleDateString"}}`),
			Match: `^'\d{1,2}/\d{1,2}/\d{4}'$`,
		},
		{
			Name:  "FakerStaticNumberOptions",
			Lib:   Faker,
			Def:   def(`{"generator":"datatype.number","arguments":[{"min":7,"max":7}]}`),
			Match: `^7$`,
		},
		{Name: "CasualNegativeWords", Lib: Casual, Def: def(`{"generator":"words","arguments":[-1]}`), Expect: "''"},
		{Name: "CasualNegativeSentences", Lib: Casual, Def: def(`{"generator":"sentences","arguments":-3}`), Expect: "''"},
		{Name: "CasualNegativeArray", Lib: Casual, Def: def(`{"generator":"array_of_integers","arguments":-1}`), Expect: "[]"},
		{Name: "FakerNegativeWords", Lib: Faker, Def: def(`{"generator":"lorem.slug","arguments":[-2]}`), Expect: "''"},
		{Name: "FakerNegativeString", Lib: Faker, Def: def(`{"generator":"datatype.string","arguments":-5}`), Expect: "''"},
		{Name: "FakerNegativeParagraph", Lib: Faker, Def: def(`{"generator":"lorem.paragraph","arguments":-1}`), Expect: "''"},
		{
			Name:    "FakerDynamicModuleOnly",
			Lib:     Faker,
			Dynamic: true,
			Def:     def(`"music.genre"`),
			Expect:  "faker['music']['genre']()",
		},
		{
			Name:    "FakerDynamicModuleOnlyArgs",
			Lib:     Faker,
			Dynamic: true,
			Def:     def(`{"generator":"string.alphanumeric","arguments":5}`),
			Expect:  "faker['string']['alphanumeric'](...[5])",
		},
		{Name: "FakerDynamicNotAModule", Lib: Faker, Dynamic: true, Def: def(`"myLib.value"`), Expect: "myLib.value"},
		{Name: "FakerStaticModuleOnly", Lib: Faker, Def: def(`"vehicle.vin"`), Err: ErrStaticUnsupported},
		{Name: "CasualDynamicState", Lib: Casual, Dynamic: true, Def: def(`"state"`), Expect: "casual['state']"},
		{
			Name:    "CasualDynamicCardNumber",
			Lib:     Casual,
			Dynamic: true,
			Def:     def(`{"generator":"card_number","arguments":"VISA"}`),
			Expect:  `casual['card_number'](...["VISA"])`,
		},
		{Name: "CasualStaticCardNumber", Lib: Casual, Def: def(`{"generator":"card_number","arguments":"VISA"}`), Match: `^'4\d{15}'$`},
		{Name: "CasualStaticCatchPhrase", Lib: Casual, Def: def(`"catch_phrase"`), Match: `^'\S+ [\w -]+ \w+'$`},
		{Name: "CasualStaticRandomElement", Lib: Casual, Def: def(`{"generator":"random_element","arguments":[["x"]]}`), Expect: "'x'"},
		{
			Name: "UnknownExtra",
			Lib:  Faker,
			Def:  def(`{"generator":"lorem.word","extra":{"function":"toBananas"}}`),
			Err:  ErrUnknownExtra,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(subT *testing.T) {
			b, err := New(Config{Library: testCase.Lib, Dynamic: testCase.Dynamic})
			require.NoError(subT, err)
			b.Seed(42)

			got, err := b.Custom(testCase.Def)
			if testCase.Err != nil {
				assert.ErrorIs(subT, err, testCase.Err)
				return
			}
			require.NoError(subT, err)

			if testCase.Match != "" {
				assert.Regexp(subT, testCase.Match, got)
				return
			}
			assert.Equal(subT, testCase.Expect, got)
		})
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `'plain'`, Quote("plain"))
	assert.Equal(t, `'it\'s'`, Quote("it's"))
	assert.Equal(t, `'a\\b\nc'`, Quote("a\\b\nc"))
}

func TestGenerators(t *testing.T) {
	assert.Contains(t, Generators(Casual), "email")
	assert.Contains(t, Generators(Faker), "date.past")
	assert.Empty(t, Generators("chance"))
}
