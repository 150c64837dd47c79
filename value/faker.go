package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// fakerRef is the reference date for past dates, so static output does not
// drift with the wall clock.
var fakerRef = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)

type faker struct {
	*source
	dynamic bool
}

func newFaker(dynamic bool, loc *locale) *faker {
	s := newSource()
	s.loc = loc
	return &faker{source: s, dynamic: dynamic}
}

func (f *faker) Library() Library { return Faker }
func (f *faker) Dynamic() bool    { return f.dynamic }
func (f *faker) Seed(seed int64)  { f.seed(seed) }

func (f *faker) Word() string {
	if f.dynamic {
		return "faker.lorem.word()"
	}
	return quote(f.pick(loremWords))
}

func (f *faker) UUID() string {
	if f.dynamic {
		return "faker.datatype.uuid()"
	}
	return quote(f.uuid())
}

func (f *faker) Boolean() string {
	if f.dynamic {
		return "faker.datatype.boolean()"
	}
	return strconv.FormatBool(f.intn(2) == 0)
}

func (f *faker) Integer() string {
	if f.dynamic {
		return "faker.datatype.number({ min: 0, max: 9999 })"
	}
	return strconv.Itoa(f.between(0, 9999))
}

func (f *faker) Float() string {
	if f.dynamic {
		return "faker.datatype.float({ min: 0, max: 10, precision: 0.1 })"
	}
	return number(math.Round(f.float(0, 10)*10) / 10)
}

func (f *faker) Date() string {
	if f.dynamic {
		return "faker.date.past(1, new Date(2022, 0)).toISOString()"
	}
	return quote(f.pastYear(fakerRef).Format(isoLayout))
}

func (f *faker) Random() float64    { return f.float(0, 1) }
func (f *faker) RandomExpr() string { return "faker.datatype.float({ max: 1.0 })" }

func (f *faker) Custom(def Definition) (string, error) {
	_, known := fakerGenerators[def.Generator]
	module, _, nested := strings.Cut(def.Generator, ".")
	inModule := nested && fakerModules[module]

	if !f.dynamic {
		if !known && inModule {
			return "", fmt.Errorf("%w: %s", ErrStaticUnsupported, def.Generator)
		}
		return staticCustom(f.source, fakerGenerators, def)
	}

	if !known && !inModule {
		return def.Generator, nil
	}

	var b strings.Builder
	b.WriteString("faker")
	for _, part := range strings.Split(def.Generator, ".") {
		b.WriteString("['" + part + "']")
	}
	if len(def.Arguments) > 0 {
		b.WriteString("(..." + jsonArgs(def.Arguments) + ")")
	} else {
		b.WriteString("()")
	}
	b.WriteString(dynamicExtra(def.Extra))
	return b.String(), nil
}

func (f *faker) Tokens() Tokens {
	imp := "import { faker } from '@faker-js/faker';"
	if f.loc.export != "" {
		imp = fmt.Sprintf("import { %s as faker } from '@faker-js/faker';", f.loc.export)
	}
	return Tokens{
		Import:       imp,
		Seed:         "faker.seed(0);",
		SeedFunction: "export const seedMocks = (seed: number) => faker.seed(seed);",
	}
}

func fakerNumber(s *source, args []interface{}) interface{} {
	if len(args) > 0 {
		if _, ok := args[0].(map[string]interface{}); !ok {
			return s.between(0, argInt(args, 0, 99999))
		}
	}
	return s.between(int(argOpt(args, 0, "min", 0)), int(argOpt(args, 0, "max", 99999)))
}

func fakerFloat(s *source, args []interface{}) interface{} {
	min, max := argOpt(args, 0, "min", 0), argOpt(args, 0, "max", 99999)
	precision := argOpt(args, 0, "precision", 0.01)
	v := s.float(min, max)
	if precision > 0 {
		v = math.Round(v/precision) * precision
		// trim binary noise from the rounding step
		v, _ = strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals(precision), 64), 64)
	}
	return v
}

func decimals(precision float64) int {
	n := 0
	for precision < 1 && n < 10 {
		precision *= 10
		n++
	}
	return n
}

func dateSpan(s *source, args []interface{}, sign time.Duration) interface{} {
	years := argFloat(args, 0, 1)
	ref := fakerRef
	if r := argString(args, 1, ""); r != "" {
		if t, err := time.Parse(time.RFC3339, r); err == nil {
			ref = t
		}
	}
	span := time.Duration(years * float64(365*24*time.Hour))
	if span <= 0 {
		return ref.UTC()
	}
	return ref.Add(sign * time.Duration(s.rng.Int64N(int64(span)))).UTC()
}

func dateDays(s *source, args []interface{}, sign time.Duration) interface{} {
	days := argFloat(args, 0, 1)
	span := time.Duration(days * float64(24*time.Hour))
	if span <= 0 {
		return fakerRef
	}
	return fakerRef.Add(sign * time.Duration(s.rng.Int64N(int64(span)))).UTC()
}

// fakerModules are the namespaces of the faker API. Dynamic output calls
// any generator below them, even without a static implementation.
var fakerModules = map[string]bool{
	"airline": true, "animal": true, "color": true, "commerce": true,
	"company": true, "database": true, "datatype": true, "date": true,
	"finance": true, "git": true, "hacker": true, "helpers": true,
	"image": true, "internet": true, "location": true, "address": true,
	"lorem": true, "music": true, "name": true, "number": true,
	"person": true, "phone": true, "random": true, "science": true,
	"string": true, "system": true, "vehicle": true, "word": true,
}

var fakerGenerators = map[string]generator{
	"lorem.word": call(func(s *source, _ []interface{}) interface{} { return s.pick(loremWords) }),
	"lorem.words": call(func(s *source, args []interface{}) interface{} {
		return strings.Join(s.words(loremWords, argCount(args, 0, 3)), " ")
	}),
	"lorem.slug": call(func(s *source, args []interface{}) interface{} {
		return strings.Join(s.words(loremWords, argCount(args, 0, 3)), "-")
	}),
	"lorem.sentence": call(func(s *source, args []interface{}) interface{} {
		if n := argInt(args, 0, 0); n > 0 {
			return s.sentence(loremWords, n, n)
		}
		return s.sentence(loremWords, 3, 10)
	}),
	"lorem.paragraph": call(func(s *source, args []interface{}) interface{} {
		out := make([]string, argCount(args, 0, 3))
		for i := range out {
			out[i] = s.sentence(loremWords, 3, 10)
		}
		return strings.Join(out, " ")
	}),
	"datatype.number":  call(fakerNumber),
	"datatype.float":   call(fakerFloat),
	"datatype.uuid":    call(func(s *source, _ []interface{}) interface{} { return s.uuid() }),
	"datatype.boolean": call(func(s *source, _ []interface{}) interface{} { return s.intn(2) == 0 }),
	"datatype.string": call(func(s *source, args []interface{}) interface{} {
		b := make([]byte, argCount(args, 0, 10))
		for i := range b {
			b[i] = byte(33 + s.intn(94))
		}
		return string(b)
	}),
	"datatype.datetime": call(func(s *source, _ []interface{}) interface{} { return s.epochSeconds() }),
	"date.past":         call(func(s *source, args []interface{}) interface{} { return dateSpan(s, args, -1) }),
	"date.future":       call(func(s *source, args []interface{}) interface{} { return dateSpan(s, args, 1) }),
	"date.recent":       call(func(s *source, args []interface{}) interface{} { return dateDays(s, args, -1) }),
	"date.soon":         call(func(s *source, args []interface{}) interface{} { return dateDays(s, args, 1) }),
	"date.month": call(func(s *source, _ []interface{}) interface{} {
		return time.Month(1 + s.intn(12)).String()
	}),
	"date.weekday": call(func(s *source, _ []interface{}) interface{} {
		return time.Weekday(s.intn(7)).String()
	}),
	"name.firstName": call(func(s *source, _ []interface{}) interface{} { return s.pick(s.loc.firstNames) }),
	"name.lastName":  call(func(s *source, _ []interface{}) interface{} { return s.pick(s.loc.lastNames) }),
	"name.fullName": call(func(s *source, _ []interface{}) interface{} {
		return s.pick(s.loc.firstNames) + " " + s.pick(s.loc.lastNames)
	}),
	"name.jobTitle": call(func(s *source, _ []interface{}) interface{} {
		return s.pick(jobLevels) + " " + s.pick(jobTitles)
	}),
	"internet.email": call(func(s *source, _ []interface{}) interface{} {
		return s.email(s.pick(s.loc.firstNames), s.pick(s.loc.lastNames))
	}),
	"internet.userName": call(func(s *source, _ []interface{}) interface{} {
		return s.pick(s.loc.firstNames) + "." + s.pick(s.loc.lastNames) + strconv.Itoa(s.intn(100))
	}),
	"internet.url": call(func(s *source, _ []interface{}) interface{} {
		return "https://" + s.pick(loremWords) + "." + s.pick(tlds)
	}),
	"internet.domainName": call(func(s *source, _ []interface{}) interface{} {
		return s.pick(loremWords) + "." + s.pick(tlds)
	}),
	"internet.ip": call(func(s *source, _ []interface{}) interface{} {
		return fmt.Sprintf("%d.%d.%d.%d", s.intn(256), s.intn(256), s.intn(256), s.intn(256))
	}),
	"internet.ipv6": call(func(s *source, _ []interface{}) interface{} {
		parts := make([]string, 8)
		for i := range parts {
			parts[i] = fmt.Sprintf("%x", s.intn(65536))
		}
		return strings.Join(parts, ":")
	}),
	"internet.avatar": call(func(s *source, _ []interface{}) interface{} {
		return fmt.Sprintf("https://avatars.githubusercontent.com/u/%d", s.between(1, 99999999))
	}),
	"image.avatar": call(func(s *source, _ []interface{}) interface{} {
		return fmt.Sprintf("https://avatars.githubusercontent.com/u/%d", s.between(1, 99999999))
	}),
	"address.city":    call(func(s *source, _ []interface{}) interface{} { return s.pick(s.loc.cities) }),
	"address.country": call(func(s *source, _ []interface{}) interface{} { return s.pick(s.loc.countries) }),
	"address.streetAddress": call(func(s *source, _ []interface{}) interface{} {
		return fmt.Sprintf("%d %s %s", s.between(1, 9999), s.pick(s.loc.lastNames), s.pick(s.loc.streets))
	}),
	"address.zipCode": call(func(s *source, args []interface{}) interface{} {
		return s.digits(argString(args, 0, "#####"))
	}),
	"phone.number": call(func(s *source, args []interface{}) interface{} {
		return s.digits(argString(args, 0, s.loc.phone))
	}),
	"company.name": call(func(s *source, _ []interface{}) interface{} {
		return s.pick(s.loc.lastNames) + " " + s.pick(s.loc.companies)
	}),
	"commerce.department": call(func(s *source, _ []interface{}) interface{} { return s.pick(departments) }),
	"commerce.productName": call(func(s *source, _ []interface{}) interface{} {
		return s.pick(adjectives) + " " + s.pick(materials) + " " + s.pick(products)
	}),
	"commerce.price": call(func(s *source, args []interface{}) interface{} {
		v := s.between(argInt(args, 0, 1), argInt(args, 1, 1000))
		return strconv.Itoa(v) + ".00"
	}),
	"color.human": call(func(s *source, _ []interface{}) interface{} { return s.pick(colorNames) }),
	"color.rgb": call(func(s *source, _ []interface{}) interface{} {
		return fmt.Sprintf("#%02x%02x%02x", s.intn(256), s.intn(256), s.intn(256))
	}),
	"finance.amount": call(func(s *source, args []interface{}) interface{} {
		v := s.float(argFloat(args, 0, 0), argFloat(args, 1, 1000))
		return strconv.FormatFloat(v, 'f', argInt(args, 2, 2), 64)
	}),
	"helpers.arrayElement": call(func(s *source, args []interface{}) interface{} {
		if len(args) == 0 {
			return nil
		}
		list, ok := args[0].([]interface{})
		if !ok || len(list) == 0 {
			return args[0]
		}
		return list[s.intn(len(list))]
	}),
}
