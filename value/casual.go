package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

type casual struct {
	*source
	dynamic bool
}

func newCasual(dynamic bool) *casual {
	return &casual{source: newSource(), dynamic: dynamic}
}

func (c *casual) Library() Library { return Casual }
func (c *casual) Dynamic() bool    { return c.dynamic }
func (c *casual) Seed(seed int64)  { c.seed(seed) }

func (c *casual) Word() string {
	if c.dynamic {
		return "casual.word"
	}
	return quote(c.pick(loremWords))
}

func (c *casual) UUID() string {
	if c.dynamic {
		return "casual.uuid"
	}
	return quote(c.uuid())
}

func (c *casual) Boolean() string {
	if c.dynamic {
		return "casual.boolean"
	}
	return strconv.FormatBool(c.intn(2) == 0)
}

func (c *casual) Integer() string {
	if c.dynamic {
		return "casual.integer(0, 9999)"
	}
	return strconv.Itoa(c.between(0, 9999))
}

func (c *casual) Float() string {
	if c.dynamic {
		return "Math.round(casual.double(0, 10) * 100) / 100"
	}
	return number(math.Round(c.float(0, 10)*100) / 100)
}

func (c *casual) Date() string {
	if c.dynamic {
		return "new Date(casual.unix_time).toISOString()"
	}
	return quote(c.epochMillis().Format(isoLayout))
}

func (c *casual) Random() float64    { return c.float(0, 1) }
func (c *casual) RandomExpr() string { return "casual.double(0, 1.0)" }

func (c *casual) Custom(def Definition) (string, error) {
	if !c.dynamic {
		return staticCustom(c.source, casualGenerators, def)
	}

	g, ok := casualGenerators[def.Generator]
	if !ok {
		return def.Generator, nil
	}
	expr := fmt.Sprintf("casual['%s']", def.Generator)
	if g.call {
		if len(def.Arguments) > 0 {
			expr += "(..." + jsonArgs(def.Arguments) + ")"
		} else {
			expr += "()"
		}
	}
	return expr + dynamicExtra(def.Extra), nil
}

func (c *casual) Tokens() Tokens {
	return Tokens{
		Import:       "import casual from 'casual';",
		Seed:         "casual.seed(0);",
		SeedFunction: "export const seedMocks = (seed: number) => casual.seed(seed);",
	}
}

// momentLayout converts the moment.js date tokens casual accepts into a
// Go time layout.
var momentLayout = strings.NewReplacer(
	"YYYY", "2006",
	"YY", "06",
	"MMMM", "January",
	"MMM", "Jan",
	"MM", "01",
	"DD", "02",
	"HH", "15",
	"hh", "03",
	"mm", "04",
	"ss", "05",
	"A", "PM",
)

func (s *source) email(first, last string) string {
	return strings.ToLower(first+"."+last) + "@" + s.pick(loremWords) + "." + s.pick(tlds)
}

var casualGenerators = map[string]generator{
	"word":   prop(func(s *source) interface{} { return s.pick(loremWords) }),
	"string": prop(func(s *source) interface{} { return strings.Join(s.words(loremWords, s.between(5, 10)), " ") }),
	"words": call(func(s *source, args []interface{}) interface{} {
		return strings.Join(s.words(loremWords, argCount(args, 0, 7)), " ")
	}),
	"array_of_words": call(func(s *source, args []interface{}) interface{} {
		return s.words(loremWords, argCount(args, 0, 7))
	}),
	"title":    prop(func(s *source) interface{} { return strings.TrimSuffix(s.sentence(loremWords, 2, 4), ".") }),
	"sentence": prop(func(s *source) interface{} { return s.sentence(loremWords, 5, 12) }),
	"sentences": call(func(s *source, args []interface{}) interface{} {
		n := argCount(args, 0, 3)
		out := make([]string, n)
		for i := range out {
			out[i] = s.sentence(loremWords, 5, 12)
		}
		return strings.Join(out, " ")
	}),
	"text": prop(func(s *source) interface{} {
		out := make([]string, s.between(3, 6))
		for i := range out {
			out[i] = s.sentence(loremWords, 5, 12)
		}
		return strings.Join(out, " ")
	}),
	"letter": prop(func(s *source) interface{} { return string(rune('a' + s.intn(26))) }),
	"digit":  prop(func(s *source) interface{} { return s.intn(10) }),
	"integer": call(func(s *source, args []interface{}) interface{} {
		return s.between(argInt(args, 0, -1000), argInt(args, 1, 1000))
	}),
	"double": call(func(s *source, args []interface{}) interface{} {
		return s.float(argFloat(args, 0, -1000), argFloat(args, 1, 1000))
	}),
	"array_of_digits": call(func(s *source, args []interface{}) interface{} {
		out := make([]int, argCount(args, 0, 7))
		for i := range out {
			out[i] = s.intn(10)
		}
		return out
	}),
	"array_of_integers": call(func(s *source, args []interface{}) interface{} {
		out := make([]int, argCount(args, 0, 7))
		for i := range out {
			out[i] = s.between(-1000, 1000)
		}
		return out
	}),
	"boolean":   prop(func(s *source) interface{} { return s.intn(2) == 0 }),
	"coin_flip": prop(func(s *source) interface{} { return s.intn(2) == 0 }),
	"random":    prop(func(s *source) interface{} { return s.float(0, 1) }),
	"uuid":      prop(func(s *source) interface{} { return s.uuid() }),
	"unix_time": prop(func(s *source) interface{} { return float64(s.rng.Int64N(1462361249)) }),
	"date": call(func(s *source, args []interface{}) interface{} {
		return s.epochSeconds().Format(momentLayout.Replace(argString(args, 0, "YYYY-MM-DD")))
	}),
	"time": call(func(s *source, args []interface{}) interface{} {
		return s.epochSeconds().Format(momentLayout.Replace(argString(args, 0, "HH:mm:ss")))
	}),
	"year":  prop(func(s *source) interface{} { return s.epochSeconds().Year() }),
	"month_name":   prop(func(s *source) interface{} { return s.epochSeconds().Month().String() }),
	"month_number": prop(func(s *source) interface{} { return s.between(1, 12) }),
	"day_of_month": prop(func(s *source) interface{} {
		return s.between(1, 28)
	}),
	"first_name": prop(func(s *source) interface{} { return s.pick(locales[0].firstNames) }),
	"last_name":  prop(func(s *source) interface{} { return s.pick(locales[0].lastNames) }),
	"full_name": prop(func(s *source) interface{} {
		return s.pick(locales[0].firstNames) + " " + s.pick(locales[0].lastNames)
	}),
	"username": prop(func(s *source) interface{} {
		return strings.ToLower(s.pick(locales[0].firstNames)) + "_" + strconv.Itoa(s.intn(100))
	}),
	"password": prop(func(s *source) interface{} {
		return s.pick(loremWords) + strconv.Itoa(s.between(100, 999)) + s.pick(loremWords)
	}),
	"email": prop(func(s *source) interface{} {
		return s.email(s.pick(locales[0].firstNames), s.pick(locales[0].lastNames))
	}),
	"domain": prop(func(s *source) interface{} { return s.pick(loremWords) + "." + s.pick(tlds) }),
	"url": prop(func(s *source) interface{} {
		return "http://www." + s.pick(loremWords) + "." + s.pick(tlds) + "/"
	}),
	"ip": prop(func(s *source) interface{} {
		return fmt.Sprintf("%d.%d.%d.%d", s.between(1, 254), s.intn(256), s.intn(256), s.between(1, 254))
	}),
	"city":    prop(func(s *source) interface{} { return s.pick(locales[0].cities) }),
	"country": prop(func(s *source) interface{} { return s.pick(locales[0].countries) }),
	"street": prop(func(s *source) interface{} {
		return s.pick(locales[0].lastNames) + " " + s.pick(locales[0].streets)
	}),
	"address": prop(func(s *source) interface{} { return s.streetAddress() }),
	"zip": call(func(s *source, args []interface{}) interface{} {
		n := min(argCount(args, 0, 5), 18)
		return fmt.Sprintf("%0*d", n, s.intn(int(math.Pow10(n))))
	}),
	"phone": prop(func(s *source) interface{} { return s.digits(locales[0].phone) }),
	"company_name": prop(func(s *source) interface{} {
		return s.pick(locales[0].lastNames) + " " + s.pick(locales[0].companies)
	}),
	"color_name": prop(func(s *source) interface{} { return s.pick(colorNames) }),
	"rgb_hex": prop(func(s *source) interface{} {
		return fmt.Sprintf("#%02x%02x%02x", s.intn(256), s.intn(256), s.intn(256))
	}),
	"rgb_array": prop(func(s *source) interface{} {
		return []int{s.intn(256), s.intn(256), s.intn(256)}
	}),
	"timezone": prop(func(s *source) interface{} {
		return s.pick([]string{"UTC", "Europe/London", "Europe/Berlin", "America/New_York", "America/Los_Angeles", "Asia/Tokyo"})
	}),
	"moment":       prop(func(s *source) interface{} { return s.epochSeconds() }),
	"century":      prop(func(s *source) interface{} { return s.pick(centuries) }),
	"am_pm":        prop(func(s *source) interface{} { return s.pick([]string{"am", "pm"}) }),
	"day_of_year":  prop(func(s *source) interface{} { return s.between(1, 365) }),
	"day_of_week":  prop(func(s *source) interface{} { return s.between(1, 7) }),
	"address1":     prop(func(s *source) interface{} { return s.streetAddress() }),
	"address2":     prop(func(s *source) interface{} { return s.digits(s.pick([]string{"Apt. ###", "Suite ###"})) }),
	"state":        prop(func(s *source) interface{} { return s.pick(states) }),
	"state_abbr":   prop(func(s *source) interface{} { return s.pick(stateAbbrs) }),
	"latitude":     prop(func(s *source) interface{} { return strconv.FormatFloat(s.float(-90, 90), 'f', 4, 64) }),
	"longitude":    prop(func(s *source) interface{} { return strconv.FormatFloat(s.float(-180, 180), 'f', 4, 64) }),
	"building_number": prop(func(s *source) interface{} {
		return strconv.Itoa(s.between(1, 9999))
	}),
	"description": prop(func(s *source) interface{} {
		out := make([]string, s.between(1, 3))
		for i := range out {
			out[i] = s.sentence(loremWords, 5, 12)
		}
		return strings.Join(out, " ")
	}),
	"short_description": prop(func(s *source) interface{} { return s.sentence(loremWords, 5, 12) }),
	"user_agent":        prop(func(s *source) interface{} { return s.pick(userAgents) }),
	"name": prop(func(s *source) interface{} {
		return s.pick(locales[0].firstNames) + " " + s.pick(locales[0].lastNames)
	}),
	"name_prefix":    prop(func(s *source) interface{} { return s.pick(namePrefixes) }),
	"name_suffix":    prop(func(s *source) interface{} { return s.pick(nameSuffixes) }),
	"company_suffix": prop(func(s *source) interface{} { return s.pick(locales[0].companies) }),
	"catch_phrase": prop(func(s *source) interface{} {
		return s.pick(catchAdjectives) + " " + s.pick(catchDescriptors) + " " + s.pick(catchNouns)
	}),
	"array_of_doubles": call(func(s *source, args []interface{}) interface{} {
		out := make([]float64, argCount(args, 0, 7))
		for i := range out {
			out[i] = s.float(-1000, 1000)
		}
		return out
	}),
	"card_type": prop(func(s *source) interface{} { return s.pick(cardTypes) }),
	"card_number": call(func(s *source, args []interface{}) interface{} {
		return s.cardNumber(argString(args, 0, ""))
	}),
	"card_exp": prop(func(s *source) interface{} {
		return fmt.Sprintf("%02d/%02d", s.between(1, 12), s.between(10, 25))
	}),
	"card_data": prop(func(s *source) interface{} {
		typ := s.pick(cardTypes)
		return map[string]interface{}{
			"type":        typ,
			"number":      s.cardNumber(typ),
			"exp":         fmt.Sprintf("%02d/%02d", s.between(1, 12), s.between(10, 25)),
			"holder_name": s.pick(locales[0].firstNames) + " " + s.pick(locales[0].lastNames),
		}
	}),
	"country_code":    prop(func(s *source) interface{} { return s.pick(countryCodes) }),
	"language_code":   prop(func(s *source) interface{} { return s.pick(languageCodes) }),
	"locale":          prop(func(s *source) interface{} { return s.pick(localeCodes) }),
	"currency":        prop(func(s *source) interface{} { return currencyObject(currencies[s.intn(len(currencies))]) }),
	"currency_code":   prop(func(s *source) interface{} { return currencies[s.intn(len(currencies))].code }),
	"currency_symbol": prop(func(s *source) interface{} { return currencies[s.intn(len(currencies))].symbol }),
	"currency_name":   prop(func(s *source) interface{} { return currencies[s.intn(len(currencies))].name }),
	"mime_type":       prop(func(s *source) interface{} { return s.pick(mimeTypes) }),
	"file_extension":  prop(func(s *source) interface{} { return s.pick(fileExtensions) }),
	"safe_color_name": prop(func(s *source) interface{} { return s.pick(safeColorNames) }),
	"random_element": call(func(s *source, args []interface{}) interface{} {
		if list, ok := argList(args, 0); ok && len(list) > 0 {
			return list[s.intn(len(list))]
		}
		return nil
	}),
	"random_key": call(func(s *source, args []interface{}) interface{} {
		keys := argKeys(args, 0)
		if len(keys) == 0 {
			return nil
		}
		return keys[s.intn(len(keys))]
	}),
	"random_value": call(func(s *source, args []interface{}) interface{} {
		keys := argKeys(args, 0)
		if len(keys) == 0 {
			return nil
		}
		return args[0].(map[string]interface{})[keys[s.intn(len(keys))]]
	}),
	"numerify": call(func(s *source, args []interface{}) interface{} {
		return s.digits(argString(args, 0, ""))
	}),
	"letterify": call(func(s *source, args []interface{}) interface{} {
		return s.letters(argString(args, 0, ""))
	}),
	"populate": call(func(s *source, args []interface{}) interface{} {
		return s.letters(s.digits(argString(args, 0, "")))
	}),
	"populate_one_of": call(func(s *source, args []interface{}) interface{} {
		list, ok := argList(args, 0)
		if !ok || len(list) == 0 {
			return ""
		}
		format, _ := list[s.intn(len(list))].(string)
		return s.letters(s.digits(format))
	}),
}

func (s *source) streetAddress() string {
	return fmt.Sprintf("%d %s %s", s.between(1, 9999), s.pick(locales[0].lastNames), s.pick(locales[0].streets))
}

// letters replaces every X in format with a random upper case letter.
func (s *source) letters(format string) string {
	var b strings.Builder
	for _, r := range format {
		if r == 'X' {
			b.WriteByte(byte('A' + s.intn(26)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// cardNumber draws a number with the prefix and length of vendor.
// Unknown vendors pick one at random.
func (s *source) cardNumber(vendor string) string {
	f, ok := cardFormats[vendor]
	if !ok {
		f = cardFormats[s.pick(cardTypes)]
	}
	return s.digits(f)
}

// epochSeconds draws a time up to mid 2016.
func (s *source) epochSeconds() time.Time {
	return time.Unix(s.rng.Int64N(1462361249), 0).UTC()
}

// digits replaces every # in format with a random digit.
func (s *source) digits(format string) string {
	var b strings.Builder
	for _, r := range format {
		if r == '#' {
			b.WriteByte(byte('0' + s.intn(10)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
