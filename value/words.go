package value

var loremWords = []string{
	"a", "ab", "accusamus", "accusantium", "ad", "adipisci", "alias", "aliquam",
	"aliquid", "amet", "animi", "aperiam", "architecto", "asperiores", "aspernatur",
	"assumenda", "at", "atque", "aut", "autem", "beatae", "blanditiis", "commodi",
	"consectetur", "consequatur", "consequuntur", "corporis", "corrupti", "culpa",
	"cum", "cumque", "cupiditate", "debitis", "delectus", "deleniti", "deserunt",
	"dicta", "dignissimos", "distinctio", "dolor", "dolore", "dolorem", "doloremque",
	"dolores", "doloribus", "dolorum", "ducimus", "ea", "eaque", "earum", "eius",
	"eligendi", "enim", "eos", "error", "esse", "est", "et", "eum", "eveniet", "ex",
	"excepturi", "exercitationem", "expedita", "explicabo", "facere", "facilis",
	"fuga", "fugiat", "fugit", "harum", "hic", "id", "illo", "illum", "impedit", "in",
	"incidunt", "inventore", "ipsa", "ipsam", "ipsum", "iste", "itaque", "iure",
	"iusto", "labore", "laboriosam", "laborum", "laudantium", "libero", "magnam",
	"magni", "maiores", "maxime", "minima", "minus", "modi", "molestiae", "molestias",
	"mollitia", "nam", "natus", "necessitatibus", "nemo", "neque", "nesciunt", "nihil",
	"nisi", "nobis", "non", "nostrum", "nulla", "numquam", "obcaecati", "odio", "odit",
	"officia", "officiis", "omnis", "optio", "pariatur", "perferendis", "perspiciatis",
	"placeat", "porro", "possimus", "praesentium", "provident", "quae", "quaerat",
	"quam", "quas", "quasi", "qui", "quia", "quibusdam", "quidem", "quis", "quisquam",
	"quo", "quod", "quos", "ratione", "recusandae", "reiciendis", "rem", "repellat",
	"repellendus", "reprehenderit", "repudiandae", "rerum", "saepe", "sapiente",
	"sed", "sequi", "similique", "sint", "sit", "soluta", "sunt", "suscipit", "tempora",
	"tempore", "temporibus", "tenetur", "totam", "ullam", "unde", "ut", "vel",
	"velit", "veniam", "veritatis", "vero", "vitae", "voluptas", "voluptate",
	"voluptatem", "voluptates", "voluptatibus", "voluptatum",
}

var (
	tlds        = []string{"com", "net", "org", "io", "info", "biz"}
	colorNames  = []string{"aqua", "black", "blue", "fuchsia", "gray", "green", "lime", "maroon", "navy", "olive", "orange", "purple", "red", "silver", "teal", "white", "yellow"}
	jobTitles   = []string{"Engineer", "Designer", "Manager", "Analyst", "Architect", "Consultant", "Developer", "Administrator", "Coordinator", "Specialist"}
	jobLevels   = []string{"Lead", "Senior", "Junior", "Principal", "Chief", "Associate"}
	products    = []string{"Chair", "Car", "Computer", "Keyboard", "Mouse", "Bike", "Ball", "Gloves", "Pants", "Shirt", "Table", "Shoes", "Hat", "Towels", "Soap", "Tuna", "Chicken", "Fish", "Cheese", "Bacon", "Pizza", "Salad", "Sausages", "Chips"}
	adjectives  = []string{"Small", "Ergonomic", "Rustic", "Intelligent", "Gorgeous", "Incredible", "Fantastic", "Practical", "Sleek", "Awesome", "Generic", "Handcrafted", "Handmade", "Licensed", "Refined", "Unbranded", "Tasty"}
	materials   = []string{"Steel", "Wooden", "Concrete", "Plastic", "Cotton", "Granite", "Rubber", "Metal", "Soft", "Fresh", "Frozen"}
	departments = []string{"Books", "Movies", "Music", "Games", "Electronics", "Computers", "Home", "Garden", "Tools", "Grocery", "Health", "Beauty", "Toys", "Kids", "Baby", "Clothing", "Shoes", "Jewelery", "Sports", "Outdoors", "Automotive", "Industrial"}
)

var (
	centuries        = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII", "XIII", "XIV", "XV", "XVI", "XVII", "XVIII", "XIX", "XX", "XXI"}
	states           = []string{"Alabama", "Alaska", "Arizona", "California", "Colorado", "Florida", "Georgia", "Illinois", "Michigan", "Nevada", "New York", "Ohio", "Oregon", "Texas", "Utah", "Washington"}
	stateAbbrs       = []string{"AL", "AK", "AZ", "CA", "CO", "FL", "GA", "IL", "MI", "NV", "NY", "OH", "OR", "TX", "UT", "WA"}
	namePrefixes     = []string{"Mr.", "Mrs.", "Ms.", "Miss", "Dr."}
	nameSuffixes     = []string{"Jr.", "Sr.", "I", "II", "III", "IV", "V", "MD", "DDS", "PhD", "DVM"}
	catchAdjectives  = []string{"Adaptive", "Balanced", "Centralized", "Cross-platform", "Distributed", "Ergonomic", "Focused", "Innovative", "Persistent", "Reactive", "Robust", "Seamless"}
	catchDescriptors = []string{"24 hour", "asymmetric", "bi-directional", "contextually-based", "dynamic", "global", "heuristic", "modular", "real-time", "scalable", "systemic", "zero defect"}
	catchNouns       = []string{"ability", "algorithm", "array", "capacity", "database", "framework", "hierarchy", "infrastructure", "interface", "matrix", "paradigm", "toolset"}
	userAgents       = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
	}
	cardTypes   = []string{"VISA", "MasterCard", "American Express", "Discover"}
	cardFormats = map[string]string{
		"VISA":             "4###############",
		"MasterCard":       "5###############",
		"American Express": "37#############",
		"Discover":         "6011############",
	}
	countryCodes   = []string{"US", "CA", "GB", "DE", "FR", "ES", "IT", "NL", "SE", "JP", "AU", "BR"}
	languageCodes  = []string{"en", "de", "fr", "es", "it", "nl", "sv", "ja", "pt", "ru", "zh"}
	localeCodes    = []string{"en_US", "en_GB", "de_DE", "fr_FR", "es_ES", "it_IT", "nl_NL", "sv_SE", "ja_JP", "pt_BR"}
	mimeTypes      = []string{"application/json", "application/pdf", "application/xml", "image/png", "image/jpeg", "image/gif", "text/html", "text/plain", "text/csv", "video/mp4"}
	fileExtensions = []string{"json", "pdf", "xml", "png", "jpg", "gif", "html", "txt", "csv", "mp4"}
	safeColorNames = []string{"black", "maroon", "green", "navy", "olive", "purple", "teal", "lime", "blue", "silver", "gray", "yellow", "fuchsia", "aqua", "white"}
)

type currency struct {
	code, symbol, name string
}

var currencies = []currency{
	{"USD", "$", "US Dollar"},
	{"EUR", "€", "Euro"},
	{"GBP", "£", "British Pound Sterling"},
	{"JPY", "¥", "Japanese Yen"},
	{"CAD", "CA$", "Canadian Dollar"},
	{"CHF", "CHF", "Swiss Franc"},
	{"AUD", "AU$", "Australian Dollar"},
}

func currencyObject(c currency) map[string]interface{} {
	return map[string]interface{}{"code": c.code, "symbol": c.symbol, "name": c.name}
}

// locale holds the localized data used by the faker backend.
type locale struct {
	code       string
	export     string
	firstNames []string
	lastNames  []string
	cities     []string
	countries  []string
	streets    []string
	companies  []string
	phone      string
}

var locales = []*locale{
	{
		code:       "en",
		firstNames: []string{"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda", "William", "Elizabeth", "David", "Barbara", "Richard", "Susan", "Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen"},
		lastNames:  []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin"},
		cities:     []string{"Springfield", "Riverside", "Franklin", "Greenville", "Bristol", "Clinton", "Fairview", "Salem", "Madison", "Georgetown", "Arlington", "Ashland"},
		countries:  []string{"United States", "Canada", "United Kingdom", "Australia", "Ireland", "New Zealand"},
		streets:    []string{"Street", "Avenue", "Road", "Lane", "Drive", "Court", "Place", "Way"},
		companies:  []string{"Inc", "LLC", "Group", "and Sons"},
		phone:      "###-###-####",
	},
	{
		code:       "de",
		export:     "fakerDE",
		firstNames: []string{"Lukas", "Anna", "Leon", "Lea", "Finn", "Hannah", "Jonas", "Mia", "Paul", "Emma", "Felix", "Sophie", "Maximilian", "Marie", "Elias", "Lena"},
		lastNames:  []string{"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner", "Becker", "Schulz", "Hoffmann", "Koch", "Richter"},
		cities:     []string{"Berlin", "Hamburg", "München", "Köln", "Frankfurt", "Stuttgart", "Düsseldorf", "Leipzig", "Dortmund", "Bremen"},
		countries:  []string{"Deutschland", "Österreich", "Schweiz", "Frankreich", "Italien", "Spanien"},
		streets:    []string{"straße", "weg", "allee", "platz", "gasse"},
		companies:  []string{"GmbH", "AG", "KG", "OHG"},
		phone:      "0###-#######",
	},
	{
		code:       "fr",
		export:     "fakerFR",
		firstNames: []string{"Louis", "Emma", "Gabriel", "Jade", "Léo", "Louise", "Raphaël", "Alice", "Arthur", "Chloé", "Hugo", "Lina", "Jules", "Rose"},
		lastNames:  []string{"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Petit", "Durand", "Leroy", "Moreau", "Simon", "Laurent"},
		cities:     []string{"Paris", "Marseille", "Lyon", "Toulouse", "Nice", "Nantes", "Strasbourg", "Montpellier", "Bordeaux", "Lille"},
		countries:  []string{"France", "Belgique", "Suisse", "Canada", "Luxembourg", "Monaco"},
		streets:    []string{"Rue", "Avenue", "Boulevard", "Place", "Impasse", "Allée"},
		companies:  []string{"SA", "SARL", "SAS", "et Fils"},
		phone:      "0# ## ## ## ##",
	},
	{
		code:       "es",
		export:     "fakerES",
		firstNames: []string{"Hugo", "Lucía", "Martín", "Sofía", "Lucas", "María", "Mateo", "Martina", "Leo", "Paula", "Daniel", "Julia", "Pablo", "Valeria"},
		lastNames:  []string{"García", "Rodríguez", "González", "Fernández", "López", "Martínez", "Sánchez", "Pérez", "Gómez", "Martín", "Jiménez", "Ruiz"},
		cities:     []string{"Madrid", "Barcelona", "Valencia", "Sevilla", "Zaragoza", "Málaga", "Murcia", "Palma", "Bilbao", "Alicante"},
		countries:  []string{"España", "México", "Argentina", "Colombia", "Chile", "Perú"},
		streets:    []string{"Calle", "Avenida", "Paseo", "Plaza", "Camino"},
		companies:  []string{"S.A.", "S.L.", "y Asociados", "Hermanos"},
		phone:      "9## ### ###",
	},
}
