package noc

// committee is a built-in entry: its code, flag geo code and the names it is
// listed under in medal tables
type committee struct {
	code  string
	geo   string
	names []string
}

// committees covers the delegations that regularly appear in medal tables. The geo
// column doubles as the code-to-geo override table, since committee codes rarely
// match the two-letter country codes (GER/de, SUI/ch, NED/nl).
var committees = []committee{
	{"AND", "ad", []string{"Andorra"}},
	{"ARG", "ar", []string{"Argentina"}},
	{"ARM", "am", []string{"Armenia"}},
	{"AUS", "au", []string{"Australia"}},
	{"AUT", "at", []string{"Austria"}},
	{"AZE", "az", []string{"Azerbaijan"}},
	{"BAH", "bs", []string{"Bahamas", "The Bahamas"}},
	{"BEL", "be", []string{"Belgium"}},
	{"BIH", "ba", []string{"Bosnia and Herzegovina"}},
	{"BLR", "by", []string{"Belarus"}},
	{"BRA", "br", []string{"Brazil"}},
	{"BUL", "bg", []string{"Bulgaria"}},
	{"CAN", "ca", []string{"Canada"}},
	{"CHI", "cl", []string{"Chile"}},
	{"CHN", "cn", []string{"China", "People's Republic of China"}},
	{"CIV", "ci", []string{"Ivory Coast", "Côte d'Ivoire"}},
	{"COL", "co", []string{"Colombia"}},
	{"CRO", "hr", []string{"Croatia"}},
	{"CUB", "cu", []string{"Cuba"}},
	{"CYP", "cy", []string{"Cyprus"}},
	{"CZE", "cz", []string{"Czech Republic", "Czechia"}},
	{"DEN", "dk", []string{"Denmark"}},
	{"DOM", "do", []string{"Dominican Republic"}},
	{"EGY", "eg", []string{"Egypt"}},
	{"ESP", "es", []string{"Spain"}},
	{"EST", "ee", []string{"Estonia"}},
	{"ETH", "et", []string{"Ethiopia"}},
	{"FIJ", "fj", []string{"Fiji"}},
	{"FIN", "fi", []string{"Finland"}},
	{"FRA", "fr", []string{"France"}},
	{"GBR", "gb", []string{"Great Britain", "United Kingdom"}},
	{"GEO", "ge", []string{"Georgia"}},
	{"GER", "de", []string{"Germany"}},
	{"GRE", "gr", []string{"Greece"}},
	{"HKG", "hk", []string{"Hong Kong", "Hong Kong, China"}},
	{"HUN", "hu", []string{"Hungary"}},
	{"INA", "id", []string{"Indonesia"}},
	{"IND", "in", []string{"India"}},
	{"IRI", "ir", []string{"Iran", "Islamic Republic of Iran"}},
	{"IRL", "ie", []string{"Ireland"}},
	{"ISL", "is", []string{"Iceland"}},
	{"ISR", "il", []string{"Israel"}},
	{"ITA", "it", []string{"Italy"}},
	{"JAM", "jm", []string{"Jamaica"}},
	{"JPN", "jp", []string{"Japan"}},
	{"KAZ", "kz", []string{"Kazakhstan"}},
	{"KEN", "ke", []string{"Kenya"}},
	{"KOR", "kr", []string{"South Korea", "Korea", "Republic of Korea"}},
	{"KOS", "xk", []string{"Kosovo"}},
	{"LAT", "lv", []string{"Latvia"}},
	{"LIE", "li", []string{"Liechtenstein"}},
	{"LTU", "lt", []string{"Lithuania"}},
	{"LUX", "lu", []string{"Luxembourg"}},
	{"MAR", "ma", []string{"Morocco"}},
	{"MDA", "md", []string{"Moldova"}},
	{"MEX", "mx", []string{"Mexico"}},
	{"MGL", "mn", []string{"Mongolia"}},
	{"MKD", "mk", []string{"North Macedonia"}},
	{"MLT", "mt", []string{"Malta"}},
	{"MNE", "me", []string{"Montenegro"}},
	{"MON", "mc", []string{"Monaco"}},
	{"NED", "nl", []string{"Netherlands"}},
	{"NGR", "ng", []string{"Nigeria"}},
	{"NOR", "no", []string{"Norway"}},
	{"NZL", "nz", []string{"New Zealand"}},
	{"PHI", "ph", []string{"Philippines"}},
	{"POL", "pl", []string{"Poland"}},
	{"POR", "pt", []string{"Portugal"}},
	{"PRK", "kp", []string{"North Korea"}},
	{"PUR", "pr", []string{"Puerto Rico"}},
	{"QAT", "qa", []string{"Qatar"}},
	{"ROU", "ro", []string{"Romania"}},
	{"RSA", "za", []string{"South Africa"}},
	{"SLO", "si", []string{"Slovenia"}},
	{"SMR", "sm", []string{"San Marino"}},
	{"SRB", "rs", []string{"Serbia"}},
	{"SUI", "ch", []string{"Switzerland"}},
	{"SVK", "sk", []string{"Slovakia"}},
	{"SWE", "se", []string{"Sweden"}},
	{"THA", "th", []string{"Thailand"}},
	{"TPE", "tw", []string{"Chinese Taipei"}},
	{"TTO", "tt", []string{"Trinidad and Tobago"}},
	{"TUR", "tr", []string{"Turkey", "Türkiye"}},
	{"UKR", "ua", []string{"Ukraine"}},
	{"USA", "us", []string{"United States", "United States of America"}},
	{"UZB", "uz", []string{"Uzbekistan"}},
}

// neutralTeams are delegations that do not compete under a national flag. An empty
// value means the team is known to have no flag.
var neutralTeams = map[string]string{
	"AIN": "", // Individual Neutral Athletes
	"EOR": "", // Refugee Olympic Team
	"IOA": "", // Independent Olympic Athletes
	"IOP": "",
	"MIX": "",
	"OAR": "",
	"ROC": "",
	"ROT": "",
}

var neutralNames = map[string]string{
	"Individual Neutral Athletes":      "AIN",
	"Refugee Olympic Team":             "EOR",
	"IOC Refugee Olympic Team":         "EOR",
	"Independent Olympic Athletes":     "IOA",
	"Olympic Athletes from Russia":     "OAR",
	"ROC":                              "ROC",
	"Russian Olympic Committee":        "ROC",
	"Independent Olympic Participants": "IOP",
	"Mixed-NOCs":                       "MIX",
	"Mixed team":                       "MIX",
}

// nameGeo resolves spellings that have a flag but no committee entry above, or
// that show up in place of a code when a row's code could not be inferred
var nameGeo = map[string]string{
	"russia":                           "ru",
	"roc":                              "ru",
	"soviet union":                     "su",
	"england":                          "gb-eng",
	"scotland":                         "gb-sct",
	"wales":                            "gb-wls",
	"macau":                            "mo",
	"palestine":                        "ps",
	"faroe islands":                    "fo",
	"taiwan":                           "tw",
	"korea, south":                     "kr",
	"usa":                              "us",
	"great britain & northern ireland": "gb",
}
