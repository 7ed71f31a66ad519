package currency

import "sort"

// names maps each supported canonical currency code to its human-readable
// name. The tables in this file are read-only after package init.
var names = map[string]string{
	"AED": "United Arab Emirates Dirham",
	"ARS": "Argentine Peso",
	"AUD": "Australian Dollar",
	"BDT": "Bangladeshi Taka",
	"BRL": "Brazilian Real",
	"CAD": "Canadian Dollar",
	"CHF": "Swiss Franc",
	"CLP": "Chilean Peso",
	"CNY": "Chinese Yuan",
	"COP": "Colombian Peso",
	"CZK": "Czech Koruna",
	"DKK": "Danish Krone",
	"EGP": "Egyptian Pound",
	"EUR": "Euro",
	"GBP": "British Pound Sterling",
	"HKD": "Hong Kong Dollar",
	"HUF": "Hungarian Forint",
	"IDR": "Indonesian Rupiah",
	"ILS": "Israeli New Shekel",
	"INR": "Indian Rupee",
	"JPY": "Japanese Yen",
	"KES": "Kenyan Shilling",
	"KRW": "South Korean Won",
	"MXN": "Mexican Peso",
	"MYR": "Malaysian Ringgit",
	"NGN": "Nigerian Naira",
	"NOK": "Norwegian Krone",
	"NZD": "New Zealand Dollar",
	"PHP": "Philippine Peso",
	"PKR": "Pakistani Rupee",
	"PLN": "Polish Zloty",
	"RON": "Romanian Leu",
	"RUB": "Russian Ruble",
	"SAR": "Saudi Riyal",
	"SEK": "Swedish Krona",
	"SGD": "Singapore Dollar",
	"THB": "Thai Baht",
	"TRY": "Turkish Lira",
	"UAH": "Ukrainian Hryvnia",
	"USD": "United States Dollar",
	"VND": "Vietnamese Dong",
	"ZAR": "South African Rand",
}

// aliases maps colloquial lowercase synonyms to canonical codes.
var aliases = map[string]string{
	"buck":     "USD",
	"bucks":    "USD",
	"dollar":   "USD",
	"dollars":  "USD",
	"greenback": "USD",
	"euro":     "EUR",
	"euros":    "EUR",
	"pound":    "GBP",
	"pounds":   "GBP",
	"quid":     "GBP",
	"sterling": "GBP",
	"yen":      "JPY",
	"yuan":     "CNY",
	"renminbi": "CNY",
	"rupee":    "INR",
	"rupees":   "INR",
	"real":     "BRL",
	"ruble":    "RUB",
	"rouble":   "RUB",
	"won":      "KRW",
	"peso":     "MXN",
	"pesos":    "MXN",
	"franc":    "CHF",
	"loonie":   "CAD",
	"krona":    "SEK",
	"krone":    "NOK",
	"rand":     "ZAR",
	"lira":     "TRY",
	"baht":     "THB",
	"ringgit":  "MYR",
	"dirham":   "AED",
	"riyal":    "SAR",
	"naira":    "NGN",
	"shekel":   "ILS",
	"zloty":    "PLN",
	"forint":   "HUF",
	"hryvnia":  "UAH",
	"dong":     "VND",
	"taka":     "BDT",
}

// symbols maps codes to the symbol used when formatting monetary values.
// Codes absent here are formatted with the code itself as prefix.
var symbols = map[string]string{
	"AUD": "A$",
	"BRL": "R$",
	"CAD": "CA$",
	"CNY": "CN¥",
	"EUR": "€",
	"GBP": "£",
	"HKD": "HK$",
	"IDR": "Rp",
	"ILS": "₪",
	"INR": "₹",
	"JPY": "¥",
	"KRW": "₩",
	"MXN": "MX$",
	"NGN": "₦",
	"NZD": "NZ$",
	"PHP": "₱",
	"PLN": "zł",
	"RUB": "₽",
	"SGD": "S$",
	"THB": "฿",
	"TRY": "₺",
	"UAH": "₴",
	"USD": "$",
	"VND": "₫",
	"ZAR": "R",
}

// sortedCodes is the fixed iteration order of the table, used so that
// suggestion lists are deterministic.
var sortedCodes []string

func init() {
	sortedCodes = make([]string, 0, len(names))
	for code := range names {
		sortedCodes = append(sortedCodes, code)
	}
	sort.Strings(sortedCodes)
}

// IsSupported reports whether code is a canonical entry in the table.
func IsSupported(code string) bool {
	_, ok := names[code]
	return ok
}

// Name returns the human-readable name for a canonical code.
func Name(code string) (string, bool) {
	name, ok := names[code]
	return name, ok
}

// Symbol returns the display symbol for a canonical code, falling back to
// the code itself followed by a space (e.g. "CHF 12.00").
func Symbol(code string) string {
	if sym, ok := symbols[code]; ok {
		return sym
	}
	return code + " "
}

// Codes returns the canonical codes in table order.
func Codes() []string {
	out := make([]string, len(sortedCodes))
	copy(out, sortedCodes)
	return out
}
