// pkg/mapping/currency.go
package mapping

// CurrencyCodes is the closed 23-element ISO 4217 code set the cleaned
// table admits: the currencies observed in the dataset plus XXX, the
// ISO "no currency" code used as the enforced fallback.
var CurrencyCodes = []string{
	"USD", "CAD", "MXN", "CUP", "ARS", "BRL",
	"GBP", "FRF", "DEM", "ITL", "ESP", "CHF",
	"BEF", "NLG", "ATS", "SEK", "DKK", "NOK",
	"HUF", "CSK", "JPY", "CNY",
	"XXX",
}

var currencyCodeSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(CurrencyCodes))
	for _, c := range CurrencyCodes {
		set[c] = struct{}{}
	}
	return set
}()

// IsCurrencyCode reports membership in the closed code set.
func IsCurrencyCode(s string) bool {
	_, ok := currencyCodeSet[s]
	return ok
}

// DefaultCurrencyTable maps raw currency symbols and spelled-out names
// to ISO codes. Many-to-one is expected; codes already in the closed
// set are identity-mapped. Keys keep their punctuation — "$" is a
// legitimate key.
func DefaultCurrencyTable() *Table {
	entries := []Entry{
		{Raw: "$", Standard: "USD"},
		{Raw: "DOLLARS", Standard: "USD"},
		{Raw: "CENTS", Standard: "USD"},
		{Raw: "¢", Standard: "USD"},

		{Raw: "£", Standard: "GBP"},
		{Raw: "POUNDS", Standard: "GBP"},
		{Raw: "SHILLINGS", Standard: "GBP"},
		{Raw: "PENCE", Standard: "GBP"},

		{Raw: "FR", Standard: "FRF"},
		{Raw: "FF", Standard: "FRF"},
		{Raw: "FRANCS", Standard: "FRF"},

		{Raw: "DM", Standard: "DEM"},
		{Raw: "MARK", Standard: "DEM"},
		{Raw: "MARKS", Standard: "DEM"},
		{Raw: "PFENNIG", Standard: "DEM"},

		{Raw: "LIRE", Standard: "ITL"},
		{Raw: "LIRA", Standard: "ITL"},

		{Raw: "PTS", Standard: "ESP"},
		{Raw: "PESETAS", Standard: "ESP"},

		{Raw: "SFR", Standard: "CHF"},
		{Raw: "SWISS FRANCS", Standard: "CHF"},

		{Raw: "BFR", Standard: "BEF"},
		{Raw: "FL", Standard: "NLG"},
		{Raw: "GULDEN", Standard: "NLG"},
		{Raw: "SCH", Standard: "ATS"},

		{Raw: "KR", Standard: "SEK"},
		{Raw: "DKR", Standard: "DKK"},
		{Raw: "NKR", Standard: "NOK"},

		{Raw: "¥", Standard: "JPY"},
		{Raw: "YEN", Standard: "JPY"},
		{Raw: "YUAN", Standard: "CNY"},

		{Raw: "PESOS", Standard: "MXN"},
	}

	// Valid codes pass through unchanged.
	for _, code := range CurrencyCodes {
		entries = append(entries, Entry{Raw: code, Standard: code})
	}

	return MustTable(entries)
}
