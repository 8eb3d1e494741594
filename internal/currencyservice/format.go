package currencyservice

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/go-petr/pet-books/internal/domain"
)

// DefaultFractionDigits is used for every currency unless ISO minor units are enabled.
const DefaultFractionDigits = 2

// Locale holds number formatting conventions.
type Locale struct {
	Tag         language.Tag
	Decimal     string
	Group       string
	SymbolAfter bool
}

var locales = map[string]Locale{
	"en": {Decimal: ".", Group: ","},
	"ja": {Decimal: ".", Group: ","},
	"zh": {Decimal: ".", Group: ","},
	"de": {Decimal: ",", Group: ".", SymbolAfter: true},
	"es": {Decimal: ",", Group: ".", SymbolAfter: true},
	"it": {Decimal: ",", Group: ".", SymbolAfter: true},
	"nl": {Decimal: ",", Group: "."},
	"pt": {Decimal: ",", Group: "."},
	"fr": {Decimal: ",", Group: " ", SymbolAfter: true},
	"ru": {Decimal: ",", Group: " ", SymbolAfter: true},
	"sv": {Decimal: ",", Group: " ", SymbolAfter: true},
}

// LocaleFor returns the conventions of a BCP 47 tag such as "de-DE".
// Unknown or malformed tags fall back to English conventions.
func LocaleFor(tag string) Locale {
	t, err := language.Parse(tag)
	if err != nil {
		t = language.English
	}

	base, _ := t.Base()

	loc, ok := locales[base.String()]
	if !ok {
		loc = locales["en"]
	}

	loc.Tag = t

	return loc
}

// Formatter renders amounts with a currency symbol in a locale.
type Formatter struct {
	locale        Locale
	isoMinorUnits bool
}

// NewFormatter returns a Formatter for the locale tag.
//
// With isoMinorUnits the fraction digits follow ISO 4217 (JPY has none);
// otherwise every currency gets DefaultFractionDigits.
func NewFormatter(localeTag string, isoMinorUnits bool) Formatter {
	return Formatter{
		locale:        LocaleFor(localeTag),
		isoMinorUnits: isoMinorUnits,
	}
}

// Format renders amount with the currency's symbol, for example "$1,234.50".
func Format(amount decimal.Decimal, cur domain.CurrencyRate) string {
	return NewFormatter("en", false).Format(amount, cur)
}

// FractionDigits returns the number of fraction digits used for code.
func (f Formatter) FractionDigits(code string) int32 {
	if !f.isoMinorUnits {
		return DefaultFractionDigits
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return DefaultFractionDigits
	}

	scale, _ := currency.Standard.Rounding(unit)

	return int32(scale)
}

// Format renders amount with the currency's symbol in the formatter's locale.
func (f Formatter) Format(amount decimal.Decimal, cur domain.CurrencyRate) string {
	digits := f.FractionDigits(cur.Code)
	s := amount.StringFixed(digits)

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var sb strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteString(f.locale.Group)
		}
		sb.WriteRune(c)
	}

	number := sb.String()
	if fracPart != "" {
		number += f.locale.Decimal + fracPart
	}

	symbol := cur.Symbol
	if symbol == "" {
		symbol = cur.Code
	}

	var out string
	if f.locale.SymbolAfter {
		out = number + " " + symbol
	} else {
		out = symbol + number
	}

	if negative {
		out = "-" + out
	}

	return out
}
