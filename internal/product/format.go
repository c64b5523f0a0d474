package product

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultLocale         = "en-US"
	DefaultCurrencySymbol = "$"
)

// PriceFormatter renders prices with a currency glyph and locale digit grouping,
// e.g. "$1,299.99".
type PriceFormatter struct {
	symbol  string
	group   string
	decimal string
}

// NewPriceFormatter builds a formatter for a BCP 47 locale tag.
// An unparseable tag falls back to DefaultLocale.
func NewPriceFormatter(locale, symbol string) PriceFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	group, dec := separators(message.NewPrinter(tag))
	return PriceFormatter{
		symbol:  symbol,
		group:   group,
		decimal: dec,
	}
}

// separators asks the locale printer how it writes a known number and keeps
// the grouping and decimal marks it used.
func separators(p *message.Printer) (group, dec string) {
	sample := p.Sprint(number.Decimal(1234567.5, number.MinFractionDigits(1)))

	var marks []string
	for _, r := range sample {
		if !unicode.IsDigit(r) {
			marks = append(marks, string(r))
		}
	}
	switch len(marks) {
	case 0:
		return "", "."
	case 1:
		return "", marks[0]
	default:
		return marks[0], marks[len(marks)-1]
	}
}

// Format renders a price exactly as stored. Whole amounts print without a
// fraction ("$25"); otherwise at least two fraction digits are shown.
func (f PriceFormatter) Format(price decimal.Decimal) string {
	if f.decimal == "" {
		f = NewPriceFormatter(DefaultLocale, DefaultCurrencySymbol)
	}

	sign := ""
	if price.Sign() < 0 {
		sign = "-"
		price = price.Neg()
	}

	whole, frac, _ := strings.Cut(price.String(), ".")
	out := sign + f.symbol + groupDigits(whole, f.group)
	if frac == "" {
		return out
	}
	for len(frac) < 2 {
		frac += "0"
	}
	return out + f.decimal + frac
}

func groupDigits(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
