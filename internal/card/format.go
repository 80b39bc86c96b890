package card

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is used when no locale is configured.
var DefaultLocale = language.English

// LocaleFormatter formats ratings using locale decimal conventions.
type LocaleFormatter struct {
	printer *message.Printer
}

// NewLocaleFormatter creates a formatter for the given locale.
func NewLocaleFormatter(tag language.Tag) *LocaleFormatter {
	return &LocaleFormatter{printer: message.NewPrinter(tag)}
}

// ParseLocale resolves a BCP 47 tag, falling back to DefaultLocale.
func ParseLocale(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return DefaultLocale
	}
	return tag
}

// FormatOneDecimal renders v with exactly one fractional digit.
func (f *LocaleFormatter) FormatOneDecimal(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.Scale(1)))
}
