package display

import (
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatCurrency форматирует сумму как денежное значение для локали
// без дробной части: например 15990 для es-CL/CLP дает "$15.990".
func FormatCurrency(amount float64, locale, currencyCode string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	p := message.NewPrinter(tag)

	symbol := currencyCode
	if unit, err := currency.ParseISO(currencyCode); err == nil {
		symbol = p.Sprint(currency.NarrowSymbol(unit))
	}

	rounded := int64(math.Round(amount))
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}

	return sign + symbol + p.Sprint(number.Decimal(rounded))
}

// PriceFormatter форматирует цены в настроенной локали и валюте
type PriceFormatter struct {
	Locale   string
	Currency string
}

// Format форматирует сумму
func (f PriceFormatter) Format(amount float64) string {
	return FormatCurrency(amount, f.Locale, f.Currency)
}
