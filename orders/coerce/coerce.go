// Package coerce converts raw report rows into typed records.
package coerce

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
	"unicode"

	"github.com/keep94/appcommon/date_util"
	"github.com/keep94/orderreports/orders"
)

// DateFormat is the layout of dates in the reports.
const DateFormat = "1/2/06"

var (
	BadPrice    = errors.New("coerce: Bad price.")
	BadQuantity = errors.New("coerce: Bad quantity.")
)

var (
	kNonWordPattern  = regexp.MustCompile(`\W`)
	kNonPricePattern = regexp.MustCompile(`[^\d.]`)
	kQuantityPattern = regexp.MustCompile(`^\s*[+-]?\d+`)
)

// Pacific is the time zone of every date in the reports regardless of
// where the buyer lives.
var Pacific = mustLoadLocation("America/Los_Angeles")

type kind int

const (
	kDate kind = iota + 1
	kPrice
	kQuantity
)

var kConversions = map[orders.ReportType]map[string]kind{
	orders.Items: {
		orders.ItemSubtotal:         kPrice,
		orders.ItemSubtotalTax:      kPrice,
		orders.ItemTotal:            kPrice,
		orders.ListPricePerUnit:     kPrice,
		orders.OrderDate:            kDate,
		orders.PurchasePricePerUnit: kPrice,
		orders.Quantity:             kQuantity,
		orders.ReleaseDate:          kDate,
		orders.ShipmentDate:         kDate,
	},
	orders.Refunds: {
		orders.OrderDate:       kDate,
		orders.Quantity:        kQuantity,
		orders.RefundAmount:    kPrice,
		orders.RefundDate:      kDate,
		orders.RefundTaxAmount: kPrice,
	},
	orders.Shipments: {
		orders.OrderDate:           kDate,
		orders.ShipmentDate:        kDate,
		orders.Subtotal:            kPrice,
		orders.ShippingCharge:      kPrice,
		orders.TaxBeforePromotions: kPrice,
		orders.TotalPromotions:     kPrice,
		orders.TaxCharged:          kPrice,
		orders.TotalCharged:        kPrice,
	},
}

// Coerce converts raw into a Record for the given report type. Empty
// values are left out of the returned record. Columns without a registered
// conversion are copied as is. If a value cannot be converted, Coerce
// returns a *orders.FieldError.
func Coerce(reportType orders.ReportType, raw orders.RawRecord) (
	orders.Record, error) {
	conversions, ok := kConversions[reportType]
	if !ok {
		return nil, orders.UnknownReportType
	}
	result := make(orders.Record, len(raw))
	for key, value := range raw {
		if value == "" {
			continue
		}
		converted, err := convert(conversions[key], value)
		if err != nil {
			return nil, &orders.FieldError{Field: key, Value: value, Err: err}
		}
		result[key] = converted
	}
	return result, nil
}

func convert(k kind, value string) (interface{}, error) {
	switch k {
	case kDate:
		return ParseDate(value)
	case kPrice:
		return ParsePrice(value)
	case kQuantity:
		return ParseQuantity(value)
	default:
		return value, nil
	}
}

// ParseDate parses a month/day/2-digit-year date as midnight Pacific time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, strings.TrimSpace(s), Pacific)
}

// ParseDateRange builds a date range from yyyyMMdd start and end dates
// taken as midnight Pacific time. If both are empty, ParseDateRange returns
// nil meaning the default range. A missing start is orders.DefaultDays
// before the end; a missing end is the current time.
func ParseDateRange(clock date_util.Clock, sd, ed string) (
	*orders.DateRange, error) {
	sd = strings.TrimSpace(sd)
	ed = strings.TrimSpace(ed)
	if sd == "" && ed == "" {
		return nil, nil
	}
	result := orders.DefaultDateRange(clock)
	if ed != "" {
		end, err := time.ParseInLocation(date_util.YMDFormat, ed, Pacific)
		if err != nil {
			return nil, err
		}
		result.End = end
		result.Start = end.AddDate(0, 0, -orders.DefaultDays)
	}
	if sd != "" {
		start, err := time.ParseInLocation(date_util.YMDFormat, sd, Pacific)
		if err != nil {
			return nil, err
		}
		result.Start = start
	}
	return &result, nil
}

// ParsePrice parses a currency amount such as "$1,234.56". Everything
// other than digits and the decimal point is ignored, so the sign of
// negative amounts is lost.
func ParsePrice(s string) (float64, error) {
	digits := kNonPricePattern.ReplaceAllString(s, "")
	if digits == "" {
		return 0, BadPrice
	}
	f, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, BadPrice
	}
	return f, nil
}

// ParseQuantity parses the leading base 10 integer of s ignoring anything
// that follows it.
func ParseQuantity(s string) (int, error) {
	digits := kQuantityPattern.FindString(s)
	if digits == "" {
		return 0, BadQuantity
	}
	return strconv.Atoi(strings.TrimSpace(digits))
}

// NormalizeHeader turns a report column header into a camel case key.
// Characters other than letters, digits and underscore separate words.
// "Carrier Name & Tracking Number" becomes "carrierNameTrackingNumber";
// "ASIN/ISBN" becomes "asinIsbn".
func NormalizeHeader(header string) string {
	header = kNonWordPattern.ReplaceAllString(header, " ")
	var result strings.Builder
	for i, word := range splitWords(header) {
		word = strings.ToLower(word)
		if i > 0 {
			runes := []rune(word)
			runes[0] = unicode.ToUpper(runes[0])
			word = string(runes)
		}
		result.WriteString(word)
	}
	return result.String()
}

// splitWords splits on spaces and underscores and also where a lower case
// letter is followed by an upper case one ("OrderId") or where a run of
// upper case letters is followed by a word ("POLine"). All upper or all
// lower case words are not split.
func splitWords(s string) []string {
	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}
	mixed := s != strings.ToLower(s) && s != strings.ToUpper(s)
	for _, r := range s {
		if r == ' ' || r == '_' {
			flush()
			continue
		}
		if mixed && len(current) > 0 {
			last := current[len(current)-1]
			switch {
			case unicode.IsLower(last) && unicode.IsUpper(r):
				flush()
			case unicode.IsLower(r) && unicode.IsUpper(last) &&
				len(current) > 1 && unicode.IsUpper(current[len(current)-2]):
				current = current[:len(current)-1]
				flush()
				current = append(current, last)
			}
		}
		current = append(current, r)
	}
	flush()
	return words
}

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
