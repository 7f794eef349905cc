// Package orders contains the types shared by the order report packages.
package orders

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/keep94/appcommon/date_util"
)

// DefaultDays is the length of the default date range in days.
const DefaultDays = 30

var (
	UnknownReportType = errors.New("orders: Unknown report type.")
)

// ReportType identifies one of the Amazon order history reports.
type ReportType int

const (
	Items ReportType = iota
	Refunds
	Shipments
)

var kReportTypeNames = []string{"items", "refunds", "shipments"}

func (r ReportType) String() string {
	if r < 0 || int(r) >= len(kReportTypeNames) {
		return fmt.Sprintf("ReportType(%d)", int(r))
	}
	return kReportTypeNames[r]
}

// Valid returns true if r is one of Items, Refunds or Shipments.
func (r ReportType) Valid() bool {
	return r >= Items && r <= Shipments
}

// ParseReportType converts "items", "refunds" or "shipments" to a
// ReportType. Case is ignored.
func ParseReportType(s string) (ReportType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kReportTypeNames {
		if s == name {
			return ReportType(i), nil
		}
	}
	return 0, UnknownReportType
}

// RawRecord is one row of a report before coercion. Keys are normalized
// column names.
type RawRecord map[string]string

// Record is one coerced row of a report. Dates are time.Time values,
// currency amounts float64 values, quantities int values and everything
// else string values. Columns that were empty in the report are absent.
type Record map[string]interface{}

// Time returns the time.Time stored under key.
func (r Record) Time(key string) (t time.Time, ok bool) {
	t, ok = r[key].(time.Time)
	return
}

// Float returns the float64 stored under key.
func (r Record) Float(key string) (f float64, ok bool) {
	f, ok = r[key].(float64)
	return
}

// Int returns the int stored under key.
func (r Record) Int(key string) (i int, ok bool) {
	i, ok = r[key].(int)
	return
}

// String returns the string stored under key.
func (r Record) String(key string) (s string, ok bool) {
	s, ok = r[key].(string)
	return
}

// OrderDate returns the order date of this record.
func (r Record) OrderDate() (time.Time, bool) {
	return r.Time(OrderDate)
}

// DateRange is a range of instants exclusive of both Start and End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DefaultDateRange returns the range from DefaultDays days before the
// current time up to the current time.
func DefaultDateRange(clock date_util.Clock) DateRange {
	now := clock.Now()
	return DateRange{
		Start: now.Add(-DefaultDays * 24 * time.Hour),
		End:   now,
	}
}

// Contains returns true if t is strictly after Start and strictly before
// End.
func (d DateRange) Contains(t time.Time) bool {
	return t.After(d.Start) && t.Before(d.End)
}

// Location identifies a report file in the working directory.
type Location struct {
	// The file name without directory
	FileName string
	// The file name joined with the working directory
	FullPath string
}

// FieldError reports a cell that could not be converted to its typed
// value.
type FieldError struct {
	// 1-based data row; 0 if unknown
	Row   int
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf(
			"orders: row %d: bad value %q for %s: %v",
			e.Row, e.Value, e.Field, e.Err)
	}
	return fmt.Sprintf(
		"orders: bad value %q for %s: %v", e.Value, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
