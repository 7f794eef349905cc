// Package export writes order report records as csv.
package export

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/keep94/goconsume"
	"github.com/keep94/orderreports/orders"
	"github.com/keep94/orderreports/orders/coerce"
)

// DateFormat is the layout of exported dates.
const DateFormat = "1/2/2006"

// Consumer returns a consumer of *orders.Record values that writes each
// record to w as one csv row. Consumer writes the column names of
// reportType as the header right away. Dates are written in Pacific time.
// Absent fields are written as empty cells. Caller must flush w.
func Consumer(w *csv.Writer, reportType orders.ReportType) goconsume.Consumer {
	columns := orders.Columns(reportType)
	w.Write(columns)
	row := make([]string, len(columns))
	return goconsume.ConsumerFunc(func(ptr interface{}) {
		record := *ptr.(*orders.Record)
		for i, column := range columns {
			row[i] = Format(record[column])
		}
		w.Write(row)
	})
}

// Format returns the csv cell for a record value.
func Format(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case time.Time:
		return v.In(coerce.Pacific).Format(DateFormat)
	case float64:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
