// Package download serves order reports as csv attachments.
package download

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/keep94/appcommon/date_util"
	"github.com/keep94/appcommon/http_util"
	"github.com/keep94/goconsume"
	"github.com/keep94/orderreports/orders"
	"github.com/keep94/orderreports/orders/coerce"
	"github.com/keep94/orderreports/orders/export"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ReportReader reads one report sending each *orders.Record to consumer.
// A nil date range means the default range.
type ReportReader interface {
	ReadReport(
		reportType orders.ReportType,
		dateRange *orders.DateRange,
		consumer goconsume.Consumer) error
}

// Metrics counts what the handlers serve.
type Metrics struct {
	records  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewMetrics registers the download counters with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		records: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orderreports_exported_records_total",
				Help: "Records written to downloaded reports.",
			},
			[]string{"type"}),
		failures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orderreports_failed_downloads_total",
				Help: "Downloads that failed.",
			},
			[]string{"type"}),
	}
}

// Records counts exported records by report type.
func (m *Metrics) Records() *prometheus.CounterVec {
	return m.records
}

// Failures counts failed downloads by report type.
func (m *Metrics) Failures() *prometheus.CounterVec {
	return m.failures
}

// Handler serves one report type. Query parameters sd and ed give the
// date range in yyyyMMdd format; both absent means the previous 30 days.
type Handler struct {
	Reports ReportReader
	Clock   date_util.Clock
	Type    orders.ReportType
	// Optional
	Metrics *Metrics
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	dateRange, err := coerce.ParseDateRange(
		h.Clock, r.Form.Get("sd"), r.Form.Get("ed"))
	if err != nil {
		http.Error(
			w, "Dates must be in yyyyMMdd format.", http.StatusBadRequest)
		return
	}
	buffer := &bytes.Buffer{}
	csvWriter := csv.NewWriter(buffer)
	count := 0
	consumer := goconsume.Compose(
		export.Consumer(csvWriter, h.Type),
		goconsume.ConsumerFunc(func(ptr interface{}) {
			count++
		}))
	if err := h.Reports.ReadReport(h.Type, dateRange, consumer); err != nil {
		h.fail()
		http_util.ReportError(w, "Error reading report.", err)
		return
	}
	csvWriter.Flush()
	if h.Metrics != nil {
		h.Metrics.records.WithLabelValues(h.Type.String()).Add(float64(count))
	}
	header := w.Header()
	header.Add("Content-Type", "text/csv")
	now := h.Clock.Now().In(coerce.Pacific)
	header.Add(
		"Content-Disposition",
		fmt.Sprintf(
			"attachment; filename=\"%s_%s.csv\"",
			h.Type,
			now.Format(date_util.YMDFormat)))
	buffer.WriteTo(w)
}

func (h *Handler) fail() {
	if h.Metrics != nil {
		h.Metrics.failures.WithLabelValues(h.Type.String()).Inc()
	}
}
