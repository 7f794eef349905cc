// Package local reads Amazon order history reports that have been
// downloaded to a local directory.
//
// Reports are found by their header rather than by their file name.
// Once a report has been read, it is moved to an archive directory so
// that it is read only once.
package local

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/keep94/appcommon/date_util"
	"github.com/keep94/goconsume"
	"github.com/keep94/gofunctional3/functional"
	"github.com/keep94/orderreports/orders"
	"github.com/keep94/orderreports/orders/archive"
	"github.com/keep94/orderreports/orders/charset"
	"github.com/keep94/orderreports/orders/classify"
	"github.com/keep94/orderreports/orders/coerce"
	"github.com/keep94/orderreports/orders/csvrows"
	"github.com/keep94/orderreports/orders/filters"
	"github.com/keep94/orderreports/orders/logging"
)

const (
	DefaultFileLoc    = "./reports"
	DefaultArchiveLoc = "./reports/archive"
)

// Options configures a Reports instance. The zero value uses the
// defaults.
type Options struct {
	// Directory to look for reports. Default DefaultFileLoc.
	FileLoc string
	// Directory to move reports to after use. Default DefaultArchiveLoc.
	ArchiveLoc string
	// Encoding of the report files. Default UTF-8.
	Encoding string
	// Receives debug messages while looking for reports and errors from
	// archiving. Default logs nothing.
	Logger *slog.Logger
	// Supplies the current time for the default date range. Default is
	// the system clock.
	Clock date_util.Clock
}

// Reports reads the reports in one directory.
type Reports struct {
	fileLoc    string
	archiveLoc string
	encoding   string
	logger     *slog.Logger
	clock      date_util.Clock
}

// New returns a Reports instance. options may be nil.
func New(options *Options) *Reports {
	if options == nil {
		options = &Options{}
	}
	result := &Reports{
		fileLoc:    options.FileLoc,
		archiveLoc: options.ArchiveLoc,
		encoding:   options.Encoding,
		logger:     logging.OrDiscard(options.Logger),
		clock:      options.Clock,
	}
	if result.fileLoc == "" {
		result.fileLoc = DefaultFileLoc
	}
	if result.archiveLoc == "" {
		result.archiveLoc = DefaultArchiveLoc
	}
	if result.clock == nil {
		result.clock = date_util.SystemClock{}
	}
	return result
}

// FileLoc returns the directory searched for reports.
func (r *Reports) FileLoc() string {
	return r.fileLoc
}

// ArchiveLoc returns the directory where used reports go.
func (r *Reports) ArchiveLoc() string {
	return r.archiveLoc
}

// Items returns the ordered items with an order date inside dateRange.
// A nil dateRange means the previous 30 days.
func (r *Reports) Items(dateRange *orders.DateRange) functional.Stream {
	return r.Report(orders.Items, dateRange)
}

// Refunds returns the refunds with an order date inside dateRange.
// A nil dateRange means the previous 30 days.
func (r *Reports) Refunds(dateRange *orders.DateRange) functional.Stream {
	return r.Report(orders.Refunds, dateRange)
}

// Shipments returns the shipments with an order date inside dateRange.
// A nil dateRange means the previous 30 days.
func (r *Reports) Shipments(dateRange *orders.DateRange) functional.Stream {
	return r.Report(orders.Shipments, dateRange)
}

// Report returns a Stream of orders.Record values from the first report
// of type reportType found in FileLoc having an order date inside
// dateRange. A nil dateRange means the previous 30 days as of this call.
//
// Nothing is read until the first call to Next. The report is read one row
// at a time as Next is called. If there is no such report, the Stream is
// empty. Once the Stream reaches the end, fails, or is closed, the report
// is moved to ArchiveLoc. Errors moving the report are logged, not
// returned. The caller must call Close on the returned Stream.
func (r *Reports) Report(
	reportType orders.ReportType,
	dateRange *orders.DateRange) functional.Stream {
	var dr orders.DateRange
	if dateRange == nil {
		dr = orders.DefaultDateRange(r.clock)
	} else {
		dr = *dateRange
	}
	s := &reportStream{
		reports:    r,
		reportType: reportType,
		logger: r.logger.With(
			"run", uuid.NewString(), "type", reportType.String()),
	}
	return functional.Filter(filters.ByOrderDate(dr), s)
}

// ReadItems works like Items except that it sends the items to consumer.
// ReadItems stops once consumer can consume no more.
func (r *Reports) ReadItems(
	dateRange *orders.DateRange, consumer goconsume.Consumer) error {
	return r.ReadReport(orders.Items, dateRange, consumer)
}

// ReadRefunds works like Refunds except that it sends the refunds to
// consumer.
func (r *Reports) ReadRefunds(
	dateRange *orders.DateRange, consumer goconsume.Consumer) error {
	return r.ReadReport(orders.Refunds, dateRange, consumer)
}

// ReadShipments works like Shipments except that it sends the shipments to
// consumer.
func (r *Reports) ReadShipments(
	dateRange *orders.DateRange, consumer goconsume.Consumer) error {
	return r.ReadReport(orders.Shipments, dateRange, consumer)
}

// ReadReport works like Report except that it sends each *orders.Record
// to consumer until consumer can consume no more or the report ends.
// The report is archived before ReadReport returns.
func (r *Reports) ReadReport(
	reportType orders.ReportType,
	dateRange *orders.DateRange,
	consumer goconsume.Consumer) error {
	if !consumer.CanConsume() {
		return nil
	}
	stream := r.Report(reportType, dateRange)
	defer stream.Close()
	var record orders.Record
	for consumer.CanConsume() {
		err := stream.Next(&record)
		if err == functional.Done {
			return nil
		}
		if err != nil {
			return err
		}
		consumer.Consume(&record)
	}
	return nil
}

type reportStream struct {
	reports    *Reports
	reportType orders.ReportType
	logger     *slog.Logger
	located    bool
	loc        orders.Location
	file       *os.File
	rows       *csvrows.Rows
	done       bool
}

func (s *reportStream) Next(ptr interface{}) error {
	if s.done {
		return functional.Done
	}
	if s.rows == nil {
		if err := s.open(); err != nil {
			s.finish()
			return err
		}
		if !s.located {
			s.finish()
			return functional.Done
		}
	}
	var raw orders.RawRecord
	if err := s.rows.Next(&raw); err != nil {
		s.finish()
		return err
	}
	record, err := coerce.Coerce(s.reportType, raw)
	if err != nil {
		if fieldErr, ok := err.(*orders.FieldError); ok {
			fieldErr.Row = s.rows.Line()
		}
		s.finish()
		return err
	}
	*ptr.(*orders.Record) = record
	return nil
}

// Close archives the report if it has not been archived already.
func (s *reportStream) Close() error {
	s.finish()
	return nil
}

func (s *reportStream) open() error {
	classifier := &classify.Classifier{
		Dir:      s.reports.fileLoc,
		Encoding: s.reports.encoding,
		Logger:   s.logger,
	}
	loc, ok, err := classifier.Find(s.reportType)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Debug("No report found", "dir", s.reports.fileLoc)
		return nil
	}
	s.located = true
	s.loc = loc
	f, err := os.Open(loc.FullPath)
	if err != nil {
		return err
	}
	s.file = f
	reader, err := charset.NewReader(f, s.reports.encoding)
	if err != nil {
		return err
	}
	s.rows = csvrows.ReadRows(reader, coerce.NormalizeHeader)
	return nil
}

// finish runs once per stream. It releases the file and archives the
// report if one was found.
func (s *reportStream) finish() {
	if s.done {
		return
	}
	s.done = true
	if s.file != nil {
		s.file.Close()
		s.file = nil
	}
	if !s.located {
		return
	}
	lines := 0
	if s.rows != nil {
		lines = s.rows.Line()
	}
	archiver := &archive.Archiver{
		FileLoc: s.reports.fileLoc, ArchiveLoc: s.reports.archiveLoc}
	if err := archiver.Archive(s.loc.FileName); err != nil {
		s.logger.Error(
			"Error archiving report", "file", s.loc.FileName, "error", err)
		return
	}
	s.logger.Debug(
		"Archived report",
		"file", s.loc.FileName,
		"archive", s.reports.archiveLoc,
		"rows", lines)
}
