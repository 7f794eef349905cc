// Package classify finds report files by looking at their first line.
package classify

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/keep94/orderreports/orders"
	"github.com/keep94/orderreports/orders/firstline"
	"github.com/keep94/orderreports/orders/logging"
)

var (
	kItemsPattern     = regexp.MustCompile(`.*List Price Per Unit.*`)
	kRefundsPattern   = regexp.MustCompile(`.*Refund Date.*`)
	kShipmentsPattern = regexp.MustCompile(`.*Shipping Charge.*`)
)

// Signature returns the pattern that the first line of a report of type r
// matches. Returns nil for an unknown report type.
func Signature(r orders.ReportType) *regexp.Regexp {
	switch r {
	case orders.Items:
		return kItemsPattern
	case orders.Refunds:
		return kRefundsPattern
	case orders.Shipments:
		return kShipmentsPattern
	}
	return nil
}

// Classifier finds reports in a directory.
type Classifier struct {
	// The directory to search
	Dir string
	// Encoding of the report files; empty means UTF-8
	Encoding string
	// If non-nil, receives a debug message for each file checked.
	Logger *slog.Logger
}

// Find looks through the files in c.Dir in directory order and returns the
// first one whose first line matches the signature of reportType.
// Sub-directories are skipped. If no file matches, Find returns ok = false
// and a nil error.
func (c *Classifier) Find(reportType orders.ReportType) (
	loc orders.Location, ok bool, err error) {
	pattern := Signature(reportType)
	if pattern == nil {
		err = orders.UnknownReportType
		return
	}
	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		return
	}
	logger := logging.OrDiscard(c.Logger)
	options := &firstline.Options{Encoding: c.Encoding}
	for _, entry := range entries {
		fullPath := filepath.Join(c.Dir, entry.Name())
		// Follows symbolic links so that links to directories are skipped
		var info os.FileInfo
		info, err = os.Stat(fullPath)
		if err != nil {
			return
		}
		if info.IsDir() {
			continue
		}
		logger.Debug("Checking for type of file", "file", entry.Name())
		var line string
		line, err = firstline.FirstLine(fullPath, options)
		if err != nil {
			return
		}
		if pattern.MatchString(line) {
			logger.Debug(
				"Found report",
				"file", entry.Name(),
				"type", reportType.String())
			return orders.Location{
				FileName: entry.Name(), FullPath: fullPath}, true, nil
		}
	}
	return
}
