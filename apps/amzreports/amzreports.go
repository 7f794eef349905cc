// amzreports writes the records of one downloaded Amazon order history
// report as csv to stdout and then archives the report.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"

	"github.com/keep94/appcommon/date_util"
	"github.com/keep94/goconsume"
	"github.com/keep94/orderreports/orders"
	"github.com/keep94/orderreports/orders/coerce"
	"github.com/keep94/orderreports/orders/config"
	"github.com/keep94/orderreports/orders/export"
	"github.com/keep94/orderreports/orders/local"
)

var (
	fConfig  string
	fDir     string
	fArchive string
	fType    string
	fStart   string
	fEnd     string
	fLimit   int
	fLog     string
)

func main() {
	flag.Parse()
	reportType, err := orders.ParseReportType(fType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "-type must be items, refunds or shipments\n")
		flag.Usage()
		os.Exit(2)
	}
	dateRange, err := coerce.ParseDateRange(date_util.SystemClock{}, fStart, fEnd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Dates must be in yyyyMMdd format.")
		os.Exit(2)
	}
	c, err := config.Load(fConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if fDir != "" {
		c.FileLoc = fDir
	}
	if fArchive != "" {
		c.ArchiveLoc = fArchive
	}
	if fLog != "" {
		c.LogLevel = fLog
	}
	logger, err := c.Logger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	reports := local.New(c.Options(logger))
	writer := csv.NewWriter(os.Stdout)
	consumer := export.Consumer(writer, reportType)
	if fLimit > 0 {
		consumer = goconsume.Slice(consumer, 0, fLimit)
	}
	err = reports.ReadReport(reportType, dateRange, consumer)
	writer.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := writer.Error(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flag.StringVar(&fConfig, "config", "", "Path to YAML config file")
	flag.StringVar(&fDir, "dir", "", "Directory holding reports")
	flag.StringVar(&fArchive, "archive", "", "Directory for read reports")
	flag.StringVar(&fType, "type", "items", "items, refunds or shipments")
	flag.StringVar(&fStart, "sd", "", "Start date yyyyMMdd, exclusive")
	flag.StringVar(&fEnd, "ed", "", "End date yyyyMMdd, exclusive")
	flag.IntVar(&fLimit, "limit", 0, "Maximum records to write; 0 means all")
	flag.StringVar(&fLog, "log", "", "Log level: none, debug, info, warn, error")
}
