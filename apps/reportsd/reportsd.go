// reportsd serves downloaded Amazon order history reports over HTTP as
// csv files. Each report is archived once served.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/context"
	"github.com/keep94/appcommon/date_util"
	"github.com/keep94/appcommon/http_util"
	"github.com/keep94/appcommon/logging"
	"github.com/keep94/orderreports/apps/reportsd/download"
	"github.com/keep94/orderreports/orders"
	"github.com/keep94/orderreports/orders/config"
	"github.com/keep94/orderreports/orders/local"
	"github.com/keep94/weblogs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	fConfig string
	fPort   string
)

var (
	kClock date_util.SystemClock
)

func main() {
	flag.Parse()
	c, err := config.Load(fConfig)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if fPort != "" {
		c.HTTP = fPort
	}
	logger, err := c.Logger(os.Stderr)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	reports := local.New(c.Options(logger))
	metrics := download.NewMetrics(prometheus.DefaultRegisterer)
	http.HandleFunc("/", rootRedirect)
	for _, reportType := range []orders.ReportType{
		orders.Items, orders.Refunds, orders.Shipments} {
		http.Handle(
			"/"+reportType.String(),
			&download.Handler{
				Reports: reports,
				Clock:   kClock,
				Type:    reportType,
				Metrics: metrics})
	}
	http.Handle("/metrics", promhttp.Handler())
	defaultHandler := context.ClearHandler(
		weblogs.HandlerWithOptions(
			http.DefaultServeMux,
			&weblogs.Options{Logger: logging.ApacheCommonLoggerWithLatency()}))
	if err := http.ListenAndServe(c.HTTP, defaultHandler); err != nil {
		fmt.Println(err)
	}
}

func rootRedirect(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/" {
		http_util.Redirect(w, r, "/items")
	} else {
		http_util.Error(w, http.StatusNotFound)
	}
}

func init() {
	flag.StringVar(&fConfig, "config", "", "Path to YAML config file")
	flag.StringVar(&fPort, "http", "", "Port to bind; overrides config")
}
