package coerce_test

import (
	"errors"
	"testing"
	"time"

	"github.com/keep94/orderreports/orders"
	"github.com/keep94/orderreports/orders/coerce"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	assert := assert.New(t)
	cases := map[string]string{
		"Order Date":                     "orderDate",
		"Order ID":                       "orderId",
		"ASIN/ISBN":                      "asinIsbn",
		"UNSPSC Code":                    "unspscCode",
		"List Price Per Unit":            "listPricePerUnit",
		"PO Line Number":                 "poLineNumber",
		"Shipping Address Street 1":      "shippingAddressStreet1",
		"Carrier Name & Tracking Number": "carrierNameTrackingNumber",
		"Exemption Opt-Out":              "exemptionOptOut",
		"\ufeffOrder Date":               "orderDate",
		"OrderID":                        "orderId",
		"already_snake":                  "alreadySnake",
		"":                               "",
	}
	for header, expected := range cases {
		assert.Equal(expected, coerce.NormalizeHeader(header), header)
	}
}

func TestParsePrice(t *testing.T) {
	assert := assert.New(t)
	f, err := coerce.ParsePrice("$1,234.56")
	assert.NoError(err)
	assert.Equal(1234.56, f)
	f, err = coerce.ParsePrice("0.99")
	assert.NoError(err)
	assert.Equal(0.99, f)
	_, err = coerce.ParsePrice("N/A")
	assert.Equal(coerce.BadPrice, err)
	_, err = coerce.ParsePrice("1.2.3")
	assert.Equal(coerce.BadPrice, err)
}

func TestParseQuantity(t *testing.T) {
	assert := assert.New(t)
	q, err := coerce.ParseQuantity("3")
	assert.NoError(err)
	assert.Equal(3, q)
	q, err = coerce.ParseQuantity("12 units")
	assert.NoError(err)
	assert.Equal(12, q)
	_, err = coerce.ParseQuantity("many")
	assert.Equal(coerce.BadQuantity, err)
}

func TestParseDatePacific(t *testing.T) {
	assert := assert.New(t)
	d, err := coerce.ParseDate("12/03/20")
	assert.NoError(err)
	// Midnight in Los Angeles in December is 08:00 UTC
	assert.Equal(time.Date(2020, 12, 3, 8, 0, 0, 0, time.UTC), d.UTC())
	d, err = coerce.ParseDate("7/4/21")
	assert.NoError(err)
	assert.Equal(time.Date(2021, 7, 4, 7, 0, 0, 0, time.UTC), d.UTC())
	_, err = coerce.ParseDate("2020-12-03")
	assert.Error(err)
}

func TestCoerceItems(t *testing.T) {
	assert := assert.New(t)
	record, err := coerce.Coerce(orders.Items, orders.RawRecord{
		orders.OrderDate:        "12/03/20",
		orders.OrderId:          "111-222",
		orders.ListPricePerUnit: "$1,234.56",
		orders.Quantity:         "2",
		orders.ReleaseDate:      "",
		orders.Title:            "Widget",
	})
	assert.NoError(err)
	orderDate, ok := record.OrderDate()
	assert.True(ok)
	assert.True(
		time.Date(2020, 12, 3, 0, 0, 0, 0, coerce.Pacific).Equal(orderDate))
	assert.Equal("111-222", record[orders.OrderId])
	assert.Equal(1234.56, record[orders.ListPricePerUnit])
	assert.Equal(2, record[orders.Quantity])
	assert.Equal("Widget", record[orders.Title])
	_, ok = record[orders.ReleaseDate]
	assert.False(ok)
	assert.Len(record, 5)
}

func TestCoerceTablesArePerType(t *testing.T) {
	assert := assert.New(t)
	// subtotal is a price only in the shipments report
	raw := orders.RawRecord{orders.Subtotal: "$5.00"}
	record, err := coerce.Coerce(orders.Shipments, raw)
	assert.NoError(err)
	assert.Equal(5.0, record[orders.Subtotal])
	record, err = coerce.Coerce(orders.Items, raw)
	assert.NoError(err)
	assert.Equal("$5.00", record[orders.Subtotal])
	record, err = coerce.Coerce(
		orders.Refunds, orders.RawRecord{orders.RefundTaxAmount: "$0.50"})
	assert.NoError(err)
	assert.Equal(0.5, record[orders.RefundTaxAmount])
}

func TestCoerceEmptyValuesOmitted(t *testing.T) {
	assert := assert.New(t)
	raw := orders.RawRecord{}
	for _, column := range orders.Columns(orders.Shipments) {
		raw[column] = ""
	}
	record, err := coerce.Coerce(orders.Shipments, raw)
	assert.NoError(err)
	assert.Empty(record)
}

func TestCoerceBadValue(t *testing.T) {
	assert := assert.New(t)
	_, err := coerce.Coerce(
		orders.Refunds, orders.RawRecord{orders.RefundDate: "yesterday"})
	var fieldErr *orders.FieldError
	assert.True(errors.As(err, &fieldErr))
	assert.Equal(orders.RefundDate, fieldErr.Field)
	assert.Equal("yesterday", fieldErr.Value)
	_, err = coerce.Coerce(
		orders.Items, orders.RawRecord{orders.ItemTotal: "free"})
	assert.True(errors.Is(err, coerce.BadPrice))
}

func TestCoerceUnknownType(t *testing.T) {
	_, err := coerce.Coerce(orders.ReportType(9), orders.RawRecord{})
	assert.Equal(t, orders.UnknownReportType, err)
}

type fakeClock time.Time

func (c fakeClock) Now() time.Time {
	return time.Time(c)
}

func TestParseDateRange(t *testing.T) {
	assert := assert.New(t)
	now := time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := fakeClock(now)

	r, err := coerce.ParseDateRange(clock, "", " ")
	assert.NoError(err)
	assert.Nil(r)

	r, err = coerce.ParseDateRange(clock, "20201201", "")
	assert.NoError(err)
	assert.Equal("2020-12-01T00:00:00-08:00", r.Start.Format(time.RFC3339))
	assert.True(r.End.Equal(now))

	r, err = coerce.ParseDateRange(clock, "", "20201215")
	assert.NoError(err)
	assert.Equal("2020-11-15T00:00:00-08:00", r.Start.Format(time.RFC3339))
	assert.Equal("2020-12-15T00:00:00-08:00", r.End.Format(time.RFC3339))

	_, err = coerce.ParseDateRange(clock, "12/1/2020", "")
	assert.Error(err)
}
