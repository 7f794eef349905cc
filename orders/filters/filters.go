// Package filters contains filters for streams of orders.Record values.
package filters

import (
	"github.com/keep94/gofunctional3/functional"
	"github.com/keep94/orderreports/orders"
)

// ByOrderDate returns a filter of *orders.Record values that passes only
// records with an order date strictly inside r. Records without an order
// date are skipped.
func ByOrderDate(r orders.DateRange) functional.Filterer {
	return functional.NewFilterer(func(ptr interface{}) error {
		p := ptr.(*orders.Record)
		orderDate, ok := p.OrderDate()
		if !ok || !r.Contains(orderDate) {
			return functional.Skipped
		}
		return nil
	})
}
