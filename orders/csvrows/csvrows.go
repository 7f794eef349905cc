// Package csvrows reads csv files with a header row as a stream of
// orders.RawRecord values.
package csvrows

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"

	"github.com/keep94/gofunctional3/functional"
	"github.com/keep94/orderreports/orders"
)

var kUTF8ByteOrderMark = []byte{0xef, 0xbb, 0xbf}

// Rows is a functional.Stream of orders.RawRecord values. The first row
// of the csv file is the header. Rows reads one csv row per call to Next.
type Rows struct {
	source  *bufio.Reader
	reader  *csv.Reader
	closer  io.Closer
	header  func(string) string
	columns []string
	line    int
	started bool
}

// ReadRows returns the rows of the csv file in r. header transforms each
// header cell into the key used in the returned records; nil means use the
// header cells as is. If r is an io.Closer, closing the returned Rows
// closes r.
func ReadRows(r io.Reader, header func(string) string) *Rows {
	source := bufio.NewReader(r)
	result := &Rows{
		source: source,
		reader: csv.NewReader(source),
		header: header,
	}
	if closer, ok := r.(io.Closer); ok {
		result.closer = closer
	}
	return result
}

// Next stores the next row at ptr which must be a *orders.RawRecord.
// Each call stores a newly allocated map. Next returns functional.Done
// when there are no more rows.
func (r *Rows) Next(ptr interface{}) error {
	if !r.started {
		r.started = true
		if err := r.readHeader(); err != nil {
			return err
		}
	}
	if r.columns == nil {
		return functional.Done
	}
	fields, err := r.reader.Read()
	if err == io.EOF {
		return functional.Done
	}
	if err != nil {
		return err
	}
	r.line++
	raw := make(orders.RawRecord, len(r.columns))
	for i, column := range r.columns {
		raw[column] = fields[i]
	}
	*ptr.(*orders.RawRecord) = raw
	return nil
}

// Columns returns the transformed header. Columns returns nil until the
// first call to Next.
func (r *Rows) Columns() []string {
	return r.columns
}

// Line returns the 1-based number of the data row last returned by Next
// not counting the header.
func (r *Rows) Line() int {
	return r.line
}

// Close closes the underlying reader if it is an io.Closer.
func (r *Rows) Close() error {
	if r.closer == nil {
		return nil
	}
	closer := r.closer
	r.closer = nil
	return closer.Close()
}

func (r *Rows) readHeader() error {
	if prefix, _ := r.source.Peek(len(kUTF8ByteOrderMark)); bytes.Equal(
		prefix, kUTF8ByteOrderMark) {
		r.source.Discard(len(kUTF8ByteOrderMark))
	}
	cells, err := r.reader.Read()
	if err == io.EOF {
		// empty file
		return nil
	}
	if err != nil {
		return err
	}
	columns := make([]string, len(cells))
	for i, cell := range cells {
		if r.header != nil {
			cell = r.header(cell)
		}
		columns[i] = cell
	}
	r.columns = columns
	return nil
}
