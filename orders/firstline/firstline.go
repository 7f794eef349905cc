// Package firstline reads the first line of a file without reading the
// rest of it.
package firstline

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/keep94/orderreports/orders/charset"
)

const (
	kByteOrderMark = "\ufeff"
	kChunkSize     = 512
)

// Options configures FirstLine.
type Options struct {
	// Name of the file encoding such as "utf-8", "utf-16le" or "latin1".
	// Empty means UTF-8.
	Encoding string
	// The line terminator. Empty means "\n".
	LineEnding string
}

// FirstLine returns the first line of the file at path without the line
// terminator and without any leading byte order mark. If the file has no
// terminator, FirstLine returns the whole file. FirstLine reads the file
// in small chunks and stops as soon as it finds the terminator.
// options may be nil.
func FirstLine(path string, options *Options) (string, error) {
	if options == nil {
		options = &Options{}
	}
	enc, err := charset.Lookup(options.Encoding)
	if err != nil {
		return "", err
	}
	ending := []byte(options.LineEnding)
	if len(ending) == 0 {
		ending = []byte("\n")
	}
	if enc != nil {
		if ending, err = enc.NewEncoder().Bytes(ending); err != nil {
			return "", err
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	line, err := readUntil(f, ending)
	if err != nil {
		return "", err
	}
	if enc != nil {
		if line, err = enc.NewDecoder().Bytes(line); err != nil {
			return "", err
		}
	}
	return strings.TrimPrefix(string(line), kByteOrderMark), nil
}

func readUntil(r io.Reader, ending []byte) ([]byte, error) {
	var acc []byte
	chunk := make([]byte, kChunkSize)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			// The terminator may straddle two chunks.
			from := len(acc) - len(ending) + 1
			if from < 0 {
				from = 0
			}
			acc = append(acc, chunk[:n]...)
			if idx := bytes.Index(acc[from:], ending); idx != -1 {
				return acc[:from+idx], nil
			}
		}
		if err == io.EOF {
			return acc, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
