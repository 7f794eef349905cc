package firstline_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keep94/orderreports/orders/firstline"
	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, contents []byte) string {
	path := filepath.Join(t.TempDir(), "report.csv")
	if err := os.WriteFile(path, contents, 0644); err != nil {
		t.Fatalf("Error writing file: %v", err)
	}
	return path
}

func TestFirstLine(t *testing.T) {
	assert := assert.New(t)
	path := writeFile(t, []byte("Order Date,Order ID\n01/02/21,123\n"))
	line, err := firstline.FirstLine(path, nil)
	assert.NoError(err)
	assert.Equal("Order Date,Order ID", line)
}

func TestFirstLineStripsByteOrderMark(t *testing.T) {
	assert := assert.New(t)
	path := writeFile(t, []byte("\xef\xbb\xbfRefund Date,Order ID\nx\n"))
	line, err := firstline.FirstLine(path, nil)
	assert.NoError(err)
	assert.Equal("Refund Date,Order ID", line)
}

func TestFirstLineNoTerminator(t *testing.T) {
	assert := assert.New(t)
	path := writeFile(t, []byte("just one line"))
	line, err := firstline.FirstLine(path, nil)
	assert.NoError(err)
	assert.Equal("just one line", line)
}

func TestFirstLineEmptyFile(t *testing.T) {
	assert := assert.New(t)
	line, err := firstline.FirstLine(writeFile(t, nil), nil)
	assert.NoError(err)
	assert.Equal("", line)
}

func TestFirstLineSpansChunks(t *testing.T) {
	assert := assert.New(t)
	header := strings.Repeat("Shipping Charge,", 100)
	path := writeFile(t, []byte(header+"\r\nrest of file\r\n"))
	line, err := firstline.FirstLine(
		path, &firstline.Options{LineEnding: "\r\n"})
	assert.NoError(err)
	assert.Equal(header, line)
}

func TestFirstLineUTF16(t *testing.T) {
	assert := assert.New(t)
	// "A,B\nC" in UTF-16LE with a byte order mark
	contents := []byte{
		0xff, 0xfe, 'A', 0, ',', 0, 'B', 0, '\n', 0, 'C', 0}
	line, err := firstline.FirstLine(
		writeFile(t, contents), &firstline.Options{Encoding: "utf-16le"})
	assert.NoError(err)
	assert.Equal("A,B", line)
}

func TestFirstLineMissingFile(t *testing.T) {
	_, err := firstline.FirstLine(
		filepath.Join(t.TempDir(), "missing.csv"), nil)
	assert.True(t, os.IsNotExist(err))
}

func TestFirstLineUnknownEncoding(t *testing.T) {
	_, err := firstline.FirstLine(
		writeFile(t, []byte("a\n")), &firstline.Options{Encoding: "klingon"})
	assert.Error(t, err)
}
