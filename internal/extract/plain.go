package extract

import (
	"bytes"
	"os"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// plainText reads a text file as UTF-8, stripping a leading BOM and replacing
// undecodable bytes rather than failing.
func plainText(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if !utf8.Valid(raw) {
		raw = bytes.ToValidUTF8(raw, []byte(string(utf8.RuneError)))
	}
	return string(raw)
}
