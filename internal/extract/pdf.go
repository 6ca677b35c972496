package extract

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfText extracts text per page, joining pages with newlines. The pdf library
// panics on some malformed inputs, so the whole adapter and each per-page read
// are guarded: a bad page is skipped, a bad document yields an empty string.
func pdfText(path string) (out string) {
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	pages := 0
	func() {
		defer func() { _ = recover() }()
		pages = r.NumPage()
	}()

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		func() {
			defer func() { _ = recover() }()
			p := r.Page(i)
			if p.V.IsNull() {
				return
			}
			text, err := p.GetPlainText(nil)
			if err != nil {
				return
			}
			b.WriteString(text)
			b.WriteByte('\n')
		}()
	}
	return b.String()
}
