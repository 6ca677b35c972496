// Package extract recovers plain text from document files. Every adapter
// satisfies the same contract: given a path, return whatever text could be
// read, or an empty string. Adapters never return an error and never panic
// past their own boundary, so a corrupt document degrades to "no text" instead
// of aborting classification.
package extract

import (
	"path/filepath"
	"strings"
)

// Adapter extracts text from one document format.
type Adapter func(path string) string

var adapters = map[string]Adapter{
	".txt":  plainText,
	".md":   plainText,
	".pdf":  pdfText,
	".docx": docxText,
	".pptx": pptxText,
	".xlsx": sheetText,
	".xls":  sheetText,
}

// Text returns the extracted text for path. Unsupported extensions return an
// empty string immediately with no read attempt.
func Text(path string) string {
	adapter, ok := adapters[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return ""
	}
	return adapter(path)
}
