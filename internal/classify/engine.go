package classify

import (
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"docsort/internal/extract"
)

// Engine classifies a document into one of the fixed categories. It holds no
// mutable state, so a single Engine is safe for concurrent use across files.
type Engine struct {
	rules   []Rule
	extract func(path string) string
}

// New returns an engine over the fixed category table with full content
// extraction.
func New() *Engine {
	return &Engine{rules: Rules, extract: extract.Text}
}

// NewWithTable builds an engine over a custom ordered table. extractFn may be
// nil when only name-based classification is wanted.
func NewWithTable(rules []Rule, extractFn func(path string) string) *Engine {
	return &Engine{rules: rules, extract: extractFn}
}

// Categories returns the engine's category labels in declaration order.
func (e *Engine) Categories() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name
	}
	return names
}

// Classify returns the category for the file at path. The argument may be a
// bare name, in which case only the filename stage can decide. Classify is
// total: unreadable files, unsupported formats, and extraction failures all
// fall through to the fallback category.
//
// Stages run strictly in order. The filename stage is first-match-wins over
// categories and keywords in declared order; the content stage scores the
// extracted text and tie-breaks by declaration order; the fallback is the
// last-declared category.
func (e *Engine) Classify(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	nameText := Normalize(stem + " " + base)

	for _, r := range e.rules {
		for _, kw := range r.Keywords {
			if strings.Contains(nameText, kw) {
				log.WithFields(log.Fields{
					"file":     base,
					"category": r.Name,
					"keyword":  kw,
				}).Debug("classified by filename")
				return r.Name
			}
		}
	}

	if e.extract != nil {
		if content := e.extract(path); content != "" {
			if cat, ok := Best(Score(content, e.rules), e.rules); ok {
				log.WithFields(log.Fields{
					"file":     base,
					"category": cat,
				}).Debug("classified by content")
				return cat
			}
		}
	}

	fallback := e.rules[len(e.rules)-1].Name
	log.WithFields(log.Fields{
		"file":     base,
		"category": fallback,
	}).Debug("classified by fallback")
	return fallback
}
