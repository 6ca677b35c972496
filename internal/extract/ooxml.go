package extract

import (
	"archive/zip"
	"encoding/xml"
	"sort"
	"strconv"
	"strings"
)

// OOXML containers (.docx, .pptx) are zip archives of XML parts. The adapters
// here unzip the relevant part and collect the text runs directly (w:t in
// WordprocessingML, a:t in DrawingML) instead of pulling in a full document
// library.

// docxText returns the paragraph text of a Word document, one paragraph per
// line.
func docxText(path string) (out string) {
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()

	zr, err := zip.OpenReader(path)
	if err != nil {
		return ""
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			return wordParagraphs(f)
		}
	}
	return ""
}

func wordParagraphs(f *zip.File) string {
	rc, err := f.Open()
	if err != nil {
		return ""
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	var doc, para strings.Builder
	first := true
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				var s string
				if dec.DecodeElement(&s, &t) == nil {
					para.WriteString(s)
				}
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				if !first {
					doc.WriteByte('\n')
				}
				first = false
				doc.WriteString(para.String())
				para.Reset()
			}
		}
	}
	return doc.String()
}

// pptxText returns the text of every shape on every slide, one shape per line,
// slides visited in numeric order.
func pptxText(path string) (out string) {
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()

	zr, err := zip.OpenReader(path)
	if err != nil {
		return ""
	}
	defer zr.Close()

	var slides []*zip.File
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			slides = append(slides, f)
		}
	}
	sort.Slice(slides, func(i, j int) bool {
		return slideNumber(slides[i].Name) < slideNumber(slides[j].Name)
	})

	var shapes []string
	for _, f := range slides {
		shapes = append(shapes, slideShapes(f)...)
	}
	return strings.Join(shapes, "\n")
}

func slideNumber(name string) int {
	n := strings.TrimSuffix(strings.TrimPrefix(name, "ppt/slides/slide"), ".xml")
	v, _ := strconv.Atoi(n)
	return v
}

// slideShapes returns the text of each text-bearing shape on one slide.
// Paragraphs inside a shape are joined with newlines; a malformed slide simply
// contributes whatever parsed before the error.
func slideShapes(f *zip.File) []string {
	rc, err := f.Open()
	if err != nil {
		return nil
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	var shapes []string
	var cur strings.Builder
	inBody := 0
	paras := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "txBody":
				inBody++
				cur.Reset()
				paras = 0
			case "p":
				if inBody > 0 {
					if paras > 0 {
						cur.WriteByte('\n')
					}
					paras++
				}
			case "t":
				if inBody > 0 {
					var s string
					if dec.DecodeElement(&s, &t) == nil {
						cur.WriteString(s)
					}
				}
			}
		case xml.EndElement:
			if t.Name.Local == "txBody" && inBody > 0 {
				inBody--
				shapes = append(shapes, cur.String())
			}
		}
	}
	return shapes
}
