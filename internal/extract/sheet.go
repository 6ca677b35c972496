package extract

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// sheetText extracts every non-empty cell value across all sheets, one value
// per line, using the streaming row iterator so large workbooks are not held
// in memory. Formula cells yield their last computed value. Legacy .xls files
// fail to open and degrade to an empty string.
func sheetText(path string) (out string) {
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()

	f, err := excelize.OpenFile(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	var b strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.Rows(sheet)
		if err != nil {
			continue
		}
		for rows.Next() {
			cols, err := rows.Columns()
			if err != nil {
				continue
			}
			for _, cell := range cols {
				if cell == "" {
					continue
				}
				if b.Len() > 0 {
					b.WriteByte('\n')
				}
				b.WriteString(cell)
			}
		}
		_ = rows.Close()
	}
	return b.String()
}
