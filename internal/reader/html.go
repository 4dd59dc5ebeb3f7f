package reader

import (
	"errors"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var errNoTable = errors.New("no <table> element found")

// parseHTML reads rows from the first table of an HTML document. The header
// is the first row containing <th> cells, or the first row when none does.
func parseHTML(r io.Reader) ([]map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, errNoTable
	}

	var header []string
	var rows []map[string]string
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if header == nil {
			if th := tr.Find("th"); th.Length() > 0 {
				header = cellTexts(th)
				return
			}
			header = cellTexts(tr.Find("td"))
			return
		}
		cells := cellTexts(tr.Find("td"))
		if len(cells) == 0 {
			return
		}
		rows = append(rows, zipRow(header, cells))
	})
	return rows, nil
}

func cellTexts(s *goquery.Selection) []string {
	texts := make([]string, 0, s.Length())
	s.Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(cell.Text()))
	})
	return texts
}
