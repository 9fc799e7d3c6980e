package scrape

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

var multiSpace = regexp.MustCompile(`\s+`)

// FindTables returns every table carrying the given CSS class, in document
// order. Banks reuse classes across unrelated tables, so callers must treat
// these as candidates, not answers.
func FindTables(doc *html.Node, tableClass string) ([]*html.Node, error) {
	tables, err := htmlquery.QueryAll(doc, fmt.Sprintf("//table[contains(@class, '%s')]", tableClass))
	if err != nil {
		return nil, fmt.Errorf("failed to xpath tables: %w", err)
	}
	if len(tables) == 0 {
		return nil, &NotFoundError{TableClass: tableClass}
	}
	return tables, nil
}

// TableToGrid extracts a table node into raw text cells. Headers live either
// in <thead> <th> cells or in the first <tbody> row, depending on the bank.
func TableToGrid(table *html.Node) (Grid, error) {
	headCells, err := htmlquery.QueryAll(table, "//thead//tr[1]/th")
	if err != nil {
		return Grid{}, fmt.Errorf("failed to xpath header cells: %w", err)
	}

	rowNodes, err := htmlquery.QueryAll(table, "//tbody/tr")
	if err != nil {
		return Grid{}, fmt.Errorf("failed to xpath rows: %w", err)
	}
	if len(rowNodes) == 0 {
		all, err := htmlquery.QueryAll(table, "//tr")
		if err != nil {
			return Grid{}, fmt.Errorf("failed to xpath rows: %w", err)
		}
		// a thead row must never re-enter as a data row
		for _, r := range all {
			if !underThead(r) {
				rowNodes = append(rowNodes, r)
			}
		}
	}

	var grid Grid
	if len(headCells) > 0 {
		grid.Header = cellTexts(headCells)
	} else {
		if len(rowNodes) == 0 {
			return Grid{}, &ParseError{Input: "<table>", Reason: "table has no rows"}
		}
		cells, err := htmlquery.QueryAll(rowNodes[0], "//td|//th")
		if err != nil {
			return Grid{}, fmt.Errorf("failed to xpath cells: %w", err)
		}
		grid.Header = cellTexts(cells)
		rowNodes = rowNodes[1:]
	}

	for _, rowNode := range rowNodes {
		cells, err := htmlquery.QueryAll(rowNode, "//td|//th")
		if err != nil {
			return Grid{}, fmt.Errorf("failed to xpath cells: %w", err)
		}
		grid.Rows = append(grid.Rows, cellTexts(cells))
	}
	return grid, nil
}

func underThead(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == "thead" {
			return true
		}
	}
	return false
}

func cellTexts(nodes []*html.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, nodeText(n))
	}
	return out
}

func nodeText(node *html.Node) string {
	out := ""
	if node != nil {
		if node.Type == html.TextNode {
			out += " " + node.Data
		}
		for next := node.FirstChild; next != nil; next = next.NextSibling {
			out += " " + nodeText(next)
		}
	}

	out = strings.ReplaceAll(out, " ", " ") // non-breaking space
	out = multiSpace.ReplaceAllString(out, " ")
	return strings.Trim(out, " ")
}
