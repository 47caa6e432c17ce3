package services

import (
	"fmt"
	"strconv"
	"strings"

	"shopmate-api/pkg/models"

	"github.com/xuri/excelize/v2"
)

// Expected column order of a catalog workbook. The first row is a
// header and is skipped.
//
//	id | name | category | subcategory | color | price | originalPrice |
//	image | description | rating | reviews | inStock | brand | sizes |
//	ecoFriendly | discount
const catalogColumns = 16

// LoadCatalogFromXLSX reads a seed catalog override from an Excel
// workbook. Rows with a missing id or name are skipped; malformed
// numeric cells default to zero rather than failing the whole load.
func LoadCatalogFromXLSX(path string) ([]models.Product, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("catalog file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("catalog sheet has no data rows")
	}

	products := make([]models.Product, 0, len(rows)-1)
	for _, row := range rows[1:] {
		// Pad short rows so column access stays in bounds.
		for len(row) < catalogColumns {
			row = append(row, "")
		}

		if row[0] == "" || row[1] == "" {
			continue
		}

		product := models.Product{
			ID:            row[0],
			Name:          row[1],
			Category:      row[2],
			Subcategory:   row[3],
			Color:         row[4],
			Price:         parseIntCell(row[5]),
			OriginalPrice: parseIntCell(row[6]),
			Image:         row[7],
			Description:   row[8],
			Rating:        parseFloatCell(row[9]),
			Reviews:       parseIntCell(row[10]),
			InStock:       parseBoolCell(row[11]),
			Brand:         row[12],
			Sizes:         parseSizesCell(row[13]),
			EcoFriendly:   parseBoolCell(row[14]),
			Discount:      parseIntCell(row[15]),
			Source:        "seed",
		}
		products = append(products, product)
	}

	if len(products) == 0 {
		return nil, fmt.Errorf("catalog sheet contained no usable rows")
	}
	return products, nil
}

func parseIntCell(cell string) int {
	v, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil {
		return 0
	}
	return v
}

func parseFloatCell(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseBoolCell(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "true", "yes", "1":
		return true
	}
	return false
}

func parseSizesCell(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	parts := strings.Split(cell, ",")
	sizes := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sizes = append(sizes, trimmed)
		}
	}
	return sizes
}
