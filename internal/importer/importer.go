// Package importer loads per-zone stock levels from a CSV export, used
// to bulk-refresh regional inventory.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"podshop/internal/domain"
)

type StockWriter interface {
	UpsertStock(ctx context.Context, stock domain.ZoneStock) error
}

type ZoneLookup interface {
	ListActive(ctx context.Context) ([]domain.Zone, error)
}

type ProductLookup interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
}

// CSVImporter reads rows of (zone, product, stock) keyed by slug and
// upserts the zone_stock table.
type CSVImporter struct {
	reader   *csv.Reader
	zones    ZoneLookup
	products ProductLookup
	stock    StockWriter
}

func NewCSVImporter(r io.Reader, zones ZoneLookup, products ProductLookup, stock StockWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:   csvr,
		zones:    zones,
		products: products,
		stock:    stock,
	}
}

// Run parses CSV rows and upserts one stock entry per row. It stops at
// the first bad row so a partial import is visible in the count.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, required := range []string{"zone", "product", "stock"} {
		if _, ok := index[required]; !ok {
			return 0, fmt.Errorf("missing required column %q", required)
		}
	}

	zones, err := i.zones.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list zones: %w", err)
	}
	zoneBySlug := make(map[string]string, len(zones))
	for _, z := range zones {
		zoneBySlug[z.Slug] = z.ID
	}

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row %d: %w", line+1, err)
		}
		line++

		zoneSlug := pick(record, index, "zone")
		productSlug := pick(record, index, "product")
		stockStr := pick(record, index, "stock")
		if zoneSlug == "" && productSlug == "" {
			continue
		}

		zoneID, ok := zoneBySlug[zoneSlug]
		if !ok {
			return imported, fmt.Errorf("row %d: unknown zone %q", line, zoneSlug)
		}

		product, err := i.products.GetBySlug(ctx, productSlug)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return imported, fmt.Errorf("row %d: unknown product %q", line, productSlug)
			}
			return imported, fmt.Errorf("row %d: lookup product %q: %w", line, productSlug, err)
		}

		qty, err := strconv.Atoi(stockStr)
		if err != nil || qty < 0 {
			return imported, fmt.Errorf("row %d: invalid stock %q", line, stockStr)
		}

		if err := i.stock.UpsertStock(ctx, domain.ZoneStock{
			ZoneID:    zoneID,
			ProductID: product.ID,
			Stock:     qty,
		}); err != nil {
			return imported, fmt.Errorf("row %d: upsert stock: %w", line, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
