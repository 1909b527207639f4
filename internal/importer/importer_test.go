package importer

import (
	"context"
	"strings"
	"testing"

	"podshop/internal/domain"
)

type stubZones struct {
	zones []domain.Zone
}

func (s *stubZones) ListActive(_ context.Context) ([]domain.Zone, error) {
	return s.zones, nil
}

type stubProducts struct {
	bySlug map[string]*domain.Product
}

func (s *stubProducts) GetBySlug(_ context.Context, slug string) (*domain.Product, error) {
	p, ok := s.bySlug[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

type stubStockWriter struct {
	upserts []domain.ZoneStock
	err     error
}

func (s *stubStockWriter) UpsertStock(_ context.Context, stock domain.ZoneStock) error {
	if s.err != nil {
		return s.err
	}
	s.upserts = append(s.upserts, stock)
	return nil
}

func fixtures() (*stubZones, *stubProducts, *stubStockWriter) {
	zones := &stubZones{zones: []domain.Zone{
		{ID: "z-1", Slug: "centro", Name: "Centro"},
		{ID: "z-2", Slug: "zona-norte", Name: "Zona Norte"},
	}}
	products := &stubProducts{bySlug: map[string]*domain.Product{
		"pod-uva-ice":    {ID: "p-1", Slug: "pod-uva-ice"},
		"juice-menta-30": {ID: "p-2", Slug: "juice-menta-30"},
	}}
	return zones, products, &stubStockWriter{}
}

func TestCSVImporterRun(t *testing.T) {
	zones, products, writer := fixtures()
	csv := strings.Join([]string{
		"zone,product,stock",
		"centro,pod-uva-ice,12",
		"centro,juice-menta-30,0",
		"zona-norte,pod-uva-ice,4",
		"",
	}, "\n")

	imp := NewCSVImporter(strings.NewReader(csv), zones, products, writer)
	n, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 3 {
		t.Fatalf("imported = %d, want 3", n)
	}
	if len(writer.upserts) != 3 {
		t.Fatalf("upserts = %d, want 3", len(writer.upserts))
	}
	first := writer.upserts[0]
	if first.ZoneID != "z-1" || first.ProductID != "p-1" || first.Stock != 12 {
		t.Fatalf("unexpected first upsert: %+v", first)
	}
	third := writer.upserts[2]
	if third.ZoneID != "z-2" || third.Stock != 4 {
		t.Fatalf("unexpected third upsert: %+v", third)
	}
}

func TestCSVImporterHeaderCaseInsensitive(t *testing.T) {
	zones, products, writer := fixtures()
	csv := "Zone,Product,Stock\ncentro,pod-uva-ice,7\n"

	imp := NewCSVImporter(strings.NewReader(csv), zones, products, writer)
	n, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 1 {
		t.Fatalf("imported = %d, want 1", n)
	}
}

func TestCSVImporterMissingColumn(t *testing.T) {
	zones, products, writer := fixtures()
	imp := NewCSVImporter(strings.NewReader("zone,product\ncentro,pod-uva-ice\n"), zones, products, writer)
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("expected error for missing stock column")
	}
}

func TestCSVImporterUnknownZone(t *testing.T) {
	zones, products, writer := fixtures()
	csv := "zone,product,stock\ncentro,pod-uva-ice,5\nsul,pod-uva-ice,5\n"

	imp := NewCSVImporter(strings.NewReader(csv), zones, products, writer)
	n, err := imp.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for unknown zone")
	}
	if n != 1 {
		t.Fatalf("imported before failure = %d, want 1", n)
	}
}

func TestCSVImporterUnknownProduct(t *testing.T) {
	zones, products, writer := fixtures()
	csv := "zone,product,stock\ncentro,pod-morango,5\n"

	imp := NewCSVImporter(strings.NewReader(csv), zones, products, writer)
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("expected error for unknown product")
	}
	if len(writer.upserts) != 0 {
		t.Fatalf("upserts = %d, want 0", len(writer.upserts))
	}
}

func TestCSVImporterInvalidStock(t *testing.T) {
	zones, products, writer := fixtures()
	for _, bad := range []string{"abc", "-3", ""} {
		csv := "zone,product,stock\ncentro,pod-uva-ice," + bad + "\n"
		imp := NewCSVImporter(strings.NewReader(csv), zones, products, writer)
		if _, err := imp.Run(context.Background()); err == nil {
			t.Fatalf("expected error for stock %q", bad)
		}
	}
}
