package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/geostreams/records"
	"github.com/geostreams/records/internal/domain"
)

// --- mocks ---

type mockCursor struct {
	entries []domain.FeatureType
	pos     int
	scanErr error // reported by Err once the cursor is exhausted
	closes  int
}

func newMockCursor(entries ...domain.FeatureType) *mockCursor {
	return &mockCursor{entries: entries, pos: -1}
}

func (c *mockCursor) Next() bool {
	c.pos++
	return c.pos < len(c.entries)
}

func (c *mockCursor) Entry() domain.FeatureType { return c.entries[c.pos] }
func (c *mockCursor) Err() error                { return c.scanErr }
func (c *mockCursor) Close() error {
	c.closes++
	return nil
}

type mockCatalog struct {
	entries []domain.FeatureType
	listErr error
	cursor  *mockCursor
}

func (m *mockCatalog) List(ctx context.Context) (CatalogCursor, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.cursor = newMockCursor(m.entries...)
	return m.cursor, nil
}

func (m *mockCatalog) Find(ctx context.Context, qualifiedName string) (domain.FeatureType, error) {
	for _, ft := range m.entries {
		if ft.QualifiedName() == qualifiedName {
			return ft, nil
		}
	}
	return domain.FeatureType{}, domain.NotFoundError{Resource: "feature type"}
}

type mockSchemas struct {
	schema *records.AttributeSchema
	err    error
	calls  int
}

func (m *mockSchemas) ResolveSchema(ctx context.Context, qualifiedName string) (*records.AttributeSchema, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.schema, nil
}

func bounds(minX, minY, maxX, maxY float64) *domain.Bounds {
	return &domain.Bounds{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

func countries() domain.FeatureType {
	return domain.FeatureType{
		Namespace: "ne",
		Name:      "countries",
		Title:     "Countries",
		Abstract:  "Country boundaries",
		SRS:       "EPSG:4326",
		Bounds:    bounds(-180, -90, 180, 90),
	}
}

func testStream(catalog *mockCatalog, decorators ...records.CollectionDecorator) (*collectionStream, *mockCursor) {
	cursor, _ := catalog.List(context.Background())
	factory := NewCollectionFactory(&mockSchemas{}, domain.ServiceInfo{}, "ogc/records")
	req := &records.APIRequest{
		BaseURL: "http://localhost:8000",
		Format:  records.MediaTypeJSON,
		Formats: records.NewFormatRegistry(),
	}
	return newCollectionStream(context.Background(), cursor, factory, req, decorators), catalog.cursor
}

// --- tests ---

func TestStreamDrainClosesCursorOnce(t *testing.T) {
	catalog := &mockCatalog{entries: []domain.FeatureType{
		countries(),
		{Namespace: "ne", Name: "lakes", SRS: "EPSG:4326", Bounds: bounds(-180, -90, 180, 90)},
	}}
	stream, cursor := testStream(catalog)

	var ids []string
	for stream.Next() {
		ids = append(ids, stream.Collection().ID)
	}
	if err := stream.Err(); err != nil {
		t.Fatalf("unexpected stream error: %v", err)
	}

	if len(ids) != 2 || ids[0] != "ne:countries" || ids[1] != "ne:lakes" {
		t.Fatalf("unexpected ids %v", ids)
	}
	if cursor.closes != 1 {
		t.Fatalf("expected the cursor to be closed exactly once, got %d", cursor.closes)
	}

	// redundant Close after exhaustion must not reach the cursor again
	if err := stream.Close(); err != nil {
		t.Fatalf("close after drain failed: %v", err)
	}
	if cursor.closes != 1 {
		t.Fatalf("cursor closed twice")
	}
}

func TestStreamEarlyCloseReleasesCursor(t *testing.T) {
	catalog := &mockCatalog{entries: []domain.FeatureType{countries()}}
	stream, cursor := testStream(catalog)

	if !stream.Next() {
		t.Fatalf("expected a first element")
	}
	if err := stream.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if cursor.closes != 1 {
		t.Fatalf("expected the abandoned cursor to be released, got %d closes", cursor.closes)
	}
}

func TestStreamCursorErrorFailsListing(t *testing.T) {
	catalog := &mockCatalog{entries: []domain.FeatureType{countries()}}
	stream, cursor := testStream(catalog)
	cursor.scanErr = fmt.Errorf("connection reset")

	for stream.Next() {
	}

	err := stream.Err()
	if err == nil {
		t.Fatalf("expected a terminal error")
	}
	if !strings.Contains(err.Error(), "failed to iterate over the feature types in the catalog") {
		t.Fatalf("expected a wrapped iteration error, got %v", err)
	}
	if cursor.closes != 1 {
		t.Fatalf("expected the cursor to be closed exactly once, got %d", cursor.closes)
	}
	if stream.Next() {
		t.Fatalf("expected no further elements after a terminal error")
	}
}

func TestStreamDecoratorOrderComposes(t *testing.T) {
	catalog := &mockCatalog{entries: []domain.FeatureType{countries()}}

	first := func(doc *records.CollectionDocument) error {
		doc.Title = "decorated"
		return nil
	}
	second := func(doc *records.CollectionDocument) error {
		// second must observe the first decorator's mutation
		doc.Description = doc.Title + " twice"
		return nil
	}

	stream, _ := testStream(catalog, first, second)
	if !stream.Next() {
		t.Fatalf("expected one element, got error %v", stream.Err())
	}

	doc := stream.Collection()
	if doc.Title != "decorated" || doc.Description != "decorated twice" {
		t.Fatalf("decorators did not compose in order: %+v", doc)
	}
}

func TestStreamDecoratorErrorFailsFast(t *testing.T) {
	catalog := &mockCatalog{entries: []domain.FeatureType{
		{Namespace: "ne", Name: "a"},
		{Namespace: "ne", Name: "b"},
		{Namespace: "ne", Name: "c"},
	}}

	seen := 0
	failing := func(doc *records.CollectionDocument) error {
		seen++
		if seen == 2 {
			return fmt.Errorf("decorator blew up")
		}
		return nil
	}

	stream, cursor := testStream(catalog, failing)

	var yielded int
	for stream.Next() {
		yielded++
	}

	if yielded != 1 {
		t.Fatalf("expected iteration to stop at the failing entry, yielded %d", yielded)
	}
	err := stream.Err()
	if err == nil || !strings.Contains(err.Error(), "decorator blew up") {
		t.Fatalf("expected the decorator error to surface, got %v", err)
	}
	if cursor.closes != 1 {
		t.Fatalf("expected the cursor to be closed exactly once, got %d", cursor.closes)
	}
}

func TestStreamEmptyCatalog(t *testing.T) {
	catalog := &mockCatalog{}
	stream, cursor := testStream(catalog)

	if stream.Next() {
		t.Fatalf("expected no elements")
	}
	if err := stream.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cursor.closes != 1 {
		t.Fatalf("expected the cursor to be closed, got %d closes", cursor.closes)
	}
}
