package records

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

// sliceStream is a CollectionStream over a fixed set of documents,
// optionally failing at a given position.
type sliceStream struct {
	docs   []*CollectionDocument
	failAt int // -1 to never fail
	pos    int
	err    error
	closes int
}

func newSliceStream(failAt int, docs ...*CollectionDocument) *sliceStream {
	return &sliceStream{docs: docs, failAt: failAt, pos: -1}
}

func (s *sliceStream) Next() bool {
	if s.err != nil {
		return false
	}
	s.pos++
	if s.pos == s.failAt {
		s.err = errors.New("boom")
		s.closes++
		return false
	}
	return s.pos < len(s.docs)
}

func (s *sliceStream) Collection() *CollectionDocument { return s.docs[s.pos] }
func (s *sliceStream) Err() error                      { return s.err }
func (s *sliceStream) Close() error {
	s.closes++
	return nil
}

func TestCollectionsDocumentMarshalEmpty(t *testing.T) {
	req := testRequest(MediaTypeJSON)
	doc := NewCollectionsDocument(req, "ogc/records", newSliceStream(-1))

	body, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded struct {
		Links       []Link            `json:"links"`
		Collections []json.RawMessage `json:"collections"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if len(decoded.Collections) != 0 {
		t.Fatalf("expected an empty collections array got %d entries", len(decoded.Collections))
	}
	if !strings.Contains(string(body), `"collections":[]`) {
		t.Fatalf("expected collections to serialize as [], got %s", body)
	}
	if len(decoded.Links) != 2 {
		t.Fatalf("expected the listing self/alternate links to survive an empty catalog")
	}
}

func TestCollectionsDocumentSingleConsumption(t *testing.T) {
	req := testRequest(MediaTypeJSON)
	stream := newSliceStream(-1, &CollectionDocument{ID: "ne:countries", ItemType: "record"})
	doc := NewCollectionsDocument(req, "ogc/records", stream)

	collections, err := doc.Drain()
	if err != nil {
		t.Fatalf("drain failed: %v", err)
	}
	if len(collections) != 1 || collections[0].ID != "ne:countries" {
		t.Fatalf("unexpected drain result %+v", collections)
	}
	if stream.closes != 1 {
		t.Fatalf("expected the stream to be closed once, got %d", stream.closes)
	}

	if _, err := doc.Drain(); err == nil {
		t.Fatalf("expected a second consumption to fail")
	}
}

func TestCollectionsDocumentMarshalFailFast(t *testing.T) {
	req := testRequest(MediaTypeJSON)
	stream := newSliceStream(1,
		&CollectionDocument{ID: "a"},
		&CollectionDocument{ID: "b"},
		&CollectionDocument{ID: "c"},
	)
	doc := NewCollectionsDocument(req, "ogc/records", stream)

	_, err := json.Marshal(doc)
	if err == nil {
		t.Fatalf("expected marshalling to fail when the stream errors")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected the cause to surface, got %v", err)
	}
}

func TestCollectionDocumentSchemaUnavailable(t *testing.T) {
	doc := &CollectionDocument{ID: "ne:countries"}
	if doc.Schema() != nil {
		t.Fatalf("expected a nil schema when no resolver is set")
	}

	doc.SetSchemaFunc(func() *AttributeSchema { return nil })
	if doc.Schema() != nil {
		t.Fatalf("expected a nil schema when resolution degrades")
	}
}
