package records

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// CollectionStream is a lazy, single-pass cursor of collection documents.
// Next pulls one entry from the underlying catalog; Err reports the
// terminal error after Next returns false. The underlying catalog cursor
// is closed exactly once, on exhaustion, on error, or through Close when
// iteration is abandoned early.
type CollectionStream interface {
	Next() bool
	Collection() *CollectionDocument
	Err() error
	Close() error
}

// CollectionsDocument is the collections listing. The collection documents
// are not materialized: the stream is drained exactly once, at
// serialization time.
type CollectionsDocument struct {
	LinkList []Link `json:"links"`

	stream   CollectionStream
	consumed bool
}

func NewCollectionsDocument(req *APIRequest, base string, stream CollectionStream) *CollectionsDocument {
	d := &CollectionsDocument{stream: stream}
	AddSelfLinks(d, req, KindDocument, base+"/collections/")
	return d
}

func (d *CollectionsDocument) Links() []Link {
	return d.LinkList
}

func (d *CollectionsDocument) AddLink(l Link) {
	d.LinkList = append(d.LinkList, l)
}

// Drain consumes the stream. A second call is an error: the stream is a
// one-shot cursor, not a reusable collection. On a stream error no partial
// result is returned and the underlying cursor is released.
func (d *CollectionsDocument) Drain() ([]*CollectionDocument, error) {
	if d.consumed {
		return nil, errors.New("collections stream already consumed")
	}
	d.consumed = true
	defer func() {
		_ = d.stream.Close()
	}()

	collections := []*CollectionDocument{}
	for d.stream.Next() {
		collections = append(collections, d.stream.Collection())
	}
	if err := d.stream.Err(); err != nil {
		return nil, err
	}
	return collections, nil
}

// MarshalJSON drains the stream. A failing entry fails the whole
// serialization, so callers buffering the output return an error response
// instead of a truncated listing.
func (d *CollectionsDocument) MarshalJSON() ([]byte, error) {
	collections, err := d.Drain()
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Links       []Link                `json:"links"`
		Collections []*CollectionDocument `json:"collections"`
	}{d.LinkList, collections})
}
