package usecase

import (
	"context"

	"github.com/pkg/errors"

	"github.com/geostreams/records"
)

// collectionStream adapts a catalog cursor into a stream of collection
// documents, applying decorators in registration order. The first factory
// or decorator error terminates iteration: the cursor is closed, the error
// surfaces through Err, and no further elements are produced.
type collectionStream struct {
	ctx        context.Context
	cursor     CatalogCursor
	factory    *CollectionFactory
	req        *records.APIRequest
	decorators []records.CollectionDecorator

	current *records.CollectionDocument
	err     error
	closed  bool
	done    bool
}

func newCollectionStream(
	ctx context.Context,
	cursor CatalogCursor,
	factory *CollectionFactory,
	req *records.APIRequest,
	decorators []records.CollectionDecorator,
) *collectionStream {
	return &collectionStream{
		ctx:        ctx,
		cursor:     cursor,
		factory:    factory,
		req:        req,
		decorators: decorators,
	}
}

func (s *collectionStream) Next() bool {
	if s.err != nil || s.done {
		return false
	}

	if !s.cursor.Next() {
		if err := s.cursor.Err(); err != nil {
			s.fail(err)
			return false
		}
		s.done = true
		s.closeCursor()
		return false
	}

	doc := s.factory.Build(s.ctx, s.req, s.cursor.Entry())
	for _, decorate := range s.decorators {
		if err := decorate(doc); err != nil {
			s.fail(err)
			return false
		}
	}

	s.current = doc
	return true
}

func (s *collectionStream) Collection() *records.CollectionDocument {
	return s.current
}

func (s *collectionStream) Err() error {
	return s.err
}

// Close releases the underlying cursor. Safe to call after exhaustion or
// an error, when the cursor is already released; the release itself
// happens exactly once.
func (s *collectionStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.cursor.Close()
}

func (s *collectionStream) fail(err error) {
	s.err = errors.Wrap(err, "failed to iterate over the feature types in the catalog")
	s.current = nil
	s.closeCursor()
}

func (s *collectionStream) closeCursor() {
	if s.closed {
		return
	}
	s.closed = true
	if cerr := s.cursor.Close(); cerr != nil && s.err == nil {
		s.err = errors.Wrap(cerr, "failed to close the catalog cursor")
	}
}
