package usecase

import (
	"context"

	"github.com/geostreams/records"
	"github.com/geostreams/records/internal/domain"
)

// CatalogCursor is a scoped forward cursor over catalog entries, opened by
// CatalogRepository.List. Close must be invoked exactly once on every exit
// path; implementations follow the database/sql Rows contract.
type CatalogCursor interface {
	Next() bool
	Entry() domain.FeatureType
	Err() error
	Close() error
}

// CatalogRepository is the external catalog owning feature-type metadata.
// It is read-only from this service's point of view.
type CatalogRepository interface {
	// List opens a cursor over all feature-type entries, ordered by
	// qualified name.
	List(ctx context.Context) (CatalogCursor, error)
	// Find returns the entry with the given qualified name, or
	// domain.NotFoundError when absent.
	Find(ctx context.Context, qualifiedName string) (domain.FeatureType, error)
}

// SchemaResolver resolves the full attribute schema of a catalog entry.
// Resolution may hit a backing store and fail.
type SchemaResolver interface {
	ResolveSchema(ctx context.Context, qualifiedName string) (*records.AttributeSchema, error)
}
