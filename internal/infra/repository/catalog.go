package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/geostreams/records"
	"github.com/geostreams/records/internal/domain"
	"github.com/geostreams/records/internal/infra/database/models"
	"github.com/geostreams/records/internal/usecase"
)

// CatalogRepository serves feature-type metadata from Postgres.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// List opens a row cursor over all feature types, ordered by qualified
// name so listings are reproducible.
func (r *CatalogRepository) List(ctx context.Context) (usecase.CatalogCursor, error) {
	rows, err := r.db.WithContext(ctx).
		Model(&models.FeatureType{}).
		Order("namespace, name").
		Rows()
	if err != nil {
		return nil, err
	}
	return &catalogCursor{db: r.db, rows: rows}, nil
}

func (r *CatalogRepository) Find(ctx context.Context, qualifiedName string) (domain.FeatureType, error) {
	namespace, name := domain.SplitQualifiedName(qualifiedName)

	var m models.FeatureType
	err := r.db.WithContext(ctx).
		Where("namespace = ? AND name = ?", namespace, name).
		Take(&m).Error
	if err == gorm.ErrRecordNotFound {
		return domain.FeatureType{}, domain.NotFoundError{Resource: "feature type"}
	}
	if err != nil {
		return domain.FeatureType{}, err
	}

	return toDomain(m), nil
}

// ResolveSchema loads the full attribute schema of an entry.
func (r *CatalogRepository) ResolveSchema(ctx context.Context, qualifiedName string) (*records.AttributeSchema, error) {
	namespace, name := domain.SplitQualifiedName(qualifiedName)

	var m models.FeatureType
	err := r.db.WithContext(ctx).
		Where("namespace = ? AND name = ?", namespace, name).
		Take(&m).Error
	if err == gorm.ErrRecordNotFound {
		return nil, domain.NotFoundError{Resource: "feature type"}
	}
	if err != nil {
		return nil, err
	}

	var attributes []models.FeatureAttribute
	err = r.db.WithContext(ctx).
		Where("feature_type_id = ?", m.ID).
		Order("id").
		Find(&attributes).Error
	if err != nil {
		return nil, err
	}

	schema := &records.AttributeSchema{Name: qualifiedName}
	for _, a := range attributes {
		schema.Attributes = append(schema.Attributes, records.Attribute{
			Name:     a.Name,
			Binding:  a.Binding,
			Nillable: a.Nillable,
		})
	}
	return schema, nil
}

// catalogCursor wraps the underlying sql.Rows. Close releases the rows;
// the stream layer guarantees it runs exactly once.
type catalogCursor struct {
	db    *gorm.DB
	rows  *sql.Rows
	entry domain.FeatureType
	err   error
}

func (c *catalogCursor) Next() bool {
	if c.err != nil {
		return false
	}
	if !c.rows.Next() {
		c.err = c.rows.Err()
		return false
	}

	var m models.FeatureType
	if err := c.db.ScanRows(c.rows, &m); err != nil {
		c.err = err
		return false
	}
	c.entry = toDomain(m)
	return true
}

func (c *catalogCursor) Entry() domain.FeatureType {
	return c.entry
}

func (c *catalogCursor) Err() error {
	return c.err
}

func (c *catalogCursor) Close() error {
	return c.rows.Close()
}

func toDomain(m models.FeatureType) domain.FeatureType {
	ft := domain.FeatureType{
		Namespace: m.Namespace,
		Name:      m.Name,
		Title:     m.Title,
		Abstract:  m.Abstract,
		SRS:       m.SRS,
	}
	if m.MinX != nil && m.MinY != nil && m.MaxX != nil && m.MaxY != nil {
		ft.Bounds = &domain.Bounds{
			MinX: *m.MinX,
			MinY: *m.MinY,
			MaxX: *m.MaxX,
			MaxY: *m.MaxY,
		}
	}
	return ft
}
