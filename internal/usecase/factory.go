package usecase

import (
	"context"
	"log/slog"

	"github.com/geostreams/records"
	"github.com/geostreams/records/internal/domain"
)

// CollectionFactory builds one collection document per catalog entry.
type CollectionFactory struct {
	schemas SchemaResolver
	service domain.ServiceInfo
	base    string
}

func NewCollectionFactory(schemas SchemaResolver, service domain.ServiceInfo, base string) *CollectionFactory {
	return &CollectionFactory{
		schemas: schemas,
		service: service,
		base:    base,
	}
}

// Build assembles the document for a single entry. Extent and schema
// degrade gracefully: a failure there is logged and the field omitted, so
// one misconfigured entry cannot break the listing of all others.
func (f *CollectionFactory) Build(ctx context.Context, req *records.APIRequest, ft domain.FeatureType) *records.CollectionDocument {
	id := ft.QualifiedName()
	doc := &records.CollectionDocument{
		ID:          id,
		ItemType:    "record",
		Title:       ft.Title,
		Description: ft.Abstract,
	}

	bounds, err := ft.LatLonBounds()
	if err != nil {
		slog.Info("failed to compute collection extent", "collection", id, "error", err)
	} else {
		doc.Extent = records.NewExtent(bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MaxY)
	}

	for _, mt := range req.Formats.Producible(records.KindItems) {
		href := req.BuildURL(f.base+"/collections/"+id+"/items", map[string]string{"f": mt})
		doc.AddLink(records.NewLink(href, records.RelItems, mt, id+" items as "+mt, "items"))
	}

	records.AddSelfLinks(doc, req, records.KindDocument, f.base+"/collections/"+id)

	if f.service.MapPreviewEnabled {
		doc.SetMapPreviewURL(req.BuildURL("wms/reflect", map[string]string{
			"LAYERS": id,
			"FORMAT": "application/openlayers",
		}))
	}

	schemas := f.schemas
	doc.SetSchemaFunc(func() *records.AttributeSchema {
		if schemas == nil {
			return nil
		}
		schema, err := schemas.ResolveSchema(ctx, id)
		if err != nil {
			slog.Info("failed to compute collection schema", "collection", id, "error", err)
			return nil
		}
		return schema
	})

	return doc
}
