package usecase

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/geostreams/records"
	"github.com/geostreams/records/internal/domain"
)

var tracer = otel.Tracer("records")

// RecordsUsecase is the service facade: it dispatches API operations to
// the catalog and the document builders. Every operation is a pure
// function of the request and the catalog snapshot.
type RecordsUsecase struct {
	catalog CatalogRepository
	factory *CollectionFactory
	service domain.ServiceInfo
	base    string
}

func NewRecordsUsecase(catalog CatalogRepository, schemas SchemaResolver, service domain.ServiceInfo, base string) *RecordsUsecase {
	return &RecordsUsecase{
		catalog: catalog,
		factory: NewCollectionFactory(schemas, service, base),
		service: service,
		base:    base,
	}
}

func (uc *RecordsUsecase) LandingPage(req *records.APIRequest) *records.LandingPage {
	return records.NewLandingPage(req, uc.service.Title, uc.service.Abstract, uc.base)
}

func (uc *RecordsUsecase) Conformance(req *records.APIRequest) *records.ConformanceDocument {
	return records.NewConformanceDocument(req, uc.base)
}

func (uc *RecordsUsecase) API(req *records.APIRequest) (*records.OpenAPIDocument, error) {
	return records.BuildAPI(uc.service.Title, uc.service.Abstract, req.Formats)
}

// Collections opens a catalog cursor and wraps it into a listing document.
// The entries are pulled lazily while the document is serialized; the
// decorators run on every produced collection, in order.
func (uc *RecordsUsecase) Collections(ctx context.Context, req *records.APIRequest, decorators ...records.CollectionDecorator) (*records.CollectionsDocument, error) {
	ctx, span := tracer.Start(ctx, "Records.Usecase.Collections")
	defer span.End()

	cursor, err := uc.catalog.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to list the feature types in the catalog")
	}

	stream := newCollectionStream(ctx, cursor, uc.factory, req, decorators)
	return records.NewCollectionsDocument(req, uc.base, stream), nil
}

// Collection describes a single collection. An unknown id surfaces as an
// invalid-parameter error naming collectionId.
func (uc *RecordsUsecase) Collection(ctx context.Context, req *records.APIRequest, collectionID string) (*records.CollectionDocument, error) {
	ctx, span := tracer.Start(ctx, "Records.Usecase.Collection")
	defer span.End()

	ft, err := uc.catalog.Find(ctx, collectionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.InvalidParameterError{
				Parameter: "collectionId",
				Message:   "Unknown collection " + collectionID,
			}
		}
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to look up the collection in the catalog")
	}

	return uc.factory.Build(ctx, req, ft), nil
}
