package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/geostreams/records"
	"github.com/geostreams/records/internal/infra/cache"
	"github.com/geostreams/records/internal/usecase"
)

// SchemaGateway resolves attribute schemas through the catalog with a
// cache in front. Resolution failures pass through to the caller, which
// treats the schema as unavailable.
type SchemaGateway struct {
	resolver usecase.SchemaResolver
	cache    cache.Cache
	ttl      time.Duration
}

func NewSchemaGateway(resolver usecase.SchemaResolver, c cache.Cache, ttl time.Duration) *SchemaGateway {
	return &SchemaGateway{
		resolver: resolver,
		cache:    c,
		ttl:      ttl,
	}
}

func (g *SchemaGateway) ResolveSchema(ctx context.Context, qualifiedName string) (*records.AttributeSchema, error) {
	key := "schema:" + qualifiedName

	if cached, ok := g.cache.Get(ctx, key); ok {
		var schema records.AttributeSchema
		if err := json.Unmarshal(cached, &schema); err == nil {
			return &schema, nil
		}
	}

	schema, err := g.resolver.ResolveSchema(ctx, qualifiedName)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(schema); err == nil {
		g.cache.Set(ctx, key, encoded, g.ttl)
	}
	return schema, nil
}
