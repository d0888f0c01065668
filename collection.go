package records

// CRS84 identifies the geographic CRS used for collection extents.
const CRS84 = "http://www.opengis.net/def/crs/OGC/1.3/CRS84"

// Extent describes the coverage of a collection.
type Extent struct {
	Spatial *SpatialExtent `json:"spatial,omitempty"`
}

// SpatialExtent is a set of lon/lat bounding boxes.
type SpatialExtent struct {
	BBox [][]float64 `json:"bbox"`
	CRS  string      `json:"crs"`
}

// NewExtent builds a spatial extent from a single lon/lat bounding box.
func NewExtent(minX, minY, maxX, maxY float64) *Extent {
	return &Extent{
		Spatial: &SpatialExtent{
			BBox: [][]float64{{minX, minY, maxX, maxY}},
			CRS:  CRS84,
		},
	}
}

// AttributeSchema is the full attribute schema of a collection, resolved
// on demand from the catalog.
type AttributeSchema struct {
	Name       string      `json:"name"`
	Attributes []Attribute `json:"attributes"`
}

type Attribute struct {
	Name     string `json:"name"`
	Binding  string `json:"binding"`
	Nillable bool   `json:"nillable"`
}

// CollectionDocument describes one collection of the catalog. The field
// order below is the wire order.
type CollectionDocument struct {
	ID          string  `json:"id"`
	ItemType    string  `json:"itemType"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Extent      *Extent `json:"extent,omitempty"`
	LinkList    []Link  `json:"links"`

	mapPreviewURL string
	schema        func() *AttributeSchema
}

func (d *CollectionDocument) Links() []Link {
	return d.LinkList
}

func (d *CollectionDocument) AddLink(l Link) {
	d.LinkList = append(d.LinkList, l)
}

// MapPreviewURL points at a map rendering of the collection, or "" when no
// map capability is available. Not serialized.
func (d *CollectionDocument) MapPreviewURL() string {
	return d.mapPreviewURL
}

func (d *CollectionDocument) SetMapPreviewURL(u string) {
	d.mapPreviewURL = u
}

// Schema resolves the full attribute schema. Resolution may hit a backing
// store; a nil result means the schema is unavailable, never an error.
// Not serialized.
func (d *CollectionDocument) Schema() *AttributeSchema {
	if d.schema == nil {
		return nil
	}
	return d.schema()
}

func (d *CollectionDocument) SetSchemaFunc(fn func() *AttributeSchema) {
	d.schema = fn
}

// CollectionDecorator augments a freshly built collection document before
// it is yielded. Decorators run in registration order; an error fails the
// whole listing. Decorators must keep the document id and self link
// intact.
type CollectionDecorator func(*CollectionDocument) error
