package domain

import (
	"fmt"
	"strings"
)

// FeatureType is one catalog entry describing a retrievable collection of
// spatial records.
type FeatureType struct {
	Namespace string
	Name      string
	Title     string
	Abstract  string

	// SRS identifies the CRS of Bounds. Bounds is nil when the catalog
	// holds no bounding box for the entry.
	SRS    string
	Bounds *Bounds
}

// Bounds is a bounding box in the axis order of its SRS.
type Bounds struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// QualifiedName returns the stable, namespace-qualified identifier of the
// entry. It is URL-safe without further encoding.
func (ft FeatureType) QualifiedName() string {
	if ft.Namespace == "" {
		return ft.Name
	}
	return ft.Namespace + ":" + ft.Name
}

// SplitQualifiedName is the inverse of QualifiedName.
func SplitQualifiedName(qualified string) (namespace, name string) {
	if i := strings.IndexByte(qualified, ':'); i >= 0 {
		return qualified[:i], qualified[i+1:]
	}
	return "", qualified
}

// LatLonBounds converts the native bounds into geographic lon/lat bounds.
// Only geographic SRSes are handled; anything else reports an error so the
// caller can omit the extent instead of serving a wrong one.
func (ft FeatureType) LatLonBounds() (*Bounds, error) {
	if ft.Bounds == nil {
		return nil, fmt.Errorf("no bounding box available")
	}
	switch ft.SRS {
	case "EPSG:4326", "CRS:84", "urn:ogc:def:crs:OGC:1.3:CRS84":
		return ft.Bounds, nil
	case "":
		return nil, fmt.Errorf("no CRS information available")
	default:
		return nil, fmt.Errorf("cannot transform bounds from %s", ft.SRS)
	}
}

// ServiceInfo is the service-level metadata exposed on the API surface.
type ServiceInfo struct {
	Title    string
	Abstract string
	// MapPreviewEnabled advertises a WMS endpoint registered alongside
	// the catalog.
	MapPreviewEnabled bool
}
