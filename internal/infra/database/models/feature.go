package models

import "time"

// FeatureType is the persisted catalog entry for one collection.
type FeatureType struct {
	ID        uint   `gorm:"primarykey"`
	Namespace string `gorm:"uniqueIndex:idx_feature_qname"`
	Name      string `gorm:"uniqueIndex:idx_feature_qname"`
	Title     string
	Abstract  string

	// Bounding box in the axis order of SRS; all four must be set for the
	// box to count.
	SRS  string
	MinX *float64
	MinY *float64
	MaxX *float64
	MaxY *float64

	CDate time.Time `gorm:"autoCreateTime"`
}

// FeatureAttribute is one attribute of a feature type schema.
type FeatureAttribute struct {
	ID            uint `gorm:"primarykey"`
	FeatureTypeID uint `gorm:"index"`
	Name          string
	Binding       string
	Nillable      bool
}
