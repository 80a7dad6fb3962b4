package uml

import (
	"github.com/twpayne/go-geom"
)

// Dataset is the geo-enabled view over the mill records: every record
// paired with its derived point geometry. The dataset is loaded once
// and never mutated, queries treat it as read-only.
type Dataset struct {
	records []Record
	points  []*geom.Point
}

// Attach builds the dataset from loaded records, constructing one
// WGS84 point per record. Coordinates are taken as-is, there is no
// range validation.
func Attach(records []Record) *Dataset {
	points := make([]*geom.Point, len(records))
	for i, rec := range records {
		points[i] = rec.Point()
	}
	return &Dataset{records: records, points: points}
}

// Records returns all records in source order.
func (ds *Dataset) Records() []Record {
	return ds.records
}

// Points returns the attached geometries, index-aligned with Records.
func (ds *Dataset) Points() []*geom.Point {
	return ds.points
}

// Len returns the number of records.
func (ds *Dataset) Len() int {
	return len(ds.records)
}
