// Package uml loads the Universal Mill List and attaches point
// geometries to its records.
package uml

import (
	"github.com/twpayne/go-geom"
)

// Columns the loader requires in the source file. The UML carries more
// columns, everything else is ignored.
const (
	ColLatitude  = "Latitude"
	ColLongitude = "Longitude"
	ColCountry   = "Country"
	ColParent    = "Parent_Com"
	ColStatus    = "RSPO_STATU"
)

// Recognized RSPO_STATU values. The column is an open string set,
// records carrying any other value match neither partition.
const (
	StatusCertified    = "RSPO Certified"
	StatusNotCertified = "Not RSPO Certified"
)

// SRID of the UML coordinates (WGS84).
const SRID = 4326

// Record is a single palm oil mill. ID is the zero-based row index in
// the source file.
type Record struct {
	ID            int
	Latitude      float64
	Longitude     float64
	Country       string
	ParentCompany string
	// ParentMissing marks an empty Parent_Com cell, distinct from the
	// literal "Unknown"/"unknown" values the dataset uses.
	ParentMissing bool
	RSPOStatus    string
}

// Certified reports whether the record carries the exact certified
// status value.
func (r Record) Certified() bool {
	return r.RSPOStatus == StatusCertified
}

// NotCertified reports whether the record carries the exact
// not-certified status value.
func (r Record) NotCertified() bool {
	return r.RSPOStatus == StatusNotCertified
}

// Point builds the WGS84 point geometry for the record. The geometry
// is derived, callers recompute it from the record instead of
// mutating a stored copy.
func (r Record) Point() *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{r.Longitude, r.Latitude}).SetSRID(SRID)
}
