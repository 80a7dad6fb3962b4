// Package geojson holds the GeoJSON structures used by the API and
// the world-boundary base layer of the static renderer.
package geojson

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/palmwatch/millatlas/uml"
)

// FeatureCollection follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single geographic feature with geometry and properties.
type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   Geometry               `json:"geometry"`
}

// Geometry is the geometry of a feature. Coordinates is kept raw so
// the same struct covers Point, LineString, Polygon and their Multi
// variants.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// FromRecords builds a FeatureCollection of point features, one per
// mill. Coordinates are [longitude, latitude] per the GeoJSON spec.
// Records whose coordinates cannot be represented in JSON (NaN or
// infinity) are skipped with a log entry.
func FromRecords(records []uml.Record) FeatureCollection {
	features := make([]Feature, 0, len(records))
	for _, rec := range records {
		coords, err := json.Marshal([]float64{rec.Longitude, rec.Latitude})
		if err != nil {
			log.Errorf("Failed to encode coordinates of record %d: %v", rec.ID, err)
			continue
		}
		features = append(features, Feature{
			Type: "Feature",
			Properties: map[string]interface{}{
				"id":         rec.ID,
				"country":    rec.Country,
				"parentCom":  rec.ParentCompany,
				"rspoStatus": rec.RSPOStatus,
			},
			Geometry: Geometry{Type: "Point", Coordinates: coords},
		})
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}

// ReadFile parses a GeoJSON FeatureCollection from disk. Used for the
// world-boundary base layer.
func ReadFile(path string) (FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FeatureCollection{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return FeatureCollection{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return fc, nil
}

// Rings extracts the outer coordinate rings of every Polygon and
// MultiPolygon feature, plus LineString paths, as flat [lon lat]
// sequences. This is what the static renderer draws as boundary
// lines.
func (fc FeatureCollection) Rings() [][][]float64 {
	var rings [][][]float64
	for _, f := range fc.Features {
		switch f.Geometry.Type {
		case "Polygon":
			var poly [][][]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &poly); err == nil {
				rings = append(rings, poly...)
			}
		case "MultiPolygon":
			var multi [][][][]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &multi); err == nil {
				for _, poly := range multi {
					rings = append(rings, poly...)
				}
			}
		case "LineString":
			var line [][]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &line); err == nil {
				rings = append(rings, line)
			}
		}
	}
	return rings
}
