package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/palmwatch/millatlas/geojson"
	"github.com/palmwatch/millatlas/service"
	"github.com/palmwatch/millatlas/uml"
)

func testDataset() *uml.Dataset {
	return uml.Attach([]uml.Record{
		{ID: 0, Latitude: 3.5, Longitude: 98.6, Country: "Indonesia", ParentCompany: "Wilmar", RSPOStatus: uml.StatusCertified},
		{ID: 1, Latitude: -2.1, Longitude: 104.7, Country: "Indonesia", ParentCompany: "Unknown", RSPOStatus: uml.StatusNotCertified},
		{ID: 2, Latitude: 17.5, Longitude: -92.0, Country: "Mexico", ParentCompany: "Oleofinos", RSPOStatus: uml.StatusNotCertified},
		{ID: 3, Latitude: -9.4, Longitude: 160.0, Country: "Solomon Islands", ParentCompany: "GPPOL", RSPOStatus: "Pending"},
	})
}

func testWorld(t *testing.T) *geojson.FeatureCollection {
	t.Helper()
	world := `{
		"type": "FeatureCollection",
		"features": [{
			"type": "Feature",
			"properties": {},
			"geometry": {"type": "Polygon", "coordinates": [[[-180,-60],[-180,80],[180,80],[180,-60],[-180,-60]]]}
		}]
	}`
	path := filepath.Join(t.TempDir(), "world.geojson")
	if err := os.WriteFile(path, []byte(world), 0o644); err != nil {
		t.Fatalf("Failed to write world fixture: %v", err)
	}
	fc, err := geojson.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read world fixture: %v", err)
	}
	return &fc
}

func TestMills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mills.png")
	if err := Mills(testDataset(), nil, path); err != nil {
		t.Fatalf("Mills failed: %v", err)
	}
	assertPNG(t, path)
}

func TestMillsWithWorld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mills.png")
	if err := Mills(testDataset(), testWorld(t), path); err != nil {
		t.Fatalf("Mills with world layer failed: %v", err)
	}
	assertPNG(t, path)
}

func TestCertification(t *testing.T) {
	part := service.PartitionByCertification(testDataset())
	if part.CertifiedCount() != 1 || part.NotCertifiedCount() != 2 {
		t.Fatalf("Unexpected partition: %d/%d", part.CertifiedCount(), part.NotCertifiedCount())
	}

	path := filepath.Join(t.TempDir(), "certification.png")
	if err := Certification(part, nil, path); err != nil {
		t.Fatalf("Certification failed: %v", err)
	}
	assertPNG(t, path)
}

func TestCertificationEmptySubsets(t *testing.T) {
	// A dataset with only unrecognized statuses renders an empty map
	// rather than failing.
	part := service.PartitionByCertification(uml.Attach([]uml.Record{
		{ID: 0, Latitude: 1, Longitude: 1, RSPOStatus: "Pending"},
	}))

	path := filepath.Join(t.TempDir(), "empty.png")
	if err := Certification(part, nil, path); err != nil {
		t.Fatalf("Certification with empty subsets failed: %v", err)
	}
	assertPNG(t, path)
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected output at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Fatalf("Output %s is empty", path)
	}
}
