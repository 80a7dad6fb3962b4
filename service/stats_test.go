package service

import (
	"reflect"
	"testing"

	"github.com/palmwatch/millatlas/uml"
)

// testDataset mirrors the fixture CSV in the uml package: 12 mills,
// Indonesia on top, four unknown parents (one missing cell, three
// literals), a 4/6 certification split with two unrecognized
// statuses.
func testDataset() *uml.Dataset {
	records := []uml.Record{
		{ID: 0, Latitude: 3.5, Longitude: 98.6, Country: "Indonesia", ParentCompany: "Wilmar", RSPOStatus: uml.StatusCertified},
		{ID: 1, Latitude: -2.1, Longitude: 104.7, Country: "Indonesia", ParentCompany: "Unknown", RSPOStatus: uml.StatusNotCertified},
		{ID: 2, Latitude: 1.2, Longitude: 101.4, Country: "Indonesia", ParentCompany: "unknown", RSPOStatus: uml.StatusNotCertified},
		{ID: 3, Latitude: 0.5, Longitude: 109.3, Country: "Indonesia", ParentCompany: "Sime Darby", RSPOStatus: uml.StatusCertified},
		{ID: 4, Latitude: -6.9, Longitude: 107.6, Country: "Indonesia", ParentCompany: "Wilmar", RSPOStatus: uml.StatusNotCertified},
		{ID: 5, Latitude: 4.2, Longitude: 117.9, Country: "Malaysia", ParentCompany: "Sime Darby", RSPOStatus: uml.StatusCertified},
		{ID: 6, Latitude: 2.9, Longitude: 101.7, Country: "Malaysia", ParentCompany: "IOI Group", RSPOStatus: uml.StatusNotCertified},
		{ID: 7, Latitude: 5.4, Longitude: 100.3, Country: "Malaysia", ParentCompany: "Unknown", RSPOStatus: uml.StatusNotCertified},
		{ID: 8, Latitude: 17.5, Longitude: -92.0, Country: "Mexico", ParentMissing: true, RSPOStatus: uml.StatusNotCertified},
		{ID: 9, Latitude: -9.4, Longitude: 160.0, Country: "Solomon Islands", ParentCompany: "GPPOL", RSPOStatus: uml.StatusCertified},
		{ID: 10, Latitude: 7.1, Longitude: 125.6, Country: "Philippines", ParentCompany: "Univanich", RSPOStatus: ""},
		{ID: 11, Latitude: 15.9, Longitude: 108.1, Country: "Vietnam", ParentCompany: "Wilmar", RSPOStatus: "Pending"},
	}
	return uml.Attach(records)
}

func TestRowCount(t *testing.T) {
	ds := testDataset()
	if got := RowCount(ds); got != 12 {
		t.Errorf("Expected row count 12, got %d", got)
	}
}

func TestSpatialExtent(t *testing.T) {
	ds := testDataset()
	extent, err := SpatialExtent(ds)
	if err != nil {
		t.Fatalf("SpatialExtent failed: %v", err)
	}

	if extent.Upper.Longitude != 160.0 || extent.Upper.Latitude != 17.5 {
		t.Errorf("Unexpected upper corner: %+v", extent.Upper)
	}
	if extent.Lower.Longitude != -92.0 || extent.Lower.Latitude != -9.4 {
		t.Errorf("Unexpected lower corner: %+v", extent.Lower)
	}

	// Bounding box containment: every record lies inside the extent.
	for _, rec := range ds.Records() {
		if rec.Longitude > extent.Upper.Longitude || rec.Longitude < extent.Lower.Longitude {
			t.Errorf("Record %d longitude %f outside extent", rec.ID, rec.Longitude)
		}
		if rec.Latitude > extent.Upper.Latitude || rec.Latitude < extent.Lower.Latitude {
			t.Errorf("Record %d latitude %f outside extent", rec.ID, rec.Latitude)
		}
	}
}

func TestSpatialExtentEmpty(t *testing.T) {
	if _, err := SpatialExtent(uml.Attach(nil)); err == nil {
		t.Fatal("Expected an error for an empty dataset")
	}
}

func TestUnknownParentCount(t *testing.T) {
	ds := testDataset()
	unknown := UnknownParentCount(ds)

	if unknown.Null != 1 {
		t.Errorf("Expected 1 null parent, got %d", unknown.Null)
	}
	if unknown.Literal != 3 {
		t.Errorf("Expected 3 literal unknowns, got %d", unknown.Literal)
	}
	if unknown.Total != 4 {
		t.Errorf("Expected 4 unknown parents in total, got %d", unknown.Total)
	}

	// Every counted literal is exactly one of the two spellings.
	count := 0
	for _, rec := range ds.Records() {
		if rec.ParentCompany == "Unknown" || rec.ParentCompany == "unknown" {
			count++
		}
	}
	if count != unknown.Literal {
		t.Errorf("Literal count %d does not match the records, expected %d", unknown.Literal, count)
	}
}

func TestCountryWithMostMills(t *testing.T) {
	ds := testDataset()
	top, table, err := CountryWithMostMills(ds)
	if err != nil {
		t.Fatalf("CountryWithMostMills failed: %v", err)
	}

	if top.Country != "Indonesia" || top.Count != 5 {
		t.Errorf("Expected Indonesia with 5 mills, got %s with %d", top.Country, top.Count)
	}

	// Maximality: the top count is >= every other count, and the
	// table is sorted descending.
	for i, cc := range table {
		if cc.Count > top.Count {
			t.Errorf("Country %s has count %d above the top count %d", cc.Country, cc.Count, top.Count)
		}
		if i > 0 && table[i-1].Count < cc.Count {
			t.Errorf("Frequency table not sorted at index %d", i)
		}
	}
}

func TestCountryCountsTieOrder(t *testing.T) {
	// Mexico appears before Vietnam in the dataset; both have one
	// mill, so Mexico must come first among the singletons.
	table := CountryCounts(testDataset())

	posMexico, posVietnam := -1, -1
	for i, cc := range table {
		switch cc.Country {
		case "Mexico":
			posMexico = i
		case "Vietnam":
			posVietnam = i
		}
	}
	if posMexico == -1 || posVietnam == -1 {
		t.Fatal("Expected Mexico and Vietnam in the frequency table")
	}
	if posMexico > posVietnam {
		t.Errorf("Tie order not first-encountered: Mexico at %d, Vietnam at %d", posMexico, posVietnam)
	}
}

func TestQueriesIdempotent(t *testing.T) {
	ds := testDataset()

	first := CountryCounts(ds)
	firstExtent, _ := SpatialExtent(ds)
	firstUnknown := UnknownParentCount(ds)

	second := CountryCounts(ds)
	secondExtent, _ := SpatialExtent(ds)
	secondUnknown := UnknownParentCount(ds)

	if !reflect.DeepEqual(first, second) {
		t.Error("CountryCounts changed between runs")
	}
	if firstExtent != secondExtent {
		t.Error("SpatialExtent changed between runs")
	}
	if firstUnknown != secondUnknown {
		t.Error("UnknownParentCount changed between runs")
	}
}
