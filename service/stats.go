// Package service implements the analytical queries over a loaded
// Universal Mill List dataset. Every function is stateless and leaves
// the dataset untouched.
package service

import (
	"fmt"
	"sort"

	"github.com/palmwatch/millatlas/uml"
)

// Corner is one corner of the axis-aligned bounding box.
type Corner struct {
	Longitude float64 `json:"longitude" doc:"Longitude of the corner"`
	Latitude  float64 `json:"latitude" doc:"Latitude of the corner"`
}

// Extent is the spatial extent of the dataset: the upper corner holds
// the elementwise maxima of longitude and latitude, the lower corner
// the minima.
type Extent struct {
	Upper Corner `json:"upper" doc:"Max longitude and max latitude over all records"`
	Lower Corner `json:"lower" doc:"Min longitude and min latitude over all records"`
}

// CountryCount is one row of the per-country frequency table.
type CountryCount struct {
	Country string `json:"country" doc:"Country name as it appears in the dataset"`
	Count   int    `json:"count" doc:"Number of mills in the country"`
}

// UnknownParent is the result of the unknown-parent-company query.
// Null and literal counts are reported separately: the source dataset
// has no null Parent_Com cells, but the null check is part of the
// query and stays observable.
type UnknownParent struct {
	Null    int `json:"null" doc:"Records with an empty Parent_Com cell"`
	Literal int `json:"literal" doc:"Records with Parent_Com exactly 'Unknown' or 'unknown'"`
	Total   int `json:"total" doc:"Null plus literal"`
}

// RowCount returns the number of records in the dataset.
func RowCount(ds *uml.Dataset) int {
	return ds.Len()
}

// SpatialExtent computes the bounding box corners of the dataset.
// The extent of an empty dataset is undefined and returns an error.
func SpatialExtent(ds *uml.Dataset) (Extent, error) {
	records := ds.Records()
	if len(records) == 0 {
		return Extent{}, fmt.Errorf("spatial extent undefined for an empty dataset")
	}

	ext := Extent{
		Upper: Corner{Longitude: records[0].Longitude, Latitude: records[0].Latitude},
		Lower: Corner{Longitude: records[0].Longitude, Latitude: records[0].Latitude},
	}
	for _, rec := range records[1:] {
		if rec.Longitude > ext.Upper.Longitude {
			ext.Upper.Longitude = rec.Longitude
		}
		if rec.Latitude > ext.Upper.Latitude {
			ext.Upper.Latitude = rec.Latitude
		}
		if rec.Longitude < ext.Lower.Longitude {
			ext.Lower.Longitude = rec.Longitude
		}
		if rec.Latitude < ext.Lower.Latitude {
			ext.Lower.Latitude = rec.Latitude
		}
	}

	return ext, nil
}

// UnknownParentCount counts the mills without a known parent company.
// Missing cells are counted first, then the two literal spellings
// used by the dataset. The comparison is case-sensitive on exactly
// those two variants.
func UnknownParentCount(ds *uml.Dataset) UnknownParent {
	var result UnknownParent
	for _, rec := range ds.Records() {
		if rec.ParentMissing {
			result.Null++
			continue
		}
		if rec.ParentCompany == "Unknown" || rec.ParentCompany == "unknown" {
			result.Literal++
		}
	}
	result.Total = result.Null + result.Literal
	return result
}

// CountryCounts returns the full per-country frequency table sorted
// descending by count. Ties keep first-encountered order, so repeated
// runs over the same dataset return the same table.
func CountryCounts(ds *uml.Dataset) []CountryCount {
	counts := make(map[string]int)
	order := make(map[string]int)
	for _, rec := range ds.Records() {
		if _, seen := counts[rec.Country]; !seen {
			order[rec.Country] = len(order)
		}
		counts[rec.Country]++
	}

	table := make([]CountryCount, 0, len(counts))
	for country, count := range counts {
		table = append(table, CountryCount{Country: country, Count: count})
	}
	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Count != table[j].Count {
			return table[i].Count > table[j].Count
		}
		return order[table[i].Country] < order[table[j].Country]
	})

	return table
}

// CountryWithMostMills returns the mode of the Country column along
// with the full frequency table. An empty dataset returns an error.
func CountryWithMostMills(ds *uml.Dataset) (CountryCount, []CountryCount, error) {
	table := CountryCounts(ds)
	if len(table) == 0 {
		return CountryCount{}, nil, fmt.Errorf("no countries in an empty dataset")
	}
	return table[0], table, nil
}
