package handlers

import (
	"context"
	"testing"
)

func TestStatsHandler(t *testing.T) {
	handler := StatsHandler(testDataset())

	result, err := handler(context.Background(), &struct{}{})
	if err != nil {
		t.Fatalf("StatsHandler failed: %v", err)
	}

	if result.Body.RowCount != 3 {
		t.Errorf("Expected row count 3, got %d", result.Body.RowCount)
	}
	if result.Body.TopCountry.Country != "Indonesia" || result.Body.TopCountry.Count != 2 {
		t.Errorf("Unexpected top country: %+v", result.Body.TopCountry)
	}
	if result.Body.UnknownParent.Total != 1 {
		t.Errorf("Expected 1 unknown parent, got %d", result.Body.UnknownParent.Total)
	}
	if result.Body.Certified != 1 || result.Body.NotCertified != 1 || result.Body.OtherStatus != 1 {
		t.Errorf("Unexpected certification split: %d/%d/%d",
			result.Body.Certified, result.Body.NotCertified, result.Body.OtherStatus)
	}
	if result.Body.Extent.Upper.Longitude != 125.6 {
		t.Errorf("Unexpected extent upper longitude: %f", result.Body.Extent.Upper.Longitude)
	}
}
