package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/palmwatch/millatlas/service"
	"github.com/palmwatch/millatlas/uml"
)

type StatsResult struct {
	Body struct {
		RowCount      int                    `json:"rowCount" doc:"Number of mill records in the dataset"`
		Extent        service.Extent         `json:"extent" doc:"Axis-aligned bounding box of all mills"`
		UnknownParent service.UnknownParent  `json:"unknownParent" doc:"Mills without a known parent company"`
		TopCountry    service.CountryCount   `json:"topCountry" doc:"Country with the most mills"`
		Countries     []service.CountryCount `json:"countries" doc:"Per-country mill counts, descending"`
		Certified     int                    `json:"certified" doc:"Mills with status 'RSPO Certified'"`
		NotCertified  int                    `json:"notCertified" doc:"Mills with status 'Not RSPO Certified'"`
		OtherStatus   int                    `json:"otherStatus" doc:"Mills matching neither recognized status"`
	}
}

// StatsHandler answers all five dataset queries in one response.
func StatsHandler(ds *uml.Dataset) func(ctx context.Context, input *struct{}) (*StatsResult, error) {
	return func(ctx context.Context, input *struct{}) (*StatsResult, error) {
		extent, err := service.SpatialExtent(ds)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		top, countries, err := service.CountryWithMostMills(ds)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		part := service.PartitionByCertification(ds)

		result := &StatsResult{}
		result.Body.RowCount = service.RowCount(ds)
		result.Body.Extent = extent
		result.Body.UnknownParent = service.UnknownParentCount(ds)
		result.Body.TopCountry = top
		result.Body.Countries = countries
		result.Body.Certified = part.CertifiedCount()
		result.Body.NotCertified = part.NotCertifiedCount()
		result.Body.OtherStatus = part.Other

		return result, nil
	}
}
