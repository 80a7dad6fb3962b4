package handlers

import (
	"context"

	"github.com/palmwatch/millatlas/service"
)

type SearchInput struct {
	Q string `query:"q" required:"true" minLength:"1" doc:"Parent company name to search for" example:"wilmar"`
	// Pointer so an explicit distance=0 (exact match) is not mistaken
	// for an unset parameter.
	Distance *int `query:"distance" minimum:"0" maximum:"5" doc:"Maximum Levenshtein distance, defaults to the configured value"`
}

type SearchResult struct {
	Body struct {
		Results []service.SearchResult `json:"results" doc:"Matched parent companies"`
	}
}

// SearchHandler runs a fuzzy parent company search against the index.
func SearchHandler(index *service.ParentIndex, defaultDistance int) func(ctx context.Context, input *SearchInput) (*SearchResult, error) {
	return func(ctx context.Context, input *SearchInput) (*SearchResult, error) {
		distance := defaultDistance
		if input.Distance != nil {
			distance = *input.Distance
		}

		searchResult := &SearchResult{}
		searchResult.Body.Results = index.Search(input.Q, distance)

		return searchResult, nil
	}
}
