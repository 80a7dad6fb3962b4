package service

import (
	"strings"

	"github.com/palmwatch/millatlas/bktree"
	"github.com/palmwatch/millatlas/uml"
)

// ParentIndex is a fuzzy index over the distinct parent company names
// in a dataset. Matching is case-insensitive: the tree stores
// lowercased names and maps them back to the records that carry them.
type ParentIndex struct {
	tree    *bktree.Tree
	records map[string][]uml.Record
}

// SearchResult is one matched parent company and its mills.
type SearchResult struct {
	ParentCompany string       `json:"parentCompany" doc:"Matched parent company name"`
	Mills         []uml.Record `json:"-"`
	MillCount     int          `json:"millCount" doc:"Number of mills owned by the company"`
}

// NewParentIndex builds the index from a dataset.
func NewParentIndex(ds *uml.Dataset) *ParentIndex {
	idx := &ParentIndex{
		tree:    bktree.New(),
		records: make(map[string][]uml.Record),
	}
	for _, rec := range ds.Records() {
		if rec.ParentMissing {
			continue
		}
		key := strings.ToLower(rec.ParentCompany)
		if _, seen := idx.records[key]; !seen {
			idx.tree.Insert(key)
		}
		idx.records[key] = append(idx.records[key], rec)
	}
	return idx
}

// Companies returns the number of distinct parent companies indexed.
func (idx *ParentIndex) Companies() int {
	return idx.tree.Size()
}

// Search returns the parent companies within maxDistance of the query
// together with their mills. Results keep the tree's traversal order
// for equal names; callers wanting ranked output sort on MillCount.
func (idx *ParentIndex) Search(query string, maxDistance int) []SearchResult {
	matches := idx.tree.Search(strings.ToLower(query), maxDistance)

	results := make([]SearchResult, 0, len(matches))
	for _, key := range matches {
		mills := idx.records[key]
		if len(mills) == 0 {
			continue
		}
		results = append(results, SearchResult{
			// Report the spelling of the first record, not the
			// lowercased index key.
			ParentCompany: mills[0].ParentCompany,
			Mills:         mills,
			MillCount:     len(mills),
		})
	}
	return results
}
