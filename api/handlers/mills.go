package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/palmwatch/millatlas/errors"
	"github.com/palmwatch/millatlas/geojson"
	"github.com/palmwatch/millatlas/service"
	"github.com/palmwatch/millatlas/uml"
)

// MillsHandler serves the mills as a GeoJSON FeatureCollection. The
// optional status parameter filters to one certification subset:
// "certified", "notcertified" or "other".
func MillsHandler(ds *uml.Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var records []uml.Record

		switch status := r.URL.Query().Get("status"); status {
		case "":
			records = ds.Records()
		case "certified":
			records = service.PartitionByCertification(ds).Certified
		case "notcertified":
			records = service.PartitionByCertification(ds).NotCertified
		case "other":
			for _, rec := range ds.Records() {
				if !rec.Certified() && !rec.NotCertified() {
					records = append(records, rec)
				}
			}
		default:
			apiError := errors.NewAPIError(http.StatusBadRequest,
				fmt.Sprintf("Unknown status filter %q", status), nil)
			HandleError(w, apiError)
			return
		}

		// Encode before touching the response so a failure can still
		// become a 500 instead of a truncated 200.
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(geojson.FromRecords(records)); err != nil {
			http.Error(w, "Failed to encode JSON", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/geo+json")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}
}
