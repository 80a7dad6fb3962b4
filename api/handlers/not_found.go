package handlers

import (
	"fmt"
	"net/http"

	"github.com/palmwatch/millatlas/errors"
)

func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	details := fmt.Sprintf("Path '%s' not found", r.URL.Path)
	apiError := errors.NewAPIError(http.StatusNotFound, "Not found", &details)
	HandleError(w, apiError)
}

// HandleError writes an APIError to the response.
func HandleError(w http.ResponseWriter, apiError errors.APIError) {
	apiError.Write(w)
}
