package handlers

import (
	"embed"
	"html/template"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/palmwatch/millatlas/settings"
	"github.com/palmwatch/millatlas/tiles"
)

//go:embed web/map.html
var webFS embed.FS

var mapTemplate = template.Must(template.ParseFS(webFS, "web/map.html"))

type mapPage struct {
	TileURL     string
	Attribution string
}

// MapHandler serves the interactive web map.
func MapHandler(config settings.TilesConfig) http.HandlerFunc {
	page := mapPage{
		TileURL:     tiles.URL(config),
		Attribution: config.Attribution,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := mapTemplate.Execute(w, page); err != nil {
			log.Errorf("Failed to render map page: %v", err)
		}
	}
}
