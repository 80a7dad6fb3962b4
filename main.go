package main

import (
	"os"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/palmwatch/millatlas/database"
	"github.com/palmwatch/millatlas/geojson"
	"github.com/palmwatch/millatlas/preprocess"
	"github.com/palmwatch/millatlas/render"
	"github.com/palmwatch/millatlas/server"
	"github.com/palmwatch/millatlas/service"
	"github.com/palmwatch/millatlas/settings"
	"github.com/palmwatch/millatlas/uml"
)

func main() {
	settings.InitializeConfig()
	config := settings.GetConfig()

	if len(os.Args) < 3 {
		log.Fatalf("Usage: millatlas <report|render|serve|process|ingest|search> <uml.csv> [args]")
	}

	command := os.Args[1]
	path := os.Args[2]

	if command == "process" {
		if err := preprocess.Process(path); err != nil {
			log.Fatalf("Failed to process dataset: %v", err)
		}
		return
	}

	ds, err := uml.Load(path)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	if command == "report" {
		report(ds)
	} else if command == "render" {
		renderMaps(ds)
	} else if command == "serve" {
		server.Start(config, ds)
	} else if command == "ingest" {
		if err := database.Ingest(config.Database, ds); err != nil {
			log.Fatalf("Failed to ingest dataset: %v", err)
		}
		database.CloseDBPools()
	} else if command == "search" {
		if len(os.Args) < 4 {
			log.Fatalf("Usage: millatlas search <uml.csv> <query>")
		}
		search(config, ds, os.Args[3])
	} else {
		log.Fatalf("Unknown command")
	}
}

// report answers the dataset's standing questions on the console.
func report(ds *uml.Dataset) {
	log.Infof("Rows: %d", service.RowCount(ds))

	extent, err := service.SpatialExtent(ds)
	if err != nil {
		log.Fatalf("Failed to compute spatial extent: %v", err)
	}
	log.Infof("Spatial extent upper: [%f, %f]", extent.Upper.Longitude, extent.Upper.Latitude)
	log.Infof("Spatial extent lower: [%f, %f]", extent.Lower.Longitude, extent.Lower.Latitude)

	unknown := service.UnknownParentCount(ds)
	log.Infof("Unknown parent company: %d (null: %d, literal: %d)", unknown.Total, unknown.Null, unknown.Literal)

	top, countries, err := service.CountryWithMostMills(ds)
	if err != nil {
		log.Fatalf("Failed to compute country counts: %v", err)
	}
	log.Infof("Country with most mills: %s (%d)", top.Country, top.Count)
	for _, cc := range countries {
		log.Infof("  %-32s %d", cc.Country, cc.Count)
	}

	part := service.PartitionByCertification(ds)
	log.Infof("RSPO certified: %d", part.CertifiedCount())
	log.Infof("Not RSPO certified: %d", part.NotCertifiedCount())
	if part.Other > 0 {
		log.Infof("Other certification status: %d", part.Other)
	}
}

// renderMaps writes the two static map views next to the dataset. An
// optional fourth argument points at a world-boundary GeoJSON file
// drawn as base layer.
func renderMaps(ds *uml.Dataset) {
	var world *geojson.FeatureCollection
	if len(os.Args) > 3 {
		fc, err := geojson.ReadFile(os.Args[3])
		if err != nil {
			log.Fatalf("Failed to load world boundaries: %v", err)
		}
		world = &fc
	}

	timeStart := time.Now()

	if err := render.Mills(ds, world, "mills.png"); err != nil {
		log.Fatalf("Failed to render mills map: %v", err)
	}
	part := service.PartitionByCertification(ds)
	if err := render.Certification(part, world, "mills_certification.png"); err != nil {
		log.Fatalf("Failed to render certification map: %v", err)
	}

	log.Infof("Wrote mills.png and mills_certification.png in %v", time.Since(timeStart))
}

func search(config settings.Config, ds *uml.Dataset, query string) {
	timeStart := time.Now()
	index := service.NewParentIndex(ds)
	results := index.Search(query, config.Search.MaxDistance)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MillCount > results[j].MillCount
	})
	timeEnd := time.Now()

	for _, result := range results {
		log.Infof("Parent: %s, Mills: %d", result.ParentCompany, result.MillCount)
	}

	log.Infof("-----------")
	log.Infof("%v", timeEnd.Sub(timeStart))
}
