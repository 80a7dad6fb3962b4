// Package preprocess turns the raw UML CSV into a parquet snapshot
// using DuckDB.
package preprocess

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
	log "github.com/sirupsen/logrus"

	"github.com/palmwatch/millatlas/preprocess/queries"
	"github.com/palmwatch/millatlas/settings"
)

// Process reads the raw CSV at input and writes the normalized
// parquet snapshot into the configured data folder.
func Process(input string) error {
	log.Infof("Processing data: %s", input)

	config := settings.GetConfig()
	if err := os.MkdirAll(config.Process.Folder, 0o755); err != nil {
		return fmt.Errorf("failed to create data folder: %w", err)
	}

	query := strings.ReplaceAll(queries.MillQuery, "%INPUT%", input)
	query = strings.ReplaceAll(query, "%DATADIR%", config.Process.Folder)

	db, err := getDuckDB()
	if err != nil {
		return fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to process %s: %w", input, err)
	}

	log.Infof("Snapshot written to %s/uml.parquet", config.Process.Folder)
	return nil
}

func getDuckDB() (*sql.DB, error) {
	return sql.Open("duckdb", "")
}
