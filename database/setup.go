package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/palmwatch/millatlas/settings"
	"github.com/palmwatch/millatlas/uml"
)

var TABLE_MILLS = "mills"

// Ingest loads the dataset into Postgres for downstream analysis.
// The table is recreated on every run, batches of records are
// inserted concurrently in their own transactions, then the table is
// reindexed and vacuumed.
func Ingest(config settings.DatabaseConfig, ds *uml.Dataset) error {
	pool, err := GetDBPool("millatlas", config)
	if err != nil {
		return fmt.Errorf("failed to get database pool: %w", err)
	}

	if err := createTableMills(pool); err != nil {
		return fmt.Errorf("failed to recreate table: %w", err)
	}

	insertRecords(pool, ds.Records())

	log.Info("Reindexing table")
	if err := reindex(pool); err != nil {
		return fmt.Errorf("failed to reindex table: %w", err)
	}

	log.Info("Running full vacuum")
	if err := vacuum(pool); err != nil {
		return fmt.Errorf("failed to vacuum table: %w", err)
	}

	return nil
}

func createTableMills(pool *pgxpool.Pool) error {
	queries := []string{
		fmt.Sprintf(`DROP TABLE IF EXISTS %s;`, TABLE_MILLS),
		fmt.Sprintf(`CREATE TABLE %s (
			id INTEGER PRIMARY KEY,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			country TEXT,
			parent_com TEXT,
			rspo_statu TEXT,
			geom TEXT
		);`, TABLE_MILLS),
		fmt.Sprintf(`CREATE INDEX idx_%[1]s_country ON %[1]s (country);`, TABLE_MILLS),
		fmt.Sprintf(`CREATE INDEX idx_%[1]s_status ON %[1]s (rspo_statu);`, TABLE_MILLS),
	}

	for _, query := range queries {
		if _, err := pool.Exec(context.Background(), query); err != nil {
			return err
		}
	}
	return nil
}

func insertRecords(pool *pgxpool.Pool, records []uml.Record) {
	var wg sync.WaitGroup
	batchSize := 100
	numBatches := (len(records) + batchSize - 1) / batchSize

	for i := 0; i < numBatches; i++ {
		start := i * batchSize
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}

		wg.Add(1)
		go func(batch []uml.Record) {
			defer wg.Done()

			tx, err := pool.Begin(context.Background())
			if err != nil {
				log.Errorf("Failed to begin transaction: %v", err)
				return
			}
			defer tx.Rollback(context.Background())

			for _, rec := range batch {
				if err := addMill(tx, rec); err != nil {
					log.Errorf("Failed to insert record %d: %v", rec.ID, err)
				}
			}

			if err := tx.Commit(context.Background()); err != nil {
				log.Errorf("Failed to commit transaction: %v", err)
			}
		}(records[start:end])
	}

	wg.Wait()
}

func addMill(tx pgx.Tx, rec uml.Record) error {
	geomWKT, err := wkt.Marshal(rec.Point())
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, latitude, longitude, country, parent_com, rspo_statu, geom)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`, TABLE_MILLS)
	_, err = tx.Exec(context.Background(), query,
		rec.ID, rec.Latitude, rec.Longitude, rec.Country, rec.ParentCompany, rec.RSPOStatus, geomWKT)
	return err
}

func reindex(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), fmt.Sprintf(`REINDEX TABLE %s;`, TABLE_MILLS))
	return err
}

func vacuum(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), fmt.Sprintf(`VACUUM FULL ANALYZE %s;`, TABLE_MILLS))
	return err
}
