package queries

// MillQuery normalizes the raw Universal Mill List CSV and writes a
// parquet snapshot. Rows without usable coordinates are dropped here
// so the snapshot always loads without parse errors.
var MillQuery = `
COPY (
    SELECT
        CAST(Latitude AS DOUBLE)  AS latitude,
        CAST(Longitude AS DOUBLE) AS longitude,
        TRIM(Country)             AS country,
        TRIM(Parent_Com)          AS parent_com,
        TRIM(RSPO_STATU)          AS rspo_statu
    FROM read_csv_auto('%INPUT%', header = true)
    WHERE Latitude IS NOT NULL AND Longitude IS NOT NULL
) TO '%DATADIR%/uml.parquet' (FORMAT 'parquet');
`
