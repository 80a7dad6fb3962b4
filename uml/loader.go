package uml

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
)

// LoadCSV reads the Universal Mill List from a CSV file. The header
// row maps column names to indices; the required columns are
// Latitude, Longitude, Country, Parent_Com and RSPO_STATU. There is
// no schema validation beyond that and no error recovery, a malformed
// row fails the whole load.
func LoadCSV(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	cols, err := columnIndex(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		lat, err := strconv.ParseFloat(row[cols[ColLatitude]], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad latitude %q", path, i+1, row[cols[ColLatitude]])
		}
		lon, err := strconv.ParseFloat(row[cols[ColLongitude]], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad longitude %q", path, i+1, row[cols[ColLongitude]])
		}

		parent := row[cols[ColParent]]
		records = append(records, Record{
			ID:            i,
			Latitude:      lat,
			Longitude:     lon,
			Country:       row[cols[ColCountry]],
			ParentCompany: parent,
			ParentMissing: parent == "",
			RSPOStatus:    row[cols[ColStatus]],
		})
	}

	return records, nil
}

func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{ColLatitude, ColLongitude, ColCountry, ColParent, ColStatus} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %s", required)
		}
	}
	return cols, nil
}

// parquetRecord mirrors the columns written by the process command.
// DuckDB writes every column as OPTIONAL, so the doubles are pointers;
// a plain DOUBLE would be read as REQUIRED and misdecode the values.
type parquetRecord struct {
	Latitude  *float64 `parquet:"name=latitude, type=DOUBLE, repetitiontype=OPTIONAL"`
	Longitude *float64 `parquet:"name=longitude, type=DOUBLE, repetitiontype=OPTIONAL"`
	Country   string   `parquet:"name=country, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=OPTIONAL"`
	Parent    string   `parquet:"name=parent_com, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=OPTIONAL"`
	Status    string   `parquet:"name=rspo_statu, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=OPTIONAL"`
}

// LoadParquet reads a parquet snapshot produced by the process
// command.
func LoadParquet(path string) ([]Record, error) {
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(parquetRecord), 4)
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet reader for %s: %w", path, err)
	}
	defer pr.ReadStop()

	numRows := int(pr.GetNumRows())
	raw := make([]parquetRecord, numRows)
	if err := pr.Read(&raw); err != nil {
		return nil, fmt.Errorf("failed to read records from %s: %w", path, err)
	}

	records := make([]Record, numRows)
	for i, rec := range raw {
		// The process command filters rows without coordinates, a
		// null here means the snapshot was not written by it.
		if rec.Latitude == nil || rec.Longitude == nil {
			return nil, fmt.Errorf("%s row %d: missing coordinates", path, i)
		}
		records[i] = Record{
			ID:            i,
			Latitude:      *rec.Latitude,
			Longitude:     *rec.Longitude,
			Country:       rec.Country,
			ParentCompany: rec.Parent,
			ParentMissing: rec.Parent == "",
			RSPOStatus:    rec.Status,
		}
	}

	return records, nil
}

// Load reads a dataset from either a CSV file or a parquet snapshot,
// picked by extension, and attaches geometries.
func Load(path string) (*Dataset, error) {
	var (
		records []Record
		err     error
	)
	if isParquet(path) {
		records, err = LoadParquet(path)
	} else {
		records, err = LoadCSV(path)
	}
	if err != nil {
		return nil, err
	}
	return Attach(records), nil
}

func isParquet(path string) bool {
	return strings.HasSuffix(path, ".parquet") || strings.HasSuffix(path, ".geoparquet")
}
