package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/triekit/triemap/pkg/dictionary"
)

// onRecord receives each parsed (key, record) pair. The key is the value of
// the configured key column; the record keeps every column, key included.
type onRecord func(key string, rec dictionary.Record) error

// parseFile dispatches on the file extension: .json is decoded as a JSON
// array of objects, .tsv as tab-separated values, anything else as CSV.
func parseFile(path string, keyCol string, onEach onRecord) error {
	switch filepath.Ext(path) {
	case ".json":
		return parseJSON(path, keyCol, onEach)
	case ".tsv":
		return parseCSV(path, keyCol, '\t', onEach)
	default:
		return parseCSV(path, keyCol, ',', onEach)
	}
}

func parseJSON(path string, keyCol string, onEach onRecord) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)

	// Read opening bracket of the array
	if _, err = decoder.Token(); err != nil {
		return err
	}

	// Decode each element of the array
	for decoder.More() {
		rec := dictionary.Record{}
		if err := decoder.Decode(&rec); err != nil {
			return err
		}
		key, err := recordKey(rec, keyCol)
		if err != nil {
			return err
		}
		if err := onEach(key, rec); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	if _, err = decoder.Token(); err != nil {
		return err
	}

	return nil
}

func parseCSV(path string, keyCol string, comma rune, onEach onRecord) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = comma

	// First line is the header; it supplies the record's column names.
	headers, err := reader.Read()
	if err != nil {
		return err
	}

	for {
		fields, err := reader.Read()
		if err != nil {
			break // end of file or an error
		}

		rec := make(dictionary.Record)
		for i, value := range fields {
			rec[headers[i]] = value
		}

		key, err := recordKey(rec, keyCol)
		if err != nil {
			return err
		}
		if err := onEach(key, rec); err != nil {
			return err
		}
	}

	return nil
}

func recordKey(rec dictionary.Record, keyCol string) (string, error) {
	key, found := rec[keyCol]
	if !found || key == "" {
		return "", fmt.Errorf("record has no value in key column %q: %v", keyCol, rec)
	}
	return key, nil
}
