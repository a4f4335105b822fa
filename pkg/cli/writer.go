package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/triekit/triemap/pkg/dictionary"
	"gopkg.in/yaml.v3"
)

// Stats counts what a command did, for the final log line.
type Stats struct {
	Input      int // records parsed from the input files
	Inserted   int // records stored under a new key
	Replaced   int // records that displaced an incumbent
	Duplicates int // records dropped on a duplicate key
	Erased     int // keys erased after loading
	Output     int // entries written out
}

// Writer writes the dictionary's entries, in traversal order, to basePath
// plus a format-specific extension.
type Writer interface {
	Write(dict *dictionary.Dictionary, basePath string, keyCol string, dropKeys []string) error
}

// NewWriter picks a writer for the format flag value.
func NewWriter(format string, stats *Stats) (Writer, error) {
	switch format {
	case "json":
		return &JSONWriter{Stats: stats}, nil
	case "csv":
		return &CSVWriter{Stats: stats}, nil
	case "tsv":
		return &CSVWriter{isTSV: true, Stats: stats}, nil
	case "yaml":
		return &YAMLWriter{Stats: stats}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

type JSONWriter struct {
	Stats *Stats
}

func (w *JSONWriter) Write(dict *dictionary.Dictionary, basePath string, keyCol string, dropKeys []string) error {
	file, err := os.Create(basePath + ".json")
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)

	if _, err = file.Write([]byte("[")); err != nil {
		return err
	}
	for i, entry := range dict.All() {
		updateRecord(entry, keyCol, dropKeys)
		if i > 0 {
			if _, err = file.Write([]byte(",")); err != nil {
				return err
			}
		}
		if err = encoder.Encode(entry.Record); err != nil {
			return err
		}
		w.Stats.Output++
	}
	if _, err = file.Write([]byte("]")); err != nil {
		return err
	}
	return nil
}

type CSVWriter struct {
	isTSV bool
	Stats *Stats
}

func (w *CSVWriter) Write(dict *dictionary.Dictionary, basePath string, keyCol string, dropKeys []string) error {
	filePath := basePath + ".csv"
	separator := ','
	if w.isTSV {
		filePath = basePath + ".tsv"
		separator = '\t'
	}

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = separator
	defer writer.Flush()

	entries := dict.All()
	if len(entries) == 0 {
		return nil
	}

	// Headers come from the first entry; every record carries the same
	// columns when the inputs share a header line.
	headers := []string{}
	for key := range entries[0].Record {
		if !contains(dropKeys, key) {
			headers = append(headers, key)
		}
	}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, entry := range entries {
		updateRecord(entry, keyCol, dropKeys)
		row := make([]string, 0, len(headers))
		// Ensure the fields are written in the same order as headers
		for _, header := range headers {
			row = append(row, entry.Record[header])
		}
		if err := writer.Write(row); err != nil {
			return err
		}
		w.Stats.Output++
	}

	return nil
}

type YAMLWriter struct {
	Stats *Stats
}

func (w *YAMLWriter) Write(dict *dictionary.Dictionary, basePath string, keyCol string, dropKeys []string) error {
	file, err := os.Create(basePath + ".yaml")
	if err != nil {
		return err
	}
	defer file.Close()

	records := []dictionary.Record{}
	for _, entry := range dict.All() {
		updateRecord(entry, keyCol, dropKeys)
		records = append(records, entry.Record)
		w.Stats.Output++
	}

	encoder := yaml.NewEncoder(file)
	defer encoder.Close()
	return encoder.Encode(records)
}

// updateRecord restores the key column from the trie-reconstructed key and
// drops the unwanted columns.
func updateRecord(entry dictionary.Entry, keyCol string, dropKeys []string) {
	entry.Record[keyCol] = entry.Key
	for _, keyToDrop := range dropKeys {
		delete(entry.Record, keyToDrop)
	}
}

func contains(s []string, e string) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}
	return false
}
