// Package schemas maps ANSI X12 transaction set codes to their
// human-readable names, e.g. "850" to "Purchase Order".
//
// The table is embedded at build time, loaded once at package
// initialization and never mutated afterwards, so it is safe to share
// across any number of concurrent parses.
package schemas

import (
	"bytes"
	_ "embed"
	"encoding/csv"
)

// Unidentified is the name returned for codes the table does not know.
const Unidentified = "unidentified"

//go:embed schemas.csv
var schemasCSV []byte

var names = load()

func load() map[string]string {
	r := csv.NewReader(bytes.NewReader(schemasCSV))
	r.FieldsPerRecord = 2
	records, err := r.ReadAll()
	if err != nil {
		panic("edi/schemas: malformed embedded schemas.csv: " + err.Error())
	}
	m := make(map[string]string, len(records))
	for _, record := range records {
		m[record[0]] = record[1]
	}
	return m
}

// Lookup returns the human-readable name of a transaction set code, or
// Unidentified when the code is unknown. It never fails.
func Lookup(code string) string {
	if name, ok := names[code]; ok {
		return name
	}
	return Unidentified
}
