package edi_test

import (
	"encoding/json"
	"testing"

	"github.com/sezna/edi"
	"github.com/stretchr/testify/require"
)

func TestDocumentJSONRoundTrip(t *testing.T) {
	doc, err := edi.Parse(sampleDocument)
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded edi.Document
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, *doc, decoded)
}

func TestDocumentJSONFieldNames(t *testing.T) {
	doc, err := edi.Parse(sampleDocument)
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Contains(t, raw, "delimiters")
	require.Contains(t, raw, "interchanges")

	interchanges := raw["interchanges"].([]any)
	require.Len(t, interchanges, 1)
	ic := interchanges[0].(map[string]any)
	require.Equal(t, "000000001", ic["control_number"])
	require.Equal(t, "SENDERISA", ic["sender_id"])
}

func TestTransactionJSONOmitsNilConventionReference(t *testing.T) {
	tx := edi.Transaction{Code: "850", ControlNumber: "0001"}
	data, err := json.Marshal(tx)
	require.NoError(t, err)
	require.NotContains(t, string(data), "convention_reference")

	ref := ""
	tx.ConventionReference = &ref
	data, err = json.Marshal(tx)
	require.NoError(t, err)
	require.Contains(t, string(data), `"convention_reference":""`)
}
