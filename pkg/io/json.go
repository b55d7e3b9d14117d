package io

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/mps/pkg/chord"
	"github.com/matzehuels/mps/pkg/errors"
	"github.com/matzehuels/mps/pkg/mps"
)

type document struct {
	ID     string         `json:"id,omitempty"`
	Count  int            `json:"count"`
	Method mps.Method     `json:"method"`
	Chords []chord.Pair   `json:"chords"`
	Trace  []mps.Interval `json:"trace"`
	Visits int            `json:"visits"`
	Closed bool           `json:"closed"`
}

// WriteJSON encodes res as an indented JSON document. A non-empty id is
// included as the "id" field.
func WriteJSON(w io.Writer, res *mps.Result, id string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toDocument(res, id))
}

// MarshalResult encodes res compactly, for caching.
func MarshalResult(res *mps.Result) ([]byte, error) {
	return json.Marshal(toDocument(res, ""))
}

// ReadJSON decodes a document written by [WriteJSON] or [MarshalResult].
// It returns the result and the document id, if any.
func ReadJSON(r io.Reader) (*mps.Result, string, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "decode result")
	}
	return fromDocument(doc), doc.ID, nil
}

// readJSONResult reads a JSON document as a result file. The chord list
// must hold exactly count chords.
func readJSONResult(r io.Reader) (*Result, error) {
	res, _, err := ReadJSON(r)
	if err != nil {
		return nil, err
	}
	if len(res.Pairs) != res.Count {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"malformed result document: count is %d but %d chords are listed", res.Count, len(res.Pairs))
	}
	return &Result{Count: res.Count, Pairs: res.Pairs}, nil
}

// UnmarshalResult decodes data produced by [MarshalResult].
func UnmarshalResult(data []byte) (*mps.Result, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode result")
	}
	return fromDocument(doc), nil
}

func toDocument(res *mps.Result, id string) document {
	chords := res.Pairs
	if chords == nil {
		chords = []chord.Pair{}
	}
	return document{
		ID:     id,
		Count:  res.Count,
		Method: res.Method,
		Chords: chords,
		Trace:  res.Trace.Entries(),
		Visits: res.Trace.Visits(),
		Closed: res.Trace.Closed(),
	}
}

func fromDocument(doc document) *mps.Result {
	return &mps.Result{
		Count:  doc.Count,
		Pairs:  doc.Chords,
		Method: doc.Method,
		Trace:  mps.Restore(doc.Trace, doc.Visits, doc.Closed),
	}
}
