package core

import (
	"encoding/json"
	"io"
)

// MarshalExport pretty-prints an export for humans or pipelines.
func MarshalExport(w io.Writer, e Export) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// UnmarshalExport decodes an export, useful for ingestion tests.
func UnmarshalExport(r io.Reader) (Export, error) {
	var e Export
	if err := json.NewDecoder(r).Decode(&e); err != nil {
		return Export{}, err
	}
	return e, nil
}
