package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// Marshal renders doc as 4-space indented JSON.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Persist writes the scene document to path. See WriteDocument.
func (s *Scene) Persist(path string, overwrite bool) error {
	doc, err := s.Document()
	if err != nil {
		return err
	}
	return WriteDocument(doc, path, overwrite)
}

// WriteDocument writes doc to path.
//
// If path exists and overwrite is false it returns an error wrapping
// ErrOutputExists and leaves the file untouched. With overwrite a warning
// is logged and the file is replaced.
func WriteDocument(doc *Document, path string, overwrite bool) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		if !overwrite {
			return &Error{Kind: ErrOutputExists, Msg: path}
		}
		Logger().Warn("overwriting scene document", "path", path)
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	data, err := Marshal(doc)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	Logger().Debug("scene document written", "path", path, "objs", len(doc.Objs), "actions", len(doc.Actions))
	return nil
}

// ReadDocument reads a document written by WriteDocument.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
