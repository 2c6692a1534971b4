package godeck

import (
	"archive/zip"
	"bytes"
	"io"
)

// ListParts returns the part names of a PPTX archive in entry order.
func ListParts(data []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, wrapError(ErrInvalidInput, err, "open archive")
	}
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names, nil
}

// ReadPart extracts one part's bytes from a PPTX archive.
func ReadPart(data []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, wrapError(ErrInvalidInput, err, "open archive")
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, wrapError(ErrIo, err, "open part %s", name)
		}
		defer rc.Close()
		body, err := io.ReadAll(rc)
		if err != nil {
			return nil, wrapError(ErrIo, err, "read part %s", name)
		}
		return body, nil
	}
	return nil, newError(ErrMissingAsset, "part %s not found in archive", name)
}
