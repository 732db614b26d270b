// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package diag

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Document is a source file for which diagnostics, such as line/column numbers, may be required.  It stores the
// contents of the entire file so that decoders can work on it; Forget discards them once decoding is done.
type Document struct {
	File string
	Body []byte
}

func NewDocument(file string) *Document {
	return &Document{File: file}
}

// ReadDocument reads a whole document out of the given file system.
func ReadDocument(fs afero.Fs, file string) (*Document, error) {
	body, err := afero.ReadFile(fs, file)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %v", file)
	}
	return &Document{File: file, Body: body}, nil
}

func (doc *Document) Ext() string {
	return filepath.Ext(doc.File)
}

func (doc *Document) Forget() {
	doc.Body = nil
}
