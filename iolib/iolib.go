// Package iolib provides I/O functions beyond goLang primitives
package iolib

import (
	"encoding/csv"
	"os"
)

/***************************************************************************************************************
****************************************************************************************************************
* I/O functions ************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// FileExists returns true if there is a file w/ that name
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) || err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if there is a directory w/ that name
func DirExists(dirname string) bool {
	info, err := os.Stat(dirname)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// TSVFile is a tab separated file opened for writing
type TSVFile struct {
	*csv.Writer
	f *os.File
}

// CreateTSV creates (or truncates) filename and writes the header row
func CreateTSV(filename string, header ...string) (*TSVFile, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'
	if len(header) > 0 {
		if err := w.Write(header); err != nil {
			f.Close()
			return nil, err
		}
	}

	return &TSVFile{Writer: w, f: f}, nil
}

// Close flushes pending rows and closes the file
func (t *TSVFile) Close() (err error) {
	defer func() {
		cerr := t.f.Close()
		if err == nil {
			err = cerr
		}
	}()
	t.Flush()
	return t.Error()
}
