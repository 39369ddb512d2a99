// unarchive.go
package main

import (
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4"
)

// unpackPayload uncompresses a downloaded payload when its name says it is
// an archive (the WHO mirror endpoints serve both plain and gzipped CSV).
// Returns the path of the extracted file, or "" when the payload is not an
// archive and can be read as is.
func unpackPayload(filePath string) (string, error) {
	switch filepath.Ext(filePath) {
	case ".gz":
		file, err := os.Open(filePath)
		if err != nil {
			return "", err
		}
		defer file.Close()
		gr, err := gzip.NewReader(file)
		if err != nil {
			return "", err
		}
		defer gr.Close()
		return writeExtracted(strings.TrimSuffix(filePath, ".gz"), gr)
	case ".lz4":
		file, err := os.Open(filePath)
		if err != nil {
			return "", err
		}
		defer file.Close()
		return writeExtracted(strings.TrimSuffix(filePath, ".lz4"), lz4.NewReader(file))
	case ".zip":
		return unpackZipPayload(filePath)
	}
	return "", nil
}

func writeExtracted(destPath string, r io.Reader) (string, error) {
	outFile, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer outFile.Close()
	if _, err = io.Copy(outFile, r); err != nil {
		return "", err
	}
	return destPath, nil
}

// unpackZipPayload extracts the largest file of the archive, which for data
// exports is the table itself rather than accompanying readme files.
func unpackZipPayload(filePath string) (string, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	var largestFile *zip.File
	var largestSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if f.UncompressedSize64 > largestSize {
			largestFile = f
			largestSize = f.UncompressedSize64
		}
	}
	if largestFile == nil {
		return "", nil
	}

	rc, err := largestFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	destPath := filepath.Join(filepath.Dir(filePath), filepath.Base(largestFile.Name))
	return writeExtracted(destPath, rc)
}
