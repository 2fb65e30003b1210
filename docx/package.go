package docx

import (
	"fmt"
	"io"
	"path"
	"strings"

	fixzip "github.com/hidez8891/zip"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Package part names.
const (
	partDocument = "word/document.xml"
	partStyles   = "word/styles.xml"
	partTheme    = "word/theme/theme1.xml"
	partRels     = "word/_rels/document.xml.rels"
	partCore     = "docProps/core.xml"
)

// Parts maps package part names to their content.
type Parts map[string][]byte

// ReadPackage reads all parts under "word/" and core properties part from
// the archive. Entries with
// absolute paths or path traversal components make package invalid.
func ReadPackage(archive string, log *zap.Logger) (parts Parts, err error) {
	if log == nil {
		log = zap.NewNop()
	}

	r, err := fixzip.OpenReader(archive)
	if err != nil {
		return nil, fmt.Errorf("unable to open package (%s): %w", archive, err)
	}
	defer func() {
		err = multierr.Append(err, r.Close())
	}()

	parts = make(Parts)
	for _, f := range r.File {
		name := f.Name
		if !isSafePath(name) {
			return nil, fmt.Errorf("package entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || (!strings.HasPrefix(name, "word/") && name != partCore) {
			continue
		}
		data, err := readEntry(f)
		if err != nil {
			return nil, fmt.Errorf("unable to read package entry %q: %w", name, err)
		}
		parts[name] = data
	}
	log.Debug("Package read", zap.String("archive", archive), zap.Int("parts", len(parts)))
	return parts, nil
}

func readEntry(f *fixzip.File) (data []byte, err error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, rc.Close())
	}()
	return io.ReadAll(rc)
}

// isSafePath returns false for paths that could escape the package root:
// absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}

// resolveTarget turns relationship target of document part into part
// name. External targets are not resolved.
func resolveTarget(target string) (string, bool) {
	if target == "" || strings.Contains(target, "://") {
		return "", false
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/"), true
	}
	name := path.Join("word", target)
	if !strings.HasPrefix(name, "word/") {
		return "", false
	}
	return name, true
}
