package astgen

import (
	"bytes"
	"os"
	"path/filepath"
)

// Merge computes the full new content of a target file: the caller's header
// block, the three generated declarations separated by blank lines, then
// the preserved region of current, which runs from the first occurrence of
// marker (a literal substring, not a pattern) to end of content. The second
// return reports whether the marker was found; when it is false the
// preserved region is empty and the output is the generated region alone.
//
// The header should end with a newline; it is copied verbatim and never
// interpreted.
func Merge(s Schema, header, marker string, current []byte) ([]byte, bool) {
	var buf bytes.Buffer

	buf.WriteString(header)
	buf.WriteString("\n")
	buf.WriteString(NodeTypes(s))
	buf.WriteString("\n")
	buf.WriteString(VisitorInterface(s))
	buf.WriteString("\n")
	buf.WriteString(AcceptFunc(s))
	buf.WriteString("\n")

	i := bytes.Index(current, []byte(marker))
	if i >= 0 {
		buf.Write(current[i:])
	}

	return buf.Bytes(), i >= 0
}

// Result reports what a Rewrite run did.
type Result struct {
	// MarkerFound is false when the preservation marker was absent from the
	// previous content. Generation still succeeds, but nothing below the
	// generated region survived because there was nothing to preserve.
	MarkerFound bool
}

// Rewrite regenerates path in place. It reads the current content, merges
// the generated declarations with the preserved region, and replaces the
// file through a temporary file and rename so the target is never left
// half written. A missing or unreadable target is a *ReadError and nothing
// is written; a failed replacement is a *WriteError.
func Rewrite(path string, s Schema, header, marker string) (Result, error) {
	current, err := os.ReadFile(path)
	if err != nil {
		return Result{}, &ReadError{Path: path, Err: err}
	}

	content, found := Merge(s, header, marker, current)

	if err := writeFileAtomic(path, content); err != nil {
		return Result{MarkerFound: found}, &WriteError{Path: path, Err: err}
	}
	return Result{MarkerFound: found}, nil
}

// writeFileAtomic writes content next to path and renames it into place.
func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
