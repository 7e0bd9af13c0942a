package provenance

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// SourceLocation identifies the place a tagging call originated from,
// conceptually a file plus a line. The zero value means "no location".
type SourceLocation struct {
	File string
	Line int
}

// CallSite captures the location of the caller's own call site. It is the
// thin capture adapter the tagging entry points accept; the core never
// captures locations on its own.
func CallSite() SourceLocation {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return SourceLocation{}
	}
	return SourceLocation{File: file, Line: line}
}

// IsZero reports whether the location carries no file.
func (l SourceLocation) IsZero() bool {
	return l.File == ""
}

// Rel returns the location with its file rendered relative to base. When no
// relative form exists (different volumes, relative base) the file is kept
// as is.
func (l SourceLocation) Rel(base string) SourceLocation {
	rel, err := filepath.Rel(base, l.File)
	if err != nil {
		return l
	}
	return SourceLocation{File: rel, Line: l.Line}
}

// String renders the location as "<file>#<line>", or just the file when no
// line is known.
func (l SourceLocation) String() string {
	if l.Line > 0 {
		return fmt.Sprintf("%s#%d", l.File, l.Line)
	}
	return l.File
}
