package interrogator

import "strings"

// LibraryDetails describes the build flags required to compile and link
// against a set of engine-bundled third-party libraries. The same type serves
// as a caller-supplied override bundle for libraries that bypass module
// resolution.
//
// Each field is a deduplicated, encounter-ordered set. Every non-bare path in
// IncludeDirs and LinkDirs is absolute.
type LibraryDetails struct {
	// Directories expected to contain include/ and lib/ subtrees
	PrefixDirs []string

	// Header search directories
	IncludeDirs []string

	// Library search directories
	LinkDirs []string

	// Preprocessor definitions
	Definitions []string

	// Library files to link against
	Libs []string
}

// NewLibraryDetails wraps the supplied field values, deduplicating each
func NewLibraryDetails(prefixDirs, includeDirs, linkDirs, definitions, libs []string) *LibraryDetails {
	return &LibraryDetails{
		PrefixDirs:  dedupe(prefixDirs),
		IncludeDirs: dedupe(includeDirs),
		LinkDirs:    dedupe(linkDirs),
		Definitions: dedupe(definitions),
		Libs:        dedupe(libs),
	}
}

// Merge union-extends each field of d with the values from other.
// Values already present are not duplicated, so applying the same override
// more than once has no further effect.
func (d *LibraryDetails) Merge(other *LibraryDetails) {
	if other == nil {
		return
	}

	d.PrefixDirs = appendUnique(d.PrefixDirs, other.PrefixDirs...)
	d.IncludeDirs = appendUnique(d.IncludeDirs, other.IncludeDirs...)
	d.LinkDirs = appendUnique(d.LinkDirs, other.LinkDirs...)
	d.Definitions = appendUnique(d.Definitions, other.Definitions...)
	d.Libs = appendUnique(d.Libs, other.Libs...)
}

// CompilerFlags returns the compiler arguments for these libraries:
// preprocessor definitions followed by include directories
func (d *LibraryDetails) CompilerFlags() []string {
	flags := make([]string, 0, len(d.Definitions)+len(d.IncludeDirs))

	for _, def := range d.Definitions {
		flags = append(flags, "-D"+def)
	}

	for _, dir := range d.IncludeDirs {
		flags = append(flags, "-I"+dir)
	}

	return flags
}

// LinkerFlags returns the linker arguments for these libraries:
// library search directories followed by the libraries themselves
func (d *LibraryDetails) LinkerFlags() []string {
	flags := make([]string, 0, len(d.LinkDirs)+len(d.Libs))

	for _, dir := range d.LinkDirs {
		flags = append(flags, "-L"+dir)
	}

	flags = append(flags, d.Libs...)

	return flags
}

// CMakeFlags returns the CMake cache variables that let find_package and
// friends locate these libraries
func (d *LibraryDetails) CMakeFlags() []string {
	return []string{
		"-DCMAKE_PREFIX_PATH=" + strings.Join(d.PrefixDirs, ";"),
		"-DCMAKE_INCLUDE_PATH=" + strings.Join(d.IncludeDirs, ";"),
		"-DCMAKE_LIBRARY_PATH=" + strings.Join(d.LinkDirs, ";"),
	}
}

// dedupe removes duplicate values preserving encounter order
func dedupe(values []string) []string {
	return appendUnique(make([]string, 0, len(values)), values...)
}

// appendUnique appends the values not already present in dst
func appendUnique(dst []string, values ...string) []string {
	seen := make(map[string]bool, len(dst)+len(values))
	for _, v := range dst {
		seen[v] = true
	}

	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			dst = append(dst, v)
		}
	}

	return dst
}
