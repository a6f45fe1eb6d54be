package interrogator

import "fmt"

// A ParseError reports a missing, unreadable, or malformed UnrealBuildTool
// JSON export. It is fatal to the interrogation that produced it and is never
// retried.
type ParseError struct {
	// Path of the export file that could not be parsed
	Path string

	// Underlying cause
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse UnrealBuildTool export %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
