package save

import "fmt"

// MalformedInputError reports input that is not well-formed XML. The
// underlying parser error is preserved for errors.Is/As inspection.
type MalformedInputError struct {
	Path string
	Err  error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("parse save file %s: %v", e.Path, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// StructureError reports a document that parses as XML but lacks the
// expected save-file shape.
type StructureError struct {
	Path   string
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("save file %s: %s", e.Path, e.Reason)
}
