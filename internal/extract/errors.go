package extract

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// ErrRecordParse marks a fragment that could not be turned into a record
var ErrRecordParse = eris.New("record parse failure")

// RecordParseError reports which field of a fragment failed and the text it saw
type RecordParseError struct {
	Field string
	Text  string
	Err   error
}

func (e *RecordParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Field, e.Text, e.Err)
}

func (e *RecordParseError) Unwrap() error {
	return e.Err
}

func parseError(field, text, reason string) error {
	return &RecordParseError{
		Field: field,
		Text:  text,
		Err:   eris.Wrap(ErrRecordParse, reason),
	}
}
