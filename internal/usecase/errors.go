package usecase

import "fmt"

// MappingError marks a raw row that could not be coerced into a normalized
// entity. It aborts the batch before any watermark commit, so the failed
// window is replayed on the next run.
type MappingError struct {
	Object string
	RowID  string
	Err    error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping %s row %q: %v", e.Object, e.RowID, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

func IsMappingError(err error) bool {
	_, ok := err.(*MappingError)
	return ok
}
