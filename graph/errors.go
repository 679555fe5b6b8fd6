package graph

import (
	"fmt"
)

// DataFormatError reports a structurally invalid dataset.
// Feature is the index of the offending feature or -1 for the collection itself.
type DataFormatError struct {
	Feature int
	Reason  string
	Err     error
}

func NewDataFormatError(feature int, reason string, err error) *DataFormatError {
	return &DataFormatError{
		Feature: feature,
		Reason:  reason,
		Err:     err,
	}
}

func (self *DataFormatError) Error() string {
	msg := "invalid dataset"
	if self.Feature >= 0 {
		msg += fmt.Sprintf(": feature %d", self.Feature)
	}
	msg += ": " + self.Reason
	if self.Err != nil {
		msg += ": " + self.Err.Error()
	}
	return msg
}

func (self *DataFormatError) Unwrap() error {
	return self.Err
}
