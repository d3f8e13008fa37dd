package result

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/x/bsonx/bsoncore"
)

// WriteFailureError is returned by Validate when any failure channel is
// raised. Response is the first aggregated document verbatim; it contains
// whichever of the command error fields, writeErrors array and
// writeConcernError document triggered the failure.
type WriteFailureError struct {
	Message  string
	Response bsoncore.Document
}

// Error implements the error interface.
func (e WriteFailureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Response)
}
