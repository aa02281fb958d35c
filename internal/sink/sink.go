// Package sink provides delivery sinks for generated report documents:
// save to a local directory, share via an AMQP queue, or upload to
// Google Drive. A sink only transports a document the generator has
// already rendered, so a failed delivery can be retried as-is.
package sink

import (
	"fmt"
)

// DeliveryError wraps a sink failure. The report document was produced
// successfully and remains valid for a retry.
type DeliveryError struct {
	Sink string
	Err  error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s sink delivery failed: %v", e.Sink, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Type selects a delivery sink implementation.
type Type string

const (
	FileType  Type = "file"
	AMQPType  Type = "amqp"
	DriveType Type = "drive"
)

func (t Type) String() string { return string(t) }

func (t Type) IsValid() bool {
	switch t {
	case FileType, AMQPType, DriveType:
		return true
	default:
		return false
	}
}

// Types returns all valid sink types.
func Types() []Type {
	return []Type{FileType, AMQPType, DriveType}
}
