package types

import "github.com/google/uuid"

type (
	RequestID       string
	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
	GCSBucket       string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }
func (x GCSBucket) String() string       { return string(x) }
