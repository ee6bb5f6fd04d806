package bq

import "cloud.google.com/go/bigquery"

var (
	ProtoFieldJSONName = protoFieldJSONName
	SanitizeProtoJSON  = sanitizeProtoJSON
)

func EncodeRowForTest(schema bigquery.Schema, data any) ([]byte, error) {
	enc, err := newRowEncoder(schema)
	if err != nil {
		return nil, err
	}
	return enc.encode(data)
}
