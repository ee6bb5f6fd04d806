package bq

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/bigquery/storage/managedwriter/adapt"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

// rowEncoder converts JSON serializable values into proto rows of a table schema
type rowEncoder struct {
	message    protoreflect.MessageDescriptor
	descriptor *descriptorpb.DescriptorProto
}

func newRowEncoder(schema bigquery.Schema) (*rowEncoder, error) {
	storageSchema, err := adapt.BQSchemaToStorageTableSchema(schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to convert schema")
	}

	descriptor, err := adapt.StorageSchemaToProto2Descriptor(storageSchema, "root")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to convert schema to descriptor")
	}
	message, ok := descriptor.(protoreflect.MessageDescriptor)
	if !ok {
		return nil, goerr.New("adapted descriptor is not a message descriptor")
	}
	normalized, err := adapt.NormalizeDescriptor(message)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to normalize descriptor")
	}

	return &rowEncoder{message: message, descriptor: normalized}, nil
}

func (x *rowEncoder) encode(data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal row", goerr.V("data", data))
	}
	sanitized, err := sanitizeProtoJSON(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to sanitize row", goerr.V("raw", string(raw)))
	}

	msg := dynamicpb.NewMessage(x.message)
	if err := protojson.Unmarshal(sanitized, msg); err != nil {
		return nil, goerr.Wrap(err, "failed to convert row to proto message", goerr.V("raw", string(raw)))
	}
	b, err := proto.Marshal(msg)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal proto message")
	}
	return b, nil
}

// sanitizeProtoJSON renames object keys that are not valid proto field names, so that
// they match the columns generated by adapt for the same names
func sanitizeProtoJSON(raw []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	return json.Marshal(sanitizeProtoJSONValue(data))
}

func sanitizeProtoJSONValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		res := make(map[string]any, len(val))
		for key, value := range val {
			res[protoFieldJSONName(key)] = sanitizeProtoJSONValue(value)
		}
		return res
	case []any:
		for i := range val {
			val[i] = sanitizeProtoJSONValue(val[i])
		}
		return val
	default:
		return v
	}
}

func protoFieldJSONName(name string) string {
	if protoreflect.Name(name).IsValid() {
		return name
	}
	encoded := base64.RawStdEncoding.EncodeToString([]byte(name))
	return "col_" + strings.NewReplacer("+", "_", "/", "_").Replace(encoded)
}
