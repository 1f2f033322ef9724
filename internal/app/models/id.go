package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ID is the storage-independent identifier of every record.
// Relational rows render their BIGSERIAL key in decimal, documents render
// their ObjectID in hex, and the in-memory store uses UUID strings.
type ID string

// String returns the identifier as a plain string
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty
func (id ID) IsZero() bool {
	return id == ""
}

// Int64 parses a relational identifier
func (id ID) Int64() (int64, error) {
	return strconv.ParseInt(string(id), 10, 64)
}

// ObjectID parses a document identifier
func (id ID) ObjectID() (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(string(id))
}

// IDFromInt64 builds an identifier from a relational key
func IDFromInt64(v int64) ID {
	return ID(strconv.FormatInt(v, 10))
}

// Scan implements sql.Scanner so pgx can decode BIGINT keys into an ID.
func (id *ID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = ""
	case int64:
		*id = IDFromInt64(v)
	case int32:
		*id = IDFromInt64(int64(v))
	case int:
		*id = IDFromInt64(int64(v))
	case string:
		*id = ID(v)
	case []byte:
		*id = ID(v)
	default:
		return fmt.Errorf("cannot scan %T into models.ID", src)
	}
	return nil
}

// Value implements driver.Valuer. Numeric identifiers are sent as BIGINT.
func (id ID) Value() (driver.Value, error) {
	if id == "" {
		return nil, nil
	}
	if v, err := id.Int64(); err == nil {
		return v, nil
	}
	return string(id), nil
}

// MarshalBSONValue stores hex identifiers as ObjectIDs so lookups and
// $lookup joins compare like with like.
func (id ID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if oid, err := id.ObjectID(); err == nil {
		return bson.MarshalValue(oid)
	}
	return bson.MarshalValue(string(id))
}

// UnmarshalBSONValue accepts ObjectIDs, strings and integers.
func (id *ID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.ObjectID:
		*id = ID(raw.ObjectID().Hex())
	case bsontype.String:
		*id = ID(raw.StringValue())
	case bsontype.Int32:
		*id = IDFromInt64(int64(raw.Int32()))
	case bsontype.Int64:
		*id = IDFromInt64(raw.Int64())
	case bsontype.Null, bsontype.Undefined:
		*id = ""
	default:
		return fmt.Errorf("cannot decode bson %s into models.ID", t)
	}
	return nil
}

// IDs extracts identifiers with the given accessor, never returning nil.
func IDs[T any](items []T, fn func(T) ID) []ID {
	out := make([]ID, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
