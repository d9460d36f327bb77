// Package codec moves wrapped values across process boundaries with
// content-type aware marshaling.
//
// A Codec pairs a MIME content type with marshal/unmarshal logic. Providers
// exist for JSON, XML, YAML, and MessagePack; every one of them encodes a
// *notcopy.Value byte-identically to the bare value it holds, because the
// wrapper contributes no framing of its own.
//
//	data, err := codec.Marshal(ctx, codec.JSON(), notcopy.New(order))
//	w, err := codec.Unmarshal[Order](ctx, codec.JSON(), data)
//
// Marshal and Unmarshal emit capitan signals around each operation for
// observability; wire a capitan handler to consume them.
package codec

import (
	"context"
	"reflect"
	"time"

	"github.com/zoobzio/notcopy"
)

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Marshal encodes a wrapped value with c. The output is byte-identical to
// marshaling the bare contained value.
func Marshal[T any](ctx context.Context, c Codec, v *notcopy.Value[T]) ([]byte, error) {
	typeName := reflect.TypeFor[T]().String()
	emitMarshalStart(ctx, c.ContentType(), typeName)
	start := time.Now()

	data, err := c.Marshal(v)
	if err != nil {
		err = newCodecError(ErrMarshal, err)
		emitMarshalComplete(ctx, c.ContentType(), typeName, 0, time.Since(start), err)
		return nil, err
	}

	emitMarshalComplete(ctx, c.ContentType(), typeName, len(data), time.Since(start), nil)
	return data, nil
}

// Unmarshal decodes data with c into a freshly wrapped value.
func Unmarshal[T any](ctx context.Context, c Codec, data []byte) (*notcopy.Value[T], error) {
	typeName := reflect.TypeFor[T]().String()
	emitUnmarshalStart(ctx, c.ContentType(), typeName)
	start := time.Now()

	v := new(notcopy.Value[T])
	if err := c.Unmarshal(data, v); err != nil {
		err = newCodecError(ErrUnmarshal, err)
		emitUnmarshalComplete(ctx, c.ContentType(), typeName, len(data), time.Since(start), err)
		return nil, err
	}

	emitUnmarshalComplete(ctx, c.ContentType(), typeName, len(data), time.Since(start), nil)
	return v, nil
}
