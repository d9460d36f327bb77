package codec

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalMarshalStart      = capitan.NewSignal("notcopy.marshal.start", "Marshal operation beginning")
	SignalMarshalComplete   = capitan.NewSignal("notcopy.marshal.complete", "Marshal operation finished")
	SignalUnmarshalStart    = capitan.NewSignal("notcopy.unmarshal.start", "Unmarshal operation beginning")
	SignalUnmarshalComplete = capitan.NewSignal("notcopy.unmarshal.complete", "Unmarshal operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitMarshalStart emits an event when marshal begins.
func emitMarshalStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalMarshalStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitMarshalComplete emits an event when marshal finishes.
func emitMarshalComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalMarshalComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalMarshalComplete, fields...)
	}
}

// emitUnmarshalStart emits an event when unmarshal begins.
func emitUnmarshalStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalUnmarshalStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitUnmarshalComplete emits an event when unmarshal finishes.
func emitUnmarshalComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalUnmarshalComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalUnmarshalComplete, fields...)
	}
}
