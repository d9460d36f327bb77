package notcopy

import (
	"encoding/json"
	"encoding/xml"
	"reflect"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

// A Value serializes with no framing of its own: the encoded form is
// byte-identical to encoding the bare value, and decoding reads a bare value
// and wraps it. Marshal hooks are provided for JSON, XML, YAML, and
// MessagePack; pass a *Value to the encoder so the pointer-receiver hooks
// are seen.

var (
	_ json.Marshaler        = (*Value[int])(nil)
	_ json.Unmarshaler      = (*Value[int])(nil)
	_ xml.Marshaler         = (*Value[int])(nil)
	_ xml.Unmarshaler       = (*Value[int])(nil)
	_ yaml.Marshaler        = (*Value[int])(nil)
	_ yaml.Unmarshaler      = (*Value[int])(nil)
	_ msgpack.CustomEncoder = (*Value[int])(nil)
	_ msgpack.CustomDecoder = (*Value[int])(nil)
)

// MarshalJSON encodes the contained value.
func (v *Value[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.V)
}

// UnmarshalJSON decodes into the contained value.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &v.V)
}

// MarshalXML encodes the contained value under the caller's element. A
// top-level marshal derives the element name from the wrapper's instantiated
// generic type name, which is not a valid XML name; substitute the inner
// type's name so the output matches marshaling the bare value.
func (v *Value[T]) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if strings.Contains(start.Name.Local, "[") {
		if name := reflect.TypeFor[T]().Name(); name != "" {
			start.Name.Local = name
		}
	}
	return e.EncodeElement(v.V, start)
}

// UnmarshalXML decodes the caller's element into the contained value.
func (v *Value[T]) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return d.DecodeElement(&v.V, &start)
}

// MarshalYAML exposes the contained value to the YAML encoder.
func (v *Value[T]) MarshalYAML() (any, error) {
	return v.V, nil
}

// UnmarshalYAML decodes the node into the contained value.
func (v *Value[T]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&v.V)
}

// EncodeMsgpack encodes the contained value.
func (v *Value[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(v.V)
}

// DecodeMsgpack decodes into the contained value.
func (v *Value[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	return dec.Decode(&v.V)
}

// Digest returns a BLAKE2b-256 fingerprint of the contained value's JSON
// encoding. Because encoding is transparent, the digest of a wrapped value
// equals the digest of the bare value, making it usable for deterministic
// identification across processes where maphash seeds don't travel.
func Digest[T any](v *Value[T]) ([blake2b.Size256]byte, error) {
	data, err := json.Marshal(v.V)
	if err != nil {
		return [blake2b.Size256]byte{}, err
	}
	return blake2b.Sum256(data), nil
}
