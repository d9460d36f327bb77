package notcopy

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

func TestJSON_ByteIdentical(t *testing.T) {
	order := Order{ID: "ord-1", Items: []string{"a", "b"}}

	bare, err := json.Marshal(order)
	if err != nil {
		t.Fatalf("Marshal(bare) error: %v", err)
	}
	wrapped, err := json.Marshal(New(order))
	if err != nil {
		t.Fatalf("Marshal(wrapped) error: %v", err)
	}

	if !bytes.Equal(bare, wrapped) {
		t.Errorf("wrapped JSON = %s, want %s", wrapped, bare)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	order := Order{ID: "ord-1", Items: []string{"a", "b"}}
	data, err := json.Marshal(order)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var w Value[Order]
	if err := json.Unmarshal(data, &w); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if w.V.ID != "ord-1" || len(w.V.Items) != 2 {
		t.Errorf("round-trip V = %+v, want %+v", &w, order)
	}
}

func TestJSON_StructField(t *testing.T) {
	type stats struct {
		Hits *Value[int] `json:"hits"`
	}

	data, err := json.Marshal(stats{Hits: New(3)})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if want := `{"hits":3}`; string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var got stats
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if got.Hits.V != 3 {
		t.Errorf("Hits.V = %d, want 3", got.Hits.V)
	}
}

func TestXML_ByteIdentical(t *testing.T) {
	order := Order{ID: "ord-1", Items: []string{"a"}}

	bare, err := xml.Marshal(order)
	if err != nil {
		t.Fatalf("Marshal(bare) error: %v", err)
	}
	wrapped, err := xml.Marshal(New(order))
	if err != nil {
		t.Fatalf("Marshal(wrapped) error: %v", err)
	}

	if !bytes.Equal(bare, wrapped) {
		t.Errorf("wrapped XML = %s, want %s", wrapped, bare)
	}
}

func TestXML_RoundTrip(t *testing.T) {
	order := Order{ID: "ord-1", Items: []string{"a", "b"}}
	data, err := xml.Marshal(order)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var w Value[Order]
	if err := xml.Unmarshal(data, &w); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if w.V.ID != "ord-1" || len(w.V.Items) != 2 {
		t.Errorf("round-trip V = %+v, want %+v", &w, order)
	}
}

func TestYAML_ByteIdentical(t *testing.T) {
	order := Order{ID: "ord-1", Items: []string{"a", "b"}}

	bare, err := yaml.Marshal(order)
	if err != nil {
		t.Fatalf("Marshal(bare) error: %v", err)
	}
	wrapped, err := yaml.Marshal(New(order))
	if err != nil {
		t.Fatalf("Marshal(wrapped) error: %v", err)
	}

	if !bytes.Equal(bare, wrapped) {
		t.Errorf("wrapped YAML = %s, want %s", wrapped, bare)
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	data, err := yaml.Marshal(map[string]int{"a": 1, "b": 2})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var w Value[map[string]int]
	if err := yaml.Unmarshal(data, &w); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if w.V["a"] != 1 || w.V["b"] != 2 {
		t.Errorf("round-trip V = %v, want map[a:1 b:2]", w.V)
	}
}

func TestMsgpack_ByteIdentical(t *testing.T) {
	order := Order{ID: "ord-1", Items: []string{"a"}}

	bare, err := msgpack.Marshal(order)
	if err != nil {
		t.Fatalf("Marshal(bare) error: %v", err)
	}
	wrapped, err := msgpack.Marshal(New(order))
	if err != nil {
		t.Fatalf("Marshal(wrapped) error: %v", err)
	}

	if !bytes.Equal(bare, wrapped) {
		t.Errorf("wrapped msgpack = %x, want %x", wrapped, bare)
	}
}

func TestMsgpack_RoundTrip(t *testing.T) {
	data, err := msgpack.Marshal(Order{ID: "ord-1", Items: []string{"a"}})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var w Value[Order]
	if err := msgpack.Unmarshal(data, &w); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if w.V.ID != "ord-1" {
		t.Errorf("round-trip ID = %q, want \"ord-1\"", w.V.ID)
	}
}

func TestDigest_AgreesWithBareEncoding(t *testing.T) {
	order := Order{ID: "ord-1", Items: []string{"a", "b"}}

	got, err := Digest(New(order))
	if err != nil {
		t.Fatalf("Digest error: %v", err)
	}

	data, err := json.Marshal(order)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := blake2b.Sum256(data)

	if got != want {
		t.Errorf("Digest = %x, want %x", got, want)
	}
}

func TestDigest_Unencodable(t *testing.T) {
	if _, err := Digest(New(make(chan int))); err == nil {
		t.Error("Digest of an unencodable value should surface the codec error")
	}
}
