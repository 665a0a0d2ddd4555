// Package trace captures decoded HIDP control-channel messages as
// serializable records for diagnostic dumps. It is a tooling surface,
// not a transport.
package trace

import (
    "fmt"
    "time"

    "github.com/eyanje/hidp/pkg/hidp"
    "github.com/eyanje/hidp/pkg/hidp/codec"
)

// Format is a compact indicator of record encoding, carried as the first
// byte of every encoded record.
type Format uint8

const (
    FormatUnknown Format = iota
    FormatJSON
    FormatCBOR
)

const (
    ContentUnknown = "application/octet-stream"
    ContentJSON    = "application/json"
    ContentCBOR    = "application/cbor"
)

func (f Format) String() string {
    switch f {
    case FormatJSON:
        return ContentJSON
    case FormatCBOR:
        return ContentCBOR
    default:
        return ContentUnknown
    }
}

// ParseFormat maps a format name ("json" or "cbor") to its Format.
func ParseFormat(name string) (Format, error) {
    switch name {
    case "json":
        return FormatJSON, nil
    case "cbor":
        return FormatCBOR, nil
    default:
        return FormatUnknown, fmt.Errorf("unknown trace format: %q", name)
    }
}

// Record is one captured control-channel message. Payload holds the raw
// report bytes for the payload-carrying message types and is empty for
// the parameter-only ones.
type Record struct {
    Time      time.Time `json:"time" cbor:"time"`
    Direction string    `json:"dir" cbor:"dir"`
    Type      string    `json:"type" cbor:"type"`
    Code      uint8     `json:"code" cbor:"code"`
    Parameter uint8     `json:"param" cbor:"param"`
    Payload   []byte    `json:"payload,omitempty" cbor:"payload,omitempty"`
}

// NewRecord builds a Record from a decoded message. dir is a free-form
// direction tag, conventionally "in" or "out".
func NewRecord(dir string, m hidp.Message) Record {
    return Record{
        Time:      time.Now().UTC(),
        Direction: dir,
        Type:      m.MessageType().String(),
        Code:      uint8(m.MessageType()),
        Parameter: uint8(m.Parameter()),
        Payload:   m.Data(),
    }
}

// CodecFor returns a codec instance for a given format.
func CodecFor(r *codec.Registry, f Format) (codec.Codec, error) {
    switch f {
    case FormatJSON:
        if c := r.Get(ContentJSON); c != nil { return c, nil }
        return codec.JSON(), nil
    case FormatCBOR:
        if c := r.Get(ContentCBOR); c != nil { return c, nil }
        return codec.CBOR()
    default:
        return nil, fmt.Errorf("unknown format: %d", f)
    }
}

// EncodeRecord serializes rec using the codec for f and prefixes the
// output with a single format byte.
func EncodeRecord(r *codec.Registry, f Format, rec Record) ([]byte, error) {
    c, err := CodecFor(r, f)
    if err != nil { return nil, err }
    b, err := c.Marshal(rec)
    if err != nil { return nil, err }
    out := make([]byte, 1+len(b))
    out[0] = byte(f)
    copy(out[1:], b)
    return out, nil
}

// DecodeRecord decodes a buffer produced by EncodeRecord, returning the
// detected format alongside the record.
func DecodeRecord(r *codec.Registry, buf []byte) (Record, Format, error) {
    if len(buf) == 0 {
        return Record{}, FormatUnknown, fmt.Errorf("empty record")
    }
    f := Format(buf[0])
    c, err := CodecFor(r, f)
    if err != nil { return Record{}, f, err }
    var rec Record
    if err := c.Unmarshal(buf[1:], &rec); err != nil { return Record{}, f, err }
    return rec, f, nil
}
