package hidp

import (
    "bytes"
    "errors"
    "io"
    "testing"
)

func TestRoundTripAllVariants(t *testing.T) {
    msgs := []Message{
        Handshake{Result: ResultSuccessful},
        Handshake{Result: ResultErrFatal},
        HidControl{Op: 0x5},
        GetReport{ReportType: ReportInput, Request: []byte{0x01, 0x02}},
        SetReport{ReportType: ReportOutput, Report: []byte{0xFF}},
        GetProtocol{},
        SetProtocol{Mode: ProtocolBoot},
        SetProtocol{Mode: ProtocolReport},
        DataOther(nil),
        DataInput([]byte{0xDE, 0xAD}),
        DataOutput([]byte{0x00}),
        DataFeature([]byte{0xAB}),
    }
    for _, m := range msgs {
        wire := Marshal(m)
        got, err := Unmarshal(wire)
        if err != nil { t.Fatalf("%v: decode: %v", m.MessageType(), err) }
        if got.MessageType() != m.MessageType() || got.Parameter() != m.Parameter() {
            t.Fatalf("%v: header mismatch after roundtrip", m.MessageType())
        }
        if !bytes.Equal(got.Data(), m.Data()) {
            t.Fatalf("%v: payload mismatch after roundtrip", m.MessageType())
        }
        if !bytes.Equal(Marshal(got), wire) {
            t.Fatalf("%v: re-encode differs from original", m.MessageType())
        }
    }
}

func TestUnmarshalEmptyBuffer(t *testing.T) {
    if _, err := Unmarshal(nil); !errors.Is(err, io.ErrUnexpectedEOF) {
        t.Fatalf("err = %v, want io.ErrUnexpectedEOF", err)
    }
}

func TestUnmarshalBareDataHeader(t *testing.T) {
    m, err := Unmarshal([]byte{0xA1})
    if err != nil { t.Fatalf("decode: %v", err) }
    d, ok := m.(Data)
    if !ok { t.Fatalf("got %T, want Data", m) }
    if d.ReportType != ReportInput { t.Fatalf("report type = %d", d.ReportType) }
    if len(d.Payload) != 0 { t.Fatalf("payload = %x, want empty", d.Payload) }
}

func TestUnmarshalGetReport(t *testing.T) {
    wire := []byte{0x41, 0x07}
    m, err := Unmarshal(wire)
    if err != nil { t.Fatalf("decode: %v", err) }
    gr, ok := m.(GetReport)
    if !ok { t.Fatalf("got %T, want GetReport", m) }
    if gr.ReportType != 1 { t.Fatalf("report type = %d", gr.ReportType) }
    if !bytes.Equal(gr.Request, []byte{0x07}) { t.Fatalf("request = %x", gr.Request) }
    if !bytes.Equal(Marshal(m), wire) { t.Fatalf("re-encode = %x", Marshal(m)) }
}

func TestUnmarshalRejectsUnsupportedTypes(t *testing.T) {
    for _, wire := range [][]byte{
        {0x20},             // reserved
        {0x3F},             // reserved, nonzero parameter
        {0x80, 0x01},       // GET_IDLE, deprecated
        {0x90},             // SET_IDLE, deprecated
        {0xB0, 0xAA, 0xBB}, // unassigned, trailing bytes
        {0xF2},
    } {
        if _, err := Unmarshal(wire); !errors.Is(err, ErrInvalidMessageType) {
            t.Fatalf("wire %x: err = %v, want ErrInvalidMessageType", wire, err)
        }
    }
}

func TestUnmarshalIgnoresTrailingBytes(t *testing.T) {
    // Parameter-only messages tolerate trailing bytes on decode.
    m, err := Unmarshal([]byte{0x00, 0xDE, 0xAD})
    if err != nil { t.Fatalf("decode: %v", err) }
    hs, ok := m.(Handshake)
    if !ok { t.Fatalf("got %T, want Handshake", m) }
    if hs.Result != ResultSuccessful { t.Fatalf("result = %d", hs.Result) }
    if m.Data() != nil { t.Fatalf("data = %x, want nil", m.Data()) }
    if !bytes.Equal(Marshal(m), []byte{0x00}) { t.Fatalf("re-encode = %x", Marshal(m)) }
}

func TestDataFeatureEncoding(t *testing.T) {
    got := Marshal(DataFeature([]byte{0xAB}))
    if !bytes.Equal(got, []byte{0xA3, 0xAB}) {
        t.Fatalf("encode = %x, want a3ab", got)
    }
}

func TestDataConstructorsSetReportType(t *testing.T) {
    cases := []struct {
        m    Data
        want Parameter
    }{
        {DataOther([]byte{1}), ReportOther},
        {DataInput([]byte{1}), ReportInput},
        {DataOutput([]byte{1}), ReportOutput},
        {DataFeature([]byte{1}), ReportFeature},
    }
    for _, c := range cases {
        if c.m.ReportType != c.want {
            t.Fatalf("report type = %d, want %d", c.m.ReportType, c.want)
        }
    }
}

func TestUnmarshalCopiesPayload(t *testing.T) {
    wire := []byte{0xA2, 0x11, 0x22}
    m, err := Unmarshal(wire)
    if err != nil { t.Fatalf("decode: %v", err) }
    wire[1] = 0xFF
    if !bytes.Equal(m.Data(), []byte{0x11, 0x22}) {
        t.Fatalf("payload aliases caller buffer: %x", m.Data())
    }
}

func TestReadMessage(t *testing.T) {
    m, err := ReadMessage(bytes.NewReader([]byte{0x52, 0x01, 0x02, 0x03}))
    if err != nil { t.Fatalf("read: %v", err) }
    sr, ok := m.(SetReport)
    if !ok { t.Fatalf("got %T, want SetReport", m) }
    if sr.ReportType != ReportOutput { t.Fatalf("report type = %d", sr.ReportType) }
    if !bytes.Equal(sr.Report, []byte{0x01, 0x02, 0x03}) { t.Fatalf("report = %x", sr.Report) }

    if _, err := ReadMessage(bytes.NewReader(nil)); err == nil {
        t.Fatalf("empty reader: want error")
    }
}

func TestWriteMessage(t *testing.T) {
    var buf bytes.Buffer
    n, err := WriteMessage(&buf, SetProtocol{Mode: ProtocolReport})
    if err != nil { t.Fatalf("write: %v", err) }
    if n != 1 || !bytes.Equal(buf.Bytes(), []byte{0x71}) {
        t.Fatalf("wrote %d bytes %x", n, buf.Bytes())
    }
}

func TestMessageTypeString(t *testing.T) {
    if s := MsgHandshake.String(); s != "HANDSHAKE" { t.Fatalf("s = %q", s) }
    if s := MessageType(0x8).String(); s != "UNSUPPORTED(0x8)" { t.Fatalf("s = %q", s) }
    if MessageType(0x8).Supported() { t.Fatalf("0x8 reported as supported") }
    if !MsgData.Supported() { t.Fatalf("DATA reported as unsupported") }
}
