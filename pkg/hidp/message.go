package hidp

import (
    "fmt"
    "io"
)

// ErrInvalidMessageType is returned by Unmarshal and ReadMessage when the
// header's type nibble is not a supported message type. Deprecated codes
// (0x2, 0x3, 0x8 GET_IDLE, 0x9 SET_IDLE) fall in this category.
var ErrInvalidMessageType = fmt.Errorf("hidp: invalid message type")

// Message is one HIDP control-channel message. The concrete types are a
// closed set: Handshake, HidControl, GetReport, SetReport, GetProtocol,
// SetProtocol and Data. A Message is immutable after construction and
// exclusively owns any payload it carries.
type Message interface {
    // MessageType returns the wire code of this message's kind.
    MessageType() MessageType
    // Parameter returns the 4-bit parameter carried in the header.
    Parameter() Parameter
    // Data returns the payload for GetReport, SetReport and Data,
    // nil for the parameter-only messages.
    Data() []byte

    isMessage()
}

// Handshake acknowledges a host request with a result code.
type Handshake struct{ Result Parameter }

// HidControl carries a control operation code such as suspend or unplug.
type HidControl struct{ Op Parameter }

// GetReport requests a report from the device; Request holds optional
// additional request data such as a report ID and buffer size.
type GetReport struct {
    ReportType Parameter
    Request    []byte
}

// SetReport pushes report bytes to the device.
type SetReport struct {
    ReportType Parameter
    Report     []byte
}

// GetProtocol queries the current protocol mode. Its parameter is unused
// on the wire but preserved for lossless round-trips.
type GetProtocol struct{ Param Parameter }

// SetProtocol selects ProtocolBoot or ProtocolReport.
type SetProtocol struct{ Mode Parameter }

// Data is an asynchronous report transfer. ReportType is one of the
// Report* codes; Payload is the opaque report contents.
type Data struct {
    ReportType Parameter
    Payload    []byte
}

func (m Handshake) MessageType() MessageType   { return MsgHandshake }
func (m HidControl) MessageType() MessageType  { return MsgHidControl }
func (m GetReport) MessageType() MessageType   { return MsgGetReport }
func (m SetReport) MessageType() MessageType   { return MsgSetReport }
func (m GetProtocol) MessageType() MessageType { return MsgGetProtocol }
func (m SetProtocol) MessageType() MessageType { return MsgSetProtocol }
func (m Data) MessageType() MessageType        { return MsgData }

func (m Handshake) Parameter() Parameter   { return m.Result }
func (m HidControl) Parameter() Parameter  { return m.Op }
func (m GetReport) Parameter() Parameter   { return m.ReportType }
func (m SetReport) Parameter() Parameter   { return m.ReportType }
func (m GetProtocol) Parameter() Parameter { return m.Param }
func (m SetProtocol) Parameter() Parameter { return m.Mode }
func (m Data) Parameter() Parameter        { return m.ReportType }

func (m Handshake) Data() []byte   { return nil }
func (m HidControl) Data() []byte  { return nil }
func (m GetReport) Data() []byte   { return m.Request }
func (m SetReport) Data() []byte   { return m.Report }
func (m GetProtocol) Data() []byte { return nil }
func (m SetProtocol) Data() []byte { return nil }
func (m Data) Data() []byte        { return m.Payload }

func (Handshake) isMessage()   {}
func (HidControl) isMessage()  {}
func (GetReport) isMessage()   {}
func (SetReport) isMessage()   {}
func (GetProtocol) isMessage() {}
func (SetProtocol) isMessage() {}
func (Data) isMessage()        {}

// DataOther constructs a Data message for a report other than an input,
// output, or feature report.
func DataOther(payload []byte) Data { return Data{ReportType: ReportOther, Payload: payload} }

// DataInput constructs a Data message for an input report.
func DataInput(payload []byte) Data { return Data{ReportType: ReportInput, Payload: payload} }

// DataOutput constructs a Data message for an output report.
func DataOutput(payload []byte) Data { return Data{ReportType: ReportOutput, Payload: payload} }

// DataFeature constructs a Data message for a feature report.
func DataFeature(payload []byte) Data { return Data{ReportType: ReportFeature, Payload: payload} }

// HeaderFor derives the wire header of m from its type and parameter.
func HeaderFor(m Message) Header {
    return Header{Type: m.MessageType(), Param: m.Parameter()}
}

// Unmarshal decodes a single HIDP message from buf in one pass. The first
// byte is the header; for GetReport, SetReport and Data the remaining
// bytes become the message's owned payload (zero length is valid), while
// parameter-only messages ignore any trailing bytes. An empty buf fails
// with io.ErrUnexpectedEOF, an unsupported type nibble with
// ErrInvalidMessageType.
func Unmarshal(buf []byte) (Message, error) {
    if len(buf) == 0 {
        return nil, io.ErrUnexpectedEOF
    }
    h := HeaderFromByte(buf[0])
    switch h.Type {
    case MsgHandshake:
        return Handshake{Result: h.Param}, nil
    case MsgHidControl:
        return HidControl{Op: h.Param}, nil
    case MsgGetReport:
        return GetReport{ReportType: h.Param, Request: cloneBytes(buf[1:])}, nil
    case MsgSetReport:
        return SetReport{ReportType: h.Param, Report: cloneBytes(buf[1:])}, nil
    case MsgGetProtocol:
        return GetProtocol{Param: h.Param}, nil
    case MsgSetProtocol:
        return SetProtocol{Mode: h.Param}, nil
    case MsgData:
        return Data{ReportType: h.Param, Payload: cloneBytes(buf[1:])}, nil
    default:
        return nil, fmt.Errorf("%w: 0x%X", ErrInvalidMessageType, uint8(h.Type))
    }
}

// ReadMessage decodes one message from r, consuming it to EOF. The
// stream form of Unmarshal for callers holding an io.Reader rather than
// a buffer.
func ReadMessage(r io.Reader) (Message, error) {
    var hb [1]byte
    if _, err := io.ReadFull(r, hb[:]); err != nil {
        return nil, err
    }
    rest, err := io.ReadAll(r)
    if err != nil {
        return nil, err
    }
    return Unmarshal(append(hb[:], rest...))
}

// Marshal encodes m as its exact wire bytes: one header byte followed by
// the payload, if any. Total over all constructible messages;
// Unmarshal(Marshal(m)) reproduces m.
func Marshal(m Message) []byte {
    data := m.Data()
    out := make([]byte, 1, 1+len(data))
    out[0] = HeaderFor(m).Byte()
    return append(out, data...)
}

// WriteMessage writes the wire bytes of m to w.
func WriteMessage(w io.Writer, m Message) (int, error) {
    return w.Write(Marshal(m))
}

func cloneBytes(b []byte) []byte {
    return append([]byte(nil), b...)
}
