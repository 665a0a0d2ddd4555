// Package hidp implements the wire encoding of Bluetooth HID protocol
// (HIDP) control-channel messages, section 3 of the Bluetooth HID
// specification.
package hidp

import "fmt"

// MessageType is the 4-bit code in the upper nibble of a HIDP header.
type MessageType uint8

// Parameter is the 4-bit code in the lower nibble of a HIDP header.
// Its meaning depends on the message type: handshake result, protocol
// mode, or report-type selector.
type Parameter uint8

// Message types (upper header nibble). Codes absent from this table,
// including the deprecated GET_IDLE/SET_IDLE pair, are rejected on decode.
const (
    MsgHandshake   MessageType = 0x0
    MsgHidControl  MessageType = 0x1
    MsgGetReport   MessageType = 0x4
    MsgSetReport   MessageType = 0x5
    MsgGetProtocol MessageType = 0x6
    MsgSetProtocol MessageType = 0x7
    MsgData        MessageType = 0xA
)

// Handshake result codes, valid only as the parameter of MsgHandshake.
const (
    ResultSuccessful            Parameter = 0x0
    ResultNotReady              Parameter = 0x1
    ResultErrInvalidReportID    Parameter = 0x2
    ResultErrUnsupportedRequest Parameter = 0x3
    ResultErrInvalidParameter   Parameter = 0x4
    ResultErrUnknown            Parameter = 0xE
    ResultErrFatal              Parameter = 0xF
)

// Protocol modes, valid only as the parameter of MsgSetProtocol
// (and reported via MsgData in reply to MsgGetProtocol).
const (
    ProtocolBoot   Parameter = 0x0
    ProtocolReport Parameter = 0x1
)

// Report types for MsgData, MsgGetReport and MsgSetReport parameters.
const (
    ReportOther   Parameter = 0
    ReportInput   Parameter = 1
    ReportOutput  Parameter = 2
    ReportFeature Parameter = 3
)

// messageTypeNames maps supported codes to names for logging and diagnostics.
var messageTypeNames = map[MessageType]string{
    MsgHandshake:   "HANDSHAKE",
    MsgHidControl:  "HID_CONTROL",
    MsgGetReport:   "GET_REPORT",
    MsgSetReport:   "SET_REPORT",
    MsgGetProtocol: "GET_PROTOCOL",
    MsgSetProtocol: "SET_PROTOCOL",
    MsgData:        "DATA",
}

func (t MessageType) String() string {
    if name, ok := messageTypeNames[t]; ok {
        return name
    }
    return fmt.Sprintf("UNSUPPORTED(0x%X)", uint8(t))
}

// Supported reports whether t is one of the message types this codec decodes.
func (t MessageType) Supported() bool {
    _, ok := messageTypeNames[t]
    return ok
}
