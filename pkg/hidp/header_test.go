package hidp

import "testing"

func TestHeaderPackingExhaustive(t *testing.T) {
    for typ := 0; typ < 16; typ++ {
        for param := 0; param < 16; param++ {
            h := Header{Type: MessageType(typ), Param: Parameter(param)}
            got := HeaderFromByte(h.Byte())
            if got.Type != h.Type || got.Param != h.Param {
                t.Fatalf("roundtrip (%d,%d) -> (%d,%d)", typ, param, got.Type, got.Param)
            }
        }
    }
}

func TestHeaderFromByteMasks(t *testing.T) {
    h := HeaderFromByte(0xA1)
    if h.Type != MsgData { t.Fatalf("type = %v", h.Type) }
    if h.Param != 1 { t.Fatalf("param = %d", h.Param) }
}

func TestHeaderByteLayout(t *testing.T) {
    h := Header{Type: MsgSetReport, Param: ReportFeature}
    if b := h.Byte(); b != 0x53 {
        t.Fatalf("byte = 0x%02X, want 0x53", b)
    }
}
