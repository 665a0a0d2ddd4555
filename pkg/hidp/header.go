package hidp

// Header is the one-byte prefix of every HIDP message: a 4-bit message
// type in the upper nibble and a 4-bit parameter in the lower nibble.
//
//  7    4 3    0
//  +------+------+
//  | Type | Param|
//  +------+------+
//
// Both fields are masked to 4 bits on decode. Construction does not
// range-check; callers supply coherent values (they originate from the
// constant tables or from a masked decode).
type Header struct {
    Type  MessageType
    Param Parameter
}

// HeaderFromByte splits a raw byte into its two nibbles. Total: any byte
// yields a valid Header.
func HeaderFromByte(b byte) Header {
    return Header{
        Type:  MessageType((b >> 4) & 0xF),
        Param: Parameter(b & 0xF),
    }
}

// Byte packs the header back into its wire byte.
func (h Header) Byte() byte {
    return byte(h.Type)<<4 | byte(h.Param)
}
