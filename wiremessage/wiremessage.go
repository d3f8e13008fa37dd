// Package wiremessage contains the MongoDB wire protocol messages this
// library consumes. Only the server-to-client OP_REPLY is modeled fully;
// the remaining opcodes exist so headers can be classified.
package wiremessage

// OpCode represents a MongoDB wire protocol opcode.
type OpCode int32

// These constants are the wire protocol opcodes.
const (
	OpReply       OpCode = 1
	OpQuery       OpCode = 2004
	OpGetMore     OpCode = 2005
	OpKillCursors OpCode = 2007
	OpMsg         OpCode = 2013
)

// Header represents the standard header prefixing every wire message.
type Header struct {
	Length     int32
	RequestID  int32
	ResponseTo int32
	OpCode     OpCode
}

// ReadHeader reads a header from src and returns the remaining bytes.
func ReadHeader(src []byte) (h Header, rem []byte, ok bool) {
	if len(src) < 16 {
		return Header{}, src, false
	}
	h.Length, rem, _ = readi32(src)
	h.RequestID, rem, _ = readi32(rem)
	h.ResponseTo, rem, _ = readi32(rem)
	var opcode int32
	opcode, rem, _ = readi32(rem)
	h.OpCode = OpCode(opcode)
	return h, rem, true
}

func appendHeader(dst []byte, reqid, respto int32, opcode OpCode) []byte {
	dst = appendi32(dst, reqid)
	dst = appendi32(dst, respto)
	return appendi32(dst, int32(opcode))
}

func appendi32(dst []byte, i32 int32) []byte {
	return append(dst, byte(i32), byte(i32>>8), byte(i32>>16), byte(i32>>24))
}

func appendi64(dst []byte, i64 int64) []byte {
	return append(dst, byte(i64), byte(i64>>8), byte(i64>>16), byte(i64>>24),
		byte(i64>>32), byte(i64>>40), byte(i64>>48), byte(i64>>56))
}

func readi32(src []byte) (int32, []byte, bool) {
	if len(src) < 4 {
		return 0, src, false
	}

	return (int32(src[0]) | int32(src[1])<<8 | int32(src[2])<<16 | int32(src[3])<<24), src[4:], true
}

func readi64(src []byte) (int64, []byte, bool) {
	if len(src) < 8 {
		return 0, src, false
	}
	i64 := (int64(src[0]) | int64(src[1])<<8 | int64(src[2])<<16 | int64(src[3])<<24 |
		int64(src[4])<<32 | int64(src[5])<<40 | int64(src[6])<<48 | int64(src[7])<<56)
	return i64, src[8:], true
}
