package wiremessage

import (
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/x/bsonx/bsoncore"
)

// ReplyFlag represents the flags of an OP_REPLY message.
type ReplyFlag int32

// These constants represent the individual flags of an OP_REPLY message.
const (
	CursorNotFound ReplyFlag = 1 << iota
	QueryFailure
	ShardConfigStale
	AwaitCapable
)

// Reply represents the OP_REPLY message of the MongoDB wire protocol.
type Reply struct {
	MsgHeader      Header
	ResponseFlags  ReplyFlag
	CursorID       int64
	StartingFrom   int32
	NumberReturned int32
	Documents      []bsoncore.Document
}

// AppendWireMessage encodes r, including its header, onto dst. The length
// field of the header is computed from the encoded size.
func (r Reply) AppendWireMessage(dst []byte) []byte {
	idx, dst := bsoncore.ReserveLength(dst)
	dst = appendHeader(dst, r.MsgHeader.RequestID, r.MsgHeader.ResponseTo, OpReply)
	dst = appendi32(dst, int32(r.ResponseFlags))
	dst = appendi64(dst, r.CursorID)
	dst = appendi32(dst, r.StartingFrom)
	dst = appendi32(dst, r.NumberReturned)
	for _, doc := range r.Documents {
		dst = append(dst, doc...)
	}
	return bsoncore.UpdateLength(dst, idx, int32(len(dst[idx:])))
}

// UnmarshalWireMessage decodes a complete OP_REPLY, including its header,
// from src.
func (r *Reply) UnmarshalWireMessage(src []byte) error {
	header, rem, ok := ReadHeader(src)
	if !ok {
		return errors.New("unable to read reply header")
	}
	if header.OpCode != OpReply {
		return errors.Errorf("opcode %d is not OP_REPLY", header.OpCode)
	}
	if int(header.Length) != len(src) {
		return errors.Errorf("reply length %d does not match buffer length %d", header.Length, len(src))
	}

	var flags int32
	flags, rem, ok = readi32(rem)
	if !ok {
		return errors.New("unable to read response flags")
	}
	cursorID, rem, ok := readi64(rem)
	if !ok {
		return errors.New("unable to read cursor id")
	}
	startingFrom, rem, ok := readi32(rem)
	if !ok {
		return errors.New("unable to read starting from")
	}
	numReturned, rem, ok := readi32(rem)
	if !ok {
		return errors.New("unable to read number returned")
	}

	var docs []bsoncore.Document
	for len(rem) > 0 {
		var doc bsoncore.Document
		doc, rem, ok = bsoncore.ReadDocument(rem)
		if !ok {
			return errors.New("unable to read reply document")
		}
		if err := doc.Validate(); err != nil {
			return errors.Wrap(err, "invalid reply document")
		}
		docs = append(docs, doc)
	}
	if int(numReturned) != len(docs) {
		return errors.Errorf("numberReturned is %d but reply contains %d documents", numReturned, len(docs))
	}

	r.MsgHeader = header
	r.ResponseFlags = ReplyFlag(flags)
	r.CursorID = cursorID
	r.StartingFrom = startingFrom
	r.NumberReturned = numReturned
	r.Documents = docs
	return nil
}
