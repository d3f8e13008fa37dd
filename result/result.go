// Package result interprets the server replies to a single logical
// operation. It aggregates one or more OP_REPLY messages into a flat view
// of the returned documents and classifies the command-level, per-write and
// write-concern failure channels the server reports.
package result

import (
	"sync"

	"go.mongodb.org/mongo-driver/v2/x/bsonx/bsoncore"

	"github.com/devops001/mongo-core/wiremessage"
)

var emptyDoc = bsoncore.Document{0x05, 0x00, 0x00, 0x00, 0x00}

// Result is the outcome of a logical operation. A Result constructed from
// zero replies represents an unacknowledged write. Replies are immutable
// once the Result is constructed, so a Result may be read from multiple
// goroutines.
type Result struct {
	replies []wiremessage.Reply

	firstOnce sync.Once
	first     bsoncore.Document
}

// NewResult constructs a Result from the replies received for one logical
// operation. Pass no replies for an unacknowledged write.
func NewResult(replies ...wiremessage.Reply) *Result {
	return &Result{replies: replies}
}

// Acknowledged indicates whether the server confirmed the operation. It is
// false only for fire-and-forget writes, which produce no reply at all.
func (r *Result) Acknowledged() bool {
	return len(r.replies) > 0
}

// Multiple indicates whether the operation produced more than one reply.
func (r *Result) Multiple() bool {
	return len(r.replies) > 1
}

// CursorID returns the cursor id of the last reply. Later replies in a
// batch carry the authoritative cursor state, so the first reply's id may
// be stale. It is 0 for unacknowledged results.
func (r *Result) CursorID() int64 {
	if !r.Acknowledged() {
		return 0
	}
	return r.replies[len(r.replies)-1].CursorID
}

// Reply returns the first reply, if any.
func (r *Result) Reply() (wiremessage.Reply, bool) {
	if !r.Acknowledged() {
		return wiremessage.Reply{}, false
	}
	return r.replies[0], true
}

// Documents returns the documents of every reply, flattened in reply order
// then document order. It is empty for unacknowledged results.
func (r *Result) Documents() []bsoncore.Document {
	var docs []bsoncore.Document
	for _, reply := range r.replies {
		docs = append(docs, reply.Documents...)
	}
	return docs
}

// Each calls visit for every aggregated document in order. The traversal is
// restartable: each call walks a fresh flattening of the replies.
func (r *Result) Each(visit func(bsoncore.Document)) {
	for _, doc := range r.Documents() {
		visit(doc)
	}
}

// First returns the first aggregated document, which is where the server
// reports command status. It returns an empty document if the result holds
// no documents. The value is computed once per Result.
func (r *Result) First() bsoncore.Document {
	r.firstOnce.Do(func() {
		docs := r.Documents()
		if len(docs) == 0 {
			r.first = emptyDoc
			return
		}
		r.first = docs[0]
	})
	return r.first
}

// ReturnedCount returns the number of documents the server reported
// returning. A batch of replies each carries a partial count, so multiple
// replies are summed per reply.
func (r *Result) ReturnedCount() int {
	if !r.Acknowledged() {
		return 0
	}
	if r.Multiple() {
		return r.aggregateReturnedCount()
	}
	return int(r.replies[0].NumberReturned)
}

func (r *Result) aggregateReturnedCount() int {
	var total int
	for _, reply := range r.replies {
		total += int(reply.NumberReturned)
	}
	return total
}

// WrittenCount returns the number of documents the server reported writing.
// For a single reply this is the "n" field of the first document. Batched
// write commands report a separate "n" per batch, one document per reply,
// so multiple replies are summed per document rather than per reply.
func (r *Result) WrittenCount() int {
	if !r.Acknowledged() {
		return 0
	}
	if r.Multiple() {
		return r.aggregateWrittenCount()
	}
	return documentN(r.First())
}

// N is shorthand for WrittenCount, mirroring the field name on the wire.
func (r *Result) N() int {
	return r.WrittenCount()
}

func (r *Result) aggregateWrittenCount() int {
	var total int
	for _, doc := range r.Documents() {
		total += documentN(doc)
	}
	return total
}

func documentN(doc bsoncore.Document) int {
	val, err := doc.LookupErr("n")
	if err != nil {
		return 0
	}
	n, ok := val.AsInt64OK()
	if !ok {
		return 0
	}
	return int(n)
}
