package result

import "go.mongodb.org/mongo-driver/v2/x/bsonx/bsoncore"

// Successful indicates whether the server reported the operation as having
// succeeded. Unacknowledged results are always successful, since no failure
// can be observed. Acknowledged results succeed iff the "ok" field of the
// first document is the number 1; the server may encode it as an int32,
// int64 or double.
func (r *Result) Successful() bool {
	if !r.Acknowledged() {
		return true
	}
	return okIsOne(r.First())
}

// CommandFailure indicates command-level rejection: the operation was
// acknowledged but either did not report success or carried command error
// fields. It is independent of the per-write and write-concern channels.
func (r *Result) CommandFailure() bool {
	if !r.Acknowledged() {
		return false
	}
	if !r.Successful() {
		return true
	}
	first := r.First()
	if _, err := first.LookupErr("errmsg"); err == nil {
		return true
	}
	if _, err := first.LookupErr("code"); err == nil {
		return true
	}
	return false
}

// HasWriteErrors indicates per-document write failures inside an otherwise
// accepted batch.
func (r *Result) HasWriteErrors() bool {
	if !r.Acknowledged() {
		return false
	}
	val, err := r.First().LookupErr("writeErrors")
	if err != nil {
		return false
	}
	arr, ok := val.ArrayOK()
	if !ok {
		return false
	}
	vals, err := arr.Values()
	return err == nil && len(vals) > 0
}

// HasWriteConcernError indicates the write applied but the requested write
// concern was not satisfied.
func (r *Result) HasWriteConcernError() bool {
	if !r.Acknowledged() {
		return false
	}
	val, err := r.First().LookupErr("writeConcernError")
	if err != nil {
		return false
	}
	doc, ok := val.DocumentOK()
	if !ok {
		return false
	}
	elems, err := doc.Elements()
	return err == nil && len(elems) > 0
}

// WriteFailure is the single verdict over the three failure channels. The
// channels are reported independently because the server can raise any
// combination of them at once; they are only OR'd together here, at the
// point of use.
func (r *Result) WriteFailure() bool {
	if !r.Acknowledged() {
		return false
	}
	return r.CommandFailure() || r.HasWriteErrors() || r.HasWriteConcernError()
}

// Validate returns the receiver unchanged if no failure channel is raised,
// and a WriteFailureError carrying the first document otherwise. It is the
// only method with failure semantics; every other accessor is total.
func (r *Result) Validate() (*Result, error) {
	if r.WriteFailure() {
		return nil, WriteFailureError{
			Message:  errmsgOrDefault(r.First()),
			Response: r.First(),
		}
	}
	return r, nil
}

func okIsOne(doc bsoncore.Document) bool {
	val, err := doc.LookupErr("ok")
	if err != nil {
		return false
	}
	switch val.Type {
	case bsoncore.TypeInt32:
		if i32, ok := val.Int32OK(); ok {
			return i32 == 1
		}
	case bsoncore.TypeInt64:
		if i64, ok := val.Int64OK(); ok {
			return i64 == 1
		}
	case bsoncore.TypeDouble:
		if f64, ok := val.DoubleOK(); ok {
			return f64 == 1
		}
	}
	return false
}

func errmsgOrDefault(doc bsoncore.Document) string {
	if val, err := doc.LookupErr("errmsg"); err == nil {
		if str, ok := val.StringValueOK(); ok {
			return str
		}
	}
	return "write failure"
}
