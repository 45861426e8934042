package modelclient

import (
	"fmt"

	"gemini-chat/internal/model"
)

// Display strings shown to users when a call fails.
const (
	ErrorPrefix      = "An error occurred: "
	EmptyReplyNotice = "I couldn't generate a response. Please try again."
)

// Request is built fresh per call from the caller's session.
type Request struct {
	Instruction string
	History     []model.Turn
	Message     string
	Temperature float64
}

// ErrorKind classifies why a call produced no reply text.
type ErrorKind string

const (
	KindTransport ErrorKind = "transport" // DNS, timeout, connection refused, cancelled
	KindStatus    ErrorKind = "status"    // non-2xx answer
	KindDecode    ErrorKind = "decode"    // body is not the expected JSON
	KindEmpty     ErrorKind = "empty"     // no candidate, no part, or blank text
)

// ReplyError is the structured failure half of a Reply.
type ReplyError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
}

func (e *ReplyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Reply is the outcome of one generate call: reply text on success, a
// ReplyError otherwise. It is never surfaced as a Go error to front-ends.
type Reply struct {
	Text string
	Err  *ReplyError
}

// OK reports whether the model produced text.
func (r Reply) OK() bool {
	return r.Err == nil
}

// Display is the text a front-end shows for this reply.
func (r Reply) Display() string {
	if r.Err == nil {
		return r.Text
	}
	if r.Err.Kind == KindEmpty {
		return EmptyReplyNotice
	}
	return ErrorPrefix + r.Err.Message
}
