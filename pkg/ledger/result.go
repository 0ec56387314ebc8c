package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ResultKind tags the shape of a successful ledger response body.
type ResultKind int

const (
	// ResultText is a plain-text body, e.g. a transfer confirmation string.
	ResultText ResultKind = iota
	// ResultJSON is a structured body whose content type declared JSON.
	ResultJSON
)

// Result is a successfully decoded ledger response. The ledger service answers
// some endpoints with JSON objects and others with bare confirmation strings,
// so callers switch on Kind instead of guessing from the bytes.
type Result struct {
	Kind ResultKind
	Raw  []byte // body when Kind == ResultJSON
	Text string // body when Kind == ResultText
}

// Decode unmarshals a JSON result into v. Plain-text results do not decode.
func (r Result) Decode(v any) error {
	if r.Kind != ResultJSON {
		return fmt.Errorf("expected JSON response, got plain text %q", r.Text)
	}
	if err := json.Unmarshal(r.Raw, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Display renders the result for the user: indented JSON for structured
// bodies, the verbatim text otherwise.
func (r Result) Display() string {
	if r.Kind == ResultText {
		return strings.TrimSpace(r.Text)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, r.Raw, "", "  "); err != nil {
		return strings.TrimSpace(string(r.Raw))
	}
	return buf.String()
}

// ServerError is a rejection reported by the ledger service: the request made
// it to the server but the status signaled failure. The message is the literal
// response body when the server provided one.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}
