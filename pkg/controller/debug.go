package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shivabank/console/pkg/notify"
)

// SendRaw is the debug console: it forwards an arbitrary request to the
// accounts resource and renders whatever comes back. Unlike the regular
// operations, a malformed JSON body is reported to the user, and no snapshot
// refresh follows: the debug console bypasses the view-state layer.
func (c *Controllers) SendRaw(ctx context.Context, req RawRequest) Outcome {
	req.Method = strings.ToUpper(strings.TrimSpace(req.Method))
	if err := c.validate.Struct(req); err != nil {
		return c.skip("raw request", err)
	}

	var payload any
	if body := strings.TrimSpace(req.Body); body != "" {
		if !json.Valid([]byte(body)) {
			c.notifier.Notify("Invalid JSON body", notify.Error)
			err := fmt.Errorf("invalid JSON body")
			return Outcome{Message: "Invalid JSON: " + body, Err: err}
		}
		payload = json.RawMessage(body)
	}

	c.session.Begin()
	defer c.session.End()

	res, err := c.ledger.Do(ctx, req.Method, req.PathSuffix, payload)
	if err != nil {
		return c.fail("raw request", "Error: "+err.Error(), "Debug request failed", err)
	}

	c.notifier.Notify("Request sent", notify.Success)
	return Outcome{Message: "Request sent", Detail: res.Display()}
}
