package couch

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// RequestError is the single error kind of this package. It covers both
// transport failures (Status 0, Err set) and non-2xx responses (Status set,
// Reason parsed from the server's error body when present), keeping the
// failing operation and database for the caller.
type RequestError struct {
	Op       string
	Database string
	Status   int
	Reason   string
	Err      error
}

func (e *RequestError) Error() string {
	target := e.Database
	if target == "" {
		target = "server"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s", e.Op, target, e.Err)
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s %s: response failed with status %d: %s", e.Op, target, e.Status, e.Reason)
	}
	return fmt.Sprintf("%s %s: response failed with status %d", e.Op, target, e.Status)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// CouchDB error bodies look like {"error": "not_found", "reason": "missing"}.
type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

func transportErr(op, database string, err error) *RequestError {
	return &RequestError{Op: op, Database: database, Err: err}
}

func statusErr(op, database string, res *http.Response) *RequestError {
	reqErr := &RequestError{Op: op, Database: database, Status: res.StatusCode}
	d, err := io.ReadAll(res.Body)
	if err != nil {
		return reqErr
	}
	var errResp errorResponse
	if err := json.Unmarshal(d, &errResp); err == nil && errResp.Error != "" {
		reqErr.Reason = errResp.Error
		if errResp.Reason != "" {
			reqErr.Reason += ": " + errResp.Reason
		}
	}
	return reqErr
}

func ok(status int) bool {
	return status >= 200 && status < 300
}
