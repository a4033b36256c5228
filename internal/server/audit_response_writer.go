package server

import (
	"bytes"
	"net/http"
)

// auditBodyLimit caps how much of a response body an audit entry keeps.
// Large listings get truncated rather than bloating the outbox payload.
const auditBodyLimit = 8 << 10

// captureWriter tees the response so the audit middleware can record
// status and (bounded) body after the handler runs.
type captureWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func newCaptureWriter(w http.ResponseWriter) *captureWriter {
	return &captureWriter{ResponseWriter: w, status: http.StatusOK}
}

func (c *captureWriter) WriteHeader(status int) {
	c.status = status
	c.ResponseWriter.WriteHeader(status)
}

func (c *captureWriter) Write(b []byte) (int, error) {
	if remaining := auditBodyLimit - c.body.Len(); remaining > 0 {
		if len(b) > remaining {
			c.body.Write(b[:remaining])
		} else {
			c.body.Write(b)
		}
	}
	return c.ResponseWriter.Write(b)
}

func (c *captureWriter) Status() int {
	return c.status
}

func (c *captureWriter) Body() []byte {
	return c.body.Bytes()
}
