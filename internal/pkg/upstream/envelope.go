package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Envelope is the normalized view of an upstream response body. The PHP
// backend is inconsistent: some endpoints reply {success,data,message}, some
// {status,data}, and some return a bare array or object. All shapes collapse
// into this one at the client boundary so no call site re-normalizes.
type Envelope struct {
	Success bool
	Message string
	Data    json.RawMessage
}

// Decode unmarshals the data portion of the envelope into v. A missing data
// portion leaves v untouched.
func (e *Envelope) Decode(v interface{}) error {
	if len(e.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("decode upstream payload: %w", err)
	}
	return nil
}

func decodeEnvelope(body []byte) (*Envelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		// Some write endpoints reply with an empty body on success.
		return &Envelope{Success: true}, nil
	}

	if trimmed[0] == '[' {
		raw := json.RawMessage{}
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("decode upstream response: %w", err)
		}
		return &Envelope{Success: true, Data: raw}, nil
	}

	var probe struct {
		Success *bool           `json:"success"`
		Status  json.RawMessage `json:"status"`
		Message string          `json:"message"`
		Error   string          `json:"error"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}

	env := &Envelope{Message: probe.Message}
	if env.Message == "" {
		env.Message = probe.Error
	}

	switch {
	case probe.Success != nil:
		env.Success = *probe.Success
		env.Data = probe.Data
	case len(probe.Status) > 0:
		env.Success = statusMeansSuccess(probe.Status)
		env.Data = probe.Data
	default:
		// No envelope at all: the whole object is the payload.
		env.Success = true
		env.Data = json.RawMessage(trimmed)
	}

	return env, nil
}

// statusMeansSuccess interprets the "status" field, which upstream renders
// variously as a boolean, a string, or a 0/1 number.
func statusMeansSuccess(raw json.RawMessage) bool {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		switch strings.ToLower(s) {
		case "success", "ok", "1", "true":
			return true
		}
		return false
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n == 1
	}

	return false
}

// FlexInt decodes integers that upstream sometimes renders as JSON strings
// ("42") and sometimes as numbers (42).
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("parse integer %q: %w", s, err)
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}
