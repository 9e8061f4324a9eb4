package apiclient

import (
	"encoding/json"
	"strings"
)

const nonFieldErrorsKey = "non_field_errors"

// parseAPIError reads the error body shapes the backend produces:
//
//	{"detail": "Invalid credentials"}
//	{"non_field_errors": ["Unable to log in"]}
//	{"email": ["already registered"], "password": "too short"}
//
// Anything else yields an APIError with only the status code.
func parseAPIError(method, path string, status int, raw []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Method:     method,
		Path:       path,
		fields:     map[string]string{},
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		return apiErr
	}

	for key, val := range body {
		msg, ok := firstMessage(val)
		if !ok {
			continue
		}
		switch key {
		case "detail":
			apiErr.detail = msg
		case nonFieldErrorsKey:
			if apiErr.detail == "" {
				apiErr.detail = msg
			}
		default:
			apiErr.fields[key] = msg
		}
	}

	// detail wins over non_field_errors regardless of key order.
	if d, ok := body["detail"]; ok {
		if msg, ok := firstMessage(d); ok {
			apiErr.detail = msg
		}
	}
	return apiErr
}

// firstMessage accepts a string or a list whose first string is used.
func firstMessage(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		return s, s != ""
	}

	var list []any
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, item := range list {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s), true
			}
		}
	}
	return "", false
}
