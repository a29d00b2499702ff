package apierror

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
)

const maxErrorBodySize = 64 << 10

type errorBody struct {
	Error   json.RawMessage `json:"error"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
}

// FromResponse decodes a non-2xx response. 401 always yields an AuthError; the
// body may carry {"error":{"code","message"}}, {"error":"...","code":"..."} or
// {"code","message"}.
func FromResponse(resp *http.Response) error {
	code, message := parseErrorBody(resp.Body)
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return &AuthError{Status: resp.StatusCode, Code: code, Message: message}
	}

	return &APIError{Status: resp.StatusCode, Code: code, Message: message}
}

func parseErrorBody(body io.Reader) (code, message string) {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBodySize))
	if err != nil || len(data) == 0 {
		return "", ""
	}

	var parsed errorBody
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", strings.TrimSpace(string(data))
	}

	code, message = parsed.Code, parsed.Message

	if len(parsed.Error) > 0 {
		var nested struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		var flat string

		if err := json.Unmarshal(parsed.Error, &nested); err == nil {
			if nested.Code != "" {
				code = nested.Code
			}
			if nested.Message != "" {
				message = nested.Message
			}
		} else if err := json.Unmarshal(parsed.Error, &flat); err == nil && flat != "" {
			message = flat
		}
	}

	return code, message
}

// FromTransport wraps an error returned by http.Client.Do.
func FromTransport(op string, err error) error {
	var netErr net.Error
	timeout := errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout())

	return &NetworkError{Op: op, Err: err, Timeout: timeout}
}
