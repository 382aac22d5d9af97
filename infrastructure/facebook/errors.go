package facebook

import (
	"encoding/json"
	"fmt"

	"github.com/vero4ka/botutils/domain/messenger"
)

// APIError is a non-200 answer from the Send API. Graph error details are
// filled in when the body carries an error object.
type APIError struct {
	StatusCode int
	Body       string
	Message    string
	Type       string
	Code       int
	Subcode    int
	FBTraceID  string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("messenger send api: status %d, code %d: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("messenger send api: status %d, body: %s", e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return messenger.ErrSendFailed
}

type graphErrorResponse struct {
	Error *struct {
		Message   string `json:"message"`
		Type      string `json:"type"`
		Code      int    `json:"code"`
		Subcode   int    `json:"error_subcode"`
		FBTraceID string `json:"fbtrace_id"`
	} `json:"error"`
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Body: string(body)}

	var resp graphErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error != nil {
		apiErr.Message = resp.Error.Message
		apiErr.Type = resp.Error.Type
		apiErr.Code = resp.Error.Code
		apiErr.Subcode = resp.Error.Subcode
		apiErr.FBTraceID = resp.Error.FBTraceID
	}
	return apiErr
}
