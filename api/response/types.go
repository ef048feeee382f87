package response

// RequestIDKey is the gin context key carrying the request id.
const RequestIDKey = "request_id"

// Response is the uniform envelope every endpoint returns. Error holds
// an application error code, never an internal error message.
type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}
