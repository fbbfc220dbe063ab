package gateway

// Outcome is the uniform result of one outbound call. Transport failures
// carry no status code; HTTP error statuses (>= 400) carry the status and
// a formatted message; everything else, 3xx included, is a success whose
// status the caller must inspect.
type Outcome struct {
	OK         bool
	StatusCode int
	Body       []byte
	Message    string
}

// Success builds a successful outcome.
func Success(body []byte, statusCode int) Outcome {
	return Outcome{OK: true, StatusCode: statusCode, Body: body}
}

// Failure builds a failed outcome. statusCode is 0 for transport-level
// failures where no response was received.
func Failure(message string, statusCode int) Outcome {
	return Outcome{Message: message, StatusCode: statusCode}
}
