package response

import "strconv"

// Envelope is the uniform shape every endpoint answers with, success or
// failure. Error and Data marshal as JSON null when absent.
type Envelope struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Error   any    `json:"error"`
	Data    any    `json:"data"`
}

// PaginatedEnvelope is the list variant; it additionally reports the full
// match count, independent of the page actually returned.
type PaginatedEnvelope struct {
	Envelope
	TotalRecords int64 `json:"total_records"`
}

func New(message string, data any, code int, err any) Envelope {
	return Envelope{
		Status:  statusLabel(code),
		Code:    code,
		Message: message,
		Error:   err,
		Data:    data,
	}
}

func Paginated(message string, data any, totalRecords int64) PaginatedEnvelope {
	return PaginatedEnvelope{
		Envelope:     New(message, data, 200, nil),
		TotalRecords: totalRecords,
	}
}

func statusLabel(code int) string {
	switch {
	case code == 400:
		return "BadRequest"
	case code == 500:
		return "InternalServerError"
	case code >= 200 && code < 300:
		return "OK"
	default:
		return strconv.Itoa(code)
	}
}
