package errorx

// Canonical client-side codes. Any other code found on an Error was produced
// by the backend and passed through verbatim.
const (
	// NetworkError covers transport failures, unparseable error bodies and
	// everything else that never yielded a structured envelope.
	NetworkError = "NETWORK_ERROR"

	// APIError marks a 2xx envelope with success=false but no error object.
	APIError = "API_ERROR"

	// UnknownError is the fallback for foreign errors of unknown shape.
	UnknownError = "UNKNOWN_ERROR"

	// ExportError marks a failed blob download.
	ExportError = "EXPORT_ERROR"
)
