package dtos

// APIResponse is the envelope of every non-proxy endpoint
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// ProxyResponse is the normalized shape returned by the proxy endpoints.
// Exactly one of Data or Error is set.
type ProxyResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ImportRowError reports a CSV row that was skipped
type ImportRowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// RouteImportResult summarizes a CSV import
type RouteImportResult struct {
	Imported int              `json:"imported"`
	Skipped  int              `json:"skipped"`
	Errors   []ImportRowError `json:"errors"`
}
