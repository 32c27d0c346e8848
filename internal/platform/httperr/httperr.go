// Package httperr provides the JSON error envelope returned by the API.
package httperr

// Response is the error body sent to clients: a stable, human-readable
// error plus the underlying failure detail when one exists.
type Response struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// New builds an error envelope. err may be nil.
func New(msg string, err error) Response {
	r := Response{Error: msg}
	if err != nil {
		r.Details = err.Error()
	}
	return r
}
