package validator

// Result is the verdict for a single user-supplied value. Error is set
// only when Valid is false and always carries one of the fixed,
// human-readable rejection reasons, suitable for returning to the
// client verbatim.
type Result struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}
