package resistors

// ValueResponse is the JSON response for the value-from-bands endpoints.
type ValueResponse struct {
	Value
	Display string `json:"display"` // e.g. "1kΩ ±5%"
}
