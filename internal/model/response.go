package model

// Response is the wrapper shape shared by every endpoint: the payload
// under "value" plus a human-readable error list, exactly one of which
// is meaningful at a time.
type Response struct {
	Value  any      `json:"value"`
	Errors []string `json:"errors"`
}

// PageValue is the "value" of every paginated listing.
type PageValue struct {
	TotalPages int `json:"totalPages"`
	Data       any `json:"data"`
}
