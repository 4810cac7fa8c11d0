package models

// ErrorResponse is the JSON body of every 4xx/5xx answer produced by the API.
type ErrorResponse struct {
	// Message is a human-readable summary.
	Message string `json:"message"`

	// Errors maps a field name to its validation message. Omitted unless the
	// request failed validation.
	Errors map[string]string `json:"errors,omitempty"`
}

// CreatedResponse is the body returned after a purchase was created.
type CreatedResponse struct {
	ID                    int64  `json:"id"`
	TransactionIdentifier string `json:"transactionIdentifier"`
}

// VersionResponse is the body of the version endpoint.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate,omitempty"`
	BuildCommit string `json:"buildCommit,omitempty"`
}
