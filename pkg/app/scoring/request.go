package scoring

import "time"

// Request is the metadata of one inbound request the scorer looks at.
type Request struct {
	IP        string
	UserID    *string
	Endpoint  string
	Symbol    *string
	UserAgent string
	Referer   string
	// AcceptLanguage is kept for enrichment only; scoring looks at presence.
	AcceptLanguage string

	HasAjaxHeader     bool
	HasAcceptLanguage bool
	HasAcceptEncoding bool

	Timestamp time.Time
}

// SignedIn reports whether the request is attributable to a user.
func (r Request) SignedIn() bool {
	return r.UserID != nil && *r.UserID != ""
}

// Result is the outcome of one scoring pass. Per component points are kept so
// callers can log the raw signals.
type Result struct {
	Score             int      `json:"score"`
	SignaturePoints   int      `json:"signature_points"`
	MatchedSignatures []string `json:"matched_signatures,omitempty"`
	AjaxPoints        int      `json:"ajax_points"`
	LanguagePoints    int      `json:"accept_language_points"`
	EncodingPoints    int      `json:"accept_encoding_points"`
	FrequencyPoints   int      `json:"frequency_points"`
	RecentRequests    int64    `json:"recent_requests"`
	// Degraded is set when the request history could not be read and the
	// frequency component was left out.
	Degraded bool `json:"degraded,omitempty"`
}
