package request

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/app/scoring"
	"github.com/NeuralTrust/RiskGate/pkg/common"
)

// ScoreRequest describes a request observed by another component, with the
// headers it carried.
type ScoreRequest struct {
	IP        string            `json:"ip"`
	UserAgent string            `json:"user_agent"`
	Referer   string            `json:"referer"`
	Headers   map[string]string `json:"headers"`
}

func (r *ScoreRequest) Validate() error {
	if net.ParseIP(strings.TrimSpace(r.IP)) == nil {
		return fmt.Errorf("ip must be a valid address")
	}
	return nil
}

func (r *ScoreRequest) ToScoring(now time.Time) scoring.Request {
	return scoring.Request{
		IP:                strings.TrimSpace(r.IP),
		UserAgent:         r.UserAgent,
		Referer:           r.Referer,
		AcceptLanguage:    header(r.Headers, "Accept-Language"),
		HasAjaxHeader:     header(r.Headers, common.AjaxHeader) != "",
		HasAcceptLanguage: header(r.Headers, "Accept-Language") != "",
		HasAcceptEncoding: header(r.Headers, "Accept-Encoding") != "",
		Timestamp:         now,
	}
}

// LogEventRequest is a ScoreRequest attributed to a user and endpoint.
type LogEventRequest struct {
	ScoreRequest
	UserID   string `json:"user_id"`
	Endpoint string `json:"endpoint"`
	Symbol   string `json:"symbol"`
}

func (r *LogEventRequest) Validate() error {
	if err := r.ScoreRequest.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Endpoint) == "" {
		return fmt.Errorf("endpoint is required")
	}
	return nil
}

func (r *LogEventRequest) ToScoring(now time.Time) scoring.Request {
	req := r.ScoreRequest.ToScoring(now)
	req.Endpoint = r.Endpoint
	req.UserID = optional(r.UserID)
	if s := optional(strings.ToUpper(r.Symbol)); s != nil {
		req.Symbol = s
	}
	return req
}

type RateLimitRequest struct {
	IP       string `json:"ip"`
	UserID   string `json:"user_id"`
	Endpoint string `json:"endpoint"`
}

func (r *RateLimitRequest) Validate() error {
	if net.ParseIP(strings.TrimSpace(r.IP)) == nil {
		return fmt.Errorf("ip must be a valid address")
	}
	return nil
}

func (r *RateLimitRequest) OptionalUserID() *string {
	return optional(r.UserID)
}

func header(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
