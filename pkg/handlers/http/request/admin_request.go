package request

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/app/membership"
)

type UpdateMembershipRequest struct {
	Plan              *string `json:"plan,omitempty"`
	RateLimitOverride *int64  `json:"rate_limit_override,omitempty"`
	ClearOverride     bool    `json:"clear_rate_limit_override,omitempty"`
}

func (r *UpdateMembershipRequest) Validate() error {
	if r.Plan == nil && r.RateLimitOverride == nil && !r.ClearOverride {
		return fmt.Errorf("at least one of plan, rate_limit_override or clear_rate_limit_override is required")
	}
	if r.RateLimitOverride != nil && *r.RateLimitOverride <= 0 {
		return fmt.Errorf("rate_limit_override must be positive")
	}
	return nil
}

func (r *UpdateMembershipRequest) ToUpdate() membership.Update {
	return membership.Update{
		Plan:              r.Plan,
		RateLimitOverride: r.RateLimitOverride,
		ClearOverride:     r.ClearOverride,
	}
}

type BanRequest struct {
	Reason string `json:"reason"`
}

type CreateIPBlockRequest struct {
	IP       string `json:"ip"`
	Endpoint string `json:"endpoint,omitempty"`
	// Duration is a Go duration string such as "2h"; empty means 24h.
	Duration string `json:"duration,omitempty"`
}

func (r *CreateIPBlockRequest) Validate() error {
	if net.ParseIP(strings.TrimSpace(r.IP)) == nil {
		return fmt.Errorf("ip must be a valid address")
	}
	if r.Duration != "" {
		d, err := time.ParseDuration(r.Duration)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("duration must be positive")
		}
	}
	return nil
}

func (r *CreateIPBlockRequest) ParsedDuration() time.Duration {
	d, err := time.ParseDuration(r.Duration)
	if err != nil {
		return 0
	}
	return d
}
