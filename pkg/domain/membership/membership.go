package membership

import (
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/domain"
)

type Plan string

const (
	PlanFree   Plan = "free"
	PlanBronze Plan = "bronze"
	PlanSilver Plan = "silver"
	PlanGold   Plan = "gold"

	// Unlimited marks a ceiling that is never enforced.
	Unlimited int64 = -1
)

// Limits holds the API call ceilings of a plan.
type Limits struct {
	Monthly int64 `json:"monthly"`
	Daily   int64 `json:"daily"`
	Hourly  int64 `json:"hourly"`
}

func (l Limits) Unlimited() bool {
	return l.Monthly == Unlimited && l.Daily == Unlimited && l.Hourly == Unlimited
}

var planLimits = map[Plan]Limits{
	PlanFree:   {Monthly: 15, Daily: 5, Hourly: 2},
	PlanBronze: {Monthly: 1500, Daily: 50, Hourly: 10},
	PlanSilver: {Monthly: 5000, Daily: 200, Hourly: 25},
	PlanGold:   {Monthly: Unlimited, Daily: Unlimited, Hourly: Unlimited},
}

func ParsePlan(s string) (Plan, error) {
	p := Plan(s)
	if _, ok := planLimits[p]; !ok {
		return "", domain.ErrInvalidPlan
	}
	return p, nil
}

func (p Plan) Limits() Limits {
	if l, ok := planLimits[p]; ok {
		return l
	}
	return planLimits[PlanFree]
}

// Membership is changed only through administrator actions.
type Membership struct {
	UserID            string    `json:"user_id" gorm:"primaryKey"`
	Plan              Plan      `json:"plan" gorm:"not null;default:free"`
	IsBanned          bool      `json:"is_banned"`
	RateLimitOverride *int64    `json:"rate_limit_override,omitempty"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Membership) TableName() string {
	return "memberships"
}

// Default is used for signed-in users without a stored record.
func Default(userID string) *Membership {
	return &Membership{UserID: userID, Plan: PlanFree}
}
