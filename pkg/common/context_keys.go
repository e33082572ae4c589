package common

type contextKey string

const (
	TraceIdKey             contextKey = "trace_id"
	RiskRequestContextKey  contextKey = "risk_request"
	RiskResultContextKey   contextKey = "risk_result"
	RateDecisionContextKey contextKey = "rate_decision"
	QuotaContextKey        contextKey = "quota_verdict"
	AdminClaimsContextKey  contextKey = "admin_claims"
	ClientIPContextKey     contextKey = "client_ip"
	LatencyContextKey      contextKey = "__execution_time"
)
