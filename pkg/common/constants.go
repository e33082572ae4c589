package common

const (
	UserIDHeader         = "X-User-ID"
	AuthorizationHeader  = "Authorization"
	BearerPrefix         = "Bearer "
	AjaxHeader           = "X-Requested-With"
	RiskScoreHeader      = "X-Risk-Score"
	RiskSuspiciousHeader = "X-Risk-Suspicious"
	TraceIDHeader        = "X-Trace-Id"

	SymbolQueryParam = "symbol"
)

// ClientIPHeaders are checked in order before falling back to the socket
// address. They are honoured only when the socket peer is a trusted proxy.
var ClientIPHeaders = []string{
	"X-Real-IP",
	"X-Forwarded-For",
	"X-Original-Forwarded-For",
	"True-Client-IP",
	"CF-Connecting-IP",
}
