package middleware

import (
	"fmt"
	"net"
	"strings"

	"github.com/NeuralTrust/RiskGate/pkg/common"
	"github.com/NeuralTrust/RiskGate/pkg/infra/auth/jwt"
	"github.com/gofiber/fiber/v2"
)

// Identity is who a request is attributed to.
type Identity struct {
	IP     string
	UserID *string
}

// IdentityResolver attributes a request to a client address and, when the
// caller proves it, a signed-in user.
//
// A user is taken from a valid bearer user token first. The X-User-ID header
// and the forwarded-address headers are believed only when the socket peer
// sits inside one of the trusted proxy networks; from anyone else they are
// ignored and the request is anonymous.
type IdentityResolver struct {
	trusted []*net.IPNet
	tokens  jwt.Manager
}

func NewIdentityResolver(trustedProxies []string, tokens jwt.Manager) (*IdentityResolver, error) {
	nets := make([]*net.IPNet, 0, len(trustedProxies))
	for _, entry := range trustedProxies {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if !strings.Contains(entry, "/") {
			if ip := net.ParseIP(entry); ip != nil && ip.To4() != nil {
				entry += "/32"
			} else {
				entry += "/128"
			}
		}
		_, n, err := net.ParseCIDR(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
		}
		nets = append(nets, n)
	}
	return &IdentityResolver{trusted: nets, tokens: tokens}, nil
}

func (r *IdentityResolver) Resolve(c *fiber.Ctx) Identity {
	peer := strings.TrimSpace(c.IP())
	viaProxy := r.trusts(peer)

	who := Identity{IP: peer}
	if viaProxy {
		if ip := forwardedIP(c); ip != "" {
			who.IP = ip
		}
	}

	if id := r.tokenUser(c); id != "" {
		who.UserID = &id
	} else if viaProxy {
		if id := strings.TrimSpace(c.Get(common.UserIDHeader)); id != "" {
			who.UserID = &id
		}
	}
	return who
}

func (r *IdentityResolver) trusts(peer string) bool {
	ip := net.ParseIP(peer)
	if ip == nil {
		return false
	}
	for _, n := range r.trusted {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// tokenUser returns the subject of a valid user token. Tokens meant for the
// upstream service simply fail validation and leave the request anonymous.
func (r *IdentityResolver) tokenUser(c *fiber.Ctx) string {
	if r.tokens == nil {
		return ""
	}
	raw, ok := strings.CutPrefix(c.Get(common.AuthorizationHeader), common.BearerPrefix)
	if !ok || strings.TrimSpace(raw) == "" {
		return ""
	}
	claims, err := r.tokens.ValidateUserToken(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return claims.Subject
}

func forwardedIP(c *fiber.Ctx) string {
	for _, header := range common.ClientIPHeaders {
		if value := c.Get(header); value != "" {
			first, _, _ := strings.Cut(value, ",")
			ip := strings.TrimSpace(first)
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}
	return ""
}
