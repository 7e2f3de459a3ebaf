package http

import (
	"context"
	"net"
	"net/http"

	"github.com/tchaikit/ea-dashboard/internal/audit"
	"github.com/tchaikit/ea-dashboard/internal/utils"
)

// withActor attaches the acting identity to the request context so that
// audit records carry who did what from where. The bearer token is optional:
// requests without one are still served, their audit entries just carry no
// user reference.
func (h *Handler) withActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		actor := audit.Actor{
			IPAddress: clientIP(r),
			UserAgent: r.UserAgent(),
		}

		if header := r.Header.Get("Authorization"); header != "" {
			if tokenString, err := utils.ParseBearerToken(header); err == nil {
				token, err := utils.ValidateAndParseJWTToken(tokenString, h.cfg.TokenSignKey, h.cfg.TokenIssuer)
				if err == nil {
					actor.UserID = token.UserID
					ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
				}
			}
		}

		r = r.WithContext(audit.WithActor(ctx, actor))
		next.ServeHTTP(w, r)
	})
}

// clientIP prefers the first X-Forwarded-For hop, falling back to the
// connection's remote address without its port.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for i := 0; i < len(forwarded); i++ {
			if forwarded[i] == ',' {
				return forwarded[:i]
			}
		}
		return forwarded
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
