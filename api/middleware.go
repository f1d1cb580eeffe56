package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"
)

const (
	groupUser  = "user"
	groupAdmin = "admin"

	invalidTokenMessage = "Invalid or expired token. Please login again."
	noTokenMessage      = "No token provided. Please login."
	adminOnlyMessage    = "Access denied. Admin privileges required."
)

// expiresKey holds the token expiry, in unix seconds, in the cached user info
const expiresKey = "exp"

// Guard authenticates bearer tokens through go-guardian. Verified tokens are cached
// for the cache TTL; a cached token past its exp is evicted and rejected.
type Guard struct {
	authenticator auth.Authenticator
	tokens        *TokenIssuer
	cache         store.Cache
	render        Renderer
}

// NewGuard sets up the cached bearer strategy on top of tokens
func NewGuard(ctx context.Context, tokens *TokenIssuer, cacheTTL time.Duration, render Renderer) *Guard {
	g := &Guard{
		authenticator: auth.New(),
		tokens:        tokens,
		render:        render,
	}
	g.cache = store.NewFIFO(ctx, cacheTTL)
	g.authenticator.EnableStrategy(bearer.CachedStrategyKey, bearer.New(g.verify, g.cache))
	return g
}

// verify is the go-guardian authenticate function behind the token cache
func (g *Guard) verify(ctx context.Context, r *http.Request, token string) (auth.Info, error) {
	s, err := g.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	groups := []string{groupUser}
	if s.Admin {
		groups = []string{groupAdmin, s.Role}
	}
	exts := map[string][]string{expiresKey: {strconv.FormatInt(s.ExpiresAt.Unix(), 10)}}
	return auth.NewDefaultUser(s.Username, s.ID, groups, exts), nil
}

func (g *Guard) identify(r *http.Request) (Identity, bool) {
	info, err := g.authenticator.Authenticate(r)
	if err != nil {
		return Identity{}, false
	}
	if g.expired(info) {
		if token, err := bearer.Token(r); err == nil {
			_ = g.cache.Delete(token, r)
		}
		return Identity{}, false
	}
	return identityFromInfo(info), true
}

func (g *Guard) expired(info auth.Info) bool {
	exp := info.Extensions()[expiresKey]
	if len(exp) == 0 {
		return true
	}
	unix, err := strconv.ParseInt(exp[0], 10, 64)
	if err != nil {
		return true
	}
	return !g.tokens.now().Before(time.Unix(unix, 0))
}

// Required rejects requests without a valid token
func (g *Guard) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !hasBearer(r) {
			g.render.Error(w, r, Unauthorized(noTokenMessage))
			return
		}
		id, ok := g.identify(r)
		if !ok {
			zap.S().Debugw("unauthorized", "url", r.URL.Path)
			g.render.Error(w, r, Unauthorized(invalidTokenMessage))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

// Optional attaches the identity when a valid token is present and lets every request through
func (g *Guard) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasBearer(r) {
			if id, ok := g.identify(r); ok {
				r = r.WithContext(WithIdentity(r.Context(), id))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Admin requires a valid token that belongs to an admin user
func (g *Guard) Admin(next http.Handler) http.Handler {
	return g.Required(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := IdentityFrom(r.Context())
		if !id.Admin {
			g.render.Error(w, r, Forbidden(adminOnlyMessage))
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func hasBearer(r *http.Request) bool {
	h := r.Header.Get("Authorization")
	return strings.HasPrefix(h, "Bearer ") && strings.TrimSpace(h[len("Bearer "):]) != ""
}

func identityFromInfo(info auth.Info) Identity {
	id := Identity{UserID: info.ID(), Username: info.UserName()}
	groups := info.Groups()
	if len(groups) > 0 && groups[0] == groupAdmin {
		id.Admin = true
		if len(groups) > 1 {
			id.Role = groups[1]
		}
	}
	return id
}
