package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
)

type ctxKey string

const authUserKey ctxKey = "authUser"

type AuthUser struct {
	UID    string
	Email  string
	Claims map[string]any
}

// TokenVerifier is satisfied by *auth.Client.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

func WithAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(strings.ToLower(h), "bearer ") {
				http.Error(w, "missing Authorization: Bearer <token>", http.StatusUnauthorized)
				return
			}
			idToken := strings.TrimSpace(h[len("Bearer "):])

			tok, err := verifier.VerifyIDToken(r.Context(), idToken)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			au := &AuthUser{
				UID:    tok.UID,
				Claims: tok.Claims,
			}
			if v, ok := tok.Claims["email"].(string); ok {
				au.Email = v
			}

			next.ServeHTTP(w, r.WithContext(WithAuthUser(r.Context(), au)))
		})
	}
}

func WithAuthUser(ctx context.Context, au *AuthUser) context.Context {
	return context.WithValue(ctx, authUserKey, au)
}

func GetAuthUser(ctx context.Context) (*AuthUser, bool) {
	v := ctx.Value(authUserKey)
	if v == nil {
		return nil, false
	}
	au, ok := v.(*AuthUser)
	return au, ok
}

// IsAdmin checks the admin flag or role in the custom claims.
func IsAdmin(claims map[string]any) bool {
	if claims == nil {
		return false
	}
	if admin, ok := claims["admin"].(bool); ok && admin {
		return true
	}
	if role, ok := claims["role"].(string); ok && role == "admin" {
		return true
	}
	return false
}

// CanAccessTenant reports whether the claims grant access to tenant. Admins
// see every tenant; others need the tenant in their "tenants" claim, either
// as a list of ids or as a map of id to true.
func CanAccessTenant(claims map[string]any, tenant string) bool {
	if tenant == "" {
		return false
	}
	if IsAdmin(claims) {
		return true
	}

	switch tenants := claims["tenants"].(type) {
	case []any:
		for _, t := range tenants {
			if s, ok := t.(string); ok && s == tenant {
				return true
			}
		}
	case []string:
		for _, s := range tenants {
			if s == tenant {
				return true
			}
		}
	case map[string]any:
		if b, ok := tenants[tenant].(bool); ok && b {
			return true
		}
	}
	return false
}

// RequireTenant rejects requests whose user may not access the tenant named
// by tenantOf(r).
func RequireTenant(tenantOf func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			au, ok := GetAuthUser(r.Context())
			if !ok || au == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !CanAccessTenant(au.Claims, tenantOf(r)) {
				http.Error(w, "no access to this organisation", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
