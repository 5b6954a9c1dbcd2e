package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/database"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/identity"
)

type contextKey string

const (
	userIDKey contextKey = "user_id"
	roleKey   contextKey = "role"
)

// IdentityResolver is the slice of the identity client the middleware uses.
type IdentityResolver interface {
	GetUser(ctx context.Context, accessToken string) (*identity.User, error)
}

type AuthMiddleware struct {
	Identity    IdentityResolver
	Memberships entity.MembershipRepositoryInterface
}

func NewAuthMiddleware(resolver IdentityResolver, memberships entity.MembershipRepositoryInterface) *AuthMiddleware {
	return &AuthMiddleware{Identity: resolver, Memberships: memberships}
}

// Handler resolves the bearer token against the identity provider and puts
// user id + role into the request context. Tokens are never verified
// locally; the provider owns them.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			unauthorized(w, "missing bearer token")
			return
		}

		user, err := m.Identity.GetUser(r.Context(), token)
		if err != nil {
			if errors.Is(err, identity.ErrInvalidToken) {
				unauthorized(w, "invalid or expired token")
				return
			}
			log.Printf("[AUTH] identity lookup failed: %v", err)
			http.Error(w, "identity provider unavailable", http.StatusBadGateway)
			return
		}

		role := entity.RoleMember
		membership, err := m.Memberships.FindByUserID(r.Context(), user.ID)
		switch {
		case err == nil:
			role = membership.Role
		case errors.Is(err, database.ErrMembershipNotFound):
			// First login: seed a MEMBER row so role changes stick later.
			seed := &entity.Membership{UserID: user.ID, Email: user.Email, Role: entity.RoleMember}
			if err := m.Memberships.Upsert(r.Context(), seed); err != nil {
				log.Printf("[AUTH] membership seed failed for %s: %v", user.ID, err)
			}
		default:
			log.Printf("[AUTH] membership lookup failed: %v", err)
		}

		ctx := context.WithValue(r.Context(), userIDKey, user.ID)
		ctx = context.WithValue(ctx, roleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin guards admin-only routes. Must run after Handler.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if RoleFromContext(r.Context()) != entity.RoleAdmin {
			http.Error(w, "admin role required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func RoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

// WithUser builds a context the way Handler does. Test helper, also used
// by the worker when it acts on behalf of a user.
func WithUser(ctx context.Context, userID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
