package entity

import "context"

const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
)

// Membership links an identity-provider user to a workspace role. The
// user row itself lives in the identity provider; we only keep the role.
type Membership struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"` // ADMIN, MEMBER
}

func (m *Membership) IsAdmin() bool {
	return m.Role == RoleAdmin
}

type MembershipRepositoryInterface interface {
	FindByUserID(ctx context.Context, userID string) (*Membership, error)
	List(ctx context.Context) ([]*Membership, error)
	Upsert(ctx context.Context, m *Membership) error
}
