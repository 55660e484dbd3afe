package auth

import "context"

type Role string

const (
	RoleGuest    Role = "guest"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	return r == RoleGuest || r == RoleEmployee
}

// Identity is the caller decoded from a bearer token.
type Identity struct {
	Subject string
	Role    Role
}

func (id *Identity) IsEmployee() bool {
	return id != nil && id.Role == RoleEmployee
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the caller attached to ctx, or nil for anonymous requests.
func FromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey{}).(*Identity)
	return id
}
