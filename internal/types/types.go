package types

// ContextUserKey is the gin context key the auth middleware stores the
// current user under.
const ContextUserKey = "user"

// UserResponse is the public shape of an admin account.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}
