package constant

type contextKey string

const (
	IdentityKey contextKey = "identity"
	TokenIDKey  contextKey = "token_id"
)
