package globals

import (
	"context"
)

// Context keys
type ContextKey string

const EmailKey ContextKey = "email"
const RoleKey ContextKey = "role"

var Ctx = context.Background()
