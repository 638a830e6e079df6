package shared

import "context"

type contextKey string

// ContextKeyIdentity context key for authenticated caller identity
const ContextKeyIdentity contextKey = "identity"

// SetToContext set value to context
func SetToContext(ctx context.Context, key contextKey, value interface{}) context.Context {
	return context.WithValue(ctx, key, value)
}

// GetValueFromContext get value from context
func GetValueFromContext(ctx context.Context, key contextKey) interface{} {
	return ctx.Value(key)
}
