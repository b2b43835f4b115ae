package common

import (
	"context"
	"time"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyBranchID  contextKey = "branch_id"
	ContextKeyLogger    contextKey = "logger"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithBranchID adds a branch ID to the context
func WithBranchID(ctx context.Context, branchID string) context.Context {
	return context.WithValue(ctx, ContextKeyBranchID, branchID)
}

// BranchIDFromContext extracts the branch ID from context
func BranchIDFromContext(ctx context.Context) string {
	if branchID, ok := ctx.Value(ContextKeyBranchID).(string); ok {
		return branchID
	}
	return ""
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
