package utils

import "context"

type contextKey string

const (
	contextKeyCorrelationId contextKey = "correlation_id"
	contextKeyUserId        contextKey = "user_id"
	contextKeyUserName      contextKey = "user_name"
)

func GetCorrelationIdFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(contextKeyCorrelationId).(string)
	return v, ok
}

func SetCorrelationIdInContext(ctx context.Context, correlationId string) context.Context {
	return context.WithValue(ctx, contextKeyCorrelationId, correlationId)
}

func GetUserIdFromContext(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(contextKeyUserId).(int64)
	return v, ok
}

func SetUserIdInContext(ctx context.Context, userId int64) context.Context {
	return context.WithValue(ctx, contextKeyUserId, userId)
}

func GetUserNameFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(contextKeyUserName).(string)
	return v, ok
}

func SetUserNameInContext(ctx context.Context, userName string) context.Context {
	return context.WithValue(ctx, contextKeyUserName, userName)
}
