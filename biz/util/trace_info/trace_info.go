package trace_info

import "context"

type logIdKey struct{}

func WithLogId(ctx context.Context, logId string) context.Context {
	return context.WithValue(ctx, logIdKey{}, logId)
}

func GetLogId(ctx context.Context) string {
	if logId, ok := ctx.Value(logIdKey{}).(string); ok {
		return logId
	}
	return ""
}
