package auth

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// SessionInterceptor loads the current session user into the request context.
// A failing session backend is logged and the call proceeds anonymously.
func SessionInterceptor(uc UseCase, log logger.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		user, err := uc.CurrentUser(ctx)
		if err != nil {
			log.Warn("failed to load session user", zap.String("method", info.FullMethod), zap.Error(err))
		}
		return handler(WithUser(ctx, user), req)
	}
}
