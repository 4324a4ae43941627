package middleware

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestContextInterceptor_UsesIncomingRequestID(t *testing.T) {
	interceptor := ContextInterceptor(logger.NewNop())
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "req-42"))

	var seen string
	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/test/Method"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			seen = RequestID(ctx)
			return "ok", nil
		})

	require.NoError(t, err)
	assert.Equal(t, "req-42", seen)
}

func TestContextInterceptor_GeneratesRequestID(t *testing.T) {
	interceptor := ContextInterceptor(logger.NewNop())

	var seen string
	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/test/Method"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			seen = RequestID(ctx)
			return nil, nil
		})

	require.NoError(t, err)
	assert.Len(t, seen, 36)
}
