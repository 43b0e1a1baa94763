package gamesvc

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-world/service/i"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader carries the id assigned to every call.
const RequestIDHeader = "x-request-id"

// loggingInterceptor tags each unary call with a request id, returns it in
// the response header and logs the outcome.
func loggingInterceptor(logger i.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.New().String()
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		if err != nil {
			logger.Error(fmt.Sprintf("%s %s failed in %s: %s (%s)", requestID, info.FullMethod, elapsed, status.Convert(err).Message(), status.Code(err)))
			return resp, err
		}
		logger.Info(fmt.Sprintf("%s %s ok in %s", requestID, info.FullMethod, elapsed))
		return resp, nil
	}
}
