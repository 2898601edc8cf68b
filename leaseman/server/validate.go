package server

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/fleetrobotics/lease-kit/leaseman/protos"
)

// Request kinds for throttle selection.
const (
	readRequest = iota
	writeRequest
)

// maxThrottleWait is the maximum time a request will wait on its
// throttle before being rejected.
var maxThrottleWait = time.Second

// ErrRequestThrottled error.
var ErrRequestThrottled = status.Error(codes.ResourceExhausted, "request timed out while waiting in throttle queue")

// ValidateRequest gates a request through the appropriate throttle. A
// non-nil CancelFunc is returned when the request was granted a
// throttle-bounded context; the caller must defer it.
func (s *Server) ValidateRequest(ctx context.Context, kind int) (context.Context, context.CancelFunc, error) {
	if s.test {
		return ctx, nil, nil
	}

	throttle := s.reads
	if kind == writeRequest {
		throttle = s.writes
	}

	ctx, cancel := context.WithTimeout(ctx, maxThrottleWait)

	if err := throttle.Request(ctx); err != nil {
		cancel()
		return nil, nil, ErrRequestThrottled
	}

	return ctx, cancel, nil
}

// respHeader builds the response envelope: the request ID is echoed
// for the external request tracker, everything else in the request
// header is opaque pass-through.
func (s *Server) respHeader(req *pb.RequestHeader, received time.Time) *pb.ResponseHeader {
	return &pb.ResponseHeader{
		RequestId:                req.GetRequestId(),
		RequestReceivedTimestamp: received.UnixNano(),
		ResponseTimestamp:        s.clock.Now().UnixNano(),
	}
}
