package server

import (
	"context"
	"io"
	"time"

	"github.com/juju/clock/testclock"
	"google.golang.org/grpc"

	"github.com/fleetrobotics/lease-kit/cluster"
	pb "github.com/fleetrobotics/lease-kit/leaseman/protos"
	"github.com/fleetrobotics/lease-kit/leasetable"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testRegistry() *leasetable.Registry {
	r, _ := leasetable.NewRegistry([]leasetable.ResourceDef{
		{Name: "body"},
		{Name: "arm", Parent: "body"},
		{Name: "camera"},
	})

	return r
}

func testServer() (*Server, *testclock.Clock) {
	c := testclock.NewClock(t0)
	tbl := leasetable.NewTable(testRegistry(), leasetable.Config{Clock: c})

	s, _ := NewServer(tbl, cluster.Standalone{}, Config{
		ReadReqRate:  1,
		WriteReqRate: 1,
		test:         true,
	})

	return s, c
}

// denyAuthority is an Authority that never holds authority.
type denyAuthority struct{}

func (denyAuthority) Campaign(ctx context.Context) error     { return nil }
func (denyAuthority) Authoritative(ctx context.Context) bool { return false }
func (denyAuthority) Resign(ctx context.Context) error       { return nil }

// mockRetainStream feeds a fixed sequence of keep-alives and records
// the verdicts sent back.
type mockRetainStream struct {
	grpc.ServerStream
	reqs  []*pb.RetainLeaseRequest
	resps []*pb.RetainLeaseResponse
	next  int
}

func (m *mockRetainStream) Context() context.Context { return context.Background() }

func (m *mockRetainStream) Recv() (*pb.RetainLeaseRequest, error) {
	if m.next >= len(m.reqs) {
		return nil, io.EOF
	}

	req := m.reqs[m.next]
	m.next++

	return req, nil
}

func (m *mockRetainStream) Send(resp *pb.RetainLeaseResponse) error {
	m.resps = append(m.resps, resp)
	return nil
}

func header(client string) *pb.RequestHeader {
	return &pb.RequestHeader{
		ClientName:       client,
		RequestId:        "req-" + client,
		RequestTimestamp: t0.UnixNano(),
	}
}
