package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	pb "github.com/fleetrobotics/lease-kit/leaseman/protos"
)

func TestAcquireLease(t *testing.T) {
	s, _ := testServer()
	ctx := context.Background()

	resp, err := s.AcquireLease(ctx, &pb.AcquireLeaseRequest{
		Header:   header("client-a"),
		Resource: "arm",
		UserName: "operator",
	})

	assert.Nil(t, err)
	assert.Equal(t, pb.LeaseStatus_LEASE_STATUS_OK, resp.Status)
	assert.Equal(t, "arm", resp.Lease.Resource)
	assert.Equal(t, uint64(1), resp.Lease.Epoch)
	assert.Equal(t, "client-a", resp.Owner.ClientName)
	assert.Equal(t, "operator", resp.Owner.UserName)

	// The request ID is echoed for the request tracker.
	assert.Equal(t, "req-client-a", resp.Header.RequestId)
}

func TestAcquireLeaseClaimed(t *testing.T) {
	s, _ := testServer()
	ctx := context.Background()

	first, _ := s.AcquireLease(ctx, &pb.AcquireLeaseRequest{
		Header: header("client-a"), Resource: "arm",
	})

	resp, err := s.AcquireLease(ctx, &pb.AcquireLeaseRequest{
		Header: header("client-b"), Resource: "arm",
	})

	assert.Nil(t, err)
	assert.Equal(t, pb.LeaseStatus_LEASE_STATUS_ALREADY_CLAIMED, resp.Status)
	assert.Equal(t, first.Lease.Epoch, resp.Lease.Epoch)
	assert.Equal(t, "client-a", resp.Owner.ClientName)
}

func TestAcquireLeaseInvalidResource(t *testing.T) {
	s, _ := testServer()

	resp, err := s.AcquireLease(context.Background(), &pb.AcquireLeaseRequest{
		Header: header("client-a"), Resource: "leg",
	})

	assert.Nil(t, err)
	assert.Equal(t, pb.LeaseStatus_LEASE_STATUS_INVALID_RESOURCE, resp.Status)

	_, err = s.AcquireLease(context.Background(), &pb.AcquireLeaseRequest{
		Header: header("client-a"),
	})
	assert.Equal(t, ErrResourceEmpty, err)
}

func TestTakeLease(t *testing.T) {
	s, _ := testServer()
	ctx := context.Background()

	first, _ := s.AcquireLease(ctx, &pb.AcquireLeaseRequest{
		Header: header("client-a"), Resource: "arm",
	})

	resp, err := s.TakeLease(ctx, &pb.TakeLeaseRequest{
		Header: header("client-b"), Resource: "arm",
	})

	assert.Nil(t, err)
	assert.Equal(t, pb.LeaseStatus_LEASE_STATUS_OK, resp.Status)
	assert.Greater(t, resp.Lease.Epoch, first.Lease.Epoch)
	assert.Equal(t, "client-b", resp.Owner.ClientName)

	invalid, _ := s.TakeLease(ctx, &pb.TakeLeaseRequest{
		Header: header("client-b"), Resource: "leg",
	})
	assert.Equal(t, pb.LeaseStatus_LEASE_STATUS_INVALID_RESOURCE, invalid.Status)
}

func TestReturnLease(t *testing.T) {
	s, _ := testServer()
	ctx := context.Background()

	acquired, _ := s.AcquireLease(ctx, &pb.AcquireLeaseRequest{
		Header: header("client-a"), Resource: "arm",
	})

	resp, err := s.ReturnLease(ctx, &pb.ReturnLeaseRequest{
		Header: header("client-a"), Lease: acquired.Lease,
	})
	assert.Nil(t, err)
	assert.Equal(t, pb.LeaseStatus_LEASE_STATUS_OK, resp.Status)

	// A second return of the same lease is stale.
	resp, _ = s.ReturnLease(ctx, &pb.ReturnLeaseRequest{
		Header: header("client-a"), Lease: acquired.Lease,
	})
	assert.Equal(t, pb.LeaseStatus_LEASE_STATUS_NOT_ACTIVE_LEASE, resp.Status)

	resp, _ = s.ReturnLease(ctx, &pb.ReturnLeaseRequest{
		Header: header("client-a"), Lease: &pb.Lease{Resource: "leg", Epoch: 1},
	})
	assert.Equal(t, pb.LeaseStatus_LEASE_STATUS_INVALID_RESOURCE, resp.Status)

	_, err = s.ReturnLease(ctx, &pb.ReturnLeaseRequest{Header: header("client-a")})
	assert.Equal(t, ErrLeaseEmpty, err)
}

func TestListLeases(t *testing.T) {
	s, _ := testServer()
	ctx := context.Background()

	acquired, _ := s.AcquireLease(ctx, &pb.AcquireLeaseRequest{
		Header: header("client-a"), Resource: "arm",
	})

	resp, err := s.ListLeases(ctx, &pb.ListLeasesRequest{Header: header("client-b")})
	assert.Nil(t, err)
	assert.Equal(t, pb.LeaseStatus_LEASE_STATUS_OK, resp.Status)
	assert.Equal(t, 3, len(resp.Resources))

	// Rows are ordered by resource name; only the arm is claimed.
	assert.Equal(t, "arm", resp.Resources[0].Resource)
	assert.Equal(t, acquired.Lease.Epoch, resp.Resources[0].Lease.Epoch)
	assert.Equal(t, "client-a", resp.Resources[0].Owner.ClientName)
	assert.Equal(t, t0.UnixNano(), resp.Resources[0].LastRetainTimestamp)

	for _, r := range resp.Resources[1:] {
		assert.Nil(t, r.Lease)
		assert.Nil(t, r.Owner)
	}
}

func TestRetainLease(t *testing.T) {
	s, c := testServer()
	ctx := context.Background()

	acquired, _ := s.AcquireLease(ctx, &pb.AcquireLeaseRequest{
		Header: header("client-a"), Resource: "arm",
	})

	c.Advance(5 * time.Second)

	stream := &mockRetainStream{
		reqs: []*pb.RetainLeaseRequest{
			{Header: header("client-a"), Lease: acquired.Lease},
			{Header: header("client-a"), Lease: &pb.Lease{Resource: "leg", Epoch: 1}},
		},
	}

	err := s.RetainLease(stream)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(stream.resps))

	valid := stream.resps[0]
	assert.Equal(t, pb.LeaseStatus_LEASE_STATUS_OK, valid.Status)
	assert.Equal(t, pb.LeaseUseResult_STATUS_OK, valid.Result.Status)
	assert.Equal(t, acquired.Lease.Epoch, valid.Result.CurrentLease.Epoch)

	unknown := stream.resps[1]
	assert.Equal(t, pb.LeaseUseResult_STATUS_UNKNOWN_RESOURCE, unknown.Result.Status)

	// The keep-alive refreshed the entry's last-retain time.
	list, _ := s.ListLeases(ctx, &pb.ListLeasesRequest{Header: header("client-a")})
	assert.Equal(t, t0.Add(5*time.Second).UnixNano(), list.Resources[0].LastRetainTimestamp)
}

func TestRetainLeaseStaleAfterTake(t *testing.T) {
	s, _ := testServer()
	ctx := context.Background()

	acquired, _ := s.AcquireLease(ctx, &pb.AcquireLeaseRequest{
		Header: header("client-a"), Resource: "arm",
	})
	taken, _ := s.TakeLease(ctx, &pb.TakeLeaseRequest{
		Header: header("client-b"), Resource: "arm",
	})

	stream := &mockRetainStream{
		reqs: []*pb.RetainLeaseRequest{
			{Header: header("client-a"), Lease: acquired.Lease},
		},
	}

	assert.Nil(t, s.RetainLease(stream))

	stale := stream.resps[0].Result
	assert.Equal(t, pb.LeaseUseResult_STATUS_OLDER_EPOCH, stale.Status)
	assert.Equal(t, taken.Lease.Epoch, stale.CurrentLease.Epoch)
	assert.Equal(t, "client-b", stale.Owner.ClientName)
}

func TestNotAuthoritative(t *testing.T) {
	s, _ := testServer()
	s.Authority = denyAuthority{}
	ctx := context.Background()

	acquire, _ := s.AcquireLease(ctx, &pb.AcquireLeaseRequest{
		Header: header("client-a"), Resource: "arm",
	})
	assert.Equal(t, pb.LeaseStatus_LEASE_STATUS_NOT_AUTHORITATIVE, acquire.Status)

	take, _ := s.TakeLease(ctx, &pb.TakeLeaseRequest{
		Header: header("client-a"), Resource: "arm",
	})
	assert.Equal(t, pb.LeaseStatus_LEASE_STATUS_NOT_AUTHORITATIVE, take.Status)

	ret, _ := s.ReturnLease(ctx, &pb.ReturnLeaseRequest{
		Header: header("client-a"), Lease: &pb.Lease{Resource: "arm", Epoch: 1},
	})
	assert.Equal(t, pb.LeaseStatus_LEASE_STATUS_NOT_AUTHORITATIVE, ret.Status)

	list, _ := s.ListLeases(ctx, &pb.ListLeasesRequest{Header: header("client-a")})
	assert.Equal(t, pb.LeaseStatus_LEASE_STATUS_NOT_AUTHORITATIVE, list.Status)

	stream := &mockRetainStream{
		reqs: []*pb.RetainLeaseRequest{
			{Header: header("client-a"), Lease: &pb.Lease{Resource: "arm", Epoch: 1}},
		},
	}
	assert.Nil(t, s.RetainLease(stream))
	assert.Equal(t, pb.LeaseStatus_LEASE_STATUS_NOT_AUTHORITATIVE, stream.resps[0].Status)
}

// TestScenario walks the contended-takeover sequence through the API.
func TestScenario(t *testing.T) {
	s, _ := testServer()
	ctx := context.Background()

	// First client claims the unclaimed arm.
	acquired, _ := s.AcquireLease(ctx, &pb.AcquireLeaseRequest{
		Header: header("first"), Resource: "arm",
	})
	assert.Equal(t, pb.LeaseStatus_LEASE_STATUS_OK, acquired.Status)

	// Second client's Acquire loses, seeing the first client as owner.
	contended, _ := s.AcquireLease(ctx, &pb.AcquireLeaseRequest{
		Header: header("second"), Resource: "arm",
	})
	assert.Equal(t, pb.LeaseStatus_LEASE_STATUS_ALREADY_CLAIMED, contended.Status)
	assert.Equal(t, "first", contended.Owner.ClientName)

	// Second client escalates to Take.
	taken, _ := s.TakeLease(ctx, &pb.TakeLeaseRequest{
		Header: header("second"), Resource: "arm",
	})
	assert.Equal(t, pb.LeaseStatus_LEASE_STATUS_OK, taken.Status)
	assert.Greater(t, taken.Lease.Epoch, acquired.Lease.Epoch)

	// First client's keep-alive now reads stale.
	stream := &mockRetainStream{
		reqs: []*pb.RetainLeaseRequest{
			{Header: header("first"), Lease: acquired.Lease},
		},
	}
	assert.Nil(t, s.RetainLease(stream))
	assert.Equal(t, pb.LeaseUseResult_STATUS_OLDER_EPOCH, stream.resps[0].Result.Status)

	// Second client returns; the list shows the arm unclaimed.
	returned, _ := s.ReturnLease(ctx, &pb.ReturnLeaseRequest{
		Header: header("second"), Lease: taken.Lease,
	})
	assert.Equal(t, pb.LeaseStatus_LEASE_STATUS_OK, returned.Status)

	list, _ := s.ListLeases(ctx, &pb.ListLeasesRequest{Header: header("second")})
	assert.Equal(t, "arm", list.Resources[0].Resource)
	assert.Nil(t, list.Resources[0].Lease)
}
