package server

import (
	"context"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/fleetrobotics/lease-kit/leaseman/protos"
	"github.com/fleetrobotics/lease-kit/leasetable"
	"github.com/fleetrobotics/lease-kit/metrics"
)

var (
	// ErrResourceEmpty error.
	ErrResourceEmpty = status.Error(codes.InvalidArgument, "resource field must be specified")
	// ErrLeaseEmpty error.
	ErrLeaseEmpty = status.Error(codes.InvalidArgument, "lease field must be specified")
)

// AcquireLease grants a lease on an unclaimed resource. An occupied
// resource answers ALREADY_CLAIMED along with the current lease and
// owner so the caller can decide whether to escalate to TakeLease.
func (s *Server) AcquireLease(ctx context.Context, req *pb.AcquireLeaseRequest) (*pb.AcquireLeaseResponse, error) {
	received := s.clock.Now()

	ctx, cancel, err := s.ValidateRequest(ctx, writeRequest)
	if err != nil {
		return nil, err
	}

	if cancel != nil {
		defer cancel()
	}

	if req.GetResource() == "" {
		return nil, ErrResourceEmpty
	}

	resp := &pb.AcquireLeaseResponse{Header: s.respHeader(req.GetHeader(), received)}

	if !s.Authority.Authoritative(ctx) {
		resp.Status = pb.LeaseStatus_LEASE_STATUS_NOT_AUTHORITATIVE
		return resp, nil
	}

	lease, owner, err := s.Table.Acquire(req.GetResource(), ownerFromRequest(req.GetHeader(), req.GetUserName()))

	switch e := err.(type) {
	case nil:
		resp.Status = pb.LeaseStatus_LEASE_STATUS_OK
		resp.Lease = pbLease(lease)
		resp.Owner = pbOwner(owner)
		metrics.GrantsTotal.WithLabelValues("acquire").Inc()
	case leasetable.ErrClaimed:
		resp.Status = pb.LeaseStatus_LEASE_STATUS_ALREADY_CLAIMED
		resp.Lease = pbLease(e.Lease)
		resp.Owner = pbOwner(e.Owner)
	default:
		if err == leasetable.ErrUnknownResource {
			resp.Status = pb.LeaseStatus_LEASE_STATUS_INVALID_RESOURCE
		}
	}

	return resp, nil
}

// TakeLease forcibly grants a lease regardless of the current holder.
// It never fails due to contention; the prior epoch becomes
// immediately invalid.
func (s *Server) TakeLease(ctx context.Context, req *pb.TakeLeaseRequest) (*pb.TakeLeaseResponse, error) {
	received := s.clock.Now()

	ctx, cancel, err := s.ValidateRequest(ctx, writeRequest)
	if err != nil {
		return nil, err
	}

	if cancel != nil {
		defer cancel()
	}

	if req.GetResource() == "" {
		return nil, ErrResourceEmpty
	}

	resp := &pb.TakeLeaseResponse{Header: s.respHeader(req.GetHeader(), received)}

	if !s.Authority.Authoritative(ctx) {
		resp.Status = pb.LeaseStatus_LEASE_STATUS_NOT_AUTHORITATIVE
		return resp, nil
	}

	lease, owner, err := s.Table.Take(req.GetResource(), ownerFromRequest(req.GetHeader(), req.GetUserName()))

	switch err {
	case nil:
		resp.Status = pb.LeaseStatus_LEASE_STATUS_OK
		resp.Lease = pbLease(lease)
		resp.Owner = pbOwner(owner)
		metrics.GrantsTotal.WithLabelValues("take").Inc()
	case leasetable.ErrUnknownResource:
		resp.Status = pb.LeaseStatus_LEASE_STATUS_INVALID_RESOURCE
	}

	return resp, nil
}

// ReturnLease releases an active lease, making the resource
// acquirable again. Only the exact active lease can be returned.
func (s *Server) ReturnLease(ctx context.Context, req *pb.ReturnLeaseRequest) (*pb.ReturnLeaseResponse, error) {
	received := s.clock.Now()

	ctx, cancel, err := s.ValidateRequest(ctx, writeRequest)
	if err != nil {
		return nil, err
	}

	if cancel != nil {
		defer cancel()
	}

	if req.GetLease() == nil {
		return nil, ErrLeaseEmpty
	}

	resp := &pb.ReturnLeaseResponse{Header: s.respHeader(req.GetHeader(), received)}

	if !s.Authority.Authoritative(ctx) {
		resp.Status = pb.LeaseStatus_LEASE_STATUS_NOT_AUTHORITATIVE
		return resp, nil
	}

	switch s.Table.Return(tableLease(req.GetLease())) {
	case nil:
		resp.Status = pb.LeaseStatus_LEASE_STATUS_OK
		metrics.ReturnsTotal.Inc()
	case leasetable.ErrUnknownResource:
		resp.Status = pb.LeaseStatus_LEASE_STATUS_INVALID_RESOURCE
	case leasetable.ErrNotActiveLease:
		resp.Status = pb.LeaseStatus_LEASE_STATUS_NOT_ACTIVE_LEASE
	}

	return resp, nil
}

// ListLeases returns a snapshot of all lease table entries. No row is
// ever torn; each entry is copied under the same lock the mutating
// operations take.
func (s *Server) ListLeases(ctx context.Context, req *pb.ListLeasesRequest) (*pb.ListLeasesResponse, error) {
	received := s.clock.Now()

	ctx, cancel, err := s.ValidateRequest(ctx, readRequest)
	if err != nil {
		return nil, err
	}

	if cancel != nil {
		defer cancel()
	}

	resp := &pb.ListLeasesResponse{Header: s.respHeader(req.GetHeader(), received)}

	if !s.Authority.Authoritative(ctx) {
		resp.Status = pb.LeaseStatus_LEASE_STATUS_NOT_AUTHORITATIVE
		return resp, nil
	}

	resp.Status = pb.LeaseStatus_LEASE_STATUS_OK

	for _, row := range s.Table.Snapshot() {
		r := &pb.LeaseResource{Resource: row.Resource}
		if row.Lease != nil {
			r.Lease = pbLease(*row.Lease)
			r.Owner = pbOwner(*row.Owner)
			r.LastRetainTimestamp = row.LastRetain.UnixNano()
		}
		resp.Resources = append(resp.Resources, r)
	}

	return resp, nil
}

// RetainLease is the liveness channel. Each inbound keep-alive is
// validated as an independent short critical section and answered with
// one verdict. The stream stays open until the client closes it or the
// server shuts down; closing it does not revoke the lease — only an
// explicit ReturnLease or the liveness monitor's timeout does.
func (s *Server) RetainLease(stream pb.LeaseService_RetainLeaseServer) error {
	for {
		req, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		received := s.clock.Now()
		resp := &pb.RetainLeaseResponse{Header: s.respHeader(req.GetHeader(), received)}

		if !s.Authority.Authoritative(stream.Context()) {
			resp.Status = pb.LeaseStatus_LEASE_STATUS_NOT_AUTHORITATIVE
			if err := stream.Send(resp); err != nil {
				return err
			}
			continue
		}

		if req.GetLease() == nil {
			return ErrLeaseEmpty
		}

		result := s.Table.Retain(tableLease(req.GetLease()))

		resp.Status = pb.LeaseStatus_LEASE_STATUS_OK
		resp.Result = pbUseResult(result)
		metrics.RetainVerdicts.WithLabelValues(useStatusLabel(result.Status)).Inc()

		if err := stream.Send(resp); err != nil {
			return err
		}
	}
}

func ownerFromRequest(h *pb.RequestHeader, userName string) leasetable.Owner {
	return leasetable.Owner{
		ClientName: h.GetClientName(),
		UserName:   userName,
	}
}

func pbLease(l leasetable.Lease) *pb.Lease {
	return &pb.Lease{
		Resource: l.Resource,
		Epoch:    l.Epoch,
		Sequence: l.Sequence,
	}
}

func tableLease(l *pb.Lease) leasetable.Lease {
	return leasetable.Lease{
		Resource: l.GetResource(),
		Epoch:    l.GetEpoch(),
		Sequence: l.GetSequence(),
	}
}

func pbOwner(o leasetable.Owner) *pb.LeaseOwner {
	return &pb.LeaseOwner{
		ClientName: o.ClientName,
		UserName:   o.UserName,
	}
}

func pbUseResult(r leasetable.UseResult) *pb.LeaseUseResult {
	result := &pb.LeaseUseResult{AttemptedLease: pbLease(r.Attempted)}

	switch r.Status {
	case leasetable.UseOK:
		result.Status = pb.LeaseUseResult_STATUS_OK
	case leasetable.UseStale:
		result.Status = pb.LeaseUseResult_STATUS_OLDER_EPOCH
	case leasetable.UseUnknownResource:
		result.Status = pb.LeaseUseResult_STATUS_UNKNOWN_RESOURCE
	}

	if r.Current != nil {
		result.CurrentLease = pbLease(*r.Current)
		result.Owner = pbOwner(*r.Owner)
	}

	return result
}

func useStatusLabel(s leasetable.UseStatus) string {
	switch s {
	case leasetable.UseOK:
		return "ok"
	case leasetable.UseStale:
		return "stale"
	case leasetable.UseUnknownResource:
		return "unknown_resource"
	}

	return "invalid"
}
