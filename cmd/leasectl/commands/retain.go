package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	pb "github.com/fleetrobotics/lease-kit/leaseman/protos"

	"github.com/spf13/cobra"
)

var retainCmd = &cobra.Command{
	Use:   "retain",
	Short: "Hold a lease open by streaming keep-alives until interrupted",
	Run:   retain,
}

func init() {
	rootCmd.AddCommand(retainCmd)

	retainCmd.Flags().String("resource", "", "Resource the lease covers")
	retainCmd.Flags().Uint64("epoch", 0, "Epoch of the held lease")
	retainCmd.Flags().Duration("interval", 2*time.Second, "Keep-alive send interval")

	retainCmd.MarkFlagRequired("resource")
	retainCmd.MarkFlagRequired("epoch")
}

func retain(cmd *cobra.Command, _ []string) {
	c, conn := leaseClient(cmd)
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		cancel()
	}()

	stream, err := c.RetainLease(ctx)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	resource, _ := cmd.Flags().GetString("resource")
	epoch, _ := cmd.Flags().GetUint64("epoch")
	interval, _ := cmd.Flags().GetDuration("interval")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var sequence uint64

	for {
		sequence++

		err := stream.Send(&pb.RetainLeaseRequest{
			Header: requestHeader(cmd),
			Lease:  &pb.Lease{Resource: resource, Epoch: epoch, Sequence: sequence},
		})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		resp, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			fmt.Println(err)
			os.Exit(1)
		}

		if resp.Status != pb.LeaseStatus_LEASE_STATUS_OK {
			fmt.Printf("keep-alive refused: %s\n", resp.Status)
			os.Exit(1)
		}

		if resp.Result.Status != pb.LeaseUseResult_STATUS_OK {
			fmt.Printf("lease no longer valid: %s\n", resp.Result.Status)
			if current := resp.Result.CurrentLease; current != nil {
				fmt.Printf("current holder: %s (epoch %d)\n", resp.Result.Owner.ClientName, current.Epoch)
			}
			os.Exit(1)
		}

		select {
		case <-ctx.Done():
			stream.CloseSend()
			return
		case <-ticker.C:
		}
	}
}
