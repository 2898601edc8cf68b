package commands

import (
	"fmt"
	"os"

	pb "github.com/fleetrobotics/lease-kit/leaseman/protos"

	"github.com/spf13/cobra"
)

var returnCmd = &cobra.Command{
	Use:   "return",
	Short: "Return an active lease",
	Run:   returnLease,
}

func init() {
	rootCmd.AddCommand(returnCmd)

	returnCmd.Flags().String("resource", "", "Resource the lease covers")
	returnCmd.Flags().Uint64("epoch", 0, "Epoch of the lease being returned")

	returnCmd.MarkFlagRequired("resource")
	returnCmd.MarkFlagRequired("epoch")
}

func returnLease(cmd *cobra.Command, _ []string) {
	c, conn := leaseClient(cmd)
	defer conn.Close()

	ctx, cancel := requestContext(cmd)
	defer cancel()

	resource, _ := cmd.Flags().GetString("resource")
	epoch, _ := cmd.Flags().GetUint64("epoch")

	resp, err := c.ReturnLease(ctx, &pb.ReturnLeaseRequest{
		Header: requestHeader(cmd),
		Lease:  &pb.Lease{Resource: resource, Epoch: epoch},
	})
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	exitOnStatus(resp.Status)
	fmt.Printf("returned %s\n", resource)
}
