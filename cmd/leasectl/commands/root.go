package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "leasectl",
	Short: "leasectl acquires and manages resource leases",
	Long:  `leasectl is a client for the leaseman resource lease service`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("addr", "localhost:8090", "leaseman gRPC address")
	rootCmd.PersistentFlags().String("client-name", "leasectl", "Client name to present to leaseman")
	rootCmd.PersistentFlags().String("user-name", "", "Human operator name recorded on the lease")
	rootCmd.PersistentFlags().Duration("timeout", 10*time.Second, "Request timeout")
}
