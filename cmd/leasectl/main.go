package main

import (
	"github.com/fleetrobotics/lease-kit/cmd/leasectl/commands"
)

func main() {
	commands.Execute()
}
