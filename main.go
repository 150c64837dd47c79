package main

import (
	"fmt"
	"os"

	"github.com/gqlc/tsmock/cmd"
	"github.com/gqlc/tsmock/tsmock"
)

var cli *cmd.CommandLine

func init() {
	cli = cmd.NewCLI()
	cli.AllowPlugins("tsmock-gen-")

	// Register TypeScript mock generator
	cli.RegisterGenerator(&tsmock.Generator{}, "tsmock_out", "tsmock_opt",
		"Generate TypeScript mock factories.")
}

func main() {
	if err := cli.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
