package main

import (
	"context"
	"os"

	"dominicbreuker/quicmux/cmd/parse"
	"dominicbreuker/quicmux/cmd/version"
	"dominicbreuker/quicmux/cmd/vneg"
	"dominicbreuker/quicmux/pkg/log"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "quicmux",
		Usage: "QUIC datagram demultiplexer utilities",
		Commands: []*cli.Command{
			parse.GetCommand(),
			vneg.GetCommand(),
			version.GetCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.ErrorMsg("%s\n", err)
		os.Exit(1)
	}
}
