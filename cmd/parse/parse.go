// Package parse implements the CLI command that decodes the routing header
// of a captured datagram, useful when debugging demultiplexing decisions.
package parse

import (
	"context"
	"encoding/hex"
	"fmt"

	"dominicbreuker/quicmux/pkg/format"
	"dominicbreuker/quicmux/pkg/wire"

	"github.com/urfave/cli/v3"
)

const cidLengthFlag = "cid-length"

// GetCommand ...
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Decode the routing header of a hex-encoded datagram",
		ArgsUsage: "hexdata",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     cidLengthFlag,
				Usage:    "Connection ID length assumed for short header packets",
				Value:    wire.HostCIDLength,
				Required: false,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raw, err := hex.DecodeString(cmd.Args().First())
			if err != nil {
				return fmt.Errorf("hex.DecodeString(): %s", err)
			}

			hdr, err := wire.ParseHeader(raw, int(cmd.Int(cidLengthFlag)))
			if err != nil {
				return fmt.Errorf("wire.ParseHeader(): %s", err)
			}

			printHeader(hdr)
			return nil
		},
	}
}

func printHeader(hdr wire.Header) {
	if hdr.IsLongHeader {
		fmt.Println("form: long")
		fmt.Printf("version: %#010x\n", hdr.Version)
	} else {
		fmt.Println("form: short")
	}

	fmt.Printf("packet type: %#04x", hdr.PacketType)
	if hdr.PacketType == wire.PacketTypeInitial && hdr.IsLongHeader {
		fmt.Print(" (initial)")
	}
	fmt.Println()

	fmt.Printf("destination id: %s\n", format.CID(hdr.DestinationCID))
	fmt.Printf("source id: %s\n", format.CID(hdr.SourceCID))
	if len(hdr.Token) > 0 {
		fmt.Printf("token: %x\n", hdr.Token)
	}
}
