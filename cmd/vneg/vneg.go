// Package vneg implements the CLI command that emits a version negotiation
// datagram for given connection IDs, mirroring what the server sends when a
// client proposes an unsupported version.
package vneg

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"

	"dominicbreuker/quicmux/pkg/wire"

	"github.com/urfave/cli/v3"
)

const dcidFlag = "dcid"
const scidFlag = "scid"
const versionsFlag = "version"

// GetCommand ...
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "vneg",
		Usage: "Encode a version negotiation datagram",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     dcidFlag,
				Usage:    "Destination connection ID as hex",
				Required: true,
			},
			&cli.StringFlag{
				Name:     scidFlag,
				Usage:    "Source connection ID as hex",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:     versionsFlag,
				Usage:    "Supported version to advertise, may be repeated",
				Value:    []string{"1"},
				Required: false,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dcid, err := hex.DecodeString(cmd.String(dcidFlag))
			if err != nil {
				return fmt.Errorf("hex.DecodeString(%s): %s", dcidFlag, err)
			}

			scid, err := hex.DecodeString(cmd.String(scidFlag))
			if err != nil {
				return fmt.Errorf("hex.DecodeString(%s): %s", scidFlag, err)
			}

			var versions []uint32
			for _, v := range cmd.StringSlice(versionsFlag) {
				parsed, err := strconv.ParseUint(v, 0, 32)
				if err != nil {
					return fmt.Errorf("strconv.ParseUint(%s): %s", v, err)
				}
				versions = append(versions, uint32(parsed))
			}

			data, err := wire.EncodeVersionNegotiation(scid, dcid, versions)
			if err != nil {
				return fmt.Errorf("wire.EncodeVersionNegotiation(): %s", err)
			}

			fmt.Println(hex.EncodeToString(data))
			return nil
		},
	}
}
