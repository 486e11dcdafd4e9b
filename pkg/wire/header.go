// Package wire implements stateless parsing of QUIC routing headers and
// encoding of version negotiation datagrams. Parsing must work before any
// connection state exists, so short-header packets are decoded under the
// fixed host connection ID length assumption.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/quic-go/quic-go/quicvarint"
)

// HostCIDLength is the fixed length of host-chosen connection IDs. Short
// header packets carry no length field, so routing them statelessly requires
// every host-issued ID to have this length.
const HostCIDLength = 8

// MaxCIDLength is the largest connection ID length a long header may carry.
const MaxCIDLength = 20

const longHeaderBit = 0x80
const fixedBit = 0x40

// packetTypeMask extracts the packet type bits from a long-header first byte.
const packetTypeMask = 0xF0

// PacketTypeInitial identifies Initial packets, the only packet type allowed
// to create new connection state.
const PacketTypeInitial = longHeaderBit | fixedBit

// Header holds the routing fields parsed from the start of a datagram.
type Header struct {
	IsLongHeader   bool
	Version        uint32
	HasVersion     bool
	PacketType     byte
	DestinationCID []byte
	SourceCID      []byte
	Token          []byte
}

// ParseHeader decodes the routing header of a datagram. hostCIDLength is the
// length assumed for the destination ID of short-header packets. Any
// truncated or oversized field fails the parse; callers drop such datagrams
// without touching connection state.
func ParseHeader(data []byte, hostCIDLength int) (Header, error) {
	buf := bytes.NewReader(data)

	first, err := buf.ReadByte()
	if err != nil {
		return Header{}, fmt.Errorf("reading first byte: %w", err)
	}

	if first&longHeaderBit == 0 {
		return parseShortHeader(buf, first, hostCIDLength)
	}

	return parseLongHeader(buf, first)
}

func parseShortHeader(buf *bytes.Reader, first byte, hostCIDLength int) (Header, error) {
	dcid := make([]byte, hostCIDLength)
	if _, err := io.ReadFull(buf, dcid); err != nil {
		return Header{}, fmt.Errorf("reading destination ID: %w", err)
	}

	return Header{
		PacketType:     first & packetTypeMask,
		DestinationCID: dcid,
	}, nil
}

func parseLongHeader(buf *bytes.Reader, first byte) (Header, error) {
	hdr := Header{IsLongHeader: true, HasVersion: true}

	if err := binary.Read(buf, binary.BigEndian, &hdr.Version); err != nil {
		return Header{}, fmt.Errorf("reading version: %w", err)
	}

	var err error
	if hdr.DestinationCID, err = readCID(buf); err != nil {
		return Header{}, fmt.Errorf("reading destination ID: %w", err)
	}
	if hdr.SourceCID, err = readCID(buf); err != nil {
		return Header{}, fmt.Errorf("reading source ID: %w", err)
	}

	// version 0 marks a version negotiation packet, which has no packet
	// type bits
	if hdr.Version == 0 {
		return hdr, nil
	}

	hdr.PacketType = first & packetTypeMask
	if hdr.PacketType == PacketTypeInitial {
		if hdr.Token, err = readToken(buf); err != nil {
			return Header{}, fmt.Errorf("reading token: %w", err)
		}
	}

	return hdr, nil
}

// readCID reads a length-prefixed connection ID from a long header.
func readCID(buf *bytes.Reader) ([]byte, error) {
	length, err := buf.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("reading length: %w", err)
	}
	if length > MaxCIDLength {
		return nil, fmt.Errorf("connection ID length %d exceeds %d", length, MaxCIDLength)
	}

	cid := make([]byte, length)
	if _, err := io.ReadFull(buf, cid); err != nil {
		return nil, fmt.Errorf("reading %d bytes: %w", length, err)
	}

	return cid, nil
}

// readToken reads the variable-length token carried by Initial packets.
func readToken(buf *bytes.Reader) ([]byte, error) {
	length, err := quicvarint.Read(buf)
	if err != nil {
		return nil, fmt.Errorf("reading length: %w", err)
	}
	if length > uint64(buf.Len()) {
		return nil, fmt.Errorf("token length %d exceeds remaining %d bytes", length, buf.Len())
	}

	token := make([]byte, length)
	if _, err := io.ReadFull(buf, token); err != nil {
		return nil, fmt.Errorf("reading %d bytes: %w", length, err)
	}

	return token, nil
}
