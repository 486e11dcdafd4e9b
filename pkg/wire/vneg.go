package wire

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// EncodeVersionNegotiation encodes a version negotiation datagram advertising
// the given supported versions. Callers answer a client's packet by swapping
// its IDs: the client's source ID becomes the destination here, and the
// client's destination ID the source. The unused bits of the first byte are
// randomized so clients cannot latch onto them.
func EncodeVersionNegotiation(sourceCID, destinationCID []byte, versions []uint32) ([]byte, error) {
	var first [1]byte
	if _, err := rand.Read(first[:]); err != nil {
		return nil, fmt.Errorf("rand.Read(): %w", err)
	}

	buf := &bytes.Buffer{}
	buf.WriteByte(first[0] | longHeaderBit)
	binary.Write(buf, binary.BigEndian, uint32(0)) // version 0 marks negotiation
	buf.WriteByte(byte(len(destinationCID)))
	buf.Write(destinationCID)
	buf.WriteByte(byte(len(sourceCID)))
	buf.Write(sourceCID)
	for _, version := range versions {
		binary.Write(buf, binary.BigEndian, version)
	}

	return buf.Bytes(), nil
}
