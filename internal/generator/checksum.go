package generator

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// checksumWords is how many upcoming words StateChecksum hashes.
const checksumWords = 4

// ComputeChecksum computes a SHA256 checksum for the given data
func ComputeChecksum(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// StateChecksum fingerprints the random state of g by hashing the next few
// words a fork of it would draw. g itself consumes nothing.
//
// Two generators with equal checksums produce the same values from here on,
// which is how a replayed session is checked against its stored state.
func StateChecksum(g *Generator) string {
	src := g.source.Fork()
	data := make([]byte, 0, checksumWords*8)
	for range checksumWords {
		data = binary.LittleEndian.AppendUint64(data, src.Uint64())
	}
	return ComputeChecksum(data)
}
