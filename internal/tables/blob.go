package tables

import (
	"encoding/binary"
	"fmt"
)

// blobMagic and blobVersion identify the binary table format. Runtime load
// refuses to proceed on any mismatch, per spec's "refuses to start if magic
// or version mismatches."
const (
	blobMagic   uint32 = 0x504f4b52 // "POKR"
	blobVersion uint16 = 1
)

// blobHeader is the fixed-size prefix of an encoded table blob.
type blobHeader struct {
	Magic        uint32
	Version      uint16
	RankTableLen uint32
	FlushTableLen uint32
}

const blobHeaderSize = 4 + 2 + 4 + 4

// Marshal encodes t as a header followed by two little-endian uint16 arrays,
// matching spec's external table-blob interface. This is consumed by
// cmd/gentables as the offline codegen output; the package's default runtime
// path (Default, below) does not require it, building tables in-process
// instead — see DESIGN.md for why no prebuilt blob ships in this tree.
func (t *Tables) Marshal() []byte {
	buf := make([]byte, blobHeaderSize+2*len(t.RankTable)+2*len(t.FlushTable))
	binary.LittleEndian.PutUint32(buf[0:4], blobMagic)
	binary.LittleEndian.PutUint16(buf[4:6], blobVersion)
	binary.LittleEndian.PutUint32(buf[6:10], uint32(len(t.RankTable)))
	binary.LittleEndian.PutUint32(buf[10:14], uint32(len(t.FlushTable)))

	off := blobHeaderSize
	for _, v := range t.RankTable {
		binary.LittleEndian.PutUint16(buf[off:off+2], v)
		off += 2
	}
	for _, v := range t.FlushTable {
		binary.LittleEndian.PutUint16(buf[off:off+2], v)
		off += 2
	}
	return buf
}

// Unmarshal decodes a table blob produced by Marshal, validating the header
// before trusting the payload.
func Unmarshal(buf []byte) (*Tables, error) {
	if len(buf) < blobHeaderSize {
		return nil, fmt.Errorf("%w: blob too short (%d bytes)", ErrTableLoad, len(buf))
	}
	magic := binary.LittleEndian.Uint32(buf[0:4])
	version := binary.LittleEndian.Uint16(buf[4:6])
	if magic != blobMagic {
		return nil, fmt.Errorf("%w: bad magic %#x", ErrTableLoad, magic)
	}
	if version != blobVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrTableLoad, version)
	}
	rankLen := binary.LittleEndian.Uint32(buf[6:10])
	flushLen := binary.LittleEndian.Uint32(buf[10:14])

	want := blobHeaderSize + 2*int(rankLen) + 2*int(flushLen)
	if len(buf) != want {
		return nil, fmt.Errorf("%w: length mismatch, want %d got %d", ErrTableLoad, want, len(buf))
	}

	rankTable := make([]uint16, rankLen)
	off := blobHeaderSize
	for i := range rankTable {
		rankTable[i] = binary.LittleEndian.Uint16(buf[off : off+2])
		off += 2
	}
	flushTable := make([]uint16, flushLen)
	for i := range flushTable {
		flushTable[i] = binary.LittleEndian.Uint16(buf[off : off+2])
		off += 2
	}

	// The perfect hash and the category base offsets are both pure functions
	// of the fixed rules of the game, not of the scores in the blob, so they
	// are rebuilt rather than serialized — the blob only needs to carry the
	// two score arrays, matching spec's external interface (§6).
	reference := build()
	if reference.hash.tableSize != rankLen {
		return nil, fmt.Errorf("%w: rank table size %d does not match this build's fingerprint set (%d)", ErrTableLoad, rankLen, reference.hash.tableSize)
	}

	return &Tables{
		RankTable:  rankTable,
		FlushTable: flushTable,
		hash:       reference.hash,
		bases:      reference.bases,
	}, nil
}
