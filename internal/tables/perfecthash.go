package tables

// perfectHash is a from-scratch CHD-family ("compress, hash, displace")
// perfect hash over a fixed key set, grounded on the original
// evaluator's perf_hash: keys are bucketed by their high bits
// (key >> rowShift), and each bucket is assigned a small additive offset
// such that every key in the bucket lands on a distinct, previously
// unoccupied slot of a flat table sized to a power of two. The hash is not
// minimal: the table has at least twice as many slots as keys, and the slots
// no key lands on stay unused.
type perfectHash struct {
	rowShift   uint
	offsets    []uint32
	tableMask  uint32
	tableSize  uint32
}

// Index returns the slot a key hashes to. The caller is responsible for
// only ever querying keys that were present in the build set (or accepting
// an arbitrary result otherwise — this is a perfect hash, not a general
// membership test).
func (h *perfectHash) Index(key uint32) uint32 {
	bucket := key >> h.rowShift
	offset := uint32(0)
	if int(bucket) < len(h.offsets) {
		offset = h.offsets[bucket]
	}
	return (key + offset) & h.tableMask
}

const perfHashRowShift = 12

// buildPerfectHash constructs a perfectHash over the given keys. Buckets are
// processed largest-first (the classic CHD heuristic: the hardest buckets
// to place get first pick of slots), and within a bucket, offsets are tried
// in increasing order until every member lands on a free slot.
func buildPerfectHash(keys []uint32) *perfectHash {
	// A tableSize of at least 2x the key count (rounded up to a power of
	// two) keeps the greedy per-bucket
	// displacement search fast; CHD-style construction is reliable well
	// below a 0.5 load factor.
	tableSize := nextPow2(len(keys) * 2)
	tableMask := tableSize - 1

	buckets := map[uint32][]uint32{}
	maxBucket := uint32(0)
	for _, k := range keys {
		b := k >> perfHashRowShift
		buckets[b] = append(buckets[b], k)
		if b > maxBucket {
			maxBucket = b
		}
	}

	order := make([]uint32, 0, len(buckets))
	for b := range buckets {
		order = append(order, b)
	}
	sortBucketsBySizeDesc(order, buckets)

	offsets := make([]uint32, maxBucket+1)
	occupied := make([]bool, tableSize)

	for _, b := range order {
		members := buckets[b]
		offset := findOffset(members, occupied, tableMask)
		offsets[b] = offset
		for _, k := range members {
			occupied[(k+offset)&tableMask] = true
		}
	}

	return &perfectHash{
		rowShift:  perfHashRowShift,
		offsets:   offsets,
		tableMask: tableMask,
		tableSize: tableSize,
	}
}

// findOffset searches for the smallest offset placing every member of a
// bucket on a distinct, unoccupied slot. Construction runs once, offline
// (at first package use), so an exhaustive linear search over offsets is an
// acceptable cost for a perfect, collision-free placement.
func findOffset(members []uint32, occupied []bool, tableMask uint32) uint32 {
	slots := make([]uint32, len(members))
	for offset := uint32(0); offset < uint32(len(occupied)); offset++ {
		ok := true
		for i, k := range members {
			slot := (k + offset) & tableMask
			if occupied[slot] {
				ok = false
				break
			}
			for j := 0; j < i; j++ {
				if slots[j] == slot {
					ok = false
					break
				}
			}
			if !ok {
				break
			}
			slots[i] = slot
		}
		if ok {
			return offset
		}
	}
	// Unreachable for a correctly sized table: the caller picked tableSize
	// with enough slack that every bucket can eventually be placed.
	panic("tables: perfect hash construction failed to place a bucket")
}

func sortBucketsBySizeDesc(order []uint32, buckets map[uint32][]uint32) {
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && len(buckets[order[j-1]]) < len(buckets[order[j]]); j-- {
			order[j-1], order[j] = order[j], order[j-1]
		}
	}
}

func nextPow2(n int) uint32 {
	p := uint32(1)
	for int(p) < n {
		p <<= 1
	}
	if p < 2 {
		p = 2
	}
	return p
}
