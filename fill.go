package argon2

import "sync"

// fillSegment fills one segment — the blocks of one lane within one
// slice of one pass — in strict index order. For the data-independent
// and hybrid variants it first materializes this
// segment's address stream (generateAddresses); data-dependent steps
// instead draw their pseudo-random value straight from the previous
// block's first word.
func fillSegment(inst *instance, pass, lane, slice uint32) {
	independent := usesDataIndependentAddressing(inst.typ, position{pass: pass, slice: slice})
	var addresses []uint64
	if independent {
		addresses = generateAddresses(inst, position{pass: pass, lane: lane, slice: slice})
	}

	start := uint32(0)
	if pass == 0 && slice == 0 {
		start = 2
	}

	for i := start; i < inst.segmentLength; i++ {
		col := slice*inst.segmentLength + i

		prevCol := col - 1
		if col == 0 {
			prevCol = inst.laneLength - 1
		}
		prevBlock := inst.block(lane, prevCol)

		var pseudoRand uint64
		if independent {
			pseudoRand = addresses[i]
		} else {
			pseudoRand = prevBlock[0]
		}

		pos := position{pass: pass, lane: lane, slice: slice, index: i}
		refLane, refCol := indexAlpha(inst, pos, pseudoRand)
		refBlock := inst.block(refLane, refCol)

		z := g(prevBlock, refBlock, inst.sb)
		cur := inst.block(lane, col)
		if pass == 0 {
			cur.copyFrom(&z)
		} else {
			cur.xorWith(&z)
		}

		if inst.debug {
			inst.log.Debug("filled block",
				"pass", pass, "lane", lane, "slice", slice, "index", i,
				"refLane", refLane, "refCol", refCol)
		}
	}
}

// fillMemory runs the full passes x 4-slice schedule, dispatching
// fillSegment across lanes within each slice and synchronizing with a
// barrier before the next slice. It also drives the "ds" variant's
// S-box regeneration: once before pass 0's first slice (from the
// B[0][0] FillFirstBlocks already seeded) and again at the start of
// every later pass, always from the current B[0][0] before this pass's
// fill has touched it.
func fillMemory(inst *instance) {
	for pass := uint32(0); pass < inst.passes; pass++ {
		if inst.sb != nil {
			inst.sb = generateSbox(inst.block(0, 0))
		}
		for slice := uint32(0); slice < syncPoints; slice++ {
			fillSlice(inst, pass, slice)
		}
		if inst.debug {
			inst.log.Debug("pass complete", "pass", pass)
		}
	}
}

// fillSlice fans fillSegment out across the instance's lanes, processing
// at most inst.threads lanes concurrently at a time: threads is clamped
// to lanes, so when threads == lanes every lane runs in its own goroutine
// and the calling goroutine takes the last one; when threads < lanes,
// lanes are processed in threads-sized batches, each batch joined before
// the next starts.
func fillSlice(inst *instance, pass, slice uint32) {
	batch := inst.threads

	for base := uint32(0); base < inst.lanes; base += batch {
		n := batch
		if base+n > inst.lanes {
			n = inst.lanes - base
		}

		var wg sync.WaitGroup
		wg.Add(int(n) - 1)
		for k := uint32(0); k < n-1; k++ {
			lane := base + k
			go func(lane uint32) {
				defer wg.Done()
				fillSegment(inst, pass, lane, slice)
			}(lane)
		}
		// The calling goroutine runs the last lane of the batch itself.
		fillSegment(inst, pass, base+n-1, slice)
		wg.Wait()
	}
}
