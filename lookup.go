// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

// NormalizeChunkType maps wire-compatible chunk type variants to the
// canonical type the tables are keyed by. I-DATA behaves exactly like DATA
// as far as handler selection is concerned.
func NormalizeChunkType(raw uint32) uint32 {
	if raw == uint32(ChunkIData) {
		return uint32(ChunkData)
	}
	return raw
}

// resolveChunk returns the table and the row serving a chunk type code.
func resolveChunk(code uint32) (*table, uint32) {
	code = NormalizeChunkType(code)
	if code <= uint32(ChunkTypeBaseMax) {
		return chunkTable, code
	}
	if code > 0xffff {
		return unknownChunkTable, 0
	}
	switch ChunkType(code) {
	case ChunkForwardTSN, ChunkIForwardTSN:
		return prsctpTable, 0
	case ChunkAsconf:
		return addipTable, addipRowAsconf
	case ChunkAsconfAck:
		return addipTable, addipRowAsconfAck
	case ChunkReconf:
		return reconfTable, 0
	case ChunkAuth:
		return authTable, 0
	case ChunkPad:
		return padTable, 0
	default:
		return unknownChunkTable, 0
	}
}

// categoryTable returns the primary table for a non-chunk category.
func categoryTable(category EventCategory) *table {
	switch category {
	case CategoryTimeout:
		return timeoutTable
	case CategoryOther:
		return otherTable
	case CategoryPrimitive:
		return primitiveTable
	default:
		return nil
	}
}

// Resolve selects the handler for (category, subtype, state).
//
// Chunk subtypes are chunk type codes: codes no table recognizes resolve to
// the unknown chunk handling and are not an error. For the other categories
// the subtype must not exceed [MaxSubtype].
//
// On a malformed request Resolve returns [Defect] and a [*Fault]. Resolve
// never panics, does not allocate on success, and emits no logs.
func Resolve(category EventCategory, subtype uint32, state State) (Handler, error) {
	if category == CategoryChunk {
		t, idx := resolveChunk(subtype)
		if !state.Valid() {
			return Defect, &Fault{Err: ErrStateRange, Table: t.name, Category: category, Subtype: subtype, State: state}
		}
		return t.rows[idx][state], nil
	}
	t := categoryTable(category)
	if t == nil {
		return Defect, &Fault{Err: ErrInvalidCategory, Category: category, Subtype: subtype, State: state}
	}
	maxSubtype, _ := MaxSubtype(category)
	if subtype > maxSubtype {
		return Defect, &Fault{
			Err:      ErrSubtypeRange,
			Table:    t.name,
			Category: category,
			Subtype:  subtype,
			Max:      maxSubtype,
			State:    state,
		}
	}
	if !state.Valid() {
		return Defect, &Fault{Err: ErrStateRange, Table: t.name, Category: category, Subtype: subtype, State: state}
	}
	return t.rows[subtype][state], nil
}

// Lookup is like [Resolve] but collapses malformed requests into [Defect].
//
// Lookup does not log. Use [*Dispatcher] to get diagnostics.
func Lookup(category EventCategory, subtype uint32, state State) Handler {
	h, _ := Resolve(category, subtype, state)
	return h
}
