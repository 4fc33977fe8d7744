// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every in-range (category, subtype, state) resolves without a fault.
func TestLookupTotality(t *testing.T) {
	for _, category := range Categories() {
		var subtypes []uint32
		if category == CategoryChunk {
			for code := uint32(0); code <= 0xff; code++ {
				subtypes = append(subtypes, code)
			}
		} else {
			maxSubtype, ok := MaxSubtype(category)
			require.True(t, ok)
			for subtype := uint32(0); subtype <= maxSubtype; subtype++ {
				subtypes = append(subtypes, subtype)
			}
		}
		for _, subtype := range subtypes {
			for _, state := range States() {
				h, err := Resolve(category, subtype, state)
				require.NoError(t, err, "%s/%d/%s", category, subtype, state)
				assert.Less(t, int(h), int(handlerCount))
				assert.Equal(t, h, Lookup(category, subtype, state))
			}
		}
	}
}

// Out of range subtypes, states and categories produce Defect and a Fault.
func TestLookupBoundsSafety(t *testing.T) {
	tests := []struct {
		// name describes what this test case verifies.
		name string

		// category is the requested category.
		category EventCategory

		// subtype is the requested subtype.
		subtype uint32

		// state is the requested state.
		state State

		// wantErr is the sentinel the fault must wrap.
		wantErr error

		// wantTable is the table named by the fault.
		wantTable string
	}{
		{
			name:      "timeout subtype one past max",
			category:  CategoryTimeout,
			subtype:   uint32(TimeoutTypeMax) + 1,
			state:     StateEstablished,
			wantErr:   ErrSubtypeRange,
			wantTable: "timeout",
		},
		{
			name:      "other subtype one past max",
			category:  CategoryOther,
			subtype:   uint32(OtherTypeMax) + 1,
			state:     StateClosed,
			wantErr:   ErrSubtypeRange,
			wantTable: "other",
		},
		{
			name:      "primitive subtype one past max",
			category:  CategoryPrimitive,
			subtype:   uint32(PrimitiveTypeMax) + 1,
			state:     StateShutdownAckSent,
			wantErr:   ErrSubtypeRange,
			wantTable: "primitive",
		},
		{
			name:      "primitive subtype huge",
			category:  CategoryPrimitive,
			subtype:   ^uint32(0),
			state:     StateEstablished,
			wantErr:   ErrSubtypeRange,
			wantTable: "primitive",
		},
		{
			name:      "chunk with state past the end",
			category:  CategoryChunk,
			subtype:   uint32(ChunkData),
			state:     State(StateCount),
			wantErr:   ErrStateRange,
			wantTable: "chunk",
		},
		{
			name:      "extension chunk with state past the end",
			category:  CategoryChunk,
			subtype:   uint32(ChunkAsconf),
			state:     State(255),
			wantErr:   ErrStateRange,
			wantTable: "addip",
		},
		{
			name:      "timeout with state past the end",
			category:  CategoryTimeout,
			subtype:   uint32(TimeoutHeartbeat),
			state:     State(StateCount),
			wantErr:   ErrStateRange,
			wantTable: "timeout",
		},
		{
			name:     "invalid category",
			category: EventCategory(4),
			subtype:  0,
			state:    StateClosed,
			wantErr:  ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Resolve(tt.category, tt.subtype, tt.state)
			assert.Equal(t, Defect, h)
			require.ErrorIs(t, err, tt.wantErr)

			var fault *Fault
			require.True(t, errors.As(err, &fault))
			assert.Equal(t, tt.wantTable, fault.Table)
			assert.Equal(t, tt.subtype, fault.Subtype)
			assert.Equal(t, tt.state, fault.State)

			assert.Equal(t, Defect, Lookup(tt.category, tt.subtype, tt.state))
		})
	}
}

// Every category rejects max+1 for every state.
func TestLookupMaxPlusOneAllStates(t *testing.T) {
	for _, category := range []EventCategory{CategoryTimeout, CategoryOther, CategoryPrimitive} {
		maxSubtype, _ := MaxSubtype(category)
		for idx := range 256 {
			h, err := Resolve(category, maxSubtype+1, State(idx))
			assert.Equal(t, Defect, h)
			assert.ErrorIs(t, err, ErrSubtypeRange)
		}
	}
}

// I-DATA is dispatched exactly like DATA.
func TestLookupIDataAliasing(t *testing.T) {
	assert.Equal(t, uint32(ChunkData), NormalizeChunkType(uint32(ChunkIData)))
	assert.Equal(t, uint32(ChunkSack), NormalizeChunkType(uint32(ChunkSack)))
	assert.Equal(t, uint32(ChunkForwardTSN), NormalizeChunkType(uint32(ChunkForwardTSN)))

	for _, state := range States() {
		assert.Equal(t,
			Lookup(CategoryChunk, uint32(ChunkData), state),
			Lookup(CategoryChunk, uint32(ChunkIData), state),
			state.String(),
		)
		assert.Equal(t,
			Lookup(CategoryChunk, uint32(ChunkData), state),
			Lookup(CategoryChunk, NormalizeChunkType(uint32(ChunkIData)), state),
			state.String(),
		)
	}
}

// Extension chunk types resolve to their own secondary table row.
func TestLookupExtensionResolution(t *testing.T) {
	tests := []struct {
		ct    ChunkType
		table *table
		row   uint32
	}{
		{ChunkForwardTSN, prsctpTable, 0},
		{ChunkIForwardTSN, prsctpTable, 0},
		{ChunkAsconf, addipTable, addipRowAsconf},
		{ChunkAsconfAck, addipTable, addipRowAsconfAck},
		{ChunkReconf, reconfTable, 0},
		{ChunkAuth, authTable, 0},
		{ChunkPad, padTable, 0},
	}

	for _, tt := range tests {
		t.Run(tt.ct.String(), func(t *testing.T) {
			gotTable, gotRow := resolveChunk(uint32(tt.ct))
			require.Same(t, tt.table, gotTable)
			assert.Equal(t, tt.row, gotRow)
			assert.NotSame(t, unknownChunkTable, gotTable)
			for _, state := range States() {
				assert.Equal(t, tt.table.rows[tt.row][state], Lookup(CategoryChunk, uint32(tt.ct), state))
			}
		})
	}
}

// Codes outside the base range and the extension list use the unknown row.
func TestLookupUnknownChunkFallback(t *testing.T) {
	codes := []uint32{0x10, 0x3f, 0x41, 0x81, 0x83, 0xbf, 0xc3, 0xff, 0x1234}

	// These alias known extension codes if truncated to 16 bits.
	codes = append(codes, 0x100c0, 0x1000f, 0xffff0040)

	for _, code := range codes {
		for _, state := range States() {
			h, err := Resolve(CategoryChunk, code, state)
			require.NoError(t, err)
			assert.Equal(t, unknownChunkTable.rows[0][state], h, "code=0x%x state=%s", code, state)
		}
		assert.Equal(t, HandlerOOTB, Lookup(CategoryChunk, code, StateClosed))
		assert.Equal(t, HandlerUnknownChunk, Lookup(CategoryChunk, code, StateEstablished))
	}
}

// Repeated lookups with identical arguments return identical results.
func TestLookupIdempotence(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 10000 {
		category := EventCategory(rng.IntN(categoryCount + 1))
		subtype := rng.Uint32N(0x200)
		state := State(rng.IntN(StateCount + 2))

		h1, err1 := Resolve(category, subtype, state)
		h2, err2 := Resolve(category, subtype, state)
		assert.Equal(t, h1, h2)
		assert.Equal(t, err1, err2)
		assert.Equal(t, h1, Lookup(category, subtype, state))
	}
}

// Resolve does not allocate on the happy path.
func TestResolveDoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = Resolve(CategoryChunk, uint32(ChunkAsconf), StateEstablished)
		_, _ = Resolve(CategoryTimeout, uint32(TimeoutHeartbeat), StateEstablished)
		_ = Lookup(CategoryPrimitive, uint32(PrimitiveSend), StateCookieWait)
	})
	assert.Equal(t, float64(0), allocs)
}

func TestLookupHeartbeatTimeoutScenario(t *testing.T) {
	assert.Equal(t, "sendbeat_8_3",
		Lookup(CategoryTimeout, uint32(TimeoutHeartbeat), StateEstablished).Name())
	assert.Equal(t, "timer_ignore",
		Lookup(CategoryTimeout, uint32(TimeoutHeartbeat), StateCookieWait).Name())
}

// tableNames renders the table for category as handler names. For the
// chunk category it renders the known chunk types.
func tableNames(category EventCategory) map[string][]string {
	out := make(map[string][]string)
	var subtypes []uint32
	if category == CategoryChunk {
		for _, ct := range KnownChunkTypes() {
			subtypes = append(subtypes, uint32(ct))
		}
	} else {
		maxSubtype, _ := MaxSubtype(category)
		for subtype := uint32(0); subtype <= maxSubtype; subtype++ {
			subtypes = append(subtypes, subtype)
		}
	}
	for _, subtype := range subtypes {
		var names []string
		for _, state := range States() {
			names = append(names, Lookup(category, subtype, state).Name())
		}
		out[SubtypeName(category, subtype)] = names
	}
	return out
}

func TestTimeoutTableSnapshot(t *testing.T) {
	const ig = "timer_ignore"
	want := map[string][]string{
		"NONE":              {"bug", "bug", "bug", "bug", "bug", "bug", "bug", "bug"},
		"T1_COOKIE":         {"bug", "bug", "t1_cookie_timer_expire", ig, ig, ig, ig, ig},
		"T1_INIT":           {ig, "t1_init_timer_expire", ig, ig, ig, ig, ig, ig},
		"T2_SHUTDOWN":       {ig, ig, ig, ig, ig, "t2_timer_expire", ig, "t2_timer_expire"},
		"T3_RTX":            {ig, "do_6_3_3_rtx", "do_6_3_3_rtx", "do_6_3_3_rtx", "do_6_3_3_rtx", "do_6_3_3_rtx", "do_6_3_3_rtx", ig},
		"T4_RTO":            {ig, ig, ig, "t4_timer_expire", ig, ig, ig, ig},
		"T5_SHUTDOWN_GUARD": {ig, ig, ig, ig, ig, "t5_timer_expire", ig, "t5_timer_expire"},
		"HEARTBEAT":         {ig, ig, ig, "sendbeat_8_3", "sendbeat_8_3", ig, "sendbeat_8_3", ig},
		"RECONF":            {ig, ig, ig, "send_reconf", ig, ig, ig, ig},
		"PROBE":             {ig, ig, ig, "send_probe", ig, ig, ig, ig},
		"SACK":              {ig, ig, ig, "do_6_2_sack", "do_6_2_sack", "do_6_2_sack", ig, ig},
		"AUTOCLOSE":         {ig, ig, ig, "autoclose_timer_expire", ig, ig, ig, ig},
	}
	if diff := cmp.Diff(want, tableNames(CategoryTimeout)); diff != "" {
		t.Fatal(diff)
	}
}

func TestOtherTableSnapshot(t *testing.T) {
	const ig = "ignore_other"
	want := map[string][]string{
		"NO_PENDING_TSN":     {ig, ig, ig, ig, "do_9_2_start_shutdown", ig, "do_9_2_shutdown_ack", ig},
		"ICMP_PROTO_UNREACH": {ig, "cookie_wait_icmp_abort", ig, ig, ig, ig, ig, ig},
	}
	if diff := cmp.Diff(want, tableNames(CategoryOther)); diff != "" {
		t.Fatal(diff)
	}
}

func TestPrimitiveTableSnapshot(t *testing.T) {
	const (
		ec = "error_closed"
		es = "error_shutdown"
		ni = "not_impl"
		ip = "ignore_primitive"
		hb = "do_prm_requestheartbeat"
		ab = "do_9_1_prm_abort"
		sd = "do_prm_send"
	)
	want := map[string][]string{
		"ASSOCIATE":        {"do_prm_asoc", ni, ni, ni, ni, ni, ni, ni},
		"SHUTDOWN":         {ec, "cookie_wait_prm_shutdown", "cookie_echoed_prm_shutdown", "do_9_2_prm_shutdown", ip, ip, ip, ip},
		"ABORT":            {ec, "cookie_wait_prm_abort", "cookie_echoed_prm_abort", ab, ab, "shutdown_sent_prm_abort", ab, "shutdown_ack_sent_prm_abort"},
		"SEND":             {ec, sd, sd, sd, es, es, es, es},
		"REQUESTHEARTBEAT": {ec, ec, ec, hb, hb, hb, hb, hb},
		"ASCONF":           {ec, ec, ec, "do_prm_asconf", es, es, es, es},
		"RECONF":           {ec, ec, ec, "do_prm_reconf", es, es, es, es},
	}
	if diff := cmp.Diff(want, tableNames(CategoryPrimitive)); diff != "" {
		t.Fatal(diff)
	}
}

func TestChunkTableSnapshot(t *testing.T) {
	const (
		oo = "ootb"
		dc = "discard_chunk"
		vi = "violation"
		di = "do_5_2_2_dupinit"
		dk = "do_5_2_4_dupcook"
	)
	want := map[string][]string{
		"DATA":              {oo, dc, dc, "eat_data_6_2", "eat_data_6_2", "eat_data_fast_4_4", dc, dc},
		"INIT":              {"do_5_1B_init", "do_5_2_1_siminit", "do_5_2_1_siminit", di, di, di, di, "do_9_2_reshutack"},
		"INIT_ACK":          {"do_5_2_3_initack", "do_5_1C_ack", dc, dc, dc, dc, dc, dc},
		"SACK":              {oo, dc, "eat_sack_6_2", "eat_sack_6_2", "eat_sack_6_2", "eat_sack_6_2", dc, dc},
		"HEARTBEAT":         {oo, dc, "beat_8_3", "beat_8_3", "beat_8_3", "beat_8_3", "beat_8_3", "beat_8_3"},
		"HEARTBEAT_ACK":     {oo, vi, "backbeat_8_3", "backbeat_8_3", "backbeat_8_3", "backbeat_8_3", "backbeat_8_3", dc},
		"ABORT":             {"pdiscard", "cookie_wait_abort", "cookie_echoed_abort", "do_9_1_abort", "shutdown_pending_abort", "shutdown_sent_abort", "do_9_1_abort", "shutdown_ack_sent_abort"},
		"SHUTDOWN":          {oo, dc, dc, "do_9_2_shutdown", "do_9_2_shutdown", "do_9_2_shutdown_ack", "do_9_2_shut_ctsn", dc},
		"SHUTDOWN_ACK":      {"do_8_5_1_E_sa", "do_8_5_1_E_sa", vi, vi, vi, "do_9_2_final", vi, "do_9_2_final"},
		"ERROR":             {oo, dc, "cookie_echoed_err", "operr_notify", "operr_notify", dc, "operr_notify", dc},
		"COOKIE_ECHO":       {"do_5_1D_ce", dk, dk, dk, dk, dk, dk, dk},
		"COOKIE_ACK":        {oo, dc, "do_5_1E_ca", dc, dc, dc, dc, dc},
		"ECN_ECNE":          {oo, dc, "do_ecne", "do_ecne", "do_ecne", "do_ecne", "do_ecne", dc},
		"ECN_CWR":           {oo, dc, dc, "do_ecn_cwr", "do_ecn_cwr", "do_ecn_cwr", dc, dc},
		"SHUTDOWN_COMPLETE": {oo, dc, dc, dc, dc, dc, dc, "do_4_C"},
		"AUTH":              {oo, dc, "eat_auth", "eat_auth", "eat_auth", "eat_auth", "eat_auth", "eat_auth"},
		"I_DATA":            {oo, dc, dc, "eat_data_6_2", "eat_data_6_2", "eat_data_fast_4_4", dc, dc},
		"ASCONF_ACK":        {oo, dc, dc, "do_asconf_ack", "do_asconf_ack", "do_asconf_ack", "do_asconf_ack", dc},
		"RECONF":            {oo, dc, dc, "do_reconf", dc, dc, dc, dc},
		"PAD":               {dc, dc, dc, dc, dc, dc, dc, dc},
		"FWD_TSN":           {oo, dc, dc, "eat_fwd_tsn", "eat_fwd_tsn", "eat_fwd_tsn_fast", dc, dc},
		"ASCONF":            {oo, dc, dc, "do_asconf", "do_asconf", "do_asconf", "do_asconf", dc},
		"I_FWD_TSN":         {oo, dc, dc, "eat_fwd_tsn", "eat_fwd_tsn", "eat_fwd_tsn_fast", dc, dc},
	}
	if diff := cmp.Diff(want, tableNames(CategoryChunk)); diff != "" {
		t.Fatal(diff)
	}
}

// Table shapes match the declared maxima.
func TestTableShapes(t *testing.T) {
	assert.Len(t, chunkTable.rows, int(ChunkTypeBaseMax)+1)
	assert.Len(t, timeoutTable.rows, int(TimeoutTypeMax)+1)
	assert.Len(t, otherTable.rows, int(OtherTypeMax)+1)
	assert.Len(t, primitiveTable.rows, int(PrimitiveTypeMax)+1)
	assert.NotPanics(t, func() { chunkTable.mustHaveRows(int(ChunkTypeBaseMax) + 1) })
	assert.Panics(t, func() { chunkTable.mustHaveRows(int(ChunkTypeBaseMax)) })
}

func TestUniformRow(t *testing.T) {
	r := uniformRow(HandlerDiscardChunk)
	for _, h := range r {
		assert.Equal(t, HandlerDiscardChunk, h)
	}
}
