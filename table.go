// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

import "github.com/bassosimone/runtimex"

// tableRow maps each [State] to a [Handler] for a single subtype.
type tableRow = [StateCount]Handler

// table is an immutable (subtype x state) dispatch grid.
//
// Tables are package-level values built at init and never written again,
// so concurrent lookups need no locking.
type table struct {
	// name identifies the table in diagnostics.
	name string

	// rows is indexed by subtype.
	rows []tableRow
}

// row builds a [tableRow] listing the handler for every state in order.
//
// Taking one argument per state makes the compiler reject short rows.
func row(
	closed, cookieWait, cookieEchoed, established,
	shutdownPending, shutdownSent, shutdownReceived, shutdownAckSent Handler,
) tableRow {
	return tableRow{
		StateClosed:           closed,
		StateCookieWait:       cookieWait,
		StateCookieEchoed:     cookieEchoed,
		StateEstablished:      established,
		StateShutdownPending:  shutdownPending,
		StateShutdownSent:     shutdownSent,
		StateShutdownReceived: shutdownReceived,
		StateShutdownAckSent:  shutdownAckSent,
	}
}

// uniformRow returns a row where every state maps to h.
func uniformRow(h Handler) tableRow {
	var out tableRow
	for idx := range out {
		out[idx] = h
	}
	return out
}

// mustHaveRows panics unless t has exactly the expected number of rows.
func (t *table) mustHaveRows(expected int) {
	runtimex.Assert(len(t.rows) == expected)
	for _, r := range t.rows {
		for _, h := range r {
			runtimex.Assert(int(h) < int(handlerCount))
		}
	}
}

func init() {
	chunkTable.mustHaveRows(int(ChunkTypeBaseMax) + 1)
	timeoutTable.mustHaveRows(int(TimeoutTypeMax) + 1)
	otherTable.mustHaveRows(int(OtherTypeMax) + 1)
	primitiveTable.mustHaveRows(int(PrimitiveTypeMax) + 1)
	prsctpTable.mustHaveRows(1)
	addipTable.mustHaveRows(2)
	reconfTable.mustHaveRows(1)
	authTable.mustHaveRows(1)
	padTable.mustHaveRows(1)
	unknownChunkTable.mustHaveRows(1)
}
