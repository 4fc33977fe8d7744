// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

// chunkTable is the primary table for the base chunk types.
var chunkTable = &table{
	name: "chunk",
	rows: []tableRow{
		ChunkData: row(
			HandlerOOTB,           // CLOSED
			HandlerDiscardChunk,   // COOKIE_WAIT
			HandlerDiscardChunk,   // COOKIE_ECHOED
			HandlerEatData6_2,     // ESTABLISHED
			HandlerEatData6_2,     // SHUTDOWN_PENDING
			HandlerEatDataFast4_4, // SHUTDOWN_SENT
			HandlerDiscardChunk,   // SHUTDOWN_RECEIVED
			HandlerDiscardChunk,   // SHUTDOWN_ACK_SENT
		),
		ChunkInit: row(
			HandlerDo5_1BInit,     // CLOSED
			HandlerDo5_2_1SimInit, // COOKIE_WAIT
			HandlerDo5_2_1SimInit, // COOKIE_ECHOED
			HandlerDo5_2_2DupInit, // ESTABLISHED
			HandlerDo5_2_2DupInit, // SHUTDOWN_PENDING
			HandlerDo5_2_2DupInit, // SHUTDOWN_SENT
			HandlerDo5_2_2DupInit, // SHUTDOWN_RECEIVED
			HandlerDo9_2Reshutack, // SHUTDOWN_ACK_SENT
		),
		ChunkInitAck: row(
			HandlerDo5_2_3InitAck, // CLOSED
			HandlerDo5_1CAck,      // COOKIE_WAIT
			HandlerDiscardChunk,   // COOKIE_ECHOED
			HandlerDiscardChunk,   // ESTABLISHED
			HandlerDiscardChunk,   // SHUTDOWN_PENDING
			HandlerDiscardChunk,   // SHUTDOWN_SENT
			HandlerDiscardChunk,   // SHUTDOWN_RECEIVED
			HandlerDiscardChunk,   // SHUTDOWN_ACK_SENT
		),
		ChunkSack: row(
			HandlerOOTB,         // CLOSED
			HandlerDiscardChunk, // COOKIE_WAIT
			HandlerEatSack6_2,   // COOKIE_ECHOED
			HandlerEatSack6_2,   // ESTABLISHED
			HandlerEatSack6_2,   // SHUTDOWN_PENDING
			HandlerEatSack6_2,   // SHUTDOWN_SENT
			HandlerDiscardChunk, // SHUTDOWN_RECEIVED
			HandlerDiscardChunk, // SHUTDOWN_ACK_SENT
		),
		ChunkHeartbeat: row(
			HandlerOOTB,         // CLOSED
			HandlerDiscardChunk, // COOKIE_WAIT
			HandlerBeat8_3,      // COOKIE_ECHOED
			HandlerBeat8_3,      // ESTABLISHED
			HandlerBeat8_3,      // SHUTDOWN_PENDING
			HandlerBeat8_3,      // SHUTDOWN_SENT
			HandlerBeat8_3,      // SHUTDOWN_RECEIVED
			HandlerBeat8_3,      // SHUTDOWN_ACK_SENT: should not happen but we answer anyway
		),
		ChunkHeartbeatAck: row(
			HandlerOOTB,         // CLOSED
			HandlerViolation,    // COOKIE_WAIT
			HandlerBackbeat8_3,  // COOKIE_ECHOED
			HandlerBackbeat8_3,  // ESTABLISHED
			HandlerBackbeat8_3,  // SHUTDOWN_PENDING
			HandlerBackbeat8_3,  // SHUTDOWN_SENT
			HandlerBackbeat8_3,  // SHUTDOWN_RECEIVED
			HandlerDiscardChunk, // SHUTDOWN_ACK_SENT
		),
		ChunkAbort: row(
			HandlerPDiscard,             // CLOSED
			HandlerCookieWaitAbort,      // COOKIE_WAIT
			HandlerCookieEchoedAbort,    // COOKIE_ECHOED
			HandlerDo9_1Abort,           // ESTABLISHED
			HandlerShutdownPendingAbort, // SHUTDOWN_PENDING
			HandlerShutdownSentAbort,    // SHUTDOWN_SENT
			HandlerDo9_1Abort,           // SHUTDOWN_RECEIVED
			HandlerShutdownAckSentAbort, // SHUTDOWN_ACK_SENT
		),
		ChunkShutdown: row(
			HandlerOOTB,             // CLOSED
			HandlerDiscardChunk,     // COOKIE_WAIT
			HandlerDiscardChunk,     // COOKIE_ECHOED
			HandlerDo9_2Shutdown,    // ESTABLISHED
			HandlerDo9_2Shutdown,    // SHUTDOWN_PENDING
			HandlerDo9_2ShutdownAck, // SHUTDOWN_SENT
			HandlerDo9_2ShutCTSN,    // SHUTDOWN_RECEIVED
			HandlerDiscardChunk,     // SHUTDOWN_ACK_SENT
		),
		ChunkShutdownAck: row(
			HandlerDo8_5_1ESa, // CLOSED
			HandlerDo8_5_1ESa, // COOKIE_WAIT
			HandlerViolation,  // COOKIE_ECHOED
			HandlerViolation,  // ESTABLISHED
			HandlerViolation,  // SHUTDOWN_PENDING
			HandlerDo9_2Final, // SHUTDOWN_SENT
			HandlerViolation,  // SHUTDOWN_RECEIVED
			HandlerDo9_2Final, // SHUTDOWN_ACK_SENT
		),
		ChunkError: row(
			HandlerOOTB,            // CLOSED
			HandlerDiscardChunk,    // COOKIE_WAIT
			HandlerCookieEchoedErr, // COOKIE_ECHOED
			HandlerOperrNotify,     // ESTABLISHED
			HandlerOperrNotify,     // SHUTDOWN_PENDING
			HandlerDiscardChunk,    // SHUTDOWN_SENT
			HandlerOperrNotify,     // SHUTDOWN_RECEIVED
			HandlerDiscardChunk,    // SHUTDOWN_ACK_SENT
		),
		ChunkCookieEcho: row(
			HandlerDo5_1DCe,       // CLOSED
			HandlerDo5_2_4DupCook, // COOKIE_WAIT
			HandlerDo5_2_4DupCook, // COOKIE_ECHOED
			HandlerDo5_2_4DupCook, // ESTABLISHED
			HandlerDo5_2_4DupCook, // SHUTDOWN_PENDING
			HandlerDo5_2_4DupCook, // SHUTDOWN_SENT
			HandlerDo5_2_4DupCook, // SHUTDOWN_RECEIVED
			HandlerDo5_2_4DupCook, // SHUTDOWN_ACK_SENT
		),
		ChunkCookieAck: row(
			HandlerOOTB,         // CLOSED
			HandlerDiscardChunk, // COOKIE_WAIT
			HandlerDo5_1ECa,     // COOKIE_ECHOED
			HandlerDiscardChunk, // ESTABLISHED
			HandlerDiscardChunk, // SHUTDOWN_PENDING
			HandlerDiscardChunk, // SHUTDOWN_SENT
			HandlerDiscardChunk, // SHUTDOWN_RECEIVED
			HandlerDiscardChunk, // SHUTDOWN_ACK_SENT
		),
		ChunkECNE: row(
			HandlerOOTB,         // CLOSED
			HandlerDiscardChunk, // COOKIE_WAIT
			HandlerDoECNE,       // COOKIE_ECHOED
			HandlerDoECNE,       // ESTABLISHED
			HandlerDoECNE,       // SHUTDOWN_PENDING
			HandlerDoECNE,       // SHUTDOWN_SENT
			HandlerDoECNE,       // SHUTDOWN_RECEIVED
			HandlerDiscardChunk, // SHUTDOWN_ACK_SENT
		),
		ChunkCWR: row(
			HandlerOOTB,         // CLOSED
			HandlerDiscardChunk, // COOKIE_WAIT
			HandlerDiscardChunk, // COOKIE_ECHOED
			HandlerDoECNCWR,     // ESTABLISHED
			HandlerDoECNCWR,     // SHUTDOWN_PENDING
			HandlerDoECNCWR,     // SHUTDOWN_SENT
			HandlerDiscardChunk, // SHUTDOWN_RECEIVED
			HandlerDiscardChunk, // SHUTDOWN_ACK_SENT
		),
		ChunkShutdownComplete: row(
			HandlerOOTB,         // CLOSED
			HandlerDiscardChunk, // COOKIE_WAIT
			HandlerDiscardChunk, // COOKIE_ECHOED
			HandlerDiscardChunk, // ESTABLISHED
			HandlerDiscardChunk, // SHUTDOWN_PENDING
			HandlerDiscardChunk, // SHUTDOWN_SENT
			HandlerDiscardChunk, // SHUTDOWN_RECEIVED
			HandlerDo4C,         // SHUTDOWN_ACK_SENT
		),
	},
}

// unknownChunkTable handles chunk types no table recognizes. The
// unk_chunk handler applies the skip/report policy encoded in the two
// upper bits of the chunk type.
var unknownChunkTable = &table{
	name: "unknown",
	rows: []tableRow{
		row(
			HandlerOOTB,         // CLOSED
			HandlerUnknownChunk, // COOKIE_WAIT
			HandlerUnknownChunk, // COOKIE_ECHOED
			HandlerUnknownChunk, // ESTABLISHED
			HandlerUnknownChunk, // SHUTDOWN_PENDING
			HandlerUnknownChunk, // SHUTDOWN_SENT
			HandlerUnknownChunk, // SHUTDOWN_RECEIVED
			HandlerUnknownChunk, // SHUTDOWN_ACK_SENT
		),
	},
}
