// SPDX-License-Identifier: GPL-3.0-or-later

// Package sctpsm implements the event dispatch core of the SCTP state machine.
//
// # Core Abstraction
//
// Every event the SCTP state machine processes is classified as a triple:
//
//	(EventCategory, subtype, State)
//
// where the category is one of [CategoryChunk], [CategoryTimeout],
// [CategoryOther] and [CategoryPrimitive], the subtype is category-relative
// (a [ChunkType], [TimeoutType], [OtherType] or [PrimitiveType]), and the
// [State] is the current association state. [Lookup] maps the triple to
// exactly one [Handler] naming the state function that must run.
//
// # Dispatch Tables
//
// The mapping is a set of immutable (subtype x state) tables built at
// package initialization and never modified, so lookups need no locking:
//
//   - one primary table per category;
//   - one secondary table per protocol extension (PR-SCTP, ADD-IP,
//     RE-CONFIG, AUTH, PAD) whose chunk types do not fit after the base
//     chunk types;
//   - one row for chunk types that no table recognizes.
//
// I-DATA chunks are dispatched like DATA chunks (see [NormalizeChunkType]).
//
// # Safety
//
// Lookups are total: they never panic and always return a [Handler]. The
// [Defect] handler marks combinations that must never happen. Requests
// with a subtype above [MaxSubtype], an invalid [State] or an invalid
// category also produce [Defect]. Use [Resolve] to tell the two cases
// apart: it returns a [*Fault] for malformed requests. The [*Dispatcher]
// additionally logs a dispatchFault warning for them, because subtypes
// for non-chunk categories come from trusted code and an out of range
// value indicates a bug or corrupted input.
//
// # Running Handlers
//
// This package only selects handlers. An [*Interpreter] binds handlers to
// [Func] implementations, runs the selected one and returns the next
// [State]; callers remain responsible for storing association state.
// [ClassifyNetError] turns socket errors into events.
//
// # Observability
//
// Logging uses [SLogger] (compatible with [log/slog]) and is disabled by
// default. Errors are classified through [ErrClassifier]. Use [NewSpanID]
// to correlate the log entries for a single event.
package sctpsm
