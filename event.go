// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

import (
	"fmt"
	"strconv"
	"strings"
)

// EventCategory is the kind of event fed to the state machine.
type EventCategory uint8

const (
	// CategoryChunk means a chunk arrived from the peer.
	CategoryChunk EventCategory = iota

	// CategoryTimeout means a timer fired.
	CategoryTimeout

	// CategoryOther is for miscellaneous internal notifications.
	CategoryOther

	// CategoryPrimitive means the local user requested an action.
	CategoryPrimitive
)

const categoryCount = int(CategoryPrimitive) + 1

var categoryNames = [categoryCount]string{
	CategoryChunk:     "chunk",
	CategoryTimeout:   "timeout",
	CategoryOther:     "other",
	CategoryPrimitive: "primitive",
}

// Valid returns whether c is one of the four known categories.
func (c EventCategory) Valid() bool {
	return int(c) < categoryCount
}

// String implements [fmt.Stringer].
func (c EventCategory) String() string {
	if !c.Valid() {
		return fmt.Sprintf("EventCategory(%d)", uint8(c))
	}
	return categoryNames[c]
}

// Categories returns all the event categories.
func Categories() []EventCategory {
	return []EventCategory{CategoryChunk, CategoryTimeout, CategoryOther, CategoryPrimitive}
}

// ParseCategory parses the name returned by [EventCategory.String].
func ParseCategory(name string) (EventCategory, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for idx, candidate := range categoryNames {
		if candidate == name {
			return EventCategory(idx), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown category %q", ErrInvalidCategory, name)
}

// ChunkType is the on-the-wire chunk type code.
//
// The wire field is eight bits wide; we use a wider type so that callers
// may pass codes taken from a larger numbering space without truncation.
type ChunkType uint16

// Base chunk types. These index the primary chunk table directly.
const (
	ChunkData             ChunkType = 0
	ChunkInit             ChunkType = 1
	ChunkInitAck          ChunkType = 2
	ChunkSack             ChunkType = 3
	ChunkHeartbeat        ChunkType = 4
	ChunkHeartbeatAck     ChunkType = 5
	ChunkAbort            ChunkType = 6
	ChunkShutdown         ChunkType = 7
	ChunkShutdownAck      ChunkType = 8
	ChunkError            ChunkType = 9
	ChunkCookieEcho       ChunkType = 10
	ChunkCookieAck        ChunkType = 11
	ChunkECNE             ChunkType = 12
	ChunkCWR              ChunkType = 13
	ChunkShutdownComplete ChunkType = 14
)

// ChunkTypeBaseMax is the highest chunk type in the primary table.
const ChunkTypeBaseMax = ChunkShutdownComplete

// Extension chunk types, resolved through the secondary tables.
const (
	ChunkAuth        ChunkType = 0x0f // RFC 4895
	ChunkIData       ChunkType = 0x40 // RFC 8260, aliased to DATA
	ChunkAsconfAck   ChunkType = 0x80 // RFC 5061
	ChunkReconf      ChunkType = 0x82 // RFC 6525
	ChunkPad         ChunkType = 0x84 // RFC 4820
	ChunkForwardTSN  ChunkType = 0xc0 // RFC 3758
	ChunkAsconf      ChunkType = 0xc1 // RFC 5061
	ChunkIForwardTSN ChunkType = 0xc2 // RFC 8260
)

var chunkNames = map[ChunkType]string{
	ChunkData:             "DATA",
	ChunkInit:             "INIT",
	ChunkInitAck:          "INIT_ACK",
	ChunkSack:             "SACK",
	ChunkHeartbeat:        "HEARTBEAT",
	ChunkHeartbeatAck:     "HEARTBEAT_ACK",
	ChunkAbort:            "ABORT",
	ChunkShutdown:         "SHUTDOWN",
	ChunkShutdownAck:      "SHUTDOWN_ACK",
	ChunkError:            "ERROR",
	ChunkCookieEcho:       "COOKIE_ECHO",
	ChunkCookieAck:        "COOKIE_ACK",
	ChunkECNE:             "ECN_ECNE",
	ChunkCWR:              "ECN_CWR",
	ChunkShutdownComplete: "SHUTDOWN_COMPLETE",
	ChunkAuth:             "AUTH",
	ChunkIData:            "I_DATA",
	ChunkAsconfAck:        "ASCONF_ACK",
	ChunkReconf:           "RECONF",
	ChunkPad:              "PAD",
	ChunkForwardTSN:       "FWD_TSN",
	ChunkAsconf:           "ASCONF",
	ChunkIForwardTSN:      "I_FWD_TSN",
}

// String implements [fmt.Stringer].
func (ct ChunkType) String() string {
	if name, ok := chunkNames[ct]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(0x%02x)", uint16(ct))
}

// KnownChunkTypes returns the base and extension chunk types sorted by code.
func KnownChunkTypes() []ChunkType {
	out := make([]ChunkType, 0, len(chunkNames))
	for ct := ChunkData; ct <= ChunkTypeBaseMax; ct++ {
		out = append(out, ct)
	}
	return append(out,
		ChunkAuth, ChunkIData, ChunkAsconfAck, ChunkReconf,
		ChunkPad, ChunkForwardTSN, ChunkAsconf, ChunkIForwardTSN,
	)
}

// TimeoutType identifies which timer fired.
type TimeoutType uint8

const (
	TimeoutNone TimeoutType = iota
	TimeoutT1Cookie
	TimeoutT1Init
	TimeoutT2Shutdown
	TimeoutT3RTX
	TimeoutT4RTO
	TimeoutT5ShutdownGuard
	TimeoutHeartbeat
	TimeoutReconf
	TimeoutProbe
	TimeoutSack
	TimeoutAutoclose
)

// TimeoutTypeMax is the highest legal [TimeoutType].
const TimeoutTypeMax = TimeoutAutoclose

var timeoutNames = [...]string{
	TimeoutNone:            "NONE",
	TimeoutT1Cookie:        "T1_COOKIE",
	TimeoutT1Init:          "T1_INIT",
	TimeoutT2Shutdown:      "T2_SHUTDOWN",
	TimeoutT3RTX:           "T3_RTX",
	TimeoutT4RTO:           "T4_RTO",
	TimeoutT5ShutdownGuard: "T5_SHUTDOWN_GUARD",
	TimeoutHeartbeat:       "HEARTBEAT",
	TimeoutReconf:          "RECONF",
	TimeoutProbe:           "PROBE",
	TimeoutSack:            "SACK",
	TimeoutAutoclose:       "AUTOCLOSE",
}

// String implements [fmt.Stringer].
func (tt TimeoutType) String() string {
	return enumName(timeoutNames[:], uint32(tt), "TimeoutType")
}

// OtherType identifies a miscellaneous internal notification.
type OtherType uint8

const (
	// OtherNoPendingTSN means all outstanding data has been acknowledged.
	OtherNoPendingTSN OtherType = iota

	// OtherICMPProtoUnreach means an ICMP protocol unreachable arrived.
	OtherICMPProtoUnreach
)

// OtherTypeMax is the highest legal [OtherType].
const OtherTypeMax = OtherICMPProtoUnreach

var otherNames = [...]string{
	OtherNoPendingTSN:     "NO_PENDING_TSN",
	OtherICMPProtoUnreach: "ICMP_PROTO_UNREACH",
}

// String implements [fmt.Stringer].
func (ot OtherType) String() string {
	return enumName(otherNames[:], uint32(ot), "OtherType")
}

// PrimitiveType identifies a request issued by the local user.
type PrimitiveType uint8

const (
	PrimitiveAssociate PrimitiveType = iota
	PrimitiveShutdown
	PrimitiveAbort
	PrimitiveSend
	PrimitiveRequestHeartbeat
	PrimitiveAsconf
	PrimitiveReconf
)

// PrimitiveTypeMax is the highest legal [PrimitiveType].
const PrimitiveTypeMax = PrimitiveReconf

var primitiveNames = [...]string{
	PrimitiveAssociate:        "ASSOCIATE",
	PrimitiveShutdown:         "SHUTDOWN",
	PrimitiveAbort:            "ABORT",
	PrimitiveSend:             "SEND",
	PrimitiveRequestHeartbeat: "REQUESTHEARTBEAT",
	PrimitiveAsconf:           "ASCONF",
	PrimitiveReconf:           "RECONF",
}

// String implements [fmt.Stringer].
func (pt PrimitiveType) String() string {
	return enumName(primitiveNames[:], uint32(pt), "PrimitiveType")
}

func enumName(names []string, value uint32, typeName string) string {
	if value < uint32(len(names)) {
		return names[value]
	}
	return fmt.Sprintf("%s(%d)", typeName, value)
}

// MaxSubtype returns the highest legal subtype for the given category.
//
// The chunk category has no maximum because any code is resolved, possibly
// to the unknown chunk row, so the second return value is false for it and
// for invalid categories.
func MaxSubtype(category EventCategory) (uint32, bool) {
	switch category {
	case CategoryTimeout:
		return uint32(TimeoutTypeMax), true
	case CategoryOther:
		return uint32(OtherTypeMax), true
	case CategoryPrimitive:
		return uint32(PrimitiveTypeMax), true
	default:
		return 0, false
	}
}

// SubtypeName returns the human readable name of a category-relative subtype.
func SubtypeName(category EventCategory, subtype uint32) string {
	switch category {
	case CategoryChunk:
		if subtype > 0xffff {
			return fmt.Sprintf("UNKNOWN(0x%x)", subtype)
		}
		return ChunkType(subtype).String()
	case CategoryTimeout:
		return enumName(timeoutNames[:], subtype, "TimeoutType")
	case CategoryOther:
		return enumName(otherNames[:], subtype, "OtherType")
	case CategoryPrimitive:
		return enumName(primitiveNames[:], subtype, "PrimitiveType")
	default:
		return strconv.FormatUint(uint64(subtype), 10)
	}
}

// ParseSubtype parses a subtype given either as a name returned by
// [SubtypeName] or as a decimal or 0x-prefixed number.
//
// Numbers are not range checked, so that malformed lookups can be tried.
func ParseSubtype(category EventCategory, value string) (uint32, error) {
	value = strings.TrimSpace(value)
	if num, err := strconv.ParseUint(value, 0, 32); err == nil {
		return uint32(num), nil
	}
	var names []string
	switch category {
	case CategoryChunk:
		upper := strings.ToUpper(value)
		for _, ct := range KnownChunkTypes() {
			if ct.String() == upper {
				return uint32(ct), nil
			}
		}
		return 0, fmt.Errorf("%w: unknown chunk type %q", ErrSubtypeRange, value)
	case CategoryTimeout:
		names = timeoutNames[:]
	case CategoryOther:
		names = otherNames[:]
	case CategoryPrimitive:
		names = primitiveNames[:]
	default:
		return 0, ErrInvalidCategory
	}
	upper := strings.ToUpper(value)
	for idx, name := range names {
		if name == upper {
			return uint32(idx), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown %s subtype %q", ErrSubtypeRange, category, value)
}

// Event is a classified occurrence for an association in a given state.
type Event struct {
	// Category is the event category.
	Category EventCategory

	// Subtype is the category-relative subtype.
	Subtype uint32

	// State is the association state when the event occurred.
	State State
}

// NewChunkEvent returns the [Event] for an arriving chunk.
func NewChunkEvent(ct ChunkType, state State) Event {
	return Event{Category: CategoryChunk, Subtype: uint32(ct), State: state}
}

// NewTimeoutEvent returns the [Event] for a fired timer.
func NewTimeoutEvent(tt TimeoutType, state State) Event {
	return Event{Category: CategoryTimeout, Subtype: uint32(tt), State: state}
}

// NewOtherEvent returns the [Event] for an internal notification.
func NewOtherEvent(ot OtherType, state State) Event {
	return Event{Category: CategoryOther, Subtype: uint32(ot), State: state}
}

// NewPrimitiveEvent returns the [Event] for a user request.
func NewPrimitiveEvent(pt PrimitiveType, state State) Event {
	return Event{Category: CategoryPrimitive, Subtype: uint32(pt), State: state}
}

// String implements [fmt.Stringer].
func (ev Event) String() string {
	return fmt.Sprintf("%s/%s@%s", ev.Category, SubtypeName(ev.Category, ev.Subtype), ev.State)
}
