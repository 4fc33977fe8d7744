// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

import "fmt"

// Handler identifies the state function that must run for an event.
//
// A Handler is an opaque descriptor: this package only selects it. Bind it
// to a [Func] through an [*Interpreter] (or any equivalent mechanism) to
// actually run something. Use [Handler.Name] for logging and tracing.
//
// The zero value is [Defect].
type Handler uint8

// Defect is the handler for combinations that must never happen. It is
// returned both for cells the protocol forbids and for malformed lookups.
const Defect Handler = 0

// State functions referenced by the dispatch tables. The numeric suffixes
// refer to the RFC 9260 section describing the behavior.
const (
	HandlerBug = Defect

	// Generic chunk handling.
	HandlerOOTB Handler = iota
	HandlerDiscardChunk
	HandlerPDiscard
	HandlerViolation
	HandlerUnknownChunk

	// Chunk handling.
	HandlerEatData6_2
	HandlerEatDataFast4_4
	HandlerDo5_1BInit
	HandlerDo5_2_1SimInit
	HandlerDo5_2_2DupInit
	HandlerDo9_2Reshutack
	HandlerDo5_2_3InitAck
	HandlerDo5_1CAck
	HandlerEatSack6_2
	HandlerBeat8_3
	HandlerBackbeat8_3
	HandlerCookieWaitAbort
	HandlerCookieEchoedAbort
	HandlerDo9_1Abort
	HandlerShutdownPendingAbort
	HandlerShutdownSentAbort
	HandlerShutdownAckSentAbort
	HandlerDo9_2Shutdown
	HandlerDo9_2ShutdownAck
	HandlerDo9_2ShutCTSN
	HandlerDo8_5_1ESa
	HandlerDo9_2Final
	HandlerCookieEchoedErr
	HandlerOperrNotify
	HandlerDo5_1DCe
	HandlerDo5_2_4DupCook
	HandlerDo5_1ECa
	HandlerDoECNE
	HandlerDoECNCWR
	HandlerDo4C
	HandlerDoAsconf
	HandlerDoAsconfAck
	HandlerEatFwdTSN
	HandlerEatFwdTSNFast
	HandlerDoReconf
	HandlerEatAuth

	// Timer handling.
	HandlerTimerIgnore
	HandlerT1CookieTimerExpire
	HandlerT1InitTimerExpire
	HandlerT2TimerExpire
	HandlerDo6_3_3RTX
	HandlerT4TimerExpire
	HandlerT5TimerExpire
	HandlerSendBeat8_3
	HandlerSendReconf
	HandlerSendProbe
	HandlerDo6_2Sack
	HandlerAutocloseTimerExpire

	// Internal notifications.
	HandlerIgnoreOther
	HandlerDo9_2StartShutdown
	HandlerCookieWaitICMPAbort

	// User primitives.
	HandlerDoPrmAsoc
	HandlerNotImpl
	HandlerErrorClosed
	HandlerErrorShutdown
	HandlerIgnorePrimitive
	HandlerCookieWaitPrmShutdown
	HandlerCookieEchoedPrmShutdown
	HandlerDo9_2PrmShutdown
	HandlerCookieWaitPrmAbort
	HandlerCookieEchoedPrmAbort
	HandlerDo9_1PrmAbort
	HandlerShutdownSentPrmAbort
	HandlerShutdownAckSentPrmAbort
	HandlerDoPrmSend
	HandlerDoPrmRequestHeartbeat
	HandlerDoPrmAsconf
	HandlerDoPrmReconf

	handlerCount
)

var handlerNames = [handlerCount]string{
	HandlerBug:          "bug",
	HandlerOOTB:         "ootb",
	HandlerDiscardChunk: "discard_chunk",
	HandlerPDiscard:     "pdiscard",
	HandlerViolation:    "violation",
	HandlerUnknownChunk: "unk_chunk",

	HandlerEatData6_2:           "eat_data_6_2",
	HandlerEatDataFast4_4:       "eat_data_fast_4_4",
	HandlerDo5_1BInit:           "do_5_1B_init",
	HandlerDo5_2_1SimInit:       "do_5_2_1_siminit",
	HandlerDo5_2_2DupInit:       "do_5_2_2_dupinit",
	HandlerDo9_2Reshutack:       "do_9_2_reshutack",
	HandlerDo5_2_3InitAck:       "do_5_2_3_initack",
	HandlerDo5_1CAck:            "do_5_1C_ack",
	HandlerEatSack6_2:           "eat_sack_6_2",
	HandlerBeat8_3:              "beat_8_3",
	HandlerBackbeat8_3:          "backbeat_8_3",
	HandlerCookieWaitAbort:      "cookie_wait_abort",
	HandlerCookieEchoedAbort:    "cookie_echoed_abort",
	HandlerDo9_1Abort:           "do_9_1_abort",
	HandlerShutdownPendingAbort: "shutdown_pending_abort",
	HandlerShutdownSentAbort:    "shutdown_sent_abort",
	HandlerShutdownAckSentAbort: "shutdown_ack_sent_abort",
	HandlerDo9_2Shutdown:        "do_9_2_shutdown",
	HandlerDo9_2ShutdownAck:     "do_9_2_shutdown_ack",
	HandlerDo9_2ShutCTSN:        "do_9_2_shut_ctsn",
	HandlerDo8_5_1ESa:           "do_8_5_1_E_sa",
	HandlerDo9_2Final:           "do_9_2_final",
	HandlerCookieEchoedErr:      "cookie_echoed_err",
	HandlerOperrNotify:          "operr_notify",
	HandlerDo5_1DCe:             "do_5_1D_ce",
	HandlerDo5_2_4DupCook:       "do_5_2_4_dupcook",
	HandlerDo5_1ECa:             "do_5_1E_ca",
	HandlerDoECNE:               "do_ecne",
	HandlerDoECNCWR:             "do_ecn_cwr",
	HandlerDo4C:                 "do_4_C",
	HandlerDoAsconf:             "do_asconf",
	HandlerDoAsconfAck:          "do_asconf_ack",
	HandlerEatFwdTSN:            "eat_fwd_tsn",
	HandlerEatFwdTSNFast:        "eat_fwd_tsn_fast",
	HandlerDoReconf:             "do_reconf",
	HandlerEatAuth:              "eat_auth",

	HandlerTimerIgnore:          "timer_ignore",
	HandlerT1CookieTimerExpire:  "t1_cookie_timer_expire",
	HandlerT1InitTimerExpire:    "t1_init_timer_expire",
	HandlerT2TimerExpire:        "t2_timer_expire",
	HandlerDo6_3_3RTX:           "do_6_3_3_rtx",
	HandlerT4TimerExpire:        "t4_timer_expire",
	HandlerT5TimerExpire:        "t5_timer_expire",
	HandlerSendBeat8_3:          "sendbeat_8_3",
	HandlerSendReconf:           "send_reconf",
	HandlerSendProbe:            "send_probe",
	HandlerDo6_2Sack:            "do_6_2_sack",
	HandlerAutocloseTimerExpire: "autoclose_timer_expire",

	HandlerIgnoreOther:         "ignore_other",
	HandlerDo9_2StartShutdown:  "do_9_2_start_shutdown",
	HandlerCookieWaitICMPAbort: "cookie_wait_icmp_abort",

	HandlerDoPrmAsoc:               "do_prm_asoc",
	HandlerNotImpl:                 "not_impl",
	HandlerErrorClosed:             "error_closed",
	HandlerErrorShutdown:           "error_shutdown",
	HandlerIgnorePrimitive:         "ignore_primitive",
	HandlerCookieWaitPrmShutdown:   "cookie_wait_prm_shutdown",
	HandlerCookieEchoedPrmShutdown: "cookie_echoed_prm_shutdown",
	HandlerDo9_2PrmShutdown:        "do_9_2_prm_shutdown",
	HandlerCookieWaitPrmAbort:      "cookie_wait_prm_abort",
	HandlerCookieEchoedPrmAbort:    "cookie_echoed_prm_abort",
	HandlerDo9_1PrmAbort:           "do_9_1_prm_abort",
	HandlerShutdownSentPrmAbort:    "shutdown_sent_prm_abort",
	HandlerShutdownAckSentPrmAbort: "shutdown_ack_sent_prm_abort",
	HandlerDoPrmSend:               "do_prm_send",
	HandlerDoPrmRequestHeartbeat:   "do_prm_requestheartbeat",
	HandlerDoPrmAsconf:             "do_prm_asconf",
	HandlerDoPrmReconf:             "do_prm_reconf",
}

// Name returns the stable name of the handler.
func (h Handler) Name() string {
	if int(h) < len(handlerNames) {
		return handlerNames[h]
	}
	return fmt.Sprintf("Handler(%d)", uint8(h))
}

// String implements [fmt.Stringer].
func (h Handler) String() string {
	return h.Name()
}

// IsDefect returns whether h is the [Defect] sentinel.
func (h Handler) IsDefect() bool {
	return h == Defect
}

// Handlers returns every handler, including [Defect], in numeric order.
func Handlers() []Handler {
	out := make([]Handler, 0, handlerCount)
	for h := Defect; h < handlerCount; h++ {
		out = append(out, h)
	}
	return out
}
