// Package rop defines tri-state result values and the escalation helpers that
// move a carried error between result-style and panic-style control flow.
//
// Highlights:
// - Ok/PartialOk/Failure: construct a signal-only Outcome
// - Success/PartialSuccess/Fail: construct a payload-carrying Result[T]
// - FromPayload/FromError/FromErr/From/OutcomeOf: conversion helpers for producers
// - Succeeded/SucceededPartially/Message/GetOk/GetError: query a result
// - Check/Escalate: raise the carried error of an unsuccessful result, recording
//   the caller's frame in the error's history
// - Catch/CatchResult: turn a raised error back into a result at a boundary
// - History: read the recorded frames of an escalated error
//
// A partial success is a success: Succeeded reports true and the payload is
// usable, while the attached mild error explains the degradation.
//
// Every escalation appends one frame to the carried error, so an error that is
// raised, caught, re-wrapped into a result and raised again keeps the whole path
// from the capture site to the last raise:
//
//	func loadAll() (out rop.Outcome) {
//		defer rop.Catch(&out)
//		load().Check()
//		return rop.Ok()
//	}
//
// A single error instance must not be escalated from two goroutines at once.
package rop
