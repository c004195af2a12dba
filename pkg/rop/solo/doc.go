// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions form the core building blocks for error-aware
// pipelines built from tri-state results.
//
// Highlights:
// - Succeed/PartialSucceed/Fail: construct Result[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map/DoubleMap: transform successful values (with optional error maps)
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/TeePartial/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/partial/error handlers
//
// A partial success flows through like a success. Its mild error is carried
// over to every value derived from it, so a degraded input yields a degraded
// output unless a later step fails.
package solo
