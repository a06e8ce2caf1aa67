// Package calc holds three fallible integer operations, one per failure
// handling policy:
// - Divide: the caller checks the returned Result
// - ParseAndDouble: the parser's error is forwarded unchanged
// - ParseAndDoubleKind: parse and domain failures share one *Error type,
//   so callers switch on Kind instead of on error type
//
// Callers that treat a failure as a bug use Result.Unwrap or Result.Expect.
package calc
