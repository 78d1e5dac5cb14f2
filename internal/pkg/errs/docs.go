// Package errs defines the shared error taxonomy of the fulfillment engine.
//
// Every error type follows one pattern: a sentinel (e.g. ErrValueIsRequired)
// for errors.Is matching, a struct carrying the parameter name and optional
// cause, constructor functions with and without a cause, and an Unwrap method
// returning the sentinel. Command constructors report missing or malformed
// input with ValueIsRequiredError and ValueIsInvalidError; store adapters map
// missing rows to ObjectNotFoundError, which the HTTP layer turns into 404.
package errs
