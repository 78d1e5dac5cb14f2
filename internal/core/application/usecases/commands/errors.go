package commands

import "errors"

// ErrActionOutOfDate is returned when a requested transition is not producible
// from the order's current snapshot, typically a stale UI whose button
// outlived a status change made on another device. The request is rejected
// locally and never sent to the order store; callers refresh and re-resolve
// instead of retrying.
var ErrActionOutOfDate = errors.New("action is out of date with the current order state")
