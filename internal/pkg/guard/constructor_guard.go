// Package guard provides the constructor-guard pattern used by commands, queries,
// and value objects throughout the application. Embedding a ConstructorGuard in a
// struct makes zero-value instances detectable, so objects that bypassed their
// constructor fail validation instead of carrying unchecked state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error. Validation always fails with a meaningful message
// even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as having been created through its designated
// constructor. The zero value reports not-constructed, which is what makes the
// pattern work: any struct literal that skips the constructor fails Validate.
//
// Example:
//
//	var ErrQueryIsNotConstructed = errors.New("query must be created via its constructor")
//
//	type BoardQuery struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewBoardQuery() BoardQuery {
//	    return BoardQuery{guard: guard.NewConstructorGuard()}
//	}
//
//	func (q BoardQuery) Validate() error {
//	    return q.guard.Validate(ErrQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
// Call it inside the object's constructor and store the result in the guarded struct.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object was created through its constructor.
// Returns nil when properly constructed; otherwise returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
