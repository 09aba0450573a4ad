// Package typeutil holds the decision procedures that sit on top of the
// type model: equality, assignability, castability, substitution,
// simplification, narrowing, common-type/LUB, and generic inference.
// Every decision returns a Result rather than panicking or using an
// error for control flow.
package typeutil

// Result is the {success, message?} pair every decision procedure in
// this package returns.
type Result struct {
	Success bool
	Message string
}

// Ok is the canonical successful Result.
var Ok = Result{Success: true}

// Fail builds a failing Result carrying a human-readable message.
func Fail(message string) Result {
	return Result{Success: false, Message: message}
}

func (r Result) String() string {
	if r.Success {
		return "ok"
	}
	return "fail: " + r.Message
}
