// Package validate provides a generic, rule-based validation engine: a
// Validator collects an ordered set of predicate rules over a single input
// type and evaluates all of them in one pass, aggregating every failure into
// a ValidationErrors value instead of stopping at the first problem.
//
// The package exists for the cases where a boolean or first-error-only answer
// is not enough. A user submitting a weak password should learn everything
// wrong with it in one round trip, not one complaint at a time.
//
// # Core Concepts
//
// A Rule pairs a pure predicate over the input with the error reported when
// the predicate returns false. Rules are registered on a Validator either
// from bare predicates or from the rule factories shipped with the package:
//
//	v := validate.New[string]().
//		AddRule(func(p string) bool { return len(p) > 8 }, "password length must be greater than 8 chars.").
//		Rules(
//			validate.PasswordDigit("password"),
//			validate.PasswordMixedCase("password"),
//		)
//
//	if err := v.Validate(input); err != nil {
//		for _, msg := range validate.ExtractValidationErrors(err).Messages() {
//			fmt.Println(msg)
//		}
//	}
//
// Validate runs every registered rule in registration order, unconditionally.
// It returns nil when all rules pass, otherwise a ValidationErrors carrying
// one entry per failed rule, in the same order the rules were registered.
//
// # Rule Factories
//
// Each source file groups a family of rule factories for a specific domain
// (`string_rules.go`, `numeric_rules.go`, `password_rules.go`, etc.). Every
// factory returns a Rule value closing over its parameters, never over the
// input; the input is supplied at Validate time. Factories hold no global
// state, so rules are reusable across validators and goroutines.
//
// Rules written for a field type can be registered on a validator of the
// containing type with On:
//
//	type SignupForm struct {
//		Email    string
//		Password string
//	}
//
//	v := validate.New[SignupForm]().Rules(
//		validate.On(func(f SignupForm) string { return f.Email }, validate.ValidEmail("email")),
//		validate.On(func(f SignupForm) string { return f.Password }, validate.MinLen("password", 8)),
//	)
//
// # Error Handling
//
// Rule failures are data, not raised faults: Validate itself never fails, and
// ValidationErrors implements the error interface, so `errors.As` (or the
// IsValidationError / ExtractValidationErrors helpers) distinguishes
// validation failures from other errors. A panic inside a caller-supplied
// predicate is not recovered; it propagates to the Validate caller unchanged.
//
// # Concurrency
//
// A Validator is append-only and has no other state. Registration and
// validation are not synchronized against each other: finish registering
// before sharing an instance across goroutines, or add external locking.
// Concurrent Validate calls on a fully-built validator are safe.
package validate
