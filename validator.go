package validate

// Numeric constrains the numeric rule factories to the built-in number types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule pairs a predicate over the input with the error reported when the
// predicate returns false. Check must be pure and deterministic; it receives
// the input value at Validate or Apply time.
type Rule[T any] struct {
	Check func(T) bool
	Error ValidationError
}

// NewRule builds a rule from a bare predicate and a failure message.
func NewRule[T any](check func(T) bool, message string) Rule[T] {
	return Rule[T]{
		Check: check,
		Error: ValidationError{Message: message},
	}
}

// On lifts a rule over a projection, so rules written for a field type can be
// registered on a validator of the containing type.
func On[T, F any](get func(T) F, rule Rule[F]) Rule[T] {
	return Rule[T]{
		Check: func(value T) bool {
			return rule.Check(get(value))
		},
		Error: rule.Error,
	}
}

// Validator holds an ordered, append-only list of rules over T. Registration
// and validation are not synchronized against each other; finish registering
// before sharing an instance across goroutines, or lock externally.
type Validator[T any] struct {
	rules []Rule[T]
}

// New returns an empty validator for T. With no rules registered, Validate
// succeeds for any input.
func New[T any]() *Validator[T] {
	return &Validator[T]{}
}

// AddRule appends a rule built from a predicate and a failure message and
// returns the validator for chaining. It cannot fail.
func (v *Validator[T]) AddRule(check func(T) bool, message string) *Validator[T] {
	v.rules = append(v.rules, NewRule(check, message))
	return v
}

// Rules appends prebuilt rules in the given order and returns the validator
// for chaining.
func (v *Validator[T]) Rules(rules ...Rule[T]) *Validator[T] {
	v.rules = append(v.rules, rules...)
	return v
}

// Validate evaluates every registered rule against value, in registration
// order, without short-circuiting on failure. It returns nil when all rules
// pass, otherwise ValidationErrors holding one entry per failed rule in the
// same relative order. Validate itself never fails and has no side effects;
// a panic inside a caller-supplied predicate is not recovered.
func (v *Validator[T]) Validate(value T) error {
	return Apply(value, v.rules...)
}

// Apply is the stateless form of Validate: it executes the given rules
// against value and aggregates every failure instead of stopping at the
// first one.
func Apply[T any](value T, rules ...Rule[T]) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check(value) {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}
