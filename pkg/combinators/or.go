// Package combinators defines combinator functions such as Or.
package combinators

// Or returns v if it is not the zero value. Otherwise, it returns the provided
// default.
func Or[T comparable](v, orDefault T) T {
	var zero T
	if v == zero {
		return orDefault
	}
	return v
}
