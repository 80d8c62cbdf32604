// Package garlic holds the primitives shared by the checkers and validators
// packages: the three-way Result[T] used by attribute inspection, the NDArray
// and Tensor capability interfaces, the fixed truthy/falsy vocabulary and a few
// reflection helpers.
//
// Highlights:
// - Empty/EmptyWith/Present/Invalid: construct Result[T]
// - InTruthy/InFalsy: fixed-membership tests, not general truthiness
// - IsNil/Indirect: nil handling for typed nils and pointer chains
//
// The boolean predicates live in package checkers, the strict coercing
// validators in package validators and the error values in package errs.
package garlic
