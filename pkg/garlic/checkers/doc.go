// Package checkers provides boolean predicates over arbitrary values.
//
// Highlights:
// - IsEmpty: nil, blank strings, zero-length containers, empty arrays/tensors
// - IsNDArray/IsTensor: capability checks against garlic.NDArray/garlic.Tensor
// - IsFloat/IsInteger/IsString/IsUUID/IsEmail: validators reduced to a bool
// - IsTruthy/IsFalsy/IsBool: fixed vocabulary membership, not Go truthiness
// - IsAttrEmpty/InspectAttr: emptiness of a named field, key or getter
//
// Checkers never return validation failures. The Check* variants return only
// configuration errors (errs.ErrInvalidBounds); the Is* variants panic on them.
// IsAttrEmpty returns errs.ErrInvalidArgument for unusable arguments and logs
// it through the logger set with SetLogger.
package checkers
