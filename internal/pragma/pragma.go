// Package pragma provides types that can be embedded to change the behavior
// of other types.
package pragma

// DoNotImplement can be embedded in an exported interface to prevent types
// outside this module from implementing it. Structs inside this module embed
// an interface value of this type to satisfy it; the method is never called.
// All identifiers starting with XXX are not covered by any compatibility
// promise and should not be used.
type DoNotImplement interface{ XXXInternal(DoNotImplement) }
