package enummeta

import "errors"

// Errors reported when constructing groups and registries. All of them are
// setup-time failures: a registry that fails validation is never returned,
// so lookups cannot observe a partially bound table. Match with errors.Is.
var (
	// ErrEmptyGroup is returned when a group is declared with no variants.
	ErrEmptyGroup = errors.New("group has no variants")

	// ErrDuplicateVariant is returned when a group declares the same variant
	// value more than once.
	ErrDuplicateVariant = errors.New("duplicate variant")

	// ErrIncompleteBinding is returned when a binding table leaves one or
	// more of the group's variants unbound.
	ErrIncompleteBinding = errors.New("binding table is incomplete")

	// ErrDuplicateBinding is returned when a binding table binds the same
	// variant more than once.
	ErrDuplicateBinding = errors.New("duplicate binding")

	// ErrUnknownVariant is returned when a binding table binds a variant
	// that is not a member of the group.
	ErrUnknownVariant = errors.New("variant is not in the group")

	// ErrTypeMismatch is returned when an untyped binding's value is not of
	// the registry's metadata type.
	ErrTypeMismatch = errors.New("binding value has the wrong type")

	// ErrNilCompute is returned when a lazy binding has a nil computation.
	ErrNilCompute = errors.New("lazy binding has a nil computation")
)
