package errors

// Game-rule rejection helpers. These carry the shortfall in Meta so a UI
// can render amounts without parsing the message.

// Metadata keys used by the game-rule constructors
const (
	MetaResource = "resource"
	MetaNeed     = "need"
	MetaHave     = "have"
)

// Insufficient creates a resource exhausted error for a whole-number
// resource (karma, nuyen, build points, edge). The message is user-facing:
// "Not enough karma (need 13, have 4)".
func Insufficient(resource string, need, have int) *Error {
	return ResourceExhaustedf("Not enough %s (need %d, have %d)", resource, need, have).
		WithMeta(MetaResource, resource).
		WithMeta(MetaNeed, need).
		WithMeta(MetaHave, have)
}

// InsufficientEssence creates a resource exhausted error for essence,
// formatted to one decimal place.
func InsufficientEssence(need, have float64) *Error {
	return ResourceExhaustedf("Not enough essence (need %.1f, have %.1f)", need, have).
		WithMeta(MetaResource, "essence").
		WithMeta(MetaNeed, need).
		WithMeta(MetaHave, have)
}

// InsufficientPowerPoints creates a resource exhausted error for adept
// power points, which move in fractional steps.
func InsufficientPowerPoints(need, have float64) *Error {
	return ResourceExhaustedf("Not enough power points (need %g, have %g)", need, have).
		WithMeta(MetaResource, "power points").
		WithMeta(MetaNeed, need).
		WithMeta(MetaHave, have)
}

// CareerOnly creates the failure returned when a career-mode operation is
// attempted during character creation.
func CareerOnly(operation string) *Error {
	return FailedPreconditionf("%s requires career mode", operation)
}

// CreationOnly creates the failure returned when a creation-mode operation
// is attempted after the character has entered their career.
func CreationOnly(operation string) *Error {
	return FailedPreconditionf("%s is only available during character creation", operation)
}

// Duplicate creates the failure returned when a uniquely-named entry is
// added a second time.
func Duplicate(kind, name string) *Error {
	return AlreadyExistsf("%s %q is already present", kind, name)
}

// AtLimit creates the failure returned when a rating or slot count is
// already at its maximum.
func AtLimit(what string, limit int) *Error {
	return OutOfRangef("%s is already at its maximum of %d", what, limit)
}
