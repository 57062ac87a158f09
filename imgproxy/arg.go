package imgproxy

import "strconv"

// Arg is a single positional argument of a processing option. Option
// arguments are positional on the wire, so an unset optional argument still
// occupies its slot (as an empty string) unless every argument after it is
// unset too. Arg makes present/absent explicit instead of abusing pointers
// or interface nils.
//
// The zero value is the absent argument; use None for readability.
type Arg struct {
	set bool
	val string
}

// None is the absent argument.
var None Arg

// String returns a present string argument.
func String(v string) Arg {
	return Arg{set: true, val: v}
}

// Int returns a present integer argument rendered in base 10.
func Int(v int) Arg {
	return Arg{set: true, val: strconv.Itoa(v)}
}

// Float returns a present floating point argument rendered in the shortest
// decimal form that round-trips (0.5 stays 0.5, 2 stays 2), independent of
// locale.
func Float(v float64) Arg {
	return Arg{set: true, val: strconv.FormatFloat(v, 'f', -1, 64)}
}

// Bool returns a present boolean argument rendered as "true" or "false".
func Bool(v bool) Arg {
	return Arg{set: true, val: strconv.FormatBool(v)}
}

// IsSet reports whether the argument is present.
func (a Arg) IsSet() bool {
	return a.set
}
