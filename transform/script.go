package transform

import "fmt"

// scriptError is returned by Script for a name not in the registry.
type scriptError struct{ name string }

func (e *scriptError) Error() string { return fmt.Sprintf("transform: unknown script %q", e.name) }

// scripts maps a named composition to the constructors that build its
// pass sequence, evaluated fresh on every Script call so each Pass gets
// its own private state (AreaSubnetIterator snapshots, in particular).
var scripts = map[string][]func() Pass{
	"resyn": {
		Balance,
		func() Pass { return Rewrite(4, false) },
		func() Pass { return Rewrite(4, true) },
		Balance,
		func() Pass { return Rewrite(4, true) },
		Balance,
	},
	"resyn2": {
		Balance,
		func() Pass { return Rewrite(4, false) },
		func() Pass { return Refactor(RefactorDefault) },
		Balance,
		func() Pass { return Rewrite(4, false) },
		func() Pass { return Rewrite(4, true) },
		Balance,
		func() Pass { return Refactor(RefactorZero) },
		Balance,
	},
	"resyn2a": {
		Balance,
		func() Pass { return Rewrite(4, false) },
		Balance,
		func() Pass { return Rewrite(4, false) },
		func() Pass { return Rewrite(4, true) },
		Balance,
		func() Pass { return Rewrite(4, true) },
		Balance,
	},
	"resyn3": {
		Balance,
		func() Pass { return Resubstitute(DefaultCutSize, DefaultMaxLevels, DefaultMaxDivisors, false) },
		func() Pass { return Resubstitute(6, DefaultMaxLevels, DefaultMaxDivisors, false) },
		Balance,
		func() Pass { return Resubstitute(DefaultCutSize, DefaultMaxLevels, DefaultMaxDivisors, true) },
		func() Pass { return Resubstitute(6, DefaultMaxLevels, DefaultMaxDivisors, true) },
		Balance,
		func() Pass { return Resubstitute(5, DefaultMaxLevels, DefaultMaxDivisors, true) },
		Balance,
	},
	"compress": {
		Balance,
		func() Pass { return Rewrite(4, false) },
		func() Pass { return Rewrite(4, true) },
		Balance,
		func() Pass { return Rewrite(4, true) },
		Balance,
	},
	"compress2": {
		Balance,
		func() Pass { return Rewrite(4, false) },
		func() Pass { return Refactor(RefactorDefault) },
		Balance,
		func() Pass { return Rewrite(4, false) },
		func() Pass { return Rewrite(4, true) },
		Balance,
		func() Pass { return Refactor(RefactorZero) },
		func() Pass { return Rewrite(4, true) },
		Balance,
	},
}

// Script resolves a named pass composition (resyn, resyn2, resyn2a,
// resyn3, compress, compress2) into the ordered list of passes a caller
// runs in sequence. Each call returns freshly-constructed passes — the
// same name can be resolved and run repeatedly without passes from one
// run leaking state into the next.
func Script(name string) ([]Pass, error) {
	ctors, ok := scripts[name]
	if !ok {
		return nil, &scriptError{name: name}
	}
	passes := make([]Pass, len(ctors))
	for i, ctor := range ctors {
		passes[i] = ctor()
	}
	return passes, nil
}
