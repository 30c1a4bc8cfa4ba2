package sema

import "testing"

func fnType(params ...*TypeInfo) *TypeInfo {
	result := params[len(params)-1]
	return NewFunction(params[:len(params)-1], result)
}

func TestBuiltinEquality(t *testing.T) {
	if !NewBuiltin(BuiltinInt).Equals(NewBuiltin(BuiltinInt)) {
		t.Error("int != int")
	}
	if NewBuiltin(BuiltinInt).Equals(NewBuiltin(BuiltinFloat)) {
		t.Error("int == float")
	}
	if NewBuiltin(BuiltinUnit).Equals(NewBuiltin(BuiltinBool)) {
		t.Error("unit == bool")
	}
}

func TestFunctionStructuralEquality(t *testing.T) {
	a := fnType(NewBuiltin(BuiltinInt), NewBuiltin(BuiltinBool), NewBuiltin(BuiltinFloat))
	b := fnType(NewBuiltin(BuiltinInt), NewBuiltin(BuiltinBool), NewBuiltin(BuiltinFloat))
	if !a.Equals(b) {
		t.Error("structurally equal function types must be equal")
	}

	// Parameter order matters.
	c := fnType(NewBuiltin(BuiltinBool), NewBuiltin(BuiltinInt), NewBuiltin(BuiltinFloat))
	if a.Equals(c) {
		t.Error("parameter order must matter")
	}

	// Result matters.
	d := fnType(NewBuiltin(BuiltinInt), NewBuiltin(BuiltinBool), NewBuiltin(BuiltinInt))
	if a.Equals(d) {
		t.Error("result type must matter")
	}

	// Arity matters.
	e := fnType(NewBuiltin(BuiltinInt), NewBuiltin(BuiltinFloat))
	if a.Equals(e) {
		t.Error("arity must matter")
	}
}

func TestReferenceEquality(t *testing.T) {
	sharedInt := NewReference(NewBuiltin(BuiltinInt), false)
	mutInt := NewReference(NewBuiltin(BuiltinInt), true)
	sharedBool := NewReference(NewBuiltin(BuiltinBool), false)

	if !sharedInt.Equals(NewReference(NewBuiltin(BuiltinInt), false)) {
		t.Error("&int != &int")
	}
	if sharedInt.Equals(mutInt) {
		t.Error("&int == &mut int")
	}
	if sharedInt.Equals(sharedBool) {
		t.Error("&int == &bool")
	}
}

// Property P4: assignability is reflexive, transitive, structural.
func TestAssignabilityProperties(t *testing.T) {
	samples := []*TypeInfo{
		NewBuiltin(BuiltinInt),
		NewBuiltin(BuiltinFloat),
		NewBuiltin(BuiltinString),
		NewBuiltin(BuiltinBool),
		NewBuiltin(BuiltinUnit),
		NewReference(NewBuiltin(BuiltinInt), false),
		NewReference(NewBuiltin(BuiltinInt), true),
		fnType(NewBuiltin(BuiltinInt), NewBuiltin(BuiltinInt)),
		fnType(NewBuiltin(BuiltinBool), NewBuiltin(BuiltinUnit)),
	}

	// Reflexivity: every sample is assignable to itself.
	for _, typ := range samples {
		if !typ.AssignableTo(typ) {
			t.Errorf("%s not assignable to itself", typ)
		}
	}

	// Transitivity: a→b and b→c implies a→c, over all triples.
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				if a.AssignableTo(b) && b.AssignableTo(c) && !a.AssignableTo(c) {
					t.Errorf("transitivity broken: %s, %s, %s", a, b, c)
				}
			}
		}
	}

	// No implicit numeric coercion.
	if NewBuiltin(BuiltinInt).AssignableTo(NewBuiltin(BuiltinFloat)) {
		t.Error("int must not coerce to float")
	}
}

func TestUnknownSentinel(t *testing.T) {
	unknown := NewBuiltin(BuiltinUnknown)
	if !unknown.IsUnknown() {
		t.Error("unknown sentinel not detected")
	}
	if (*TypeInfo)(nil).IsUnknown() != true {
		t.Error("nil must count as unknown")
	}
	if NewBuiltin(BuiltinInt).IsUnknown() {
		t.Error("int flagged unknown")
	}
}

func TestTypeStrings(t *testing.T) {
	cases := []struct {
		typ  *TypeInfo
		want string
	}{
		{NewBuiltin(BuiltinInt), "int"},
		{NewBuiltin(BuiltinUnit), "()"},
		{NewReference(NewBuiltin(BuiltinInt), false), "&int"},
		{NewReference(NewBuiltin(BuiltinFloat), true), "&mut float"},
		{fnType(NewBuiltin(BuiltinInt), NewBuiltin(BuiltinBool)), "func(int) -> bool"},
	}
	for _, tc := range cases {
		if got := tc.typ.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestClassifiers(t *testing.T) {
	if !NewBuiltin(BuiltinFloat).IsNumeric() || NewBuiltin(BuiltinBool).IsNumeric() {
		t.Error("IsNumeric wrong")
	}
	if !NewBuiltin(BuiltinString).IsComparable() || NewBuiltin(BuiltinUnit).IsComparable() {
		t.Error("IsComparable wrong")
	}
	if !NewReference(NewBuiltin(BuiltinInt), true).IsReference() {
		t.Error("IsReference wrong")
	}
	if fnType(NewBuiltin(BuiltinInt), NewBuiltin(BuiltinInt)).IsComparable() {
		t.Error("function types are not comparable")
	}
}
