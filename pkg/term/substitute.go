package term

// Substitute replaces the free occurrence of index i within t with v. If
// shiftOthers is true, every free index above i is decremented by one,
// closing the hole left by consuming the binder at i; when false (used
// when substituting a symbolic annotation that must not consume the
// hole), indices above i are left alone.
//
// Descending under k new binders shifts v by k and the target index by k,
// so v is always interpreted relative to the scope it is substituted
// into.
func Substitute(t Term, i Index, v Term, shiftOthers bool) Term {
	switch x := t.(type) {
	case Variable:
		if x.Index == i {
			return v
		}
		if shiftOthers && x.Index.IsBelow(i) {
			return Variable{Index: x.Index.Parent()}
		}
		return Variable{Index: x.Index}
	case Lambda:
		return Lambda{
			Body:   Substitute(x.Body, i.Child(), Shift(v, 0), shiftOthers),
			Erased: x.Erased,
		}
	case Apply:
		return Apply{
			Function: Substitute(x.Function, i, v, shiftOthers),
			Argument: Substitute(x.Argument, i, v, shiftOthers),
			Erased:   x.Erased,
		}
	case Put:
		return Put{Term: Substitute(x.Term, i, v, shiftOthers)}
	case Duplicate:
		return Duplicate{
			Expression: Substitute(x.Expression, i, v, shiftOthers),
			Body:       Substitute(x.Body, i.Child(), Shift(v, 0), shiftOthers),
		}
	case Reference:
		return Reference{Name: x.Name}
	case Primitive:
		return Primitive{Value: x.Value}
	case Universe:
		return Universe{}
	case Function:
		vv := Shift(Shift(v, 0), 0)
		return Function{
			ArgumentType: Substitute(x.ArgumentType, i, v, shiftOthers),
			ReturnType:   Substitute(x.ReturnType, i.Child().Child(), vv, shiftOthers),
			Erased:       x.Erased,
		}
	case Annotation:
		return Annotation{
			Expression: Substitute(x.Expression, i, v, shiftOthers),
			Type:       Substitute(x.Type, i, v, shiftOthers),
			Checked:    x.Checked,
		}
	case Wrap:
		return Wrap{Term: Substitute(x.Term, i, v, shiftOthers)}
	default:
		return t
	}
}

// SubstituteTop substitutes v at index 0, closing the hole (the common
// case: beta-reduction, unboxing a Duplicate).
func SubstituteTop(t Term, v Term) Term {
	return Substitute(t, 0, v, true)
}

// SubstituteTopUnshifted substitutes v at index 0 without closing the
// hole. Needed when substituting a symbolic annotation that must not
// consume the variable's slot.
func SubstituteTopUnshifted(t Term, v Term) Term {
	return Substitute(t, 0, v, false)
}

// SubstituteFunction opens a self-dependent Pi's return type by binding
// self (index 1) to selfAnn and the argument (index 0) to argAnn.
// selfAnn is shifted by one before being substituted at index 1, since
// the argument's binder still sits between self and the return type at
// that point.
func SubstituteFunction(returnType Term, selfAnn Term, argAnn Term) Term {
	rt := Substitute(returnType, Index(1), Shift(selfAnn, 0), true)
	return Substitute(rt, Index(0), argAnn, true)
}

// SubstituteFunctionUnshifted is SubstituteFunction without closing
// either hole, used by the checker when the bindings are symbolic
// annotations that must remain addressable afterwards.
func SubstituteFunctionUnshifted(returnType Term, selfAnn Term, argAnn Term) Term {
	rt := Substitute(returnType, Index(1), Shift(selfAnn, 0), false)
	return Substitute(rt, Index(0), argAnn, false)
}
