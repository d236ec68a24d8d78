package term

// Shift increments every free index i >= threshold within t by one. Each
// binder the recursion crosses pushes threshold out: Lambda and
// Duplicate push it by one (one extra binding in their body); Function's
// return type pushes it by two (self and argument). Everything else is
// unchanged.
func Shift(t Term, threshold Index) Term {
	switch v := t.(type) {
	case Variable:
		if v.Index >= threshold {
			return Variable{Index: v.Index.Child()}
		}
		return Variable{Index: v.Index}
	case Lambda:
		return Lambda{Body: Shift(v.Body, threshold.Child()), Erased: v.Erased}
	case Apply:
		return Apply{
			Function: Shift(v.Function, threshold),
			Argument: Shift(v.Argument, threshold),
			Erased:   v.Erased,
		}
	case Put:
		return Put{Term: Shift(v.Term, threshold)}
	case Duplicate:
		return Duplicate{
			Expression: Shift(v.Expression, threshold),
			Body:       Shift(v.Body, threshold.Child()),
		}
	case Reference:
		return Reference{Name: v.Name}
	case Primitive:
		return Primitive{Value: v.Value}
	case Universe:
		return Universe{}
	case Function:
		return Function{
			ArgumentType: Shift(v.ArgumentType, threshold),
			ReturnType:   Shift(v.ReturnType, threshold.Child().Child()),
			Erased:       v.Erased,
		}
	case Annotation:
		return Annotation{
			Expression: Shift(v.Expression, threshold),
			Type:       Shift(v.Type, threshold),
			Checked:    v.Checked,
		}
	case Wrap:
		return Wrap{Term: Shift(v.Term, threshold)}
	default:
		return t
	}
}
