package interp

import (
	"golang.org/x/text/unicode/norm"

	"ferro/internal/ast"
)

// EvalProgram evaluates the file's statements in order and returns
// the last produced value. A top-level return short-circuits.
func EvalProgram(f *ast.File, env *Environment) Value {
	var result Value = Unit
	for _, stmt := range f.Stmts {
		result = evalStmt(stmt, env)
		if ret, ok := result.(*ReturnValue); ok {
			return ret.Value
		}
	}
	return result
}

func evalStmt(s ast.Stmt, env *Environment) Value {
	switch st := s.(type) {
	case *ast.LetStmt:
		var val Value = Unit
		if st.Init != nil {
			val = evalExpr(st.Init, env)
			if ret, ok := val.(*ReturnValue); ok {
				return ret
			}
		}
		env.Set(st.Name, val)
		return Unit

	case *ast.ConstStmt:
		val := evalExpr(st.Init, env)
		if ret, ok := val.(*ReturnValue); ok {
			return ret
		}
		env.Set(st.Name, val)
		return Unit

	case *ast.ReturnStmt:
		var val Value = Unit
		if st.Value != nil {
			val = evalExpr(st.Value, env)
			if ret, ok := val.(*ReturnValue); ok {
				return ret
			}
		}
		return &ReturnValue{Value: val}

	case *ast.ExprStmt:
		return evalExpr(st.X, env)

	case *ast.BlockStmt:
		return evalBlock(st.Stmts, env)

	case *ast.WhileStmt:
		for {
			cond := evalExpr(st.Cond, env)
			if ret, ok := cond.(*ReturnValue); ok {
				return ret
			}
			if !isTruthy(cond) {
				break
			}
			result := evalStmt(st.Body, env)
			if ret, ok := result.(*ReturnValue); ok {
				return ret
			}
		}
		return Unit

	default:
		return Unit
	}
}

// evalBlock runs statements in a fresh enclosed environment; the
// block's value is the last statement's value.
func evalBlock(stmts []ast.Stmt, env *Environment) Value {
	enclosed := NewEnclosed(env)
	var result Value = Unit
	for _, stmt := range stmts {
		result = evalStmt(stmt, enclosed)
		if _, ok := result.(*ReturnValue); ok {
			return result
		}
	}
	return result
}

func evalExpr(e ast.Expr, env *Environment) Value {
	switch ex := e.(type) {
	case *ast.IntLit:
		return &IntValue{Value: ex.Value}
	case *ast.FloatLit:
		return &FloatValue{Value: ex.Value}
	case *ast.StringLit:
		return &StringValue{Value: ex.Value}
	case *ast.BoolLit:
		return boolValue(ex.Value)

	case *ast.Ident:
		if v, ok := env.Get(ex.Name); ok {
			return v
		}
		return Unit

	case *ast.FuncLit:
		return &FuncValue{Params: ex.Params, Body: ex.Body, Env: env}

	case *ast.PrefixExpr:
		return evalPrefix(ex, env)

	case *ast.InfixExpr:
		left := evalExpr(ex.Left, env)
		right := evalExpr(ex.Right, env)
		return evalInfix(ex.Op, left, right)

	case *ast.IfExpr:
		cond := evalExpr(ex.Cond, env)
		if isTruthy(cond) {
			return evalBlock(ex.Then, env)
		}
		if ex.Else != nil {
			return evalBlock(ex.Else, env)
		}
		return Unit

	case *ast.CallExpr:
		fn := evalExpr(ex.Callee, env)
		args := make([]Value, 0, len(ex.Args))
		for _, arg := range ex.Args {
			args = append(args, evalExpr(arg, env))
		}
		return applyFunction(fn, args)

	case *ast.PipeExpr:
		left := evalExpr(ex.Left, env)
		fn := evalExpr(ex.Right, env)
		return applyFunction(fn, []Value{left})

	case *ast.BlockExpr:
		return evalBlock(ex.Stmts, env)

	default:
		return Unit
	}
}

func evalPrefix(ex *ast.PrefixExpr, env *Environment) Value {
	switch ex.Op {
	case ast.UnaryRef, ast.UnaryRefMut:
		if ident, ok := ex.Operand.(*ast.Ident); ok {
			return &RefValue{
				Name:    ident.Name,
				Mutable: ex.Op == ast.UnaryRefMut,
				Env:     env,
			}
		}
		return Unit

	case ast.UnaryDeref:
		operand := evalExpr(ex.Operand, env)
		if ref, ok := operand.(*RefValue); ok {
			if v, found := ref.Env.Get(ref.Name); found {
				return v
			}
		}
		return Unit

	case ast.UnaryNeg:
		operand := evalExpr(ex.Operand, env)
		switch v := operand.(type) {
		case *IntValue:
			return &IntValue{Value: -v.Value}
		case *FloatValue:
			return &FloatValue{Value: -v.Value}
		}
		return Unit

	case ast.UnaryNot:
		operand := evalExpr(ex.Operand, env)
		switch v := operand.(type) {
		case *BoolValue:
			return boolValue(!v.Value)
		case *UnitValue:
			return True
		}
		return False

	default:
		return Unit
	}
}

func evalInfix(op ast.BinaryOp, left, right Value) Value {
	switch l := left.(type) {
	case *IntValue:
		switch r := right.(type) {
		case *IntValue:
			return evalIntInfix(op, l.Value, r.Value)
		case *FloatValue:
			return evalFloatInfix(op, float64(l.Value), r.Value)
		}

	case *FloatValue:
		switch r := right.(type) {
		case *IntValue:
			return evalFloatInfix(op, l.Value, float64(r.Value))
		case *FloatValue:
			return evalFloatInfix(op, l.Value, r.Value)
		}

	case *StringValue:
		if r, ok := right.(*StringValue); ok {
			return evalStringInfix(op, l.Value, r.Value)
		}

	case *BoolValue:
		if r, ok := right.(*BoolValue); ok {
			return evalBoolInfix(op, l.Value, r.Value)
		}
	}
	return Unit
}

func evalIntInfix(op ast.BinaryOp, l, r int64) Value {
	switch op {
	case ast.BinaryAdd:
		return &IntValue{Value: l + r}
	case ast.BinarySub:
		return &IntValue{Value: l - r}
	case ast.BinaryMul:
		return &IntValue{Value: l * r}
	case ast.BinaryDiv:
		if r == 0 {
			return Unit
		}
		return &IntValue{Value: l / r}
	case ast.BinaryMod:
		if r == 0 {
			return Unit
		}
		return &IntValue{Value: l % r}
	case ast.BinaryEq:
		return boolValue(l == r)
	case ast.BinaryNotEq:
		return boolValue(l != r)
	case ast.BinaryLess:
		return boolValue(l < r)
	case ast.BinaryLessEq:
		return boolValue(l <= r)
	case ast.BinaryGreater:
		return boolValue(l > r)
	case ast.BinaryGreaterEq:
		return boolValue(l >= r)
	}
	return Unit
}

func evalFloatInfix(op ast.BinaryOp, l, r float64) Value {
	switch op {
	case ast.BinaryAdd:
		return &FloatValue{Value: l + r}
	case ast.BinarySub:
		return &FloatValue{Value: l - r}
	case ast.BinaryMul:
		return &FloatValue{Value: l * r}
	case ast.BinaryDiv:
		if r == 0 {
			return Unit
		}
		return &FloatValue{Value: l / r}
	case ast.BinaryEq:
		return boolValue(l == r)
	case ast.BinaryNotEq:
		return boolValue(l != r)
	case ast.BinaryLess:
		return boolValue(l < r)
	case ast.BinaryLessEq:
		return boolValue(l <= r)
	case ast.BinaryGreater:
		return boolValue(l > r)
	case ast.BinaryGreaterEq:
		return boolValue(l >= r)
	}
	return Unit
}

// evalStringInfix compares NFC-normalized forms so canonically
// equivalent Unicode strings compare equal.
func evalStringInfix(op ast.BinaryOp, l, r string) Value {
	ln, rn := norm.NFC.String(l), norm.NFC.String(r)
	switch op {
	case ast.BinaryEq:
		return boolValue(ln == rn)
	case ast.BinaryNotEq:
		return boolValue(ln != rn)
	case ast.BinaryLess:
		return boolValue(ln < rn)
	case ast.BinaryLessEq:
		return boolValue(ln <= rn)
	case ast.BinaryGreater:
		return boolValue(ln > rn)
	case ast.BinaryGreaterEq:
		return boolValue(ln >= rn)
	}
	return Unit
}

func evalBoolInfix(op ast.BinaryOp, l, r bool) Value {
	switch op {
	case ast.BinaryEq:
		return boolValue(l == r)
	case ast.BinaryNotEq:
		return boolValue(l != r)
	case ast.BinaryAnd:
		return boolValue(l && r)
	case ast.BinaryOr:
		return boolValue(l || r)
	}
	return Unit
}

func applyFunction(fn Value, args []Value) Value {
	f, ok := fn.(*FuncValue)
	if !ok {
		return Unit
	}
	if len(args) != len(f.Params) {
		return Unit
	}

	callEnv := NewEnclosed(f.Env)
	for i, p := range f.Params {
		callEnv.Set(p.Name, args[i])
	}

	result := evalBlock(f.Body, callEnv)
	if ret, ok := result.(*ReturnValue); ok {
		return ret.Value
	}
	return result
}

func isTruthy(v Value) bool {
	switch val := v.(type) {
	case *BoolValue:
		return val.Value
	case *UnitValue:
		return false
	default:
		return true
	}
}
