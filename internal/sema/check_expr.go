package sema

import (
	"strconv"

	"ferro/internal/ast"
	"ferro/internal/diag"
)

// analyzeExpr assigns a TypeInfo to the expression, emitting
// diagnostics along the way. It never returns nil: a failing subtree
// yields the unknown sentinel and analysis continues.
func (a *Analyzer) analyzeExpr(e ast.Expr) *TypeInfo {
	switch ex := e.(type) {
	case nil:
		return NewBuiltin(BuiltinUnknown)

	case *ast.Ident:
		sym := a.current.Lookup(ex.Name)
		if sym == nil {
			a.report(diag.SemaUndefinedVariable, ex.Sp, "Undefined variable: "+ex.Name)
			return NewBuiltin(BuiltinUnknown)
		}
		if !sym.IsInitialized {
			a.report(diag.SemaUninitializedVariable, ex.Sp,
				"use of uninitialized variable '"+ex.Name+"'")
			return NewBuiltin(BuiltinUnknown)
		}
		sym.IsUsed = true
		return sym.Type

	case *ast.IntLit:
		return NewBuiltin(BuiltinInt)

	case *ast.FloatLit:
		return NewBuiltin(BuiltinFloat)

	case *ast.StringLit:
		return NewBuiltin(BuiltinString)

	case *ast.BoolLit:
		return NewBuiltin(BuiltinBool)

	case *ast.FuncLit:
		return a.analyzeFuncLit(ex)

	case *ast.CallExpr:
		return a.analyzeCall(ex)

	case *ast.InfixExpr:
		return a.analyzeInfix(ex)

	case *ast.PrefixExpr:
		return a.analyzePrefix(ex)

	case *ast.IfExpr:
		return a.analyzeIf(ex)

	case *ast.PipeExpr:
		return a.analyzePipe(ex)

	case *ast.BlockExpr:
		return a.analyzeBranch(ex.Stmts)

	case *ast.MatchExpr:
		a.report(diag.SemaInvalidOperation, ex.Sp, "Match expressions not yet implemented")
		return NewBuiltin(BuiltinUnknown)

	case *ast.BadExpr:
		return NewBuiltin(BuiltinUnknown)

	default:
		a.report(diag.SemaInvalidOperation, e.Span(), "Unknown expression type")
		return NewBuiltin(BuiltinUnknown)
	}
}

func (a *Analyzer) analyzeFuncLit(ex *ast.FuncLit) *TypeInfo {
	paramTypes := make([]*TypeInfo, len(ex.Params))

	a.pushScope()

	for i, p := range ex.Params {
		paramTypes[i] = a.resolveType(p.Type)
		a.declare(&Symbol{
			Name:          p.Name,
			Kind:          SymbolParameter,
			Type:          paramTypes[i],
			IsMutable:     true,
			IsInitialized: true,
			Decl:          p.Sp,
		})
	}

	returnType := NewBuiltin(BuiltinUnit)
	if ex.Return != nil {
		returnType = a.resolveType(ex.Return)
	}

	saved := a.expectedReturn
	a.expectedReturn = returnType
	for _, stmt := range ex.Body {
		a.analyzeStmt(stmt)
	}
	a.expectedReturn = saved

	a.popScope()

	return NewFunction(paramTypes, returnType)
}

func (a *Analyzer) analyzeCall(ex *ast.CallExpr) *TypeInfo {
	// An undefined callee name is an undefined function, not an
	// undefined variable.
	if ident, ok := ex.Callee.(*ast.Ident); ok {
		if a.current.Lookup(ident.Name) == nil {
			a.report(diag.SemaUndefinedFunction, ident.Sp, "Undefined function: "+ident.Name)
			return NewBuiltin(BuiltinUnknown)
		}
	}

	fnType := a.analyzeExpr(ex.Callee)
	if fnType.IsUnknown() {
		return NewBuiltin(BuiltinUnknown)
	}
	if fnType.Category != TypeFunction {
		a.report(diag.SemaInvalidOperation, ex.Callee.Span(), "Cannot call non-function")
		return NewBuiltin(BuiltinUnknown)
	}

	if len(ex.Args) != len(fnType.Params) {
		a.report(diag.SemaWrongArgumentCount, ex.Sp,
			"Wrong number of arguments: expected "+strconv.Itoa(len(fnType.Params))+
				", got "+strconv.Itoa(len(ex.Args)))
		return NewBuiltin(BuiltinUnknown)
	}

	for i, arg := range ex.Args {
		argType := a.analyzeExpr(arg)
		expected := fnType.Params[i]
		if argType.IsUnknown() || expected.IsUnknown() {
			continue
		}
		if !argType.AssignableTo(expected) {
			a.report(diag.SemaTypeMismatch, arg.Span(),
				"Argument "+strconv.Itoa(i+1)+" type mismatch: expected "+
					expected.String()+", got "+argType.String())
			return NewBuiltin(BuiltinUnknown)
		}
	}

	return fnType.Result
}

func (a *Analyzer) analyzeInfix(ex *ast.InfixExpr) *TypeInfo {
	left := a.analyzeExpr(ex.Left)
	right := a.analyzeExpr(ex.Right)

	if left.IsUnknown() || right.IsUnknown() {
		return NewBuiltin(BuiltinUnknown)
	}

	result := binaryResultType(left, right, ex.Op)
	if result == nil {
		a.report(diag.SemaInvalidOperation, ex.Sp,
			"Invalid binary operation: "+left.String()+" "+ex.Op.String()+" "+right.String())
		return NewBuiltin(BuiltinUnknown)
	}
	return result
}

// binaryResultType applies the infix typing rules; nil means the
// combination is invalid.
func binaryResultType(left, right *TypeInfo, op ast.BinaryOp) *TypeInfo {
	switch {
	case op.IsArithmetic():
		if !left.IsNumeric() || !right.IsNumeric() {
			return nil
		}
		if left.Builtin == BuiltinFloat || right.Builtin == BuiltinFloat {
			return NewBuiltin(BuiltinFloat)
		}
		return NewBuiltin(BuiltinInt)

	case op.IsComparison():
		if !left.IsComparable() || !right.IsComparable() {
			return nil
		}
		if !left.Equals(right) {
			return nil
		}
		return NewBuiltin(BuiltinBool)

	case op.IsLogical():
		if left.IsBool() && right.IsBool() {
			return NewBuiltin(BuiltinBool)
		}
		return nil

	default:
		// TODO: assignment typing is not defined for the surface
		// language; '=' parses as an infix but has no semantic rule.
		return nil
	}
}

func (a *Analyzer) analyzePrefix(ex *ast.PrefixExpr) *TypeInfo {
	if ex.Op == ast.UnaryRef || ex.Op == ast.UnaryRefMut {
		return a.checkBorrowExpr(ex)
	}

	operand := a.analyzeExpr(ex.Operand)
	if operand.IsUnknown() {
		return NewBuiltin(BuiltinUnknown)
	}

	switch ex.Op {
	case ast.UnaryNeg:
		if !operand.IsNumeric() {
			a.report(diag.SemaInvalidOperation, ex.Sp,
				"Unary minus can only be applied to numeric types")
			return NewBuiltin(BuiltinUnknown)
		}
		return operand

	case ast.UnaryNot:
		if !operand.IsBool() {
			a.report(diag.SemaInvalidOperation, ex.Sp,
				"Logical not can only be applied to boolean types")
			return NewBuiltin(BuiltinUnknown)
		}
		return NewBuiltin(BuiltinBool)

	case ast.UnaryDeref:
		if !operand.IsReference() {
			a.report(diag.SemaTypeMismatch, ex.Sp,
				"Cannot dereference non-reference type '"+operand.String()+"'")
			return NewBuiltin(BuiltinUnknown)
		}
		// Dereference reads through the reference without touching
		// the referent's borrow state.
		return operand.PointedTo

	default:
		a.report(diag.SemaInvalidOperation, ex.Sp, "Unknown prefix operator")
		return NewBuiltin(BuiltinUnknown)
	}
}

func (a *Analyzer) analyzeIf(ex *ast.IfExpr) *TypeInfo {
	cond := a.analyzeExpr(ex.Cond)
	condBad := false
	if !cond.IsBool() {
		if !cond.IsUnknown() {
			a.report(diag.SemaTypeMismatch, ex.Cond.Span(), "If condition must be boolean")
		}
		condBad = true
	}

	thenType := a.analyzeBranch(ex.Then)
	elseType := NewBuiltin(BuiltinUnit)
	if ex.Else != nil {
		elseType = a.analyzeBranch(ex.Else)
	}

	if condBad {
		return NewBuiltin(BuiltinUnknown)
	}
	if thenType.IsUnknown() || elseType.IsUnknown() {
		return NewBuiltin(BuiltinUnknown)
	}
	if !thenType.Equals(elseType) {
		a.report(diag.SemaTypeMismatch, ex.Sp,
			"If branches have different types: "+thenType.String()+" vs "+elseType.String())
		return NewBuiltin(BuiltinUnknown)
	}
	return thenType
}

// analyzeBranch types one if-branch or block expression in its own scope. The branch's
// type is the type of its trailing expression statement; any other
// trailing statement yields unit.
func (a *Analyzer) analyzeBranch(stmts []ast.Stmt) *TypeInfo {
	a.pushScope()
	branchType := NewBuiltin(BuiltinUnit)
	for i, stmt := range stmts {
		if last, ok := stmt.(*ast.ExprStmt); ok && i == len(stmts)-1 {
			branchType = a.analyzeExpr(last.X)
			continue
		}
		a.analyzeStmt(stmt)
	}
	a.popScope()
	return branchType
}

func (a *Analyzer) analyzePipe(ex *ast.PipeExpr) *TypeInfo {
	left := a.analyzeExpr(ex.Left)
	if left.IsUnknown() {
		return NewBuiltin(BuiltinUnknown)
	}

	right := a.analyzeExpr(ex.Right)
	if right.IsUnknown() {
		return NewBuiltin(BuiltinUnknown)
	}
	if right.Category != TypeFunction {
		a.report(diag.SemaInvalidOperation, ex.Right.Span(),
			"Right side of pipe must be a function")
		return NewBuiltin(BuiltinUnknown)
	}
	if len(right.Params) != 1 {
		a.report(diag.SemaInvalidOperation, ex.Right.Span(),
			"Piped function must take exactly one argument")
		return NewBuiltin(BuiltinUnknown)
	}
	if !left.AssignableTo(right.Params[0]) {
		a.report(diag.SemaTypeMismatch, ex.Sp,
			"Cannot pipe "+left.String()+" to function expecting "+right.Params[0].String())
		return NewBuiltin(BuiltinUnknown)
	}

	return right.Result
}
