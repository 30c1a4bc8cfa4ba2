package sema

import (
	"ferro/internal/ast"
	"ferro/internal/diag"
)

func (a *Analyzer) analyzeStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.LetStmt:
		a.analyzeLet(st)

	case *ast.ConstStmt:
		a.analyzeConst(st)

	case *ast.ReturnStmt:
		a.analyzeReturn(st)

	case *ast.ExprStmt:
		a.analyzeExpr(st.X)

	case *ast.BlockStmt:
		a.pushScope()
		for _, inner := range st.Stmts {
			a.analyzeStmt(inner)
		}
		a.popScope()

	case *ast.WhileStmt:
		cond := a.analyzeExpr(st.Cond)
		if !cond.IsUnknown() && !cond.IsBool() {
			a.report(diag.SemaTypeMismatch, st.Cond.Span(), "While condition must be boolean")
		}
		a.pushScope()
		a.analyzeStmt(st.Body)
		a.popScope()
	}
}

func (a *Analyzer) analyzeLet(st *ast.LetStmt) {
	var valueType *TypeInfo
	if st.Init != nil {
		valueType = a.analyzeExpr(st.Init)
	}

	var varType *TypeInfo
	if st.Type != nil {
		varType = a.resolveType(st.Type)
		if valueType != nil && !valueType.IsUnknown() && !varType.IsUnknown() &&
			!valueType.AssignableTo(varType) {
			a.report(diag.SemaTypeMismatch, st.Sp,
				"Cannot assign value of type "+valueType.String()+" to variable of type "+varType.String())
		}
	} else if valueType != nil {
		varType = valueType
	} else {
		varType = NewBuiltin(BuiltinUnknown)
	}

	a.declare(&Symbol{
		Name:          st.Name,
		Kind:          SymbolVariable,
		Type:          varType,
		IsConst:       false,
		IsMutable:     st.Mutable,
		IsInitialized: st.Init != nil,
		Decl:          st.NameSpan,
	})
}

func (a *Analyzer) analyzeConst(st *ast.ConstStmt) {
	valueType := a.analyzeExpr(st.Init)

	varType := valueType
	if st.Type != nil {
		varType = a.resolveType(st.Type)
		if !valueType.IsUnknown() && !varType.IsUnknown() &&
			!valueType.AssignableTo(varType) {
			a.report(diag.SemaTypeMismatch, st.Sp,
				"Cannot assign value of type "+valueType.String()+" to variable of type "+varType.String())
		}
	}

	a.declare(&Symbol{
		Name:          st.Name,
		Kind:          SymbolVariable,
		Type:          varType,
		IsConst:       true,
		IsMutable:     false,
		IsInitialized: true,
		Decl:          st.NameSpan,
	})
}

func (a *Analyzer) analyzeReturn(st *ast.ReturnStmt) {
	returnType := NewBuiltin(BuiltinUnit)
	if st.Value != nil {
		returnType = a.analyzeExpr(st.Value)
	}

	if a.expectedReturn == nil || returnType.IsUnknown() {
		return
	}
	if !returnType.AssignableTo(a.expectedReturn) {
		a.report(diag.SemaReturnTypeMismatch, st.Sp,
			"Return type "+returnType.String()+" does not match expected type "+a.expectedReturn.String())
	}
}
