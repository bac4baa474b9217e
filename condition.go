package astddl

import "github.com/zoobzio/astddl/internal/types"

// Col creates a column expression. A "table.column" name is qualified.
func Col(name string) types.Expr {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return types.TableColumnExpr(name[:i], name[i+1:])
		}
	}
	return types.Column(name)
}

// Val creates a literal expression.
func Val(v any) types.Expr {
	return types.Value(v)
}

// Cust creates a raw SQL expression. The fragment is written verbatim and
// must never carry user input.
func Cust(sql string) types.Expr {
	return types.Custom(sql)
}

// Not negates an expression.
func Not(e types.ExprTrait) types.Expr {
	return types.Not(e)
}

// And groups conditions with AND.
func And(conditions ...types.ConditionItem) types.ConditionGroup {
	return types.ConditionGroup{
		Logic:      types.AND,
		Conditions: conditions,
	}
}

// Or groups conditions with OR.
func Or(conditions ...types.ConditionItem) types.ConditionGroup {
	return types.ConditionGroup{
		Logic:      types.OR,
		Conditions: conditions,
	}
}
