package types

// ConditionItem represents either a single predicate expression or a group of them.
// It is the WHERE tree consumed by partial index filters.
type ConditionItem interface {
	IsConditionItem()
}

// LogicOperator represents how conditions are combined.
type LogicOperator string

const (
	AND LogicOperator = "AND"
	OR  LogicOperator = "OR"
)

// ConditionGroup represents grouped conditions with AND/OR logic.
type ConditionGroup struct {
	Logic      LogicOperator
	Conditions []ConditionItem
}

// Implement ConditionItem interface.
func (ConditionGroup) IsConditionItem() {}
func (Expr) IsConditionItem()           {}

// IsEmpty reports whether the condition renders nothing.
// A nil item and a group without members are both empty.
func IsEmpty(cond ConditionItem) bool {
	switch c := cond.(type) {
	case nil:
		return true
	case ConditionGroup:
		for _, sub := range c.Conditions {
			if !IsEmpty(sub) {
				return false
			}
		}
		return true
	case Expr:
		return c.Node == nil
	}
	return false
}
