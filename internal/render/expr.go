package render

import (
	"encoding/hex"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zoobzio/astddl/internal/types"
)

// timestampLayout is the literal format for time.Time values.
const timestampLayout = "2006-01-02 15:04:05.999999"

// ExprRenderer renders expression trees and WHERE conditions for one dialect.
// Only Dialect and Quote are required; nil hooks fall back to ANSI spelling.
type ExprRenderer struct {
	// Operator spells a binary operator, rejecting tags the dialect does not know.
	// When nil only shared operators are accepted.
	Operator func(op types.BinOper) (string, error)

	// String formats a string literal, including its quotes.
	String func(s string) string

	// Bool formats a boolean literal.
	Bool func(v bool) string

	// Bytes formats a binary literal.
	Bytes func(v []byte) string

	Dialect string
	Quote   Quote
}

// Condition writes a WHERE tree. Groups with more than one member are
// parenthesized so the fragment is safe to splice after WHERE or AND.
func (r ExprRenderer) Condition(cond types.ConditionItem, w SQLWriter) error {
	switch c := cond.(type) {
	case types.Expr:
		return r.Expr(c, w)
	case types.ConditionGroup:
		members := make([]types.ConditionItem, 0, len(c.Conditions))
		for _, sub := range c.Conditions {
			if !types.IsEmpty(sub) {
				members = append(members, sub)
			}
		}
		if len(members) == 0 {
			return fmt.Errorf("%s: empty condition group", r.Dialect)
		}
		if len(members) == 1 {
			return r.Condition(members[0], w)
		}
		logic := c.Logic
		if logic == "" {
			logic = types.AND
		}
		w.WriteString("(")
		for i, sub := range members {
			if i > 0 {
				w.WriteString(" " + string(logic) + " ")
			}
			if err := r.Condition(sub, w); err != nil {
				return err
			}
		}
		w.WriteString(")")
		return nil
	case nil:
		return fmt.Errorf("%s: nil condition", r.Dialect)
	default:
		return fmt.Errorf("%s: unknown condition type: %T", r.Dialect, c)
	}
}

// Expr writes one expression.
func (r ExprRenderer) Expr(e types.Expr, w SQLWriter) error {
	switch n := e.Node.(type) {
	case types.ColumnNode:
		if n.Table != "" {
			w.WriteString(r.Quote.Ident(n.Table))
			w.WriteString(".")
		}
		w.WriteString(r.Quote.Ident(n.Name))
		return nil
	case types.ValueNode:
		lit, err := r.Literal(n.Value)
		if err != nil {
			return err
		}
		w.WriteString(lit)
		return nil
	case types.BinaryNode:
		return r.binary(n, w)
	case types.NotNode:
		w.WriteString("NOT ")
		_, nested := n.Operand.Node.(types.BinaryNode)
		return r.operand(n.Operand, nested, w)
	case types.CustomNode:
		w.WriteString(n.SQL)
		return nil
	case nil:
		return fmt.Errorf("%s: empty expression", r.Dialect)
	default:
		return fmt.Errorf("%s: unknown expression node: %T", r.Dialect, n)
	}
}

func (r ExprRenderer) binary(n types.BinaryNode, w SQLWriter) error {
	if n.Op == nil {
		return fmt.Errorf("%s: binary expression without operator", r.Dialect)
	}
	op, err := r.operator(n.Op)
	if err != nil {
		return err
	}

	if err := r.operand(n.Left, wrapOperand(n.Op, n.Left), w); err != nil {
		return err
	}
	w.WriteString(" ")
	w.WriteString(op)
	w.WriteString(" ")
	return r.operand(n.Right, wrapOperand(n.Op, n.Right), w)
}

func (r ExprRenderer) operand(e types.Expr, wrap bool, w SQLWriter) error {
	if !wrap {
		return r.Expr(e, w)
	}
	w.WriteString("(")
	if err := r.Expr(e, w); err != nil {
		return err
	}
	w.WriteString(")")
	return nil
}

func (r ExprRenderer) operator(op types.BinOper) (string, error) {
	if r.Operator != nil {
		return r.Operator(op)
	}
	if shared, ok := op.(types.Operator); ok {
		return shared.Symbol(), nil
	}
	return "", UnsupportedOperator(r.Dialect, op)
}

// wrapOperand reports whether a child of a binary expression needs parentheses.
// Comparisons and NOT under AND/OR stay bare, as do runs of the same logical
// operator; everything else nested is wrapped.
func wrapOperand(parent types.BinOper, child types.Expr) bool {
	switch b := child.Node.(type) {
	case types.BinaryNode:
		if isLogical(parent) {
			return isLogical(b.Op) && b.Op.Symbol() != parent.Symbol()
		}
		return true
	case types.NotNode:
		return !isLogical(parent)
	default:
		return false
	}
}

func isLogical(op types.BinOper) bool {
	if op == nil {
		return false
	}
	s := op.Symbol()
	return s == string(types.AndOp) || s == string(types.OrOp)
}

// UnsupportedOperator reports an operator tag the dialect does not recognize,
// typically one built with another dialect's extension.
func UnsupportedOperator(dialect string, op types.BinOper) error {
	return UnsupportedFeatureError{
		Dialect: dialect,
		Feature: fmt.Sprintf("operator %s (%T)", op.Symbol(), op),
	}
}

// Literal formats a Go value as an SQL literal.
func (r ExprRenderer) Literal(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "NULL", nil
	case string:
		return r.str(x), nil
	case bool:
		if r.Bool != nil {
			return r.Bool(x), nil
		}
		if x {
			return "TRUE", nil
		}
		return "FALSE", nil
	case int:
		return strconv.Itoa(x), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float32:
		return r.float(float64(x), 32)
	case float64:
		return r.float(x, 64)
	case []byte:
		if r.Bytes != nil {
			return r.Bytes(x), nil
		}
		return "X'" + strings.ToUpper(hex.EncodeToString(x)) + "'", nil
	case time.Time:
		return r.str(x.Format(timestampLayout)), nil
	case decimal.Decimal:
		return x.String(), nil
	case uuid.UUID:
		return r.str(x.String()), nil
	case fmt.Stringer:
		return r.str(x.String()), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return r.list(rv)
	}
	return "", UnsupportedFeatureError{
		Dialect: r.Dialect,
		Feature: fmt.Sprintf("literal of type %T", v),
	}
}

func (r ExprRenderer) list(rv reflect.Value) (string, error) {
	if rv.Len() == 0 {
		return "", fmt.Errorf("%s: empty list literal", r.Dialect)
	}
	parts := make([]string, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		lit, err := r.Literal(rv.Index(i).Interface())
		if err != nil {
			return "", err
		}
		parts[i] = lit
	}
	return "(" + strings.Join(parts, ", ") + ")", nil
}

func (r ExprRenderer) float(f float64, bits int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%s: non-finite float literal %v", r.Dialect, f)
	}
	return strconv.FormatFloat(f, 'g', -1, bits), nil
}

func (r ExprRenderer) str(s string) string {
	if r.String != nil {
		return r.String(s)
	}
	return QuoteString(s)
}

// QuoteString writes an ANSI string literal, doubling single quotes.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
