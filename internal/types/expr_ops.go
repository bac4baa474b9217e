package types

// Shared operator shortcuts. Each one is Binary with a fixed tag.

func (e Expr) Eq(right any) Expr  { return e.Binary(EQ, right) }
func (e Expr) Ne(right any) Expr  { return e.Binary(NE, right) }
func (e Expr) Gt(right any) Expr  { return e.Binary(GT, right) }
func (e Expr) Gte(right any) Expr { return e.Binary(GE, right) }
func (e Expr) Lt(right any) Expr  { return e.Binary(LT, right) }
func (e Expr) Lte(right any) Expr { return e.Binary(LE, right) }

func (e Expr) Like(right any) Expr    { return e.Binary(LIKE, right) }
func (e Expr) NotLike(right any) Expr { return e.Binary(NotLike, right) }

// In renders "e IN (...)". A slice operand renders as a parenthesized list.
func (e Expr) In(values any) Expr    { return e.Binary(IN, values) }
func (e Expr) NotIn(values any) Expr { return e.Binary(NotIn, values) }

func (e Expr) IsNull() Expr    { return e.Binary(Is, nil) }
func (e Expr) IsNotNull() Expr { return e.Binary(IsNot, nil) }

func (e Expr) And(right any) Expr { return e.Binary(AndOp, right) }
func (e Expr) Or(right any) Expr  { return e.Binary(OrOp, right) }

func (e Expr) Add(right any) Expr { return e.Binary(Add, right) }
func (e Expr) Sub(right any) Expr { return e.Binary(Sub, right) }
func (e Expr) Mul(right any) Expr { return e.Binary(Mul, right) }
func (e Expr) Div(right any) Expr { return e.Binary(Div, right) }
func (e Expr) Mod(right any) Expr { return e.Binary(Mod, right) }
