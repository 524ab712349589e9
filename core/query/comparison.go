package query

// Ref is a field reference operand. When used as the right-hand side of a
// comparison it compiles to a scope-qualified identifier instead of a quoted
// literal, enabling field-to-field comparisons.
//
//	query.Field("budget").GreaterThan(query.Ref("spent"))
//	// compiles to: a.budget > a.spent
type Ref string

// operandKind discriminates how a comparison's right-hand side is serialized.
type operandKind int

const (
	operandValue operandKind = iota // a single serializable value
	operandList                     // an ordered list of serializable values
	operandRaw                      // a literal AQL token (null, true, false)
)

// operand is the right-hand side of a Comparison. It owns its values: list
// operands are copied in at construction time so later mutations of the
// caller's slice cannot leak into a built Comparison.
type operand struct {
	kind  operandKind
	value any
	list  []any
	raw   string
}

// Comparison is a single predicate over one field, field-array or raw
// statement. It is immutable once built by a ComparisonBuilder terminal call
// and is consumed read-only by Filter and the compiler.
type Comparison struct {
	subject    string
	qualifier  string // ALL, ANY or NONE for field-array subjects
	isField    bool   // raw statements are emitted without scope qualification
	comparator string
	operand    operand
}

// ComparisonBuilder accumulates the subject of a comparison. It is inert
// until exactly one terminal comparator call turns it into a Comparison.
type ComparisonBuilder struct {
	subject   string
	qualifier string
	isField   bool
}

// Field starts a comparison builder bound to a document field. The field will
// be the left value of the comparison, qualified by the enclosing scope's
// variable at compile time.
func Field(name string) ComparisonBuilder {
	return ComparisonBuilder{subject: name, isField: true}
}

// AllOf starts a comparison builder bound to an array field. Every item of
// the array must match the comparison for the document to match.
func AllOf(arrayField string) ComparisonBuilder {
	return ComparisonBuilder{subject: arrayField, qualifier: "ALL", isField: true}
}

// AnyOf starts a comparison builder bound to an array field. At least one
// item of the array must match the comparison for the document to match.
func AnyOf(arrayField string) ComparisonBuilder {
	return ComparisonBuilder{subject: arrayField, qualifier: "ANY", isField: true}
}

// NoneOf starts a comparison builder bound to an array field. No item of the
// array may match the comparison for the document to match.
func NoneOf(arrayField string) ComparisonBuilder {
	return ComparisonBuilder{subject: arrayField, qualifier: "NONE", isField: true}
}

// Statement starts a comparison builder from a raw left-hand expression. The
// statement is emitted as-is, without scope qualification.
//
//	query.Statement("LENGTH(a.emails)").GreaterThan(2)
func Statement(statement string) ComparisonBuilder {
	return ComparisonBuilder{subject: statement, isField: false}
}

func (b ComparisonBuilder) build(comparator string, op operand) Comparison {
	return Comparison{
		subject:    b.subject,
		qualifier:  b.qualifier,
		isField:    b.isField,
		comparator: comparator,
		operand:    op,
	}
}

// Equals finalizes the builder with an equality comparison. The operand is
// serialized by kind: strings are quoted and escaped, numbers and booleans
// are emitted as canonical literals, a Ref compiles to a qualified field.
func (b ComparisonBuilder) Equals(value any) Comparison {
	return b.build("==", operand{kind: operandValue, value: value})
}

// NotEquals finalizes the builder with an inequality comparison.
func (b ComparisonBuilder) NotEquals(value any) Comparison {
	return b.build("!=", operand{kind: operandValue, value: value})
}

// GreaterThan finalizes the builder with a strict ordering comparison.
// The operand is only serialized; whether its ordering is meaningful for the
// compared field is left to the engine at execution time.
func (b ComparisonBuilder) GreaterThan(value any) Comparison {
	return b.build(">", operand{kind: operandValue, value: value})
}

// GreaterOrEqual finalizes the builder with an ordering comparison.
func (b ComparisonBuilder) GreaterOrEqual(value any) Comparison {
	return b.build(">=", operand{kind: operandValue, value: value})
}

// LesserThan finalizes the builder with a strict ordering comparison.
func (b ComparisonBuilder) LesserThan(value any) Comparison {
	return b.build("<", operand{kind: operandValue, value: value})
}

// LesserOrEqual finalizes the builder with an ordering comparison.
func (b ComparisonBuilder) LesserOrEqual(value any) Comparison {
	return b.build("<=", operand{kind: operandValue, value: value})
}

// Like finalizes the builder with a pattern comparison. The pattern uses the
// engine's LIKE syntax (% and _ wildcards) and is quoted like any string.
func (b ComparisonBuilder) Like(pattern string) Comparison {
	return b.build("LIKE", operand{kind: operandValue, value: pattern})
}

// NotLike finalizes the builder with a negated pattern comparison.
func (b ComparisonBuilder) NotLike(pattern string) Comparison {
	return b.build("NOT LIKE", operand{kind: operandValue, value: pattern})
}

// Matches finalizes the builder with a regular expression comparison.
func (b ComparisonBuilder) Matches(regularExpression string) Comparison {
	return b.build("=~", operand{kind: operandValue, value: regularExpression})
}

// NotMatches finalizes the builder with a negated regular expression
// comparison.
func (b ComparisonBuilder) NotMatches(regularExpression string) Comparison {
	return b.build("!~", operand{kind: operandValue, value: regularExpression})
}

// In finalizes the builder with a list inclusion comparison. The values are
// copied into the comparison.
func (b ComparisonBuilder) In(values ...any) Comparison {
	list := make([]any, len(values))
	copy(list, values)
	return b.build("IN", operand{kind: operandList, list: list})
}

// NotIn finalizes the builder with a list exclusion comparison. The values
// are copied into the comparison.
func (b ComparisonBuilder) NotIn(values ...any) Comparison {
	list := make([]any, len(values))
	copy(list, values)
	return b.build("NOT IN", operand{kind: operandList, list: list})
}

// IsNull finalizes the builder with a null comparison.
func (b ComparisonBuilder) IsNull() Comparison {
	return b.build("==", operand{kind: operandRaw, raw: "null"})
}

// NotNull finalizes the builder with a not-null comparison.
func (b ComparisonBuilder) NotNull() Comparison {
	return b.build("!=", operand{kind: operandRaw, raw: "null"})
}

// IsTrue finalizes the builder with a boolean literal comparison.
func (b ComparisonBuilder) IsTrue() Comparison {
	return b.build("==", operand{kind: operandRaw, raw: "true"})
}

// IsFalse finalizes the builder with a boolean literal comparison.
func (b ComparisonBuilder) IsFalse() Comparison {
	return b.build("==", operand{kind: operandRaw, raw: "false"})
}

// And combines this comparison with another term under an AND combinator,
// promoting it to a Filter.
func (c Comparison) And(term FilterTerm) Filter {
	return NewFilter(c).And(term)
}

// Or combines this comparison with another term under an OR combinator,
// promoting it to a Filter.
func (c Comparison) Or(term FilterTerm) Filter {
	return NewFilter(c).Or(term)
}

// ToAQL renders the comparison qualified by the given scope variable. Exposed
// for debugging; compiled statements are produced through Query.ToAQL.
func (c Comparison) ToAQL(scopeVar string) (string, error) {
	return c.aql(scopeVar)
}

func (c Comparison) aql(scopeVar string) (string, error) {
	right, err := c.operand.aql(scopeVar)
	if err != nil {
		return "", err
	}
	left := c.subject
	if c.isField {
		left = scopeVar + "." + left
	}
	if c.qualifier != "" {
		left += " " + c.qualifier
	}
	return left + " " + c.comparator + " " + right, nil
}

func (o operand) aql(scopeVar string) (string, error) {
	switch o.kind {
	case operandRaw:
		return o.raw, nil
	case operandList:
		return serializeList(scopeVar, o.list)
	default:
		return serializeValue(scopeVar, o.value)
	}
}

func (Comparison) isFilterTerm() {}
