// Package nudge decides which cross-sell prompts to surface on a tool's
// results page. Rules are static data; evaluation is pure and stateless.
package nudge

import (
	"encoding/json"
	"strings"
)

// Op compares the value at a rule's path against its operand.

type Op string

const (
	// OpGreaterThan holds when the value is a number strictly greater than
	// Threshold. Boundary values do not trigger.
	OpGreaterThan Op = "gt"
	// OpLessThan holds when the value is a number strictly less than Threshold.
	OpLessThan Op = "lt"
	// OpOneOf holds when the value is a string contained in Values.
	OpOneOf Op = "one-of"
)

// Condition is a declarative predicate over a tool's result payload: a dotted
// field path, a comparator, and an operand. Keeping conditions as data (rather
// than closures) lets the rule table be validated at load time and evaluated
// without guarding against arbitrary code.
type Condition struct {
	Path      string
	Op        Op
	Threshold float64
	Values    []string
}

// Holds evaluates the condition against an opaque result payload. Missing
// intermediate keys, non-object values along the path, and wrong-typed leaf
// values all evaluate to false, never to an error.
func (c Condition) Holds(data map[string]any) bool {
	v := safeGet(data, c.Path)
	if v == nil {
		return false
	}
	switch c.Op {
	case OpGreaterThan:
		n, ok := asNumber(v)
		return ok && n > c.Threshold
	case OpLessThan:
		n, ok := asNumber(v)
		return ok && n < c.Threshold
	case OpOneOf:
		s, ok := v.(string)
		if !ok {
			return false
		}
		for _, candidate := range c.Values {
			if s == candidate {
				return true
			}
		}
	}
	return false
}

// safeGet walks a dotted path through nested JSON-style maps. Any missing key
// or non-object intermediate yields nil.
func safeGet(data map[string]any, path string) any {
	var current any = data
	for _, key := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = m[key]
		if !ok {
			return nil
		}
	}
	return current
}

// asNumber normalizes the numeric representations a JSON payload can arrive
// with. Unmarshalled bags carry float64; hand-built test bags may carry ints;
// streaming decoders may carry json.Number.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
