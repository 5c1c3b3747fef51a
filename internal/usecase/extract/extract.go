package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/pizzadough/internal/domain"
)

// Field selects one value from a JSON document with a JSONPath expression and
// returns it as plain text. Scalars print as-is; objects and multi-element
// arrays print as compact JSON.
func Field(doc []byte, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", fieldErr(expr, fmt.Errorf("empty jsonpath expression"))
	}

	v, err := parseJSON(doc)
	if err != nil {
		return "", fieldErr(expr, fmt.Errorf("document is not valid JSON: %w", err))
	}

	val, err := jsonpath.Get(expr, v)
	if err != nil {
		return "", fieldErr(expr, fmt.Errorf("jsonpath error: %w", err))
	}
	if isEmptyValue(val) {
		return "", fieldErr(expr, fmt.Errorf("no value found"))
	}

	s, err := toString(val)
	if err != nil {
		return "", fieldErr(expr, fmt.Errorf("cannot convert value to string: %w", err))
	}
	return s, nil
}

// Fields applies Field to each expression in order and stops at the first
// failure.
func Fields(doc []byte, exprs []string) ([]string, error) {
	out := make([]string, 0, len(exprs))
	for _, e := range exprs {
		s, err := Field(doc, e)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func fieldErr(expr string, err error) error {
	return &domain.OpError{
		Op:   "extract.field",
		Kind: domain.KindInvalidParams,
		Err:  fmt.Errorf("%q: %w", expr, err),
	}
}

func parseJSON(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// jsonpath returns a slice for wildcard and filter selections
	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return "", fmt.Errorf("empty array")
		}
		if len(arr) == 1 {
			return toString(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool, int, int64, uint64:
		return fmt.Sprint(t), nil
	case map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}
