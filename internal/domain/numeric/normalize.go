package numeric

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Normalize converts any persisted numeric representation into a plain float64.
//
// Stored order records mix native numbers, numeric strings (sometimes with
// pt-BR punctuation such as "1.234,56"), json.Number and shopspring decimal
// wrappers, depending on which client wrote them. Normalize is the single seam
// through which all of them pass before any financial arithmetic.
//
// Contract: total function. Missing or unparseable input yields 0; NaN and
// infinities are clamped to 0 so they never propagate into totals.
func Normalize(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return sanitize(n)
	case float32:
		return sanitize(float64(n))
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		return parseString(n)
	case json.Number:
		return parseString(n.String())
	case decimal.Decimal:
		return sanitize(n.InexactFloat64())
	case *decimal.Decimal:
		if n == nil {
			return 0
		}
		return sanitize(n.InexactFloat64())
	case fmt.Stringer:
		return parseString(n.String())
	}
	return 0
}

func parseString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return sanitize(f)
	}

	// pt-BR punctuation: "1.234,56" -> "1234.56", "12,5" -> "12.5".
	if strings.Contains(s, ",") {
		t := strings.ReplaceAll(s, ".", "")
		t = strings.ReplaceAll(t, ",", ".")
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return sanitize(f)
		}
	}
	return 0
}

func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
