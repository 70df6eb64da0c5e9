package trace

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber prints v in its shortest exact form: 3 not 3.0, 2.5 as 2.5,
// and "∞" for +Inf.
func FormatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// JoinLabels renders ids as "a → b → c" using label to resolve each id.
func JoinLabels(ids []string, label func(string) string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = label(id)
	}

	return strings.Join(parts, " → ")
}
