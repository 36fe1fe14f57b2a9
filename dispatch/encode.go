package dispatch

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Encode renders a handler result as caller-safe text. The calling
// agent only consumes text, so structured values are flattened
// deterministically: lists become newline-joined entries and mappings
// become "key: value" lines in sorted key order.
func Encode(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case []string:
		return strings.Join(v, "\n"), nil
	case []any:
		lines := make([]string, 0, len(v))
		for _, elem := range v {
			s, err := Encode(elem)
			if err != nil {
				return "", err
			}
			lines = append(lines, s)
		}
		return strings.Join(lines, "\n"), nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		lines := make([]string, 0, len(keys))
		for _, k := range keys {
			s, err := Encode(v[k])
			if err != nil {
				return "", err
			}
			lines = append(lines, k+": "+s)
		}
		return strings.Join(lines, "\n"), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("cannot encode result of type %T", value)
	}
}
