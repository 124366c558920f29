package accountapi

import (
	"fmt"
	"strconv"
)

// idString renders a user id that may arrive as a JSON string or number.
func idString(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return fmt.Sprint(id)
	}
}
