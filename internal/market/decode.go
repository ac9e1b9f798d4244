package market

import "strconv"

// Firestore hands document data back as map[string]interface{} with numbers
// arriving as int64 or float64 depending on how the client wrote them. The
// helpers below normalize that without ever failing a decode.

func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(s, 10)
	default:
		return ""
	}
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asFloatPtr(v interface{}) *float64 {
	if v == nil {
		return nil
	}
	switch v.(type) {
	case float64, int64, int, string:
		f := asFloat(v)
		return &f
	default:
		return nil
	}
}

func asBool(v interface{}) bool {
	b, ok := v.(bool)
	return ok && b
}
