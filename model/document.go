package model

// Document is a flexible map representing a flat record of string and numeric
// values, e.g. {"path": "/a", "title": "Hello", "weight": 3.0}.
// Which key identifies the document is decided by the index settings (IDField).
type Document map[string]interface{}

// StringValue returns the value of the given field if it is stored as a string.
func (d Document) StringValue(field string) (string, bool) {
	if v, ok := d[field]; ok {
		if s, sok := v.(string); sok {
			return s, true
		}
	}
	return "", false
}

// NumberValue returns the value of the given field as a float64 if it is
// stored as a numeric type. JSON unmarshalling yields float64, but documents
// built in Go code may carry int values.
func (d Document) NumberValue(field string) (float64, bool) {
	switch v := d[field].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
