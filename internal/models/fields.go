package models

// Helpers for pulling typed fields out of a parsed JSON body. JSON objects
// arrive as map[string]interface{}, so numbers are float64 and everything
// else needs a type check before use.

func requiredString(data map[string]interface{}, entity, key string) (string, error) {
	raw, ok := data[key]
	if !ok {
		return "", NewValidationError("Invalid %s: missing %s", entity, key)
	}
	value, ok := raw.(string)
	if !ok {
		return "", NewValidationError("Invalid %s: field %s must be a string", entity, key)
	}
	if value == "" {
		return "", NewValidationError("Invalid %s: field %s must not be empty", entity, key)
	}
	return value, nil
}

func optionalString(data map[string]interface{}, entity, key string) (string, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return "", nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", NewValidationError("Invalid %s: field %s must be a string", entity, key)
	}
	return value, nil
}

func numericField(data map[string]interface{}, entity, key string) (float64, error) {
	raw, ok := data[key]
	if !ok {
		return 0, NewValidationError("Invalid %s: missing %s", entity, key)
	}
	switch value := raw.(type) {
	case float64:
		return value, nil
	case int:
		return float64(value), nil
	default:
		return 0, NewValidationError("Invalid %s: invalid type for numeric field %s: %T", entity, key, raw)
	}
}
