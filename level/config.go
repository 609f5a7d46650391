package level

// ParseConfig reads a platformer challenge's opaque config map into a
// Config. Unknown keys are ignored; malformed values fall back to the
// zero value so Generate resolves them to defaults.
//
// Recognized keys: obstacles, speed, obstacleTypes, levelLength, theme.
func ParseConfig(raw map[string]any) Config {
	cfg := Config{}
	if raw == nil {
		return cfg
	}
	cfg.Obstacles = asInt(raw["obstacles"])
	cfg.Speed = asFloat(raw["speed"])
	cfg.Length = asFloat(raw["levelLength"])
	if s, ok := raw["theme"].(string); ok {
		cfg.Theme = s
	}
	cfg.ObstacleTypes = asStrings(raw["obstacleTypes"])
	return cfg
}

// asInt accepts the numeric types JSON and YAML decoders produce
func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case float32:
		return int(n)
	}
	return 0
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

func asStrings(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
	return nil
}
