package lib

import "fmt"
import "sort"
import "strings"

// Settings map of settings parameters. Keys are dotted names, like
// "log.level", grouping parameters into sections.
type Settings map[string]interface{}

// Section will create a new settings object with parameters
// starting with `prefix`.
func (setts Settings) Section(prefix string) Settings {
	section := make(Settings)
	for key, value := range setts {
		if strings.HasPrefix(key, prefix) {
			section[key] = value
		}
	}
	return section
}

// Trim settings parameter with `prefix` string.
func (setts Settings) Trim(prefix string) Settings {
	trimmed := make(Settings)
	for key, value := range setts {
		trimmed[strings.TrimPrefix(key, prefix)] = value
	}
	return trimmed
}

// AddPrefix to all settings parameters.
func (setts Settings) AddPrefix(prefix string) Settings {
	prefixed := make(Settings)
	for key, value := range setts {
		prefixed[prefix+key] = value
	}
	return prefixed
}

// Mixin settings to override `setts` with `settings`, later arguments
// take priority. Accepts Settings and map[string]interface{}, nil
// arguments are skipped.
func (setts Settings) Mixin(settings ...interface{}) Settings {
	update := func(arg map[string]interface{}) {
		for key, value := range arg {
			setts[key] = value
		}
	}
	for _, arg := range settings {
		switch cnf := arg.(type) {
		case Settings:
			update(map[string]interface{}(cnf))
		case map[string]interface{}:
			update(cnf)
		}
	}
	return setts
}

// Flatten nested maps, as decoded from configuration files, into
// dotted parameter names. {"log": {"level": "info"}} becomes
// {"log.level": "info"}.
func Flatten(nested map[string]interface{}) Settings {
	setts := make(Settings)
	var walk func(prefix string, m map[string]interface{})
	walk = func(prefix string, m map[string]interface{}) {
		for key, value := range m {
			if sub, ok := value.(map[string]interface{}); ok {
				walk(prefix+key+".", sub)
				continue
			}
			setts[prefix+key] = value
		}
	}
	walk("", nested)
	return setts
}

// Keys return sorted list of parameter names.
func (setts Settings) Keys() []string {
	keys := make([]string, 0, len(setts))
	for key := range setts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Bool return the boolean value for key.
func (setts Settings) Bool(key string) bool {
	value := setts.lookup(key)
	val, ok := value.(bool)
	if !ok {
		panicerr("settings %q not a bool: %T", key, value)
	}
	return val
}

// Int64 return the int64 value for key.
func (setts Settings) Int64(key string) int64 {
	switch val := setts.number(key).(type) {
	case int64:
		return val
	case uint64:
		return int64(val)
	default:
		return int64(val.(float64))
	}
}

// Float64 return the float64 value for key.
func (setts Settings) Float64(key string) float64 {
	switch val := setts.number(key).(type) {
	case int64:
		return float64(val)
	case uint64:
		return float64(val)
	default:
		return val.(float64)
	}
}

// String return the string value for key.
func (setts Settings) String(key string) string {
	value := setts.lookup(key)
	val, ok := value.(string)
	if !ok {
		panicerr("settings %q not a string: %T", key, value)
	}
	return val
}

func (setts Settings) lookup(key string) interface{} {
	value, ok := setts[key]
	if !ok {
		panicerr("missing settings %q", key)
	}
	return value
}

// number normalize any numeric setting to int64, uint64 or float64.
func (setts Settings) number(key string) interface{} {
	switch val := setts.lookup(key).(type) {
	case int:
		return int64(val)
	case int8:
		return int64(val)
	case int16:
		return int64(val)
	case int32:
		return int64(val)
	case int64:
		return val
	case uint:
		return uint64(val)
	case uint8:
		return uint64(val)
	case uint16:
		return uint64(val)
	case uint32:
		return uint64(val)
	case uint64:
		return val
	case float32:
		return float64(val)
	case float64:
		return val
	default:
		panicerr("settings %q not a number: %T", key, val)
	}
	panic("unreachable code")
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}
