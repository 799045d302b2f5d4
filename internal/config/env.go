package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/v2"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

// source is the merged file + environment view. Lookups treat blank values as unset
// and fall back to the default on anything unparseable.
type source struct {
	k *koanf.Koanf
}

func (s source) raw(key string) string {
	v := s.k.Get(key)
	if v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

func (s source) stringOrDefault(key, defaultValue string) string {
	val := s.raw(key)
	if val != "" {
		return val
	}
	return defaultValue
}

func (s source) durationOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := s.raw(key)
	if raw == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func (s source) intOrDefault(key string, defaultValue int) int {
	raw := s.raw(key)
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

func (s source) boolOrDefault(key string, defaultValue bool) bool {
	raw := s.raw(key)
	if raw == "" {
		return defaultValue
	}
	if raw == "1" || strings.EqualFold(raw, "true") || strings.EqualFold(raw, "yes") {
		return true
	}
	if raw == "0" || strings.EqualFold(raw, "false") || strings.EqualFold(raw, "no") {
		return false
	}
	return defaultValue
}

// listOrDefault accepts a YAML list or a comma separated string.
func (s source) listOrDefault(key string, defaultValue []string) []string {
	var items []string
	switch v := s.k.Get(key).(type) {
	case []any:
		for _, item := range v {
			items = append(items, fmt.Sprint(item))
		}
	case string:
		items = strings.Split(v, ",")
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
