package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvLoader loads settings from environment variables carrying a prefix.
// RICHCURSOR_CURSOR_CARD_BOUNDARY_REPAIR=false sets
// cursor.cardBoundaryRepair: the first word after the prefix is the
// section and the rest is the setting name in camelCase.
type EnvLoader struct {
	prefix  string
	mapping map[string]string
	environ func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix, which
// should include the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: map[string]string{prefix + "LOG_LEVEL": "logging.level"},
		environ: os.Environ,
	}
}

// AddMapping maps a variable to an explicit setting path.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.mapping[envVar] = configPath
}

// Load implements Loader.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		p, mapped := l.mapping[name]
		if !mapped {
			p = l.envToPath(name)
		}
		if p == "" {
			continue
		}
		SetPath(config, p, parseValue(value))
	}
	return config, nil
}

func (l *EnvLoader) envToPath(env string) string {
	parts := strings.Split(strings.TrimPrefix(env, l.prefix), "_")
	if len(parts) < 2 || parts[0] == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(parts[0]))
	b.WriteByte('.')
	b.WriteString(strings.ToLower(parts[1]))
	for _, part := range parts[2:] {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}

// parseValue converts booleans and integers; everything else stays a string.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}
