package domain

import "go.trai.ch/zerr"

// ResolvedConfig is the final launch configuration for one server after
// merging registry defaults with the user override.
type ResolvedConfig struct {
	// Command is the executable looked up on PATH to decide whether the
	// server is installed. Empty means the configuration declares no
	// launch command.
	Command string

	// Config is the merged configuration handed to the activator.
	Config map[string]any
}

// MergeConfig shallow-merges override on top of base into a fresh map.
// Top-level keys from override win; neither input is modified.
func MergeConfig(base, override map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// ExtractCommand pulls the launch executable out of a server configuration.
// The "cmd" entry is either a full argument vector, in which case the first
// element is the executable, or a plain string naming it. Anything else,
// including an empty vector, yields no command.
func ExtractCommand(config map[string]any) (string, bool) {
	v, ok := config["cmd"]
	if !ok {
		return "", false
	}
	switch cmd := v.(type) {
	case string:
		return cmd, cmd != ""
	case []string:
		if len(cmd) == 0 {
			return "", false
		}
		return cmd[0], cmd[0] != ""
	case []any:
		if len(cmd) == 0 {
			return "", false
		}
		first, ok := cmd[0].(string)
		return first, ok && first != ""
	default:
		return "", false
	}
}

// Resolve merges the registry defaults for one server with its user
// override and extracts the launch command. A nil defaults map is treated
// as empty, so servers without a registry definition still resolve when the
// user supplies the full configuration.
func Resolve(id ServerID, defaults map[string]any, override Override) (ResolvedConfig, error) {
	merged := make(map[string]any, len(defaults))
	for k, v := range defaults {
		merged[k] = v
	}
	patch, err := override.apply(merged)
	if err != nil {
		return ResolvedConfig{}, zerr.With(err, "server", id.String())
	}
	for k, v := range patch {
		merged[k] = v
	}
	cmd, _ := ExtractCommand(merged)
	return ResolvedConfig{Command: cmd, Config: merged}, nil
}
