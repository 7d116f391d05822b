package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent returns the defaults file with every value commented
// out, ready to be saved as a starting point.
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// commentOutConfigValues comments out every assignment line, keeping blank
// lines, comments and section headers.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}

// Marshal renders a configuration as TOML
func Marshal(cfg *Config) (string, error) {
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
