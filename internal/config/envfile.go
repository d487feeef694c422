package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Env file names read for VISAILU_* overrides, most specific first.
var envFileNames = []string{".env.local", ".env"}

// environ looks up an override; empty means unset.
type environ func(key string) string

// layeredEnv returns an environ that consults the process environment,
// then <workDir>/.env.local, <workDir>/.env and <Dir()>/env. Only
// VISAILU_* keys are taken from the files; the process environment is
// never modified.
func layeredEnv(workDir string) (environ, error) {
	var paths []string
	for _, name := range envFileNames {
		paths = append(paths, filepath.Join(workDir, name))
	}
	if dir := Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "env"))
	}

	fromFiles := map[string]string{}
	for _, path := range paths {
		vars, err := readEnvFile(path)
		if err != nil {
			return nil, err
		}
		for key, value := range vars {
			if _, seen := fromFiles[key]; !seen {
				fromFiles[key] = value
			}
		}
	}

	return func(key string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		return fromFiles[key]
	}, nil
}

// readEnvFile parses KEY=VALUE lines with VISAILU_ keys from path.
// A missing file yields no variables.
func readEnvFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only

	vars := map[string]string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := parseEnvLine(line)
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		vars[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return vars, nil
}

// parseEnvLine splits KEY=VALUE, dropping an export prefix and one pair of
// matching quotes around the value.
func parseEnvLine(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", false
	}

	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			value = value[1 : len(value)-1]
		}
	}
	return key, value, true
}
