// Package configpaths computes candidate configuration file locations
// for tmwheels.
package configpaths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tmwheels"), nil
}

// ConfigCandidatePaths returns config file candidates per format, in
// priority order. An explicit user path, when given, is dispatched to
// the matching format by extension and tried first.
func ConfigCandidatePaths(userCfg string) (jsonPaths, yamlPaths, tomlPaths []string) {
	if userCfg != "" {
		switch strings.ToLower(filepath.Ext(userCfg)) {
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, userCfg)
		case ".toml":
			tomlPaths = append(tomlPaths, userCfg)
		default:
			jsonPaths = append(jsonPaths, userCfg)
		}
	}

	add := func(dir string) {
		jsonPaths = append(jsonPaths, filepath.Join(dir, "tmwheels.json"))
		yamlPaths = append(yamlPaths, filepath.Join(dir, "tmwheels.yaml"))
		tomlPaths = append(tomlPaths, filepath.Join(dir, "tmwheels.toml"))
	}
	if dir, err := DefaultConfigDir(); err == nil {
		add(dir)
	}
	if runtime.GOOS != "windows" {
		add(string(os.PathSeparator) + filepath.Join("etc", "tmwheels"))
	}
	add(".")
	return jsonPaths, yamlPaths, tomlPaths
}

// EnsureDir creates the parent directory of path if needed.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
