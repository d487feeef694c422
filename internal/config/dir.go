// Package config resolves visailu settings from config files and the environment.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the configuration directory and the env variable prefix.
const AppName = "visailu"

// Dir returns the visailu configuration directory.
//
// Resolution:
//   - $VISAILU_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/visailu if set (respects XDG on any platform)
//   - %AppData%/visailu on Windows
//   - ~/.config/visailu on macOS and Linux
func Dir() string {
	if dir := os.Getenv(EnvPrefix + "CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}
