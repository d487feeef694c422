package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix prefixes every environment override, e.g. VISAILU_BUILD_DIR.
const EnvPrefix = "VISAILU_"

// File names searched for settings.
const (
	FileName      = "config.toml"
	LocalFileName = ".visailu.toml"
)

// DefaultBuildDir is where published quizzes go unless configured otherwise.
const DefaultBuildDir = "build"

// Settings holds the effective configuration.
// Zero Questions or Answers means the nominal export shape.
// Verbose and Strict both override Quiet, as their command flags do.
type Settings struct {
	BuildDir  string `toml:"build_dir"`
	Questions int    `toml:"questions"`
	Answers   int    `toml:"answers"`
	Quiet     bool   `toml:"quiet"`
	Verbose   bool   `toml:"verbose"`
	Strict    bool   `toml:"strict"`
}

// fileSettings mirrors Settings with pointers so absent keys keep earlier values.
type fileSettings struct {
	BuildDir  *string `toml:"build_dir"`
	Questions *int    `toml:"questions"`
	Answers   *int    `toml:"answers"`
	Quiet     *bool   `toml:"quiet"`
	Verbose   *bool   `toml:"verbose"`
	Strict    *bool   `toml:"strict"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{BuildDir: DefaultBuildDir}
}

// Load resolves settings in increasing priority:
//  1. built-in defaults
//  2. <Dir()>/config.toml (global)
//  3. <workDir>/.visailu.toml (per project)
//  4. VISAILU_* environment variables, falling back to the same keys in
//     .env.local, .env (both in workDir) and <Dir()>/env
//
// Missing files are skipped. Unknown keys and malformed TOML are errors.
func Load(workDir string) (Settings, error) {
	settings := Defaults()

	var paths []string
	if dir := Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, FileName))
	}
	paths = append(paths, filepath.Join(workDir, LocalFileName))

	for _, path := range paths {
		if err := settings.mergeFile(path); err != nil {
			return Settings{}, err
		}
	}

	env, err := layeredEnv(workDir)
	if err != nil {
		return Settings{}, err
	}
	if err := settings.applyEnv(env); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Silenced reports whether advisories are suppressed, given the command's
// --verbose and --strict flags.
func (s Settings) Silenced(verbose, strict bool) bool {
	return s.Quiet && !verbose && !strict && !s.Verbose && !s.Strict
}

// mergeFile overlays the keys present in the TOML file at path.
func (s *Settings) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	var overlay fileSettings
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&overlay); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	if overlay.BuildDir != nil {
		s.BuildDir = *overlay.BuildDir
	}
	if overlay.Questions != nil {
		s.Questions = *overlay.Questions
	}
	if overlay.Answers != nil {
		s.Answers = *overlay.Answers
	}
	if overlay.Quiet != nil {
		s.Quiet = *overlay.Quiet
	}
	if overlay.Verbose != nil {
		s.Verbose = *overlay.Verbose
	}
	if overlay.Strict != nil {
		s.Strict = *overlay.Strict
	}
	return s.check(path)
}

// applyEnv overlays VISAILU_* environment variables.
// VISAILU_DEBUG is accepted as an alias for VISAILU_VERBOSE.
func (s *Settings) applyEnv(env environ) error {
	if dir := env(EnvPrefix + "BUILD_DIR"); dir != "" {
		s.BuildDir = dir
	}
	for _, name := range []string{"QUESTIONS", "ANSWERS"} {
		raw := env(EnvPrefix + name)
		if raw == "" {
			continue
		}
		count, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s%s must be an integer: %q", EnvPrefix, name, raw)
		}
		if name == "QUESTIONS" {
			s.Questions = count
		} else {
			s.Answers = count
		}
	}
	if val, ok := envFlag(env, "QUIET"); ok {
		s.Quiet = val
	}
	if val, ok := envFlag(env, "DEBUG"); ok {
		s.Verbose = val
	}
	if val, ok := envFlag(env, "VERBOSE"); ok {
		s.Verbose = val
	}
	if val, ok := envFlag(env, "STRICT"); ok {
		s.Strict = val
	}
	return s.check("environment")
}

func (s *Settings) check(source string) error {
	if s.Questions < 0 || s.Answers < 0 {
		return fmt.Errorf("%s: questions and answers must not be negative", source)
	}
	if s.BuildDir == "" {
		return fmt.Errorf("%s: build_dir must not be empty", source)
	}
	return nil
}

// envFlag reads a boolean override. Values strconv.ParseBool does not
// understand count as set, so VISAILU_VERBOSE=yes enables verbose output.
func envFlag(env environ, name string) (value, ok bool) {
	raw := env(EnvPrefix + name)
	if raw == "" {
		return false, false
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return true, true
	}
	return parsed, true
}
