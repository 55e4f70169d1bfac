package secrets

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Secret names resolved at startup
const (
	BotTokenName      = "TELEGRAM_BOT_TOKEN"
	TranscriptionName = "OPENAI_API_KEY"
)

// File naming
const (
	FactFileSuffix = ".txt"
	DotEnvFileName = ".env"
)

// Token shape constraints
const (
	tokenSeparator = ":"
	minTokenSuffix = 10
)

// Resolve looks up a named secret in order: process environment, a
// "<NAME>.txt" file in the working directory, the same file next to the
// executable, a .env file in the working directory, and a .env file next to
// the executable. The first hit wins. Malformed or unreadable files are
// skipped, not reported. Returns "" when nothing matches.
func Resolve(name string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}

	cwd, _ := os.Getwd()
	exeDir := executableDir()

	for _, dir := range []string{cwd, exeDir} {
		if dir == "" {
			continue
		}
		if v := readFactFile(filepath.Join(dir, name+FactFileSuffix), name); v != "" {
			return v
		}
	}
	for _, dir := range []string{cwd, exeDir} {
		if dir == "" {
			continue
		}
		if v := readDotEnv(filepath.Join(dir, DotEnvFileName), name); v != "" {
			return v
		}
	}
	return ""
}

// ValidBotToken checks the Telegram token shape: "<digits>:<suffix>" with a
// suffix of at least 10 characters.
func ValidBotToken(token string) bool {
	token = strings.TrimSpace(token)
	id, rest, found := strings.Cut(token, tokenSeparator)
	if !found || id == "" || len(rest) < minTokenSuffix {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// readFactFile reads a single-secret file. The file holds either the bare
// value or a "KEY=value" line whose key matches the requested name
// case-insensitively. Quotes around the value are stripped.
func readFactFile(path, name string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	s := strings.TrimSpace(string(data))
	if s == "" {
		return ""
	}
	if key, value, found := strings.Cut(s, "="); found {
		if !strings.EqualFold(strings.TrimSpace(key), name) {
			return ""
		}
		return unquote(value)
	}
	return s
}

// readDotEnv reads one key out of a dotenv file, tolerating parse failures.
func readDotEnv(path, name string) string {
	vars, err := godotenv.Read(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(vars[name])
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	s = strings.Trim(s, `'`)
	return strings.TrimSpace(s)
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(exe)
}
