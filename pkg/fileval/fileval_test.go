package fileval

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestValidateRustFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.rs", `fn main() { println!("hello"); }`)

	result, err := Default().Validate(path)
	require.NoError(t, err)

	require.True(t, result.IsValid)
	require.Equal(t, Rust, result.Type)
	require.Greater(t, result.Size, int64(0))
	require.Empty(t, result.Reason)
}

func TestValidateTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "big.rs", strings.Repeat("x", 2048))

	cfg := DefaultConfig()
	cfg.MaxFileSize = 1024
	validator, err := New(cfg)
	require.NoError(t, err)

	result, err := validator.Validate(path)
	require.NoError(t, err)
	require.False(t, result.IsValid)
	require.Contains(t, result.Reason, "too large")
}

func TestValidateTooSmall(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.rs", "")

	result, err := Default().Validate(path)
	require.NoError(t, err)
	require.False(t, result.IsValid)
	require.Contains(t, result.Reason, "too small")
}

func TestValidateExcludedPattern(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "target/debug/main.rs", "fn main() {}")

	result, err := Default().Validate(path)
	require.NoError(t, err)
	require.False(t, result.IsValid)
	require.Contains(t, result.Reason, "excluded pattern")
}

func TestValidateDisallowedType(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "binary.exe", "MZ")

	result, err := Default().Validate(path)
	require.NoError(t, err)
	require.False(t, result.IsValid)
	require.Equal(t, "file type not allowed", result.Reason)
}

func TestValidateMissingFile(t *testing.T) {
	result, err := Default().Validate(filepath.Join(t.TempDir(), "absent.rs"))
	require.NoError(t, err)
	require.False(t, result.IsValid)
	require.Equal(t, "file does not exist", result.Reason)
}

func TestValidateDirectory(t *testing.T) {
	result, err := Default().Validate(t.TempDir())
	require.NoError(t, err)
	require.False(t, result.IsValid)
	require.Equal(t, "path is not a file", result.Reason)
}

func TestWellKnownFilesAllowed(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "GOOGLE_API_KEY=abc\n")

	result, err := Default().Validate(path)
	require.NoError(t, err)
	require.True(t, result.IsValid)
	require.Equal(t, Environment, result.Type)
}

func TestTypeOf(t *testing.T) {
	tests := map[string]FileType{
		"main.rs":          Rust,
		"script.py":        Python,
		"types.pyi":        Python,
		"config.toml":      Configuration,
		"values.yaml":      Configuration,
		"README.md":        Documentation,
		"guide.rst":        Documentation,
		"Cargo.toml":       Build,
		"requirements.txt": Build,
		"pyproject.toml":   Build,
		".env":             Environment,
		"binary.exe":       Unknown,
	}

	for name, want := range tests {
		require.Equal(t, want, TypeOf(name), "file: %s", name)
	}
}

func TestCodeReviewPreset(t *testing.T) {
	dir := t.TempDir()
	small := writeFile(t, dir, "small.rs", "fn main() {}")
	large := writeFile(t, dir, "large.rs", strings.Repeat("x", 200*1024))
	config := writeFile(t, dir, "config.toml", "[section]\nkey = 1\n")

	validator := ForCodeReview()

	ok, err := validator.SuitableForReview(small)
	require.NoError(t, err)
	require.True(t, ok)

	// Valid size-wise for the preset ceiling, but too big to review.
	ok, err = validator.SuitableForReview(large)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = validator.SuitableForReview(config)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestConfigFilesPreset(t *testing.T) {
	dir := t.TempDir()
	toml := writeFile(t, dir, "adk.toml", "[adk]\nversion = \"1.0\"\n")
	source := writeFile(t, dir, "main.rs", "fn main() {}")

	validator := ForConfigFiles()

	result, err := validator.Validate(toml)
	require.NoError(t, err)
	require.True(t, result.IsValid)

	result, err = validator.Validate(source)
	require.NoError(t, err)
	require.False(t, result.IsValid)
}

func TestValidateAllFoldsErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "ok.py", "pass")
	missing := filepath.Join(dir, "gone.py")

	results := Default().ValidateAll([]string{good, missing})
	require.Len(t, results, 2)
	require.True(t, results[0].IsValid)
	require.False(t, results[1].IsValid)
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Path: "main.rs", IsValid: true, Size: 1000, Type: Rust},
		{Path: "config.toml", IsValid: true, Size: 500, Type: Configuration},
		{Path: "large.py", IsValid: false, Size: 1_000_000, Type: Python, Reason: "too large"},
	}

	stats := Summarize(results)
	require.Equal(t, 3, stats.TotalFiles)
	require.Equal(t, 2, stats.ValidFiles)
	require.Equal(t, 1, stats.InvalidFiles)
	require.Equal(t, int64(1_001_500), stats.TotalSize)
	require.Equal(t, int64(1500), stats.ValidSize)
	require.Equal(t, 1, stats.ByType[Rust])
	require.Equal(t, 1, stats.ByType[Python])
	require.Equal(t, 1, stats.ByType[Configuration])

	require.InDelta(t, 66.6, stats.ValidPercentage(), 0.1)
	require.Equal(t, int64(333_833), stats.AverageSize())

	require.Len(t, Valid(results), 2)
	require.Len(t, Invalid(results), 1)
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil)
	require.Zero(t, stats.ValidPercentage())
	require.Zero(t, stats.AverageSize())
}

func TestFormatSize(t *testing.T) {
	require.Equal(t, "500 B", FormatSize(500))
	require.Equal(t, "1.5 KiB", FormatSize(1536))
	require.Equal(t, "1.0 MiB", FormatSize(1048576))
}
