// Package adkconfig extracts ADK configuration signals from a project:
// API key setup, Vertex AI settings, MCP server configuration and pinned
// ADK versions. It is independent of project classification and is
// typically invoked afterwards to enrich a detected project.
package adkconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/arkaft/adk-agents/internal/manifest"
)

// ConfigType categorizes a configuration file by its role.
type ConfigType string

const (
	Environment  ConfigType = "environment"
	CargoToml    ConfigType = "cargo"
	Requirements ConfigType = "requirements"
	PythonBuild  ConfigType = "python-build"
	JSON         ConfigType = "json"
	YAML         ConfigType = "yaml"
	TOML         ConfigType = "toml"
	McpConfig    ConfigType = "mcp"
	Unknown      ConfigType = "unknown"
)

// ConfigFile describes one analyzed configuration file.
type ConfigFile struct {
	Path                string
	Type                ConfigType
	ContainsAdkSettings bool
	DetectedSettings    []string
}

// ConfigInfo is the aggregate configuration picture for one project root.
type ConfigInfo struct {
	Files               []ConfigFile
	HasAdkConfig        bool
	AdkVersion          string
	GoogleAPIConfigured bool
	VertexAIConfigured  bool
	McpServerConfigured bool
	EnvVars             map[string]string
}

// Environment variables recognized as ADK-related. Only these are
// extracted from .env files; anything else a project keeps there stays
// private to it.
var adkEnvVars = []string{
	"GOOGLE_API_KEY",
	"GOOGLE_APPLICATION_CREDENTIALS",
	"GOOGLE_GENAI_USE_VERTEXAI",
	"VERTEXAI_PROJECT",
	"VERTEXAI_LOCATION",
	"ADK_VERSION",
	"ADK_DOCS_VERSION",
	"RUST_LOG",
}

var adkConfigKeys = []string{
	"google-adk",
	"google-genai",
	"vertexai",
	"adk-core",
	"adk-runtime",
	"rmcp",
	"arkaft-mcp-google-adk",
}

var googleAPIPatterns = []string{
	"GOOGLE_API_KEY",
	"google_api_key",
	"googleApiKey",
	"GOOGLE_APPLICATION_CREDENTIALS",
	"google-cloud",
}

var vertexAIPatterns = []string{
	"VERTEXAI",
	"vertex_ai",
	"vertexAi",
	"GOOGLE_GENAI_USE_VERTEXAI",
	"vertex-ai",
}

// Filenames probed at the project root.
var configFileNames = []string{
	".env",
	".env.template",
	".env.local",
	".env.production",
	".env.development",
	"Cargo.toml",
	"requirements.txt",
	"setup.py",
	"pyproject.toml",
	"config.json",
	"config.yaml",
	"config.yml",
	"config.toml",
	"adk.toml",
	"adk-config.json",
	"vertex-config.json",
	"google-cloud-config.json",
	"mcp.json",
	filepath.Join(".kiro", "settings", "mcp.json"),
}

// Subdirectories also searched for config-looking files.
var configSubdirs = []string{
	"src",
	"config",
	filepath.Join(".kiro", "settings"),
}

// Detector extracts configuration signals from a project directory.
type Detector struct{}

// NewDetector returns a config Detector with the built-in signal sets.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectConfig analyzes every recognized configuration file under root
// and returns the aggregate picture. It fails only when root itself is
// unreadable; individual missing files are simply not part of the result.
func (d *Detector) DetectConfig(root string) (ConfigInfo, error) {
	if _, err := os.Stat(root); err != nil {
		return ConfigInfo{}, fmt.Errorf("detecting config in %s: %w", root, err)
	}

	info := ConfigInfo{EnvVars: map[string]string{}}

	for _, path := range findConfigFiles(root) {
		file, err := d.analyzeFile(path)
		if err != nil {
			continue
		}

		if file.ContainsAdkSettings {
			info.HasAdkConfig = true
			d.extractDetails(path, file, &info)
		}

		info.Files = append(info.Files, file)
	}

	return info, nil
}

func findConfigFiles(root string) []string {
	var files []string
	seen := map[string]struct{}{}

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, name := range configFileNames {
		add(filepath.Join(root, name))
	}

	for _, subdir := range configSubdirs {
		entries, err := os.ReadDir(filepath.Join(root, subdir))
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if !entry.IsDir() && isConfigName(entry.Name()) {
				add(filepath.Join(root, subdir, entry.Name()))
			}
		}
	}

	return files
}

// isConfigName reports whether a filename looks like configuration,
// either by extension or by a recognizable name fragment.
func isConfigName(name string) bool {
	switch strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".") {
	case "json", "yaml", "yml", "toml", "env":
		return true
	}

	lower := strings.ToLower(name)
	for _, fragment := range []string{"config", "settings", "adk", "vertex", "google"} {
		if strings.Contains(lower, fragment) {
			return true
		}
	}

	return false
}

func (d *Detector) analyzeFile(path string) (ConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ConfigFile{}, err
	}

	file := ConfigFile{Path: path, Type: typeOf(path)}
	content := string(data)

	tag := func(prefix, value string) {
		file.DetectedSettings = append(file.DetectedSettings, prefix+":"+value)
		file.ContainsAdkSettings = true
	}

	for _, envVar := range adkEnvVars {
		if strings.Contains(content, envVar) {
			tag("env", envVar)
		}
	}
	for _, key := range adkConfigKeys {
		if strings.Contains(content, key) {
			tag("key", key)
		}
	}
	for _, pattern := range googleAPIPatterns {
		if strings.Contains(content, pattern) {
			tag("google", pattern)
		}
	}
	for _, pattern := range vertexAIPatterns {
		if strings.Contains(content, pattern) {
			tag("vertex", pattern)
		}
	}

	// YAML configs often hold the markers as keys rather than raw text,
	// so match against the flattened key set as well.
	if file.Type == YAML && !file.ContainsAdkSettings {
		for _, key := range yamlKeys(data) {
			for _, configKey := range adkConfigKeys {
				if key == configKey {
					tag("key", configKey)
				}
			}
		}
	}

	return file, nil
}

func typeOf(path string) ConfigType {
	switch name := filepath.Base(path); name {
	case "Cargo.toml":
		return CargoToml
	case "requirements.txt":
		return Requirements
	case "setup.py", "pyproject.toml":
		return PythonBuild
	case "mcp.json":
		return McpConfig
	default:
		if strings.HasPrefix(name, ".env") {
			return Environment
		}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	case ".toml":
		return TOML
	default:
		return Unknown
	}
}

func (d *Detector) extractDetails(path string, file ConfigFile, info *ConfigInfo) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	content := string(data)

	if info.AdkVersion == "" {
		info.AdkVersion = extractVersion(path, file.Type)
	}

	for _, pattern := range googleAPIPatterns {
		if strings.Contains(content, pattern) {
			info.GoogleAPIConfigured = true
			break
		}
	}

	for _, pattern := range vertexAIPatterns {
		if strings.Contains(content, pattern) {
			info.VertexAIConfigured = true
			break
		}
	}

	switch {
	case gjson.ValidBytes(data) && gjson.GetBytes(data, "mcpServers").Exists(),
		strings.Contains(content, "rmcp"),
		strings.Contains(content, "arkaft-mcp-google-adk"):
		info.McpServerConfigured = true
	}

	if file.Type == Environment {
		if env, err := godotenv.UnmarshalBytes(data); err == nil {
			for _, known := range adkEnvVars {
				if value, ok := env[known]; ok {
					info.EnvVars[known] = value
				}
			}
		}
	}
}

// extractVersion pulls a pinned ADK version out of a manifest-like
// config file. Only Cargo manifests carry one today.
func extractVersion(path string, configType ConfigType) string {
	if configType != CargoToml {
		return ""
	}

	cargo, err := manifest.ReadCargo(path)
	if err != nil {
		return ""
	}

	for _, crate := range []string{"google-adk", "adk-core"} {
		if version, ok := cargo.Dependency(crate); ok && version != "" {
			return strings.TrimLeft(version, "^~= ")
		}
	}

	return ""
}

// yamlKeys flattens the key set of a YAML document, one level deep per
// nesting, ignoring unparseable input.
func yamlKeys(data []byte) []string {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil
	}

	var keys []string
	var collect func(m map[string]any)
	collect = func(m map[string]any) {
		for key, value := range m {
			keys = append(keys, key)
			if nested, ok := value.(map[string]any); ok {
				collect(nested)
			}
		}
	}
	collect(doc)

	return keys
}
