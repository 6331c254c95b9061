package adkconfig

// Validate checks a detected configuration for gaps and returns one
// human-readable issue per problem found. An empty slice means the
// configuration looks complete.
func (d *Detector) Validate(info ConfigInfo) []string {
	var issues []string

	if !info.HasAdkConfig {
		return []string{"No ADK configuration detected"}
	}

	if !info.GoogleAPIConfigured && !info.VertexAIConfigured {
		issues = append(issues, "Neither Google API nor Vertex AI is configured")
	}

	hasEnvFile := false
	for _, file := range info.Files {
		if file.Type == Environment {
			hasEnvFile = true
			break
		}
	}
	if !hasEnvFile {
		issues = append(issues, "No .env file found for environment configuration")
	}

	if info.GoogleAPIConfigured {
		if _, ok := info.EnvVars["GOOGLE_API_KEY"]; !ok {
			issues = append(issues, "GOOGLE_API_KEY not found in environment variables")
		}
	}

	return issues
}

// Recommendations returns advisory strings for improving a project's ADK
// configuration.
func (d *Detector) Recommendations(info ConfigInfo) []string {
	var recommendations []string

	if !info.HasAdkConfig {
		return []string{
			"Add ADK dependencies to your project configuration",
			"Create a .env file for API key configuration",
		}
	}

	if !info.McpServerConfigured {
		recommendations = append(recommendations,
			"Consider setting up an ADK MCP server for enhanced tooling support")
	}

	if info.GoogleAPIConfigured && !info.VertexAIConfigured {
		recommendations = append(recommendations,
			"Consider using Vertex AI for production deployments")
	}

	if info.AdkVersion == "" {
		recommendations = append(recommendations,
			"Pin ADK dependency versions for reproducible builds")
	}

	return recommendations
}
