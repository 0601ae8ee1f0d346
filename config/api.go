package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Read-only GraphQL and health checks are public
	return []string{"/health", "/graphql", "/playground"}
}
