package model

// Environment is the deployment profile the service runs under.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// IsProduction reports whether name selects the production profile.
func IsProduction(name string) bool {
	return Environment(name) == EnvironmentProduction
}
