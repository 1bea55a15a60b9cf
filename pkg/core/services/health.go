package services

// Version is reported by the health check
const Version = "1.0.0"

// HealthStatus reports service readiness
type HealthStatus struct {
	Status                 string   `json:"status"`
	ModelsLoaded           []string `json:"models_loaded"`
	OptimalSolverAvailable bool     `json:"optimal_solver_available"`
	Version                string   `json:"version"`
}

// Health reports which predictors are loaded and whether the optimal solver can run
func (p *Planner) Health() HealthStatus {
	return HealthStatus{
		Status:                 "healthy",
		ModelsLoaded:           p.predictors.Loaded(),
		OptimalSolverAvailable: p.settings.OptimalEnabled,
		Version:                Version,
	}
}
