package api

// InfoResponse is returned by the root endpoint
type InfoResponse struct {
	Message     string    `json:"message" example:"🚀 CI/CD Demo Application"`
	Version     string    `json:"version" example:"1.0.0"`
	Environment string    `json:"environment" example:"development"`
	Timestamp   string    `json:"timestamp" example:"2024-01-28T10:00:00.000Z"`
	Endpoints   Endpoints `json:"endpoints"`
}

// Endpoints lists the paths of the other public endpoints
type Endpoints struct {
	Health string `json:"health" example:"/health"`
	Docs   string `json:"docs" example:"/api-docs"`
}

// VersionResponse is returned by the version endpoint
type VersionResponse struct {
	Version   string `json:"version" example:"1.0.0"`
	BuildDate string `json:"build_date" example:"2024-01-28T10:00:00Z"`
	GitCommit string `json:"git_commit" example:"4f2c1a9"`
	Service   string `json:"service" example:"cicd-demo"`
}
