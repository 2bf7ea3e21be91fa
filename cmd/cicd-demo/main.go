package main

import "github.com/information-sharing-networks/cicd-demo/internal/cli"

//	@title			cicd-demo
//	@version		1.0.0
//	@description	cicd-demo is a minimal HTTP service exposing service information and health checks.
//	@description	All error responses have the form {"error": "message"}.
//	@license.name	MIT

//	@servers.url			http://localhost:3000
//	@servers.description	Development server

//	@accept		json
//	@produce	json

//	@tag.name			Common
//	@tag.description	Service information endpoints (info, version, api docs)

//	@tag.name			Health
//	@tag.description	Liveness and readiness checks

func main() {
	cli.Execute()
}
