// Package docs registers the OpenAPI (swagger 2.0) document for the service with swag.
//
// Regenerate after changing handler annotations with:
//
//	swag init -g cmd/cicd-demo/main.go -o internal/docs --outputTypes go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Returns the service name, version, environment and the paths of the other endpoints.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Common"
                ],
                "summary": "Service information",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.InfoResponse"
                        }
                    }
                }
            }
        },
        "/api-docs": {
            "get": {
                "description": "Returns this OpenAPI document.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Common"
                ],
                "summary": "OpenAPI document",
                "responses": {
                    "200": {
                        "description": "swagger 2.0 document",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Returns the service status, the id of the responding instance and its uptime.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Service status",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/health.StatusResponse"
                        }
                    }
                }
            }
        },
        "/health/live": {
            "get": {
                "description": "Check if the HTTP service is alive and responding.",
                "produces": [
                    "text/plain"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Health (liveness) Check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/health/ready": {
            "get": {
                "description": "Checks if the service is ready to accept traffic",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Readiness Check",
                "responses": {
                    "200": {
                        "description": "status ready",
                        "schema": {
                            "$ref": "#/definitions/health.ReadinessResponse"
                        }
                    },
                    "503": {
                        "description": "status not ready",
                        "schema": {
                            "$ref": "#/definitions/health.ReadinessResponse"
                        }
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the version and build information for the service",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Common"
                ],
                "summary": "Get version information",
                "responses": {
                    "200": {
                        "description": "Version information",
                        "schema": {
                            "$ref": "#/definitions/api.VersionResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "api.Endpoints": {
            "type": "object",
            "properties": {
                "docs": {
                    "type": "string",
                    "example": "/api-docs"
                },
                "health": {
                    "type": "string",
                    "example": "/health"
                }
            }
        },
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "Route not found"
                }
            }
        },
        "api.InfoResponse": {
            "type": "object",
            "properties": {
                "endpoints": {
                    "$ref": "#/definitions/api.Endpoints"
                },
                "environment": {
                    "type": "string",
                    "example": "development"
                },
                "message": {
                    "type": "string",
                    "example": "🚀 CI/CD Demo Application"
                },
                "timestamp": {
                    "type": "string",
                    "example": "2024-01-28T10:00:00.000Z"
                },
                "version": {
                    "type": "string",
                    "example": "1.0.0"
                }
            }
        },
        "api.VersionResponse": {
            "type": "object",
            "properties": {
                "build_date": {
                    "type": "string",
                    "example": "2024-01-28T10:00:00Z"
                },
                "git_commit": {
                    "type": "string",
                    "example": "4f2c1a9"
                },
                "service": {
                    "type": "string",
                    "example": "cicd-demo"
                },
                "version": {
                    "type": "string",
                    "example": "1.0.0"
                }
            }
        },
        "health.ReadinessResponse": {
            "type": "object",
            "properties": {
                "checks": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "status": {
                    "type": "string",
                    "example": "ready"
                }
            }
        },
        "health.StatusResponse": {
            "type": "object",
            "properties": {
                "instance_id": {
                    "type": "string",
                    "example": "0b6f3c1e-8d1f-4a39-9a0e-5b0f6f0c2d7a"
                },
                "status": {
                    "type": "string",
                    "example": "healthy"
                },
                "timestamp": {
                    "type": "string",
                    "example": "2024-01-28T10:00:00Z"
                },
                "uptime_seconds": {
                    "type": "integer",
                    "example": 3600
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "cicd-demo",
	Description:      "cicd-demo is a minimal HTTP service exposing service information and health checks.\nAll error responses have the form {\"error\": \"message\"}.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
