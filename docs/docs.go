// Package docs registers the OpenAPI document served at /swagger/.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/auth/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign up a new band with an invitation token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.SignUpRequest"}}],
                "responses": {
                    "201": {"description": "user, band, and token"},
                    "400": {"description": "bad request"},
                    "409": {"description": "band name taken"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in with email and password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.LoginRequest"}}],
                "responses": {
                    "200": {"description": "token and user"},
                    "401": {"description": "invalid credentials"}
                }
            }
        },
        "/portal": {
            "get": {
                "tags": ["portal"],
                "summary": "Load the portal snapshot for the authenticated band",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "portal snapshot"},
                    "401": {"description": "unauthorized"}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["events"],
                "summary": "List events visible to the authenticated band",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "events"},
                    "401": {"description": "unauthorized"}
                }
            },
            "post": {
                "tags": ["events"],
                "summary": "Create a pending event for the authenticated band",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateEventRequest"}}],
                "responses": {
                    "201": {"description": "created event"},
                    "400": {"description": "bad request"}
                }
            }
        },
        "/bookings": {
            "get": {
                "tags": ["bookings"],
                "summary": "List the authenticated band's booking applications",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "bookings"},
                    "401": {"description": "unauthorized"}
                }
            },
            "post": {
                "tags": ["bookings"],
                "summary": "Apply to perform at an event",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.ApplyBookingRequest"}}],
                "responses": {
                    "201": {"description": "created booking"},
                    "404": {"description": "event not found"},
                    "409": {"description": "already booked or duplicate application"}
                }
            }
        },
        "/invitations": {
            "post": {
                "tags": ["invitations"],
                "summary": "Mint a new single-use invitation token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.MintInvitationRequest"}}],
                "responses": {
                    "201": {"description": "unclaimed invitation"},
                    "400": {"description": "bad request"}
                }
            }
        }
    },
    "definitions": {
        "controllers.SignUpRequest": {
            "type": "object",
            "properties": {
                "invite_token": {"type": "string"},
                "band_name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "controllers.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "controllers.CreateEventRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "date": {"type": "string"},
                "start_time": {"type": "string"},
                "end_time": {"type": "string"},
                "venue": {"type": "string"}
            }
        },
        "controllers.ApplyBookingRequest": {
            "type": "object",
            "properties": {
                "event_id": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "controllers.MintInvitationRequest": {
            "type": "object",
            "properties": {
                "ttl_hours": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Band Portal API",
	Description:      "Invitation-gated onboarding and event booking for bands.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
