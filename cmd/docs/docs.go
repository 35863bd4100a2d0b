// Package docs registers the OpenAPI description served under /swagger.
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
    "paths": {
        "/users": {
            "post": {
                "tags": ["users"],
                "summary": "Register new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "register", "required": true, "schema": {"$ref": "#/definitions/dto.CreateUserRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "User login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "login", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Show the caller's profile",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/statements/deposit": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["statements"],
                "summary": "Deposit",
                "parameters": [{"in": "body", "name": "statement", "required": true, "schema": {"$ref": "#/definitions/dto.CreateStatementRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.StatementResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/statements/withdraw": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["statements"],
                "summary": "Withdraw",
                "parameters": [{"in": "body", "name": "statement", "required": true, "schema": {"$ref": "#/definitions/dto.CreateStatementRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.StatementResponse"}},
                    "400": {"description": "Insufficient funds or invalid amount", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/statements/balance": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["statements"],
                "summary": "Get balance",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BalanceResponse"}}
                }
            }
        },
        "/statements/{statementID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["statements"],
                "summary": "Get statement",
                "parameters": [{"in": "path", "name": "statementID", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StatementResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/statements/transfers/{toUserID}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["statements"],
                "summary": "Transfer funds",
                "parameters": [
                    {"in": "path", "name": "toUserID", "type": "string", "required": true},
                    {"in": "body", "name": "transfer", "required": true, "schema": {"$ref": "#/definitions/dto.TransferRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Insufficient funds or invalid amount", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Recipient not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CreateUserRequest": {
            "type": "object",
            "required": ["name", "email", "password"],
            "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string", "minLength": 6}}
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {"userID": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"}, "createdAt": {"type": "string"}}
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "expiresAt": {"type": "string"}, "user": {"$ref": "#/definitions/dto.UserResponse"}}
        },
        "dto.CreateStatementRequest": {
            "type": "object",
            "required": ["amount"],
            "properties": {"amount": {"type": "string", "example": "100.00"}, "description": {"type": "string"}}
        },
        "dto.TransferRequest": {
            "type": "object",
            "required": ["amount"],
            "properties": {"amount": {"type": "string", "example": "25.50"}, "description": {"type": "string"}}
        },
        "dto.StatementResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "sender_id": {"type": "string"},
                "type": {"type": "string", "enum": ["deposit", "withdraw", "transfer"]},
                "amount": {"type": "string"},
                "description": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "dto.BalanceResponse": {
            "type": "object",
            "properties": {
                "statement": {"type": "array", "items": {"$ref": "#/definitions/dto.StatementResponse"}},
                "balance": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "retryable": {"type": "boolean"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Fin API",
	Description:      "Personal finance ledger: users, deposits, withdrawals, transfers and balances.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
