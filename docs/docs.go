// Package docs holds the Swagger description served under /docs.
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
        "/songs": {
            "get": {
                "tags": ["songs"],
                "summary": "List songs",
                "description": "Return every song in insertion order",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/entities.Song"}
                        }
                    }
                }
            },
            "post": {
                "tags": ["songs"],
                "summary": "Create a song",
                "description": "Append a song with a caller-assigned ID",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "description": "Song data",
                        "required": true,
                        "schema": {"$ref": "#/definitions/entities.Song"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entities.Song"}},
                    "400": {"description": "Song with this ID already exists", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/songs/{id}": {
            "get": {
                "tags": ["songs"],
                "summary": "Get song by ID",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "Song ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entities.Song"}},
                    "404": {"description": "Song not found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "put": {
                "tags": ["songs"],
                "summary": "Replace a song",
                "description": "Replace the song stored under the path ID. The body ID is stored as sent.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "Song ID", "name": "id", "in": "path", "required": true},
                    {
                        "in": "body",
                        "name": "request",
                        "description": "Song data",
                        "required": true,
                        "schema": {"$ref": "#/definitions/entities.Song"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entities.Song"}},
                    "404": {"description": "Song not found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["songs"],
                "summary": "Delete a song",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "Song ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entities.Song"}},
                    "404": {"description": "Song not found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "entities.Song": {
            "type": "object",
            "required": ["id", "title", "artist", "genre", "peak_position", "weeks_on_chart"],
            "properties": {
                "id": {"type": "integer", "example": 1},
                "title": {"type": "string", "example": "A"},
                "artist": {"type": "string", "example": "X"},
                "genre": {"type": "string", "example": "Pop"},
                "peak_position": {"type": "integer", "example": 5},
                "weeks_on_chart": {"type": "integer", "example": 10}
            }
        },
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "errors": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/http.FieldError"}
                }
            }
        },
        "http.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "SongChart API",
	Description:      "CRUD over a flat-file collection of music chart records",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
