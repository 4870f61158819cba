// Package docs holds the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
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
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new user", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Log in and receive an access token", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/auth/me": {"get": {"tags": ["auth"], "summary": "Current user", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/auth/password": {"put": {"tags": ["auth"], "summary": "Change own password", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/auth/users": {"get": {"tags": ["auth"], "summary": "List users (admin)", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/auth/users/{id}/role": {"put": {"tags": ["auth"], "summary": "Change a user's role (admin)", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/auth/users/{id}": {"delete": {"tags": ["auth"], "summary": "Delete a user and everything they own (admin)", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/gallery/upload": {"post": {"tags": ["gallery"], "summary": "Upload a media file", "security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}}},
        "/gallery/media": {"get": {"tags": ["gallery"], "summary": "List media visible to the caller", "responses": {"200": {"description": "OK"}}}},
        "/gallery/media/{id}": {
            "get": {"tags": ["gallery"], "summary": "Media detail with comments", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["gallery"], "summary": "Update media metadata", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "delete": {"tags": ["gallery"], "summary": "Delete media", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}
        },
        "/gallery/media/{id}/like": {"post": {"tags": ["gallery"], "summary": "Like a media item", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/gallery/media/{id}/comments": {"post": {"tags": ["gallery"], "summary": "Comment on a media item", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/gallery/search": {"get": {"tags": ["gallery"], "summary": "Search media by text, type, tags and uploader", "responses": {"200": {"description": "OK"}}}},
        "/gallery/albums": {
            "get": {"tags": ["albums"], "summary": "List albums visible to the caller", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["albums"], "summary": "Create an album from existing media", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}
        },
        "/gallery/albums/{id}": {
            "get": {"tags": ["albums"], "summary": "Album detail with the members the caller may view", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "put": {"tags": ["albums"], "summary": "Update an album; media_ids replaces the member list", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["albums"], "summary": "Delete an album; its media are kept", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/rsvp": {"post": {"tags": ["rsvp"], "summary": "Answer the invitation", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/info": {"post": {"tags": ["info"], "summary": "Create an information page", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/faq": {"post": {"tags": ["faq"], "summary": "Add a question to the FAQ", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Wedding2025 API",
	Description:      "Gallery, RSVP and information API for the wedding site",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
