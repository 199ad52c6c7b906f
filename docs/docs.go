// Package docs holds the OpenAPI document served by gin-swagger. It mirrors the
// swag annotations on the handlers and has to be updated with them.
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
    "paths": {
        "/match": {
            "post": {
                "description": "Scores every catalog game against the given genres, tags and platforms and returns the best matches.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["match"],
                "summary": "Rank similar games",
                "parameters": [
                    {
                        "description": "Source game attributes",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.MatchInput"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.MatchResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/games/{id}/similar": {
            "get": {
                "description": "Ranks the catalog against a stored game. The game itself is never part of the result.",
                "produces": ["application/json"],
                "tags": ["match"],
                "summary": "Get games similar to a stored game",
                "parameters": [
                    {"type": "integer", "description": "Game ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "default": 10, "description": "Maximum number of results", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.MatchResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Game not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/discovery/search": {
            "post": {
                "description": "Returns the catalog games matching every criterion of the filter. Platform and genre terms also match their synonyms.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["discovery"],
                "summary": "Search the catalog",
                "parameters": [
                    {"description": "Filter", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/discovery.Filter"}},
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Items per page", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DiscoveryResultsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/discovery/lists": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the current user's discovery lists, newest first.",
                "produces": ["application/json"],
                "tags": ["discovery-lists"],
                "summary": "List saved discovery lists",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Items per page", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PaginatedResponse-handler_DiscoveryListResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Saves a named filter for the current user.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["discovery-lists"],
                "summary": "Save a discovery list",
                "parameters": [
                    {"description": "List", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.DiscoveryListInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.DiscoveryListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/discovery/lists/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["discovery-lists"],
                "summary": "Get a discovery list",
                "parameters": [{"type": "integer", "description": "List ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DiscoveryListResponse"}},
                    "404": {"description": "Discovery list not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Renames a list and replaces its filter. The share token is kept.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["discovery-lists"],
                "summary": "Update a discovery list",
                "parameters": [
                    {"type": "integer", "description": "List ID", "name": "id", "in": "path", "required": true},
                    {"description": "List", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.DiscoveryListInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DiscoveryListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Discovery list not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["discovery-lists"],
                "summary": "Delete a discovery list",
                "parameters": [{"type": "integer", "description": "List ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "404": {"description": "Discovery list not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/discovery/lists/{id}/results": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Applies the list's filter to the current catalog.",
                "produces": ["application/json"],
                "tags": ["discovery-lists"],
                "summary": "Run a saved discovery list",
                "parameters": [
                    {"type": "integer", "description": "List ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Items per page", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DiscoveryResultsResponse"}},
                    "404": {"description": "Discovery list not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/discovery/shared/{token}": {
            "get": {
                "description": "Resolves a share token to its list and runs the filter. No account is needed.",
                "produces": ["application/json"],
                "tags": ["discovery-lists"],
                "summary": "Open a shared discovery list",
                "parameters": [
                    {"type": "string", "description": "Share token", "name": "token", "in": "path", "required": true},
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Items per page", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SharedDiscoveryListResponse"}},
                    "404": {"description": "Discovery list not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/games": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Retrieves a paginated list of games, with optional filtering by title, tags, and favorites.",
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Get a list of games",
                "parameters": [
                    {"type": "string", "description": "Search query for game title", "name": "q", "in": "query"},
                    {"type": "string", "description": "Comma-separated list of Tag IDs", "name": "tag_ids", "in": "query"},
                    {"type": "boolean", "description": "Return only favorite games", "name": "favorites_only", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Items per page", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PaginatedGameResponse"}}
                }
            }
        },
        "/games/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Retrieves details for a single game, including its tags and favorite status.",
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Get a single game by ID",
                "parameters": [{"type": "integer", "description": "Game ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.GameResponse"}},
                    "404": {"description": "Game not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/games/{id}/favorite": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Adds or removes a game from the user's favorites list.",
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Toggle a game in favorites",
                "parameters": [{"type": "integer", "description": "Game ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "{\"is_favorite\": true}", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "User or game not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Failed to update favorites", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/tags": {
            "get": {
                "description": "Retrieves a list of all available tags, ordered by name.",
                "produces": ["application/json"],
                "tags": ["tags"],
                "summary": "Get all tags",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.TagResponse"}}}
                }
            }
        },
        "/admin/tags": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Creates a new tag for games.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin-tags"],
                "summary": "Create a new tag",
                "parameters": [
                    {"description": "Tag Info", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.TagInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.TagResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Admin access required", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Tag already exists", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/admin/tags/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Updates the name of an existing tag.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin-tags"],
                "summary": "Update a tag",
                "parameters": [
                    {"type": "integer", "description": "Tag ID", "name": "id", "in": "path", "required": true},
                    {"description": "New Tag Info", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.TagInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TagResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Admin access required", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Tag not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Deletes an existing tag.",
                "produces": ["application/json"],
                "tags": ["admin-tags"],
                "summary": "Delete a tag",
                "parameters": [{"type": "integer", "description": "Tag ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Admin access required", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Tag not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/admin/games": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Creates a new game and associates it with given tags.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin-games"],
                "summary": "Create a new game",
                "parameters": [
                    {"description": "Game Info", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.GameInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.GameResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Admin access required", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/admin/games/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Updates a game's details and replaces its tags.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin-games"],
                "summary": "Update a game",
                "parameters": [
                    {"type": "integer", "description": "Game ID", "name": "id", "in": "path", "required": true},
                    {"description": "New Game Info", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.GameInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.GameResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Admin access required", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Game not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Deletes an existing game.",
                "produces": ["application/json"],
                "tags": ["admin-games"],
                "summary": "Delete a game",
                "parameters": [{"type": "integer", "description": "Game ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Admin access required", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Game not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/users/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Retrieves the private profile for the currently authenticated user.",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get current user's info",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PrivateUserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "discovery.Range-float64": {
            "type": "object",
            "properties": {"min": {"type": "number"}, "max": {"type": "number"}}
        },
        "discovery.Range-int": {
            "type": "object",
            "properties": {"min": {"type": "integer"}, "max": {"type": "integer"}}
        },
        "discovery.Filter": {
            "type": "object",
            "properties": {
                "platforms": {"type": "array", "items": {"type": "string"}},
                "genres": {"type": "array", "items": {"type": "string"}},
                "tags": {"type": "array", "items": {"type": "string"}},
                "price": {"$ref": "#/definitions/discovery.Range-float64"},
                "rating": {"$ref": "#/definitions/discovery.Range-float64"},
                "release_year": {"$ref": "#/definitions/discovery.Range-int"},
                "downloads": {"$ref": "#/definitions/discovery.Range-int"},
                "revenue": {"$ref": "#/definitions/discovery.Range-float64"}
            }
        },
        "discovery.Record": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "genres": {"type": "array", "items": {"type": "string"}},
                "platforms": {"type": "array", "items": {"type": "string"}},
                "tags": {"type": "array", "items": {"type": "string"}},
                "price": {"type": "number"},
                "rating": {"type": "number"},
                "release_year": {"type": "integer"},
                "downloads": {"type": "integer"},
                "revenue": {"type": "number"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "An error message"}}
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "Game deleted"}}
        },
        "handler.PaginationMeta": {
            "type": "object",
            "properties": {
                "total_items": {"type": "integer"},
                "total_pages": {"type": "integer"},
                "current_page": {"type": "integer"},
                "page_size": {"type": "integer"}
            }
        },
        "match.Attributes": {
            "type": "object",
            "properties": {
                "genres": {"type": "array", "items": {"type": "string"}},
                "tags": {"type": "array", "items": {"type": "string"}},
                "platforms": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.MatchInput": {
            "type": "object",
            "properties": {
                "genres": {"type": "array", "items": {"type": "string"}, "example": ["RPG", "Roguelike"]},
                "tags": {"type": "array", "items": {"type": "string"}, "example": ["Pixel Art"]},
                "platforms": {"type": "array", "items": {"type": "string"}, "example": ["PC"]},
                "exclude_id": {"type": "integer"},
                "limit": {"type": "integer", "maximum": 50, "minimum": 1}
            }
        },
        "handler.MatchResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "score": {"type": "integer"},
                "genres": {"type": "array", "items": {"type": "string"}},
                "tags": {"type": "array", "items": {"type": "string"}},
                "platforms": {"type": "array", "items": {"type": "string"}},
                "shared": {"$ref": "#/definitions/match.Attributes"}
            }
        },
        "handler.DiscoveryListInput": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 255, "example": "Cozy roguelites"},
                "filter": {"$ref": "#/definitions/discovery.Filter"}
            }
        },
        "handler.DiscoveryListResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "slug": {"type": "string"},
                "share_token": {"type": "string"},
                "filter": {"$ref": "#/definitions/discovery.Filter"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "handler.DiscoveryResultsResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/discovery.Record"}},
                "meta": {"$ref": "#/definitions/handler.PaginationMeta"}
            }
        },
        "handler.PaginatedResponse-handler_DiscoveryListResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/handler.DiscoveryListResponse"}},
                "meta": {"$ref": "#/definitions/handler.PaginationMeta"}
            }
        },
        "handler.SharedDiscoveryListResponse": {
            "type": "object",
            "properties": {
                "list": {"$ref": "#/definitions/handler.DiscoveryListResponse"},
                "results": {"$ref": "#/definitions/handler.DiscoveryResultsResponse"},
                "is_owner": {"type": "boolean"}
            }
        },
        "handler.TagInput": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string", "maxLength": 100}}
        },
        "handler.TagResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "handler.GameInput": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string", "maxLength": 255},
                "description": {"type": "string"},
                "steam_url": {"type": "string"},
                "genres": {"type": "array", "items": {"type": "string"}},
                "platforms": {"type": "array", "items": {"type": "string"}},
                "tag_ids": {"type": "array", "items": {"type": "integer"}},
                "price": {"type": "number", "minimum": 0},
                "rating": {"type": "number", "maximum": 5, "minimum": 0},
                "release_year": {"type": "integer", "maximum": 2100, "minimum": 1950},
                "downloads": {"type": "integer", "minimum": 0},
                "revenue": {"type": "number", "minimum": 0}
            }
        },
        "handler.GameResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "steam_url": {"type": "string"},
                "genres": {"type": "array", "items": {"type": "string"}},
                "platforms": {"type": "array", "items": {"type": "string"}},
                "tags": {"type": "array", "items": {"$ref": "#/definitions/handler.TagResponse"}},
                "price": {"type": "number"},
                "rating": {"type": "number"},
                "release_year": {"type": "integer"},
                "downloads": {"type": "integer"},
                "revenue": {"type": "number"},
                "is_favorite": {"type": "boolean"}
            }
        },
        "handler.PaginatedGameResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/handler.GameResponse"}},
                "meta": {"$ref": "#/definitions/handler.PaginationMeta"}
            }
        },
        "handler.PrivateUserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "nickname": {"type": "string", "example": "pixelsmith"},
                "email": {"type": "string", "example": "dev@example.com"},
                "role": {"type": "string", "example": "user"},
                "favorite_games_count": {"type": "integer"},
                "discovery_list_count": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	Title:            "GameAtlas API",
	Description:      "Similar-game matching and catalog discovery for indie developers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
