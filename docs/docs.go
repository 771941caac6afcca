// Package docs holds the OpenAPI description served at /swagger/.
// Regenerate with: swag init -g cmd/commons/main.go
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
        "/regions/{region}/towns": {
            "get": {
                "produces": ["application/json"],
                "tags": ["towns"],
                "summary": "List the towns of a region",
                "parameters": [
                    {"type": "string", "description": "Region slug", "name": "region", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.RegionTownsSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/regions/{region}/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List and filter a region's events",
                "parameters": [
                    {"type": "string", "description": "Region slug", "name": "region", "in": "path", "required": true},
                    {"type": "string", "description": "Comma-separated town IDs (UUID)", "name": "towns", "in": "query"},
                    {"type": "string", "description": "Comma-separated tag slugs", "name": "tags", "in": "query"},
                    {"enum": ["all", "weekday", "weekend", "this-week", "next-week"], "type": "string", "description": "Time window", "name": "time", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.RegionEventsSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/towns/{town}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["towns"],
                "summary": "Get a town page",
                "parameters": [
                    {"type": "string", "description": "Town slug", "name": "town", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.TownPageSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "error.code: conflict (town not active yet)", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/towns/{town}/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List a town's events grouped by week",
                "parameters": [
                    {"type": "string", "description": "Town slug", "name": "town", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.TownEventsSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "error.code: conflict (town not active yet)", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/towns/{town}/events.ics": {
            "get": {
                "produces": ["text/calendar"],
                "tags": ["events"],
                "summary": "Subscribe to a town's events",
                "parameters": [
                    {"type": "string", "description": "Town slug", "name": "town", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "VCALENDAR", "schema": {"type": "string"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/towns/{town}/posts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bulletin"],
                "summary": "List a town's bulletin board",
                "parameters": [
                    {"type": "string", "description": "Town slug", "name": "town", "in": "path", "required": true},
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 20, max 50)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListPostsSuccessResponse"}},
                    "409": {"description": "error.code: conflict (town not active yet)", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bulletin"],
                "summary": "Post to a town's bulletin board",
                "parameters": [
                    {"type": "string", "description": "Town slug", "name": "town", "in": "path", "required": true},
                    {"description": "Post", "name": "post", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreatePostRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.CreatePostSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "error.code: conflict (town not active yet)", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/towns/{town}/businesses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["businesses"],
                "summary": "List a town's businesses",
                "parameters": [
                    {"type": "string", "description": "Town slug", "name": "town", "in": "path", "required": true},
                    {"type": "string", "description": "Comma-separated tag slugs", "name": "tags", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListBusinessesSuccessResponse"}}
                }
            }
        },
        "/events/{eventID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get an event by ID",
                "parameters": [
                    {"type": "string", "description": "Event ID (UUID)", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/tags": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tags"],
                "summary": "List known tags",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListTagsSuccessResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Liveness and database check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "helpers.APIError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {"data": {}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "helpers.PaginationMeta": {
            "type": "object",
            "properties": {"page": {"type": "integer"}, "page_size": {"type": "integer"}, "total": {"type": "integer"}, "total_pages": {"type": "integer"}}
        },
        "domain.Event": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "town_id": {"type": "string"}, "title": {"type": "string"},
                "start_time": {"type": "string"}, "description": {"type": "string"}, "card_summary": {"type": "string"},
                "social_post": {"type": "string"}, "cta_url": {"type": "string"}, "location": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "domain.EventBuckets": {
            "type": "object",
            "properties": {
                "this_week": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}},
                "next_week": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}},
                "later": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}}
            }
        },
        "domain.Region": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "slug": {"type": "string"}}
        },
        "domain.Town": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "region_id": {"type": "string"}, "name": {"type": "string"},
                "slug": {"type": "string"}, "description": {"type": "string"},
                "status": {"type": "string", "enum": ["active", "passive", "hidden"]}
            }
        },
        "domain.TownCard": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "slug": {"type": "string"},
                "description": {"type": "string"}, "status": {"type": "string"},
                "interactive": {"type": "boolean"}, "coming_soon": {"type": "boolean"}
            }
        },
        "domain.BulletinPost": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "town_id": {"type": "string"}, "title": {"type": "string"},
                "org_name": {"type": "string"}, "submitter_name": {"type": "string"},
                "content": {"type": "string"}, "created_at": {"type": "string"}
            }
        },
        "domain.Business": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "town_id": {"type": "string"}, "name": {"type": "string"},
                "description": {"type": "string"}, "website_url": {"type": "string"}, "instagram_url": {"type": "string"},
                "tag_slugs": {"type": "array", "items": {"type": "string"}}
            }
        },
        "domain.Tag": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "label": {"type": "string"}}
        },
        "domain.TownPage": {
            "type": "object",
            "properties": {
                "town": {"$ref": "#/definitions/domain.Town"},
                "events": {"$ref": "#/definitions/domain.EventBuckets"},
                "posts": {"type": "array", "items": {"$ref": "#/definitions/domain.BulletinPost"}},
                "businesses": {"type": "array", "items": {"$ref": "#/definitions/domain.Business"}}
            }
        },
        "controllers.CreatePostRequest": {
            "type": "object",
            "properties": {"title": {"type": "string"}, "org_name": {"type": "string"}, "submitter_name": {"type": "string"}, "content": {"type": "string"}}
        },
        "controllers.RegionTownsSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "object", "properties": {
                    "region": {"$ref": "#/definitions/domain.Region"},
                    "towns": {"type": "array", "items": {"$ref": "#/definitions/domain.TownCard"}}
                }},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.RegionEventsSuccessResponse": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.TownPageSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.TownPage"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.TownEventsSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "object", "properties": {
                    "town": {"$ref": "#/definitions/domain.Town"},
                    "events": {"$ref": "#/definitions/domain.EventBuckets"}
                }},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ListPostsSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "object", "properties": {
                    "items": {"type": "array", "items": {"$ref": "#/definitions/domain.BulletinPost"}},
                    "pagination": {"$ref": "#/definitions/helpers.PaginationMeta"}
                }},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.CreatePostSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.BulletinPost"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.ListBusinessesSuccessResponse": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/domain.Business"}}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.EventSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.Event"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.ListTagsSuccessResponse": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/domain.Tag"}}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "The Commons API",
	Description:      "Community events, bulletin boards and business directories for small towns.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
