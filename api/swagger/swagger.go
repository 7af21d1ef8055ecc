package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Ramos API",
        "description": "Weekly class schedule planning engine",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Catalogs", "description": "Course catalog import and lookup"},
        {"name": "Planner", "description": "Schedule preview, recommendation and enumeration"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/catalogs": {
            "get": {
                "tags": ["Catalogs"],
                "summary": "List stored catalogs",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Catalogs"],
                "summary": "Import a course catalog",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ImportCatalogRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalogs/{id}": {
            "get": {
                "tags": ["Catalogs"],
                "summary": "Get a catalog with its parsed sections",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Catalogs"],
                "summary": "Delete a catalog",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/planner/preview": {
            "post": {
                "tags": ["Planner"],
                "summary": "Preview a manual section selection",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PreviewRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/planner/recommend": {
            "post": {
                "tags": ["Planner"],
                "summary": "Recommend a low-conflict selection",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RecommendRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/planner/combinations": {
            "post": {
                "tags": ["Planner"],
                "summary": "Enumerate conflict-free combinations",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CombinationsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/planner/export": {
            "post": {
                "tags": ["Planner"],
                "summary": "Export a selection's schedule as CSV or PDF",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExportRequest"}}
                ],
                "produces": ["text/csv", "application/pdf"],
                "responses": {
                    "200": {"description": "Rendered document", "schema": {"type": "file"}}
                }
            }
        }
    },
    "definitions": {
        "CourseSection": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "name": {"type": "string"},
                "section": {"type": "string"},
                "professor": {"type": "string"},
                "schedule": {"type": "string"},
                "days": {"type": "string"},
                "times": {"type": "string"},
                "format": {"type": "string"}
            }
        },
        "ScheduleEvent": {
            "type": "object",
            "properties": {
                "courseCode": {"type": "string"},
                "courseName": {"type": "string"},
                "section": {"type": "string"},
                "professor": {"type": "string"},
                "day": {"type": "string"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "hasConflict": {"type": "boolean"}
            }
        },
        "SectionKey": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "section": {"type": "string"}
            },
            "required": ["code", "section"]
        },
        "ImportCatalogRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "format": {"type": "string", "enum": ["compact", "explicit"]},
                "data": {"type": "string"}
            },
            "required": ["name", "format", "data"]
        },
        "PreviewRequest": {
            "type": "object",
            "properties": {
                "catalogId": {"type": "string"},
                "format": {"type": "string", "enum": ["compact", "explicit"]},
                "data": {"type": "string"},
                "selection": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/SectionKey"}
                }
            },
            "required": ["selection"]
        },
        "RecommendRequest": {
            "type": "object",
            "properties": {
                "catalogId": {"type": "string"},
                "format": {"type": "string", "enum": ["compact", "explicit"]},
                "data": {"type": "string"},
                "seed": {"type": "integer"}
            }
        },
        "CombinationsRequest": {
            "type": "object",
            "properties": {
                "catalogId": {"type": "string"},
                "format": {"type": "string", "enum": ["compact", "explicit"]},
                "data": {"type": "string"},
                "fixed": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/SectionKey"}
                }
            }
        },
        "ExportRequest": {
            "type": "object",
            "properties": {
                "catalogId": {"type": "string"},
                "format": {"type": "string", "enum": ["compact", "explicit"]},
                "data": {"type": "string"},
                "selection": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/SectionKey"}
                },
                "exportFormat": {"type": "string", "enum": ["csv", "pdf"]},
                "title": {"type": "string"}
            },
            "required": ["selection", "exportFormat"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
