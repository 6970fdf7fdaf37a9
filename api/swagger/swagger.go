package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Registrar Partner API (mock)",
        "description": "Fixture-backed partner integration API for program enrollment testing",
        "version": "0.1.0"
    },
    "basePath": "/api/v0",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Partner token exchange"},
        {"name": "Programs", "description": "Program and course-run catalog"},
        {"name": "Enrollments", "description": "Bulk program enrollment"}
    ],
    "paths": {
        "/auth/token": {
            "post": {
                "tags": ["Auth"],
                "summary": "Exchange a partner API key for an access token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token issued", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid partner credentials"},
                    "404": {"description": "Token issuing disabled"}
                }
            }
        },
        "/programs": {
            "get": {
                "tags": ["Programs"],
                "summary": "List programs of an organization",
                "parameters": [
                    {"name": "org", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Programs", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthenticated"},
                    "403": {"description": "Missing org key or organization not readable"},
                    "404": {"description": "Organization unknown"}
                }
            }
        },
        "/programs/{program_key}": {
            "get": {
                "tags": ["Programs"],
                "summary": "Retrieve a single program",
                "parameters": [
                    {"name": "program_key", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Program", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthenticated"},
                    "403": {"description": "Organization not readable"},
                    "404": {"description": "Program unknown"}
                }
            }
        },
        "/programs/{program_key}/courses": {
            "get": {
                "tags": ["Programs"],
                "summary": "List course runs in a program",
                "parameters": [
                    {"name": "program_key", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Course runs", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthenticated"},
                    "403": {"description": "Organization not readable"},
                    "404": {"description": "Program unknown"}
                }
            }
        },
        "/programs/{program_key}/courses/export": {
            "get": {
                "tags": ["Programs"],
                "summary": "Download a program's course-run roster",
                "parameters": [
                    {"name": "program_key", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "required": false, "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Roster attachment"},
                    "400": {"description": "Unknown export format"},
                    "401": {"description": "Unauthenticated"},
                    "403": {"description": "Organization not readable"},
                    "404": {"description": "Program unknown"}
                }
            }
        },
        "/programs/{program_key}/enrollments": {
            "post": {
                "tags": ["Enrollments"],
                "summary": "Enroll up to 25 students in a program",
                "parameters": [
                    {"name": "program_key", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/EnrollmentSubmission"}}}
                ],
                "responses": {
                    "200": {"description": "All students enrolled; body maps student_key to status"},
                    "207": {"description": "Partial success; body maps student_key to status or error tag"},
                    "401": {"description": "Unauthenticated"},
                    "403": {"description": "Organization not readable"},
                    "404": {"description": "Program unknown"},
                    "413": {"description": "More than 25 students supplied"},
                    "422": {"description": "Malformed body or missing student_key"}
                }
            }
        }
    },
    "definitions": {
        "TokenRequest": {
            "type": "object",
            "properties": {
                "partner_id": {"type": "string"},
                "api_key": {"type": "string"}
            }
        },
        "EnrollmentSubmission": {
            "type": "object",
            "properties": {
                "student_key": {"type": "string"},
                "status": {"type": "string", "enum": ["enrolled", "pending", "suspended", "canceled"]}
            }
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
                "error": {"$ref": "#/definitions/APIError"}
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
