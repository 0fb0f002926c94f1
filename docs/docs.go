// Package docs registra el documento OpenAPI servido en /swagger/doc.json.
// Mantener en sync con las anotaciones godoc de los handlers (swag init -g cmd/api/main.go).
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
        "/pets": {
            "get": {
                "description": "Devuelve el catálogo completo en orden de inserción.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Listar pets para adopción",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/catalog.ListResponse"}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Detalle de un pet",
                "parameters": [
                    {"type": "string", "description": "ID del pet", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/catalog.PetResponse"}},
                    "404": {"description": "pet not found", "schema": {"type": "string"}}
                }
            }
        },
        "/intake/format": {
            "post": {
                "description": "Aplica la máscara del campo (phone, birth_date) al texto crudo; los demás campos pasan sin cambios y los selectores se validan contra su enumeración.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["intake"],
                "summary": "Formatear un campo",
                "parameters": [
                    {"description": "Campo y texto crudo", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/intake.formatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/intake.formatResponse"}},
                    "400": {"description": "invalid json / unknown field / invalid selection", "schema": {"type": "string"}}
                }
            }
        },
        "/intake/validate": {
            "post": {
                "description": "Normaliza todos los campos y devuelve si el formulario es submittable.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["intake"],
                "summary": "Validar un formulario completo",
                "parameters": [
                    {"description": "Formulario completo", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/intake.validateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/intake.validateResponse"}},
                    "400": {"description": "invalid json / invalid selection", "schema": {"type": "string"}}
                }
            }
        },
        "/intake/forms": {
            "post": {
                "produces": ["application/json"],
                "tags": ["intake"],
                "summary": "Iniciar formulario de adopción",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/intake.draftResponse"}}
                }
            }
        },
        "/intake/forms/{formID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["intake"],
                "summary": "Ver formulario en curso",
                "parameters": [
                    {"type": "string", "description": "ID del formulario", "name": "formID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/intake.draftResponse"}},
                    "404": {"description": "form not found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "tags": ["intake"],
                "summary": "Descartar formulario en curso",
                "parameters": [
                    {"type": "string", "description": "ID del formulario", "name": "formID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "form not found", "schema": {"type": "string"}}
                }
            }
        },
        "/intake/forms/{formID}/fields/{field}": {
            "put": {
                "description": "Guarda el valor formateado del campo y recalcula si el formulario es submittable.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["intake"],
                "summary": "Cambiar un campo (cada tecla)",
                "parameters": [
                    {"type": "string", "description": "ID del formulario", "name": "formID", "in": "path", "required": true},
                    {"enum": ["name", "email", "phone", "birth_date", "password", "password_confirm", "species", "sex", "age_group", "size"], "type": "string", "description": "Campo", "name": "field", "in": "path", "required": true},
                    {"description": "Texto crudo", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/intake.changeFieldRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/intake.changeFieldResponse"}},
                    "400": {"description": "invalid json / unknown field / invalid selection", "schema": {"type": "string"}},
                    "404": {"description": "form not found", "schema": {"type": "string"}}
                }
            }
        },
        "/intake/forms/{formID}/submit": {
            "post": {
                "description": "Agrega la ficha al catálogo y limpia el formulario. Solo válido cuando el formulario es submittable.",
                "produces": ["application/json"],
                "tags": ["intake"],
                "summary": "Enviar formulario",
                "parameters": [
                    {"type": "string", "description": "ID del formulario", "name": "formID", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/intake.submitResponse"}},
                    "404": {"description": "form not found", "schema": {"type": "string"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/intake.notSubmittableResponse"}}
                }
            }
        }
    },
    "definitions": {
        "catalog.PetResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "age_label": {"type": "string"},
                "sex_label": {"type": "string"},
                "story": {"type": "string"},
                "photo_url": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "catalog.ListResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/catalog.PetResponse"}}
            }
        },
        "intake.FieldSet": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "birth_date": {"type": "string"},
                "password": {"type": "string"},
                "password_confirm": {"type": "string"},
                "species": {"type": "string", "enum": ["dog", "cat"]},
                "sex": {"type": "string", "enum": ["male", "female"]},
                "age_group": {"type": "string", "enum": ["puppy", "adult", "senior"]},
                "size": {"type": "string", "enum": ["small", "medium", "large"]}
            }
        },
        "intake.draftFields": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "birth_date": {"type": "string"},
                "password_set": {"type": "boolean"},
                "password_confirm_set": {"type": "boolean"},
                "species": {"type": "string", "enum": ["dog", "cat"]},
                "sex": {"type": "string", "enum": ["male", "female"]},
                "age_group": {"type": "string", "enum": ["puppy", "adult", "senior"]},
                "size": {"type": "string", "enum": ["small", "medium", "large"]}
            }
        },
        "intake.draftResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "fields": {"$ref": "#/definitions/intake.draftFields"},
                "submittable": {"type": "boolean"},
                "state": {"type": "string", "enum": ["editing", "ready"]},
                "missing": {"type": "array", "items": {"type": "string"}},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "intake.formatRequest": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "intake.formatResponse": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "intake.changeFieldRequest": {
            "type": "object",
            "properties": {
                "value": {"type": "string"}
            }
        },
        "intake.changeFieldResponse": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "value": {"type": "string"},
                "submittable": {"type": "boolean"},
                "state": {"type": "string", "enum": ["editing", "ready"]},
                "missing": {"type": "array", "items": {"type": "string"}}
            }
        },
        "intake.validateRequest": {
            "type": "object",
            "properties": {
                "fields": {"$ref": "#/definitions/intake.FieldSet"}
            }
        },
        "intake.validateResponse": {
            "type": "object",
            "properties": {
                "fields": {"$ref": "#/definitions/intake.draftFields"},
                "submittable": {"type": "boolean"},
                "state": {"type": "string", "enum": ["editing", "ready"]},
                "missing": {"type": "array", "items": {"type": "string"}}
            }
        },
        "intake.submitResponse": {
            "type": "object",
            "properties": {
                "record": {"$ref": "#/definitions/catalog.PetResponse"},
                "catalog_size": {"type": "integer"},
                "form": {"$ref": "#/definitions/intake.draftResponse"}
            }
        },
        "intake.notSubmittableResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "missing": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Adoption API",
	Description:      "Catálogo de pets para adopción y formulario de intake del adoptante.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
