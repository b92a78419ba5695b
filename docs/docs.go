// Package docs содержит описание HTTP API витрины для swagger.
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
        "/api/v1/catalog": {
            "get": {
                "description": "Фильтрация, сортировка и пагинация выполняются витриной",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Страница каталога",
                "parameters": [
                    {"type": "string", "description": "Поисковая строка", "name": "q", "in": "query"},
                    {"type": "string", "description": "ID или slug категории", "name": "category", "in": "query"},
                    {"type": "string", "description": "Марка", "name": "brand", "in": "query"},
                    {"type": "number", "description": "Минимальная цена", "name": "min", "in": "query"},
                    {"type": "number", "description": "Максимальная цена", "name": "max", "in": "query"},
                    {"type": "boolean", "description": "Только со скидкой", "name": "sale", "in": "query"},
                    {"type": "boolean", "description": "Только в наличии", "name": "stock", "in": "query"},
                    {"type": "boolean", "description": "Только рекомендуемые", "name": "featured", "in": "query"},
                    {"type": "string", "enum": ["name", "price-asc", "price-desc", "newest", "discount"], "description": "Сортировка", "name": "sort", "in": "query"},
                    {"type": "integer", "description": "Номер страницы", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/api/v1/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Категории каталога",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.response"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/api/v1/brands": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Марки каталога",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.response"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/api/v1/products/on-sale": {
            "get": {
                "description": "Список в порядке API каталога, без локальной фильтрации",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Товары со скидкой",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.response"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/api/v1/products/{slugOrID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Товар",
                "parameters": [
                    {"type": "string", "description": "Slug или ID товара", "name": "slugOrID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.errorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.response": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {},
                "success": {"type": "boolean"}
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
	Title:            "Storefront Service API",
	Description:      "Каталог витрины: фильтрация, сортировка и пагинация поверх API каталога",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
