// Package docs registers the Swagger document served at /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/products": {
            "get": {
                "description": "이름, 카테고리, 상태로 필터링하고 페이지 단위로 제품 목록을 조회합니다. 결과는 10분간 캐시됩니다.",
                "produces": ["application/json"],
                "tags": ["제품"],
                "summary": "제품 목록 조회",
                "parameters": [
                    {"type": "string", "description": "이름 부분 일치", "name": "name", "in": "query"},
                    {"type": "integer", "description": "카테고리 ID", "name": "category_id", "in": "query"},
                    {"enum": ["active", "inactive", "discontinued"], "type": "string", "description": "상태", "name": "status", "in": "query"},
                    {"type": "integer", "description": "페이지 (기본 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "페이지당 항목 수 (1-100, 기본 15)", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "조회 성공", "schema": {"$ref": "#/definitions/models.ProductCollection"}},
                    "422": {"description": "검증 실패", "schema": {"$ref": "#/definitions/models.ValidationErrorResponse"}},
                    "500": {"description": "서버 에러", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/validate-email": {
            "post": {
                "description": "가입 신청에 사용할 이메일이 이미 등록되어 있는지 확인합니다.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["가입 신청"],
                "summary": "이메일 중복 확인",
                "parameters": [
                    {"description": "확인할 이메일", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ValidateEmailRequest"}}
                ],
                "responses": {
                    "200": {"description": "사용 가능", "schema": {"$ref": "#/definitions/models.EmailAvailability"}},
                    "400": {"description": "잘못된 요청", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "422": {"description": "이미 사용 중이거나 형식 오류", "schema": {"$ref": "#/definitions/models.ValidationErrorResponse"}},
                    "500": {"description": "서버 에러", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/registrations": {
            "post": {
                "description": "이름, 이메일, 비밀번호로 가입 신청을 등록합니다. 폼 요청은 리다이렉트로 응답합니다.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["가입 신청"],
                "summary": "가입 신청 등록",
                "parameters": [
                    {"description": "가입 신청 정보", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.StoreRegistrationRequest"}}
                ],
                "responses": {
                    "201": {
                        "description": "등록 성공",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/models.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.Registration"}}}
                            ]
                        }
                    },
                    "400": {"description": "잘못된 요청", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "422": {"description": "검증 실패", "schema": {"$ref": "#/definitions/models.ValidationErrorResponse"}},
                    "500": {"description": "서버 에러", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "models.CategoryOption": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "models.EmailAvailability": {
            "type": "object",
            "properties": {
                "exists": {"type": "boolean"}
            }
        },
        "models.PageLink": {
            "type": "object",
            "properties": {
                "active": {"type": "boolean"},
                "label": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "models.PaginationLinks": {
            "type": "object",
            "properties": {
                "first": {"type": "string"},
                "last": {"type": "string"},
                "next": {"type": "string"},
                "prev": {"type": "string"}
            }
        },
        "models.PaginationMeta": {
            "type": "object",
            "properties": {
                "current_page": {"type": "integer"},
                "filters": {"type": "object", "additionalProperties": {"type": "string"}},
                "from": {"type": "integer"},
                "last_page": {"type": "integer"},
                "links": {"type": "array", "items": {"$ref": "#/definitions/models.PageLink"}},
                "path": {"type": "string"},
                "per_page": {"type": "integer"},
                "to": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "models.ProductCollection": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.ProductView"}},
                "links": {"$ref": "#/definitions/models.PaginationLinks"},
                "meta": {"$ref": "#/definitions/models.PaginationMeta"}
            }
        },
        "models.ProductView": {
            "type": "object",
            "properties": {
                "category": {"$ref": "#/definitions/models.CategoryOption"},
                "created_at": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "models.Registration": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "models.StoreRegistrationRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "models.ValidateEmailRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"}
            }
        },
        "models.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "errors": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Product Catalog API",
	Description:      "제품 카탈로그 조회 및 가입 신청 서버",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
