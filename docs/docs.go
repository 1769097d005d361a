// Package docs registers the OpenAPI description of the HTTP API with swag.
// Regenerate with `swag init -g cmd/api/main.go -o docs`.
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
		"/calendar/gregorian": {
			"get": {
				"summary": "Convert a Hijri date to Gregorian",
				"tags": [
					"calendar"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Hijri date YYYY-MM-DD",
						"name": "date",
						"in": "query",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.ConversionResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					}
				}
			}
		},
		"/calendar/hijri": {
			"get": {
				"summary": "Convert a Gregorian date to Hijri",
				"tags": [
					"calendar"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Gregorian date YYYY-MM-DD",
						"name": "date",
						"in": "query",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.ConversionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					}
				}
			}
		},
		"/calendar/ramadan/{year}": {
			"get": {
				"summary": "Gregorian bounds of Ramadan",
				"tags": [
					"calendar"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Hijri year",
						"name": "year",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.RamadanResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					}
				}
			}
		},
		"/challenges": {
			"post": {
				"summary": "Create a challenge and its first period",
				"tags": [
					"challenges"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Challenge",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.CreateChallengeRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/entity.Challenge"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					}
				}
			},
			"get": {
				"summary": "List caller's challenges",
				"tags": [
					"challenges"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.ChallengesResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					}
				}
			}
		},
		"/challenges/{id}/deactivate": {
			"post": {
				"summary": "Stop generating periods for a challenge",
				"tags": [
					"challenges"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Challenge ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					}
				}
			}
		},
		"/challenges/{id}/periods": {
			"post": {
				"summary": "Materialize periods up to a Hijri date",
				"tags": [
					"challenges"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Challenge ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"description": "Horizon",
						"name": "request",
						"in": "body",
						"required": false,
						"schema": {
							"$ref": "#/definitions/api.EnsurePeriodsRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.PeriodsResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					}
				}
			},
			"get": {
				"summary": "List materialized periods",
				"tags": [
					"challenges"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Challenge ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.PeriodsResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					}
				}
			}
		},
		"/entries/date/{date}": {
			"get": {
				"summary": "Entry for a Gregorian date, created on first access",
				"tags": [
					"entries"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Gregorian date YYYY-MM-DD",
						"name": "date",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"description": "IANA timezone hint",
						"name": "tz",
						"in": "query",
						"required": false,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.EntryView"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					}
				}
			}
		},
		"/entries/today": {
			"get": {
				"summary": "Today's entry in the caller's timezone",
				"tags": [
					"entries"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "IANA timezone hint",
						"name": "tz",
						"in": "query",
						"required": false,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.EntryView"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					}
				}
			}
		},
		"/entries/{id}": {
			"get": {
				"summary": "Entry with its fields",
				"tags": [
					"entries"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Entry ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.EntryView"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					}
				}
			}
		},
		"/entries/{id}/fields/{key}": {
			"put": {
				"summary": "Upsert one field of an open entry",
				"tags": [
					"entries"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Entry ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"description": "Field key",
						"name": "key",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"description": "Field value",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.SaveFieldRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/entity.DailyEntryField"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					}
				}
			}
		},
		"/entries/{id}/lock": {
			"get": {
				"summary": "Lock state and countdown of an entry",
				"tags": [
					"entries"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Entry ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.LockResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					}
				}
			}
		},
		"/entries/{id}/reset": {
			"post": {
				"summary": "Clear all fields of an open entry",
				"tags": [
					"entries"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Entry ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					}
				}
			}
		},
		"/periods/{id}/progress/{date}": {
			"put": {
				"summary": "Record progress for one day of a period",
				"tags": [
					"progress"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Period ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"description": "Gregorian date YYYY-MM-DD",
						"name": "date",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"description": "Progress",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.ProgressRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/entity.PeriodStatus"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					}
				}
			}
		},
		"/periods/{id}/status": {
			"get": {
				"summary": "Completion and streak of a period",
				"tags": [
					"progress"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Period ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/entity.PeriodStatus"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					}
				}
			}
		},
		"/settings/timezone": {
			"put": {
				"summary": "Change timezone settings",
				"tags": [
					"settings"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Timezone settings",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.UpdateTimezoneRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/entity.User"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httputil.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"api.ChallengesResponse": {
			"type": "object",
			"properties": {
				"uid": {
					"type": "string"
				},
				"challenges": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/entity.Challenge"
					}
				}
			}
		},
		"api.ConversionResponse": {
			"type": "object",
			"properties": {
				"gregorian": {
					"type": "string"
				},
				"hijri": {
					"$ref": "#/definitions/hijri.Date"
				},
				"hijri_text": {
					"type": "string"
				},
				"leap_year": {
					"type": "boolean"
				}
			}
		},
		"api.CreateChallengeRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"scope": {
					"type": "string"
				},
				"field_key": {
					"type": "string"
				},
				"tz": {
					"type": "string"
				}
			}
		},
		"api.EnsurePeriodsRequest": {
			"type": "object",
			"properties": {
				"through": {
					"type": "string"
				}
			}
		},
		"api.LockResponse": {
			"type": "object",
			"properties": {
				"entry_id": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"lock_at_utc": {
					"type": "string"
				},
				"now_utc": {
					"type": "string"
				},
				"seconds_left": {
					"type": "integer"
				}
			}
		},
		"api.PeriodsResponse": {
			"type": "object",
			"properties": {
				"challenge_id": {
					"type": "string"
				},
				"periods": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/entity.ChallengePeriod"
					}
				}
			}
		},
		"api.ProgressRequest": {
			"type": "object",
			"properties": {
				"value": {
					"type": "number"
				},
				"notes": {
					"type": "string"
				},
				"completed": {
					"type": "boolean"
				}
			}
		},
		"api.RamadanResponse": {
			"type": "object",
			"properties": {
				"year": {
					"type": "integer"
				},
				"start": {
					"type": "string"
				},
				"end": {
					"type": "string"
				},
				"days": {
					"type": "integer"
				}
			}
		},
		"api.SaveFieldRequest": {
			"type": "object",
			"properties": {
				"type": {
					"type": "string"
				},
				"value": {
					"$ref": "#/definitions/entity.FieldValue"
				}
			}
		},
		"api.UpdateTimezoneRequest": {
			"type": "object",
			"properties": {
				"timezone": {
					"type": "string"
				},
				"source": {
					"type": "string"
				}
			}
		},
		"entity.Challenge": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"uid": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"scope": {
					"type": "string"
				},
				"field_key": {
					"type": "string"
				},
				"start_date": {
					"type": "string"
				},
				"is_active": {
					"type": "boolean"
				},
				"created_at": {
					"type": "string"
				}
			}
		},
		"entity.ChallengePeriod": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"challenge_id": {
					"type": "string"
				},
				"scope": {
					"type": "string"
				},
				"anchor": {
					"type": "string"
				},
				"hijri_year": {
					"type": "integer"
				},
				"hijri_month": {
					"type": "integer"
				},
				"hijri_week_index": {
					"type": "integer"
				},
				"start_date": {
					"type": "string"
				},
				"end_date": {
					"type": "string"
				},
				"is_active": {
					"type": "boolean"
				}
			}
		},
		"entity.DailyEntry": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"uid": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"hijri_year": {
					"type": "integer"
				},
				"hijri_month": {
					"type": "integer"
				},
				"hijri_day": {
					"type": "integer"
				},
				"timezone": {
					"type": "string"
				},
				"lock_at_utc": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				}
			}
		},
		"entity.DailyEntryField": {
			"type": "object",
			"properties": {
				"entry_id": {
					"type": "string"
				},
				"key": {
					"type": "string"
				},
				"type": {
					"type": "string"
				},
				"value": {
					"$ref": "#/definitions/entity.FieldValue"
				},
				"counts_toward_completion": {
					"type": "boolean"
				},
				"updated_at": {
					"type": "string"
				}
			}
		},
		"entity.FieldValue": {
			"type": "object",
			"properties": {
				"checked": {
					"type": "boolean"
				},
				"text": {
					"type": "string"
				},
				"selected": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"entity.PeriodStatus": {
			"type": "object",
			"properties": {
				"period_id": {
					"type": "string"
				},
				"total_days": {
					"type": "integer"
				},
				"completed_days": {
					"type": "integer"
				},
				"completion": {
					"type": "number"
				},
				"streak": {
					"type": "integer"
				},
				"completed": {
					"type": "boolean"
				}
			}
		},
		"entity.User": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"timezone_iana": {
					"type": "string"
				},
				"timezone_source": {
					"type": "string"
				}
			}
		},
		"hijri.Date": {
			"type": "object",
			"properties": {
				"year": {
					"type": "integer"
				},
				"month": {
					"type": "integer"
				},
				"day": {
					"type": "integer"
				}
			}
		},
		"httputil.ErrorResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "integer"
				},
				"kind": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"details": {
					"type": "string"
				}
			}
		},
		"service.EntryView": {
			"type": "object",
			"properties": {
				"entry": {
					"$ref": "#/definitions/entity.DailyEntry"
				},
				"fields": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/entity.DailyEntryField"
					}
				},
				"warning": {
					"type": "string"
				}
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
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "Ramadan API",
	Description:      "Daily entries, Hijri challenges and progress for the Ramadan tracker",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
