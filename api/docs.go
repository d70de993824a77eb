// Package api contains the OpenAPI documentation served at /docs.
//
// The paths and definitions are generated from the handler annotations.
// Regenerate with "swag init" after changing them.
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "AGPL-3.0-or-later"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": [
                    "General"
                ],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.RootResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/healthz": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "description": "Returns 204 when the database can be reached",
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "tags": [
                    "v1"
                ],
                "summary": "v1 API",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.V1Response"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "v1"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/budget-bundles/{id}": {
            "patch": {
                "description": "Replaces all fields of a bundle line",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Lines"
                ],
                "summary": "Update budget bundle",
                "parameters": [
                    {
                        "description": "ID of the line",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Line",
                        "name": "line",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/rollup.BundleLine"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetBundleResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Lines"
                ],
                "summary": "Delete budget bundle",
                "parameters": [
                    {
                        "description": "ID of the line",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/budget-staff/{id}": {
            "patch": {
                "description": "Replaces all fields of a staff line",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Lines"
                ],
                "summary": "Update budget staff",
                "parameters": [
                    {
                        "description": "ID of the line",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Line",
                        "name": "line",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/rollup.StaffLine"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetStaffResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Lines"
                ],
                "summary": "Delete budget staff",
                "parameters": [
                    {
                        "description": "ID of the line",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/budgets": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Create budget",
                "parameters": [
                    {
                        "description": "Budget",
                        "name": "budget",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budgets",
                "parameters": [
                    {
                        "description": "Filter by name, * matches any characters",
                        "name": "name",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Include deleted budgets",
                        "name": "deleted",
                        "in": "query",
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/budgets/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budget",
                "parameters": [
                    {
                        "description": "ID of the budget",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Update budget",
                "parameters": [
                    {
                        "description": "ID of the budget",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Budget",
                        "name": "budget",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a budget together with all of its lines",
                "tags": [
                    "Budgets"
                ],
                "summary": "Delete budget",
                "parameters": [
                    {
                        "description": "ID of the budget",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/budgets/{id}/bundles": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Add budget bundle",
                "parameters": [
                    {
                        "description": "ID of the budget",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Line",
                        "name": "line",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/rollup.BundleLine"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetBundleResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/budgets/{id}/lines": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budget lines",
                "parameters": [
                    {
                        "description": "ID of the budget",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetLinesResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "put": {
                "description": "Replaces all staff and bundle lines of a budget",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Set budget lines",
                "parameters": [
                    {
                        "description": "ID of the budget",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Lines",
                        "name": "lines",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetLinesEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetLinesResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/budgets/{id}/refresh": {
            "post": {
                "description": "Recalculates every kit, bundle and the budget itself from their definitions. Idempotent.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Refresh budget",
                "parameters": [
                    {
                        "description": "ID of the budget",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/budgets/{id}/snapshot": {
            "get": {
                "description": "Returns the budget with all lines, their contents and costs, read in one transaction",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budget snapshot",
                "parameters": [
                    {
                        "description": "ID of the budget",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SnapshotResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/budgets/{id}/staff": {
            "post": {
                "description": "Deploys a staff type in a budget. The same staff type can be deployed at different locations or for different projects.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Add budget staff",
                "parameters": [
                    {
                        "description": "ID of the budget",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Line",
                        "name": "line",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/rollup.StaffLine"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetStaffResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/budgets/{id}/totals": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budget totals",
                "parameters": [
                    {
                        "description": "ID of the budget",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetTotalsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/bundle-items/{id}": {
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Lines"
                ],
                "summary": "Update bundle item",
                "parameters": [
                    {
                        "description": "ID of the line",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Consumption",
                        "name": "line",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.Consumption"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BundleItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Lines"
                ],
                "summary": "Delete bundle item",
                "parameters": [
                    {
                        "description": "ID of the line",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/bundle-kits/{id}": {
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Lines"
                ],
                "summary": "Update bundle kit",
                "parameters": [
                    {
                        "description": "ID of the line",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Consumption",
                        "name": "line",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.Consumption"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BundleKitResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Lines"
                ],
                "summary": "Delete bundle kit",
                "parameters": [
                    {
                        "description": "ID of the line",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/bundles": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bundles"
                ],
                "summary": "Create bundle",
                "parameters": [
                    {
                        "description": "Bundle",
                        "name": "bundle",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.BundleEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.BundleResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bundles"
                ],
                "summary": "Get bundles",
                "parameters": [
                    {
                        "description": "Filter by name, * matches any characters",
                        "name": "name",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Include deleted bundles",
                        "name": "deleted",
                        "in": "query",
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BundleListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/bundles/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bundles"
                ],
                "summary": "Get bundle",
                "parameters": [
                    {
                        "description": "ID of the bundle",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BundleResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bundles"
                ],
                "summary": "Update bundle",
                "parameters": [
                    {
                        "description": "ID of the bundle",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Bundle",
                        "name": "bundle",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.BundleEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BundleResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a bundle and its lines. Fails while any budget uses the bundle.",
                "tags": [
                    "Bundles"
                ],
                "summary": "Delete bundle",
                "parameters": [
                    {
                        "description": "ID of the bundle",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/bundles/{id}/contents": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bundles"
                ],
                "summary": "Get bundle contents",
                "parameters": [
                    {
                        "description": "ID of the bundle",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BundleContentsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "put": {
                "description": "Replaces the kits and items of a bundle. Each entry references exactly one kit or one item.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bundles"
                ],
                "summary": "Set bundle contents",
                "parameters": [
                    {
                        "description": "ID of the bundle",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Contents",
                        "name": "contents",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/rollup.BundleContent"
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BundleContentsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/bundles/{id}/items": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bundles"
                ],
                "summary": "Add bundle item",
                "parameters": [
                    {
                        "description": "ID of the bundle",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Line",
                        "name": "line",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.BundleItemCreate"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.BundleItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/bundles/{id}/kits": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bundles"
                ],
                "summary": "Add bundle kit",
                "parameters": [
                    {
                        "description": "ID of the bundle",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Line",
                        "name": "line",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.BundleKitCreate"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.BundleKitResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/bundles/{id}/totals": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bundles"
                ],
                "summary": "Get bundle totals",
                "parameters": [
                    {
                        "description": "ID of the bundle",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BundleTotalsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/items": {
            "post": {
                "description": "Creates a new item",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Items"
                ],
                "summary": "Create item",
                "parameters": [
                    {
                        "description": "Item",
                        "name": "item",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.ItemEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.ItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "get": {
                "description": "Returns a list of items ordered by code",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Items"
                ],
                "summary": "Get items",
                "parameters": [
                    {
                        "description": "Filter by code, * matches any characters",
                        "name": "code",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Filter by category",
                        "name": "category",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Filter by cost type",
                        "name": "costType",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Include soft-deleted items",
                        "name": "deleted",
                        "in": "query",
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ItemListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/items/{id}": {
            "get": {
                "description": "Returns a specific item, soft-deleted items included",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Items"
                ],
                "summary": "Get item",
                "parameters": [
                    {
                        "description": "ID of the item",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates an item. Only values to be updated need to be specified. Cost changes propagate to all kits, bundles and budgets using the item.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Items"
                ],
                "summary": "Update item",
                "parameters": [
                    {
                        "description": "ID of the item",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Item",
                        "name": "item",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.ItemEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes an item permanently. Fails while any kit or bundle uses it.",
                "tags": [
                    "Items"
                ],
                "summary": "Delete item",
                "parameters": [
                    {
                        "description": "ID of the item",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/items/{id}/restore": {
            "post": {
                "description": "Restores a soft-deleted item",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Items"
                ],
                "summary": "Restore item",
                "parameters": [
                    {
                        "description": "ID of the item",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/items/{id}/soft-delete": {
            "post": {
                "description": "Marks an item as deleted. It stops contributing to all totals immediately.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Items"
                ],
                "summary": "Soft-delete item",
                "parameters": [
                    {
                        "description": "ID of the item",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/kit-items/{id}": {
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Lines"
                ],
                "summary": "Update kit item",
                "parameters": [
                    {
                        "description": "ID of the line",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Line",
                        "name": "line",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.KitItemEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.KitItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Lines"
                ],
                "summary": "Delete kit item",
                "parameters": [
                    {
                        "description": "ID of the line",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/kits": {
            "post": {
                "description": "Creates a new, empty kit",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Kits"
                ],
                "summary": "Create kit",
                "parameters": [
                    {
                        "description": "Kit",
                        "name": "kit",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.KitEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.KitResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Kits"
                ],
                "summary": "Get kits",
                "parameters": [
                    {
                        "description": "Filter by code, * matches any characters",
                        "name": "code",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Include deleted kits",
                        "name": "deleted",
                        "in": "query",
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.KitListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/kits/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Kits"
                ],
                "summary": "Get kit",
                "parameters": [
                    {
                        "description": "ID of the kit",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.KitResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates the descriptive fields of a kit. The totals can not be set.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Kits"
                ],
                "summary": "Update kit",
                "parameters": [
                    {
                        "description": "ID of the kit",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Kit",
                        "name": "kit",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.KitEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.KitResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a kit and its lines. Fails while any bundle uses the kit.",
                "tags": [
                    "Kits"
                ],
                "summary": "Delete kit",
                "parameters": [
                    {
                        "description": "ID of the kit",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/kits/{id}/items": {
            "get": {
                "description": "Returns the lines of a kit with their items",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Kits"
                ],
                "summary": "Get kit items",
                "parameters": [
                    {
                        "description": "ID of the kit",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.KitItemListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "post": {
                "description": "Adds an item to a kit. If the kit already contains the item, the existing line is returned as existingId.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Kits"
                ],
                "summary": "Add kit item",
                "parameters": [
                    {
                        "description": "ID of the kit",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Line",
                        "name": "line",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/rollup.KitLine"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.KitItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "put": {
                "description": "Replaces the contents of a kit. Lines of items that stay keep their ID.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Kits"
                ],
                "summary": "Set kit items",
                "parameters": [
                    {
                        "description": "ID of the kit",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Lines",
                        "name": "lines",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/rollup.KitLine"
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.KitItemListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Edits several lines of a kit at once. All edits are applied or none is.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Kits"
                ],
                "summary": "Update kit items",
                "parameters": [
                    {
                        "description": "ID of the kit",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Edits",
                        "name": "edits",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/rollup.KitItemEdit"
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.KitItemListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/kits/{id}/totals": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Kits"
                ],
                "summary": "Get kit totals",
                "parameters": [
                    {
                        "description": "ID of the kit",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.KitTotalsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/locations": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Locations"
                ],
                "summary": "Create location",
                "parameters": [
                    {
                        "description": "Location",
                        "name": "location",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.LocationEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.LocationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Locations"
                ],
                "summary": "Get locations",
                "parameters": [
                    {
                        "description": "Filter by code, * matches any characters",
                        "name": "code",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Include soft-deleted locations",
                        "name": "deleted",
                        "in": "query",
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.LocationListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/locations/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Locations"
                ],
                "summary": "Get location",
                "parameters": [
                    {
                        "description": "ID of the location",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.LocationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Subsistence and hazard pay changes propagate to all budgets with staff at the location.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Locations"
                ],
                "summary": "Update location",
                "parameters": [
                    {
                        "description": "ID of the location",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Location",
                        "name": "location",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.LocationEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.LocationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Locations"
                ],
                "summary": "Delete location",
                "parameters": [
                    {
                        "description": "ID of the location",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/locations/{id}/restore": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Locations"
                ],
                "summary": "Restore location",
                "parameters": [
                    {
                        "description": "ID of the location",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.LocationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/locations/{id}/soft-delete": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Locations"
                ],
                "summary": "Soft-delete location",
                "parameters": [
                    {
                        "description": "ID of the location",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.LocationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/refresh": {
            "post": {
                "description": "Recalculates every kit, bundle and budget from their definitions",
                "tags": [
                    "Maintenance"
                ],
                "summary": "Refresh all budgets",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/staff": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Staff"
                ],
                "summary": "Create staff type",
                "parameters": [
                    {
                        "description": "Staff type",
                        "name": "staff",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.StaffEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.StaffResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Staff"
                ],
                "summary": "Get staff types",
                "parameters": [
                    {
                        "description": "Filter by name, * matches any characters",
                        "name": "name",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Filter by grade",
                        "name": "grade",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Include soft-deleted staff types",
                        "name": "deleted",
                        "in": "query",
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.StaffListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/staff/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Staff"
                ],
                "summary": "Get staff type",
                "parameters": [
                    {
                        "description": "ID of the staff type",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.StaffResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Salary and travel changes propagate to all budgets using the staff type.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Staff"
                ],
                "summary": "Update staff type",
                "parameters": [
                    {
                        "description": "ID of the staff type",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Staff type",
                        "name": "staff",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.StaffEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.StaffResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Staff"
                ],
                "summary": "Delete staff type",
                "parameters": [
                    {
                        "description": "ID of the staff type",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/staff/{id}/restore": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Staff"
                ],
                "summary": "Restore staff type",
                "parameters": [
                    {
                        "description": "ID of the staff type",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.StaffResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/staff/{id}/soft-delete": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Staff"
                ],
                "summary": "Soft-delete staff type",
                "parameters": [
                    {
                        "description": "ID of the staff type",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.StaffResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/verify": {
            "get": {
                "description": "Recalculates all totals and reports every stored total that differs. Nothing is written.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Maintenance"
                ],
                "summary": "Verify totals",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.VerifyResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.VersionResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        }
    },
    "definitions": {
        "httputil.HTTPError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "the association already exists"
                }
            }
        },
        "models.Budget": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 17
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "name": {
                    "type": "string",
                    "example": "Haiti Earthquake Response"
                },
                "description": {
                    "type": "string",
                    "example": "Telecommunications for the first six months"
                },
                "comments": {
                    "type": "string",
                    "example": ""
                },
                "totalOnetimeCosts": {
                    "type": "string",
                    "example": "220.00"
                },
                "totalRecurringCosts": {
                    "type": "string",
                    "example": "6216.00"
                }
            }
        },
        "models.BudgetBundle": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 4
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "budgetId": {
                    "type": "integer",
                    "example": 1
                },
                "bundleId": {
                    "type": "integer",
                    "example": 2
                },
                "bundle": {
                    "$ref": "#/definitions/models.Bundle"
                },
                "locationId": {
                    "type": "integer",
                    "example": 3
                },
                "location": {
                    "$ref": "#/definitions/models.Location"
                },
                "projectId": {
                    "type": "integer",
                    "example": 12
                },
                "quantity": {
                    "type": "integer",
                    "example": 2
                },
                "months": {
                    "type": "integer",
                    "example": 3
                },
                "startMonth": {
                    "type": "string",
                    "example": "2026-11-01T00:00:00Z"
                }
            }
        },
        "models.BudgetCosts": {
            "type": "object",
            "properties": {
                "totalOnetimeCosts": {
                    "type": "string",
                    "example": "220.00"
                },
                "totalRecurringCosts": {
                    "type": "string",
                    "example": "6216.00"
                }
            }
        },
        "models.BudgetStaff": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 4
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "budgetId": {
                    "type": "integer",
                    "example": 1
                },
                "staffId": {
                    "type": "integer",
                    "example": 5
                },
                "staff": {
                    "$ref": "#/definitions/models.Staff"
                },
                "locationId": {
                    "type": "integer",
                    "example": 3
                },
                "location": {
                    "$ref": "#/definitions/models.Location"
                },
                "projectId": {
                    "type": "integer",
                    "example": 12
                },
                "quantity": {
                    "type": "integer",
                    "example": 2
                },
                "months": {
                    "type": "integer",
                    "example": 3
                },
                "startMonth": {
                    "type": "string",
                    "example": "2026-11-01T00:00:00Z"
                }
            }
        },
        "models.Bundle": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 17
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "name": {
                    "type": "string",
                    "example": "Field Office Connectivity"
                },
                "description": {
                    "type": "string",
                    "example": "Everything a field office needs to stay connected"
                },
                "comments": {
                    "type": "string",
                    "example": ""
                },
                "totalUnitCost": {
                    "type": "string",
                    "example": "120.00"
                },
                "totalMonthlyCost": {
                    "type": "string",
                    "example": "12.00"
                }
            }
        },
        "models.BundleCosts": {
            "type": "object",
            "properties": {
                "totalUnitCost": {
                    "type": "string",
                    "example": "120.00"
                },
                "totalMonthlyCost": {
                    "type": "string",
                    "example": "12.00"
                }
            }
        },
        "models.BundleItem": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 4
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "bundleId": {
                    "type": "integer",
                    "example": 1
                },
                "itemId": {
                    "type": "integer",
                    "example": 4
                },
                "item": {
                    "$ref": "#/definitions/models.Item"
                },
                "quantity": {
                    "type": "integer",
                    "example": 2
                },
                "minutes": {
                    "type": "integer",
                    "example": 0
                },
                "megabytes": {
                    "type": "integer",
                    "example": 0
                }
            }
        },
        "models.BundleKit": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 4
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "bundleId": {
                    "type": "integer",
                    "example": 1
                },
                "kitId": {
                    "type": "integer",
                    "example": 2
                },
                "kit": {
                    "$ref": "#/definitions/models.Kit"
                },
                "quantity": {
                    "type": "integer",
                    "example": 2
                },
                "minutes": {
                    "type": "integer",
                    "example": 0
                },
                "megabytes": {
                    "type": "integer",
                    "example": 0
                }
            }
        },
        "models.Consumption": {
            "type": "object",
            "properties": {
                "quantity": {
                    "type": "integer",
                    "example": 2
                },
                "minutes": {
                    "type": "integer",
                    "example": 0
                },
                "megabytes": {
                    "type": "integer",
                    "example": 0
                }
            }
        },
        "models.Item": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 17
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "code": {
                    "type": "string",
                    "example": "VSAT-01"
                },
                "description": {
                    "type": "string",
                    "example": "VSAT terminal"
                },
                "category": {
                    "type": "string",
                    "example": "Satellite"
                },
                "costType": {
                    "type": "string",
                    "example": "one-time"
                },
                "unitCost": {
                    "type": "string",
                    "example": "1500.00"
                },
                "monthlyCost": {
                    "type": "string",
                    "example": "40.00"
                },
                "minuteCost": {
                    "type": "string",
                    "example": "0.50"
                },
                "megabyteCost": {
                    "type": "string",
                    "example": "2.00"
                },
                "comments": {
                    "type": "string",
                    "example": "Ordered from the regional warehouse"
                }
            }
        },
        "models.Kit": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 17
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "code": {
                    "type": "string",
                    "example": "VSAT-KIT"
                },
                "description": {
                    "type": "string",
                    "example": "Satellite uplink kit"
                },
                "comments": {
                    "type": "string",
                    "example": ""
                },
                "totalUnitCost": {
                    "type": "string",
                    "example": "30.00"
                },
                "totalMonthlyCost": {
                    "type": "string",
                    "example": "6.00"
                },
                "totalMinuteCost": {
                    "type": "string",
                    "example": "0.00"
                },
                "totalMegabyteCost": {
                    "type": "string",
                    "example": "0.00"
                }
            }
        },
        "models.KitCosts": {
            "type": "object",
            "properties": {
                "totalUnitCost": {
                    "type": "string",
                    "example": "30.00"
                },
                "totalMonthlyCost": {
                    "type": "string",
                    "example": "6.00"
                },
                "totalMinuteCost": {
                    "type": "string",
                    "example": "0.00"
                },
                "totalMegabyteCost": {
                    "type": "string",
                    "example": "0.00"
                }
            }
        },
        "models.KitItem": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 4
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "kitId": {
                    "type": "integer",
                    "example": 1
                },
                "itemId": {
                    "type": "integer",
                    "example": 4
                },
                "item": {
                    "$ref": "#/definitions/models.Item"
                },
                "quantity": {
                    "type": "integer",
                    "example": 3
                }
            }
        },
        "models.Location": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 17
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "code": {
                    "type": "string",
                    "example": "PAP"
                },
                "description": {
                    "type": "string",
                    "example": "Port-au-Prince"
                },
                "subsistence": {
                    "type": "string",
                    "example": "120"
                },
                "hazardPay": {
                    "type": "string",
                    "example": "250"
                },
                "comments": {
                    "type": "string",
                    "example": ""
                }
            }
        },
        "models.Staff": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 17
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "name": {
                    "type": "string",
                    "example": "Field Engineer"
                },
                "grade": {
                    "type": "string",
                    "example": "P3"
                },
                "salary": {
                    "type": "string",
                    "example": "4200"
                },
                "travel": {
                    "type": "string",
                    "example": "850"
                },
                "currency": {
                    "type": "string",
                    "example": "USD"
                },
                "comments": {
                    "type": "string",
                    "example": "Deployed for the emergency phase"
                }
            }
        },
        "rollup.BudgetLines": {
            "type": "object",
            "properties": {
                "staff": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.BudgetStaff"
                    }
                },
                "bundles": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.BudgetBundle"
                    }
                }
            }
        },
        "rollup.BundleContent": {
            "type": "object",
            "properties": {
                "kitId": {
                    "type": "integer",
                    "example": 2
                },
                "itemId": {
                    "type": "integer"
                },
                "quantity": {
                    "type": "integer",
                    "example": 2
                },
                "minutes": {
                    "type": "integer",
                    "example": 0
                },
                "megabytes": {
                    "type": "integer",
                    "example": 0
                }
            }
        },
        "rollup.BundleContents": {
            "type": "object",
            "properties": {
                "kits": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.BundleKit"
                    }
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.BundleItem"
                    }
                }
            }
        },
        "rollup.BundleEntry": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 4
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "budgetId": {
                    "type": "integer",
                    "example": 1
                },
                "bundleId": {
                    "type": "integer",
                    "example": 2
                },
                "bundle": {
                    "$ref": "#/definitions/models.Bundle"
                },
                "locationId": {
                    "type": "integer",
                    "example": 3
                },
                "location": {
                    "$ref": "#/definitions/models.Location"
                },
                "projectId": {
                    "type": "integer",
                    "example": 12
                },
                "quantity": {
                    "type": "integer",
                    "example": 2
                },
                "months": {
                    "type": "integer",
                    "example": 3
                },
                "startMonth": {
                    "type": "string",
                    "example": "2026-11-01T00:00:00Z"
                },
                "kits": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/rollup.KitEntry"
                    }
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.BundleItem"
                    }
                },
                "onetimeCost": {
                    "type": "string",
                    "example": "120"
                },
                "recurringCost": {
                    "type": "string",
                    "example": "36"
                }
            }
        },
        "rollup.BundleLine": {
            "type": "object",
            "properties": {
                "bundleId": {
                    "type": "integer",
                    "example": 2
                },
                "locationId": {
                    "type": "integer",
                    "example": 3
                },
                "projectId": {
                    "type": "integer",
                    "example": 12
                },
                "quantity": {
                    "type": "integer",
                    "example": 2
                },
                "months": {
                    "type": "integer",
                    "example": 3
                },
                "startMonth": {
                    "type": "string",
                    "example": "2026-11-01T00:00:00Z"
                }
            }
        },
        "rollup.Drift": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string",
                    "example": "kit"
                },
                "id": {
                    "type": "integer",
                    "example": 3
                },
                "field": {
                    "type": "string",
                    "example": "totalUnitCost"
                },
                "stored": {
                    "type": "string",
                    "example": "30"
                },
                "expected": {
                    "type": "string",
                    "example": "60"
                }
            }
        },
        "rollup.KitEntry": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 4
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "bundleId": {
                    "type": "integer",
                    "example": 1
                },
                "kitId": {
                    "type": "integer",
                    "example": 2
                },
                "kit": {
                    "$ref": "#/definitions/models.Kit"
                },
                "quantity": {
                    "type": "integer",
                    "example": 2
                },
                "minutes": {
                    "type": "integer",
                    "example": 0
                },
                "megabytes": {
                    "type": "integer",
                    "example": 0
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.KitItem"
                    }
                }
            }
        },
        "rollup.KitItemEdit": {
            "type": "object",
            "properties": {
                "itemId": {
                    "type": "integer",
                    "example": 4
                },
                "quantity": {
                    "type": "integer",
                    "example": 5
                },
                "delete": {
                    "type": "boolean"
                }
            }
        },
        "rollup.KitLine": {
            "type": "object",
            "properties": {
                "itemId": {
                    "type": "integer",
                    "example": 4
                },
                "quantity": {
                    "type": "integer",
                    "example": 3
                }
            }
        },
        "rollup.Overlays": {
            "type": "object",
            "properties": {
                "shippingPercent": {
                    "type": "string",
                    "example": "15"
                },
                "logisticsPercent": {
                    "type": "string",
                    "example": "0"
                },
                "adminPercent": {
                    "type": "string",
                    "example": "0"
                },
                "indirectPercent": {
                    "type": "string",
                    "example": "7"
                }
            }
        },
        "rollup.Snapshot": {
            "type": "object",
            "properties": {
                "budget": {
                    "$ref": "#/definitions/models.Budget"
                },
                "currency": {
                    "type": "string",
                    "example": "USD"
                },
                "overlays": {
                    "$ref": "#/definitions/rollup.Overlays"
                },
                "staff": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/rollup.StaffEntry"
                    }
                },
                "bundles": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/rollup.BundleEntry"
                    }
                },
                "takenAt": {
                    "type": "string",
                    "example": "2026-10-19T09:12:44Z"
                }
            }
        },
        "rollup.StaffEntry": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 4
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "budgetId": {
                    "type": "integer",
                    "example": 1
                },
                "staffId": {
                    "type": "integer",
                    "example": 5
                },
                "staff": {
                    "$ref": "#/definitions/models.Staff"
                },
                "locationId": {
                    "type": "integer",
                    "example": 3
                },
                "location": {
                    "$ref": "#/definitions/models.Location"
                },
                "projectId": {
                    "type": "integer",
                    "example": 12
                },
                "quantity": {
                    "type": "integer",
                    "example": 2
                },
                "months": {
                    "type": "integer",
                    "example": 3
                },
                "startMonth": {
                    "type": "string",
                    "example": "2026-11-01T00:00:00Z"
                },
                "onetimeCost": {
                    "type": "string",
                    "example": "100"
                },
                "recurringCost": {
                    "type": "string",
                    "example": "6180"
                }
            }
        },
        "rollup.StaffLine": {
            "type": "object",
            "properties": {
                "staffId": {
                    "type": "integer",
                    "example": 5
                },
                "locationId": {
                    "type": "integer",
                    "example": 3
                },
                "projectId": {
                    "type": "integer",
                    "example": 12
                },
                "quantity": {
                    "type": "integer",
                    "example": 2
                },
                "months": {
                    "type": "integer",
                    "example": 3
                },
                "startMonth": {
                    "type": "string",
                    "example": "2026-11-01T00:00:00Z"
                }
            }
        },
        "router.RootLinks": {
            "type": "object",
            "properties": {
                "docs": {
                    "type": "string",
                    "example": "https://example.com/api/docs/index.html"
                },
                "healthz": {
                    "type": "string",
                    "example": "https://example.com/api/healthz"
                },
                "version": {
                    "type": "string",
                    "example": "https://example.com/api/version"
                },
                "metrics": {
                    "type": "string",
                    "example": "https://example.com/api/metrics"
                },
                "v1": {
                    "type": "string",
                    "example": "https://example.com/api/v1"
                }
            }
        },
        "router.RootResponse": {
            "type": "object",
            "properties": {
                "links": {
                    "$ref": "#/definitions/router.RootLinks"
                }
            }
        },
        "router.V1Links": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "string",
                    "example": "https://example.com/api/v1/items"
                },
                "staff": {
                    "type": "string",
                    "example": "https://example.com/api/v1/staff"
                },
                "locations": {
                    "type": "string",
                    "example": "https://example.com/api/v1/locations"
                },
                "kits": {
                    "type": "string",
                    "example": "https://example.com/api/v1/kits"
                },
                "bundles": {
                    "type": "string",
                    "example": "https://example.com/api/v1/bundles"
                },
                "budgets": {
                    "type": "string",
                    "example": "https://example.com/api/v1/budgets"
                },
                "verify": {
                    "type": "string",
                    "example": "https://example.com/api/v1/verify"
                },
                "refresh": {
                    "type": "string",
                    "example": "https://example.com/api/v1/refresh"
                }
            }
        },
        "router.V1Response": {
            "type": "object",
            "properties": {
                "links": {
                    "$ref": "#/definitions/router.V1Links"
                }
            }
        },
        "router.VersionObject": {
            "type": "object",
            "properties": {
                "version": {
                    "type": "string",
                    "example": "1.1.0"
                }
            }
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/router.VersionObject"
                }
            }
        },
        "v1.Budget": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 17
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "name": {
                    "type": "string",
                    "example": "Haiti Earthquake Response"
                },
                "description": {
                    "type": "string",
                    "example": "Telecommunications for the first six months"
                },
                "comments": {
                    "type": "string",
                    "example": ""
                },
                "totalOnetimeCosts": {
                    "type": "string",
                    "example": "220.00"
                },
                "totalRecurringCosts": {
                    "type": "string",
                    "example": "6216.00"
                },
                "links": {
                    "$ref": "#/definitions/v1.BudgetLinks"
                }
            }
        },
        "v1.BudgetBundleResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.BudgetBundle"
                }
            }
        },
        "v1.BudgetEditable": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Haiti Earthquake Response"
                },
                "description": {
                    "type": "string",
                    "example": "Telecommunications for the first months"
                },
                "comments": {
                    "type": "string",
                    "example": ""
                }
            }
        },
        "v1.BudgetLinesEditable": {
            "type": "object",
            "properties": {
                "staff": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/rollup.StaffLine"
                    }
                },
                "bundles": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/rollup.BundleLine"
                    }
                }
            }
        },
        "v1.BudgetLinesResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/rollup.BudgetLines"
                }
            }
        },
        "v1.BudgetLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "example": "https://example.com/api/v1/budgets/1"
                },
                "lines": {
                    "type": "string",
                    "example": "https://example.com/api/v1/budgets/1/lines"
                },
                "totals": {
                    "type": "string",
                    "example": "https://example.com/api/v1/budgets/1/totals"
                },
                "snapshot": {
                    "type": "string",
                    "example": "https://example.com/api/v1/budgets/1/snapshot"
                },
                "refresh": {
                    "type": "string",
                    "example": "https://example.com/api/v1/budgets/1/refresh"
                }
            }
        },
        "v1.BudgetListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Budget"
                    }
                }
            }
        },
        "v1.BudgetResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.Budget"
                }
            }
        },
        "v1.BudgetStaffResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.BudgetStaff"
                }
            }
        },
        "v1.BudgetTotalsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.BudgetCosts"
                }
            }
        },
        "v1.Bundle": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 17
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "name": {
                    "type": "string",
                    "example": "Field Office Connectivity"
                },
                "description": {
                    "type": "string",
                    "example": "Everything a field office needs to stay connected"
                },
                "comments": {
                    "type": "string",
                    "example": ""
                },
                "totalUnitCost": {
                    "type": "string",
                    "example": "120.00"
                },
                "totalMonthlyCost": {
                    "type": "string",
                    "example": "12.00"
                },
                "links": {
                    "$ref": "#/definitions/v1.BundleLinks"
                }
            }
        },
        "v1.BundleContentsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/rollup.BundleContents"
                }
            }
        },
        "v1.BundleEditable": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Field Office Connectivity"
                },
                "description": {
                    "type": "string",
                    "example": "Everything a field office needs online"
                },
                "comments": {
                    "type": "string",
                    "example": ""
                }
            }
        },
        "v1.BundleItemCreate": {
            "type": "object",
            "properties": {
                "itemId": {
                    "type": "integer",
                    "example": 4
                },
                "quantity": {
                    "type": "integer",
                    "example": 2
                },
                "minutes": {
                    "type": "integer",
                    "example": 0
                },
                "megabytes": {
                    "type": "integer",
                    "example": 0
                }
            }
        },
        "v1.BundleItemResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.BundleItem"
                }
            }
        },
        "v1.BundleKitCreate": {
            "type": "object",
            "properties": {
                "kitId": {
                    "type": "integer",
                    "example": 2
                },
                "quantity": {
                    "type": "integer",
                    "example": 2
                },
                "minutes": {
                    "type": "integer",
                    "example": 0
                },
                "megabytes": {
                    "type": "integer",
                    "example": 0
                }
            }
        },
        "v1.BundleKitResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.BundleKit"
                }
            }
        },
        "v1.BundleLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "example": "https://example.com/api/v1/bundles/1"
                },
                "contents": {
                    "type": "string",
                    "example": "https://example.com/api/v1/bundles/1/contents"
                },
                "totals": {
                    "type": "string",
                    "example": "https://example.com/api/v1/bundles/1/totals"
                }
            }
        },
        "v1.BundleListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Bundle"
                    }
                }
            }
        },
        "v1.BundleResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.Bundle"
                }
            }
        },
        "v1.BundleTotalsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.BundleCosts"
                }
            }
        },
        "v1.Item": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 17
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "code": {
                    "type": "string",
                    "example": "VSAT-01"
                },
                "description": {
                    "type": "string",
                    "example": "VSAT terminal"
                },
                "category": {
                    "type": "string",
                    "example": "Satellite"
                },
                "costType": {
                    "type": "string",
                    "example": "one-time"
                },
                "unitCost": {
                    "type": "string",
                    "example": "1500.00"
                },
                "monthlyCost": {
                    "type": "string",
                    "example": "40.00"
                },
                "minuteCost": {
                    "type": "string",
                    "example": "0.50"
                },
                "megabyteCost": {
                    "type": "string",
                    "example": "2.00"
                },
                "comments": {
                    "type": "string",
                    "example": "Ordered from the regional warehouse"
                },
                "links": {
                    "$ref": "#/definitions/v1.ItemLinks"
                }
            }
        },
        "v1.ItemEditable": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string",
                    "example": "VSAT-01"
                },
                "description": {
                    "type": "string",
                    "example": "VSAT terminal"
                },
                "category": {
                    "type": "string",
                    "example": "Satellite"
                },
                "costType": {
                    "type": "string",
                    "example": "one-time"
                },
                "unitCost": {
                    "type": "string",
                    "example": "1500.00"
                },
                "monthlyCost": {
                    "type": "string",
                    "example": "40.00"
                },
                "minuteCost": {
                    "type": "string",
                    "example": "0.50"
                },
                "megabyteCost": {
                    "type": "string",
                    "example": "2.00"
                },
                "comments": {
                    "type": "string",
                    "example": "Ordered from the regional warehouse"
                }
            }
        },
        "v1.ItemLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "example": "https://example.com/api/v1/items/4"
                }
            }
        },
        "v1.ItemListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Item"
                    }
                }
            }
        },
        "v1.ItemResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.Item"
                }
            }
        },
        "v1.Kit": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 17
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "code": {
                    "type": "string",
                    "example": "VSAT-KIT"
                },
                "description": {
                    "type": "string",
                    "example": "Satellite uplink kit"
                },
                "comments": {
                    "type": "string",
                    "example": ""
                },
                "totalUnitCost": {
                    "type": "string",
                    "example": "30.00"
                },
                "totalMonthlyCost": {
                    "type": "string",
                    "example": "6.00"
                },
                "totalMinuteCost": {
                    "type": "string",
                    "example": "0.00"
                },
                "totalMegabyteCost": {
                    "type": "string",
                    "example": "0.00"
                },
                "links": {
                    "$ref": "#/definitions/v1.KitLinks"
                }
            }
        },
        "v1.KitEditable": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string",
                    "example": "VSAT-KIT"
                },
                "description": {
                    "type": "string",
                    "example": "Satellite uplink kit"
                },
                "comments": {
                    "type": "string",
                    "example": ""
                }
            }
        },
        "v1.KitItemEditable": {
            "type": "object",
            "properties": {
                "quantity": {
                    "type": "integer",
                    "example": 3
                }
            }
        },
        "v1.KitItemListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.KitItem"
                    }
                }
            }
        },
        "v1.KitItemResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.KitItem"
                }
            }
        },
        "v1.KitLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "example": "https://example.com/api/v1/kits/2"
                },
                "items": {
                    "type": "string",
                    "example": "https://example.com/api/v1/kits/2/items"
                },
                "totals": {
                    "type": "string",
                    "example": "https://example.com/api/v1/kits/2/totals"
                }
            }
        },
        "v1.KitListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Kit"
                    }
                }
            }
        },
        "v1.KitResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.Kit"
                }
            }
        },
        "v1.KitTotalsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.KitCosts"
                }
            }
        },
        "v1.Location": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 17
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "code": {
                    "type": "string",
                    "example": "PAP"
                },
                "description": {
                    "type": "string",
                    "example": "Port-au-Prince"
                },
                "subsistence": {
                    "type": "string",
                    "example": "120"
                },
                "hazardPay": {
                    "type": "string",
                    "example": "250"
                },
                "comments": {
                    "type": "string",
                    "example": ""
                },
                "links": {
                    "$ref": "#/definitions/v1.LocationLinks"
                }
            }
        },
        "v1.LocationEditable": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string",
                    "example": "PAP"
                },
                "description": {
                    "type": "string",
                    "example": "Port-au-Prince"
                },
                "subsistence": {
                    "type": "string",
                    "example": "120"
                },
                "hazardPay": {
                    "type": "string",
                    "example": "250"
                },
                "comments": {
                    "type": "string",
                    "example": "Office in the UNDP compound"
                }
            }
        },
        "v1.LocationLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "example": "https://example.com/api/v1/locations/3"
                }
            }
        },
        "v1.LocationListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Location"
                    }
                }
            }
        },
        "v1.LocationResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.Location"
                }
            }
        },
        "v1.SnapshotResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/rollup.Snapshot"
                }
            }
        },
        "v1.Staff": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 17
                },
                "createdAt": {
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "name": {
                    "type": "string",
                    "example": "Field Engineer"
                },
                "grade": {
                    "type": "string",
                    "example": "P3"
                },
                "salary": {
                    "type": "string",
                    "example": "4200"
                },
                "travel": {
                    "type": "string",
                    "example": "850"
                },
                "currency": {
                    "type": "string",
                    "example": "USD"
                },
                "comments": {
                    "type": "string",
                    "example": "Deployed for the emergency phase"
                },
                "links": {
                    "$ref": "#/definitions/v1.StaffLinks"
                }
            }
        },
        "v1.StaffEditable": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Field Engineer"
                },
                "grade": {
                    "type": "string",
                    "example": "P3"
                },
                "salary": {
                    "type": "string",
                    "example": "4200"
                },
                "travel": {
                    "type": "string",
                    "example": "850"
                },
                "currency": {
                    "type": "string",
                    "example": "USD"
                },
                "comments": {
                    "type": "string",
                    "example": "Deployed for the first phase"
                }
            }
        },
        "v1.StaffLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "example": "https://example.com/api/v1/staff/5"
                }
            }
        },
        "v1.StaffListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Staff"
                    }
                }
            }
        },
        "v1.StaffResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.Staff"
                }
            }
        },
        "v1.VerifyResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/rollup.Drift"
                    }
                }
            }
        },
        "v1.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "the association already exists: kit_item 4"
                },
                "existingId": {
                    "type": "integer",
                    "example": 4
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
