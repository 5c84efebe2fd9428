// Package docs holds the swagger document served under /swagger.
// Regenerate with: swag init -g app/api/main.go -o app/api/docs
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
        "/auctions": {
            "get": {
                "description": "Auctions sorted by newest start time first, with the current quote of live ones",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auctions"
                ],
                "summary": "List auctions",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "paging offset",
                        "name": "skip",
                        "in": "query",
                        "example": 0
                    },
                    {
                        "type": "string",
                        "description": "case-insensitive name contains",
                        "name": "name",
                        "in": "query",
                        "example": "ape"
                    },
                    {
                        "type": "string",
                        "description": "auction state",
                        "name": "state",
                        "in": "query",
                        "enum": [
                            "None",
                            "Created",
                            "Closed",
                            "Cancelled"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/http.listResult"
                                },
                                "status": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/auctions/{assetId}": {
            "get": {
                "description": "Stored record plus the price quoted at request time",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auctions"
                ],
                "summary": "Get auction",
                "parameters": [
                    {
                        "type": "string",
                        "example": "collection:1",
                        "description": "asset id",
                        "name": "assetId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/auction.View"
                                },
                                "status": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/auctions/{assetId}/activities": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auctions"
                ],
                "summary": "List auction activities",
                "parameters": [
                    {
                        "type": "string",
                        "example": "collection:1",
                        "description": "asset id",
                        "name": "assetId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "paging offset",
                        "name": "skip",
                        "in": "query",
                        "example": 0
                    },
                    {
                        "type": "integer",
                        "description": "paging size",
                        "name": "limit",
                        "in": "query",
                        "example": 20
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/auction.Activity"
                                    }
                                },
                                "status": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/auctions/{assetId}/open": {
            "post": {
                "description": "Deposit the asset into custody and start a dutch auction with the given terms",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auctions"
                ],
                "summary": "Open auction",
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "example": "collection:1",
                        "description": "asset id",
                        "name": "assetId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "terms",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.open.params"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/auction.Auction"
                                },
                                "status": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "402": {
                        "description": "Payment Required"
                    },
                    "409": {
                        "description": "Conflict"
                    }
                }
            }
        },
        "/auctions/{assetId}/price": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auctions"
                ],
                "summary": "Quote auction price",
                "parameters": [
                    {
                        "type": "string",
                        "example": "collection:1",
                        "description": "asset id",
                        "name": "assetId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "unix seconds, now if omitted",
                        "name": "at",
                        "in": "query",
                        "example": 1650000600
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/auction.Quote"
                                },
                                "status": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "409": {
                        "description": "Conflict"
                    }
                }
            }
        },
        "/auctions/{assetId}/provision": {
            "post": {
                "description": "Create the empty auction record and custody slot of an asset",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auctions"
                ],
                "summary": "Provision auction",
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "example": "collection:1",
                        "description": "asset id",
                        "name": "assetId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/auction.Auction"
                                },
                                "status": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "409": {
                        "description": "Conflict"
                    }
                }
            }
        },
        "/auctions/{assetId}/reclaim": {
            "post": {
                "description": "Owner takes the asset back once the price reached the floor",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auctions"
                ],
                "summary": "Reclaim unsold asset",
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "example": "collection:1",
                        "description": "asset id",
                        "name": "assetId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/auction.Auction"
                                },
                                "status": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "409": {
                        "description": "Conflict"
                    },
                    "412": {
                        "description": "Precondition Failed"
                    }
                }
            }
        },
        "/auctions/{assetId}/settle": {
            "post": {
                "description": "Pay the current price, 95% to the owner and 5% to feeRecipient, and receive the asset",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auctions"
                ],
                "summary": "Buy at current price",
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "example": "collection:1",
                        "description": "asset id",
                        "name": "assetId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "params",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.settle.params"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/auction.Auction"
                                },
                                "status": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "402": {
                        "description": "Payment Required"
                    },
                    "409": {
                        "description": "Conflict"
                    },
                    "412": {
                        "description": "Precondition Failed"
                    }
                }
            }
        },
        "/auth/nonce/{address}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Get signing nonce",
                "parameters": [
                    {
                        "type": "string",
                        "example": "0xce4468e7ce84aceb74363f4ea64e5a038176f369",
                        "description": "account address",
                        "name": "address",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "string"
                                },
                                "status": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/auth/sign": {
            "post": {
                "description": "Create access token for given address",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Get access token",
                "parameters": [
                    {
                        "description": "params",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.sign.params"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "string"
                                },
                                "status": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/auth/signingMsgTemplate": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Get signing message template",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "object",
                                    "properties": {
                                        "template": {
                                            "type": "string"
                                        }
                                    }
                                },
                                "status": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/ens/reverse-resolve/{address}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ens"
                ],
                "summary": "Reverse resolve ENS name",
                "parameters": [
                    {
                        "type": "string",
                        "example": "0xce4468e7ce84aceb74363f4ea64e5a038176f369",
                        "description": "account address",
                        "name": "address",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/http.nameResult"
                                },
                                "status": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "502": {
                        "description": "Bad Gateway"
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "healthy": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/http.ResponseError"
                        }
                    }
                }
            }
        },
        "/ledger/assets": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ledger"
                ],
                "summary": "Mint asset unit",
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "holder and asset id",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.mint.params"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "string"
                                },
                                "status": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/ledger/credit": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ledger"
                ],
                "summary": "Credit currency",
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "holder and amount in minor units",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.credit.params"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "string"
                                },
                                "status": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/ledger/{holder}": {
            "get": {
                "description": "Currency and asset balances of an account address or custody slot id",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ledger"
                ],
                "summary": "Get balances",
                "parameters": [
                    {
                        "type": "string",
                        "example": "0xce4468e7ce84aceb74363f4ea64e5a038176f369",
                        "description": "account address or slot id",
                        "name": "holder",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/ledger.Balance"
                                    }
                                },
                                "status": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        }
    },
    "definitions": {
        "auction.Activity": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "assetId": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "open",
                        "settle",
                        "reclaim"
                    ]
                },
                "account": {
                    "type": "string"
                },
                "price": {
                    "type": "string",
                    "example": "9.5"
                },
                "ownerAmount": {
                    "type": "integer"
                },
                "feeAmount": {
                    "type": "integer"
                },
                "time": {
                    "type": "string"
                }
            }
        },
        "auction.Auction": {
            "type": "object",
            "properties": {
                "assetId": {
                    "type": "string"
                },
                "owner": {
                    "type": "string"
                },
                "custodyRef": {
                    "type": "string"
                },
                "startTime": {
                    "type": "integer"
                },
                "startPrice": {
                    "type": "string",
                    "example": "9.5"
                },
                "floorPrice": {
                    "type": "string",
                    "example": "9.5"
                },
                "decayStep": {
                    "type": "string",
                    "example": "9.5"
                },
                "decayIntervalMinutes": {
                    "type": "integer"
                },
                "state": {
                    "type": "string",
                    "enum": [
                        "None",
                        "Created",
                        "Closed",
                        "Cancelled"
                    ]
                },
                "settledPrice": {
                    "type": "string",
                    "example": "9.5"
                },
                "buyer": {
                    "type": "string"
                },
                "feeRecipient": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "imageUrl": {
                    "type": "string"
                },
                "openedAt": {
                    "type": "string"
                },
                "closedAt": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "auction.Quote": {
            "type": "object",
            "properties": {
                "price": {
                    "type": "string",
                    "example": "9.5"
                },
                "at": {
                    "type": "integer"
                },
                "started": {
                    "type": "boolean"
                },
                "atFloor": {
                    "type": "boolean"
                },
                "nextDecayAt": {
                    "type": "integer"
                }
            }
        },
        "auction.View": {
            "type": "object",
            "properties": {
                "assetId": {
                    "type": "string"
                },
                "owner": {
                    "type": "string"
                },
                "custodyRef": {
                    "type": "string"
                },
                "startTime": {
                    "type": "integer"
                },
                "startPrice": {
                    "type": "string",
                    "example": "9.5"
                },
                "floorPrice": {
                    "type": "string",
                    "example": "9.5"
                },
                "decayStep": {
                    "type": "string",
                    "example": "9.5"
                },
                "decayIntervalMinutes": {
                    "type": "integer"
                },
                "state": {
                    "type": "string",
                    "enum": [
                        "None",
                        "Created",
                        "Closed",
                        "Cancelled"
                    ]
                },
                "settledPrice": {
                    "type": "string",
                    "example": "9.5"
                },
                "buyer": {
                    "type": "string"
                },
                "feeRecipient": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "imageUrl": {
                    "type": "string"
                },
                "openedAt": {
                    "type": "string"
                },
                "closedAt": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "quote": {
                    "$ref": "#/definitions/auction.Quote"
                }
            }
        },
        "http.ResponseError": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "http.credit.params": {
            "type": "object",
            "properties": {
                "holder": {
                    "type": "string"
                },
                "amount": {
                    "type": "integer"
                }
            }
        },
        "http.listResult": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/auction.View"
                    }
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "http.mint.params": {
            "type": "object",
            "properties": {
                "holder": {
                    "type": "string"
                },
                "assetId": {
                    "type": "string"
                }
            }
        },
        "http.nameResult": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "http.open.params": {
            "type": "object",
            "properties": {
                "startTime": {
                    "type": "integer"
                },
                "startPrice": {
                    "type": "string",
                    "example": "9.5"
                },
                "floorPrice": {
                    "type": "string",
                    "example": "9.5"
                },
                "decayStep": {
                    "type": "string",
                    "example": "9.5"
                },
                "decayIntervalMinutes": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "imageUrl": {
                    "type": "string"
                }
            }
        },
        "http.settle.params": {
            "type": "object",
            "properties": {
                "feeRecipient": {
                    "type": "string"
                }
            }
        },
        "http.sign.params": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "signature": {
                    "type": "string"
                }
            }
        },
        "ledger.Balance": {
            "type": "object",
            "properties": {
                "holder": {
                    "type": "string"
                },
                "kind": {
                    "type": "string",
                    "enum": [
                        "currency",
                        "asset"
                    ]
                },
                "assetId": {
                    "type": "string"
                },
                "amount": {
                    "type": "integer"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "description": "retrieve token from #/auth/post_auth_sign and apply with 'bearer {token}'",
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dutch Auction API",
	Description:      "Single-asset dutch auctions with custody and settlement.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
