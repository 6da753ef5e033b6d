// Package docs Listing Service API.
//
// Сервис объявлений с геокодированным адресом: регистрация и вход,
// создание и изменение объявлений, поиск рядом с точкой, по меткам и ключевым словам.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	SecurityDefinitions:
//	BearerAuth:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
