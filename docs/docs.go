// Package docs StressBuster API.
//
// Documentation of the StressBuster mental wellness API.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - bearer
//
//    SecurityDefinitions:
//    bearer:
//      type: apiKey
//      name: Authorization
//      in: header
//
// swagger:meta
package docs

import (
	"github.com/stressbuster/stressbuster-api/api/handlers"
	"github.com/stressbuster/stressbuster-api/chatbot"
	"github.com/stressbuster/stressbuster-api/models"
)

// swagger:route GET /api/health health healthEndpointID
// Reports whether the web service is alive.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route POST /api/auth/login auth loginEndpointID
// Signs a user or an admin in and returns a bearer token.
// responses:
//   200: authResponse

// The signed in account and its token
// swagger:response authResponse
type authResponseWrapper struct {
	// in:body
	Body handlers.AuthResponse
}

// swagger:route POST /api/chatbot/message chatbot chatbotMessageID
// Classifies a message and returns the canned support reply.
// responses:
//   200: chatReplyResponse

// The bot reply with the detected intent and sentiment
// swagger:response chatReplyResponse
type chatReplyResponseWrapper struct {
	// in:body
	Body chatbot.Reply
}

// swagger:route GET /api/appointments/slots/{counselorId}/{date} appointments slotsID
// Lists the free hourly slots of a counselor on a date.
// responses:
//   200: slotsResponse

// Free hourly start times formatted HH:MM:SS
// swagger:response slotsResponse
type slotsResponseWrapper struct {
	// in:body
	Body []string
}

// swagger:route POST /api/appointments appointments bookID
// Books a counseling session.
// responses:
//   201: bookResponse

// The created appointment
// swagger:response bookResponse
type bookResponseWrapper struct {
	// in:body
	Body handlers.BookResponse
}

// swagger:route GET /api/resources resources resourcesID
// Lists the active psychoeducation resources, paginated.
// responses:
//   200: resourcesResponse

// A page of resources
// swagger:response resourcesResponse
type resourcesResponseWrapper struct {
	// in:body
	Body []models.Resource
}
