package handlers

import (
	"coden/services/auth"
)

// HandlerBundle groups the endpoint handlers and the session service that
// route registration needs for auth middleware.
type HandlerBundle struct {
	Sessions auth.SessionService

	Booking *BookingHandler
	Auth    *AuthHandler
	Area    *AreaHandler
}
