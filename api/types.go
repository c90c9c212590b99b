package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler   projectHandler
	guestbookHandler guestbookHandler
	configHandler    configHandler
	contactHandler   contactHandler
	uploadHandler    uploadHandler
	authHandler      authHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error  string `json:"error" example:"Internal Server Error"`
	Status string `json:"status" example:"error"`
	Field  string `json:"field,omitempty" example:"title"`
}
