package handlers

import "github.com/gin-gonic/gin"

// Route binds a handler to an HTTP method and path pattern
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// RouteProvider is implemented by handlers that publish their own route table.
// The server registers every returned route as is.
type RouteProvider interface {
	Routes() []Route
}
