// Package gin wraps the gin-gonic engine instantiation, so the
// configuration layer can enable the standard middlewares without
// importing the framework package itself.
package gin

import "github.com/gin-gonic/gin"

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

// New creates a gin engine with the given middlewares installed, in
// order, instead of the gin.Default set.
func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.Use(middlewares...)
	return e
}

// Logger returns the request logging middleware.
func Logger() HandlerFunc {
	return gin.Logger()
}

// Recovery returns the panic recovery middleware, converting
// panicking handlers to 500 responses.
func Recovery() HandlerFunc {
	return gin.Recovery()
}
