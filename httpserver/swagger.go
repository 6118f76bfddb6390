package httpserver

import echoSwagger "github.com/swaggo/echo-swagger"

// RegisterSwaggerRoutes serves the swagger UI for the submission API.
func (s *Server) RegisterSwaggerRoutes() {
	s.Router.GET("/swagger/*", echoSwagger.WrapHandler)
}
