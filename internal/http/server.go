// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frostdesk/internal/ai"
	"frostdesk/internal/http/middleware"
	"frostdesk/internal/logger"
	"frostdesk/internal/modules/customer"
	"frostdesk/internal/modules/feedback"
	"frostdesk/internal/modules/scheduling"
)

type ServerDeps struct {
	Customers  *customer.Service
	Scheduling *scheduling.Service
	Feedback   *feedback.Service
	Answerer   ai.Answerer
	Log        *logger.Logger
}

type Server struct {
	customers  *customer.Service
	scheduling *scheduling.Service
	feedback   *feedback.Service
	answerer   ai.Answerer
	log        *logger.Logger
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		customers:  deps.Customers,
		scheduling: deps.Scheduling,
		feedback:   deps.Feedback,
		answerer:   deps.Answerer,
		log:        deps.Log,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	if s.log != nil {
		r.Use(middleware.Recovery(s.log))
		r.Use(middleware.Logging(s.log))
	}

	r.POST("/api/chat", s.HandleChat)
	r.POST("/api/service/schedule", s.HandleSchedule)
	r.POST("/api/feedback", s.HandleFeedback)
	r.GET("/api/feedback", s.HandleFeedbackHistory)
	r.GET("/api/offers", s.HandleOffers)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
