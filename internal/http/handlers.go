// README: Request handlers for chat, scheduling, feedback, and offers.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frostdesk/internal/chat"
	"frostdesk/internal/modules/intent"
)

type chatReq struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

type chatResp struct {
	Intent string `json:"intent"`
	Reply  string `json:"reply"`
}

// HandleChat answers one stateless chat turn. The scheduling dialogue does not
// fit a single request, so a servicing intent points the caller at the
// schedule endpoint instead.
func (s *Server) HandleChat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Email == "" || req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing fields")
		return
	}

	view, err := s.customers.Resolve(c.Request.Context(), req.Email)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	in := intent.Classify(req.Message)
	resp := chatResp{Intent: string(in)}

	switch in {
	case intent.IntentExit:
		resp.Reply = chat.GoodbyeReply
	case intent.IntentMaintenance:
		resp.Reply = chat.MaintenanceReply(c.Request.Context(), s.answerer, view)
	case intent.IntentServicing:
		resp.Reply = "To schedule a service, POST your email and a date (YYYY-MM-DD) to /api/service/schedule."
	case intent.IntentWarranty:
		resp.Reply = chat.WarrantyReply(view)
	case intent.IntentGeneral:
		resp.Reply = chat.GeneralReply(c.Request.Context(), s.answerer, req.Message)
	default:
		resp.Reply = chat.OutOfDomainReply
	}
	c.JSON(http.StatusOK, resp)
}

type scheduleReq struct {
	Email string `json:"email"`
	Date  string `json:"date"`
}

func (s *Server) HandleSchedule(c *gin.Context) {
	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Email == "" || req.Date == "" {
		writeError(c, http.StatusBadRequest, "missing fields")
		return
	}

	res, err := s.scheduling.Schedule(c.Request.Context(), req.Email, req.Date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state": res.State,
		"date":  req.Date,
		"reply": res.Reply,
	})
}

type feedbackReq struct {
	Email string `json:"email"`
	Text  string `json:"text"`
}

func (s *Server) HandleFeedback(c *gin.Context) {
	var req feedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Email == "" || req.Text == "" {
		writeError(c, http.StatusBadRequest, "missing fields")
		return
	}

	view, err := s.customers.Resolve(c.Request.Context(), req.Email)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	res, err := s.feedback.Process(c.Request.Context(), view.CustomerID, req.Text)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":           res.Record.ID,
		"sentiment":    res.Sentiment,
		"action_items": res.ActionItems,
		"notice":       res.Notice,
	})
}

func (s *Server) HandleFeedbackHistory(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		writeError(c, http.StatusBadRequest, "missing email")
		return
	}
	view, err := s.customers.Resolve(c.Request.Context(), email)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	records, err := s.feedback.History(c.Request.Context(), view.CustomerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]gin.H, len(records))
	for i, rec := range records {
		out[i] = gin.H{
			"id":         rec.ID,
			"text":       rec.Text,
			"sentiment":  rec.Sentiment,
			"created_at": rec.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "feedback": out})
}

func (s *Server) HandleOffers(c *gin.Context) {
	offers, err := s.feedback.Offers(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": offers})
}
