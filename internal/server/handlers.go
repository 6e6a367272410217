package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	proposal "github.com/alnah/go-proposal"
	"github.com/alnah/go-proposal/internal/store"
)

// healthTimeout bounds the store ping of a health check.
const healthTimeout = 5 * time.Second

// webhookRequest is the body posted by the call-recording workflow.
type webhookRequest struct {
	VoiceID    string `json:"elevenlabs_voice_id" binding:"required"`
	Transcript string `json:"transcript"`
	AudioURL   string `json:"audio_url"`
	ClientName string `json:"client_name"`
}

// webhookResponse acknowledges a stored voice log.
type webhookResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

// proposalResponse is the markdown proposal of a voice log.
type proposalResponse struct {
	ID       int64  `json:"id"`
	VoiceID  string `json:"voice_id"`
	Category string `json:"category"`
	Proposal string `json:"proposal"`
}

// healthResponse reports service health.
type healthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// createVoiceLog handles POST /api/v1/webhook/n8n.
func (s *Server) createVoiceLog(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var req webhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if len(req.VoiceID) > proposal.MaxVoiceIDLength {
		_ = c.Error(fmt.Errorf("%w: %d chars (max %d)", proposal.ErrInvalidVoiceID, len(req.VoiceID), proposal.MaxVoiceIDLength))
		return
	}
	if len(req.ClientName) > proposal.MaxClientNameLength {
		_ = c.Error(fmt.Errorf("%w: %d chars (max %d)", proposal.ErrInvalidClientName, len(req.ClientName), proposal.MaxClientNameLength))
		return
	}

	v := &store.VoiceLog{
		VoiceID:    req.VoiceID,
		Transcript: req.Transcript,
		AudioURL:   req.AudioURL,
		ClientName: req.ClientName,
	}
	if err := s.store.Create(c.Request.Context(), v); err != nil {
		_ = c.Error(err)
		return
	}

	s.log.WithFields(logrus.Fields{"id": v.ID, "voice_id": v.VoiceID}).Info("voice log stored")
	c.JSON(http.StatusOK, webhookResponse{Status: "success", ID: v.ID})
}

// listVoiceLogs handles GET /api/v1/voice_logs?skip=&limit=.
func (s *Server) listVoiceLogs(c *gin.Context) {
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		_ = c.Error(err)
		return
	}
	limit, err := queryInt(c, "limit", store.DefaultListLimit)
	if err != nil {
		_ = c.Error(err)
		return
	}

	logs, err := s.store.List(c.Request.Context(), skip, limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// proposalJSON handles GET /api/v1/voice_logs/:id/proposal.
func (s *Server) proposalJSON(c *gin.Context) {
	v, res, ok := s.generate(c, proposal.Input{SkipPDF: true})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, proposalResponse{
		ID:       v.ID,
		VoiceID:  v.VoiceID,
		Category: res.Document.Category.String(),
		Proposal: res.Document.Markdown,
	})
}

// proposalHTML handles GET /api/v1/voice_logs/:id/proposal/html.
func (s *Server) proposalHTML(c *gin.Context) {
	_, res, ok := s.generate(c, proposal.Input{HTML: true, SkipPDF: true})
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", res.HTML)
}

// proposalPDF handles GET /api/v1/voice_logs/:id/proposal/pdf.
func (s *Server) proposalPDF(c *gin.Context) {
	v, res, ok := s.generate(c, proposal.Input{})
	if !ok {
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=proposal_%d.pdf", v.ID))
	c.Data(http.StatusOK, "application/pdf", res.PDF)
}

// generate loads the voice log named by the :id parameter and runs the
// generator on it. On failure it records the error and returns false.
func (s *Server) generate(c *gin.Context, in proposal.Input) (*store.VoiceLog, *proposal.Result, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Error(fmt.Errorf("%w: voice log id must be a positive integer", errBadRequest))
		return nil, nil, false
	}

	ctx := c.Request.Context()
	v, err := s.store.Get(ctx, id)
	if err != nil {
		_ = c.Error(err)
		return nil, nil, false
	}

	in.Transcript = v.Transcript
	in.VoiceID = v.VoiceID
	in.ClientName = v.ClientName

	res, err := s.gen.Generate(ctx, in)
	if err != nil {
		_ = c.Error(fmt.Errorf("generating proposal for voice log %d: %w", id, err))
		return nil, nil, false
	}

	s.log.WithFields(logrus.Fields{
		"id":                v.ID,
		"category":          res.Document.Category.String(),
		"budget_fallback":   res.Document.BudgetFallback,
		"timeline_fallback": res.Document.TimelineFallback,
		"pages":             res.Pages,
	}).Debug("proposal generated")

	return v, res, true
}

// health handles GET /healthz. Stores that can ping are checked.
func (s *Server) health(c *gin.Context) {
	checks := map[string]string{"store": "healthy"}
	status, code := "healthy", http.StatusOK

	if p, ok := s.store.(Pinger); ok {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			checks["store"] = "unhealthy: " + err.Error()
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
	}

	c.JSON(code, healthResponse{Status: status, Timestamp: s.now().UTC(), Checks: checks})
}

// queryInt parses an optional integer query parameter.
func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", errBadRequest, name)
	}
	return n, nil
}
