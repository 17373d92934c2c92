package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"tripchat/internal/models/request_models"
	"tripchat/internal/services"
	"tripchat/pkg/utils"
)

type SessionController struct {
	sessionService services.ChatSessionServiceInterface
	tokens         *utils.SessionTokenIssuer
}

func NewSessionController(sessionService services.ChatSessionServiceInterface, tokens *utils.SessionTokenIssuer) *SessionController {
	return &SessionController{
		sessionService: sessionService,
		tokens:         tokens,
	}
}

// StartSessionHandler godoc
// @Summary Start a chat session
// @Description Creates a session seeded with the welcome message and returns a bearer token bound to it
// @Tags Sessions
// @Produce json
// @Success 201 {object} response_models.SessionResponse
// @Router /sessions [post]
func (s *SessionController) StartSessionHandler(c *gin.Context) {
	session, err := s.sessionService.StartSession(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	token, err := s.tokens.CreateToken(session.SessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	session.Token = token

	utils.RespondWithStatus(c, http.StatusCreated, session, "Session started")
}

// GetSessionHandler godoc
// @Summary Get a chat session
// @Tags Sessions
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.SessionResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions/{sessionId} [get]
func (s *SessionController) GetSessionHandler(c *gin.Context) {
	session, err := s.sessionService.GetSession(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Session fetched successfully")
}

// SendMessageHandler godoc
// @Summary Send one user message
// @Description The first message describes the trip; later messages edit the itinerary
// @Tags Sessions
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.SendMessageRequest true "User message"
// @Success 200 {object} response_models.TurnResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions/{sessionId}/messages [post]
func (s *SessionController) SendMessageHandler(c *gin.Context) {
	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	turn, err := s.sessionService.SendMessage(c.Request.Context(), c.Param("sessionId"), req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Reply generated"
	if turn.Duplicate {
		message = "Reply repeated an earlier answer and was skipped"
	}
	utils.RespondSuccess(c, turn, message)
}

// ExportCalendarHandler godoc
// @Summary Export the itinerary as iCalendar
// @Tags Sessions
// @Produce text/calendar
// @Param sessionId path string true "Session ID"
// @Param start query string false "Date of day 1 (YYYY-MM-DD), defaults to today"
// @Security BearerAuth
// @Router /sessions/{sessionId}/itinerary.ics [get]
func (s *SessionController) ExportCalendarHandler(c *gin.Context) {
	start := time.Now()
	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "start must be formatted YYYY-MM-DD")
			return
		}
		start = parsed
	}

	sessionId := c.Param("sessionId")
	body, err := s.sessionService.ExportCalendar(c.Request.Context(), sessionId, start)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="itinerary-%s.ics"`, sessionId))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", body)
}

// EndSessionHandler godoc
// @Summary End a chat session and discard its state
// @Tags Sessions
// @Param sessionId path string true "Session ID"
// @Security BearerAuth
// @Router /sessions/{sessionId} [delete]
func (s *SessionController) EndSessionHandler(c *gin.Context) {
	if err := s.sessionService.EndSession(c.Request.Context(), c.Param("sessionId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Session ended")
}
