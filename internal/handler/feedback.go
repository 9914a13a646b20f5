package handler

import (
	"net/http"

	"github.com/stpnv0/EventZone/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) SubmitFeedback(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	fb, err := h.feedbackService.Submit(c.Request.Context(), identity(c), id, req.Feedback)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFeedbackResponse(*fb))
}

func (h *Handler) CreatorFeedback(c *ginext.Context) {
	groups, err := h.feedbackService.ListForCreator(c.Request.Context(), identity(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventFeedbackResponses(groups))
}
