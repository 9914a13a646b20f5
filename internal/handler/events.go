package handler

import (
	"net/http"

	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// ListEvents returns the whole collection classified at request time.
func (h *Handler) ListEvents(c *ginext.Context) {
	classified, err := h.eventService.FetchAndClassify(c.Request.Context(), h.now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventListResponse(classified, userID(identity(c))))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(event, userID(identity(c))))
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Category:    req.Category,
		Price:       req.Price,
		PosterURL:   req.PosterURL,
		VideoLink:   req.VideoLink,
		SpeakerName: req.SpeakerName,
	}

	event, err := h.eventService.Create(c.Request.Context(), identity(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event, ""))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Category:    req.Category,
		Price:       req.Price,
		PosterURL:   req.PosterURL,
		VideoLink:   req.VideoLink,
		SpeakerName: req.SpeakerName,
	}

	event, err := h.eventService.Update(c.Request.Context(), identity(c), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event, ""))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), identity(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) MyRegistrations(c *ginext.Context) {
	ident := identity(c)
	events, err := h.eventService.RegisteredFor(c.Request.Context(), ident)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events, userID(ident)))
}

// Creator dashboard

func (h *Handler) CreatorEvents(c *ginext.Context) {
	events, err := h.eventService.ListByCreator(c.Request.Context(), identity(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCreatorEventsResponse(events))
}

func (h *Handler) CreatorStats(c *ginext.Context) {
	stats, err := h.eventService.Stats(c.Request.Context(), identity(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreatorStatsResponse(stats))
}

func (h *Handler) EventRegistrations(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	regs, err := h.eventService.Registrations(c.Request.Context(), identity(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponses(regs))
}
