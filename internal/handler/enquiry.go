package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/stpnv0/EventZone/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) SubmitEnquiry(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	enq, err := h.enquiryService.Submit(c.Request.Context(), identity(c), id, req.Subject, req.Message)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEnquiryResponse(*enq))
}

func (h *Handler) ReplyEnquiry(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid enquiry index"})
		return
	}

	var req dto.ReplyRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	enq, err := h.enquiryService.Reply(c.Request.Context(), identity(c), id, index, req.Reply, req.EnquiryID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.ToEnquiryResponse(*enq)
	resp.Index = index
	c.JSON(http.StatusOK, resp)
}

// DeleteEnquiry takes the enquiry's timestamp as RFC3339 or as unix milliseconds.
func (h *Handler) DeleteEnquiry(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	ts, err := parseTimestamp(c.Query("timestamp"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid timestamp"})
		return
	}

	if err = h.enquiryService.Delete(c.Request.Context(), identity(c), id, ts); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) MyEnquiries(c *ginext.Context) {
	refs, err := h.enquiryService.ListMine(c.Request.Context(), identity(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnquiryRefResponses(refs))
}

func (h *Handler) CreatorEnquiries(c *ginext.Context) {
	groups, err := h.enquiryService.ListForCreator(c.Request.Context(), identity(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventEnquiriesResponses(groups))
}

func parseTimestamp(raw string) (time.Time, error) {
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	return time.Parse(time.RFC3339Nano, raw)
}
