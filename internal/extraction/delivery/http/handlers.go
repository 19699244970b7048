package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nadavsuissa/EmailManager-sub000/internal/middleware"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/response"
)

// Extract godoc
// @Summary     Extract tasks from an email
// @Description Runs the extraction pipeline on one email and optionally saves the result and schedules calendar events for resolved deadlines.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Email content"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/extractions [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.uc.Extract(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp := extractResp{Result: result}

	if req.Save {
		saved, saveErr := h.uc.SaveResult(ctx, sc, result)
		if saveErr != nil {
			h.l.Errorf(ctx, "uc.SaveResult: %v", saveErr)
		} else {
			resp.SavedID = saved.ID
		}
	}

	if req.Schedule {
		out, schedErr := h.uc.ScheduleDeadlines(ctx, sc, req.toScheduleInput(result))
		if schedErr != nil {
			h.l.Errorf(ctx, "uc.ScheduleDeadlines: %v", schedErr)
		} else {
			resp.ScheduledCount = out.ScheduledCount
		}
	}

	response.OK(c, resp)
}

// List godoc
// @Summary     List saved extraction results
// @Description Returns the caller's saved extraction results, newest first.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       limit query int false "Page size (default: 20)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/extractions [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListResults(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListResults: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}
