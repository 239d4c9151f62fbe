package api

import (
	"net/http"
	"strconv"

	"playroom-booking/internal/domain/calendar"
	"playroom-booking/internal/domain/draft"
	reqdto "playroom-booking/internal/handler/dto/request"
	resdto "playroom-booking/internal/handler/dto/response"
	"playroom-booking/internal/handler/middleware"
	"playroom-booking/internal/pkg/config"
	"playroom-booking/internal/pkg/cookie"
	"playroom-booking/internal/usecase/commands"
	"playroom-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DraftHandler struct {
	cmds    commands.DraftCommands
	q       queries.DraftQueries
	cookies config.CookieConfig
	cfg     config.SessionConfig
}

func NewDraftHandler(cmds commands.DraftCommands, q queries.DraftQueries, cfg config.Config) *DraftHandler {
	return &DraftHandler{cmds: cmds, q: q, cookies: cfg.Cookie, cfg: cfg.Session}
}

// @Summary Start a booking draft
// @Description Start a fresh draft for this browser, replacing any previous one
// @Tags draft
// @Produce json
// @Param confirm query bool false "Discard a draft with a pending payment"
// @Success 201 {object} resdto.StartDraftResponse
// @Failure 409 {object} httperr.Response
// @Router /api/draft [post]
func (h *DraftHandler) Start(c *gin.Context) {
	ctx := c.Request.Context()
	if prev := cookie.GetSessionID(c); prev != "" {
		err := h.cmds.Discard(ctx, prev, c.Query("confirm") == "true")
		if err != nil && !isSessionGone(err) {
			abortWithUsecaseError(c, err)
			return
		}
	}

	actor := middleware.GetIdentity(c)
	res, err := h.cmds.Start(ctx, actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	view, err := h.q.GetDraft(ctx, res.SessionID, actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	cookie.SetSessionCookie(c, h.cookies, res.SessionID, h.cfg.TTL)
	c.JSON(http.StatusCreated, resdto.StartDraftResponse{SessionID: res.SessionID, Draft: view})
}

// @Summary Get the booking draft
// @Tags draft
// @Produce json
// @Success 200 {object} queries.DraftView
// @Failure 404 {object} httperr.Response
// @Router /api/draft [get]
func (h *DraftHandler) Get(c *gin.Context) {
	view, err := h.q.GetDraft(c.Request.Context(), middleware.GetSessionID(c), middleware.GetIdentity(c))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Discard the booking draft
// @Description Leaving while a payment is pending requires confirm=true
// @Tags draft
// @Param confirm query bool false "Confirm leaving a pending payment"
// @Success 204
// @Failure 409 {object} httperr.Response
// @Router /api/draft [delete]
func (h *DraftHandler) Discard(c *gin.Context) {
	confirm, _ := strconv.ParseBool(c.DefaultQuery("confirm", "false"))
	if err := h.cmds.Discard(c.Request.Context(), middleware.GetSessionID(c), confirm); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	cookie.ClearSessionCookie(c, h.cookies)
	c.Status(http.StatusNoContent)
}

// @Summary Set number of people
// @Tags draft
// @Accept json
// @Produce json
// @Param request body reqdto.SetPeopleRequest true "Party size"
// @Success 200 {object} resdto.MutationResponse
// @Router /api/draft/people [put]
func (h *DraftHandler) SetPeople(c *gin.Context) {
	var req reqdto.SetPeopleRequest
	if !bind(c, &req) {
		return
	}
	h.respond(c, func(sid string) (draft.Change, error) {
		return h.cmds.SetNumberOfPeople(c.Request.Context(), sid, req.NumberOfPeople)
	})
}

// @Summary Set console
// @Tags draft
// @Accept json
// @Produce json
// @Param request body reqdto.SetConsoleRequest true "Console"
// @Success 200 {object} resdto.MutationResponse
// @Router /api/draft/console [put]
func (h *DraftHandler) SetConsole(c *gin.Context) {
	var req reqdto.SetConsoleRequest
	if !bind(c, &req) {
		return
	}
	h.respond(c, func(sid string) (draft.Change, error) {
		return h.cmds.SetConsole(c.Request.Context(), sid, req.Console)
	})
}

// @Summary Set room type
// @Tags draft
// @Accept json
// @Produce json
// @Param request body reqdto.SetRoomRequest true "Room"
// @Success 200 {object} resdto.MutationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/draft/room [put]
func (h *DraftHandler) SetRoom(c *gin.Context) {
	var req reqdto.SetRoomRequest
	if !bind(c, &req) {
		return
	}
	h.respond(c, func(sid string) (draft.Change, error) {
		return h.cmds.SetRoom(c.Request.Context(), sid, req.RoomID)
	})
}

// @Summary Set unit
// @Tags draft
// @Accept json
// @Produce json
// @Param request body reqdto.SetUnitRequest true "Unit"
// @Success 200 {object} resdto.MutationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/draft/unit [put]
func (h *DraftHandler) SetUnit(c *gin.Context) {
	var req reqdto.SetUnitRequest
	if !bind(c, &req) {
		return
	}
	h.respond(c, func(sid string) (draft.Change, error) {
		return h.cmds.SetUnit(c.Request.Context(), sid, req.UnitID)
	})
}

// @Summary Select game
// @Tags draft
// @Accept json
// @Produce json
// @Param request body reqdto.SelectGameRequest true "Game"
// @Success 200 {object} resdto.MutationResponse
// @Router /api/draft/game [put]
func (h *DraftHandler) SelectGame(c *gin.Context) {
	var req reqdto.SelectGameRequest
	if !bind(c, &req) {
		return
	}
	h.respond(c, func(sid string) (draft.Change, error) {
		return h.cmds.SelectGame(c.Request.Context(), sid, req.ToDomain())
	})
}

// @Summary Set date
// @Tags draft
// @Accept json
// @Produce json
// @Param request body reqdto.SetDateRequest true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.MutationResponse
// @Router /api/draft/date [put]
func (h *DraftHandler) SetDate(c *gin.Context) {
	var req reqdto.SetDateRequest
	if !bind(c, &req) {
		return
	}
	date, err := req.ToDomain()
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	h.respond(c, func(sid string) (draft.Change, error) {
		return h.cmds.SetDate(c.Request.Context(), sid, date)
	})
}

// @Summary Set start time
// @Tags draft
// @Accept json
// @Produce json
// @Param request body reqdto.SetStartTimeRequest true "Start time (HH:MM)"
// @Success 200 {object} resdto.MutationResponse
// @Router /api/draft/start-time [put]
func (h *DraftHandler) SetStartTime(c *gin.Context) {
	var req reqdto.SetStartTimeRequest
	if !bind(c, &req) {
		return
	}
	t, err := req.ToDomain()
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	h.respond(c, func(sid string) (draft.Change, error) {
		return h.cmds.SetStartTime(c.Request.Context(), sid, t)
	})
}

// @Summary Set duration
// @Tags draft
// @Accept json
// @Produce json
// @Param request body reqdto.SetDurationRequest true "Hours"
// @Success 200 {object} resdto.MutationResponse
// @Router /api/draft/duration [put]
func (h *DraftHandler) SetDuration(c *gin.Context) {
	var req reqdto.SetDurationRequest
	if !bind(c, &req) {
		return
	}
	h.respond(c, func(sid string) (draft.Change, error) {
		return h.cmds.SetDuration(c.Request.Context(), sid, req.Duration)
	})
}

// @Summary Set notes
// @Tags draft
// @Accept json
// @Produce json
// @Param request body reqdto.SetNotesRequest true "Notes"
// @Success 200 {object} resdto.MutationResponse
// @Router /api/draft/notes [put]
func (h *DraftHandler) SetNotes(c *gin.Context) {
	var req reqdto.SetNotesRequest
	if !bind(c, &req) {
		return
	}
	h.respond(c, func(sid string) (draft.Change, error) {
		return h.cmds.SetNotes(c.Request.Context(), sid, req.Notes)
	})
}

// @Summary Go to step
// @Tags draft
// @Accept json
// @Produce json
// @Param request body reqdto.GoToStepRequest true "Step 1-4"
// @Success 200 {object} resdto.MutationResponse
// @Router /api/draft/step [put]
func (h *DraftHandler) GoToStep(c *gin.Context) {
	var req reqdto.GoToStepRequest
	if !bind(c, &req) {
		return
	}
	h.respond(c, func(sid string) (draft.Change, error) {
		return h.cmds.GoToStep(c.Request.Context(), sid, draft.Step(req.Step))
	})
}

// @Summary Add or update a food and drink item
// @Tags draft
// @Accept json
// @Produce json
// @Param itemId path string true "Item ID"
// @Param request body reqdto.UpsertFnbRequest true "Quantity; 0 removes"
// @Success 200 {object} resdto.MutationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/draft/fnbs/{itemId} [put]
func (h *DraftHandler) UpsertFnb(c *gin.Context) {
	var req reqdto.UpsertFnbRequest
	if !bind(c, &req) {
		return
	}
	itemID := c.Param("itemId")
	h.respond(c, func(sid string) (draft.Change, error) {
		return h.cmds.UpsertFood(c.Request.Context(), sid, itemID, *req.Quantity)
	})
}

// @Summary Remove a food and drink item
// @Tags draft
// @Produce json
// @Param itemId path string true "Item ID"
// @Success 200 {object} resdto.MutationResponse
// @Router /api/draft/fnbs/{itemId} [delete]
func (h *DraftHandler) RemoveFnb(c *gin.Context) {
	itemID := c.Param("itemId")
	h.respond(c, func(sid string) (draft.Change, error) {
		return h.cmds.RemoveFood(c.Request.Context(), sid, itemID)
	})
}

// @Summary Day availability for the selected unit
// @Tags availability
// @Produce json
// @Param month query string false "Month to show (YYYY-MM)"
// @Success 200 {object} queries.DaysView
// @Router /api/draft/availability/days [get]
func (h *DraftHandler) Days(c *gin.Context) {
	ctx := c.Request.Context()
	sid := middleware.GetSessionID(c)
	if m := c.Query("month"); m != "" {
		month, err := calendar.ParseDate(m + "-01")
		if err != nil {
			abortBadRequest(c, err)
			return
		}
		if err := h.cmds.ShowMonth(ctx, sid, month); err != nil {
			abortWithUsecaseError(c, err)
			return
		}
	}
	view, err := h.q.Days(ctx, sid)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Time slots for the selected unit and date
// @Tags availability
// @Produce json
// @Success 200 {object} queries.SlotsView
// @Router /api/draft/availability/times [get]
func (h *DraftHandler) Times(c *gin.Context) {
	if !h.retry(c) {
		return
	}
	view, err := h.q.Slots(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Valid durations for the selected start time
// @Tags availability
// @Produce json
// @Success 200 {object} queries.DurationsView
// @Router /api/draft/durations [get]
func (h *DraftHandler) Durations(c *gin.Context) {
	if !h.retry(c) {
		return
	}
	view, err := h.q.Durations(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// retry refetches failed or missing facts before they are read. Fetch failures
// land in the view, so only session errors stop the request.
func (h *DraftHandler) retry(c *gin.Context) bool {
	if err := h.cmds.RetryAvailability(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		abortWithUsecaseError(c, err)
		return false
	}
	return true
}

func (h *DraftHandler) respond(c *gin.Context, mutate func(sessionID string) (draft.Change, error)) {
	sid := middleware.GetSessionID(c)
	changed, err := mutate(sid)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	view, err := h.q.GetDraft(c.Request.Context(), sid, middleware.GetIdentity(c))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewMutationResponse(changed, view))
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		abortBadRequest(c, err)
		return false
	}
	return true
}
