package calendar

import (
	"net/http"
	"strings"

	"innkeep/infras/otel"
	"innkeep/internal/domains/calendar/service"
	"innkeep/shared/constant"
	"innkeep/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Calendar
	otel    otel.Otel
}

func New(service service.Calendar, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/calendar", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCalendar)
	})
}

// GetCalendar projects active bookings onto a scheduling grid.
// @Summary Get the booking calendar
// @Description Project every active booking intersecting the window onto display events, optionally scoped to a set of rooms.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param window_start query string true "Window start date (YYYY-MM-DD)"
// @Param window_end query string true "Window end date (YYYY-MM-DD)"
// @Param room_id query string false "Comma-separated room IDs to scope the projection"
// @Success 200 {object} response.Data[dto.GetCalendarResponse] "Calendar events"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar [get]
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	windowStart := r.URL.Query().Get("window_start")
	windowEnd := r.URL.Query().Get("window_end")

	roomIDs := []string{}
	if raw := r.URL.Query().Get("room_id"); raw != "" {
		roomIDs = strings.Split(raw, ",")
	}

	calendar, err := handler.service.Project(ctx, roomIDs, windowStart, windowEnd)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to project calendar")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Calendar projected successfully")

	response.WithJSON(w, http.StatusOK, calendar)
}
