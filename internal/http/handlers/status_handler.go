package handlers

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"office-hours/internal/domain"
	"office-hours/internal/service"
)

type StatusHandler struct {
	service *service.ScheduleService
	logger  *zap.Logger
}

func NewStatusHandler(svc *service.ScheduleService, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{service: svc, logger: logger}
}

func (h *StatusHandler) Register(r chi.Router) {
	r.Get("/", h.handleHome)
	r.Get("/api/status", h.handleStatusJSON)
	r.Get("/healthz", h.handleHealth)
}

type homePage struct {
	Date        string
	Day         string
	Message     template.HTML
	UpperBanner template.HTML
	Speech      string
	IconFile    string
	Open        bool
}

type statusResponse struct {
	Date      string `json:"date"`
	Day       string `json:"day"`
	Open      bool   `json:"open"`
	ClosedDay bool   `json:"closed_day"`
	Start     string `json:"start,omitempty"`
	End       string `json:"end,omitempty"`
	Message   string `json:"message"`
	Speech    string `json:"speech"`
	Icon      string `json:"icon"`
}

func (h *StatusHandler) handleHome(w http.ResponseWriter, r *http.Request) {
	current := h.service.CurrentStatus(r.Context())
	status := current.Status

	render(w, h.logger, http.StatusOK, "index.html", homePage{
		Date:        current.Date,
		Day:         status.Day,
		Message:     template.HTML(status.HTML),
		UpperBanner: template.HTML(status.UpperBanner),
		Speech:      status.PlainText,
		IconFile:    iconFile(status.Icon),
		Open:        status.Open,
	})
}

func (h *StatusHandler) handleStatusJSON(w http.ResponseWriter, r *http.Request) {
	current := h.service.CurrentStatus(r.Context())
	status := current.Status

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(statusResponse{
		Date:      current.Date,
		Day:       status.Day,
		Open:      status.Open,
		ClosedDay: status.ClosedDay,
		Start:     status.Start,
		End:       status.End,
		Message:   status.HTML,
		Speech:    status.PlainText,
		Icon:      string(status.Icon),
	}); err != nil {
		h.logger.Error("encode status", zap.Error(err))
	}
}

func (h *StatusHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func iconFile(icon domain.Icon) string {
	if icon == domain.IconOpen {
		return "open.png"
	}
	return "close1.png"
}
