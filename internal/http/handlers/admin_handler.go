package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"office-hours/internal/service"
)

const adminPath = "/admin"

type AdminHandler struct {
	service *service.ScheduleService
	logger  *zap.Logger
}

func NewAdminHandler(svc *service.ScheduleService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{service: svc, logger: logger}
}

func (h *AdminHandler) Register(r chi.Router) {
	r.Get(adminPath, h.handleList)
	r.Post(adminPath, h.handleSubmit)
	r.Get("/obrisi/{datum}", h.handleDelete)
}

type adminPage struct {
	Rows []service.OverrideRow
}

func (h *AdminHandler) handleList(w http.ResponseWriter, r *http.Request) {
	render(w, h.logger, http.StatusOK, "admin.html", adminPage{
		Rows: h.service.ListOverrides(r.Context()),
	})
}

func (h *AdminHandler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Neispravan zahtjev.")
		return
	}

	_, neradni := r.PostForm["neradni"]
	_, closed := r.PostForm["closed"]
	submission := service.OverrideSubmission{
		Date:   r.PostForm.Get("datum"),
		Closed: neradni || closed,
		Start:  optionalField(r, "start"),
		End:    optionalField(r, "end"),
	}

	if _, err := h.service.Submit(r.Context(), submission); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			h.logger.Info("override rejected", zap.Error(err))
			writeError(w, h.logger, http.StatusBadRequest, "Neispravan datum ili radno vrijeme.")
			return
		}
		h.logger.Error("save override", zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, "Greška na serveru.")
		return
	}

	http.Redirect(w, r, adminPath, http.StatusFound)
}

func (h *AdminHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "datum")
	// chi matches on RawPath when it is set, leaving the param escaped.
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(date); err == nil {
			date = unescaped
		}
	}
	if err := h.service.Delete(r.Context(), date); err != nil {
		h.logger.Error("delete override", zap.String("date", date), zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, "Greška na serveru.")
		return
	}

	http.Redirect(w, r, adminPath, http.StatusFound)
}

func optionalField(r *http.Request, name string) *string {
	values, ok := r.PostForm[name]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
