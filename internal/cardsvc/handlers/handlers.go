package handlers

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"

	"github.com/avvvet/card-services/internal/cardsvc/config"
	"github.com/avvvet/card-services/internal/cardsvc/models"
	"github.com/avvvet/card-services/internal/cardsvc/render"
	"github.com/avvvet/card-services/internal/cardsvc/service"
	"github.com/avvvet/card-services/internal/cardsvc/store"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type Handler struct {
	cardService *service.CardService
	cfg         config.Config
}

func NewHandler(cardService *service.CardService, cfg config.Config) *Handler {
	return &Handler{cardService: cardService, cfg: cfg}
}

// Response is the JSON envelope for api-style endpoints.
type Response struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error"`
}

func (h *Handler) CreateResponse(w http.ResponseWriter, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Code)

	json.NewEncoder(w).Encode(rsp)
}

type formView struct {
	FirstName   string
	LastName    string
	Designation string
	Errors      []string
}

type cardView struct {
	FullName    string
	Designation string
	ID          string
	PublicURL   string
	Ext         string
}

type notFoundView struct {
	ID string
}

// Index renders the empty submission form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, http.StatusOK, "index.html", formView{})
}

// CreateCard validates the submitted form, stores a new card record and
// returns the rendered artifact as a download. The public card URL is exposed
// in the X-Card-URL header for programmatic consumers.
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderPage(w, http.StatusBadRequest, "index.html", formView{Errors: []string{"malformed form submission"}})
		return
	}

	firstName := r.FormValue("firstName")
	lastName := r.FormValue("lastName")
	designation := r.FormValue("designation")

	card, err := h.cardService.CreateCard(r.Context(), firstName, lastName, designation)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			view := formView{
				FirstName:   service.Normalize(firstName),
				LastName:    service.Normalize(lastName),
				Designation: service.Normalize(designation),
			}
			for _, f := range verr.Fields {
				view.Errors = append(view.Errors, f.Message)
			}
			h.renderPage(w, http.StatusBadRequest, "index.html", view)
			return
		}
		h.serverError(w, err)
		return
	}

	publicURL := h.publicCardURL(r, card.ID)
	artifact, err := render.Build(h.cfg.CardFormat, card, publicURL)
	if err != nil {
		h.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", h.cfg.CardFormat.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+render.Filename(h.cfg.CardFormat, card.ID)+`"`)
	w.Header().Set("X-Card-URL", publicURL)
	w.Write(artifact)
}

// ShowCard renders the hosted preview page for a card.
func (h *Handler) ShowCard(w http.ResponseWriter, r *http.Request) {
	card, ok := h.lookupCard(w, r)
	if !ok {
		return
	}

	view := cardView{
		FullName:    card.FullName(),
		Designation: card.Designation,
		ID:          card.ID,
		PublicURL:   h.publicCardURL(r, card.ID),
		Ext:         h.cfg.CardFormat.Ext(),
	}
	h.renderPage(w, http.StatusOK, "card.html", view)
}

// CardQR serves the raw QR PNG encoding the card's public URL.
func (h *Handler) CardQR(w http.ResponseWriter, r *http.Request) {
	card, ok := h.lookupCard(w, r)
	if !ok {
		return
	}

	png, err := render.QRCodePNG(h.publicCardURL(r, card.ID), render.QRSize)
	if err != nil {
		h.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// DownloadCard re-renders the artifact on demand; nothing is cached, so the
// same record always yields the same bytes.
func (h *Handler) DownloadCard(w http.ResponseWriter, r *http.Request) {
	card, ok := h.lookupCard(w, r)
	if !ok {
		return
	}

	publicURL := h.publicCardURL(r, card.ID)
	artifact, err := render.Build(h.cfg.CardFormat, card, publicURL)
	if err != nil {
		h.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", h.cfg.CardFormat.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+render.Filename(h.cfg.CardFormat, card.ID)+`"`)
	w.Write(artifact)
}

// CardVCard serves the contact record for a card.
func (h *Handler) CardVCard(w http.ResponseWriter, r *http.Request) {
	card, ok := h.lookupCard(w, r)
	if !ok {
		return
	}

	vcf := render.BuildVCard(card, h.publicCardURL(r, card.ID))

	w.Header().Set("Content-Type", "text/vcard; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="visiting-card-`+card.ID+`.vcf"`)
	w.Write(vcf)
}

// HealthHandler reports liveness and the number of cards held in memory.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	rsp := Response{
		Message: "card service is running",
		Code:    http.StatusOK,
		Data:    map[string]int{"cards": h.cardService.CardCount()},
	}
	h.CreateResponse(w, rsp)
}

// NotFound is the fallback for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, http.StatusNotFound, "notfound.html", notFoundView{})
}

// lookupCard resolves the {cardID} route parameter. On a miss it has already
// written the 404 page and reports ok=false.
func (h *Handler) lookupCard(w http.ResponseWriter, r *http.Request) (*models.Card, bool) {
	id := chi.URLParam(r, "cardID")

	card, err := h.cardService.GetCard(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			h.renderPage(w, http.StatusNotFound, "notfound.html", notFoundView{ID: id})
			return nil, false
		}
		h.serverError(w, err)
		return nil, false
	}
	return card, true
}

// publicCardURL resolves the externally reachable address of a card's preview
// page. A configured PUBLIC_BASE_URL is authoritative; otherwise the URL is
// derived from the incoming request.
func (h *Handler) publicCardURL(r *http.Request, id string) string {
	base := strings.TrimRight(h.cfg.PublicBaseURL, "/")
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}
		base = scheme + "://" + r.Host
	}
	return base + "/card/" + id
}

// serverError logs the failure and renders the generic 500 page. Internal
// detail never reaches the client.
func (h *Handler) serverError(w http.ResponseWriter, err error) {
	log.Errorf("internal error: %v", err)
	h.renderPage(w, http.StatusInternalServerError, "error.html", nil)
}

func (h *Handler) renderPage(w http.ResponseWriter, status int, name string, view interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, view); err != nil {
		log.Errorf("failed to render %s: %v", name, err)
	}
}
