package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/landsetu/landsetu/internal/platform/logger"
	"github.com/landsetu/landsetu/internal/port/httpserver/middleware"
	"github.com/landsetu/landsetu/internal/repository"
	"github.com/landsetu/landsetu/internal/service"
)

const maxPhotoSize = 10 << 20 // 10 MiB

type LandHandler struct {
	lands service.LandService
	log   logger.Logger
}

func NewLandHandler(lands service.LandService, log logger.Logger) *LandHandler {
	return &LandHandler{lands: lands, log: log}
}

type landRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Area        float64  `json:"area"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Pincode     string   `json:"pincode"`
	LandType    string   `json:"landType"`
	Features    []string `json:"features"`
	Images      []string `json:"images"`
}

func (h *LandHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, h.log, service.ErrUnauthorized)
		return
	}

	var req landRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	land, err := h.lands.Create(r.Context(), session.UserID, service.LandInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Area:        req.Area,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		LandType:    req.LandType,
		Features:    req.Features,
		Images:      req.Images,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, land)
}

type updateLandRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Area        *float64 `json:"area"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	State       *string  `json:"state"`
	Pincode     *string  `json:"pincode"`
	LandType    *string  `json:"landType"`
	Features    []string `json:"features"`
	Images      []string `json:"images"`
}

func (h *LandHandler) Update(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, h.log, service.ErrUnauthorized)
		return
	}

	var req updateLandRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	land, err := h.lands.Update(r.Context(), chi.URLParam(r, "id"), session.UserID, service.UpdateLandInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Area:        req.Area,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		LandType:    req.LandType,
		Features:    req.Features,
		Images:      req.Images,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, land)
}

func (h *LandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, h.log, service.ErrUnauthorized)
		return
	}

	if err := h.lands.Delete(r.Context(), chi.URLParam(r, "id"), session.UserID); err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Land deleted successfully"})
}

func (h *LandHandler) Search(w http.ResponseWriter, r *http.Request) {
	lands, err := h.lands.Search(r.Context(), parseLandFilter(r))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, lands)
}

func (h *LandHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	lands, err := h.lands.GetFeatured(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, lands)
}

func (h *LandHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	land, err := h.lands.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, land)
}

func (h *LandHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, h.log, service.ErrUnauthorized)
		return
	}

	lands, err := h.lands.GetByOwner(r.Context(), session.UserID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, lands)
}

func (h *LandHandler) AddPhoto(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, h.log, service.ErrUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		badRequest(w, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		badRequest(w, "Photo file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoSize))
	if err != nil {
		badRequest(w, "Could not read photo file")
		return
	}

	url, err := h.lands.AddPhoto(r.Context(), chi.URLParam(r, "id"), session.UserID, header.Filename, data)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}

// parseLandFilter reads the search query params. Absent or malformed numeric
// params are treated as unset rather than rejected, matching how browsers
// send empty form fields.
func parseLandFilter(r *http.Request) repository.LandFilter {
	q := r.URL.Query()
	filter := repository.LandFilter{
		City:     q.Get("city"),
		State:    q.Get("state"),
		LandType: q.Get("landType"),
		Search:   q.Get("search"),
	}
	filter.MinPrice = parseFloatParam(q.Get("minPrice"))
	filter.MaxPrice = parseFloatParam(q.Get("maxPrice"))
	filter.MinArea = parseFloatParam(q.Get("minArea"))
	filter.MaxArea = parseFloatParam(q.Get("maxArea"))
	return filter
}

func parseFloatParam(raw string) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
