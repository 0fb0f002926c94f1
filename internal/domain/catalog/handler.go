package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Listado público del catálogo (solo lectura)
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
	})
}

// PetResponse representa una ficha del catálogo devuelta por la API.
type PetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	AgeLabel  string    `json:"age_label"`
	SexLabel  string    `json:"sex_label"`
	Story     string    `json:"story"`
	PhotoURL  string    `json:"photo_url"`
	CreatedAt time.Time `json:"created_at"`
}

// ListResponse incluye el total para el encabezado "N pets disponíveis".
type ListResponse struct {
	Count int           `json:"count"`
	Items []PetResponse `json:"items"`
}

// listPetsHandler godoc
// @Summary Listar pets para adopción
// @Description Devuelve el catálogo completo en orden de inserción.
// @Tags catalog
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 500 {string} string "internal error"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, ToListResponse(items))
	}
}

// getPetHandler godoc
// @Summary Detalle de un pet
// @Tags catalog
// @Produce json
// @Param petID path string true "ID del pet"
// @Success 200 {object} PetResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, ToResponse(p))
	}
}

// ToResponse es exportado porque el intake devuelve la ficha creada con el mismo formato.
func ToResponse(p AnimalRecord) PetResponse {
	return PetResponse{
		ID:        p.ID,
		Name:      p.Name,
		AgeLabel:  p.AgeLabel,
		SexLabel:  p.SexLabel,
		Story:     p.Story,
		PhotoURL:  p.PhotoURL,
		CreatedAt: p.CreatedAt,
	}
}

func ToListResponse(items []AnimalRecord) ListResponse {
	out := make([]PetResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ToResponse(p))
	}
	return ListResponse{Count: len(out), Items: out}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
