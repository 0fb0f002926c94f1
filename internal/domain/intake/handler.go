package intake

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-adoption/internal/domain/catalog"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/intake", func(ir chi.Router) {
		// Helpers sin estado (formatear / validar un formulario entero)
		ir.Post("/format", formatHandler())
		ir.Post("/validate", validateHandler(svc))

		// Formularios en curso (editing -> ready -> editing)
		ir.Post("/forms", createDraftHandler(svc))
		ir.Get("/forms/{formID}", getDraftHandler(svc))
		ir.Delete("/forms/{formID}", deleteDraftHandler(svc))
		ir.Put("/forms/{formID}/fields/{field}", changeFieldHandler(svc))
		ir.Post("/forms/{formID}/submit", submitDraftHandler(svc))
	})
}

type formatRequest struct {
	Field string `json:"field" validate:"required,intake_field"`
	Value string `json:"value"`
}

type formatResponse struct {
	Field Field  `json:"field"`
	Value string `json:"value"`
}

type changeFieldRequest struct {
	// Puntero para distinguir "" (limpiar) de "no enviado".
	Value *string `json:"value" validate:"required"`
}

type changeFieldResponse struct {
	Field       Field   `json:"field"`
	Value       string  `json:"value"`
	Submittable bool    `json:"submittable"`
	State       State   `json:"state"`
	Missing     []Field `json:"missing"`
}

type validateRequest struct {
	Fields FieldSet `json:"fields"`
}

type validateResponse struct {
	Fields      draftFields `json:"fields"`
	Submittable bool        `json:"submittable"`
	State       State       `json:"state"`
	Missing     []Field     `json:"missing"`
}

// draftFields nunca devuelve los passwords, solo si están cargados.
type draftFields struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	BirthDate          string   `json:"birth_date"`
	PasswordSet        bool     `json:"password_set"`
	PasswordConfirmSet bool     `json:"password_confirm_set"`
	Species            Species  `json:"species"`
	Sex                Sex      `json:"sex"`
	AgeGroup           AgeGroup `json:"age_group"`
	Size               Size     `json:"size"`
}

type draftResponse struct {
	ID          string      `json:"id"`
	Fields      draftFields `json:"fields"`
	Submittable bool        `json:"submittable"`
	State       State       `json:"state"`
	Missing     []Field     `json:"missing"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type submitResponse struct {
	Record      catalog.PetResponse `json:"record"`
	CatalogSize int                 `json:"catalog_size"`
	Form        draftResponse       `json:"form"`
}

type notSubmittableResponse struct {
	Error   string  `json:"error"`
	Missing []Field `json:"missing"`
}

// formatHandler godoc
// @Summary Formatear un campo
// @Description Aplica la máscara del campo (phone, birth_date) al texto crudo; los demás campos pasan sin cambios y los selectores se validan contra su enumeración.
// @Tags intake
// @Accept json
// @Produce json
// @Param payload body formatRequest true "Campo y texto crudo"
// @Success 200 {object} formatResponse
// @Failure 400 {string} string "invalid json / unknown field / invalid selection"
// @Router /intake/format [post]
func formatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req formatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, ErrUnknownField.Error(), http.StatusBadRequest)
			return
		}

		v, err := Format(Field(req.Field), req.Value)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, formatResponse{Field: Field(req.Field), Value: v})
	}
}

// validateHandler godoc
// @Summary Validar un formulario completo
// @Description Normaliza todos los campos y devuelve si el formulario es submittable.
// @Tags intake
// @Accept json
// @Produce json
// @Param payload body validateRequest true "Formulario completo"
// @Success 200 {object} validateResponse
// @Failure 400 {string} string "invalid json / invalid selection"
// @Router /intake/validate [post]
func validateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req validateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		fields, rep, err := svc.Validate(req.Fields)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, validateResponse{
			Fields:      toDraftFields(fields),
			Submittable: rep.Submittable,
			State:       rep.State,
			Missing:     nonNil(rep.Missing),
		})
	}
}

// createDraftHandler godoc
// @Summary Iniciar formulario de adopción
// @Tags intake
// @Produce json
// @Success 201 {object} draftResponse
// @Router /intake/forms [post]
func createDraftHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.CreateDraft(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toDraftResponse(d))
	}
}

// getDraftHandler godoc
// @Summary Ver formulario en curso
// @Tags intake
// @Produce json
// @Param formID path string true "ID del formulario"
// @Success 200 {object} draftResponse
// @Failure 404 {string} string "form not found"
// @Router /intake/forms/{formID} [get]
func getDraftHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetDraft(r.Context(), chi.URLParam(r, "formID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDraftResponse(d))
	}
}

// deleteDraftHandler godoc
// @Summary Descartar formulario en curso
// @Tags intake
// @Param formID path string true "ID del formulario"
// @Success 204
// @Failure 404 {string} string "form not found"
// @Router /intake/forms/{formID} [delete]
func deleteDraftHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteDraft(r.Context(), chi.URLParam(r, "formID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// changeFieldHandler godoc
// @Summary Cambiar un campo (cada tecla)
// @Description Guarda el valor formateado del campo y recalcula si el formulario es submittable.
// @Tags intake
// @Accept json
// @Produce json
// @Param formID path string true "ID del formulario"
// @Param field path string true "Campo" Enums(name, email, phone, birth_date, password, password_confirm, species, sex, age_group, size)
// @Param payload body changeFieldRequest true "Texto crudo"
// @Success 200 {object} changeFieldResponse
// @Failure 400 {string} string "invalid json / unknown field / invalid selection"
// @Failure 404 {string} string "form not found"
// @Router /intake/forms/{formID}/fields/{field} [put]
func changeFieldHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req changeFieldRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "value is required", http.StatusBadRequest)
			return
		}

		ch, err := svc.ChangeField(r.Context(), chi.URLParam(r, "formID"), Field(chi.URLParam(r, "field")), *req.Value)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, changeFieldResponse{
			Field:       ch.Field,
			Value:       ch.Value,
			Submittable: ch.Report.Submittable,
			State:       ch.Report.State,
			Missing:     nonNil(ch.Report.Missing),
		})
	}
}

// submitDraftHandler godoc
// @Summary Enviar formulario
// @Description Agrega la ficha al catálogo y limpia el formulario. Solo válido cuando el formulario es submittable.
// @Tags intake
// @Produce json
// @Param formID path string true "ID del formulario"
// @Success 201 {object} submitResponse
// @Failure 404 {string} string "form not found"
// @Failure 409 {object} notSubmittableResponse
// @Router /intake/forms/{formID}/submit [post]
func submitDraftHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, d, err := svc.SubmitDraft(r.Context(), chi.URLParam(r, "formID"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, submitResponse{
			Record:      catalog.ToResponse(res.Record),
			CatalogSize: len(res.Catalog),
			Form:        toDraftResponse(d),
		})
	}
}

func writeError(w http.ResponseWriter, err error) {
	var invalid *InvalidStateError
	switch {
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusConflict, notSubmittableResponse{
			Error:   "form not submittable",
			Missing: nonNil(invalid.Missing),
		})
	case errors.Is(err, ErrNotFound):
		http.Error(w, "form not found", http.StatusNotFound)
	case errors.Is(err, ErrUnknownField), errors.Is(err, ErrInvalidSelection), errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toDraftFields(f FieldSet) draftFields {
	return draftFields{
		Name:               f.Name,
		Email:              f.Email,
		Phone:              f.Phone,
		BirthDate:          f.BirthDate,
		PasswordSet:        f.Password != "",
		PasswordConfirmSet: f.PasswordConfirm != "",
		Species:            f.Species,
		Sex:                f.Sex,
		AgeGroup:           f.AgeGroup,
		Size:               f.Size,
	}
}

func toDraftResponse(d Draft) draftResponse {
	rep := Evaluate(d.Fields)
	return draftResponse{
		ID:          d.ID,
		Fields:      toDraftFields(d.Fields),
		Submittable: rep.Submittable,
		State:       rep.State,
		Missing:     nonNil(rep.Missing),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func nonNil(fs []Field) []Field {
	if fs == nil {
		return []Field{}
	}
	return fs
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
