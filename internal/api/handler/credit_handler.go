package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"credit-system/internal/api/handler/dto"
	"credit-system/internal/domain/credit"
	"credit-system/internal/pkg/apperrors"
)

const (
	badRequestTitle  = "Bad Request! Consult the documentation"
	conflictTitle    = "Conflict! Consult the documentation"
	serverErrorTitle = "Internal Server Error! Contact support"
)

type CreditHandler struct {
	service credit.Service
	logger  *slog.Logger
}

func NewCreditHandler(s credit.Service, l *slog.Logger) *CreditHandler {
	return &CreditHandler{
		service: s,
		logger:  l.With("component", "CreditHandler"),
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"title":"Internal Server Error! Contact support"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

// respondError maps domain failures onto the structured error body. Every
// not-found is reported as a 400 business error rather than a 404; that is
// the documented contract of this API.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	title := serverErrorTitle
	exception := "InternalServerError"
	details := []string{"an unexpected error occurred"}

	var vErrs *apperrors.ValidationErrors
	switch {
	case errors.As(err, &vErrs):
		status, title, exception = http.StatusBadRequest, badRequestTitle, "ValidationException"
		details = vErrs.Details()
	case errors.Is(err, apperrors.ErrInvalidArgument):
		status, title, exception = http.StatusBadRequest, badRequestTitle, "ValidationException"
		details = []string{err.Error()}
	case errors.Is(err, apperrors.ErrAlreadyExists):
		status, title, exception = http.StatusConflict, conflictTitle, "DataIntegrityViolation"
		details = []string{err.Error()}
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrNotFound):
		status, title, exception = http.StatusBadRequest, badRequestTitle, "BusinessException"
		details = []string{err.Error()}
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	respondJSON(w, status, dto.ErrorResponse{
		Title:     title,
		Timestamp: time.Now(),
		Status:    status,
		Exception: exception,
		Details:   details,
	})
}

func getCustomerIDFromQuery(r *http.Request) (int64, error) {
	idStr := r.URL.Query().Get("customerId")
	if idStr == "" {
		return 0, fmt.Errorf("%w: missing required query parameter 'customerId'", apperrors.ErrInvalidArgument)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid customerId format: %s", apperrors.ErrInvalidArgument, idStr)
	}
	return id, nil
}

// CreateCredit handles POST /api/credits
// @Summary Request a new credit
// @Description Creates a credit for an existing customer after the business-rule checks pass.
// @Tags Credits
// @Accept json
// @Produce plain
// @Param request body dto.CreateCreditRequest true "Credit request payload"
// @Success 201 {string} string "Confirmation message"
// @Failure 400 {object} dto.ErrorResponse "Field or business-rule violation"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/credits [post]
func (h *CreditHandler) CreateCredit(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create credit request")

	var req dto.CreateCreditRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request field validation failed", slog.Any("error", err))
		respondError(w, err)
		return
	}

	created, err := h.service.CreateCredit(r.Context(), credit.NewCreditInput{
		CreditValue:          req.CreditValue,
		DayFirstInstallment:  req.DayFirstInstallment(),
		NumberOfInstallments: req.NumberOfInstallments,
		CustomerID:           req.CustomerID,
	})
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrValidation) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to create credit", slog.Any("error", err))
		respondError(w, err)
		return
	}

	email := ""
	if created.Customer != nil {
		email = created.Customer.Email
	}
	h.logger.InfoContext(r.Context(), "Credit created successfully", slog.String("creditCode", created.CreditCode.String()))
	respondText(w, http.StatusCreated, fmt.Sprintf("Credit %s - Customer %s saved!", created.CreditCode, email))
}

// ListCredits handles GET /api/credits?customerId={id}
// @Summary List a customer's credits
// @Produce json
// @Param customerId query int true "Customer ID" Minimum(1)
// @Success 200 {array} dto.CreditSummaryResponse "Credit summaries, empty array when none"
// @Failure 400 {object} dto.ErrorResponse "Invalid or missing customerId"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/credits [get]
func (h *CreditHandler) ListCredits(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromQuery(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Invalid customerId query parameter", slog.Any("error", err))
		respondError(w, err)
		return
	}

	credits, err := h.service.FindAllByCustomer(r.Context(), customerID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list credits", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := make([]dto.CreditSummaryResponse, len(credits))
	for i, cr := range credits {
		resp[i] = dto.NewCreditSummaryResponse(cr)
	}

	h.logger.InfoContext(r.Context(), "Credits listed successfully", slog.Int("count", len(resp)))
	respondJSON(w, http.StatusOK, resp)
}

// GetCreditByCode handles GET /api/credits/{creditCode}?customerId={id}
// @Summary Retrieve one credit by its code
// @Description The lookup is scoped to the given customer; a code owned by someone else reports not-found.
// @Produce json
// @Param creditCode path string true "Credit code (UUID)"
// @Param customerId query int true "Customer ID" Minimum(1)
// @Success 200 {object} dto.CreditDetailResponse "Credit detail"
// @Failure 400 {object} dto.ErrorResponse "Unknown code, wrong owner, or invalid parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/credits/{creditCode} [get]
func (h *CreditHandler) GetCreditByCode(w http.ResponseWriter, r *http.Request) {
	codeStr := chi.URLParam(r, "creditCode")
	creditCode, err := uuid.Parse(codeStr)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Invalid creditCode in URL path", slog.String("creditCode", codeStr))
		respondError(w, fmt.Errorf("%w: invalid creditCode format: %s", apperrors.ErrInvalidArgument, codeStr))
		return
	}

	customerID, err := getCustomerIDFromQuery(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Invalid customerId query parameter", slog.Any("error", err))
		respondError(w, err)
		return
	}

	cr, err := h.service.FindByCreditCode(r.Context(), customerID, creditCode)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, credit.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to find credit", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Credit retrieved successfully")
	respondJSON(w, http.StatusOK, dto.NewCreditDetailResponse(cr))
}
