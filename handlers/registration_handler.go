package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"productcatalog/logger"
	"productcatalog/models"
	"productcatalog/services"
)

const (
	RegistrationFormComponent = "Registrations/Create"
	registrationFormPath      = "/registrations/create"

	registrationSuccessMessage = "Registration successful!"
	registrationFailureMessage = "An unexpected error occurred while processing your registration. Please try again."
)

// RegistrationHandler는 가입 신청 HTTP 요청을 처리한다.
type RegistrationHandler struct {
	service services.RegistrationService
	pages   *PageRenderer
	flashes *FlashStore
}

// NewRegistrationHandler는 가입 신청 핸들러를 생성한다.
func NewRegistrationHandler(service services.RegistrationService, pages *PageRenderer, flashes *FlashStore) *RegistrationHandler {
	return &RegistrationHandler{service: service, pages: pages, flashes: flashes}
}

// Create 가입 신청 폼 페이지
func (h *RegistrationHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	flash := h.flashes.Take(w, r)
	props := models.RegistrationFormProps{
		Flash:  flash,
		Errors: flash.Errors,
		Old:    flash.Old,
	}
	if props.Errors == nil {
		props.Errors = map[string][]string{}
	}
	if props.Old == nil {
		props.Old = map[string]string{}
	}

	h.pages.Render(w, r, RegistrationFormComponent, props)
}

// Store 가입 신청 등록
// @Summary 가입 신청 등록
// @Description 이름, 이메일, 비밀번호로 가입 신청을 등록합니다. 폼 요청은 리다이렉트로 응답합니다.
// @Tags 가입 신청
// @Accept json
// @Produce json
// @Param request body models.StoreRegistrationRequest true "가입 신청 정보"
// @Success 201 {object} models.APIResponse{data=models.Registration} "등록 성공"
// @Failure 400 {object} models.APIResponse "잘못된 요청"
// @Failure 422 {object} models.ValidationErrorResponse "검증 실패"
// @Failure 500 {object} models.APIResponse "서버 에러"
// @Router /registrations [post]
func (h *RegistrationHandler) Store(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	wantsJSON := expectsJSON(r) && !isPageVisit(r)

	var req models.StoreRegistrationRequest
	if err := decodeRegistration(r, &req); err != nil {
		if wantsJSON {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse("Invalid request body", err))
			return
		}
		h.flashes.Put(w, models.Flash{Error: registrationFailureMessage})
		redirect(w, r, registrationFormPath)
		return
	}

	registration, err := h.service.Register(r.Context(), req)
	if errors.Is(err, services.ErrRegistrationEmailTaken) {
		err = &services.ValidationError{Fields: []services.FieldError{{
			Field:   "email",
			Rule:    services.RuleUnique,
			Message: "The email has already been taken.",
		}}}
	}
	if err != nil {
		if verr, ok := asValidationError(err); ok {
			if wantsJSON {
				writeValidationError(w, verr)
				return
			}
			h.flashes.Put(w, models.Flash{
				Errors: verr.Messages(),
				Old:    map[string]string{"name": req.Name, "email": req.Email},
			})
			redirect(w, r, registrationFormPath)
			return
		}

		logger.WithFields(map[string]interface{}{
			"error": err.Error(),
			"email": req.Email,
		}).Error("Error during registration process")
		if wantsJSON {
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse(registrationFailureMessage, nil))
			return
		}
		h.flashes.Put(w, models.Flash{Error: registrationFailureMessage})
		redirect(w, r, registrationFormPath)
		return
	}

	logger.WithFields(map[string]interface{}{
		"registration_id": registration.ID,
	}).Info("Registration created")

	if wantsJSON {
		writeJSON(w, http.StatusCreated, models.SuccessResponse(registrationSuccessMessage, registration))
		return
	}
	h.flashes.Put(w, models.Flash{Success: registrationSuccessMessage})
	redirect(w, r, "/")
}

// ValidateEmail 이메일 사용 가능 여부 확인
// @Summary 이메일 중복 확인
// @Description 가입 신청에 사용할 이메일이 이미 등록되어 있는지 확인합니다.
// @Tags 가입 신청
// @Accept json
// @Produce json
// @Param request body models.ValidateEmailRequest true "확인할 이메일"
// @Success 200 {object} models.EmailAvailability "사용 가능"
// @Failure 400 {object} models.APIResponse "잘못된 요청"
// @Failure 422 {object} models.ValidationErrorResponse "이미 사용 중이거나 형식 오류"
// @Failure 500 {object} models.APIResponse "서버 에러"
// @Router /api/validate-email [post]
func (h *RegistrationHandler) ValidateEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req models.ValidateEmailRequest
	if err := decodeEmailRequest(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse("Invalid request body", err))
		return
	}

	availability, err := h.service.ValidateEmail(r.Context(), req)
	if err != nil {
		if verr, ok := asValidationError(err); ok {
			writeValidationError(w, verr)
			return
		}
		logger.WithFields(map[string]interface{}{"error": err.Error()}).Error("Failed to validate email")
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse("Failed to validate email", nil))
		return
	}

	writeJSON(w, http.StatusOK, availability)
}

func isJSONBody(r *http.Request) bool {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mediaType == "application/json"
}

// decodeJSONBody treats an empty body as an empty object.
func decodeJSONBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeRegistration(r *http.Request, req *models.StoreRegistrationRequest) error {
	if isJSONBody(r) {
		return decodeJSONBody(r, req)
	}
	if err := r.ParseForm(); err != nil {
		return err
	}
	req.Name = r.PostForm.Get("name")
	req.Email = r.PostForm.Get("email")
	req.Password = r.PostForm.Get("password")
	return nil
}

func decodeEmailRequest(r *http.Request, req *models.ValidateEmailRequest) error {
	if isJSONBody(r) {
		return decodeJSONBody(r, req)
	}
	if err := r.ParseForm(); err != nil {
		return err
	}
	req.Email = r.PostForm.Get("email")
	return nil
}
