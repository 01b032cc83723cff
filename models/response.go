package models

// APIResponse 표준 API 응답 구조
type APIResponse struct {
	Status  string      `json:"status"` // success, error
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ValidationErrorResponse 422 검증 실패 응답
type ValidationErrorResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// SuccessResponse 성공 응답 생성
func SuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}
}

// ErrorResponse 에러 응답 생성
func ErrorResponse(message string, err error) APIResponse {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	return APIResponse{
		Status:  "error",
		Message: message,
		Error:   errMsg,
	}
}

// ValidationFailedResponse 필드별 검증 에러 응답 생성
func ValidationFailedResponse(message string, errors map[string][]string) ValidationErrorResponse {
	if errors == nil {
		errors = map[string][]string{}
	}
	return ValidationErrorResponse{
		Status:  "error",
		Message: message,
		Errors:  errors,
	}
}
