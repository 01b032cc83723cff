package models

// Page 서버 렌더링 클라이언트가 부팅에 사용하는 페이지 객체
type Page struct {
	Component string      `json:"component"`
	Props     interface{} `json:"props"`
	URL       string      `json:"url"`
	Version   string      `json:"version"`
}

// Flash 리다이렉트 사이에 한 번만 전달되는 메시지
type Flash struct {
	Success string              `json:"success,omitempty"`
	Error   string              `json:"error,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Old     map[string]string   `json:"old,omitempty"`
}

// IsEmpty 전달할 내용이 없는지 확인
func (f Flash) IsEmpty() bool {
	return f.Success == "" && f.Error == "" && len(f.Errors) == 0 && len(f.Old) == 0
}

// RegistrationFormProps 가입 폼 페이지 props
type RegistrationFormProps struct {
	Flash  Flash               `json:"flash"`
	Errors map[string][]string `json:"errors"`
	Old    map[string]string   `json:"old"`
}
