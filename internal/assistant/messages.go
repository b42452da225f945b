package assistant

import "fmt"

// Messages holds the user-facing fallback strings returned instead of an answer.
type Messages struct {
	RateLimited  string
	Unauthorized string
	BadRequest   string
	Generic      string
}

const DefaultLocale = "ko"

var catalogs = map[string]Messages{
	"ko": {
		RateLimited:  "현재 Gemini 무료 쿼터/요율 제한으로 AI 답변을 제공할 수 없습니다. (429)",
		Unauthorized: "Gemini API 키 권한/플랜 문제로 호출이 차단되었습니다.",
		BadRequest:   "Gemini 요청 형식/모델명 오류(400)입니다. 서버 로그를 확인하세요.",
		Generic:      "AI 응답을 가져오는 중 오류가 발생했습니다.",
	},
	"en": {
		RateLimited:  "The AI assistant is unavailable because the Gemini quota or rate limit was exceeded. (429)",
		Unauthorized: "The Gemini call was blocked by an API key permission or plan problem.",
		BadRequest:   "The Gemini request format or model name is invalid (400). Check the server logs.",
		Generic:      "An error occurred while fetching the AI response.",
	},
}

// Catalog returns the built-in messages for locale.
func Catalog(locale string) (Messages, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	m, ok := catalogs[locale]
	if !ok {
		return Messages{}, fmt.Errorf("no message catalog for locale %q", locale)
	}
	return m, nil
}

// Merge returns m with every non-empty field of overrides applied.
func (m Messages) Merge(overrides Messages) Messages {
	if overrides.RateLimited != "" {
		m.RateLimited = overrides.RateLimited
	}
	if overrides.Unauthorized != "" {
		m.Unauthorized = overrides.Unauthorized
	}
	if overrides.BadRequest != "" {
		m.BadRequest = overrides.BadRequest
	}
	if overrides.Generic != "" {
		m.Generic = overrides.Generic
	}
	return m
}

// For returns the fallback for a failure kind. OK has no fallback.
func (m Messages) For(k Kind) string {
	switch k {
	case OK:
		return ""
	case RateLimited:
		return m.RateLimited
	case Unauthorized:
		return m.Unauthorized
	case BadRequest:
		return m.BadRequest
	default:
		return m.Generic
	}
}

// MessageForStatus returns the fallback for a non-2xx HTTP status.
func MessageForStatus(m Messages, code int) string {
	return m.For(KindForStatus(code))
}
