package assistant

import (
	"errors"
	"net/http"

	"askgemini/internal/gemini"
)

// Kind classifies the outcome of a single Ask.
type Kind int

const (
	OK Kind = iota
	RateLimited
	Unauthorized
	BadRequest
	OtherHTTPError
	TransportOrParseError
)

var kindNames = map[Kind]string{
	OK:                    "ok",
	RateLimited:           "rate_limited",
	Unauthorized:          "unauthorized",
	BadRequest:            "bad_request",
	OtherHTTPError:        "http_error",
	TransportOrParseError: "transport_error",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText lets Kind render as its name in JSON.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind is the inverse of Kind.String. Unknown names map to TransportOrParseError.
func ParseKind(name string) Kind {
	for k, n := range kindNames {
		if n == name {
			return k
		}
	}
	return TransportOrParseError
}

// KindForStatus maps a non-2xx HTTP status onto the failure taxonomy.
func KindForStatus(code int) Kind {
	switch code {
	case http.StatusTooManyRequests:
		return RateLimited
	case http.StatusUnauthorized, http.StatusForbidden:
		return Unauthorized
	case http.StatusBadRequest:
		return BadRequest
	default:
		return OtherHTTPError
	}
}

// Classify maps an error returned by the gemini client onto the taxonomy.
func Classify(err error) Kind {
	if err == nil {
		return OK
	}
	var apiErr *gemini.APIError
	if errors.As(err, &apiErr) {
		return KindForStatus(apiErr.StatusCode)
	}
	return TransportOrParseError
}
