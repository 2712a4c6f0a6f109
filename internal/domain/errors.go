package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for fetch operations
var (
	// ErrNetwork indicates the podcast API could not be reached
	ErrNetwork = errors.New("podcast api is unreachable")

	// ErrHTTPStatus indicates the podcast API answered with a non-2xx status
	ErrHTTPStatus = errors.New("podcast api returned an error status")

	// ErrParse indicates the response body was not the expected JSON shape
	ErrParse = errors.New("malformed podcast api response")

	// ErrInvalidID indicates an empty or unusable podcast id
	ErrInvalidID = errors.New("invalid podcast id")
)

// FetchErrorKind classifies a failed fetch
type FetchErrorKind int

const (
	KindNetwork FetchErrorKind = iota
	KindHTTP
	KindParse
)

// String returns the log-friendly name of the kind
func (k FetchErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// FetchError is returned by every CatalogRepository method on failure.
// The kind is only interesting to logs; users see UserMessage.
type FetchError struct {
	Kind   FetchErrorKind
	Op     string // "catalog" or "detail <id>"
	Status int    // HTTP status, KindHTTP only
	Err    error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("%s: http status %d", e.Op, e.Status)
	case KindParse:
		return fmt.Sprintf("%s: parse: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match a FetchError against the kind sentinels.
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrHTTPStatus:
		return e.Kind == KindHTTP
	case ErrParse:
		return e.Kind == KindParse
	}
	return false
}

// UserMessage collapses any fetch failure into the single string shown in the UI.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		switch fe.Kind {
		case KindHTTP:
			return fmt.Sprintf("HTTP error! status: %d", fe.Status)
		case KindParse:
			return "the server sent an unreadable response"
		default:
			return "the server could not be reached"
		}
	}
	return err.Error()
}
