package app

import (
	"net/http"

	"github.com/felixbrock/qap/internal/components"
)

func get404() components.ErrorContext {
	return components.ErrorContext{
		Code:  http.StatusNotFound,
		Title: "Page not found",
		Msg:   "Sorry, we couldn't find the page you were looking for.",
	}
}

func get405() components.ErrorContext {
	return components.ErrorContext{
		Code:  http.StatusMethodNotAllowed,
		Title: "Method not allowed",
		Msg:   "Sorry, this page can only be viewed.",
	}
}

func get429() components.ErrorContext {
	return components.ErrorContext{
		Code:  http.StatusTooManyRequests,
		Title: "Too many requests",
		Msg:   "Sorry, you are sending requests too quickly. Please try again in a moment.",
	}
}

func get500() components.ErrorContext {
	return components.ErrorContext{
		Code:  http.StatusInternalServerError,
		Title: "Internal server error",
		Msg:   "Sorry, there was an internal server error.",
	}
}

// errCtxFor returns the error context for a status code, falling back to 500.
func errCtxFor(code int) components.ErrorContext {
	switch code {
	case http.StatusNotFound:
		return get404()
	case http.StatusMethodNotAllowed:
		return get405()
	case http.StatusTooManyRequests:
		return get429()
	default:
		return get500()
	}
}
