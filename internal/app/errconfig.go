package app

import (
	"net/http"

	"github.com/felixbrock/hellopage/internal/component"
)

func get404() component.ErrorView {
	return component.ErrorView{
		Code:  http.StatusNotFound,
		Title: "Page not found",
		Msg:   "Sorry, we couldn't find the page you were looking for.",
	}
}

func get405() component.ErrorView {
	return component.ErrorView{
		Code:  http.StatusMethodNotAllowed,
		Title: "Method not allowed",
		Msg:   "Sorry, this page can only be read.",
	}
}

func get429() component.ErrorView {
	return component.ErrorView{
		Code:  http.StatusTooManyRequests,
		Title: "Too many requests",
		Msg:   "Sorry, you are sending requests too quickly. Please try again shortly.",
	}
}

func get500() component.ErrorView {
	return component.ErrorView{
		Code:  http.StatusInternalServerError,
		Title: "Internal server error",
		Msg:   "Sorry, there was an internal server error.",
	}
}
