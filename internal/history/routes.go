package history

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Delete("/", h.DeleteAll)
	r.Delete("/{id}", h.DeleteOne)

	return r
}
