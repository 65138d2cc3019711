package handler

import (
	"net/http"
)

type rootResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

// Root descreve a API e lista as rotas de consulta disponíveis
func Root(endpoints []string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, rootResponse{
			Message:   "Sales Analytics API is running",
			Endpoints: endpoints,
		})
	})
}
