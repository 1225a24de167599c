package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/wa-gateway/internal/usecase"
)

// genericFailure only shows up if a non-typed error escapes the use case.
const genericFailure = "No se pudo completar el envío"

type ErrorResponse struct {
	Error string `json:"error" example:"Faltan parámetros"`
}

type SuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Mensaje enviado correctamente"`
}

// writeResult is the single place where dispatch results become HTTP:
// 200 on success, 400 for missing parameters, 500 for anything else.
func writeResult(w http.ResponseWriter, out *usecase.DispatchOutput, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, SuccessResponse{Success: out.Success, Message: out.Message})
		return
	}

	var de *usecase.DomainError
	if errors.As(err, &de) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: de.Message})
		return
	}

	msg := genericFailure
	var te *usecase.TechnicalError
	if errors.As(err, &te) {
		msg = te.Message
	}
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
