package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/xavierca1/wa-gateway/internal/usecase"
)

type Dispatcher interface {
	SendText(ctx context.Context, input usecase.SendTextInput) (*usecase.DispatchOutput, error)
	SendImage(ctx context.Context, input usecase.SendImageInput) (*usecase.DispatchOutput, error)
	SendFile(ctx context.Context, input usecase.SendFileInput) (*usecase.DispatchOutput, error)
}

type MessageHandler struct {
	Dispatcher Dispatcher
	Logger     zerolog.Logger
}

func NewMessageHandler(dispatcher Dispatcher, logger zerolog.Logger) *MessageHandler {
	return &MessageHandler{
		Dispatcher: dispatcher,
		Logger:     logger,
	}
}

// SendMessage envia uma mensagem de texto.
//
//	@Summary		Enviar mensaje de texto
//	@Description	Envía un mensaje de texto al número indicado. El número se normaliza agregando "@c.us" si no lo tiene.
//	@Tags			Mensajes
//	@Accept			json
//	@Produce		json
//	@Param			input	body		usecase.SendTextInput	true	"Número y mensaje"
//	@Success		200		{object}	SuccessResponse
//	@Failure		400		{object}	ErrorResponse	"Faltan parámetros"
//	@Failure		500		{object}	ErrorResponse	"No se pudo enviar el mensaje"
//	@Router			/send-message [post]
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendTextInput
	h.serve(w, r, usecase.TextOperation, &input, func(ctx context.Context) (*usecase.DispatchOutput, error) {
		return h.Dispatcher.SendText(ctx, input)
	})
}

// SendImage envia uma imagem a partir de uma URL.
//
//	@Summary		Enviar imagen por URL
//	@Description	Descarga la imagen desde imageUrl y la envía con un pie de foto opcional.
//	@Tags			Mensajes
//	@Accept			json
//	@Produce		json
//	@Param			input	body		usecase.SendImageInput	true	"Número, URL de la imagen y caption opcional"
//	@Success		200		{object}	SuccessResponse
//	@Failure		400		{object}	ErrorResponse	"Faltan parámetros"
//	@Failure		500		{object}	ErrorResponse	"No se pudo enviar la imagen"
//	@Router			/send-image [post]
func (h *MessageHandler) SendImage(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendImageInput
	h.serve(w, r, usecase.ImageOperation, &input, func(ctx context.Context) (*usecase.DispatchOutput, error) {
		return h.Dispatcher.SendImage(ctx, input)
	})
}

// SendFile envia um arquivo em base64 (sempre como application/pdf).
//
//	@Summary		Enviar archivo en base64
//	@Description	Envía un archivo codificado en base64. El tipo de contenido es siempre application/pdf.
//	@Tags			Mensajes
//	@Accept			json
//	@Produce		json
//	@Param			input	body		usecase.SendFileInput	true	"Número, nombre del archivo y contenido base64"
//	@Success		200		{object}	SuccessResponse
//	@Failure		400		{object}	ErrorResponse	"Faltan parámetros"
//	@Failure		500		{object}	ErrorResponse	"No se pudo enviar el archivo"
//	@Router			/send-file [post]
func (h *MessageHandler) SendFile(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendFileInput
	h.serve(w, r, usecase.FileOperation, &input, func(ctx context.Context) (*usecase.DispatchOutput, error) {
		return h.Dispatcher.SendFile(ctx, input)
	})
}

// serve decodes the body into input and runs the dispatch. A body that cannot be
// decoded (malformed, too large, wrong field types) is a missing-parameter case.
func (h *MessageHandler) serve(
	w http.ResponseWriter,
	r *http.Request,
	op usecase.Operation,
	input interface{},
	run func(context.Context) (*usecase.DispatchOutput, error),
) {
	if err := json.NewDecoder(r.Body).Decode(input); err != nil {
		h.Logger.Warn().Err(err).Str("operation", op.Name).Msg("⚠️ Corpo da requisição inválido")
		writeResult(w, nil, &usecase.DomainError{
			Code:    usecase.CodeMissingParameter,
			Message: usecase.MissingParameterMessage,
		})
		return
	}

	out, err := run(r.Context())
	writeResult(w, out, err)
}
