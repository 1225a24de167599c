package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/xavierca1/wa-gateway/internal/usecase"
)

var ErrConsumerClosed = errors.New("canal de consumo do RabbitMQ fechado")

// OutboundCommand carries the same fields as the HTTP bodies plus a Type
// selecting the flow: text, image or file.
type OutboundCommand struct {
	Type     string `json:"type"`
	Number   string `json:"number"`
	Message  string `json:"message,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
	Base64   string `json:"base64,omitempty"`
}

type Dispatcher interface {
	SendText(ctx context.Context, input usecase.SendTextInput) (*usecase.DispatchOutput, error)
	SendImage(ctx context.Context, input usecase.SendImageInput) (*usecase.DispatchOutput, error)
	SendFile(ctx context.Context, input usecase.SendFileInput) (*usecase.DispatchOutput, error)
}

type consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type Worker struct {
	Channel    consumer
	Dispatcher Dispatcher
	Logger     zerolog.Logger
}

func NewWorker(ch consumer, dispatcher Dispatcher, logger zerolog.Logger) *Worker {
	return &Worker{
		Channel:    ch,
		Dispatcher: dispatcher,
		Logger:     logger,
	}
}

// Start consumes queueName until ctx is cancelled. Every failed command is
// rejected without requeue, so it lands on the DLQ; there are no retries.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor RabbitMQ: %w", err)
	}

	w.Logger.Info().Str("queue", queueName).Msg(" [*] Worker rodando e aguardando comandos")

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return ErrConsumerClosed
			}
			w.handle(ctx, d)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	if err := w.processMessage(ctx, d.Body); err != nil {
		w.Logger.Error().Err(err).Uint64("tag", d.DeliveryTag).Msg("❌ [WORKER] Comando rejeitado")
		if nackErr := d.Nack(false, false); nackErr != nil {
			w.Logger.Error().Err(nackErr).Msg("falha no Nack")
		}
		return
	}

	if err := d.Ack(false); err != nil {
		w.Logger.Error().Err(err).Msg("falha no Ack")
	}
}

func (w *Worker) processMessage(ctx context.Context, body []byte) error {
	var cmd OutboundCommand
	if err := json.Unmarshal(body, &cmd); err != nil {
		return fmt.Errorf("JSON inválido: %w", err)
	}

	ctx = usecase.WithOrigin(ctx, usecase.OriginQueue)

	var err error
	switch cmd.Type {
	case "text":
		_, err = w.Dispatcher.SendText(ctx, usecase.SendTextInput{
			Number:  cmd.Number,
			Message: cmd.Message,
		})
	case "image":
		_, err = w.Dispatcher.SendImage(ctx, usecase.SendImageInput{
			Number:   cmd.Number,
			ImageURL: cmd.ImageURL,
			Caption:  cmd.Caption,
		})
	case "file":
		_, err = w.Dispatcher.SendFile(ctx, usecase.SendFileInput{
			Number:   cmd.Number,
			Filename: cmd.Filename,
			Base64:   cmd.Base64,
		})
	default:
		return fmt.Errorf("tipo de comando desconhecido: %q", cmd.Type)
	}

	return err
}
