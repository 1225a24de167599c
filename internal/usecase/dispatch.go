package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/xavierca1/wa-gateway/internal/entity"
)

const (
	OriginHTTP  = "HTTP"
	OriginQueue = "QUEUE"
)

type originKey struct{}

// WithOrigin tags ctx with where a dispatch came from; it ends up on the delivery event.
func WithOrigin(ctx context.Context, origin string) context.Context {
	return context.WithValue(ctx, originKey{}, origin)
}

// Origin returns the origin set by WithOrigin, defaulting to OriginHTTP.
func Origin(ctx context.Context) string {
	if o, ok := ctx.Value(originKey{}).(string); ok {
		return o
	}
	return OriginHTTP
}

type DispatchUseCase struct {
	Messenger Messenger
	Events    EventPublisher
	Recorder  DeliveryRecorder
	Logger    zerolog.Logger
}

// NewDispatchUseCase wires the three send flows. events and recorder may be nil.
func NewDispatchUseCase(messenger Messenger, events EventPublisher, recorder DeliveryRecorder, logger zerolog.Logger) *DispatchUseCase {
	return &DispatchUseCase{
		Messenger: messenger,
		Events:    events,
		Recorder:  recorder,
		Logger:    logger,
	}
}

func (uc *DispatchUseCase) SendText(ctx context.Context, input SendTextInput) (*DispatchOutput, error) {
	if err := uc.validate(TextOperation, ValidateSendTextInput(input)); err != nil {
		return nil, err
	}

	to := entity.NormalizeAddress(input.Number)
	return uc.deliver(ctx, TextOperation, to, func(context.Context) (entity.Payload, error) {
		return entity.TextPayload(input.Message), nil
	})
}

func (uc *DispatchUseCase) SendImage(ctx context.Context, input SendImageInput) (*DispatchOutput, error) {
	if err := uc.validate(ImageOperation, ValidateSendImageInput(input)); err != nil {
		return nil, err
	}

	to := entity.NormalizeAddress(input.Number)
	return uc.deliver(ctx, ImageOperation, to, func(ctx context.Context) (entity.Payload, error) {
		media, err := uc.Messenger.MediaFromURL(ctx, input.ImageURL)
		if err != nil {
			return entity.Payload{}, err
		}
		return entity.MediaPayload(media, input.Caption), nil
	})
}

// SendFile always tags the media as application/pdf, whatever the filename extension.
func (uc *DispatchUseCase) SendFile(ctx context.Context, input SendFileInput) (*DispatchOutput, error) {
	if err := uc.validate(FileOperation, ValidateSendFileInput(input)); err != nil {
		return nil, err
	}

	to := entity.NormalizeAddress(input.Number)
	return uc.deliver(ctx, FileOperation, to, func(context.Context) (entity.Payload, error) {
		media, err := entity.NewMediaFromBase64(entity.FileMimeType, input.Base64, input.Filename)
		if err != nil {
			return entity.Payload{}, err
		}
		return entity.MediaPayload(media, ""), nil
	})
}

func (uc *DispatchUseCase) validate(op Operation, validationErrors []ValidationError) error {
	err := missingParameter(validationErrors)
	if err != nil {
		uc.Logger.Warn().
			Str("operation", op.Name).
			Str("missing", joinFields(err.(*DomainError).Fields)).
			Msg("⚠️ Requisição sem parâmetros obrigatórios")
	}
	return err
}

// deliver builds the payload and hands it to the messenger. Any failure on either
// step collapses into a single DeliveryFailure carrying the operation's message.
func (uc *DispatchUseCase) deliver(
	ctx context.Context,
	op Operation,
	to entity.Address,
	build func(context.Context) (entity.Payload, error),
) (*DispatchOutput, error) {
	payload, err := build(ctx)
	if err == nil {
		err = uc.Messenger.SendMessage(ctx, to, payload)
	}

	if err != nil {
		uc.Logger.Error().
			Err(err).
			Str("operation", op.Name).
			Str("to", to.String()).
			Msg("❌ Falha ao enviar pelo WhatsApp")
		uc.record(op, entity.DeliveryStatusFailed)
		uc.publish(ctx, op, to, err)

		return nil, &TechnicalError{
			Code:    CodeDeliveryFailure,
			Message: op.Failure,
			Err:     err,
		}
	}

	uc.Logger.Info().
		Str("operation", op.Name).
		Str("to", to.String()).
		Msg("✅ Mensagem entregue ao WhatsApp")
	uc.record(op, entity.DeliveryStatusSent)
	uc.publish(ctx, op, to, nil)

	return &DispatchOutput{
		Success: true,
		Message: op.Success,
	}, nil
}

func (uc *DispatchUseCase) record(op Operation, status string) {
	if uc.Recorder != nil {
		uc.Recorder.RecordDelivery(op.Name, status)
	}
}

// publish never changes the dispatch result; broker failures are only logged.
func (uc *DispatchUseCase) publish(ctx context.Context, op Operation, to entity.Address, sendErr error) {
	if uc.Events == nil {
		return
	}

	event := entity.DeliveryEvent{
		ID:         uuid.New().String(),
		Operation:  op.Name,
		To:         to.String(),
		Status:     entity.DeliveryStatusSent,
		Origin:     Origin(ctx),
		OccurredAt: time.Now().UTC(),
	}
	if sendErr != nil {
		event.Status = entity.DeliveryStatusFailed
		event.Error = sendErr.Error()
	}

	if err := uc.Events.PublishDelivery(context.WithoutCancel(ctx), event); err != nil {
		uc.Logger.Warn().Err(err).Str("event_id", event.ID).Msg("⚠️ Evento de entrega não publicado")
	}
}
