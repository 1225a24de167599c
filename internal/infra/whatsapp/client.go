package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"
	"google.golang.org/protobuf/proto"

	"github.com/xavierca1/wa-gateway/internal/entity"
)

var (
	ErrNotReady     = errors.New("whatsapp: sessão não está pronta")
	ErrEmptyAddress = errors.New("whatsapp: destinatário vazio")
)

// sender is the part of *whatsmeow.Client used to deliver messages.
type sender interface {
	SendMessage(ctx context.Context, to types.JID, message *waE2E.Message, extra ...whatsmeow.SendRequestExtra) (whatsmeow.SendResponse, error)
	Upload(ctx context.Context, plaintext []byte, appInfo whatsmeow.MediaType) (whatsmeow.UploadResponse, error)
}

type Client struct {
	wa        *whatsmeow.Client
	sender    sender
	lifecycle *Lifecycle
	fetcher   *http.Client
	maxMedia  int64
	logger    zerolog.Logger
}

func NewClient(device *store.Device, logger zerolog.Logger) *Client {
	wa := whatsmeow.NewClient(device, waLog.Zerolog(logger.With().Str("module", "Client").Logger()))
	c := newClient(wa, logger)
	c.wa = wa
	return c
}

func newClient(s sender, logger zerolog.Logger) *Client {
	return &Client{
		sender:    s,
		lifecycle: NewLifecycle(),
		// Sem timeout próprio: o contexto da requisição é o único limite.
		fetcher:  &http.Client{},
		maxMedia: MaxImageBytes,
		logger:   logger,
	}
}

func (c *Client) State() State {
	return c.lifecycle.State()
}

func (c *Client) Subscribe(o Observer) {
	c.lifecycle.Subscribe(o)
}

// Start connects the session. Without a stored device it first opens the QR
// channel, and pairing codes go out to observers until someone scans one.
func (c *Client) Start(ctx context.Context) error {
	c.wa.AddEventHandler(c.handleEvent)

	if c.wa.Store.ID == nil {
		qrChan, err := c.wa.GetQRChannel(ctx)
		if err != nil {
			return fmt.Errorf("falha ao abrir canal de QR: %w", err)
		}
		go c.watchPairing(qrChan)
		c.logger.Info().Msg("🔌 Conectando ao WhatsApp (novo pareamento)...")
	} else {
		c.logger.Info().Str("jid", c.wa.Store.ID.String()).Msg("🔌 Conectando ao WhatsApp com sessão salva...")
	}

	if err := c.wa.Connect(); err != nil {
		return fmt.Errorf("falha ao conectar no WhatsApp: %w", err)
	}
	return nil
}

// Paired reports whether a device identity is stored, i.e. a reconnect can work without a new QR.
func (c *Client) Paired() bool {
	return c.wa != nil && c.wa.Store.ID != nil
}

func (c *Client) Reconnect() error {
	c.wa.Disconnect()
	if err := c.wa.Connect(); err != nil {
		return fmt.Errorf("falha ao reconectar no WhatsApp: %w", err)
	}
	return nil
}

func (c *Client) Stop() {
	if c.wa != nil {
		c.wa.Disconnect()
	}
	c.lifecycle.Set(StateUninitialized)
}

func (c *Client) watchPairing(qrChan <-chan whatsmeow.QRChannelItem) {
	for evt := range qrChan {
		switch evt.Event {
		case "code":
			c.lifecycle.PairingCode(evt.Code)
		case "success":
			c.logger.Info().Msg("🤝 Pareamento concluído")
		case "timeout":
			c.logger.Warn().Msg("⌛ QR Code expirou sem leitura")
			c.lifecycle.Set(StateUninitialized)
		case "error":
			c.logger.Error().Err(evt.Error).Msg("❌ Erro no pareamento")
		default:
			c.logger.Info().Str("event", evt.Event).Msg("Evento QR")
		}
	}
}

func (c *Client) handleEvent(rawEvt interface{}) {
	switch evt := rawEvt.(type) {
	case *events.Connected:
		c.lifecycle.Set(StateReady)
	case *events.PairSuccess:
		c.logger.Info().Str("jid", evt.ID.String()).Msg("Dispositivo pareado")
	case *events.Disconnected:
		c.lifecycle.Set(StateUninitialized)
	case *events.StreamReplaced:
		c.logger.Warn().Msg("Sessão aberta em outro lugar")
		c.lifecycle.Set(StateUninitialized)
	case *events.LoggedOut:
		c.logger.Warn().Str("reason", evt.Reason.String()).Msg("Sessão encerrada pelo telefone")
		c.lifecycle.Set(StateUninitialized)
	}
}

// SendMessage delivers payload to the address. Media is uploaded first; images
// go out as image messages and everything else as a document.
func (c *Client) SendMessage(ctx context.Context, to entity.Address, payload entity.Payload) error {
	if c.lifecycle.State() != StateReady {
		return ErrNotReady
	}

	jid, err := toJID(to)
	if err != nil {
		return err
	}

	msg, err := c.buildMessage(ctx, payload)
	if err != nil {
		return err
	}

	resp, err := c.sender.SendMessage(ctx, jid, msg)
	if err != nil {
		return fmt.Errorf("falha no envio para %s: %w", jid, err)
	}

	c.logger.Debug().Str("id", string(resp.ID)).Str("to", jid.String()).Msg("Mensagem aceita pelo servidor")
	return nil
}

func (c *Client) buildMessage(ctx context.Context, payload entity.Payload) (*waE2E.Message, error) {
	if payload.Media == nil {
		return &waE2E.Message{Conversation: proto.String(payload.Text)}, nil
	}

	media := payload.Media
	var caption *string
	if payload.Caption != "" {
		caption = proto.String(payload.Caption)
	}

	if media.IsImage() {
		up, err := c.sender.Upload(ctx, media.Data, whatsmeow.MediaImage)
		if err != nil {
			return nil, fmt.Errorf("falha no upload da imagem: %w", err)
		}
		return &waE2E.Message{
			ImageMessage: &waE2E.ImageMessage{
				URL:           proto.String(up.URL),
				DirectPath:    proto.String(up.DirectPath),
				MediaKey:      up.MediaKey,
				Mimetype:      proto.String(media.MimeType),
				FileEncSHA256: up.FileEncSHA256,
				FileSHA256:    up.FileSHA256,
				FileLength:    proto.Uint64(uint64(len(media.Data))),
				Caption:       caption,
			},
		}, nil
	}

	up, err := c.sender.Upload(ctx, media.Data, whatsmeow.MediaDocument)
	if err != nil {
		return nil, fmt.Errorf("falha no upload do documento: %w", err)
	}
	doc := &waE2E.DocumentMessage{
		URL:           proto.String(up.URL),
		DirectPath:    proto.String(up.DirectPath),
		MediaKey:      up.MediaKey,
		Mimetype:      proto.String(media.MimeType),
		FileEncSHA256: up.FileEncSHA256,
		FileSHA256:    up.FileSHA256,
		FileLength:    proto.Uint64(uint64(len(media.Data))),
		Caption:       caption,
	}
	if media.Filename != "" {
		doc.FileName = proto.String(media.Filename)
		doc.Title = proto.String(media.Filename)
	}
	return &waE2E.Message{DocumentMessage: doc}, nil
}

// toJID maps "<number>@c.us" to a user JID on the default server. Anything that
// still carries a server after the suffix is stripped (groups) is parsed as is.
func toJID(to entity.Address) (types.JID, error) {
	user := to.User()
	if user == "" {
		return types.EmptyJID, ErrEmptyAddress
	}
	if strings.Contains(user, "@") {
		jid, err := types.ParseJID(user)
		if err != nil {
			return types.EmptyJID, fmt.Errorf("destinatário inválido %q: %w", user, err)
		}
		return jid, nil
	}
	return types.NewJID(user, types.DefaultUserServer), nil
}
