package mail

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/skip2/go-qrcode"

	"github.com/xavierca1/wa-gateway/internal/infra/whatsapp"
)

type PairingSender interface {
	SendPairing(to string, data PairingEmailData, qrPNG []byte) error
}

// PairingNotifier mails the first QR code of each pairing round to the operator.
// Codes rotate every few seconds; later codes of the same round are not mailed.
type PairingNotifier struct {
	Sender  PairingSender
	To      string
	Service string
	Logger  zerolog.Logger

	mu   sync.Mutex
	sent bool
}

var _ whatsapp.Observer = (*PairingNotifier)(nil)

func NewPairingNotifier(sender PairingSender, to, service string, logger zerolog.Logger) *PairingNotifier {
	return &PairingNotifier{
		Sender:  sender,
		To:      to,
		Service: service,
		Logger:  logger,
	}
}

func (n *PairingNotifier) OnStateChange(state whatsapp.State) {
	if state == whatsapp.StateAwaitingPairing {
		return
	}
	n.mu.Lock()
	n.sent = false
	n.mu.Unlock()
}

func (n *PairingNotifier) OnPairingCode(code string) {
	n.mu.Lock()
	if n.sent {
		n.mu.Unlock()
		return
	}
	n.sent = true
	n.mu.Unlock()

	png, err := qrcode.Encode(code, qrcode.Medium, 256)
	if err != nil {
		n.Logger.Error().Err(err).Msg("❌ Falha ao gerar PNG do QR Code")
		return
	}

	// SMTP pode demorar; não segura o goroutine de eventos do cliente.
	go func() {
		err := n.Sender.SendPairing(n.To, PairingEmailData{Service: n.Service}, png)
		if err != nil {
			n.Logger.Error().Err(err).Str("to", n.To).Msg("❌ Falha ao enviar QR Code por e-mail")
			return
		}
		n.Logger.Info().Str("to", n.To).Msg("📧 QR Code de pareamento enviado por e-mail")
	}()
}
