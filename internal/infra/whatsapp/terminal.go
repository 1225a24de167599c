package whatsapp

import (
	"io"

	"github.com/mdp/qrterminal/v3"
	"github.com/rs/zerolog"
)

// TerminalObserver renders pairing codes as a QR code on the operator's terminal.
type TerminalObserver struct {
	Out    io.Writer
	Logger zerolog.Logger
}

func NewTerminalObserver(out io.Writer, logger zerolog.Logger) *TerminalObserver {
	return &TerminalObserver{Out: out, Logger: logger}
}

func (o *TerminalObserver) OnPairingCode(code string) {
	qrterminal.GenerateHalfBlock(code, qrterminal.L, o.Out)
	o.Logger.Info().Msg("➡️ Escaneie o QR Code acima com o WhatsApp do número remetente")
}

func (o *TerminalObserver) OnStateChange(state State) {
	switch state {
	case StateReady:
		o.Logger.Info().Msg("✅ Cliente WhatsApp pronto")
	case StateAwaitingPairing:
		o.Logger.Info().Msg("🔑 Aguardando pareamento")
	default:
		o.Logger.Warn().Msg("🔌 Sessão WhatsApp desconectada")
	}
}
