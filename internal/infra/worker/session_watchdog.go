package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/xavierca1/wa-gateway/internal/infra/whatsapp"
)

// Session is the part of the WhatsApp client the watchdog needs.
type Session interface {
	State() whatsapp.State
	Paired() bool
	Reconnect() error
}

// SessionWatchdog reconnects a paired session that stayed disconnected for
// longer than the grace window. Unpaired sessions are left alone: they need a
// new QR scan, not a reconnect.
type SessionWatchdog struct {
	session      Session
	logger       zerolog.Logger
	graceWindow  time.Duration
	tickInterval time.Duration
	now          func() time.Time

	downSince time.Time
}

func NewSessionWatchdog(session Session, logger zerolog.Logger) *SessionWatchdog {
	return &SessionWatchdog{
		session:      session,
		logger:       logger,
		graceWindow:  2 * time.Minute,  // o whatsmeow tenta sozinho antes disso
		tickInterval: 30 * time.Second, // Roda a cada 30s
		now:          time.Now,
	}
}

func (w *SessionWatchdog) Start(ctx context.Context) {
	w.logger.Info().Dur("grace", w.graceWindow).Msg("🕒 Watchdog da sessão WhatsApp iniciado")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("⚠️ Watchdog da sessão encerrado")
			return
		case <-ticker.C:
			w.check()
		}
	}
}

func (w *SessionWatchdog) check() {
	if w.session.State() != whatsapp.StateUninitialized || !w.session.Paired() {
		w.downSince = time.Time{}
		return
	}

	now := w.now()
	if w.downSince.IsZero() {
		w.downSince = now
		return
	}

	elapsed := now.Sub(w.downSince)
	if elapsed < w.graceWindow {
		return
	}

	w.logger.Warn().Dur("down_for", elapsed.Round(time.Second)).Msg("⏱️ Sessão desconectada há muito tempo, reconectando")
	if err := w.session.Reconnect(); err != nil {
		w.logger.Error().Err(err).Msg("❌ Reconexão falhou")
		return
	}
	w.downSince = time.Time{}
}
