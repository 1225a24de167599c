package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/xavierca1/wa-gateway/internal/config"
	"github.com/xavierca1/wa-gateway/internal/infra/database"
	"github.com/xavierca1/wa-gateway/internal/infra/http/handlers"
	"github.com/xavierca1/wa-gateway/internal/infra/http/middleware"
	"github.com/xavierca1/wa-gateway/internal/infra/mail"
	"github.com/xavierca1/wa-gateway/internal/infra/queue"
	"github.com/xavierca1/wa-gateway/internal/infra/whatsapp"
	"github.com/xavierca1/wa-gateway/internal/infra/worker"
	"github.com/xavierca1/wa-gateway/internal/logger"
	"github.com/xavierca1/wa-gateway/internal/usecase"
)

const version = "1.0.0"

//	@title			WhatsApp Gateway API
//	@version		1.0
//	@description	API HTTP para enviar mensajes, imágenes y archivos por WhatsApp Web.
//	@BasePath		/
func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", os.Stderr)
		bootLog.Fatal().Err(err).Msg("❌ Configuração inválida")
	}
	log := logger.New(cfg.LogLevel, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Store de sessão
	db, err := database.NewDBConnection(cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("❌ Store de sessão indisponível")
	}
	defer db.Close()

	device, err := whatsapp.OpenDevice(ctx, db, cfg.StoreDriver, log)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Falha ao carregar dispositivo")
	}

	// 2. Cliente WhatsApp e observadores do pareamento
	client := whatsapp.NewClient(device, log)
	client.Subscribe(whatsapp.NewTerminalObserver(os.Stdout, log))
	if cfg.MailEnabled() {
		sender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
		client.Subscribe(mail.NewPairingNotifier(sender, cfg.PairingNotifyEmail, "wa-gateway", log))
		log.Info().Str("to", cfg.PairingNotifyEmail).Msg("📧 QR de pareamento também será enviado por e-mail")
	}

	// 3. Fila (opcional)
	var (
		events   usecase.EventPublisher
		rabbitMQ *queue.RabbitMQ
		amqpConn *amqp.Connection
	)
	if cfg.QueueEnabled() {
		rabbitMQ, err = queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			log.Fatal().Err(err).Msg("❌ RabbitMQ indisponível")
		}
		defer rabbitMQ.Close()
		amqpConn = rabbitMQ.Conn
		events = queue.NewProducer(rabbitMQ.Ch)
	}

	// 4. UseCase
	dispatch := usecase.NewDispatchUseCase(client, events, middleware.DeliveryMetrics{}, log)

	if rabbitMQ != nil {
		cmdWorker := queue.NewWorker(rabbitMQ.Ch, dispatch, log)
		go func() {
			if err := cmdWorker.Start(ctx, queue.OutboundQueue); err != nil {
				log.Error().Err(err).Msg("❌ Worker de comandos parou")
			}
		}()
	}

	// 5. HTTP
	server := newServer(cfg, dispatch, db, amqpConn, log)

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("🔥 Gateway WhatsApp rodando")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("❌ Servidor HTTP caiu")
		}
	}()

	// O servidor já aceita requisições; até o pareamento elas respondem 500.
	if err := client.Start(ctx); err != nil {
		log.Error().Err(err).Msg("❌ Cliente WhatsApp não iniciou")
	}
	go worker.NewSessionWatchdog(client, log).Start(ctx)

	<-ctx.Done()
	log.Info().Msg("🛑 Encerrando...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Erro ao encerrar servidor HTTP")
	}
	client.Stop()
}

func newServer(cfg *config.Config, dispatch handlers.Dispatcher, db *sql.DB, amqpConn *amqp.Connection, log zerolog.Logger) *http.Server {
	router := handlers.NewRouter(handlers.RouterConfig{
		Messages:       handlers.NewMessageHandler(dispatch, log),
		Health:         handlers.NewHealthHandler(db, amqpConn, version),
		AllowedOrigins: cfg.AllowedOrigins(),
		BodyLimit:      cfg.BodyLimitBytes(),
	})
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
