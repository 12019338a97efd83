package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/oksasatya/go-ddd-employee-service/config"
	"github.com/oksasatya/go-ddd-employee-service/internal/infrastructure/messaging"
	"github.com/oksasatya/go-ddd-employee-service/internal/infrastructure/search"
	"github.com/oksasatya/go-ddd-employee-service/internal/worker"
	"github.com/oksasatya/go-ddd-employee-service/pkg/helpers"
	"github.com/oksasatya/go-ddd-employee-service/pkg/mailer"
)

// event_worker consumes employee events: it keeps the search index in sync and
// sends the welcome email for new employees.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-event-worker", cfg.Env)

	if cfg.RabbitMQURL == "" || cfg.RabbitMQEventsQueue == "" {
		logger.Fatal("RabbitMQ not configured")
	}

	h := &worker.EmployeeEventHandler{CompanyName: cfg.CompanyName, Logger: logger}

	if cfg.SearchEnabled {
		es, err := helpers.NewESClient(helpers.ESOptions{
			Addresses: cfg.ESAddrs(),
			Username:  cfg.ElasticsearchUser,
			Password:  cfg.ElasticsearchPass,
		})
		if err != nil {
			logger.Fatalf("elasticsearch: %v", err)
		}
		h.Indexer = search.NewEmployeeIndex(es, cfg.ESEmployeesIndex)
	}

	if cfg.MailSendEnabled {
		if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
			logger.Fatal("Mailgun not configured")
		}
		h.Mailer = mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	} else {
		logger.Info("MAIL_SEND_ENABLED=false; welcome emails are skipped")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		logger.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// prefetch for fair dispatch across workers
	if err := ch.Qos(16, 0, false); err != nil {
		logger.Fatalf("qos: %v", err)
	}
	if err := messaging.DeclareQueue(ch, cfg.RabbitMQEventsQueue); err != nil {
		logger.Fatal(err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQEventsQueue, "", false, false, false, false, nil)
	if err != nil {
		logger.Fatalf("consume: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		h.Consume(ctx, msgs)
		close(done)
	}()

	logger.Infof("event worker listening on queue=%s", cfg.RabbitMQEventsQueue)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-stop:
	case <-done:
		logger.Warn("delivery channel closed")
	}
	logger.Info("shutting down...")
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
