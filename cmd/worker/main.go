package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fangbc5/flare/pkg/config"
	"github.com/fangbc5/flare/pkg/dingtalk"
	"github.com/fangbc5/flare/pkg/email"
	"github.com/fangbc5/flare/pkg/feishu"
	"github.com/fangbc5/flare/pkg/logger"
	"github.com/fangbc5/flare/pkg/notification"
	"github.com/fangbc5/flare/pkg/sms"
	"github.com/fangbc5/flare/pkg/webhook"
	"github.com/fangbc5/flare/pkg/worker"
)

type appConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

func main() {
	var appCfg appConfig
	config.MustLoad(&appCfg)

	log := logger.New(logger.WithEnvironment(appCfg.Env, "flare-worker"))
	logger.SetAsDefault(log)

	var (
		emailCfg    email.Config
		smsCfg      sms.Config
		feishuCfg   feishu.Config
		dingtalkCfg dingtalk.Config
		workerCfg   worker.Config
	)
	config.MustLoad(&emailCfg)
	config.MustLoad(&smsCfg)
	config.MustLoad(&feishuCfg)
	config.MustLoad(&dingtalkCfg)
	config.MustLoad(&workerCfg)

	emailSender, err := email.NewSender(emailCfg)
	if err != nil {
		fatal(log, "email sender init failed", err)
	}
	smsSender, err := sms.NewSender(smsCfg, sms.WithLogger(log))
	if err != nil {
		fatal(log, "sms sender init failed", err)
	}

	// One pooled client shared by both webhook senders.
	webhookClient := webhook.NewClient()
	feishuSender, err := feishu.NewSender(feishuCfg, feishu.WithWebhookClient(webhookClient))
	if err != nil {
		fatal(log, "feishu sender init failed", err)
	}
	dingtalkSender, err := dingtalk.NewSender(dingtalkCfg, dingtalk.WithWebhookClient(webhookClient))
	if err != nil {
		fatal(log, "dingtalk sender init failed", err)
	}

	router := notification.NewRouter()
	router.Register(notification.ChannelEmail, emailSender)
	router.Register(notification.ChannelSMS, smsSender)
	router.Register(notification.ChannelIMFeishu, feishuSender)
	router.Register(notification.ChannelIMDingding, dingtalkSender)

	handler := worker.NewHandler(router,
		worker.WithDefaultFrom(emailCfg.SMTPUser),
		worker.WithHandlerLogger(log),
	)
	consumer, err := worker.NewConsumer(workerCfg, handler, worker.WithConsumerLogger(log))
	if err != nil {
		fatal(log, "consumer init failed", err)
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		fatal(log, "consumer start failed", err)
	}

	<-ctx.Done()
	log.Info("shutting down")
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, logger.Error(err))
	os.Exit(1)
}
