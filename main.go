package main

import (
	"context"
	"os"

	firebase "firebase.google.com/go/v4"
	"github.com/hibiken/asynq"
	"github.com/mazraa/mazra-BE/api"
	"github.com/mazraa/mazra-BE/internal/dispatcher"
	"github.com/mazraa/mazra-BE/internal/mailer"
	"github.com/mazraa/mazra-BE/internal/messaging"
	"github.com/mazraa/mazra-BE/internal/notification"
	"github.com/mazraa/mazra-BE/internal/retention"
	"github.com/mazraa/mazra-BE/internal/user"
	"github.com/mazraa/mazra-BE/internal/util"
	"github.com/mazraa/mazra-BE/internal/watcher"
	"github.com/mazraa/mazra-BE/internal/worker"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx := context.Background()

	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}

	log.Info().Msg("configurations loaded successfully ✅")

	// Initialize the Firebase SDK once; everything downstream receives
	// already-initialized client handles.
	firebaseApp, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(config.FirebaseCredentialsFile))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize firebase app 😣")
	}

	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create firestore client 😣")
	}
	defer firestoreClient.Close()
	log.Info().Msg("connected to firestore ✅")

	fcmSender, err := messaging.NewFCMSender(ctx, firebaseApp)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create FCM sender 😣")
	}
	log.Info().Msg("FCM sender created successfully ✅")

	userStore := user.NewFirestoreStore(firestoreClient)
	inboxStore := notification.NewFirestoreStore(firestoreClient)

	redisOpt := asynq.RedisClientOpt{
		Addr: config.RedisServerAddress,
	}

	taskDistributor := worker.NewTaskDistributor(redisOpt)

	var adminMailer dispatcher.Mailer
	if config.MailerEnabled() {
		gmailSender, err := mailer.NewGmailSender(config.GmailSMTPUsername, config.GmailSMTPPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create mailer service 😣")
		}
		adminMailer = gmailSender
		log.Info().Msg("mailer service created successfully ✅")
	}

	notificationDispatcher := dispatcher.NewDispatcher(fcmSender, userStore, inboxStore, taskDistributor, adminMailer, config)

	go runTaskProcessor(redisOpt, inboxStore, userStore)

	documentWatcher := watcher.NewWatcher(firestoreClient, notificationDispatcher)
	documentWatcher.Start(ctx)
	log.Info().Msg("firestore watcher started ✅")

	sweeper, err := retention.NewSweeper(inboxStore, config.NotificationRetentionDays)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create retention sweeper 😣")
	}
	if err = sweeper.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start retention sweeper 😣")
	}
	defer sweeper.Stop()

	runHTTPServer(&config, userStore, inboxStore)
}

func runTaskProcessor(redisOpt asynq.RedisClientOpt, inboxStore notification.Store, userStore user.Store) {
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, inboxStore, userStore)

	log.Info().Msg("starting task processor ✅")
	if err := taskProcessor.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start task processor 😣")
	}
}

func runHTTPServer(config *util.Config, userStore user.Store, inboxStore notification.Store) {
	server := api.NewServer(userStore, inboxStore, config)

	if err := server.Start(config.HTTPServerAddress); err != nil {
		log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
	}
}
