package deps

import (
	"context"
	"fmt"
	"healthmate/internal/config"
	"healthmate/internal/core/domain/channel"
	dkv "healthmate/internal/core/domain/kv"
	dl "healthmate/internal/core/domain/logging"
	"healthmate/internal/core/domain/notification"
	drl "healthmate/internal/core/domain/rate_limiter"
	"healthmate/internal/core/domain/reminder"
	dbkv "healthmate/internal/db/kv"
	"healthmate/internal/implementations/events"
	firelog "healthmate/internal/implementations/fire_log"
	idgenerator "healthmate/internal/implementations/id_generator"
	"healthmate/internal/implementations/kv"
	"healthmate/internal/implementations/logging"
	notificationrepository "healthmate/internal/implementations/notification_repository"
	ownerlock "healthmate/internal/implementations/owner_lock"
	ratelimiter "healthmate/internal/implementations/rate_limiter"
	reminderdispatcher "healthmate/internal/implementations/reminder_dispatcher"
	reminderstore "healthmate/internal/implementations/reminder_store"
	systemnotifier "healthmate/internal/implementations/system_notifier"
	"healthmate/internal/metrics"
	"healthmate/internal/rabbitmq"
	systemnotification "healthmate/internal/rabbitmq/publishers/system_notification"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB        *pgxpool.Pool
	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Registry *prometheus.Registry
	Metrics  *metrics.Metrics

	Now func() time.Time

	KV                     dkv.Store
	ReminderStore          reminder.Store
	ReminderLocker         reminder.Locker
	ReminderIDGenerator    reminder.IDGenerator
	FireLog                reminder.FireLog
	ChannelRepository      channel.Repository
	PermissionRepository   notification.PermissionRepository
	RateLimiter            drl.RateLimiter
	DirectSystemNotifier   notification.SystemNotifier
	SystemNotifier         notification.SystemNotifier
	Banner                 *events.Banner
	AudioPlayer            notification.AudioPlayer
	NotificationDispatcher notification.Dispatcher
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeSseServer := deps.initSseServer()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.initMetrics()

	deps.KV = deps.initKVStore()
	namespace := deps.Config.StoreNamespace
	deps.ReminderStore = reminderstore.New(deps.Logger, deps.KV, namespace)
	deps.ReminderLocker = ownerlock.New()
	deps.ReminderIDGenerator = idgenerator.NewMillis(deps.Now)
	deps.FireLog = firelog.NewMemory()
	deps.ChannelRepository = notificationrepository.NewChannels(deps.KV, namespace)
	deps.PermissionRepository = notificationrepository.NewPermissions(deps.KV, namespace)
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)

	deps.DirectSystemNotifier = systemnotifier.WithRefusalTracking(
		deps.Logger,
		systemnotifier.New(deps.ChannelRepository, deps.initTelegram(), deps.initEmail()),
		deps.PermissionRepository,
	)
	closeSystemNotifier := deps.initSystemNotifier()

	streams := events.NewStreams(deps.SseServer)
	deps.Banner = events.NewBanner(deps.Logger, streams, deps.Config.BannerDuration)
	deps.AudioPlayer = events.NewAudio(streams)
	deps.NotificationDispatcher = reminderdispatcher.New(
		deps.Logger,
		deps.SystemNotifier,
		deps.Banner,
		deps.AudioPlayer,
		deps.Metrics,
	)

	flushSentry := deps.initSentry()

	return deps, func() {
		deps.Banner.Close()

		closeFuncs := []func(){
			closeSseServer,
			closeSystemNotifier,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initMetrics() {
	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = metrics.New(deps.Registry)
}

func (deps *Deps) initPgxPool() func() {
	if deps.Config.StoreBackend != config.STORE_BACKEND_POSTGRES {
		return func() {}
	}
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initKVStore() dkv.Store {
	if deps.Config.StoreBackend == config.STORE_BACKEND_POSTGRES {
		return dbkv.NewPgxStore(deps.DB)
	}
	return kv.NewRedisStore(deps.Redis)
}

func (deps *Deps) initRabbitmqConnection() func() {
	if deps.Config.RabbitmqURL == "" {
		return func() {}
	}
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

// initSystemNotifier picks the system tier of the dispatcher. In queue mode
// notifications are published to RabbitMQ and delivered by the notifier
// process.
func (deps *Deps) initSystemNotifier() func() {
	if deps.Config.NotificationDelivery != config.DELIVERY_QUEUE {
		deps.SystemNotifier = deps.DirectSystemNotifier
		return func() {}
	}

	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}
	queue := deps.Config.RabbitmqSystemNotificationQueue
	if err := rabbitmqChannel.DeclareQueue(queue); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}

	deps.SystemNotifier = systemnotification.NewRabbitMQ(deps.Logger, rabbitmqChannel, queue)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down system notification publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "System notification publisher shut down.")
	}
}

func (deps *Deps) initTelegram() *systemnotifier.Telegram {
	if !deps.Config.IsTelegramEnabled() {
		deps.Logger.Info(context.Background(), "Telegram delivery is disabled.")
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(deps.Config.TelegramBotToken)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not init Telegram bot.", dl.Entry("err", err))
		panic(err)
	}
	bot.Debug = deps.Config.IsTestMode
	deps.Logger.Info(context.Background(), "Telegram bot authorized.", dl.Entry("bot", bot.Self.UserName))
	return systemnotifier.NewTelegram(bot)
}

func (deps *Deps) initEmail() *systemnotifier.Email {
	if !deps.Config.IsEmailEnabled() {
		deps.Logger.Info(context.Background(), "Email delivery is disabled.")
		return nil
	}
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	return systemnotifier.NewEmailFromConfig(cfg, deps.Config.AwsEmailSender)
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = true
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != nil {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn.String(),
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
