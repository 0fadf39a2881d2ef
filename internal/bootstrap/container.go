package bootstrap

import (
	"heyrube-be/internal/config"
	"heyrube-be/internal/controller"
	"heyrube-be/internal/pkg/logger"
	"heyrube-be/internal/repository/unitofwork"
	"heyrube-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	AuthController    controller.IAuthController
	JournalController controller.IJournalController
	EntryController   controller.IEntryController
	LinkController    controller.ILinkController
	TagController     controller.ITagController
	TrashController   controller.ITrashController
	MediaController   controller.IMediaController

	// Background services, run by main.go.
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(cfg.Events.ActivityTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Events.ActivityTopic, sysLogger)

	graphCache := service.NewGraphCache()

	authService := service.NewAuthService(uowFactory, cfg.Auth.JWTSecret)
	journalService := service.NewJournalService(uowFactory, publisherService, graphCache)
	entryService := service.NewEntryService(uowFactory, publisherService, graphCache)
	linkService := service.NewLinkService(uowFactory, graphCache)
	tagService := service.NewTagService(uowFactory)
	trashService := service.NewTrashService(uowFactory, graphCache)

	return &Container{
		AuthController:    controller.NewAuthController(authService),
		JournalController: controller.NewJournalController(journalService),
		EntryController:   controller.NewEntryController(entryService),
		LinkController:    controller.NewLinkController(linkService),
		TagController:     controller.NewTagController(tagService),
		TrashController:   controller.NewTrashController(trashService),
		MediaController:   controller.NewMediaController(cfg.App.UploadDir),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
