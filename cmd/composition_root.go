package cmd

import (
	"log/slog"

	adapterhttp "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/notify"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/customerrepo"
	"logistics/internal/adapters/out/postgres/notificationlog"
	"logistics/internal/adapters/out/signals"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	handler := commands.NewCreateOrderCommandHandler(c.createUoWFactory())
	return &handler
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() *commands.UpdateOrderStatusCommandHandler {
	handler := commands.NewUpdateOrderStatusCommandHandler(c.createUoWFactory())
	return &handler
}

func (c *CompositionRoot) CreateDispatchNotificationCommandHandler() *commands.DispatchNotificationCommandHandler {
	smsSender, err := notify.NewGatewaySMSSender(c.configs.SMSGatewayURL)
	if err != nil {
		log.Fatalf("Invalid SMS gateway configuration: %v", err)
	}
	emailSender, err := notify.NewGatewayEmailSender(c.configs.EmailGatewayURL)
	if err != nil {
		log.Fatalf("Invalid email gateway configuration: %v", err)
	}

	return commands.NewDispatchNotificationCommandHandler(
		customerrepo.NewGormCustomerDirectory(c.gormDB),
		smsSender,
		emailSender,
		notificationlog.NewGormNotificationLog(c.gormDB),
	)
}

func (c *CompositionRoot) CreateDispatchImpactActionsCommandHandler() *commands.DispatchImpactActionsCommandHandler {
	handler := commands.NewDispatchImpactActionsCommandHandler(
		c.createUoWFactory(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateDispatchNotificationCommandHandler(),
	)
	return &handler
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingQueryHandler() queries.GetTrackingQueryHandler {
	return queries.NewGetTrackingQueryHandler(c.gormDB, services.NewTrackingProgression())
}

func (c *CompositionRoot) CreateSignalSource() ports.SignalSource {
	return signals.NewSimulatedSignalSource()
}

func (c *CompositionRoot) CreateHTTPServer(signalSource ports.SignalSource) *adapterhttp.Server {
	return adapterhttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateDispatchNotificationCommandHandler(),
		c.CreateDispatchImpactActionsCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetTrackingQueryHandler(),
		signalSource,
		services.NewWeatherAnalyzer(),
		services.NewTrafficAnalyzer(),
	)
}

func (c *CompositionRoot) CreateJobManager(signalSource ports.SignalSource, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.createUoWFactory(),
		signalSource,
		c.CreateDispatchImpactActionsCommandHandler(),
		c.configs.WeatherSchedule,
		c.configs.TrafficSchedule,
		logger,
	)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
