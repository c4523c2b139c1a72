package cmd

import (
	"log/slog"
	"strconv"
	"time"

	"foodtruck/internal/adapters/out/postgres"
	"foodtruck/internal/adapters/out/postgres/catalogrepo"
	"foodtruck/internal/adapters/out/reporting"
	"foodtruck/internal/core/application/usecases/commands"
	"foodtruck/internal/core/application/usecases/queries"
	"foodtruck/internal/core/domain/services"
	"foodtruck/internal/core/ports"
	"foodtruck/internal/jobs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	defaultTaxRate         = "0.0875"
	defaultPrepSeconds     = 180
	defaultBusyCalmMax     = 3
	defaultBusyModerateMax = 7
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    ports.MenuCatalog
	reporter   ports.Reporter
	estimator  services.WaitEstimator
	taxRate    decimal.Decimal
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	taxRate, err := decimal.NewFromString(stringOrDefault(configs.TaxRate, defaultTaxRate))
	if err != nil {
		return CompositionRoot{}, err
	}

	estimator, err := services.NewWaitEstimator(
		time.Duration(intOrDefault(configs.DefaultPrepSeconds, defaultPrepSeconds))*time.Second,
		intOrDefault(configs.BusyCalmMax, defaultBusyCalmMax),
		intOrDefault(configs.BusyModerateMax, defaultBusyModerateMax),
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalogrepo.NewGormMenuCatalog(gormDB),
		reporter:   reporting.NewSlogReporter(logger),
		estimator:  estimator,
		taxRate:    taxRate,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.catalog, c.taxRate)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateBumpOrderCommandHandler() commands.BumpOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBumpOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateStartShiftCommandHandler() commands.StartShiftCommandHandler {
	var f commands.ShiftUoWFactory = FuncShiftUoWFactory(func() commands.ShiftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartShiftCommandHandler(f)
}

func (c *CompositionRoot) CreateCloseShiftCommandHandler() commands.CloseShiftCommandHandler {
	var f commands.ShiftUoWFactory = FuncShiftUoWFactory(func() commands.ShiftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseShiftCommandHandler(f, c.reporter)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetKitchenOrdersQueryHandler() queries.GetKitchenOrdersQueryHandler {
	return queries.NewGetKitchenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetQueueQueryHandler() queries.GetQueueQueryHandler {
	return queries.NewGetQueueQueryHandler(c.gormDB, c.estimator)
}

func (c *CompositionRoot) CreateGetWaitEstimateQueryHandler() queries.GetWaitEstimateQueryHandler {
	return queries.NewGetWaitEstimateQueryHandler(c.gormDB, c.estimator)
}

func (c *CompositionRoot) CreateGetActiveShiftQueryHandler() queries.GetActiveShiftQueryHandler {
	return queries.NewGetActiveShiftQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShiftsQueryHandler() queries.GetShiftsQueryHandler {
	return queries.NewGetShiftsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDailySummaryQueryHandler() queries.GetDailySummaryQueryHandler {
	return queries.NewGetDailySummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetDailySummaryQueryHandler(), c.reporter, logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncShiftUoWFactory func() commands.ShiftUoW

func (f FuncShiftUoWFactory) Create() commands.ShiftUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

func stringOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func intOrDefault(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
