package cmd

import (
	"shiporders/internal/adapters/out/postgres"
	"shiporders/internal/core/application/usecases/commands"
	"shiporders/internal/core/application/usecases/queries"
	"shiporders/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB            *gorm.DB
	uowFactory        postgres.GormUnitOfWorkFactory
	defaultProviderID kernel.UUID
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	defaultProviderID, err := kernel.UUIDFromString(config.DefaultShippingProviderID)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:            gormDB,
		uowFactory:        *postgres.NewGormUnitOfWorkFactory(gormDB),
		defaultProviderID: defaultProviderID,
	}, nil
}

func (c *CompositionRoot) CreateImportOrdersCommandHandler() commands.ImportOrdersCommandHandler {
	var f commands.ImportUoWFactory = FuncImportUoWFactory(func() commands.ImportUoW {
		return c.uowFactory.Create()
	})
	return commands.NewImportOrdersCommandHandler(f, c.defaultProviderID)
}

func (c *CompositionRoot) CreateGetJobCostQueryHandler() queries.GetJobCostQueryHandler {
	return queries.NewGetJobCostQueryHandler(c.gormDB)
}

type FuncImportUoWFactory func() commands.ImportUoW

func (f FuncImportUoWFactory) Create() commands.ImportUoW {
	return f()
}
