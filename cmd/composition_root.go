package cmd

import (
	"gooddelivery/internal/adapters/out/postgres"
	"gooddelivery/internal/adapters/out/receipt"
	"gooddelivery/internal/core/application/usecases/commands"
	"gooddelivery/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	signer     *receipt.JWTSigner
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	signer, err := receipt.NewJWTSigner([]byte(config.ReceiptSigningKey))
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		signer:     signer,
	}, nil
}

func (c *CompositionRoot) CreateCreateCampaignCommandHandler() commands.CreateCampaignCommandHandler {
	var f commands.CampaignUoWFactory = FuncCampaignUoWFactory(func() commands.CampaignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCampaignCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireCampaignsCommandHandler() commands.ExpireCampaignsCommandHandler {
	var f commands.CampaignUoWFactory = FuncCampaignUoWFactory(func() commands.CampaignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireCampaignsCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryPointCommandHandler() commands.CreateDeliveryPointCommandHandler {
	var f commands.PointUoWFactory = FuncPointUoWFactory(func() commands.PointUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryPointCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignOperatorCommandHandler() commands.AssignOperatorCommandHandler {
	return commands.NewAssignOperatorCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateAssignUserCommandHandler() commands.AssignUserCommandHandler {
	return commands.NewAssignUserCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateCreateAgreementCommandHandler() commands.CreateAgreementCommandHandler {
	var f commands.AgreementUoWFactory = FuncAgreementUoWFactory(func() commands.AgreementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAgreementCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCategoryCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateGoodCommandHandler() commands.CreateGoodCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateGoodCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateStockCommandHandler() commands.CreateStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStockCommandHandler(f)
}

func (c *CompositionRoot) CreateAddStockIdentifierCommandHandler() commands.AddStockIdentifierCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddStockIdentifierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	return commands.NewUpdateDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateReturnDeliveryCommandHandler() commands.ReturnDeliveryCommandHandler {
	return commands.NewReturnDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateDisableDeliveryCommandHandler() commands.DisableDeliveryCommandHandler {
	return commands.NewDisableDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDeliveryCommandHandler() commands.DeleteDeliveryCommandHandler {
	return commands.NewDeleteDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateGetUserDeliveriesQueryHandler() queries.GetUserDeliveriesQueryHandler {
	return queries.NewGetUserDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPointStockBalanceQueryHandler() queries.GetPointStockBalanceQueryHandler {
	return queries.NewGetPointStockBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryReceiptQueryHandler() queries.GetDeliveryReceiptQueryHandler {
	return queries.NewGetDeliveryReceiptQueryHandler(c.gormDB, c.signer)
}

func (c *CompositionRoot) assignmentUoWFactory() commands.AssignmentUoWFactory {
	return FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

type FuncCampaignUoWFactory func() commands.CampaignUoW

func (f FuncCampaignUoWFactory) Create() commands.CampaignUoW {
	return f()
}

type FuncPointUoWFactory func() commands.PointUoW

func (f FuncPointUoWFactory) Create() commands.PointUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncAgreementUoWFactory func() commands.AgreementUoW

func (f FuncAgreementUoWFactory) Create() commands.AgreementUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
