package postgres

import (
	"fmt"

	"gooddelivery/internal/adapters/out/postgres/auditrepo"
	"gooddelivery/internal/adapters/out/postgres/campaignrepo"
	"gooddelivery/internal/adapters/out/postgres/deliveryrepo"
	"gooddelivery/internal/adapters/out/postgres/goodrepo"
	"gooddelivery/internal/adapters/out/postgres/stockrepo"

	"gorm.io/gorm"
)

// foreignKey describes one referential-integrity rule between two tables.
type foreignKey struct {
	table      string
	name       string
	column     string
	references string
	onDelete   string
}

// foreignKeys is the referential-integrity matrix of the schema. Removing a
// campaign takes its points with it, removing a category takes its goods,
// removing a point takes its stock and removing a stock takes its serialized
// units. Everything a delivery record points at, and both sides of a
// campaign-agreement link, is delete-protected instead.
var foreignKeys = []foreignKey{
	{"delivery_points", "fk_delivery_points_campaign", "campaign_id", "campaigns", "CASCADE"},
	{"goods", "fk_goods_category", "category_id", "categories", "CASCADE"},
	{"stocks", "fk_stocks_delivery_point", "delivery_point_id", "delivery_points", "CASCADE"},
	{"stocks", "fk_stocks_good", "good_id", "goods", "CASCADE"},
	{"stock_identifiers", "fk_stock_identifiers_stock", "stock_id", "stocks", "CASCADE"},
	{"deliveries", "fk_deliveries_campaign", "campaign_id", "campaigns", "CASCADE"},
	{"deliveries", "fk_deliveries_good", "good_id", "goods", "CASCADE"},
	{"deliveries", "fk_deliveries_stock_identifier", "stock_identifier_id", "stock_identifiers", "CASCADE"},
	{"deliveries", "fk_deliveries_chosen_point", "chosen_point_id", "delivery_points", "RESTRICT"},
	{"deliveries", "fk_deliveries_delivery_point", "delivery_point_id", "delivery_points", "RESTRICT"},
	{"deliveries", "fk_deliveries_disabled_point", "disabled_point_id", "delivery_points", "RESTRICT"},
	{"deliveries", "fk_deliveries_returned_point", "returned_point_id", "delivery_points", "RESTRICT"},
	{"campaign_agreements", "fk_campaign_agreements_campaign", "campaign_id", "campaigns", "RESTRICT"},
	{"campaign_agreements", "fk_campaign_agreements_agreement", "agreement_id", "agreements", "RESTRICT"},
	{"operator_assignments", "fk_operator_assignments_point", "delivery_point_id", "delivery_points", "RESTRICT"},
	{"user_assignments", "fk_user_assignments_point", "delivery_point_id", "delivery_points", "RESTRICT"},
}

// Migrate creates or updates the full schema: every table via gorm's
// AutoMigrate, then the foreign-key matrix. Re-running it is safe.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&campaignrepo.CampaignDTO{},
		&campaignrepo.DeliveryPointDTO{},
		&campaignrepo.AgreementDTO{},
		&campaignrepo.CampaignAgreementDTO{},
		&campaignrepo.OperatorAssignmentDTO{},
		&campaignrepo.UserAssignmentDTO{},
		&goodrepo.CategoryDTO{},
		&goodrepo.GoodDTO{},
		&stockrepo.StockDTO{},
		&stockrepo.StockIdentifierDTO{},
		&deliveryrepo.DeliveryDTO{},
		&auditrepo.AuditEntryDTO{},
	)
	if err != nil {
		return err
	}

	for _, fk := range foreignKeys {
		drop := fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT IF EXISTS %s", fk.table, fk.name)
		if err := db.Exec(drop).Error; err != nil {
			return err
		}

		add := fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (id) ON DELETE %s",
			fk.table, fk.name, fk.column, fk.references, fk.onDelete)
		if err := db.Exec(add).Error; err != nil {
			return err
		}
	}

	return nil
}
