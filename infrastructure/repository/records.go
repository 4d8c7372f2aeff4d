package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-import-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-import-api/internal/domain"
)

const (
	campaignsTable = "import_campaigns"
	adGroupsTable  = "import_ad_groups"
	keywordsTable  = "import_keywords"
	adsTable       = "import_ads"
)

// RecordRepository é o contrato de inserção em lote dos registros extraídos.
// Melhor esforço: o pipeline aguarda cada chamada antes de voltar a acumular
// linhas daquele tipo, e os registros nunca são alterados após a inserção.
type RecordRepository interface {
	BatchInsertCampaigns(records []*domain.CampaignRecord) error
	BatchInsertAdGroups(records []*domain.AdGroupRecord) error
	BatchInsertKeywords(records []*domain.KeywordRecord) error
	BatchInsertAds(records []*domain.AdRecord) error
	DeleteByImportID(importID string) error
}

type recordRepository struct {
	conn *postgres.Connection
}

func NewRecordRepository(conn *postgres.Connection) RecordRepository {
	return &recordRepository{
		conn: conn,
	}
}

func (r *recordRepository) BatchInsertCampaigns(records []*domain.CampaignRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(campaignsTable).
		Columns(
			"import_id", "account_id", "campaign_name", "labels", "campaign_type", "networks",
			"budget", "budget_type", "bid_strategy_type", "bid_strategy_name",
			"target_cpa", "target_roas", "max_cpc_bid_limit",
			"start_date", "end_date", "ad_schedule", "status",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		query = query.Values(
			record.ImportID,
			record.AccountID,
			record.CampaignName,
			pq.Array(record.Labels),
			record.CampaignType,
			record.Networks,
			record.Budget,
			record.BudgetType,
			record.BidStrategyType,
			record.BidStrategyName,
			record.TargetCPA,
			record.TargetROAS,
			record.MaxCPCBidLimit,
			record.StartDate,
			record.EndDate,
			record.AdSchedule,
			record.Status,
		)
	}

	return r.exec(query)
}

func (r *recordRepository) BatchInsertAdGroups(records []*domain.AdGroupRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(adGroupsTable).
		Columns(
			"import_id", "account_id", "campaign_name", "ad_group_name", "ad_group_type",
			"max_cpc", "max_cpm", "target_cpc", "target_roas",
			"desktop_bid_modifier", "mobile_bid_modifier", "tablet_bid_modifier",
			"optimized_targeting", "status",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		bids := record.Bids
		if bids == nil {
			bids = &domain.AdGroupBids{}
		}

		modifiers := record.DeviceBidModifiers
		if modifiers == nil {
			modifiers = &domain.DeviceBidModifiers{}
		}

		query = query.Values(
			record.ImportID,
			record.AccountID,
			record.CampaignName,
			record.AdGroupName,
			record.AdGroupType,
			bids.MaxCPC,
			bids.MaxCPM,
			bids.TargetCPC,
			bids.TargetROAS,
			modifiers.Desktop,
			modifiers.Mobile,
			modifiers.Tablet,
			record.OptimizedTargeting,
			record.Status,
		)
	}

	return r.exec(query)
}

func (r *recordRepository) BatchInsertKeywords(records []*domain.KeywordRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(keywordsTable).
		Columns(
			"import_id", "account_id", "campaign_name", "ad_group_name", "keyword", "match_type",
			"first_page_bid", "top_of_page_bid", "first_position_bid",
			"quality_score", "landing_page_experience", "expected_ctr", "ad_relevance",
			"status",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		bids := record.Bids
		if bids == nil {
			bids = &domain.KeywordBids{}
		}

		quality := record.Quality
		if quality == nil {
			quality = &domain.KeywordQuality{}
		}

		query = query.Values(
			record.ImportID,
			record.AccountID,
			record.CampaignName,
			record.AdGroupName,
			record.Keyword,
			record.MatchType,
			bids.FirstPageBid,
			bids.TopOfPageBid,
			bids.FirstPositionBid,
			quality.QualityScore,
			quality.LandingPageExperience,
			quality.ExpectedCTR,
			quality.AdRelevance,
			record.Status,
		)
	}

	return r.exec(query)
}

func (r *recordRepository) BatchInsertAds(records []*domain.AdRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(adsTable).
		Columns(
			"import_id", "account_id", "campaign_name", "ad_group_name", "ad_type",
			"final_url", "headlines", "descriptions", "path1", "path2",
			"status", "approval_status", "ad_strength",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		query = query.Values(
			record.ImportID,
			record.AccountID,
			record.CampaignName,
			record.AdGroupName,
			record.AdType,
			record.FinalURL,
			pq.Array(record.Headlines),
			pq.Array(record.Descriptions),
			record.Path1,
			record.Path2,
			record.Status,
			record.ApprovalStatus,
			record.AdStrength,
		)
	}

	return r.exec(query)
}

// DeleteByImportID remove todos os registros de entidades de uma importação
// dentro de uma única transação: a exclusão de uma entrada do ledger nunca
// deixa tabelas de entidades parcialmente limpas
func (r *recordRepository) DeleteByImportID(importID string) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, table := range []string{campaignsTable, adGroupsTable, keywordsTable, adsTable} {
			if err := deleteRecords(tx, table, importID); err != nil {
				return err
			}
		}

		return nil
	})
}

func deleteRecords(q postgres.Queryer, table, importID string) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(table).
		Where(squirrel.Eq{"import_id": importID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := q.Exec(deleteSQL, deleteArgs...); err != nil {
		return fmt.Errorf("falha ao remover registros de %s: %w", table, err)
	}

	return nil
}

func (r *recordRepository) exec(query squirrel.InsertBuilder) error {
	insertSQL, insertArgs, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(insertSQL, insertArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
