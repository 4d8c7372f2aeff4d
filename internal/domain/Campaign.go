package domain

// CampaignRecord representa uma campanha extraída do arquivo de estrutura de conta.
// A chave natural dentro de uma importação é o nome da campanha: a primeira
// ocorrência no arquivo define os atributos e nunca é sobrescrita.
type CampaignRecord struct {
	ImportID        string   `json:"import_id"`
	AccountID       string   `json:"account_id"`
	CampaignName    string   `json:"campaign_name"`
	Labels          []string `json:"labels"`
	CampaignType    string   `json:"campaign_type"`
	Networks        *string  `json:"networks,omitempty"`
	Budget          *float64 `json:"budget,omitempty"`
	BudgetType      *string  `json:"budget_type,omitempty"`
	BidStrategyType *string  `json:"bid_strategy_type,omitempty"`
	BidStrategyName *string  `json:"bid_strategy_name,omitempty"`
	TargetCPA       *float64 `json:"target_cpa,omitempty"`
	TargetROAS      *float64 `json:"target_roas,omitempty"`
	MaxCPCBidLimit  *float64 `json:"max_cpc_bid_limit,omitempty"`
	StartDate       *string  `json:"start_date,omitempty"`
	EndDate         *string  `json:"end_date,omitempty"`
	AdSchedule      *string  `json:"ad_schedule,omitempty"`
	Status          string   `json:"status"`
}
