package domain

// AdGroupBids agrupa os lances configurados no nível do grupo de anúncios
type AdGroupBids struct {
	MaxCPC     *float64 `json:"max_cpc,omitempty"`
	MaxCPM     *float64 `json:"max_cpm,omitempty"`
	TargetCPC  *float64 `json:"target_cpc,omitempty"`
	TargetROAS *float64 `json:"target_roas,omitempty"`
}

// DeviceBidModifiers agrupa os ajustes de lance por dispositivo
type DeviceBidModifiers struct {
	Desktop *float64 `json:"desktop,omitempty"`
	Mobile  *float64 `json:"mobile,omitempty"`
	Tablet  *float64 `json:"tablet,omitempty"`
}

// AdGroupRecord representa um grupo de anúncios extraído do arquivo.
// A chave natural dentro de uma importação é o par campanha + grupo.
type AdGroupRecord struct {
	ImportID           string              `json:"import_id"`
	AccountID          string              `json:"account_id"`
	CampaignName       string              `json:"campaign_name"`
	AdGroupName        string              `json:"ad_group_name"`
	AdGroupType        *string             `json:"ad_group_type,omitempty"`
	Bids               *AdGroupBids        `json:"bids,omitempty"`
	DeviceBidModifiers *DeviceBidModifiers `json:"device_bid_modifiers,omitempty"`
	OptimizedTargeting *string             `json:"optimized_targeting,omitempty"`
	Status             string              `json:"status"`
}
