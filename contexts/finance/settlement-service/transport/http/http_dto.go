package http

type ComputeSettlementRequest struct {
	PublisherID string `json:"publisher_id"`
	StartPeriod string `json:"start_period"`
	EndPeriod   string `json:"end_period"`
}

type SettlementDTO struct {
	ID               string `json:"id"`
	PublisherID      string `json:"publisher_id"`
	StartPeriod      string `json:"start_period"`
	EndPeriod        string `json:"end_period"`
	ImpressionsCount int    `json:"impressions_count"`
	ClicksCount      int    `json:"clicks_count"`
	RewardAmount     string `json:"reward_amount"`
	TxSignature      string `json:"tx_signature,omitempty"`
	SettledAt        string `json:"settled_at"`
}

type ListSettlementsResponse struct {
	Items []SettlementDTO `json:"items"`
}
