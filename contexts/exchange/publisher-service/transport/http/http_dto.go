package http

type AdDTO struct {
	ID          string `json:"id"`
	ImageURL    string `json:"image_url"`
	TargetURL   string `json:"target_url"`
	AspectRatio string `json:"aspect_ratio,omitempty"`
	BrandID     string `json:"brand_id,omitempty"`
}

type GetAdResponse struct {
	Ad *AdDTO `json:"ad"`
}

type TrackImpressionRequest struct {
	AdID              string `json:"ad_id"`
	SlotID            string `json:"slot_id"`
	Wallet            string `json:"wallet"`
	ViewerFingerprint string `json:"viewer_fingerprint,omitempty"`
	ViewerIP          string `json:"viewer_ip,omitempty"`
}

type TrackImpressionResponse struct {
	ImpressionID string `json:"impression_id"`
}

type TrackClickRequest struct {
	ImpressionID string `json:"impression_id"`
}

type TrackClickResponse struct {
	ClickID string `json:"click_id"`
}

type CreatePublisherRequest struct {
	WalletAddress string   `json:"wallet_address"`
	Domain        string   `json:"domain"`
	Tags          []string `json:"tags,omitempty"`
}

type PublisherDTO struct {
	ID            string   `json:"id"`
	WalletAddress string   `json:"wallet_address"`
	Domain        string   `json:"domain"`
	IsVerified    bool     `json:"is_verified"`
	TrafficScore  int      `json:"traffic_score"`
	Tags          []string `json:"tags,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

type CreateAdSlotRequest struct {
	Wallet       string   `json:"wallet"`
	SlotID       string   `json:"slot_id"`
	Tags         []string `json:"tags,omitempty"`
	AspectRatios []string `json:"aspect_ratios,omitempty"`
}

type AdSlotDTO struct {
	ID           string   `json:"id"`
	PublisherID  string   `json:"publisher_id"`
	SlotID       string   `json:"slot_id"`
	Tags         []string `json:"tags,omitempty"`
	AspectRatios []string `json:"aspect_ratios,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

type ListAdSlotsResponse struct {
	Items []AdSlotDTO `json:"items"`
}
