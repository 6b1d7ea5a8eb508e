package http

// UploadAdRequest carries the multipart form fields of a brand ad upload.
// The creative bytes arrive as the "image" file part; everything else is a
// plain form value.
type UploadAdRequest struct {
	Wallet      string
	BrandName   string
	FileName    string
	ContentType string
	Data        []byte
	TargetURL   string
	Tags        []string
	AspectRatio string
	StartTime   string
	EndTime     string
}

type AdDTO struct {
	ID               string   `json:"id"`
	BrandID          string   `json:"brand_id"`
	ImageURL         string   `json:"image_url"`
	TargetURL        string   `json:"target_url"`
	Tags             []string `json:"tags"`
	AspectRatio      string   `json:"aspect_ratio"`
	CreditBalance    int      `json:"credit_balance"`
	StartTime        *string  `json:"start_time"`
	EndTime          *string  `json:"end_time"`
	ModerationStatus string   `json:"moderation_status"`
	CreatedAt        string   `json:"created_at"`
}

type CreditAdRequest struct {
	Wallet string `json:"wallet"`
	AdID   string `json:"ad_id"`
	Amount int    `json:"amount"`
}

type CreditAdResponse struct {
	AdID       string `json:"ad_id"`
	NewBalance int    `json:"new_balance"`
}

type ListAdsResponse struct {
	Items []AdDTO `json:"items"`
}
