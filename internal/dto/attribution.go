package dto

type ClickRequestDTO struct {
	Fingerprint string `json:"fingerprint" example:"fp_a81bc3"`
	IPHash      string `json:"ip_hash"     example:"9f86d081884c7d65"`
	UserAgent   string `json:"user_agent"  example:"Mozilla/5.0"`
}

type ClickResponseDTO struct {
	Target       string `json:"target" example:"/join/7?ref=7992739875"`
	Deduplicated bool   `json:"deduplicated" example:"false"`
}
