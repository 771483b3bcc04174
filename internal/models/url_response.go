package models

// EncodeResponse represents the response after shortening a URL
type EncodeResponse struct {
	ShortURL string `json:"shortUrl"` // Full short URL (base URL + counter)
}

// DecodeResponse represents the response after resolving a short URL
type DecodeResponse struct {
	URL string `json:"url"` // Original long-form URL
}
