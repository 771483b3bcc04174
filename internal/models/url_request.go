package models

// EncodeRequest represents the request body for shortening a URL
type EncodeRequest struct {
	URL string `json:"url" binding:"required,url"` // Gin validation: required and must be valid URL
}

// DecodeRequest represents the request body for resolving a short URL
type DecodeRequest struct {
	URL string `json:"url" binding:"required"`
}
