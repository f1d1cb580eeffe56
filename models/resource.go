package models

import "time"

// Resource types
const (
	ResourceVideo   = "video"
	ResourcePDF     = "pdf"
	ResourceAudio   = "audio"
	ResourceArticle = "article"
)

// ResourceCategory holds the structure for the resource_categories collection
type ResourceCategory struct {
	ID           string `json:"id" bson:"_id"`
	Name         string `json:"name" bson:"name"`
	Description  string `json:"description" bson:"description"`
	Icon         string `json:"icon" bson:"icon"`
	DisplayOrder int    `json:"display_order" bson:"displayOrder"`
}

// Resource holds the structure for the resources collection
type Resource struct {
	ID              string    `json:"id" bson:"_id"`
	CategoryID      string    `json:"category_id" bson:"categoryId"`
	CategoryName    string    `json:"category_name,omitempty" bson:"categoryName,omitempty"`
	Title           string    `json:"title" bson:"title"`
	Description     string    `json:"description" bson:"description"`
	ResourceType    string    `json:"resource_type" bson:"resourceType"`
	FileURL         string    `json:"file_url" bson:"fileUrl"`
	ThumbnailURL    string    `json:"thumbnail_url" bson:"thumbnailUrl"`
	DurationSeconds int       `json:"duration_seconds" bson:"durationSeconds"`
	Language        string    `json:"language" bson:"language"`
	Tags            []string  `json:"tags" bson:"tags"`
	ViewCount       int64     `json:"view_count" bson:"viewCount"`
	DownloadCount   int64     `json:"download_count" bson:"downloadCount"`
	IsFeatured      bool      `json:"is_featured" bson:"isFeatured"`
	IsActive        bool      `json:"is_active" bson:"isActive"`
	CreatedAt       time.Time `json:"created_at" bson:"createdAt"`
}

// ResourceFilter narrows a resource listing
type ResourceFilter struct {
	CategoryID   string
	ResourceType string
	Language     string
	FeaturedOnly bool
	Page         int64
	Limit        int64
}
