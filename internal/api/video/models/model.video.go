// Package models - model video trong catalog nội bộ.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video định nghĩa một video đã được lưu vào catalog nội bộ.
// SubtitleEsURL/SubtitleEnURL được derive từ PexelsID tại thời điểm tạo.
type Video struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PexelsID      string             `json:"pexelsId" bson:"pexelsId,omitempty" index:"unique"`
	Title         string             `json:"title" bson:"title"`
	VideoURL      string             `json:"videoUrl" bson:"videoUrl"`
	SubtitleEsURL string             `json:"subtitleEsUrl" bson:"subtitleEsUrl"`
	SubtitleEnURL string             `json:"subtitleEnUrl" bson:"subtitleEnUrl"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}
