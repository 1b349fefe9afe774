package ratingdto

// RatingCreateInput đầu vào đánh giá một video.
type RatingCreateInput struct {
	UserID  string `json:"userId" validate:"required,exists=users" transform:"str_objectid,map=UserID"`
	VideoID string `json:"videoId" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
}

// RatingUpdateInput đầu vào cập nhật điểm đánh giá.
type RatingUpdateInput struct {
	Rating int `json:"rating" validate:"omitempty,gte=1,lte=5"`
}
