package favoritedto

// FavoriteCreateInput đầu vào đánh dấu một video là yêu thích.
type FavoriteCreateInput struct {
	UserID    string                 `json:"userId" validate:"required,exists=users"`
	VideoID   string                 `json:"videoId" validate:"required"`
	VideoData map[string]interface{} `json:"videoData"`
}

// FavoriteRemoveInput đầu vào bỏ đánh dấu yêu thích.
type FavoriteRemoveInput struct {
	UserID  string `json:"userId" validate:"required"`
	VideoID string `json:"videoId" validate:"required"`
}

// FavoriteUpdateInput đầu vào cập nhật snapshot video (CRUD).
type FavoriteUpdateInput struct {
	VideoData map[string]interface{} `json:"videoData"`
}
