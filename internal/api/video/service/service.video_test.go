package videosvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	basesvc "movu_api/internal/api/base/service"
	videodto "movu_api/internal/api/video/dto"
	models "movu_api/internal/api/video/models"
	"movu_api/internal/common"
)

func newTestVideoService() *VideoService {
	store := basesvc.NewBaseServiceMemory[models.Video]()
	return NewVideoServiceWithBase(store, "http://localhost:8080")
}

func TestCreateDerivesSubtitleURLs(t *testing.T) {
	svc := newTestVideoService()

	video, err := svc.Create(context.Background(), &videodto.VideoCreateInput{
		PexelsID: "857195",
		Title:    "Ocean waves",
		VideoURL: "https://videos.pexels.com/857195.mp4",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/subtitles/857195_es.vtt", video.SubtitleEsURL)
	assert.Equal(t, "http://localhost:8080/subtitles/857195_en.vtt", video.SubtitleEnURL)
	assert.NotZero(t, video.CreatedAt)
}

func TestCreateDuplicatePexelsID(t *testing.T) {
	svc := newTestVideoService()
	input := &videodto.VideoCreateInput{
		PexelsID: "857195",
		Title:    "Ocean waves",
		VideoURL: "https://videos.pexels.com/857195.mp4",
	}

	_, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), input)
	require.Error(t, err)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.StatusConflict, customErr.StatusCode)
}

func TestFindByPexelsID(t *testing.T) {
	svc := newTestVideoService()

	created, err := svc.Create(context.Background(), &videodto.VideoCreateInput{
		PexelsID: "42",
		Title:    "Forest",
		VideoURL: "https://videos.pexels.com/42.mp4",
	})
	require.NoError(t, err)

	found, err := svc.FindByPexelsID(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.FindByPexelsID(context.Background(), "999")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
