package basesvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"movu_api/internal/common"
)

type memoryTestItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID   primitive.ObjectID `bson:"ownerId,omitempty" index:"compound:owner_slug_unique"`
	Slug      string             `bson:"slug,omitempty" index:"compound:owner_slug_unique"`
	Email     string             `bson:"email,omitempty" index:"unique,sparse"`
	Score     int                `bson:"score,omitempty"`
	CreatedAt int64              `bson:"createdAt,omitempty"`
	UpdatedAt int64              `bson:"updatedAt,omitempty"`
}

func TestMemoryInsertAndFindOne(t *testing.T) {
	svc := NewBaseServiceMemory[memoryTestItem]()
	ctx := context.Background()

	created, err := svc.InsertOne(ctx, memoryTestItem{Email: "a@movu.app", Slug: "first", OwnerID: primitive.NewObjectID()})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.NotZero(t, created.CreatedAt)

	found, err := svc.FindOne(ctx, bson.M{"email": "a@movu.app"}, nil)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.FindOne(ctx, bson.M{"email": "missing@movu.app"}, nil)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryUniqueSingleField(t *testing.T) {
	svc := NewBaseServiceMemory[memoryTestItem]()
	ctx := context.Background()

	_, err := svc.InsertOne(ctx, memoryTestItem{Email: "dup@movu.app"})
	require.NoError(t, err)

	_, err = svc.InsertOne(ctx, memoryTestItem{Email: "dup@movu.app"})
	assert.ErrorIs(t, err, common.ErrMongoDuplicate)

	// Sparse: document không có email không đụng ràng buộc
	_, err = svc.InsertOne(ctx, memoryTestItem{Slug: "no-email-1"})
	require.NoError(t, err)
	_, err = svc.InsertOne(ctx, memoryTestItem{Slug: "no-email-2"})
	require.NoError(t, err)
}

func TestMemoryUniqueCompound(t *testing.T) {
	svc := NewBaseServiceMemory[memoryTestItem]()
	ctx := context.Background()
	owner := primitive.NewObjectID()

	_, err := svc.InsertOne(ctx, memoryTestItem{OwnerID: owner, Slug: "video-1"})
	require.NoError(t, err)

	_, err = svc.InsertOne(ctx, memoryTestItem{OwnerID: owner, Slug: "video-1"})
	assert.ErrorIs(t, err, common.ErrMongoDuplicate)

	// Cùng slug nhưng owner khác thì vẫn hợp lệ
	_, err = svc.InsertOne(ctx, memoryTestItem{OwnerID: primitive.NewObjectID(), Slug: "video-1"})
	require.NoError(t, err)
}

func TestMemoryUpsert(t *testing.T) {
	svc := NewBaseServiceMemory[memoryTestItem]()
	ctx := context.Background()
	owner := primitive.NewObjectID()

	first, err := svc.Upsert(ctx, bson.M{"ownerId": owner, "slug": "rate-me"}, bson.M{"score": 3})
	require.NoError(t, err)
	assert.Equal(t, 3, first.Score)
	assert.NotZero(t, first.CreatedAt)

	second, err := svc.Upsert(ctx, bson.M{"ownerId": owner, "slug": "rate-me"}, bson.M{"score": 5})
	require.NoError(t, err)
	assert.Equal(t, 5, second.Score)
	assert.Equal(t, first.ID, second.ID)

	count, err := svc.CountDocuments(ctx, bson.M{"ownerId": owner})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryOperators(t *testing.T) {
	svc := NewBaseServiceMemory[memoryTestItem]()
	ctx := context.Background()

	for i, slug := range []string{"a", "b", "c"} {
		_, err := svc.InsertOne(ctx, memoryTestItem{Slug: slug, Score: (i + 1) * 10, OwnerID: primitive.NewObjectID()})
		require.NoError(t, err)
	}

	above, err := svc.Find(ctx, bson.M{"score": bson.M{"$gt": 10}}, nil)
	require.NoError(t, err)
	assert.Len(t, above, 2)

	in, err := svc.Find(ctx, bson.M{"slug": bson.M{"$in": []string{"a", "c"}}}, nil)
	require.NoError(t, err)
	assert.Len(t, in, 2)

	exists, err := svc.Find(ctx, bson.M{"email": bson.M{"$exists": false}}, nil)
	require.NoError(t, err)
	assert.Len(t, exists, 3)
}

func TestMemoryDeleteByIdReturnsRemoved(t *testing.T) {
	svc := NewBaseServiceMemory[memoryTestItem]()
	ctx := context.Background()

	created, err := svc.InsertOne(ctx, memoryTestItem{Slug: "to-remove", OwnerID: primitive.NewObjectID()})
	require.NoError(t, err)

	removed, err := svc.DeleteById(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "to-remove", removed.Slug)

	_, err = svc.DeleteById(ctx, created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryAverageOfField(t *testing.T) {
	svc := NewBaseServiceMemory[memoryTestItem]()
	ctx := context.Background()
	owner := primitive.NewObjectID()

	avg, err := svc.AverageOfField(ctx, "score", bson.M{"ownerId": owner})
	require.NoError(t, err)
	assert.Equal(t, float64(0), avg)

	for i, score := range []int{2, 4} {
		_, err := svc.InsertOne(ctx, memoryTestItem{OwnerID: owner, Slug: string(rune('a' + i)), Score: score})
		require.NoError(t, err)
	}

	avg, err = svc.AverageOfField(ctx, "score", bson.M{"ownerId": owner})
	require.NoError(t, err)
	assert.Equal(t, float64(3), avg)
}

func TestMemoryPagination(t *testing.T) {
	svc := NewBaseServiceMemory[memoryTestItem]()
	ctx := context.Background()
	owner := primitive.NewObjectID()

	for i := 0; i < 5; i++ {
		_, err := svc.InsertOne(ctx, memoryTestItem{OwnerID: owner, Slug: string(rune('a' + i)), Score: i})
		require.NoError(t, err)
	}

	page, err := svc.FindWithPagination(ctx, bson.M{"ownerId": owner}, 2, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, int64(3), page.TotalPage)
	assert.Equal(t, int64(2), page.ItemCount)
	assert.Len(t, page.Items, 2)
}
