package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type sampleDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Score int64              `bson:"score"`
	Note  string             `bson:"note,omitempty"`
}

func TestToMap(t *testing.T) {
	doc := sampleDoc{
		ID:    primitive.NewObjectID(),
		Name:  "banh mi",
		Score: 5,
	}

	m, err := ToMap(doc)
	assert.NoError(t, err)
	assert.Equal(t, "banh mi", m["name"])
	assert.EqualValues(t, 5, m["score"])
	assert.Equal(t, doc.ID, m["_id"])

	// Trường omitempty rỗng không xuất hiện trong map
	_, hasNote := m["note"]
	assert.False(t, hasNote)
}

func TestToModel(t *testing.T) {
	id := primitive.NewObjectID()
	m := map[string]interface{}{
		"_id":   id,
		"name":  "pho bo",
		"score": int64(3),
	}

	doc, err := ToModel[sampleDoc](m)
	assert.NoError(t, err)
	assert.Equal(t, id, doc.ID)
	assert.Equal(t, "pho bo", doc.Name)
	assert.EqualValues(t, 3, doc.Score)
}

func TestToMapToModelRoundTrip(t *testing.T) {
	doc := sampleDoc{ID: primitive.NewObjectID(), Name: "com tam", Score: 4, Note: "ngon"}

	m, err := ToMap(doc)
	assert.NoError(t, err)

	back, err := ToModel[sampleDoc](m)
	assert.NoError(t, err)
	assert.Equal(t, doc, back)
}
