package movies

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildVisibilityFilterWithoutSearch(t *testing.T) {
	filter := buildVisibilityFilter("u1", "sys", "")
	require.Equal(t, bson.M{"ownerId": bson.M{"$in": []string{"u1", "sys"}}}, filter)
}

func TestBuildVisibilityFilterNoSystemUser(t *testing.T) {
	filter := buildVisibilityFilter("u1", "", "")
	require.Equal(t, bson.M{"ownerId": bson.M{"$in": []string{"u1"}}}, filter)
}

func TestBuildVisibilityFilterCallerIsSystem(t *testing.T) {
	// The system user browsing its own catalog should not be listed twice
	filter := buildVisibilityFilter("sys", "sys", "")
	require.Equal(t, bson.M{"ownerId": bson.M{"$in": []string{"sys"}}}, filter)
}

func TestBuildVisibilityFilterWithSearch(t *testing.T) {
	filter := buildVisibilityFilter("u1", "sys", "dark")

	and, ok := filter["$and"].([]bson.M)
	require.True(t, ok)
	require.Len(t, and, 2)
	require.Equal(t, bson.M{"ownerId": bson.M{"$in": []string{"u1", "sys"}}}, and[0])

	or, ok := and[1]["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 2)

	titlePattern, ok := or[0]["title"].(primitive.Regex)
	require.True(t, ok)
	require.Equal(t, "dark", titlePattern.Pattern)
	require.Equal(t, "i", titlePattern.Options)

	directorPattern, ok := or[1]["director"].(primitive.Regex)
	require.True(t, ok)
	require.Equal(t, "dark", directorPattern.Pattern)
}

func TestBuildVisibilityFilterEscapesRegex(t *testing.T) {
	filter := buildVisibilityFilter("u1", "", ".*")

	and := filter["$and"].([]bson.M)
	or := and[1]["$or"].([]bson.M)
	titlePattern := or[0]["title"].(primitive.Regex)
	require.Equal(t, `\.\*`, titlePattern.Pattern)
}
