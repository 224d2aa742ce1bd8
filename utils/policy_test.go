package utils_test

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/meinhoongagan/philosophy-hub/models"
	"github.com/meinhoongagan/philosophy-hub/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Tag{}, &models.Doubt{}, &models.Response{}))
	return gdb
}

func seedDoubt(t *testing.T, gdb *gorm.DB) (*models.Doubt, *models.User) {
	t.Helper()
	user := &models.User{Name: "Liker", Email: "liker@example.com"}
	require.NoError(t, gdb.Create(user).Error)
	doubt := &models.Doubt{UserID: user.ID, Question: "What is truth?", IsActive: true}
	require.NoError(t, gdb.Create(doubt).Error)
	return doubt, user
}

func TestToggleLikeRoundTrip(t *testing.T) {
	gdb := openDB(t)
	doubt, user := seedDoubt(t, gdb)

	liked, count, err := utils.ToggleLike(gdb, doubt, user.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.EqualValues(t, 1, count)

	liked, count, err = utils.ToggleLike(gdb, doubt, user.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.EqualValues(t, 0, count)
}

func TestAddLikeIsIdempotent(t *testing.T) {
	gdb := openDB(t)
	doubt, user := seedDoubt(t, gdb)

	count, err := utils.AddLike(gdb, doubt, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	count, err = utils.AddLike(gdb, doubt, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestRemoveLikeIsIdempotent(t *testing.T) {
	gdb := openDB(t)
	doubt, user := seedDoubt(t, gdb)

	_, err := utils.AddLike(gdb, doubt, user.ID)
	require.NoError(t, err)

	count, err := utils.RemoveLike(gdb, doubt, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	count, err = utils.RemoveLike(gdb, doubt, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestLikesAreCountedPerUser(t *testing.T) {
	gdb := openDB(t)
	doubt, first := seedDoubt(t, gdb)
	second := &models.User{Name: "Second", Email: "second@example.com"}
	require.NoError(t, gdb.Create(second).Error)

	_, err := utils.AddLike(gdb, doubt, first.ID)
	require.NoError(t, err)
	count, err := utils.AddLike(gdb, doubt, second.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	// One user withdrawing leaves the other's like intact.
	count, err = utils.RemoveLike(gdb, doubt, first.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestIsOwner(t *testing.T) {
	assert.True(t, utils.IsOwner(3, 3))
	assert.False(t, utils.IsOwner(3, 4))
	assert.Equal(t, "You can only modify your own doubt", utils.OwnershipMessage("doubt"))
}
