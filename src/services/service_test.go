package services

import (
	"fmt"
	"testing"

	"github.com/nursetov/pixnest/src/lib"
	"github.com/nursetov/pixnest/src/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points the global lib.DB at a fresh in-memory SQLite
// database. cache=shared keeps the database alive across the pooled
// connections; the test name keeps databases isolated between tests.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
		&models.Notification{},
	))

	lib.DB = db
}

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()

	user := models.User{
		Name:     "Test " + username,
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
		Avatar:   "/uploads/" + username + ".jpg",
	}
	require.NoError(t, lib.DB.Create(&user).Error)
	return &user
}

func createTestPost(t *testing.T, author *models.User, caption string) *models.Post {
	t.Helper()

	post := models.Post{
		AuthorID: author.ID,
		Image:    "/uploads/post.jpg",
		Caption:  caption,
	}
	require.NoError(t, lib.DB.Create(&post).Error)
	return &post
}

func countNotifications(t *testing.T, receiverID uint, typ models.NotificationType) int64 {
	t.Helper()

	var count int64
	require.NoError(t, lib.DB.Model(&models.Notification{}).
		Where("receiver_id = ? AND type = ?", receiverID, typ).
		Count(&count).Error)
	return count
}
