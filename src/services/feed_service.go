package services

import (
	"errors"

	"github.com/nursetov/pixnest/src/lib"
	"github.com/nursetov/pixnest/src/models"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	recentComments  = 3
)

// GetProfile returns the profile view of a user: live follower/following
// counts and whether the viewer follows them. viewerID 0 means anonymous.
func GetProfile(username string, viewerID uint) (*models.ProfileDto, error) {
	var user models.User
	err := lib.DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var followers, following int64
	lib.DB.Model(&models.Follow{}).Where("followee_id = ?", user.ID).Count(&followers)
	lib.DB.Model(&models.Follow{}).Where("follower_id = ?", user.ID).Count(&following)

	return &models.ProfileDto{
		ID:             user.ID,
		Name:           user.Name,
		Username:       user.Username,
		Avatar:         user.Avatar,
		Bio:            user.Bio,
		Website:        user.Website,
		FollowersCount: followers,
		FollowingCount: following,
		IsFollowing:    IsFollowing(viewerID, user.ID),
	}, nil
}

// GetPostView loads one post and renders it for the viewer.
func GetPostView(postID, viewerID uint) (*models.PostDto, error) {
	var post models.Post
	err := lib.DB.Preload("Author").First(&post, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	dto := BuildPostDto(&post, viewerID)
	return &dto, nil
}

// GlobalFeed returns all posts newest-first, paginated.
func GlobalFeed(viewerID uint, page, limit int) ([]models.PostDto, error) {
	query := lib.DB.Preload("Author").Order("created_at DESC, id DESC")
	return renderFeed(query, viewerID, page, limit)
}

// PersonalFeed restricts the global feed to authors the viewer follows.
// Following nobody yields an empty feed, not an error.
func PersonalFeed(viewerID uint, page, limit int) ([]models.PostDto, error) {
	followedIDs := lib.DB.Model(&models.Follow{}).
		Select("followee_id").
		Where("follower_id = ?", viewerID)

	query := lib.DB.Preload("Author").
		Where("author_id IN (?)", followedIDs).
		Order("created_at DESC, id DESC")

	return renderFeed(query, viewerID, page, limit)
}

// SearchUsers finds users whose username contains the query, as minimal
// profiles.
func SearchUsers(q string, limit int) ([]models.UserDto, error) {
	if limit <= 0 || limit > MaxPageSize {
		limit = DefaultPageSize
	}

	var users []models.User
	err := lib.DB.
		Where("username LIKE ?", "%"+q+"%").
		Order("username ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	dtos := make([]models.UserDto, 0, len(users))
	for i := range users {
		dtos = append(dtos, users[i].ToDto())
	}
	return dtos, nil
}

func renderFeed(query *gorm.DB, viewerID uint, page, limit int) ([]models.PostDto, error) {
	if limit <= 0 || limit > MaxPageSize {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	var posts []models.Post
	err := query.Limit(limit).Offset((page - 1) * limit).Find(&posts).Error
	if err != nil {
		return nil, err
	}

	dtos := make([]models.PostDto, 0, len(posts))
	for i := range posts {
		dtos = append(dtos, BuildPostDto(&posts[i], viewerID))
	}
	return dtos, nil
}

// BuildPostDto renders one post for the viewer. Counts are computed
// against the live like/comment sets at query time; there is no stored
// counter to go stale.
func BuildPostDto(post *models.Post, viewerID uint) models.PostDto {
	var likes, comments int64
	lib.DB.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&likes)
	lib.DB.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&comments)

	isLiked := false
	if viewerID != 0 {
		var liked int64
		lib.DB.Model(&models.Like{}).
			Where("post_id = ? AND user_id = ?", post.ID, viewerID).
			Count(&liked)
		isLiked = liked > 0
	}

	var recent []models.Comment
	lib.DB.Preload("User").
		Where("post_id = ?", post.ID).
		Order("created_at DESC, id DESC").
		Limit(recentComments).
		Find(&recent)

	commentDtos := make([]models.CommentDto, 0, len(recent))
	for i := range recent {
		commentDtos = append(commentDtos, models.CommentDto{
			ID:        recent[i].ID,
			User:      recent[i].User.ToDto(),
			Text:      recent[i].Text,
			CreatedAt: recent[i].CreatedAt,
		})
	}

	return models.PostDto{
		ID:             post.ID,
		Author:         post.Author.ToDto(),
		Image:          post.Image,
		Caption:        post.Caption,
		LikesCount:     likes,
		CommentsCount:  comments,
		IsLiked:        isLiked,
		RecentComments: commentDtos,
		CreatedAt:      post.CreatedAt,
		UpdatedAt:      post.UpdatedAt,
	}
}
