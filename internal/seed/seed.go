// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"talkora/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var tagPool = []string{
	"golang", "javascript", "react", "mongodb", "postgres", "docker",
	"kubernetes", "linux", "security", "career", "webdev", "ai",
	"databases", "testing", "devops", "frontend", "backend",
}

// Run populates the database with fake users, posts, tags, votes, comments
// and announcements. Counters on posts are written to match the generated
// voter registry rows so the seeded data satisfies the same conservation
// rule the reconciler maintains.
func Run(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 20
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 50
	}

	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return fmt.Errorf("cleaning failed: %w", err)
		}
	}

	users, err := seedUsers(db, opts.NumUsers)
	if err != nil {
		return err
	}
	if err := seedTags(db); err != nil {
		return err
	}
	posts, err := seedPosts(db, users, opts.NumPosts)
	if err != nil {
		return err
	}
	if err := seedVotes(db, users, posts); err != nil {
		return err
	}
	if err := seedComments(db, users, posts); err != nil {
		return err
	}
	if err := seedAnnouncements(db); err != nil {
		return err
	}
	if err := seedSearches(db); err != nil {
		return err
	}

	log.Printf("Seeded %d users and %d posts", len(users), len(posts))
	return nil
}

func clean(db *gorm.DB) error {
	// Children before parents.
	for _, model := range []any{
		&models.Vote{}, &models.Comment{}, &models.PostTag{}, &models.Post{},
		&models.Tag{}, &models.Search{}, &models.Announcement{},
		&models.Payment{}, &models.User{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(db *gorm.DB, n int) ([]*models.User, error) {
	// One shared hash; hashing per-user makes large seeds crawl.
	hashed, err := bcrypt.GenerateFromPassword([]byte("Seed!Passw0rd123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n+1)

	admin := &models.User{
		Name:        "Site Admin",
		Email:       "admin@talkora.dev",
		Password:    string(hashed),
		Image:       gofakeit.ImageURL(200, 200),
		Role:        models.RoleAdmin,
		Badge:       models.BadgeGold,
		IsMember:    true,
		LastLoginAt: time.Now(),
	}
	if err := db.Create(admin).Error; err != nil {
		return nil, err
	}
	users = append(users, admin)

	for i := 0; i < n; i++ {
		badge := models.BadgeBronze
		isMember := false
		if rand.Intn(5) == 0 {
			badge = models.BadgeGold
			isMember = true
		}
		user := &models.User{
			Name:        gofakeit.Name(),
			Email:       strings.ToLower(fmt.Sprintf("user%d.%s", i, gofakeit.Email())),
			Password:    string(hashed),
			Image:       gofakeit.ImageURL(200, 200),
			Role:        models.RoleUser,
			Badge:       badge,
			IsMember:    isMember,
			LastLoginAt: gofakeit.DateRange(time.Now().AddDate(0, -3, 0), time.Now()),
		}
		if err := db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func seedTags(db *gorm.DB) error {
	for _, name := range tagPool {
		tag := &models.Tag{Name: name}
		if err := db.Create(tag).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedPosts(db *gorm.DB, users []*models.User, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[rand.Intn(len(users))]

		numTags := 1 + rand.Intn(3)
		tags := make([]models.PostTag, 0, numTags)
		for j := 0; j < numTags; j++ {
			tags = append(tags, models.PostTag{
				Position: j,
				Name:     tagPool[rand.Intn(len(tagPool))],
			})
		}

		post := &models.Post{
			Title:       gofakeit.Sentence(6),
			Description: gofakeit.Paragraph(2, 4, 12, " "),
			AuthorEmail: author.Email,
			Visible:     true,
			Tags:        tags,
			CreatedAt:   gofakeit.DateRange(time.Now().AddDate(0, -6, 0), time.Now()),
		}
		if err := db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func seedVotes(db *gorm.DB, users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		ups, downs := 0, 0
		for _, user := range users {
			switch rand.Intn(4) {
			case 0:
				if err := db.Create(&models.Vote{
					PostID: post.ID, VoterEmail: user.Email, Direction: models.VoteUp,
				}).Error; err != nil {
					return err
				}
				ups++
			case 1:
				if err := db.Create(&models.Vote{
					PostID: post.ID, VoterEmail: user.Email, Direction: models.VoteDown,
				}).Error; err != nil {
					return err
				}
				downs++
			}
		}
		if err := db.Model(&models.Post{}).Where("id = ?", post.ID).
			Updates(map[string]interface{}{"upvotes": ups, "downvotes": downs}).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedComments(db *gorm.DB, users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		for i := 0; i < rand.Intn(6); i++ {
			commenter := users[rand.Intn(len(users))]
			comment := &models.Comment{
				PostID:    post.ID,
				Text:      gofakeit.Sentence(12),
				UserEmail: commenter.Email,
				Reported:  rand.Intn(20) == 0,
			}
			if comment.Reported {
				comment.Feedback = "Seeded report for moderation testing"
			}
			if err := db.Create(comment).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func seedAnnouncements(db *gorm.DB) error {
	for i := 0; i < 3; i++ {
		a := &models.Announcement{
			Title:       gofakeit.Sentence(4),
			Description: gofakeit.Paragraph(1, 3, 10, " "),
			AuthorName:  "Site Admin",
			AuthorImage: gofakeit.ImageURL(100, 100),
		}
		if err := db.Create(a).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedSearches(db *gorm.DB) error {
	for _, text := range []string{"golang", "react hooks", "docker compose", "career advice"} {
		s := &models.Search{
			Text:  text,
			Votes: 1 + rand.Intn(30),
		}
		if err := db.Create(s).Error; err != nil {
			return err
		}
	}
	return nil
}
