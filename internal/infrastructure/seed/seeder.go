// Package seed loads deterministic sample data for development and tests.
// Fixtures are embedded so the binary can seed any environment it can reach.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tracklite/tracklite/internal/infrastructure/persistence/models"
	"github.com/tracklite/tracklite/internal/shared/biztime"
	"github.com/tracklite/tracklite/internal/shared/logger"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type fixtureUser struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type fixtureLabel struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type fixtureComment struct {
	Author  string `yaml:"author"`
	Content string `yaml:"content"`
}

type fixtureTicket struct {
	Title       string           `yaml:"title"`
	Description string           `yaml:"description"`
	Status      string           `yaml:"status"`
	Priority    string           `yaml:"priority"`
	Assignee    string           `yaml:"assignee"`
	DueDate     string           `yaml:"due_date"`
	Labels      []string         `yaml:"labels"`
	Comments    []fixtureComment `yaml:"comments"`
}

type fixtures struct {
	Users   []fixtureUser   `yaml:"users"`
	Labels  []fixtureLabel  `yaml:"labels"`
	Tickets []fixtureTicket `yaml:"tickets"`
}

type Seeder struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger.NewLogger().With("component", "seed"),
	}
}

// Run wipes all application tables and inserts the embedded fixtures. With
// baseOnly set, only users and labels are inserted; tests build their own
// tickets.
func (s *Seeder) Run(baseOnly bool) error {
	var f fixtures
	if err := yaml.Unmarshal(fixturesYAML, &f); err != nil {
		return fmt.Errorf("failed to parse seed fixtures: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := wipe(tx); err != nil {
			return err
		}

		usersByEmail, err := s.insertUsers(tx, f.Users)
		if err != nil {
			return err
		}

		labelsByName, err := s.insertLabels(tx, f.Labels)
		if err != nil {
			return err
		}

		if baseOnly {
			s.logger.Infow("seeded base data only",
				"users", len(f.Users),
				"labels", len(f.Labels))
			return nil
		}

		if err := s.insertTickets(tx, f.Tickets, usersByEmail, labelsByName); err != nil {
			return err
		}

		s.logger.Infow("database seeded",
			"users", len(f.Users),
			"labels", len(f.Labels),
			"tickets", len(f.Tickets))
		return nil
	})
}

func wipe(tx *gorm.DB) error {
	for _, model := range []interface{}{
		&models.TicketLabelModel{},
		&models.CommentModel{},
		&models.TicketModel{},
		&models.LabelModel{},
		&models.UserModel{},
	} {
		if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("failed to wipe table: %w", err)
		}
	}
	return nil
}

func (s *Seeder) insertUsers(tx *gorm.DB, users []fixtureUser) (map[string]uint, error) {
	now := biztime.NowUTC().UnixMilli()
	byEmail := make(map[string]uint, len(users))

	for _, u := range users {
		model := &models.UserModel{
			Name:      u.Name,
			Email:     u.Email,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.Create(model).Error; err != nil {
			return nil, fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
		byEmail[u.Email] = model.ID
	}
	return byEmail, nil
}

func (s *Seeder) insertLabels(tx *gorm.DB, labels []fixtureLabel) (map[string]uint, error) {
	now := biztime.NowUTC().UnixMilli()
	byName := make(map[string]uint, len(labels))

	for _, l := range labels {
		model := &models.LabelModel{
			Name:      l.Name,
			Color:     l.Color,
			CreatedAt: now,
		}
		if err := tx.Create(model).Error; err != nil {
			return nil, fmt.Errorf("failed to seed label %s: %w", l.Name, err)
		}
		byName[l.Name] = model.ID
	}
	return byName, nil
}

func (s *Seeder) insertTickets(
	tx *gorm.DB,
	tickets []fixtureTicket,
	usersByEmail map[string]uint,
	labelsByName map[string]uint,
) error {
	now := biztime.NowUTC().UnixMilli()

	for _, t := range tickets {
		model := &models.TicketModel{
			Title:       t.Title,
			Description: t.Description,
			Status:      t.Status,
			Priority:    t.Priority,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if t.Assignee != "" {
			assigneeID, ok := usersByEmail[t.Assignee]
			if !ok {
				return fmt.Errorf("seed ticket %q references unknown user %s", t.Title, t.Assignee)
			}
			model.AssigneeID = &assigneeID
		}

		if t.DueDate != "" {
			due, err := biztime.ParseDate(t.DueDate)
			if err != nil {
				return fmt.Errorf("seed ticket %q has invalid due date: %w", t.Title, err)
			}
			d := datatypes.Date(due)
			model.DueDate = &d
		}

		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to seed ticket %q: %w", t.Title, err)
		}

		for _, labelName := range t.Labels {
			labelID, ok := labelsByName[labelName]
			if !ok {
				return fmt.Errorf("seed ticket %q references unknown label %s", t.Title, labelName)
			}
			row := models.TicketLabelModel{TicketID: model.ID, LabelID: labelID}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to seed ticket labels: %w", err)
			}
		}

		for i, c := range t.Comments {
			authorID, ok := usersByEmail[c.Author]
			if !ok {
				return fmt.Errorf("seed ticket %q references unknown comment author %s", t.Title, c.Author)
			}
			comment := &models.CommentModel{
				TicketID:  model.ID,
				AuthorID:  authorID,
				Content:   c.Content,
				CreatedAt: now + int64(i)*int64(time.Minute/time.Millisecond),
				UpdatedAt: now + int64(i)*int64(time.Minute/time.Millisecond),
			}
			if err := tx.Create(comment).Error; err != nil {
				return fmt.Errorf("failed to seed comment: %w", err)
			}
		}
	}
	return nil
}
