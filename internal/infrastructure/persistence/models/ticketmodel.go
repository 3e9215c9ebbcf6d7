package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID          uint            `gorm:"primaryKey"`
	Title       string          `gorm:"size:200;not null"`
	Description string          `gorm:"type:text;not null"`
	Status      string          `gorm:"size:20;not null;index"`
	Priority    string          `gorm:"size:20;not null;index"`
	AssigneeID  *uint           `gorm:"index"`
	DueDate     *datatypes.Date `gorm:"index"`
	CreatedAt   int64           `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64           `gorm:"autoUpdateTime:milli;not null;index"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketLabelModel struct {
	TicketID uint `gorm:"primaryKey;autoIncrement:false"`
	LabelID  uint `gorm:"primaryKey;autoIncrement:false"`
}

func (TicketLabelModel) TableName() string {
	return "ticket_labels"
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	AuthorID  uint   `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CommentModel) TableName() string {
	return "comments"
}
