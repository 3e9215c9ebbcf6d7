package migration

import (
	"github.com/tracklite/tracklite/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.LabelModel{},
		&models.TicketModel{},
		&models.TicketLabelModel{},
		&models.CommentModel{},
	}
}
