package models

type LabelModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:50;uniqueIndex;not null"`
	Color     string `gorm:"size:20;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (LabelModel) TableName() string {
	return "labels"
}
