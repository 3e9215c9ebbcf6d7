package label

import (
	"fmt"
	"strings"
	"time"

	"github.com/tracklite/tracklite/internal/shared/biztime"
)

type Label struct {
	id        uint
	name      string
	color     string
	createdAt time.Time
}

func NewLabel(name, color string) (*Label, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(color) == "" {
		return nil, fmt.Errorf("color is required")
	}

	return &Label{
		name:      name,
		color:     color,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructLabel(id uint, name, color string, createdAt time.Time) (*Label, error) {
	if id == 0 {
		return nil, fmt.Errorf("label ID cannot be zero")
	}
	return &Label{
		id:        id,
		name:      name,
		color:     color,
		createdAt: createdAt,
	}, nil
}

func (l *Label) ID() uint {
	return l.id
}

func (l *Label) Name() string {
	return l.name
}

func (l *Label) Color() string {
	return l.color
}

func (l *Label) CreatedAt() time.Time {
	return l.createdAt
}

func (l *Label) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("label ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("label ID cannot be zero")
	}
	l.id = id
	return nil
}
