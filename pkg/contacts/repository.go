package contacts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/swasthya-saarthi/companion/pkg/common/models"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type contactModel struct {
	ID        uuid.UUID `gorm:"primaryKey;column:id"`
	Name      string    `gorm:"column:name"`
	Relation  string    `gorm:"column:relation"`
	Phone     string    `gorm:"column:phone"`
	Address   string    `gorm:"column:address"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (contactModel) TableName() string { return "emergency_contacts" }

func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&contactModel{})
}

func (r *Repository) Create(ctx context.Context, contact models.EmergencyContact) error {
	row := contactModel{
		ID:        contact.ID,
		Name:      contact.Name,
		Relation:  contact.Relation,
		Phone:     contact.Phone,
		Address:   contact.Address,
		CreatedAt: contact.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) List(ctx context.Context) ([]models.EmergencyContact, error) {
	var rows []contactModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]models.EmergencyContact, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.EmergencyContact{
			ID:        row.ID,
			Name:      row.Name,
			Relation:  row.Relation,
			Phone:     row.Phone,
			Address:   row.Address,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&contactModel{}, "id = ?", id).Error
}
