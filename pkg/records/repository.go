package records

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/swasthya-saarthi/companion/pkg/common/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type recordModel struct {
	ID        uuid.UUID      `gorm:"primaryKey;column:id"`
	Date      time.Time      `gorm:"column:date;index"`
	Symptoms  datatypes.JSON `gorm:"column:symptoms"`
	Diagnosis string         `gorm:"column:diagnosis"`
	Notes     string         `gorm:"column:notes"`
	FollowUp  *time.Time     `gorm:"column:follow_up"`
	CreatedAt time.Time      `gorm:"column:created_at"`
}

func (recordModel) TableName() string { return "health_records" }

func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&recordModel{})
}

func (r *Repository) Create(ctx context.Context, record models.HealthRecord) error {
	symptoms, err := json.Marshal(record.Symptoms)
	if err != nil {
		return err
	}

	row := recordModel{
		ID:        record.ID,
		Date:      record.Date,
		Symptoms:  datatypes.JSON(symptoms),
		Diagnosis: record.Diagnosis,
		Notes:     record.Notes,
		FollowUp:  record.FollowUp,
		CreatedAt: record.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

// List returns records newest first.
func (r *Repository) List(ctx context.Context, limit int) ([]models.HealthRecord, error) {
	var rows []recordModel
	query := r.db.WithContext(ctx).Order("date DESC, created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]models.HealthRecord, 0, len(rows))
	for _, row := range rows {
		record, err := toRecord(row)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (models.HealthRecord, error) {
	var row recordModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return models.HealthRecord{}, err
	}
	return toRecord(row)
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&recordModel{}, "id = ?", id).Error
}

func toRecord(row recordModel) (models.HealthRecord, error) {
	var symptoms []string
	if len(row.Symptoms) > 0 {
		if err := json.Unmarshal(row.Symptoms, &symptoms); err != nil {
			return models.HealthRecord{}, err
		}
	}
	return models.HealthRecord{
		ID:        row.ID,
		Date:      row.Date,
		Symptoms:  symptoms,
		Diagnosis: row.Diagnosis,
		Notes:     row.Notes,
		FollowUp:  row.FollowUp,
		CreatedAt: row.CreatedAt,
	}, nil
}
