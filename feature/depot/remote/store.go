package remote

import (
	"context"
	"fmt"

	"depot-planner/core/database"
	"depot-planner/feature/depot"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements depot.Remote on a SQL table.
type GormStore struct {
	db    *gorm.DB
	table string
}

// NewGormStore returns a remote store on table, "depot" when empty.
func NewGormStore(db *gorm.DB, table string) *GormStore {
	if table == "" {
		table = "depot"
	}
	return &GormStore{db: db, table: table}
}

// Migrate creates or updates the depot table.
func (s *GormStore) Migrate() error {
	return s.db.Table(s.table).AutoMigrate(&Row{})
}

// Verify checks the depot table has every required column.
func (s *GormStore) Verify() error {
	missing, err := database.MissingColumns(s.db, s.table, RequiredColumns...)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns %v", s.table, missing)
	}
	return nil
}

// Select returns every row of a user.
func (s *GormStore) Select(ctx context.Context, userID string) ([]depot.Record, error) {
	var rows []Row
	err := s.db.WithContext(ctx).Table(s.table).
		Where("user_id = ?", userID).
		Order("material_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]depot.Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, depot.Record{MaterialID: r.MaterialID, Stock: r.Stock})
	}
	return out, nil
}

// Upsert writes records for a user, updating the stock of existing rows.
func (s *GormStore) Upsert(ctx context.Context, userID string, records []depot.Record) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, Row{UserID: userID, MaterialID: r.MaterialID, Stock: r.Stock})
	}

	return s.db.WithContext(ctx).Table(s.table).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "material_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"stock"}),
		}).
		CreateInBatches(rows, 200).Error
}

// Delete removes rows of a user by material id.
func (s *GormStore) Delete(ctx context.Context, userID string, materialIDs []string) error {
	if len(materialIDs) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Table(s.table).
		Where("user_id = ? AND material_id IN ?", userID, materialIDs).
		Delete(&Row{}).Error
}

// Users lists the distinct owners of depot rows.
func (s *GormStore) Users(ctx context.Context) ([]string, error) {
	var users []string
	err := s.db.WithContext(ctx).Table(s.table).
		Distinct("user_id").
		Order("user_id").
		Pluck("user_id", &users).Error
	return users, err
}
