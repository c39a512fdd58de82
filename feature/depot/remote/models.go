package remote

// Row is one depot row of the remote table.
type Row struct {
	UserID     string `gorm:"column:user_id;primaryKey;size:64"`
	MaterialID string `gorm:"column:material_id;primaryKey;size:64"`
	Stock      int64  `gorm:"column:stock;not null"`
}

// RequiredColumns lists the columns the depot table must expose.
var RequiredColumns = []string{"user_id", "material_id", "stock"}
