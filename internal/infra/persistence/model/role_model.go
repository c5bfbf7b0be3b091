package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// PermissionList stores a role's permission codes as a JSONB array.
type PermissionList []string

// Value implements driver.Valuer for JSONB serialization.
func (p PermissionList) Value() (driver.Value, error) {
	if p == nil {
		p = PermissionList{}
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, "marshal permission list")
	}

	return data, nil
}

// Scan implements sql.Scanner for JSONB deserialization.
func (p *PermissionList) Scan(value any) error {
	if value == nil {
		*p = PermissionList{}

		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported permission list source type %T", value)
	}

	if err := json.Unmarshal(data, p); err != nil {
		return errors.Wrap(err, "unmarshal permission list")
	}

	return nil
}

// RoleModel mirrors the 'roles' table. Permission codes live inline on the
// role row as JSONB rather than in a separate join table.
type RoleModel struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	Code        string         `gorm:"type:varchar(64);uniqueIndex;not null"`
	Description string         `gorm:"type:varchar(255)"`
	Permissions PermissionList `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Users []UserModel `gorm:"many2many:user_role;joinForeignKey:RoleID;joinReferences:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}
