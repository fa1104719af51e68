package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel handles the surrogate UUID key and standard audit trails.
// Records are never hard-deleted; lifecycle is tracked via status fields
// on the owning entity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Audit user tracking (business employee_id of the actor)
	CreatedBy string `gorm:"type:varchar(50)" json:"created_by"`
	UpdatedBy string `gorm:"type:varchar(50)" json:"updated_by,omitempty"`
}

// Hook before create to generate the UUID automatically
func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return
}
