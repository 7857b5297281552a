package models

// User is a registered identity. Credentials are written only by seeding
// and login verification; everything else treats users as read-only.
type User struct {
	ID              uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email           string `gorm:"not null"                 json:"email"`
	NormalizedEmail string `gorm:"uniqueIndex;not null"     json:"-"`
	PasswordHash    string `gorm:"not null"                 json:"-"`
	EmailConfirmed  bool   `gorm:"default:false"            json:"email_confirmed"`
}

type Role struct {
	ID             string `gorm:"primaryKey;size:36"   json:"id"`
	Name           string `gorm:"not null"             json:"name"`
	NormalizedName string `gorm:"uniqueIndex;not null" json:"-"`
}

// UserRole binds one user to one role. The composite unique index is the
// backstop for the duplicate-grant race.
type UserRole struct {
	ID     uint   `gorm:"primaryKey;autoIncrement"                   json:"id"`
	UserID uint   `gorm:"uniqueIndex:idx_user_role;not null"         json:"user_id"`
	RoleID string `gorm:"uniqueIndex:idx_user_role;not null;size:36" json:"role_id"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string  `gorm:"not null"                 json:"description"`
	Price       float64 `gorm:"not null"                 json:"price"`
}

// ProductImage holds the raw upload. At most one row per product, enforced
// by the repository (delete-then-insert in one transaction), not the schema.
type ProductImage struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   *uint  `gorm:"index"                    json:"product_id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	ImageData   []byte `json:"-"`
}
