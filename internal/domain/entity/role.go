package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin    = 1
	RoleIDDonor    = 2
	RoleIDHospital = 3
	RoleIDNGO      = 4
)

// Role name constants
const (
	RoleAdmin    = "admin"
	RoleDonor    = "donor"
	RoleHospital = "hospital"
	RoleNGO      = "ngo"
)

// RoleIDByName resolves a role name to its fixed ID. Unknown names return 0.
func RoleIDByName(name string) int {
	switch name {
	case RoleAdmin:
		return RoleIDAdmin
	case RoleDonor:
		return RoleIDDonor
	case RoleHospital:
		return RoleIDHospital
	case RoleNGO:
		return RoleIDNGO
	}
	return 0
}

// RoleNameByID resolves a role ID back to its name. Unknown IDs return "".
func RoleNameByID(id int) string {
	switch id {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDDonor:
		return RoleDonor
	case RoleIDHospital:
		return RoleHospital
	case RoleIDNGO:
		return RoleNGO
	}
	return ""
}
