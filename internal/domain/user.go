package domain

// UserType is the side of the marketplace a user is registered on
type UserType string

const (
	UserTypeFreelancer UserType = "freelancer" // Offers services
	UserTypeEmployer   UserType = "employer"   // Posts work
)

// Valid reports whether t is one of the known user types
func (t UserType) Valid() bool {
	return t == UserTypeFreelancer || t == UserTypeEmployer
}

// User Model
type User struct {
	ID            uint     `gorm:"primaryKey"`                    // Primary key
	FullName      string   `gorm:"size:150;not null"`             // Display name
	WalletAddress string   `gorm:"size:255;not null;uniqueIndex"` // Unique wallet address
	Email         *string  `gorm:"size:150;uniqueIndex"`          // Optional, unique when present
	UserType      UserType `gorm:"size:20;not null;check:chk_users_user_type,user_type IN ('freelancer','employer')"`

	FreelancerJobs []FreelancerJob `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"` // One-to-many with FreelancerJob
	EmployerJobs   []EmployerJob   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"` // One-to-many with EmployerJob
}
