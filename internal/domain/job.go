package domain

import "github.com/shopspring/decimal" // Fixed-point money

// FreelancerJob Model
type FreelancerJob struct {
	ID          uint                `gorm:"primaryKey"`                              // Primary key
	UserID      uint                `gorm:"not null;index"`                          // Foreign key to User
	Title       string              `gorm:"size:200;not null"`                       // Job title
	Description string              `gorm:"type:text;not null"`                      // Free-form description
	Budget      decimal.NullDecimal `gorm:"type:decimal(15,2);precision:15;scale:2"` // Optional budget
}

// EmployerJob Model
type EmployerJob struct {
	ID          uint                `gorm:"primaryKey"`                              // Primary key
	UserID      uint                `gorm:"not null;index"`                          // Foreign key to User
	Title       string              `gorm:"size:200;not null"`                       // Job title
	Description string              `gorm:"type:text;not null"`                      // Free-form description
	Salary      decimal.NullDecimal `gorm:"type:decimal(15,2);precision:15;scale:2"` // Optional salary
}

// Models lists every table owned by the service, parents first
func Models() []any {
	return []any{&User{}, &FreelancerJob{}, &EmployerJob{}}
}
