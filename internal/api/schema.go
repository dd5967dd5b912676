package api

import (
	"freelance_board/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Fixed-point money
)

// CreateUserRequest is the body of POST /users
type CreateUserRequest struct {
	FullName      string  `json:"full_name" binding:"required,max=150"`
	WalletAddress string  `json:"wallet_address" binding:"required,max=255"`
	Email         *string `json:"email" binding:"omitempty,max=150"`
	UserType      string  `json:"user_type" binding:"required,user_type"`
}

// UserResponse is the projection of a stored user
type UserResponse struct {
	ID            uint    `json:"id"`
	FullName      string  `json:"full_name"`
	WalletAddress string  `json:"wallet_address"`
	Email         *string `json:"email"` // null when absent
	UserType      string  `json:"user_type"`
}

// CreateFreelancerJobRequest is the body of POST /freelancer/jobs
type CreateFreelancerJobRequest struct {
	UserID      *uint    `json:"user_id" binding:"required"` // Pointer so 0 reaches the FK check
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required"`
	Budget      *float64 `json:"budget" binding:"required"` // Pointer so 0 is accepted
}

// FreelancerJobResponse is the projection of a stored freelancer job
type FreelancerJobResponse struct {
	ID          uint     `json:"id"`
	UserID      uint     `json:"user_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Budget      *float64 `json:"budget"`
}

// CreateEmployerJobRequest is the body of POST /employer/jobs
type CreateEmployerJobRequest struct {
	UserID      *uint    `json:"user_id" binding:"required"`
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required"`
	Salary      *float64 `json:"salary" binding:"required"`
}

// EmployerJobResponse is the projection of a stored employer job
type EmployerJobResponse struct {
	ID          uint     `json:"id"`
	UserID      uint     `json:"user_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Salary      *float64 `json:"salary"`
}

func (r CreateUserRequest) toModel() domain.User {
	return domain.User{
		FullName:      r.FullName,
		WalletAddress: r.WalletAddress,
		Email:         r.Email,
		UserType:      domain.UserType(r.UserType),
	}
}

func (r CreateFreelancerJobRequest) toModel() domain.FreelancerJob {
	return domain.FreelancerJob{
		UserID:      *r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Budget:      toMoney(r.Budget),
	}
}

func (r CreateEmployerJobRequest) toModel() domain.EmployerJob {
	return domain.EmployerJob{
		UserID:      *r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Salary:      toMoney(r.Salary),
	}
}

func newUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		FullName:      u.FullName,
		WalletAddress: u.WalletAddress,
		Email:         u.Email,
		UserType:      string(u.UserType),
	}
}

func newFreelancerJobResponse(j domain.FreelancerJob) FreelancerJobResponse {
	return FreelancerJobResponse{
		ID:          j.ID,
		UserID:      j.UserID,
		Title:       j.Title,
		Description: j.Description,
		Budget:      fromMoney(j.Budget),
	}
}

func newEmployerJobResponse(j domain.EmployerJob) EmployerJobResponse {
	return EmployerJobResponse{
		ID:          j.ID,
		UserID:      j.UserID,
		Title:       j.Title,
		Description: j.Description,
		Salary:      fromMoney(j.Salary),
	}
}

// toMoney converts the wire float to the two-decimal fixed-point value the column stores
func toMoney(v *float64) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(*v).Round(2))
}

// fromMoney is lossy: JSON money stays a float on the wire
func fromMoney(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}
