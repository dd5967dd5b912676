package db

import (
	"context"                         // Request scoped cancellation
	"freelance_board/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Store is the persistence access layer. Every method opens its own
// request-scoped session, which holds a pooled connection only while it runs.
type Store struct {
	DB *gorm.DB
}

// NewStore wraps an open GORM handle
func NewStore(gdb *gorm.DB) *Store {
	return &Store{DB: gdb}
}

// session returns a unit-of-work bound to ctx
func (s *Store) session(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx)
}

// CreateUser inserts one user. The generated ID is written back into u.
func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	return classify(s.session(ctx).Omit("FreelancerJobs", "EmployerJobs").Create(u).Error)
}

// CreateFreelancerJob inserts one freelancer job. The owner's user type is not checked.
func (s *Store) CreateFreelancerJob(ctx context.Context, j *domain.FreelancerJob) error {
	return classify(s.session(ctx).Create(j).Error)
}

// CreateEmployerJob inserts one employer job. The owner's user type is not checked.
func (s *Store) CreateEmployerJob(ctx context.Context, j *domain.EmployerJob) error {
	return classify(s.session(ctx).Create(j).Error)
}

// ListUsers returns every user in insertion order
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	if err := s.session(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, classify(err)
	}
	return users, nil
}

// GetUserByWallet looks a user up by wallet address
func (s *Store) GetUserByWallet(ctx context.Context, wallet string) (*domain.User, error) {
	var user domain.User
	if err := s.session(ctx).Where("wallet_address = ?", wallet).First(&user).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// ListFreelancerJobs returns every freelancer job in insertion order
func (s *Store) ListFreelancerJobs(ctx context.Context) ([]domain.FreelancerJob, error) {
	jobs := []domain.FreelancerJob{}
	if err := s.session(ctx).Order("id").Find(&jobs).Error; err != nil {
		return nil, classify(err)
	}
	return jobs, nil
}

// ListEmployerJobs returns every employer job in insertion order
func (s *Store) ListEmployerJobs(ctx context.Context) ([]domain.EmployerJob, error) {
	jobs := []domain.EmployerJob{}
	if err := s.session(ctx).Order("id").Find(&jobs).Error; err != nil {
		return nil, classify(err)
	}
	return jobs, nil
}

// Ping checks that the database answers
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return classify(err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return wrap(ErrStorageUnavailable, err)
	}
	return nil
}
