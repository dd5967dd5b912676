package db_test

import (
	"context"
	"testing"

	"freelance_board/internal/db"
	"freelance_board/internal/db/dbtest"
	"freelance_board/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) (*db.Store, *gorm.DB) {
	gdb := dbtest.New(t)
	return db.NewStore(gdb), gdb
}

func strPtr(s string) *string { return &s }

func countRows(t *testing.T, gdb *gorm.DB, model any) int64 {
	var n int64
	require.NoError(t, gdb.Model(model).Count(&n).Error)
	return n
}

func TestCreateUser_AssignsIDAndLists(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	ada := domain.User{FullName: "Ada", WalletAddress: "0xABC", UserType: domain.UserTypeFreelancer}
	require.NoError(t, store.CreateUser(ctx, &ada))
	assert.NotZero(t, ada.ID)

	bob := domain.User{FullName: "Bob", WalletAddress: "0xDEF", Email: strPtr("bob@example.com"), UserType: domain.UserTypeEmployer}
	require.NoError(t, store.CreateUser(ctx, &bob))
	assert.Greater(t, bob.ID, ada.ID)

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ada", users[0].FullName)
	assert.Nil(t, users[0].Email)
	assert.Equal(t, "bob@example.com", *users[1].Email)
	assert.Equal(t, domain.UserTypeEmployer, users[1].UserType)
}

func TestCreateUser_DuplicateWallet(t *testing.T) {
	store, gdb := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, &domain.User{FullName: "Ada", WalletAddress: "0xABC", UserType: domain.UserTypeFreelancer}))

	err := store.CreateUser(ctx, &domain.User{FullName: "Eve", WalletAddress: "0xABC", UserType: domain.UserTypeEmployer})
	assert.ErrorIs(t, err, db.ErrUniqueViolation)
	assert.Equal(t, int64(1), countRows(t, gdb, &domain.User{}))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	store, gdb := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, &domain.User{FullName: "Ada", WalletAddress: "0x1", Email: strPtr("a@example.com"), UserType: domain.UserTypeFreelancer}))

	err := store.CreateUser(ctx, &domain.User{FullName: "Eve", WalletAddress: "0x2", Email: strPtr("a@example.com"), UserType: domain.UserTypeFreelancer})
	assert.ErrorIs(t, err, db.ErrUniqueViolation)
	assert.Equal(t, int64(1), countRows(t, gdb, &domain.User{}))
}

func TestCreateUser_NullEmailsDoNotCollide(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, &domain.User{FullName: "Ada", WalletAddress: "0x1", UserType: domain.UserTypeFreelancer}))
	require.NoError(t, store.CreateUser(ctx, &domain.User{FullName: "Bob", WalletAddress: "0x2", UserType: domain.UserTypeEmployer}))
}

func TestCreateUser_RejectsUnknownUserType(t *testing.T) {
	store, gdb := setupStore(t)

	err := store.CreateUser(context.Background(), &domain.User{FullName: "Ada", WalletAddress: "0x1", UserType: "admin"})
	assert.Error(t, err)
	assert.Equal(t, int64(0), countRows(t, gdb, &domain.User{}))
}

func TestCreateFreelancerJob_RoundTrip(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	owner := domain.User{FullName: "Ada", WalletAddress: "0xABC", UserType: domain.UserTypeFreelancer}
	require.NoError(t, store.CreateUser(ctx, &owner))

	job := domain.FreelancerJob{
		UserID:      owner.ID,
		Title:       "Build site",
		Description: "Landing page",
		Budget:      decimal.NewNullDecimal(decimal.RequireFromString("500.25")),
	}
	require.NoError(t, store.CreateFreelancerJob(ctx, &job))
	assert.NotZero(t, job.ID)

	jobs, err := store.ListFreelancerJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, job.ID, jobs[0].ID)
	assert.Equal(t, "Build site", jobs[0].Title)
	assert.True(t, jobs[0].Budget.Valid)
	assert.True(t, decimal.RequireFromString("500.25").Equal(jobs[0].Budget.Decimal))
}

func TestCreateFreelancerJob_UnknownUser(t *testing.T) {
	store, gdb := setupStore(t)

	err := store.CreateFreelancerJob(context.Background(), &domain.FreelancerJob{UserID: 42, Title: "x", Description: "y"})
	assert.ErrorIs(t, err, db.ErrForeignKeyViolation)
	assert.Equal(t, int64(0), countRows(t, gdb, &domain.FreelancerJob{}))
}

func TestCreateEmployerJob_UnknownUser(t *testing.T) {
	store, gdb := setupStore(t)

	err := store.CreateEmployerJob(context.Background(), &domain.EmployerJob{UserID: 42, Title: "x", Description: "y"})
	assert.ErrorIs(t, err, db.ErrForeignKeyViolation)
	assert.Equal(t, int64(0), countRows(t, gdb, &domain.EmployerJob{}))
}

func TestCreateEmployerJob_OwnerTypeNotChecked(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	freelancer := domain.User{FullName: "Ada", WalletAddress: "0xABC", UserType: domain.UserTypeFreelancer}
	require.NoError(t, store.CreateUser(ctx, &freelancer))

	job := domain.EmployerJob{UserID: freelancer.ID, Title: "Hire", Description: "Need help"}
	require.NoError(t, store.CreateEmployerJob(ctx, &job))

	jobs, err := store.ListEmployerJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.False(t, jobs[0].Salary.Valid)
}

func TestListUsers_Idempotent(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, &domain.User{FullName: "Ada", WalletAddress: "0x1", UserType: domain.UserTypeFreelancer}))

	first, err := store.ListUsers(ctx)
	require.NoError(t, err)
	second, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestListUsers_EmptyIsNotNil(t *testing.T) {
	store, _ := setupStore(t)

	users, err := store.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestGetUserByWallet(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, &domain.User{FullName: "Ada", WalletAddress: "0xABC", UserType: domain.UserTypeFreelancer}))

	user, err := store.GetUserByWallet(ctx, "0xABC")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.FullName)

	_, err = store.GetUserByWallet(ctx, "0xNOPE")
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestPing(t *testing.T) {
	store, gdb := setupStore(t)

	require.NoError(t, store.Ping(context.Background()))

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	assert.ErrorIs(t, store.Ping(context.Background()), db.ErrStorageUnavailable)
}

func TestMigrate_Idempotent(t *testing.T) {
	_, gdb := setupStore(t)

	require.NoError(t, db.Migrate(gdb))
	for _, m := range domain.Models() {
		assert.True(t, gdb.Migrator().HasTable(m))
	}
}
