package database

import (
	"fmt"
	"testing"
	"time"

	"eizer/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

func newTestStore(t *testing.T, opts Options) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	store := NewWithDialector(sqlite.Open(dsn), opts)
	require.True(t, store.Available(), "in-memory store must connect")
	return store
}

func strPtr(s string) *string { return &s }

func rolePtr(r models.UserRole) *models.UserRole { return &r }

func TestUpsertUserCreatesAndPromotesOwner(t *testing.T) {
	store := newTestStore(t, Options{OwnerOpenID: "owner-123"})

	require.NoError(t, store.UpsertUser(UserUpsert{
		OpenID: "owner-123",
		Name:   strPtr("The Owner"),
		Email:  strPtr("owner@example.com"),
	}))

	user, err := store.GetUserByOpenID("owner-123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleAdmin, user.Role, "owner open id is promoted to admin")
	assert.Equal(t, "The Owner", user.Name)
}

func TestUpsertUserExplicitRoleWins(t *testing.T) {
	store := newTestStore(t, Options{OwnerOpenID: "owner-123"})

	require.NoError(t, store.UpsertUser(UserUpsert{
		OpenID: "owner-123",
		Role:   rolePtr(models.RoleUser),
	}))

	user, err := store.GetUserByOpenID("owner-123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestUpsertUserPartialUpdateAndBump(t *testing.T) {
	store := newTestStore(t, Options{})

	require.NoError(t, store.UpsertUser(UserUpsert{
		OpenID: "ext-1",
		Name:   strPtr("First Name"),
		Email:  strPtr("ext1@example.com"),
	}))

	before, err := store.GetUserByOpenID("ext-1")
	require.NoError(t, err)
	require.NotNil(t, before)

	// update only the name; email must survive
	require.NoError(t, store.UpsertUser(UserUpsert{
		OpenID: "ext-1",
		Name:   strPtr("Second Name"),
	}))

	after, err := store.GetUserByOpenID("ext-1")
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, "Second Name", after.Name)
	assert.Equal(t, "ext1@example.com", after.Email)
	assert.Equal(t, before.ID, after.ID, "upsert must not create a second row")

	// an upsert carrying no fields still bumps lastSignedIn
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, store.UpsertUser(UserUpsert{OpenID: "ext-1"}))

	bumped, err := store.GetUserByOpenID("ext-1")
	require.NoError(t, err)
	require.NotNil(t, bumped)
	assert.True(t, bumped.LastSignedIn.After(after.LastSignedIn), "empty upsert must be observably a write")
}

func TestUpsertUserRequiresOpenID(t *testing.T) {
	store := newTestStore(t, Options{})
	assert.Error(t, store.UpsertUser(UserUpsert{}))
}

func TestGetUserByUsernameOrEmail(t *testing.T) {
	store := newTestStore(t, Options{})

	hash := "salt:hash"
	require.NoError(t, store.CreateUser(&models.User{
		OpenID:      "chaim",
		Email:       "chaim@example.com",
		LoginMethod: "password",
		Role:        models.RoleUser,
		Password:    &hash,
	}))

	byUsername, err := store.GetUserByUsernameOrEmail("chaim")
	require.NoError(t, err)
	require.NotNil(t, byUsername)

	byEmail, err := store.GetUserByUsernameOrEmail("chaim@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, byUsername.ID, byEmail.ID)

	missing, err := store.GetUserByUsernameOrEmail("nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSeedDefaultAdmin(t *testing.T) {
	store := newTestStore(t, Options{
		AdminUsername: "admin@eizer.local",
		AdminPassword: "Admin123!",
	})

	admin, err := store.GetUserByUsernameOrEmail("admin@eizer.local")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	require.NotNil(t, admin.Password)
}

func TestMachinePartialUpdateClearsAssignmentOnly(t *testing.T) {
	store := newTestStore(t, Options{})

	fid := uint(42)
	batch := "B001"
	machine := models.CreditCardMachine{
		FundraiserID:  &fid,
		MachineName:   "Verifone T650",
		MachineNumber: "M-1001",
		BatchNumber:   &batch,
		Status:        models.MachineAssigned,
	}
	require.NoError(t, store.CreateMachine(&machine))

	// clear the assignment, touch nothing else
	require.NoError(t, store.UpdateMachine(machine.ID, map[string]any{"fundraiser_id": nil}))

	got, err := store.GetMachineByID(machine.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.FundraiserID)
	assert.Equal(t, "Verifone T650", got.MachineName)
	assert.Equal(t, "M-1001", got.MachineNumber)
	require.NotNil(t, got.BatchNumber)
	assert.Equal(t, "B001", *got.BatchNumber)
	assert.Equal(t, models.MachineAssigned, got.Status)
}

func TestRedemptionListsNewestFirst(t *testing.T) {
	store := newTestStore(t, Options{})

	for i := 1; i <= 3; i++ {
		req := models.RedemptionRequest{
			FundraiserID: 1,
			Amount:       models.Amount{Decimal: decimal.NewFromInt(int64(i * 10))},
			Status:       models.RedemptionPending,
			CreatedAt:    time.Now().Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.CreateRedemptionRequest(&req))
	}

	requests, err := store.ListRedemptionRequests()
	require.NoError(t, err)
	require.Len(t, requests, 3)
	assert.True(t, requests[0].CreatedAt.After(requests[2].CreatedAt), "newest first")
}

func TestUnavailableStore(t *testing.T) {
	store := New(Options{}) // no DSN: the store can never connect

	assert.False(t, store.Available())

	fundraisers, err := store.ListFundraisers()
	require.NoError(t, err, "reads degrade silently")
	assert.Empty(t, fundraisers)

	user, err := store.GetUserByUsernameOrEmail("anyone")
	require.NoError(t, err)
	assert.Nil(t, user)

	// mutations fail loudly
	assert.ErrorIs(t, store.CreateFundraiser(&models.Fundraiser{UserID: 1, Email: "x@y.z"}), ErrUnavailable)
	assert.ErrorIs(t, store.UpdateMachine(1, map[string]any{"status": "inactive"}), ErrUnavailable)
	assert.ErrorIs(t, store.UpsertUser(UserUpsert{OpenID: "x"}), ErrUnavailable)
}
