package accounts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campussphere/campussphere/internal/app/store/accounts"
	"github.com/campussphere/campussphere/internal/domain/models"
	"github.com/campussphere/campussphere/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func setup(t *testing.T) (*accounts.Store, context.Context) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	store := accounts.New(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes: %v", err)
	}
	return store, ctx
}

func TestCreateAndFindByEmail(t *testing.T) {
	store, ctx := setup(t)

	created, err := store.Create(ctx, models.Account{
		FullName:     "Priya Sharma",
		Email:        "Priya@Campus.EDU",
		PasswordHash: "hash",
		Role:         models.RoleStudent,
		Department:   "Computer Science",
		Status:       models.StatusVerified,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("expected id to be set")
	}

	got, err := store.FindByEmail(ctx, " priya@campus.edu ")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if got.FullName != "Priya Sharma" || got.Email != "priya@campus.edu" {
		t.Errorf("got %+v", got)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	store, ctx := setup(t)

	a := models.Account{FullName: "A", Email: "dup@campus.edu", PasswordHash: "h", Role: models.RoleStudent, Status: models.StatusVerified}
	if _, err := store.Create(ctx, a); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := store.Create(ctx, a)
	if !errors.Is(err, accounts.ErrDuplicateEmail) {
		t.Fatalf("want ErrDuplicateEmail, got %v", err)
	}
}

func TestFindByEmail_Missing(t *testing.T) {
	store, ctx := setup(t)

	_, err := store.FindByEmail(ctx, "ghost@campus.edu")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("want ErrNoDocuments, got %v", err)
	}
}

func TestSetStatus(t *testing.T) {
	store, ctx := setup(t)

	_, err := store.Create(ctx, models.Account{
		FullName: "Dr. Vance", Email: "vance@campus.edu", PasswordHash: "h",
		Role: models.RoleFaculty, Status: models.StatusPending,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := store.SetStatus(ctx, "vance@campus.edu", models.StatusVerified); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	got, err := store.FindByEmail(ctx, "vance@campus.edu")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if got.Status != models.StatusVerified {
		t.Errorf("status: got %q", got.Status)
	}
}

func TestSetStatus_Missing(t *testing.T) {
	store, ctx := setup(t)
	err := store.SetStatus(ctx, "nobody@campus.edu", models.StatusVerified)
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("want ErrNoDocuments, got %v", err)
	}
}

func TestSetSuspended(t *testing.T) {
	store, ctx := setup(t)

	_, err := store.Create(ctx, models.Account{
		FullName: "John", Email: "john@campus.edu", PasswordHash: "h",
		Role: models.RoleStudent, Status: models.StatusVerified,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := store.SetSuspended(ctx, "john@campus.edu", true); err != nil {
		t.Fatalf("SetSuspended: %v", err)
	}
	got, _ := store.FindByEmail(ctx, "john@campus.edu")
	if !got.Suspended {
		t.Error("expected suspended")
	}
}

func TestCount(t *testing.T) {
	store, ctx := setup(t)

	for _, email := range []string{"a@x.edu", "b@x.edu"} {
		_, err := store.Create(ctx, models.Account{FullName: "U", Email: email, PasswordHash: "h", Role: models.RoleStudent, Status: models.StatusVerified})
		if err != nil {
			t.Fatalf("Create(%s): %v", email, err)
		}
	}
	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("count: got %d, want 2", n)
	}
}
