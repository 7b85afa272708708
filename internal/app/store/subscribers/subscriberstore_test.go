package subscriberstore_test

import (
	"testing"

	subscriberstore "github.com/sevasetu/sevahub/internal/app/store/subscribers"
	"github.com/sevasetu/sevahub/internal/app/system/indexes"
	"github.com/sevasetu/sevahub/internal/testutil"
)

func TestSubscribe(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := subscriberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sub, err := store.Subscribe(ctx, "Reader@Example.com")
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if sub.Email != "reader@example.com" {
		t.Errorf("email not normalized: %q", sub.Email)
	}
	if !sub.Active {
		t.Error("new subscriber should be active")
	}
}

func TestSubscribe_DuplicateRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	store := subscriberstore.New(db)

	if _, err := store.Subscribe(ctx, "reader@example.com"); err != nil {
		t.Fatalf("first Subscribe failed: %v", err)
	}

	// Second attempt for the same email must be rejected.
	if _, err := store.Subscribe(ctx, "READER@example.com"); err != subscriberstore.ErrAlreadySubscribed {
		t.Errorf("got %v, want ErrAlreadySubscribed", err)
	}
}

func TestUnsubscribeAndResubscribe(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := subscriberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.Subscribe(ctx, "reader@example.com")
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	if err := store.Unsubscribe(ctx, "reader@example.com"); err != nil {
		t.Fatalf("Unsubscribe failed: %v", err)
	}

	active, err := store.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("active after unsubscribe: got %d, want 0", len(active))
	}

	// Re-subscribing reactivates the same document.
	again, err := store.Subscribe(ctx, "reader@example.com")
	if err != nil {
		t.Fatalf("re-Subscribe failed: %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("re-subscribe created a new document: %s vs %s", again.ID.Hex(), first.ID.Hex())
	}
}

func TestUnsubscribe_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := subscriberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Unsubscribe(ctx, "nobody@example.com"); err != subscriberstore.ErrNotFound {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestListActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := subscriberstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateSubscriber(ctx, "a@example.com", true)
	fx.CreateSubscriber(ctx, "b@example.com", true)
	fx.CreateSubscriber(ctx, "c@example.com", false)

	active, err := store.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("active subscribers: got %d, want 2", len(active))
	}
}
