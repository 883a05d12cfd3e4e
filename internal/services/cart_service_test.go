package services_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"dairydelight/internal/catalog"
	"dairydelight/internal/domain"
	"dairydelight/internal/kv"
	"dairydelight/internal/services"
)

func snapstore(t *testing.T) kv.Store {
	t.Helper()
	s, err := kv.OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func fp(v float64) *float64 { return &v }

func milk() domain.Product {
	return domain.Product{ID: "1", Name: "Organic Whole Milk", Price: 4.99, DiscountPrice: fp(3.99), Category: "dairy"}
}

func TestCartPersistsAcrossServiceRestart(t *testing.T) {
	store := snapstore(t)
	ctx := context.Background()
	sid := "session-1"

	svc := services.NewCartService(store)
	svc.Add(ctx, sid, milk(), 2)
	if !svc.ApplyCoupon(ctx, sid, "MILK15") {
		t.Fatal("coupon should apply")
	}

	// new service over the same store simulates a process restart
	svc2 := services.NewCartService(store)
	cv := svc2.View(ctx, sid)
	if len(cv.Items) != 1 || cv.Items[0].Quantity != 2 {
		t.Fatalf("bad hydrated items: %+v", cv.Items)
	}
	if cv.Coupon == nil || cv.Coupon.Code != "MILK15" || cv.Coupon.DiscountPercentage != 15 {
		t.Fatalf("bad hydrated coupon: %+v", cv.Coupon)
	}
	if !approx(cv.Totals.Subtotal, 7.98) {
		t.Fatalf("want subtotal 7.98, got %v", cv.Totals.Subtotal)
	}
}

func TestEmptyStoreMeansEmptyCart(t *testing.T) {
	svc := services.NewCartService(snapstore(t))
	cv := svc.View(context.Background(), "fresh-session")
	if len(cv.Items) != 0 || cv.Totals.TotalItems != 0 || cv.Coupon != nil {
		t.Fatalf("fresh session should be empty, got %+v", cv)
	}
}

func TestClearDropsPersistedCoupon(t *testing.T) {
	store := snapstore(t)
	ctx := context.Background()
	sid := "s"

	svc := services.NewCartService(store)
	svc.Add(ctx, sid, milk(), 1)
	svc.ApplyCoupon(ctx, sid, "DAIRY10")
	svc.Clear(ctx, sid)

	// coupon scalars must be gone from the store, not just from memory
	svc2 := services.NewCartService(store)
	cv := svc2.View(ctx, sid)
	if cv.Coupon != nil {
		t.Fatalf("coupon survived clear: %+v", cv.Coupon)
	}
	if cv.Totals.TotalItems != 0 {
		t.Fatalf("items survived clear: %+v", cv)
	}
}

// failingStore rejects every operation; cart state must not care.
type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) {
	return "", errors.New("backend down")
}
func (failingStore) Set(context.Context, string, string) error { return errors.New("backend down") }
func (failingStore) Delete(context.Context, string) error      { return errors.New("backend down") }

func TestSnapshotFailuresDoNotAffectCart(t *testing.T) {
	svc := services.NewCartService(failingStore{})
	ctx := context.Background()
	sid := "s"

	svc.Add(ctx, sid, milk(), 2)
	if !svc.ApplyCoupon(ctx, sid, "CHEESE20") {
		t.Fatal("coupon should apply despite storage failure")
	}

	cv := svc.View(ctx, sid)
	if cv.Totals.TotalItems != 2 {
		t.Fatalf("want 2 items, got %+v", cv.Totals)
	}
	if !approx(cv.Totals.FinalTotal, 7.98*0.80) {
		t.Fatalf("want final total %.4f, got %v", 7.98*0.80, cv.Totals.FinalTotal)
	}
}

func TestMessagesAreDrainedOnce(t *testing.T) {
	svc := services.NewCartService(snapstore(t))
	ctx := context.Background()
	sid := "s"

	svc.Add(ctx, sid, milk(), 1)
	svc.ApplyCoupon(ctx, sid, "BOGUS")

	msgs := svc.Messages(sid)
	if len(msgs) != 2 {
		t.Fatalf("want 2 messages, got %v", msgs)
	}
	if msgs[0] != "Added Organic Whole Milk to cart" || msgs[1] != "Invalid coupon code" {
		t.Fatalf("unexpected messages: %v", msgs)
	}
	if got := svc.Messages(sid); got != nil {
		t.Fatalf("messages must drain, got %v", got)
	}
}

// Deleting a product from the catalog must not touch existing cart lines:
// the cart holds a value snapshot, not a foreign key.
func TestCartKeepsSnapshotAfterCatalogDelete(t *testing.T) {
	store := catalog.NewStore(catalog.SeedProducts())
	catalogSvc := services.NewCatalogService(store)
	cartSvc := services.NewCartService(snapstore(t))
	ctx := context.Background()
	sid := "s"

	p, err := catalogSvc.Product("1")
	if err != nil {
		t.Fatal(err)
	}
	cartSvc.Add(ctx, sid, p, 2)

	catalogSvc.Delete("1")
	if _, err := catalogSvc.Product("1"); err == nil {
		t.Fatal("product should be gone from catalog")
	}

	cv := cartSvc.View(ctx, sid)
	if len(cv.Items) != 1 || cv.Items[0].Product.Name != "Organic Whole Milk" {
		t.Fatalf("cart line must survive catalog delete: %+v", cv.Items)
	}
	if !approx(cv.Totals.Subtotal, 7.98) {
		t.Fatalf("want subtotal 7.98, got %v", cv.Totals.Subtotal)
	}
}
