package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"

	"dairydelight/internal/cart"
	"dairydelight/internal/domain"
	"dairydelight/internal/kv"
	applog "dairydelight/internal/log"
)

// Snapshot keys per session, mirroring the original localStorage entries.
const (
	cartKeyPrefix           = "cart:"
	couponCodeKeyPrefix     = "coupon_code:"
	couponDiscountKeyPrefix = "coupon_discount:"
)

type session struct {
	engine  *cart.Engine
	pending []string // notification messages not yet shown
}

// CartService owns one pricing engine per session id, hydrating each from
// the snapshot store on first touch and writing a snapshot back after every
// mutation. Snapshot writes are fire-and-forget: failures are logged and the
// in-memory state stays authoritative.
type CartService struct {
	mu       sync.Mutex
	store    kv.Store
	sessions map[string]*session
}

func NewCartService(store kv.Store) *CartService {
	return &CartService{store: store, sessions: make(map[string]*session)}
}

// session returns the engine for sid, hydrating it on first touch. Caller
// holds s.mu.
func (s *CartService) session(ctx context.Context, sid string) *session {
	if sess, ok := s.sessions[sid]; ok {
		return sess
	}
	sess := &session{}
	sess.engine = cart.New(func(msg string) {
		sess.pending = append(sess.pending, msg)
	})
	s.hydrate(ctx, sid, sess.engine)
	s.sessions[sid] = sess
	return sess
}

// hydrate restores prior state from the snapshot store. Missing keys mean no
// prior state; unreadable snapshots are logged and treated the same.
func (s *CartService) hydrate(ctx context.Context, sid string, e *cart.Engine) {
	var items []domain.LineItem
	raw, err := s.store.Get(ctx, cartKeyPrefix+sid)
	switch {
	case err == nil:
		if uerr := json.Unmarshal([]byte(raw), &items); uerr != nil {
			applog.Error(nil, "cart.snapshot.decode.fail", uerr, map[string]any{"sid": sid})
			items = nil
		}
	case errors.Is(err, kv.ErrNotFound):
	default:
		applog.Error(nil, "cart.snapshot.load.fail", err, map[string]any{"sid": sid})
	}

	code, pct := "", 0
	if v, err := s.store.Get(ctx, couponCodeKeyPrefix+sid); err == nil {
		code = v
	}
	if v, err := s.store.Get(ctx, couponDiscountKeyPrefix+sid); err == nil {
		if n, cerr := strconv.Atoi(v); cerr == nil {
			pct = n
		}
	}
	e.Restore(items, code, pct)
}

// persist writes the current snapshot. Caller holds s.mu.
func (s *CartService) persist(ctx context.Context, sid string, e *cart.Engine) {
	raw, err := json.Marshal(e.Items())
	if err != nil {
		applog.Error(nil, "cart.snapshot.encode.fail", err, map[string]any{"sid": sid})
		return
	}
	if err := s.store.Set(ctx, cartKeyPrefix+sid, string(raw)); err != nil {
		applog.Error(nil, "cart.snapshot.save.fail", err, map[string]any{"sid": sid})
	}
	if c, ok := e.Coupon(); ok {
		if err := s.store.Set(ctx, couponCodeKeyPrefix+sid, c.Code); err != nil {
			applog.Error(nil, "cart.snapshot.save.fail", err, map[string]any{"sid": sid})
		}
		if err := s.store.Set(ctx, couponDiscountKeyPrefix+sid, strconv.Itoa(c.DiscountPercentage)); err != nil {
			applog.Error(nil, "cart.snapshot.save.fail", err, map[string]any{"sid": sid})
		}
	} else {
		_ = s.store.Delete(ctx, couponCodeKeyPrefix+sid)
		_ = s.store.Delete(ctx, couponDiscountKeyPrefix+sid)
	}
}

// Add puts qty units of the product in the session's cart. The product is
// snapshotted by value; it need not still exist in the catalog.
func (s *CartService) Add(ctx context.Context, sid string, p domain.Product, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ctx, sid)
	sess.engine.Add(p, qty)
	s.persist(ctx, sid, sess.engine)
}

func (s *CartService) Remove(ctx context.Context, sid, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ctx, sid)
	sess.engine.Remove(productID)
	s.persist(ctx, sid, sess.engine)
}

func (s *CartService) SetQuantity(ctx context.Context, sid, productID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ctx, sid)
	sess.engine.SetQuantity(productID, qty)
	s.persist(ctx, sid, sess.engine)
}

func (s *CartService) Clear(ctx context.Context, sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ctx, sid)
	sess.engine.Clear()
	s.persist(ctx, sid, sess.engine)
}

// ApplyCoupon reports whether the code was accepted. A rejected code leaves
// all state unchanged.
func (s *CartService) ApplyCoupon(ctx context.Context, sid, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ctx, sid)
	ok := sess.engine.ApplyCoupon(code)
	if ok {
		s.persist(ctx, sid, sess.engine)
	}
	return ok
}

func (s *CartService) RemoveCoupon(ctx context.Context, sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ctx, sid)
	sess.engine.RemoveCoupon()
	s.persist(ctx, sid, sess.engine)
}

// CartView is the read model consumed by the cart and navbar views.
type CartView struct {
	Items  []domain.LineItem
	Coupon *domain.Coupon
	Totals domain.Totals
}

func (s *CartService) View(ctx context.Context, sid string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ctx, sid)
	cv := CartView{
		Items:  sess.engine.Items(),
		Totals: sess.engine.Totals(),
	}
	if c, ok := sess.engine.Coupon(); ok {
		cv.Coupon = &c
	}
	return cv
}

// Messages drains the pending user-facing notifications for the session.
func (s *CartService) Messages(sid string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sid]
	if !ok || len(sess.pending) == 0 {
		return nil
	}
	msgs := sess.pending
	sess.pending = nil
	return msgs
}
