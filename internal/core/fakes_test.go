package core

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"swiftparcel-backend-go/internal/db"
	"swiftparcel-backend-go/internal/models"
)

// In-memory repository fakes. They mirror the Firestore repositories'
// contracts: db.ErrNotFound for missing documents, copies on read so tests
// cannot mutate stored state by accident.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Email]; exists {
		return fmt.Errorf("user '%s' already exists", user.Email)
	}
	r.users[user.Email] = *user
	return nil
}

func (r *fakeUserRepo) Save(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Email] = *user
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, exists := r.users[email]
	if !exists {
		return nil, fmt.Errorf("user '%s' not found: %w", email, db.ErrNotFound)
	}
	copied := user
	return &copied, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		copied := user
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

func (r *fakeUserRepo) SetRole(_ context.Context, email, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, exists := r.users[email]
	if !exists {
		return fmt.Errorf("user '%s' not found: %w", email, db.ErrNotFound)
	}
	user.Role = role
	r.users[email] = user
	return nil
}

type fakeParcelRepo struct {
	mu      sync.Mutex
	seq     int
	parcels map[string]models.Parcel
}

func newFakeParcelRepo() *fakeParcelRepo {
	return &fakeParcelRepo{parcels: make(map[string]models.Parcel)}
}

func (r *fakeParcelRepo) Create(_ context.Context, parcel *models.Parcel) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	parcel.ID = fmt.Sprintf("parcel-%d", r.seq)
	r.parcels[parcel.ID] = *parcel
	return parcel.ID, nil
}

func (r *fakeParcelRepo) GetByID(_ context.Context, id string) (*models.Parcel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	parcel, exists := r.parcels[id]
	if !exists {
		return nil, fmt.Errorf("parcel '%s' not found: %w", id, db.ErrNotFound)
	}
	copied := parcel
	return &copied, nil
}

func (r *fakeParcelRepo) List(_ context.Context, filter models.ParcelFilter) ([]*models.Parcel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	parcels := make([]*models.Parcel, 0)
	for _, parcel := range r.parcels {
		if filter.Email != "" && parcel.CreatedBy != filter.Email {
			continue
		}
		if filter.PaymentStatus != "" && parcel.PaymentStatus != filter.PaymentStatus {
			continue
		}
		if filter.DeliveryStatus != "" && parcel.DeliveryStatus != filter.DeliveryStatus {
			continue
		}
		copied := parcel
		parcels = append(parcels, &copied)
	}
	sort.Slice(parcels, func(i, j int) bool { return parcels[i].CreatedAt.After(parcels[j].CreatedAt) })
	return parcels, nil
}

func (r *fakeParcelRepo) Save(_ context.Context, parcel *models.Parcel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parcels[parcel.ID] = *parcel
	return nil
}

func (r *fakeParcelRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.parcels[id]; !exists {
		return fmt.Errorf("parcel '%s' not found: %w", id, db.ErrNotFound)
	}
	delete(r.parcels, id)
	return nil
}

func (r *fakeParcelRepo) CountByDeliveryStatus(_ context.Context, deliveryStatus string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, parcel := range r.parcels {
		if parcel.DeliveryStatus == deliveryStatus {
			n++
		}
	}
	return n, nil
}

type fakeRiderRepo struct {
	mu     sync.Mutex
	seq    int
	riders map[string]models.Rider
}

func newFakeRiderRepo() *fakeRiderRepo {
	return &fakeRiderRepo{riders: make(map[string]models.Rider)}
}

func (r *fakeRiderRepo) Create(_ context.Context, rider *models.Rider) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	rider.ID = fmt.Sprintf("rider-%d", r.seq)
	r.riders[rider.ID] = *rider
	return rider.ID, nil
}

func (r *fakeRiderRepo) GetByID(_ context.Context, id string) (*models.Rider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rider, exists := r.riders[id]
	if !exists {
		return nil, fmt.Errorf("rider '%s' not found: %w", id, db.ErrNotFound)
	}
	copied := rider
	return &copied, nil
}

func (r *fakeRiderRepo) List(_ context.Context, filter models.RiderFilter) ([]*models.Rider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	riders := make([]*models.Rider, 0)
	for _, rider := range r.riders {
		if filter.Status != "" && rider.Status != filter.Status {
			continue
		}
		if filter.District != "" && rider.District != filter.District {
			continue
		}
		copied := rider
		riders = append(riders, &copied)
	}
	sort.Slice(riders, func(i, j int) bool { return riders[i].CreatedAt.After(riders[j].CreatedAt) })
	return riders, nil
}

func (r *fakeRiderRepo) SetStatus(_ context.Context, id, riderStatus string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rider, exists := r.riders[id]
	if !exists {
		return fmt.Errorf("rider '%s' not found: %w", id, db.ErrNotFound)
	}
	rider.Status = riderStatus
	r.riders[id] = rider
	return nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	seq      int
	payments []models.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{}
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *models.Payment) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	payment.ID = fmt.Sprintf("payment-%d", r.seq)
	r.payments = append(r.payments, *payment)
	return payment.ID, nil
}

func (r *fakePaymentRepo) ListByEmail(_ context.Context, email string) ([]*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payments := make([]*models.Payment, 0)
	for _, payment := range r.payments {
		if payment.Email != email {
			continue
		}
		copied := payment
		payments = append(payments, &copied)
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].PaidAt.After(payments[j].PaidAt) })
	return payments, nil
}

type fakeTrackingRepo struct {
	mu     sync.Mutex
	seq    int
	events []models.TrackingEvent
}

func newFakeTrackingRepo() *fakeTrackingRepo {
	return &fakeTrackingRepo{}
}

func (r *fakeTrackingRepo) Append(_ context.Context, event *models.TrackingEvent) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	event.ID = fmt.Sprintf("event-%d", r.seq)
	r.events = append(r.events, *event)
	return event.ID, nil
}

func (r *fakeTrackingRepo) ListByTrackingID(_ context.Context, trackingID string) ([]*models.TrackingEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]*models.TrackingEvent, 0)
	for _, event := range r.events {
		if event.TrackingID != trackingID {
			continue
		}
		copied := event
		events = append(events, &copied)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Timestamp.Before(events[j].Timestamp) })
	return events, nil
}

// fakeCache is an in-memory cache.Cache that ignores expiration.
type fakeCache struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[key], nil
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}
