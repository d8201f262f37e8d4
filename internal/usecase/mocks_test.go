package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"sync"
	"time"

	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/http/middleware"
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"
	"github.com/Paarth01/lifelink-ui-connect/internal/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// testDB hands the usecases a gorm handle the repository mocks never touch.
func testDB() *gorm.DB {
	return &gorm.DB{Config: &gorm.Config{}, Statement: &gorm.Statement{}}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func ctxWithUser(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), middleware.UserIDKey, userID)
}

// --- Repository mocks ---

type mockUserRepo struct {
	createFn      func(user *entity.User) error
	findByEmailFn func(email string) (*entity.User, error)
	findByIDFn    func(id uuid.UUID) (*entity.User, error)
	updateFn      func(user *entity.User) error
	countByRoleFn func(roleID int) (int64, error)
	updated       []*entity.User
}

func (m *mockUserRepo) Create(db *gorm.DB, user *entity.User) error {
	if m.createFn != nil {
		return m.createFn(user)
	}
	return nil
}

func (m *mockUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(email)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, nil
}

func (m *mockUserRepo) Update(db *gorm.DB, user *entity.User) error {
	m.updated = append(m.updated, user)
	if m.updateFn != nil {
		return m.updateFn(user)
	}
	return nil
}

func (m *mockUserRepo) CountByRole(db *gorm.DB, roleID int) (int64, error) {
	if m.countByRoleFn != nil {
		return m.countByRoleFn(roleID)
	}
	return 0, nil
}

type mockDonorProfileRepo struct {
	upsertFn             func(profile *entity.DonorProfile) error
	upsertAvailabilityFn func(donorID uuid.UUID, availability bool) error
	findByDonorIDFn      func(donorID uuid.UUID) (*entity.DonorProfile, error)
	findAvailableFn      func(limit int) ([]entity.DonorProfile, error)
	countFn              func() (int64, error)
	countAvailableFn     func() (int64, error)
	countCalls           int
}

func (m *mockDonorProfileRepo) Upsert(db *gorm.DB, profile *entity.DonorProfile) error {
	if m.upsertFn != nil {
		return m.upsertFn(profile)
	}
	return nil
}

func (m *mockDonorProfileRepo) UpsertAvailability(db *gorm.DB, donorID uuid.UUID, availability bool) error {
	if m.upsertAvailabilityFn != nil {
		return m.upsertAvailabilityFn(donorID, availability)
	}
	return nil
}

func (m *mockDonorProfileRepo) FindByDonorID(db *gorm.DB, donorID uuid.UUID) (*entity.DonorProfile, error) {
	if m.findByDonorIDFn != nil {
		return m.findByDonorIDFn(donorID)
	}
	return nil, nil
}

func (m *mockDonorProfileRepo) FindAvailable(db *gorm.DB, limit int) ([]entity.DonorProfile, error) {
	if m.findAvailableFn != nil {
		return m.findAvailableFn(limit)
	}
	return nil, nil
}

func (m *mockDonorProfileRepo) Count(db *gorm.DB) (int64, error) {
	m.countCalls++
	if m.countFn != nil {
		return m.countFn()
	}
	return 0, nil
}

func (m *mockDonorProfileRepo) CountAvailable(db *gorm.DB) (int64, error) {
	if m.countAvailableFn != nil {
		return m.countAvailableFn()
	}
	return 0, nil
}

type mockHospitalProfileRepo struct {
	createFn           func(profile *entity.HospitalProfile) error
	findByHospitalIDFn func(hospitalID uuid.UUID) (*entity.HospitalProfile, error)
}

func (m *mockHospitalProfileRepo) Create(db *gorm.DB, profile *entity.HospitalProfile) error {
	if m.createFn != nil {
		return m.createFn(profile)
	}
	return nil
}

func (m *mockHospitalProfileRepo) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (*entity.HospitalProfile, error) {
	if m.findByHospitalIDFn != nil {
		return m.findByHospitalIDFn(hospitalID)
	}
	return nil, nil
}

type statusUpdate struct {
	RequestID uuid.UUID
	Status    entity.RequestStatus
}

type mockRequestRepo struct {
	createFn           func(request *entity.Request) error
	findPendingFn      func(limit int) ([]entity.Request, error)
	findByHospitalIDFn func(hospitalID uuid.UUID) ([]entity.Request, error)
	updateStatusErr    error
	countByStatusFn    func(status entity.RequestStatus) (int64, error)

	created          []*entity.Request
	statusUpdates    []statusUpdate
	findPendingCalls int
}

func (m *mockRequestRepo) Create(db *gorm.DB, request *entity.Request) error {
	if m.createFn != nil {
		return m.createFn(request)
	}
	m.created = append(m.created, request)
	return nil
}

func (m *mockRequestRepo) FindPending(db *gorm.DB, limit int) ([]entity.Request, error) {
	m.findPendingCalls++
	if m.findPendingFn != nil {
		return m.findPendingFn(limit)
	}
	return nil, nil
}

func (m *mockRequestRepo) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.Request, error) {
	if m.findByHospitalIDFn != nil {
		return m.findByHospitalIDFn(hospitalID)
	}
	return nil, nil
}

func (m *mockRequestRepo) UpdateStatus(db *gorm.DB, requestID uuid.UUID, status entity.RequestStatus) error {
	if m.updateStatusErr != nil {
		return m.updateStatusErr
	}
	m.statusUpdates = append(m.statusUpdates, statusUpdate{RequestID: requestID, Status: status})
	return nil
}

func (m *mockRequestRepo) CountByStatus(db *gorm.DB, status entity.RequestStatus) (int64, error) {
	if m.countByStatusFn != nil {
		return m.countByStatusFn(status)
	}
	return 0, nil
}

type mockDonationRepo struct {
	createErr       error
	findByDonorIDFn func(donorID uuid.UUID, limit int) ([]entity.Donation, error)
	countFn         func() (int64, error)
	countSinceFn    func(since time.Time) (int64, error)

	created []*entity.Donation
}

func (m *mockDonationRepo) Create(db *gorm.DB, donation *entity.Donation) error {
	if m.createErr != nil {
		return m.createErr
	}
	if donation.DonationID == uuid.Nil {
		donation.DonationID = uuid.New()
	}
	m.created = append(m.created, donation)
	return nil
}

func (m *mockDonationRepo) FindByDonorID(db *gorm.DB, donorID uuid.UUID, limit int) ([]entity.Donation, error) {
	if m.findByDonorIDFn != nil {
		return m.findByDonorIDFn(donorID, limit)
	}
	return nil, nil
}

func (m *mockDonationRepo) Count(db *gorm.DB) (int64, error) {
	if m.countFn != nil {
		return m.countFn()
	}
	return 0, nil
}

func (m *mockDonationRepo) CountSince(db *gorm.DB, since time.Time) (int64, error) {
	if m.countSinceFn != nil {
		return m.countSinceFn(since)
	}
	return 0, nil
}

// --- Cache store mock ---

// memoryStore is an in-memory cache.Store backed by a map, answering with
// real redis command results so usecase code can call .Result()/.Err()
// unchanged.
type memoryStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string]string{}}
}

func (s *memoryStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (s *memoryStore) Get(ctx context.Context, key string) *redis.StringCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.data[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (s *memoryStore) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	var deleted int64
	for _, k := range keys {
		if _, ok := s.data[k]; ok {
			delete(s.data, k)
			deleted++
		}
	}
	return redis.NewIntResult(deleted, nil)
}

func (s *memoryStore) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := s.data[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (s *memoryStore) Keys(ctx context.Context, pattern string) *redis.StringSliceCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []string
	for k := range s.data {
		if ok, _ := path.Match(pattern, k); ok {
			matched = append(matched, k)
		}
	}
	return redis.NewStringSliceResult(matched, nil)
}

func (s *memoryStore) keysWithPrefix(prefix string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for k := range s.data {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			keys = append(keys, k)
		}
	}
	return keys
}

// --- Event publisher mock ---

type mockPublisher struct {
	requestCreated         []service.RequestCreatedEvent
	donationRecorded       []service.DonationRecordedEvent
	passwordResetRequested []service.PasswordResetRequestedEvent
	publishErr             error
}

func (m *mockPublisher) PublishRequestCreated(ctx context.Context, evt service.RequestCreatedEvent) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.requestCreated = append(m.requestCreated, evt)
	return nil
}

func (m *mockPublisher) PublishDonationRecorded(ctx context.Context, evt service.DonationRecordedEvent) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.donationRecorded = append(m.donationRecorded, evt)
	return nil
}

func (m *mockPublisher) PublishPasswordResetRequested(ctx context.Context, evt service.PasswordResetRequestedEvent) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.passwordResetRequested = append(m.passwordResetRequested, evt)
	return nil
}

func strPtr(s string) *string {
	return &s
}
