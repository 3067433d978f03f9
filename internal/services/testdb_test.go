package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Lalo789/weddingplan/internal/logger"
	"github.com/Lalo789/weddingplan/internal/repos"
	"github.com/Lalo789/weddingplan/internal/types"
)

// testEnv wires the full service stack against an in-memory sqlite database.
type testEnv struct {
	db *gorm.DB

	auth      AuthService
	account   AccountService
	catalog   CatalogService
	vendor    VendorService
	event     EventService
	pricing   PricingService
	dashboard DashboardService
	activity  ActivityService

	userRepo         repos.UserRepo
	eventRepo        repos.EventRepo
	eventServiceRepo repos.EventServiceRepo
	serviceRepo      repos.ServiceRepo
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	t.Cleanup(log.Sync)
	return log
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&types.User{},
		&types.Service{},
		&types.Vendor{},
		&types.Event{},
		&types.EventService{},
		&types.ActivityEvent{},
		&types.ClientRecord{},
	)
	if err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := newTestLogger(t)
	db := openTestDB(t)

	userRepo := repos.NewUserRepo(db, log)
	serviceRepo := repos.NewServiceRepo(db, log)
	vendorRepo := repos.NewVendorRepo(db, log)
	eventRepo := repos.NewEventRepo(db, log)
	eventServiceRepo := repos.NewEventServiceRepo(db, log)
	activityRepo := repos.NewActivityRepo(db, log)
	clientRecordRepo := repos.NewClientRecordRepo(db, log)

	activity := NewActivityService(db, log, activityRepo)

	return &testEnv{
		db:               db,
		auth:             NewAuthService(db, log, userRepo, activity, "test-secret", time.Hour),
		account:          NewAccountService(db, log, userRepo, eventRepo, eventServiceRepo, clientRecordRepo, activity),
		catalog:          NewCatalogService(db, log, serviceRepo, eventServiceRepo),
		vendor:           NewVendorService(db, log, vendorRepo),
		event:            NewEventService(db, log, eventRepo, eventServiceRepo, serviceRepo, activity),
		pricing:          NewPricingService(db, log, eventRepo, eventServiceRepo),
		dashboard:        NewDashboardService(db, log, userRepo, eventRepo, serviceRepo, activity),
		activity:         activity,
		userRepo:         userRepo,
		eventRepo:        eventRepo,
		eventServiceRepo: eventServiceRepo,
		serviceRepo:      serviceRepo,
	}
}

func (e *testEnv) registerClient(t *testing.T, username string) *types.User {
	t.Helper()
	user, err := e.auth.Register(context.Background(), RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret123",
		FullName: "Test Client " + username,
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return user
}

func (e *testEnv) createAdmin(t *testing.T, username string) *types.User {
	t.Helper()
	admin := &types.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         types.RoleAdmin,
		FullName:     "Test Admin " + username,
		Active:       true,
	}
	if err := e.userRepo.Create(context.Background(), nil, admin); err != nil {
		t.Fatalf("create admin %s: %v", username, err)
	}
	return admin
}

func (e *testEnv) seedService(t *testing.T, admin *types.User, name string, price string) *types.Service {
	t.Helper()
	basePrice, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("parse price %q: %v", price, err)
	}
	svc, err := e.catalog.CreateService(context.Background(), admin, ServiceInput{
		Name:      name,
		BasePrice: basePrice,
		Category:  "catering",
		Available: true,
	})
	if err != nil {
		t.Fatalf("seed service %s: %v", name, err)
	}
	return svc
}

func (e *testEnv) createEvent(t *testing.T, owner *types.User, title string) *types.Event {
	t.Helper()
	event, err := e.event.Create(context.Background(), owner, EventInput{
		Title:     title,
		EventDate: "2027-06-12T16:00",
		Location:  "Playa del Carmen",
	})
	if err != nil {
		t.Fatalf("create event %q: %v", title, err)
	}
	return event
}

func mustDecimal(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", raw, err)
	}
	return d
}
