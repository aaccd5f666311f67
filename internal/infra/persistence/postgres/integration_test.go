//go:build integration

package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"academy/config"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/infra/invoice"
	"academy/internal/infra/persistence/postgres"
	"academy/internal/infra/qrcode"
	"academy/internal/usecase"
	"academy/internal/usecase/impl"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupTestDB starts a disposable PostgreSQL and migrates the schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("academy"),
		tcpostgres.WithUsername("academy"),
		tcpostgres.WithPassword("academy"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{})
	require.NoError(t, err)
	db = postgres.WithSession(db, newTestLogger(), &config.Config{})

	require.NoError(t, postgres.Migrate(ctx, db))
	require.NoError(t, postgres.Ping(ctx, db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$04$hash",
		Role:         entity.RoleUser,
	}
	require.NoError(t, postgres.NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedCourse(t *testing.T, db *gorm.DB, name, price, discount string) *entity.Course {
	t.Helper()

	course := &entity.Course{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		Discount:    decimal.RequireFromString(discount),
		Language:    "English",
		Topic:       "Programming",
		Level:       "Beginner",
		Description: name + " description",
		Tags:        []entity.Tag{{Label: "go", Color: "#00ADD8"}},
		Summary:     &entity.CourseSummary{Goal: "Learn", Syllabus: []string{"Intro"}},
	}
	require.NoError(t, postgres.NewCourseRepository(db).Create(context.Background(), course))

	return course
}

func newPurchaseUsecase(db *gorm.DB) usecase.PurchaseUsecase {
	cfg := &config.Config{Invoice: &config.InvoiceConfig{MaxAttempts: 5}}

	return impl.NewPurchaseService(impl.PurchaseServiceParams{
		TxManager:     postgres.NewTransactionManager(db),
		UserRepo:      postgres.NewUserRepository(db),
		CourseRepo:    postgres.NewCourseRepository(db),
		PurchaseRepo:  postgres.NewPurchaseRepository(db),
		InvoiceNumber: invoice.NewGenerator(),
		QRCode:        qrcode.NewQRCodeService(cfg),
		Config:        cfg,
		Logger:        newTestLogger(),
	})
}

func TestRepositories_Integration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	userRepo := postgres.NewUserRepository(db)
	courseRepo := postgres.NewCourseRepository(db)
	purchaseRepo := postgres.NewPurchaseRepository(db)

	ana := seedUser(t, db, "ana")
	course := seedCourse(t, db, "Go Basics", "100.00", "20.00")

	t.Run("user unique indexes", func(t *testing.T) {
		err := userRepo.Create(ctx, &entity.User{Username: "ana", Email: "other@example.com", PasswordHash: "x", Role: entity.RoleUser})
		assert.ErrorIs(t, err, repository.ErrUsernameTaken)

		err = userRepo.Create(ctx, &entity.User{Username: "other", Email: "ana@example.com", PasswordHash: "x", Role: entity.RoleUser})
		assert.ErrorIs(t, err, repository.ErrEmailTaken)
	})

	t.Run("user lists round trip in order", func(t *testing.T) {
		require.NoError(t, userRepo.UpdateFavouriteCourses(ctx, ana.ID, []uint{course.ID}))
		require.NoError(t, userRepo.UpdateSavedBlogs(ctx, ana.ID, []uint{3, 1, 2}))

		got, err := userRepo.FindByID(ctx, ana.ID)
		require.NoError(t, err)
		assert.Equal(t, []uint{course.ID}, got.FavouriteCourses)
		assert.Equal(t, []uint{3, 1, 2}, got.SavedBlogs)
		assert.Empty(t, got.OwnedCourses)
	})

	t.Run("course json columns and money", func(t *testing.T) {
		got, err := courseRepo.FindByID(ctx, course.ID)
		require.NoError(t, err)
		assert.True(t, got.Price.Equal(decimal.RequireFromString("100")))
		assert.True(t, got.FinalPrice().Equal(decimal.RequireFromString("80")))
		assert.Equal(t, []entity.Tag{{Label: "go", Color: "#00ADD8"}}, got.Tags)
		require.NotNil(t, got.Summary)
		assert.Equal(t, "Learn", got.Summary.Goal)

		err = courseRepo.Create(ctx, &entity.Course{Name: "Go Basics", Price: decimal.Zero, Discount: decimal.Zero,
			Language: "en", Topic: "t", Level: "l", Description: "d"})
		assert.ErrorIs(t, err, repository.ErrCourseNameTaken)
	})

	t.Run("course filter", func(t *testing.T) {
		seedCourse(t, db, "Advanced SQL", "50.00", "0.00")

		courses, total, err := courseRepo.List(ctx, entity.CourseFilter{Query: "sql"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, courses, 1)
		assert.Equal(t, "Advanced SQL", courses[0].Name)
	})

	t.Run("ledger constraints", func(t *testing.T) {
		now := time.Now().UTC()
		first := entity.NewPurchase(ana.ID, course, "INV-AAAAAAAAAA", now)
		require.NoError(t, purchaseRepo.Create(ctx, first))
		assert.NotZero(t, first.ID)

		collision := entity.NewPurchase(ana.ID, seedCourse(t, db, "Rust", "10.00", "0.00"), "INV-AAAAAAAAAA", now)
		assert.ErrorIs(t, purchaseRepo.Create(ctx, collision), repository.ErrInvoiceNumberTaken)

		duplicate := entity.NewPurchase(ana.ID, course, "INV-BBBBBBBBBB", now)
		assert.ErrorIs(t, purchaseRepo.Create(ctx, duplicate), repository.ErrDuplicatePurchase)

		found, err := purchaseRepo.FindByInvoiceNumber(ctx, "INV-AAAAAAAAAA")
		require.NoError(t, err)
		assert.True(t, found.FinalPrice.Equal(decimal.RequireFromString("80")))

		_, err = purchaseRepo.FindByInvoiceNumber(ctx, "inv-aaaaaaaaaa")
		assert.ErrorIs(t, err, repository.ErrPurchaseNotFound)
	})

	t.Run("ledger rows block deletes", func(t *testing.T) {
		assert.ErrorIs(t, userRepo.Delete(ctx, ana.ID), repository.ErrUserHasPurchases)
		assert.ErrorIs(t, courseRepo.Delete(ctx, course.ID), repository.ErrCourseHasPurchases)
	})
}

func TestPurchaseFlow_Integration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	purchaseUC := newPurchaseUsecase(db)
	purchaseRepo := postgres.NewPurchaseRepository(db)

	buyer := seedUser(t, db, "buyer")
	goCourse := seedCourse(t, db, "Go", "100.00", "20.00")
	freeCourse := seedCourse(t, db, "Free", "10.00", "15.00")

	t.Run("batch purchase writes ledger and cache", func(t *testing.T) {
		out, err := purchaseUC.Purchase(ctx, &usecase.PurchaseInput{UserID: buyer.ID, CourseIDs: []uint{goCourse.ID, freeCourse.ID}})
		require.NoError(t, err)

		require.Len(t, out.Purchases, 2)
		assert.True(t, out.Purchases[0].FinalPrice.Equal(decimal.RequireFromString("80")))
		assert.True(t, out.Purchases[1].FinalPrice.IsZero())
		assert.Len(t, out.InvoiceNumbers, 2)
		assert.NotEqual(t, out.InvoiceNumbers[0], out.InvoiceNumbers[1])
		assert.Equal(t, []uint{goCourse.ID, freeCourse.ID}, out.User.OwnedCourses)

		invoice, err := purchaseUC.GetInvoice(ctx, out.InvoiceNumbers[0])
		require.NoError(t, err)
		assert.Equal(t, "buyer", invoice.User.Username)
		assert.Equal(t, "Go", invoice.Course.Name)
	})

	t.Run("re-buying is rejected without writes", func(t *testing.T) {
		_, err := purchaseUC.Purchase(ctx, &usecase.PurchaseInput{UserID: buyer.ID, CourseIDs: []uint{goCourse.ID}})
		assert.ErrorIs(t, err, domainerrors.ErrCourseAlreadyOwned)

		ids, err := purchaseRepo.CourseIDsByUser(ctx, buyer.ID)
		require.NoError(t, err)
		assert.Len(t, ids, 2)
	})

	t.Run("unknown course aborts the whole batch", func(t *testing.T) {
		other := seedUser(t, db, "other")
		extra := seedCourse(t, db, "Extra", "5.00", "0.00")

		_, err := purchaseUC.Purchase(ctx, &usecase.PurchaseInput{UserID: other.ID, CourseIDs: []uint{extra.ID, 99999}})
		assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)

		ids, err := purchaseRepo.CourseIDsByUser(ctx, other.ID)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("concurrent duplicate purchases grant once", func(t *testing.T) {
		racer := seedUser(t, db, "racer")

		const attempts = 5
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
		)
		for range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := purchaseUC.Purchase(ctx, &usecase.PurchaseInput{UserID: racer.ID, CourseIDs: []uint{goCourse.ID}})
				if err == nil {
					mu.Lock()
					successes++
					mu.Unlock()

					return
				}
				assert.ErrorIs(t, err, domainerrors.ErrCourseAlreadyOwned)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		ids, err := purchaseRepo.CourseIDsByUser(ctx, racer.ID)
		require.NoError(t, err)
		assert.Equal(t, []uint{goCourse.ID}, ids)
	})

	t.Run("reconcile rebuilds the cache from the ledger", func(t *testing.T) {
		require.NoError(t, postgres.NewUserRepository(db).UpdateOwnedCourses(ctx, buyer.ID, []uint{}))

		out, err := purchaseUC.ReconcileOwnedCourses(ctx, buyer.ID)
		require.NoError(t, err)
		assert.True(t, out.Changed)
		assert.Empty(t, out.Before)
		assert.ElementsMatch(t, []uint{goCourse.ID, freeCourse.ID}, out.After)

		out, err = purchaseUC.ReconcileOwnedCourses(ctx, buyer.ID)
		require.NoError(t, err)
		assert.False(t, out.Changed)
	})
}
