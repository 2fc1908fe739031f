package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/models"
)

// Error variables
var (
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrInvalidCreditAmount = errors.New("credit amount must be positive")
)

// CreditUpdater defines atomic credit mutations on a profile.
type CreditUpdater interface {
	DeductCredit(ctx context.Context, profileID uuid.UUID) (int64, error)
	AddCredits(ctx context.Context, profileID uuid.UUID, amount int64) (int64, error)
}

// PurchaseWriter records credit-pack purchases.
type PurchaseWriter interface {
	Save(ctx context.Context, purchase models.PurchaseDB) (uuid.UUID, error)
}

// PurchaseLister lists a user's purchase history.
type PurchaseLister interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PurchaseDB, error)
}

// CreditService handles the credit balance and purchase history.
type CreditService struct {
	reader    ProfileReader
	updater   CreditUpdater
	purchases PurchaseWriter
	history   PurchaseLister
	cache     ProfileCache
}

// NewCreditService creates a new CreditService.
func NewCreditService(reader ProfileReader, updater CreditUpdater, purchases PurchaseWriter, history PurchaseLister, cache ProfileCache) *CreditService {
	return &CreditService{
		reader:    reader,
		updater:   updater,
		purchases: purchases,
		history:   history,
		cache:     cache,
	}
}

// GetBalance returns the current credit balance, preferring the cache.
func (svc *CreditService) GetBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	if svc.cache != nil {
		if profile, err := svc.cache.Get(ctx, userID); err == nil && profile != nil {
			return profile.Credits, nil
		}
	}

	profile, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "userID", userID, "err", err)
		return 0, err
	}
	if profile == nil {
		return 0, ErrUserDoesNotExist
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, profile); err != nil {
			logger.Log.Warnw("failed to cache profile", "userID", userID, "err", err)
		}
	}

	return profile.Credits, nil
}

// Deduct atomically takes one credit and returns the remaining balance.
// Returns ErrInsufficientCredits when the balance is already zero.
func (svc *CreditService) Deduct(ctx context.Context, userID uuid.UUID) (int64, error) {
	remaining, err := svc.updater.DeductCredit(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrInsufficientCredits
		}
		logger.Log.Errorw("failed to deduct credit", "userID", userID, "err", err)
		return 0, err
	}

	svc.invalidate(ctx, userID)

	return remaining, nil
}

// Add grants credits, records the purchase and returns the new balance.
func (svc *CreditService) Add(ctx context.Context, userID uuid.UUID, credits int64, amountPaid float64) (int64, error) {
	if credits <= 0 {
		return 0, ErrInvalidCreditAmount
	}

	balance, err := svc.updater.AddCredits(ctx, userID, credits)
	if err != nil {
		logger.Log.Errorw("failed to add credits", "userID", userID, "credits", credits, "err", err)
		return 0, err
	}

	purchase := models.PurchaseDB{
		UserID:  userID,
		Amount:  amountPaid,
		Credits: credits,
		Status:  models.PurchaseCompleted,
	}
	if _, err := svc.purchases.Save(ctx, purchase); err != nil {
		logger.Log.Errorw("failed to record purchase", "userID", userID, "err", err)
		return 0, err
	}

	svc.invalidate(ctx, userID)

	return balance, nil
}

// History returns the user's purchases, newest first.
func (svc *CreditService) History(ctx context.Context, userID uuid.UUID) ([]models.PurchaseDB, error) {
	purchases, err := svc.history.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list purchases", "userID", userID, "err", err)
		return nil, err
	}
	return purchases, nil
}

func (svc *CreditService) invalidate(ctx context.Context, userID uuid.UUID) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Invalidate(ctx, userID); err != nil {
		logger.Log.Warnw("failed to invalidate profile cache", "userID", userID, "err", err)
	}
}
