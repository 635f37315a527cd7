package usecase

import (
	"fmt"

	"velvet/internal/entity"
	"velvet/internal/repo/persistent"
	"velvet/pkg/logger"
)

// PlatformOverview is the admin dashboard payload. RevenueCents is the
// platform cut: total purchases taken in minus the earnings credited back to
// creators.
type PlatformOverview struct {
	UserCount            int64 `json:"user_count"`
	CreatorCount         int64 `json:"creator_count"`
	PendingVerifications int64 `json:"pending_verifications"`
	RevenueCents         int64 `json:"revenue_cents"`
}

// ReconcileReport compares a profile balance against its completed ledger.
type ReconcileReport struct {
	UserID       string `json:"user_id"`
	BalanceCents int64  `json:"balance_cents"`
	LedgerCents  int64  `json:"ledger_cents"`
	DriftCents   int64  `json:"drift_cents"`
}

type AdminUseCase interface {
	Overview(adminID string) (*PlatformOverview, error)
	Settle(adminID, txID string) error
	Reconcile(adminID, userID string) (*ReconcileReport, error)
}

type adminUseCase struct {
	profileRepo      persistent.ProfileRepository
	txRepo           persistent.TransactionRepository
	verificationRepo persistent.VerificationRepository
	logger           *logger.Logger
}

func NewAdminUseCase(
	profileRepo persistent.ProfileRepository,
	txRepo persistent.TransactionRepository,
	verificationRepo persistent.VerificationRepository,
	log *logger.Logger,
) AdminUseCase {
	return &adminUseCase{
		profileRepo:      profileRepo,
		txRepo:           txRepo,
		verificationRepo: verificationRepo,
		logger:           log,
	}
}

func (uc *adminUseCase) requireAdmin(adminID string) error {
	admin, err := uc.profileRepo.GetByID(adminID)
	if err != nil {
		return ErrNotFound
	}
	if !admin.IsAdmin {
		return ErrForbidden
	}
	return nil
}

func (uc *adminUseCase) Overview(adminID string) (*PlatformOverview, error) {
	if err := uc.requireAdmin(adminID); err != nil {
		return nil, err
	}

	users, err := uc.profileRepo.CountUsers()
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	creators, err := uc.profileRepo.CountCreators()
	if err != nil {
		return nil, fmt.Errorf("count creators: %w", err)
	}

	pending, err := uc.verificationRepo.CountPending()
	if err != nil {
		return nil, fmt.Errorf("count pending verifications: %w", err)
	}

	purchases, err := uc.txRepo.SumAllByType(entity.TransactionTypePurchase)
	if err != nil {
		return nil, fmt.Errorf("sum purchases: %w", err)
	}
	earnings, err := uc.txRepo.SumAllByType(entity.TransactionTypeEarning)
	if err != nil {
		return nil, fmt.Errorf("sum earnings: %w", err)
	}

	// Purchases are stored negative (buyer side), earnings positive.
	return &PlatformOverview{
		UserCount:            users,
		CreatorCount:         creators,
		PendingVerifications: pending,
		RevenueCents:         -purchases - earnings,
	}, nil
}

// Settle completes a pending ledger entry and moves the balance. Off-band
// deposits and payouts go through here once the money has actually moved.
func (uc *adminUseCase) Settle(adminID, txID string) error {
	if err := uc.requireAdmin(adminID); err != nil {
		return err
	}

	if err := uc.txRepo.Settle(txID); err != nil {
		return fmt.Errorf("settle transaction: %w", err)
	}

	uc.logger.Info("Transaction %s settled by %s", txID, adminID)
	return nil
}

func (uc *adminUseCase) Reconcile(adminID, userID string) (*ReconcileReport, error) {
	if err := uc.requireAdmin(adminID); err != nil {
		return nil, err
	}

	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	ledger, err := uc.txRepo.SumSigned(userID)
	if err != nil {
		return nil, fmt.Errorf("sum ledger: %w", err)
	}

	return &ReconcileReport{
		UserID:       userID,
		BalanceCents: profile.BalanceCents,
		LedgerCents:  ledger,
		DriftCents:   profile.BalanceCents - ledger,
	}, nil
}
