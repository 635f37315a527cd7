package usecase

import (
	"fmt"

	"velvet/internal/entity"
	"velvet/internal/repo/persistent"
	"velvet/pkg/logger"
)

// WalletView is the wallet screen payload. BalanceCents comes from the
// profile row and is the authoritative display figure; LedgerCents is the
// signed sum of completed ledger entries and may trail it.
type WalletView struct {
	BalanceCents int64                 `json:"balance_cents"`
	LedgerCents  int64                 `json:"ledger_cents"`
	DriftCents   int64                 `json:"drift_cents"`
	History      []*entity.Transaction `json:"history"`
}

// DepositIntent is the manual top-up instruction sheet. Deposits settle
// off-band: the user sends money to the payout channel with the note, and an
// admin settles the pending entry once it lands.
type DepositIntent struct {
	TransactionID string `json:"transaction_id"`
	AmountCents   int64  `json:"amount_cents"`
	PayTo         string `json:"pay_to"`
	Note          string `json:"note"`
}

type WalletUseCase interface {
	View(userID string) (*WalletView, error)
	Deposit(userID string, amountCents int64) (*DepositIntent, error)
	CashOut(userID string, amountCents int64) (*entity.Transaction, error)
}

type walletUseCase struct {
	profileRepo     persistent.ProfileRepository
	txRepo          persistent.TransactionRepository
	payoutHandle    string
	depositMinCents int64
	logger          *logger.Logger
}

func NewWalletUseCase(
	profileRepo persistent.ProfileRepository,
	txRepo persistent.TransactionRepository,
	payoutHandle string,
	depositMinCents int64,
	log *logger.Logger,
) WalletUseCase {
	return &walletUseCase{
		profileRepo:     profileRepo,
		txRepo:          txRepo,
		payoutHandle:    payoutHandle,
		depositMinCents: depositMinCents,
		logger:          log,
	}
}

func (uc *walletUseCase) View(userID string) (*WalletView, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	ledger, err := uc.txRepo.SumSigned(userID)
	if err != nil {
		return nil, fmt.Errorf("sum ledger: %w", err)
	}

	history, err := uc.txRepo.ListByUser(userID, 50)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return &WalletView{
		BalanceCents: profile.BalanceCents,
		LedgerCents:  ledger,
		DriftCents:   profile.BalanceCents - ledger,
		History:      history,
	}, nil
}

// Deposit records a pending top-up and returns the off-band payment
// instructions. The balance does not move until an admin settles the entry.
func (uc *walletUseCase) Deposit(userID string, amountCents int64) (*DepositIntent, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if amountCents < uc.depositMinCents {
		return nil, ErrDepositTooSmall
	}
	if _, err := uc.profileRepo.GetByID(userID); err != nil {
		return nil, ErrNotFound
	}

	tx, err := uc.txRepo.Create(&entity.Transaction{
		UserID:      userID,
		Type:        entity.TransactionTypeDeposit,
		AmountCents: amountCents,
		Description: "Wallet top-up",
		Status:      entity.TransactionStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("create deposit: %w", err)
	}

	return &DepositIntent{
		TransactionID: tx.ID,
		AmountCents:   amountCents,
		PayTo:         uc.payoutHandle,
		Note:          fmt.Sprintf("deposit %s", tx.ID),
	}, nil
}

// CashOut records a pending withdrawal for a creator. The amount is checked
// against the profile balance but only deducted when the entry settles.
func (uc *walletUseCase) CashOut(userID string, amountCents int64) (*entity.Transaction, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !profile.IsCreator {
		return nil, ErrForbidden
	}
	if amountCents > profile.BalanceCents {
		return nil, ErrInsufficientBalance
	}

	tx, err := uc.txRepo.Create(&entity.Transaction{
		UserID:      userID,
		Type:        entity.TransactionTypePayout,
		AmountCents: -amountCents,
		Description: "Cash out",
		Status:      entity.TransactionStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("create payout: %w", err)
	}

	uc.logger.Info("Cash-out requested by %s for %d cents", userID, amountCents)
	return tx, nil
}
