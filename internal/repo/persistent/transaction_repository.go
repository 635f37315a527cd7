package persistent

import (
	"velvet/internal/entity"
	"velvet/internal/model"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(tx *entity.Transaction) (*entity.Transaction, error)
	ListByUser(userID string, limit int) ([]*entity.Transaction, error)
	SumByType(userID string, txType entity.TransactionType) (int64, error)
	SumSigned(userID string) (int64, error)
	SumAllByType(txType entity.TransactionType) (int64, error)
	Settle(txID string) error
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(tx *entity.Transaction) (*entity.Transaction, error) {
	txModel := ToTransactionModel(tx)
	if err := r.db.Create(txModel).Error; err != nil {
		return nil, err
	}
	return ToTransactionEntity(txModel), nil
}

func (r *transactionRepository) ListByUser(userID string, limit int) ([]*entity.Transaction, error) {
	var txModels []model.TransactionModel
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&txModels).Error
	if err != nil {
		return nil, err
	}

	txs := make([]*entity.Transaction, len(txModels))
	for i := range txModels {
		txs[i] = ToTransactionEntity(&txModels[i])
	}
	return txs, nil
}

func (r *transactionRepository) SumByType(userID string, txType entity.TransactionType) (int64, error) {
	var sum int64
	err := r.db.Model(&model.TransactionModel{}).
		Where("user_id = ? AND type = ?", userID, string(txType)).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&sum).Error
	return sum, err
}

// SumSigned totals the signed ledger for one user. Comparing it against the
// profile balance exposes any drift between the two.
func (r *transactionRepository) SumSigned(userID string) (int64, error) {
	var sum int64
	err := r.db.Model(&model.TransactionModel{}).
		Where("user_id = ? AND status = ?", userID, string(entity.TransactionStatusCompleted)).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *transactionRepository) SumAllByType(txType entity.TransactionType) (int64, error) {
	var sum int64
	err := r.db.Model(&model.TransactionModel{}).
		Where("type = ?", string(txType)).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&sum).Error
	return sum, err
}

// Settle marks a pending ledger entry completed and applies its amount to the
// owning profile balance, both inside one transaction. Settling an entry that
// is already completed is a no-op.
func (r *transactionRepository) Settle(txID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var txModel model.TransactionModel
		if err := tx.Where("id = ?", txID).First(&txModel).Error; err != nil {
			return err
		}
		if txModel.Status == string(entity.TransactionStatusCompleted) {
			return nil
		}

		err := tx.Model(&model.TransactionModel{}).
			Where("id = ?", txID).
			Update("status", string(entity.TransactionStatusCompleted)).Error
		if err != nil {
			return err
		}

		return tx.Model(&model.ProfileModel{}).
			Where("id = ?", txModel.UserID).
			Update("balance_cents", gorm.Expr("balance_cents + ?", txModel.AmountCents)).Error
	})
}
