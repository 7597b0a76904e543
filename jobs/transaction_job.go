package jobs

import (
	"log"
	"time"

	"github.com/careerbridge/backend/database"
	"github.com/careerbridge/backend/models"
)

const pendingTransactionTTL = 30 * time.Minute

// FailStalePendingTransactions sweeps transactions stuck in Pending past the
// TTL and marks them Failed. Settlement is synchronous, so a row still
// Pending after the window belongs to a booking flow that died mid-sequence.
func FailStalePendingTransactions() {
	cutoff := time.Now().Add(-pendingTransactionTTL)

	result := database.DB.Model(&models.Transaction{}).
		Where("status = ? AND created_at < ?", models.TxnPending, cutoff).
		Update("status", models.TxnFailed)

	if result.Error != nil {
		log.Printf("🔥 Failed to sweep stale pending transactions: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("✅ Marked %d stale pending transactions as failed.", result.RowsAffected)
	}
}
