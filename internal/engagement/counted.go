package engagement

import "gorm.io/gorm"

// The like/nomination/vote/interest tables all follow the same shape: an
// association row that is unique per (identity, target), plus a
// denormalized counter on the target row. The helpers below are the
// single implementation of that pattern; every engagement operation
// routes its row write and counter bump through them inside one
// transaction, so the pair can never be observed half-applied.

// insertCounted inserts the association row and bumps the named counter
// columns on the target by one. A uniqueness violation on the insert is
// surfaced as dup=true with no counter change: the store constraint,
// not the caller's existence check, is the final arbiter under races.
func insertCounted(tx *gorm.DB, row any, target any, targetID uint, columns ...string) (dup bool, err error) {
	if err := tx.Create(row).Error; err != nil {
		if isDuplicate(err) {
			return true, nil
		}
		return false, err
	}
	return false, adjustCounters(tx, target, targetID, "+", columns...)
}

// deleteCounted removes the association row and decrements the counters.
// deleted=false means there was no row to remove (and the counters were
// left alone).
func deleteCounted(tx *gorm.DB, row any, target any, targetID uint, columns ...string) (deleted bool, err error) {
	res := tx.Delete(row)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, adjustCounters(tx, target, targetID, "-", columns...)
}

func adjustCounters(tx *gorm.DB, target any, targetID uint, op string, columns ...string) error {
	updates := make(map[string]any, len(columns))
	for _, column := range columns {
		updates[column] = gorm.Expr(column + " " + op + " 1")
	}
	return tx.Model(target).Where("id = ?", targetID).UpdateColumns(updates).Error
}
