package store

import (
	"context"

	"jobboard/internal/domain"

	"gorm.io/gorm"
)

// DeleteUserData removes the user and everything hanging off the ownership
// graph (companies → listings → applications, the user's own applications,
// credentials, sessions, activation tokens) in one transaction, and returns
// counts of affected rows captured before deletion.
func (s *Store) DeleteUserData(ctx context.Context, userID domain.UserID) (map[string]int64, error) {
	deleted := map[string]int64{}

	err := s.WithTx(ctx, func(tx *Store) error {
		db := tx.DB.WithContext(ctx)

		count := func(label string, query *gorm.DB) error {
			var total int64
			if err := query.Count(&total).Error; err != nil {
				return err
			}
			deleted[label] = total
			return nil
		}

		companyIDs := db.Model(&domain.Company{}).Select("id").Where("owner_id = ?", userID)
		listingIDs := db.Model(&domain.Listing{}).Select("id").Where("company_id IN (?)", companyIDs)

		if err := count("users", db.Model(&domain.User{}).Where("id = ?", userID)); err != nil {
			return err
		}
		if err := count("companies", db.Model(&domain.Company{}).Where("owner_id = ?", userID)); err != nil {
			return err
		}
		if err := count("listings", db.Model(&domain.Listing{}).Where("company_id IN (?)", companyIDs)); err != nil {
			return err
		}
		if err := count("applications", db.Model(&domain.Application{}).
			Where("listing_id IN (?) OR candidate_id = ?", listingIDs, userID)); err != nil {
			return err
		}
		if err := count("activationTokens", db.Model(&domain.ActivationToken{}).Where("user_id = ?", userID)); err != nil {
			return err
		}
		if err := count("passwordCredentials", db.Model(&domain.PasswordCredential{}).Where("user_id = ?", userID)); err != nil {
			return err
		}
		if err := count("sessions", db.Model(&domain.Session{}).Where("user_id = ?", userID)); err != nil {
			return err
		}

		if deleted["users"] == 0 {
			return ErrRecordNotFound
		}

		// Leaves first so the subqueries still resolve.
		if err := db.Where("listing_id IN (?) OR candidate_id = ?", listingIDs, userID).
			Delete(&domain.Application{}).Error; err != nil {
			return err
		}
		if err := db.Where("company_id IN (?)", companyIDs).Delete(&domain.Listing{}).Error; err != nil {
			return err
		}
		if err := db.Where("owner_id = ?", userID).Delete(&domain.Company{}).Error; err != nil {
			return err
		}
		if err := db.Where("user_id = ?", userID).Delete(&domain.ActivationToken{}).Error; err != nil {
			return err
		}
		if err := db.Where("user_id = ?", userID).Delete(&domain.PasswordCredential{}).Error; err != nil {
			return err
		}
		if err := db.Where("user_id = ?", userID).Delete(&domain.Session{}).Error; err != nil {
			return err
		}
		return db.Where("id = ?", userID).Delete(&domain.User{}).Error
	})

	return deleted, err
}
