package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/Kedza01/Test-AI/internal/models"
)

// ErrUserNotFound distinguishes "no quota row for this user" from a
// storage failure, so callers can treat the former as fresh state and
// abort on the latter.
var ErrUserNotFound = errors.New("user not found")

// ErrQuotaExhausted is returned by Increment when the conditional
// update finds no headroom left for the day. Callers that already
// passed CheckAndReserve can still see this: it is the race-loser
// outcome when two concurrent requests check together.
var ErrQuotaExhausted = errors.New("daily prediction quota exhausted")

// DefaultDailyQuota applies when the quota setting row is absent.
const DefaultDailyQuota = 10

// UnlimitedRemaining is the sentinel remaining count for exempt roles.
const UnlimitedRemaining = -1

const quotaDateLayout = "2006-01-02"

// QuotaService is the per-user daily prediction gate. CheckAndReserve
// and Increment stay separate operations so callers can deny cheaply
// before any model work, but Increment is the authoritative gate: its
// update is conditional on headroom re-read in the same transaction,
// so two requests that both passed the advisory check cannot both
// land an increment.
type QuotaService interface {
	// CheckAndReserve reports whether the user may run one more
	// prediction today and how many remain. Exempt roles always get
	// (true, UnlimitedRemaining) without touching storage.
	CheckAndReserve(ctx context.Context, userID uint, role models.Role) (allowed bool, remaining int, err error)

	// Increment records one produced prediction. For gated roles the
	// write only lands while the count is under the quota; a loser of
	// a concurrent race gets ErrQuotaExhausted.
	Increment(ctx context.Context, userID uint, role models.Role) error

	// DailyQuota reads the configured Standard User quota.
	DailyQuota(ctx context.Context) (int, error)
}

type quotaService struct {
	db  *gorm.DB
	now func() time.Time // injectable for day-rollover tests
}

func NewQuotaService(db *gorm.DB) QuotaService {
	return &quotaService{db: db, now: time.Now}
}

func (s *quotaService) CheckAndReserve(ctx context.Context, userID uint, role models.Role) (bool, int, error) {
	if role.QuotaExempt() {
		return true, UnlimitedRemaining, nil
	}

	var remaining int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quota, err := readDailyQuota(tx)
		if err != nil {
			return err
		}

		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		today := s.now().Format(quotaDateLayout)
		count := user.DailyPredictionCount
		if user.LastPredictionDate != today {
			// day rollover: the stored count belongs to an earlier
			// day, so it reads as zero. Persisting the reset is not
			// an increment.
			count = 0
			err := tx.Model(&models.User{}).Where("id = ?", userID).
				Updates(map[string]any{
					"daily_prediction_count": 0,
					"last_prediction_date":   today,
				}).Error
			if err != nil {
				return err
			}
		}

		remaining = quota - count
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return remaining > 0, remaining, nil
}

func (s *quotaService) Increment(ctx context.Context, userID uint, role models.Role) error {
	today := s.now().Format(quotaDateLayout)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if role.QuotaExempt() {
			res := tx.Model(&models.User{}).Where("id = ?", userID).
				Updates(map[string]any{
					"daily_prediction_count": gorm.Expr("daily_prediction_count + 1"),
					"last_prediction_date":   today,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrUserNotFound
			}
			return nil
		}

		quota, err := readDailyQuota(tx)
		if err != nil {
			return err
		}

		// One conditional statement: a stale stored day restarts the
		// count at 1, a current day increments under the quota. SET
		// expressions read the pre-update row, so clause order does
		// not matter.
		res := tx.Model(&models.User{}).
			Where("id = ? AND ((last_prediction_date <> ? AND ? > 0) OR (last_prediction_date = ? AND daily_prediction_count < ?))",
				userID, today, quota, today, quota).
			Updates(map[string]any{
				"daily_prediction_count": gorm.Expr("CASE WHEN last_prediction_date = ? THEN daily_prediction_count + 1 ELSE 1 END", today),
				"last_prediction_date":   today,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrUserNotFound
			}
			return ErrQuotaExhausted
		}
		return nil
	})
}

func (s *quotaService) DailyQuota(ctx context.Context) (int, error) {
	var quota int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q, err := readDailyQuota(tx)
		quota = q
		return err
	})
	return quota, err
}

// readDailyQuota loads the quota setting, falling back to the default
// when the settings row was never seeded.
func readDailyQuota(tx *gorm.DB) (int, error) {
	var setting models.SystemSetting
	err := tx.Where("setting_key = ?", models.SettingDailyQuota).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultDailyQuota, nil
	}
	if err != nil {
		return 0, err
	}
	quota, err := strconv.Atoi(setting.Value)
	if err != nil || quota < 0 {
		return DefaultDailyQuota, nil
	}
	return quota, nil
}
