package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dkwak/sleepcoach/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	seededFatigueDays = 14
	demoPassword      = "demo-password"
)

// Run seeds the database with a demo account, commitments, and fatigue
// history. Safe to call multiple times.
func Run(db *gorm.DB, loc *time.Location) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.ScheduleEvent{},
		&domain.FatigueLog{},
		&domain.SleepLog{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := domain.User{
		Username:     "demo",
		PasswordHash: string(hash),
		Name:         "Demo",
		Timezone:     loc.String(),
	}
	if err := db.Where("username = ?", user.Username).FirstOrCreate(&user).Error; err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}

	if err := seedSchedule(db, user, loc); err != nil {
		return err
	}
	return seedFatigue(db, user, loc)
}

func seedSchedule(db *gorm.DB, user domain.User, loc *time.Location) error {
	now := time.Now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	events := []struct {
		title    string
		dayShift int
		startHH  int
		startMM  int
		minutes  int
	}{
		{"Morning standup", 1, 9, 30, 30},
		{"Project review", 1, 14, 0, 60},
		{"Evening workout", 0, 19, 0, 90},
	}
	for _, e := range events {
		start := today.AddDate(0, 0, e.dayShift).
			Add(time.Duration(e.startHH)*time.Hour + time.Duration(e.startMM)*time.Minute)
		end := start.Add(time.Duration(e.minutes) * time.Minute)
		event := domain.ScheduleEvent{
			UserID:  user.ID,
			Title:   e.title,
			StartAt: start,
			EndAt:   &end,
		}
		err := db.Where("user_id = ? AND title = ? AND start_at = ?", user.ID, e.title, start).
			FirstOrCreate(&event).Error
		if err != nil {
			return fmt.Errorf("failed to create event %q: %w", e.title, err)
		}
	}
	return nil
}

func seedFatigue(db *gorm.DB, user domain.User, loc *time.Location) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().In(loc)
	for i := 0; i < seededFatigueDays; i++ {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		log := domain.FatigueLog{
			UserID: user.ID,
			Date:   date,
			Score:  30 + rng.Intn(51),
		}
		err := db.Where("user_id = ? AND date = ?", user.ID, date).
			FirstOrCreate(&log).Error
		if err != nil {
			return fmt.Errorf("failed to create fatigue log for %s: %w", date, err)
		}
	}
	return nil
}
