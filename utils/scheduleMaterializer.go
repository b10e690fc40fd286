package utils

import (
	"booksly/config"
	"booksly/database"
	"booksly/models"
	"booksly/services/eventService"
	"errors"
	"log"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logMaterializer logs materializer events with timestamp
func logMaterializer(message string) {
	log.Printf("[SCHEDULE-MATERIALIZER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartScheduleMaterializer runs the reservation-schedule projection on the
// configured cron spec and once at startup.
func StartScheduleMaterializer() *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc(config.AppConfig.MaterializerSpec, func() {
		if err := MaterializeReservationSchedules(database.Database.Db, now.BeginningOfDay()); err != nil {
			logMaterializer("Run failed: " + err.Error())
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule materializer job: %v", err)
	}
	c.Start()

	go func() {
		if err := MaterializeReservationSchedules(database.Database.Db, now.BeginningOfDay()); err != nil {
			logMaterializer("Initial run failed: " + err.Error())
		}
	}()

	return c
}

// MaterializeReservationSchedules projects every employee's coming scheduling
// cycle into ReservationSchedule rows, starting at from. Days off become a
// single closed row; working days get one row per hourly slot inside the work
// window, with closing events applied before time events so write-time
// precedence matches the resolver's read-time precedence. The projection is
// idempotent per (employee, date, slot).
func MaterializeReservationSchedules(db *gorm.DB, from time.Time) error {
	var employees []models.Employee
	if err := db.Where("is_deleted = false").Find(&employees).Error; err != nil {
		return err
	}

	for _, employee := range employees {
		if err := materializeEmployee(db, &employee, from); err != nil {
			logMaterializer("Employee " + employee.Name + ": " + err.Error())
		}
	}
	return nil
}

func materializeEmployee(db *gorm.DB, employee *models.Employee, from time.Time) error {
	var schedules []models.WorkSchedule
	if err := db.Where("employee_id = ?", employee.ID).Find(&schedules).Error; err != nil {
		return err
	}
	if len(schedules) < 7 {
		logMaterializer("Skipping employee with incomplete work schedule: " + employee.Name)
		return nil
	}

	week := make(map[time.Weekday]models.WorkSchedule, 7)
	for _, schedule := range schedules {
		week[schedule.DayOfWeek] = schedule
	}

	cycle := employee.SchedulingCycle
	if cycle < 1 {
		cycle = 1
	}

	for day := 0; day < cycle; day++ {
		date := from.AddDate(0, 0, day)
		if err := materializeDay(db, employee, week[date.Weekday()], date); err != nil {
			return err
		}
	}
	return nil
}

func materializeDay(db *gorm.DB, employee *models.Employee, schedule models.WorkSchedule, date time.Time) error {
	if schedule.IsDayOff {
		if err := upsertSlot(db, employee, date, "00:00", func(slot *models.ReservationSchedule) {
			slot.IsClosed = true
			slot.IsClosingEvent = false
			slot.ClosingEventID = nil
			slot.TimeEventID = nil
		}); err != nil {
			return err
		}
		return closeStaleSlots(db, employee, date, []string{"00:00"})
	}

	start, err := ParseClock(schedule.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(schedule.EndTime)
	if err != nil {
		return err
	}

	closing, err := eventService.FindClosingEvent(db, employee.ShopID, employee.ID, date)
	if err != nil {
		return err
	}
	timeEvents, err := eventService.FindTimeEvents(db, employee.ID, date)
	if err != nil {
		return err
	}

	slotTimes := make([]string, 0, (end-start)/60+1)
	for minute := start; minute < end; minute += 60 {
		slotTime := FormatClock(minute)
		slotTimes = append(slotTimes, slotTime)
		err := upsertSlot(db, employee, date, slotTime, func(slot *models.ReservationSchedule) {
			slot.IsClosed = false
			slot.IsClosingEvent = false
			slot.ClosingEventID = nil
			slot.TimeEventID = nil

			if closing != nil && (closing.IsAllDay || ClockWithin(slotTime, closing.StartTime, closing.EndTime)) {
				slot.IsClosingEvent = true
				slot.ClosingEventID = &closing.ID
				return
			}

			for i := range timeEvents {
				if ClockWithin(slotTime, timeEvents[i].StartTime, timeEvents[i].EndTime) {
					slot.TimeEventID = &timeEvents[i].ID
					return
				}
			}
		})
		if err != nil {
			return err
		}
	}
	return closeStaleSlots(db, employee, date, slotTimes)
}

// closeStaleSlots closes the day's rows left behind by an earlier run with a
// different work window. The projection must track the current schedule: a
// weekday flipped to a day off or a shrunk window may not leave open slots.
func closeStaleSlots(db *gorm.DB, employee *models.Employee, date time.Time, slotTimes []string) error {
	query := db.Model(&models.ReservationSchedule{}).
		Where("employee_id = ? AND date = ?", employee.ID, models.DateOf(date))
	if len(slotTimes) > 0 {
		query = query.Where("start_time NOT IN ?", slotTimes)
	}
	return query.Updates(map[string]interface{}{
		"is_closed":        true,
		"is_closing_event": false,
		"closing_event_id": nil,
		"time_event_id":    nil,
	}).Error
}

func upsertSlot(db *gorm.DB, employee *models.Employee, date time.Time, slotTime string, apply func(*models.ReservationSchedule)) error {
	var slot models.ReservationSchedule
	err := db.Where("employee_id = ? AND date = ? AND start_time = ?", employee.ID, models.DateOf(date), slotTime).
		First(&slot).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	slot.ShopID = employee.ShopID
	slot.EmployeeID = employee.ID
	slot.Date = models.DateOf(date)
	slot.StartTime = slotTime
	apply(&slot)

	return db.Save(&slot).Error
}
