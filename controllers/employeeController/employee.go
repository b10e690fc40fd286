package employeeController

import (
	"booksly/apperror"
	"booksly/database"
	"booksly/middleware"
	"booksly/models"
	"booksly/services/availabilityService"
	"booksly/services/calendarService"
	"booksly/services/workScheduleService"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type workScheduleDto struct {
	DayOfWeek time.Weekday `json:"dayOfWeek"`
	StartTime string       `json:"startTime"`
	EndTime   string       `json:"endTime"`
	IsDayOff  bool         `json:"isDayOff"`
}

type employeeRequest struct {
	Name            string            `json:"name"`
	SelfIntro       string            `json:"selfIntro"`
	SchedulingCycle int               `json:"schedulingCycle"`
	AssignAllMenus  bool              `json:"assignAllMenus"`
	Menus           []uint            `json:"menus"`
	WorkSchedules   []workScheduleDto `json:"workSchedules"`
}

func toScheduleModels(dtos []workScheduleDto) []models.WorkSchedule {
	entries := make([]models.WorkSchedule, 0, len(dtos))
	for _, dto := range dtos {
		entries = append(entries, models.WorkSchedule{
			DayOfWeek: dto.DayOfWeek,
			StartTime: dto.StartTime,
			EndTime:   dto.EndTime,
			IsDayOff:  dto.IsDayOff,
		})
	}
	return entries
}

func findOwnedShop(db *gorm.DB, shopID int, ownerID uint) (*models.Shop, error) {
	var shop models.Shop
	if err := db.First(&shop, "id = ? AND is_deleted = false", shopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrShopNotFound
		}
		return nil, err
	}
	if shop.OwnerID != ownerID {
		return nil, apperror.ErrShopNotOwned
	}
	return &shop, nil
}

func menusForAssignment(db *gorm.DB, shop *models.Shop, reqData *employeeRequest) ([]uint, error) {
	if reqData.AssignAllMenus {
		var menuIDs []uint
		if err := db.Model(&models.Menu{}).
			Where("shop_id = ? AND is_deleted = false", shop.ID).
			Pluck("id", &menuIDs).Error; err != nil {
			return nil, err
		}
		return menuIDs, nil
	}

	var count int64
	if err := db.Model(&models.Menu{}).
		Where("id IN ? AND shop_id = ? AND is_deleted = false", reqData.Menus, shop.ID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if int(count) != len(reqData.Menus) {
		return nil, apperror.ErrMenuNotFound
	}
	return reqData.Menus, nil
}

// CreateEmployee creates the employee, its menu assignment and its 7-entry
// work schedule atomically.
func CreateEmployee(c *fiber.Ctx) error {
	ownerID := c.Locals("ownerId").(uint)

	shopID, err := c.ParamsInt("shopId")
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"shopId": "Invalid shop id!"})
	}

	var reqData employeeRequest
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"body": "Invalid request body!"})
	}

	db := database.Database.Db

	shop, err := findOwnedShop(db, shopID, ownerID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var existing models.Employee
	if err := db.Where("shop_id = ? AND name = ? AND is_deleted = false", shop.ID, reqData.Name).
		First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, apperror.ErrEmployeeNameDuplicate)
	}

	entries := toScheduleModels(reqData.WorkSchedules)
	if err := workScheduleService.ValidateWeek(entries); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	menuIDs, err := menusForAssignment(db, shop, &reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	employee := models.Employee{
		ShopID:          shop.ID,
		Name:            reqData.Name,
		SelfIntro:       reqData.SelfIntro,
		SchedulingCycle: reqData.SchedulingCycle,
	}
	if employee.SchedulingCycle < 1 {
		employee.SchedulingCycle = 14
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&employee).Error; err != nil {
			return err
		}
		for _, menuID := range menuIDs {
			if err := tx.Create(&models.EmployeeMenu{EmployeeID: employee.ID, MenuID: menuID}).Error; err != nil {
				return err
			}
		}
		return workScheduleService.ReplaceAll(tx, employee.ID, entries)
	})
	if err != nil {
		log.Printf("Error creating employee: %v", err)
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, employee)
}

// UpdateEmployee replaces the employee's menus and work schedules wholesale.
func UpdateEmployee(c *fiber.Ctx) error {
	ownerID := c.Locals("ownerId").(uint)

	employeeID, err := c.ParamsInt("employeeId")
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"employeeId": "Invalid employee id!"})
	}

	var reqData employeeRequest
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"body": "Invalid request body!"})
	}

	db := database.Database.Db

	var employee models.Employee
	if err := db.First(&employee, "id = ? AND is_deleted = false", employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, apperror.ErrEmployeeNotFound)
		}
		return middleware.ErrorResponse(c, err)
	}

	shop, err := findOwnedShop(db, int(employee.ShopID), ownerID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	entries := toScheduleModels(reqData.WorkSchedules)
	if err := workScheduleService.ValidateWeek(entries); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	menuIDs, err := menusForAssignment(db, shop, &reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("employee_id = ?", employee.ID).Delete(&models.EmployeeMenu{}).Error; err != nil {
			return err
		}
		for _, menuID := range menuIDs {
			if err := tx.Create(&models.EmployeeMenu{EmployeeID: employee.ID, MenuID: menuID}).Error; err != nil {
				return err
			}
		}

		if err := workScheduleService.ReplaceAll(tx, employee.ID, entries); err != nil {
			return err
		}

		employee.Name = reqData.Name
		employee.SelfIntro = reqData.SelfIntro
		if reqData.SchedulingCycle >= 1 {
			employee.SchedulingCycle = reqData.SchedulingCycle
		}
		return tx.Save(&employee).Error
	})
	if err != nil {
		log.Printf("Error updating employee: %v", err)
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, employee)
}

// DeleteEmployee removes the employee and its owned rows.
func DeleteEmployee(c *fiber.Ctx) error {
	ownerID := c.Locals("ownerId").(uint)

	employeeID, err := c.ParamsInt("employeeId")
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"employeeId": "Invalid employee id!"})
	}

	db := database.Database.Db

	var employee models.Employee
	if err := db.First(&employee, "id = ? AND is_deleted = false", employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, apperror.ErrEmployeeNotFound)
		}
		return middleware.ErrorResponse(c, err)
	}

	if _, err := findOwnedShop(db, int(employee.ShopID), ownerID); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("employee_id = ?", employee.ID).Delete(&models.EmployeeMenu{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("employee_id = ?", employee.ID).Delete(&models.WorkSchedule{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("employee_id = ?", employee.ID).Delete(&models.ReservationSchedule{}).Error; err != nil {
			return err
		}
		employee.IsDeleted = true
		return tx.Save(&employee).Error
	})
	if err != nil {
		log.Printf("Error deleting employee: %v", err)
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"id": employee.ID})
}

// GetCalendar returns the employee's workdays/holidays over the scheduling
// cycle.
func GetCalendar(c *fiber.Ctx) error {
	shopID, err := c.ParamsInt("shopId")
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"shopId": "Invalid shop id!"})
	}
	employeeID, err := c.ParamsInt("employeeId")
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"employeeId": "Invalid employee id!"})
	}

	calendar, err := calendarService.GetCalendarDates(database.Database.Db, uint(shopID), uint(employeeID))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"employeeId": calendar.EmployeeID,
		"workdays":   formatDates(calendar.Workdays),
		"holidays":   formatDates(calendar.Holidays),
	})
}

func formatDates(dates []time.Time) []string {
	formatted := make([]string, 0, len(dates))
	for _, date := range dates {
		formatted = append(formatted, date.Format("2006-01-02"))
	}
	return formatted
}

// CheckEventStatus reports whether a slot carries any bookable event.
func CheckEventStatus(c *fiber.Ctx) error {
	shopID, employeeID, scheduleID, err := slotParams(c)
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"params": "Invalid path parameters!"})
	}

	hasEvent, err := availabilityService.HasEvent(database.Database.Db, shopID, employeeID, scheduleID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"hasEvent": hasEvent})
}

// GetEventMenus resolves a slot's effective status and its eligible menus.
func GetEventMenus(c *fiber.Ctx) error {
	shopID, employeeID, scheduleID, err := slotParams(c)
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"params": "Invalid path parameters!"})
	}

	resolved, err := availabilityService.ResolveSlot(database.Database.Db, shopID, employeeID, scheduleID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, resolved)
}

func slotParams(c *fiber.Ctx) (uint, uint, uint, error) {
	shopID, err := c.ParamsInt("shopId")
	if err != nil {
		return 0, 0, 0, err
	}
	employeeID, err := c.ParamsInt("employeeId")
	if err != nil {
		return 0, 0, 0, err
	}
	scheduleID, err := c.ParamsInt("scheduleId")
	if err != nil {
		return 0, 0, 0, err
	}
	return uint(shopID), uint(employeeID), uint(scheduleID), nil
}
