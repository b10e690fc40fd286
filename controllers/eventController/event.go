package eventController

import (
	"booksly/database"
	"booksly/middleware"
	"booksly/services/eventService"
	"time"

	"github.com/gofiber/fiber/v2"
)

type timeEventRequest struct {
	ShopID         uint     `json:"shopId"`
	Title          string   `json:"title"`
	DiscountRate   int      `json:"discountRate"`
	RecurrenceKind string   `json:"recurrenceKind"`
	Weekdays       []int    `json:"weekdays"`
	Dates          []string `json:"dates"` // "2006-01-02"
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	Menus          []uint   `json:"menus"`
	Employees      []uint   `json:"employees"`
}

func CreateTimeEvent(c *fiber.Ctx) error {
	ownerID := c.Locals("ownerId").(uint)

	var reqData timeEventRequest
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"body": "Invalid request body!"})
	}

	dates := make([]time.Time, 0, len(reqData.Dates))
	for _, raw := range reqData.Dates {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"dates": "Dates must be formatted YYYY-MM-DD!"})
		}
		dates = append(dates, date)
	}

	weekdays := make([]time.Weekday, 0, len(reqData.Weekdays))
	for _, weekday := range reqData.Weekdays {
		weekdays = append(weekdays, time.Weekday(weekday))
	}

	event, err := eventService.CreateTimeEvent(database.Database.Db, ownerID, eventService.CreateTimeEventsInput{
		ShopID:         reqData.ShopID,
		Title:          reqData.Title,
		DiscountRate:   reqData.DiscountRate,
		RecurrenceKind: reqData.RecurrenceKind,
		Weekdays:       weekdays,
		Dates:          dates,
		StartTime:      reqData.StartTime,
		EndTime:        reqData.EndTime,
		MenuIDs:        reqData.Menus,
		EmployeeIDs:    reqData.Employees,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, event)
}

func GetTimeEvents(c *fiber.Ctx) error {
	ownerID := c.Locals("ownerId").(uint)

	shopID := c.QueryInt("shop")
	employeeID := c.QueryInt("employee")
	if shopID == 0 || employeeID == 0 {
		return middleware.ValidationErrorResponse(c, map[string]string{"query": "shop and employee query parameters are required!"})
	}

	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, parseErr := time.Parse("2006-01-02", raw)
		if parseErr != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"date": "Date must be formatted YYYY-MM-DD!"})
		}
		date = &parsed
	}

	events, err := eventService.GetTimeEvents(database.Database.Db, uint(shopID), uint(employeeID), ownerID, date)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, events)
}

type closingEventRequest struct {
	ShopID     uint   `json:"shopId"`
	EmployeeID *uint  `json:"employeeId"`
	Date       string `json:"date"`
	IsAllDay   bool   `json:"isAllDay"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Menus      []uint `json:"menus"`
}

func CreateClosingEvent(c *fiber.Ctx) error {
	ownerID := c.Locals("ownerId").(uint)

	var reqData closingEventRequest
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"body": "Invalid request body!"})
	}

	date, err := time.Parse("2006-01-02", reqData.Date)
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"date": "Date must be formatted YYYY-MM-DD!"})
	}

	event, err := eventService.CreateClosingEvent(database.Database.Db, ownerID, eventService.CreateClosingEventInput{
		ShopID:     reqData.ShopID,
		EmployeeID: reqData.EmployeeID,
		Date:       date,
		IsAllDay:   reqData.IsAllDay,
		StartTime:  reqData.StartTime,
		EndTime:    reqData.EndTime,
		MenuIDs:    reqData.Menus,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, event)
}

func GetClosingEvents(c *fiber.Ctx) error {
	ownerID := c.Locals("ownerId").(uint)

	shopID := c.QueryInt("shop")
	if shopID == 0 {
		return middleware.ValidationErrorResponse(c, map[string]string{"query": "shop query parameter is required!"})
	}

	events, err := eventService.GetClosingEvents(database.Database.Db, uint(shopID), ownerID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, events)
}
