package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/spa-scheduler/internal/audit"
	"github.com/BruksfildServices01/spa-scheduler/internal/config"
	cal "github.com/BruksfildServices01/spa-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/spa-scheduler/internal/handlers"
	"github.com/BruksfildServices01/spa-scheduler/internal/infra/lock"
	infraRepo "github.com/BruksfildServices01/spa-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/spa-scheduler/internal/middleware"
	"github.com/BruksfildServices01/spa-scheduler/internal/timezone"
	ucBooking "github.com/BruksfildServices01/spa-scheduler/internal/usecase/booking"
	ucCalendar "github.com/BruksfildServices01/spa-scheduler/internal/usecase/calendar"
)

type Deps struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Config *config.Config
	Log    *zap.Logger
	Audit  *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(d.Config.Timezone)
	clock := timezone.SystemClock{Loc: loc}
	grid := cal.Grid{
		StartHour: d.Config.CalendarStartHour,
		EndHour:   d.Config.CalendarEndHour,
	}

	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	locker := lock.NewRedisLocker(d.Redis, d.Config.BookingLockTTL, d.Log)

	// ======================================================
	// USE CASES - CALENDAR
	// ======================================================
	getWeekUC := ucCalendar.NewGetWeek(bookingRepo, clock, loc, d.Log)
	resolveSlotUC := ucCalendar.NewResolveSlot(bookingRepo, loc)
	getAvailabilityUC := ucCalendar.NewGetAvailability(bookingRepo, clock, loc)

	// ======================================================
	// USE CASES - BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		locker,
		d.Audit,
		clock,
		loc,
		grid,
		d.Log,
	)
	changeStatusUC := ucBooking.NewChangeBookingStatus(bookingRepo, d.Audit, clock)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	calendarHandler := handlers.NewCalendarHandler(
		getWeekUC,
		resolveSlotUC,
		getAvailabilityUC,
		grid,
		loc,
		clock,
	)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		changeStatusUC,
		getBookingUC,
	)
	blockHandler := handlers.NewBlockHandler(d.DB, d.Audit)
	breakHandler := handlers.NewBreakHandler(d.DB, d.Audit)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, loc)

	// ======================================================
	// API (JSON)
	// ======================================================
	writeLimit := middleware.RateLimit(d.Log, d.Config.WriteRatePerMinute, d.Config.WriteRateBurst)

	api := r.Group("/api")
	{
		// ------------------------------
		// CALENDAR
		// ------------------------------
		api.GET("/calendar/grid", calendarHandler.Grid)
		api.GET("/calendar/week", calendarHandler.Week)
		api.POST("/calendar/slot-click", calendarHandler.SlotClick)

		// ------------------------------
		// PROFESSIONALS
		// ------------------------------
		api.GET("/professionals/:id/availability", calendarHandler.Availability)

		api.GET("/professionals/:id/blocks", blockHandler.List)
		api.POST("/professionals/:id/blocks", writeLimit, blockHandler.Create)
		api.DELETE("/blocks/:id", blockHandler.Delete)

		api.GET("/professionals/:id/breaks", breakHandler.List)
		api.POST("/professionals/:id/breaks", writeLimit, breakHandler.Create)
		api.DELETE("/breaks/:id", breakHandler.Delete)

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		api.POST("/bookings", writeLimit, bookingHandler.Create)
		api.GET("/bookings/:id", bookingHandler.Get)
		api.PATCH("/bookings/:id/status", writeLimit, bookingHandler.ChangeStatus)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}

