package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hypha-Media-UK/rotascope2/config"
	"github.com/Hypha-Media-UK/rotascope2/internal/api/handler"
	"github.com/Hypha-Media-UK/rotascope2/internal/api/middleware"
	"github.com/Hypha-Media-UK/rotascope2/pkg/redis"
)

const (
	maxBodyBytes    = 1 << 20 // 1MB
	rateLimitPerIP  = 120
	rateLimitWindow = time.Minute
)

// Setup builds and returns the Gin engine with all routes registered.
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))
	r.Use(middleware.RateLimit(rdb, rateLimitPerIP, rateLimitWindow))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		departments := v1.Group("/departments")
		{
			departments.GET("", h.Department.ListDepartments)
			departments.GET("/:id", h.Department.GetDepartment)
			departments.POST("", h.Department.CreateDepartment)
			departments.PUT("/:id", h.Department.UpdateDepartment)
			departments.DELETE("/:id", h.Department.DeleteDepartment)
		}

		services := v1.Group("/services")
		{
			services.GET("", h.Service.ListServices)
			services.GET("/:id", h.Service.GetService)
			services.POST("", h.Service.CreateService)
			services.PUT("/:id", h.Service.UpdateService)
			services.DELETE("/:id", h.Service.DeleteService)
		}

		shiftTypes := v1.Group("/shift-types")
		{
			shiftTypes.GET("", h.Shift.ListShiftTypes)
			shiftTypes.GET("/:id", h.Shift.GetShiftType)
			shiftTypes.POST("", h.Shift.CreateShiftType)
			shiftTypes.PUT("/:id", h.Shift.UpdateShiftType)
			shiftTypes.DELETE("/:id", h.Shift.DeleteShiftType)
		}

		shifts := v1.Group("/shifts")
		{
			shifts.GET("", h.Shift.ListShifts)
			shifts.GET("/active", h.Shift.ListActiveShifts)
			shifts.GET("/:id", h.Shift.GetShift)
			shifts.POST("", h.Shift.CreateShift)
			shifts.PUT("/:id", h.Shift.UpdateShift)
			shifts.DELETE("/:id", h.Shift.DeleteShift)
		}

		porters := v1.Group("/porters")
		{
			porters.GET("", h.Porter.ListPorters)
			porters.GET("/:id", h.Porter.GetPorter)
			porters.POST("", h.Porter.CreatePorter)
			porters.PUT("/:id", h.Porter.UpdatePorter)
			porters.DELETE("/:id", h.Porter.DeletePorter)
			porters.PUT("/:id/temp-assignment", h.Porter.SetTempAssignment)
			porters.DELETE("/:id/temp-assignment", h.Porter.ClearTempAssignment)
			porters.PUT("/:id/hours", h.Porter.ReplaceHours)
			porters.GET("/:id/availability", h.Schedule.GetPorterAvailability)
		}

		schedule := v1.Group("/schedule")
		{
			schedule.GET("", h.Schedule.GetSchedule)
			schedule.POST("/freeze", h.Schedule.FreezeSchedule)
			schedule.GET("/frozen", h.Schedule.GetFrozenSchedule)
			schedule.GET("/frozen/assignments", h.Schedule.GetFrozenAssignments)
			schedule.GET("/freeze-status", h.Schedule.GetFreezeStatus)
		}

		v1.GET("/availability", h.Schedule.ListAvailability)

		export := v1.Group("/export")
		{
			export.GET("/day-sheet", h.Export.ExportDaySheet)
			export.GET("/porters/:id/rota", h.Export.ExportPorterRota)
		}
	}

	return r
}
