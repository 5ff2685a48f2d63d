package platform

import (
	"context"
	"fmt"
	"net/http"

	platformErrors "bitbucket.org/velvet/chauffeur-hub/internal/platform/errors"
	"bitbucket.org/velvet/chauffeur-hub/internal/platform/interfaces"
	platformMiddleware "bitbucket.org/velvet/chauffeur-hub/internal/platform/middleware"
	"bitbucket.org/velvet/chauffeur-hub/internal/schema"
	"bitbucket.org/velvet/chauffeur-hub/internal/tools/redisfactory"
	"bitbucket.org/velvet/chauffeur-hub/internal/tools/slowlog"
	"bitbucket.org/velvet/chauffeur-hub/internal/trafficlight/idempotency"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const PDFContentType = "application/pdf"

type Services struct {
	Reservations interfaces.Reservations
	Wizard       interfaces.WithBookingWizard
}

func RegisterRoutes(
	router gin.IRouter,
	services Services,
	redisFactory *redisfactory.Factory,
) {
	group := router.Group("/api")

	idempotent := idempotency.Middleware(idempotency.MiddlewareOptions{
		CreateManager: idempotency.NewRequestManager,
		RedisClient:   redisFactory.IdempotencyClient(),
	})

	reservations := services.Reservations

	group.POST("/quote",
		platformMiddleware.OperationLogger("quote"),
		platformMiddleware.PrepareParams(schema.QuoteRequestParams{}),
		func(ctx *gin.Context) {
			logger := ctx.MustGet("logger").(*zerolog.Logger)

			slowLog := slowlog.CreateLogger(logger)
			slowLog.Start("quote:compute")
			defer slowLog.Stop("quote:compute")

			respond(ctx, "Failed computing quote", reservations.GetQuote)
		},
	)

	group.GET("/vehicles",
		platformMiddleware.OperationLogger("vehicles"),
		platformMiddleware.PrepareParams(schema.VehiclesRequestParams{}),
		func(ctx *gin.Context) {
			respond(ctx, "Failed listing vehicles", reservations.ListVehicles)
		},
	)

	group.GET("/packages",
		platformMiddleware.OperationLogger("packages"),
		func(ctx *gin.Context) {
			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := reservations.ListPackages(ctx.Request.Context(), logger)
			if err != nil {
				platformErrors.Respond(ctx, "Failed listing packages", err)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/booking",
		platformMiddleware.OperationLogger("booking"),
		platformMiddleware.PrepareParams(schema.BookingRequestParams{}),
		idempotent,
		func(ctx *gin.Context) {
			respond(ctx, "Failed creating booking", reservations.CreateBooking)
		},
	)

	group.POST("/special",
		platformMiddleware.OperationLogger("special"),
		platformMiddleware.PrepareParams(schema.SpecialBookingRequestParams{}),
		idempotent,
		func(ctx *gin.Context) {
			respond(ctx, "Failed submitting special booking", reservations.CreateSpecialBooking)
		},
	)

	group.POST("/membership",
		platformMiddleware.OperationLogger("membership"),
		platformMiddleware.PrepareParams(schema.MembershipRequestParams{}),
		idempotent,
		func(ctx *gin.Context) {
			respond(ctx, "Failed submitting membership", reservations.CreateMembership)
		},
	)

	registerSessionRoutes(group.Group("/session"), services.Wizard)
}

func registerSessionRoutes(group *gin.RouterGroup, flow interfaces.WithBookingWizard) {
	group.Use(func(ctx *gin.Context) {
		if flow == nil {
			platformErrors.HandleError(ctx, http.StatusNotImplemented, "Booking sessions are not configured", platformErrors.ErrorServiceNotConfigured)
		}
	})

	group.POST("",
		platformMiddleware.OperationLogger("session:start"),
		func(ctx *gin.Context) {
			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := flow.Start(ctx.Request.Context(), logger)
			if err != nil {
				platformErrors.Respond(ctx, "Failed starting booking session", err)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/update",
		platformMiddleware.OperationLogger("session:update"),
		platformMiddleware.PrepareParams(schema.SessionUpdateParams{}),
		func(ctx *gin.Context) {
			respond(ctx, "Failed updating booking session", flow.Update)
		},
	)

	group.POST("/next",
		platformMiddleware.OperationLogger("session:next"),
		platformMiddleware.PrepareParams(schema.SessionTokenParams{}),
		func(ctx *gin.Context) {
			respond(ctx, "Failed advancing booking session", flow.Next)
		},
	)

	group.POST("/back",
		platformMiddleware.OperationLogger("session:back"),
		platformMiddleware.PrepareParams(schema.SessionTokenParams{}),
		func(ctx *gin.Context) {
			respond(ctx, "Failed returning to previous step", flow.Back)
		},
	)

	group.POST("/receipt",
		platformMiddleware.OperationLogger("session:receipt"),
		platformMiddleware.PrepareParams(schema.SessionTokenParams{}),
		func(ctx *gin.Context) {
			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.SessionTokenParams)
			if !ok {
				platformErrors.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			pdf, filename, err := flow.Receipt(ctx.Request.Context(), *params, logger)
			if err != nil {
				platformErrors.Respond(ctx, "Failed rendering receipt", err)
				return
			}

			ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
			ctx.Data(http.StatusOK, PDFContentType, pdf)
		},
	)
}

// respond runs an operation with the params bound by PrepareParams and writes
// its result as JSON.
func respond[P any, R any](
	ctx *gin.Context,
	message string,
	operation func(context.Context, P, *zerolog.Logger) (R, error),
) {
	params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*P)
	if !ok {
		platformErrors.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
		return
	}

	logger := ctx.MustGet("logger").(*zerolog.Logger)

	response, err := operation(ctx.Request.Context(), *params, logger)
	if err != nil {
		platformErrors.Respond(ctx, message, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
