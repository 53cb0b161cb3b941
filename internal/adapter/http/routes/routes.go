package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "github.com/UnicloudAfrica/uniclo-sub012/docs"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/adapter/http/handlers"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/logging"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/metrics"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the use cases the HTTP layer is built on.
type Dependencies struct {
	Sessions   usecase.IOrderSessionUseCase
	Reconciler usecase.IProvisioningReconciler
	Bus        interfaces.IEventBus
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	sessionHandler := handlers.NewOrderSessionHandler(deps.Sessions)
	provisioningHandler := handlers.NewProvisioningHandler(deps.Reconciler, deps.Bus)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, sessionHandler)
	addProvisioningRoutes(v1, provisioningHandler)
	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, port int, deps Dependencies) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.L().Info("[http][server] listening", zap.Int("port", port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logging.L().Info("[http][server] shutting down")
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.L().Error("[http][server] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
