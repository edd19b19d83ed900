package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-address-service/internal/repo"
	"user-address-service/internal/transport/http/handler"
	mdw "user-address-service/internal/transport/http/middleware"
	resp "user-address-service/internal/transport/http/response"
)

// NewAPIEngine assembles the engine. The DB handle is injected here and
// threaded through the repositories; no package holds it globally.
func NewAPIEngine(l *zap.Logger, db *gorm.DB) *gin.Engine {
	r := gin.New()
	reg := prometheus.NewRegistry()

	r.Use(
		// outer net: catches panics escaping the envelope recovery below
		ginzap.RecoveryWithZap(l, true),
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		mdw.Metrics(reg),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, resp.Message("Welcome to the User Address API"))
	})
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	users := repo.NewUserRepo(db)
	addresses := repo.NewAddressRepo(db)

	handler.NewUserHandler(users, l).Register(r)
	handler.NewAddressHandler(addresses, users, l).Register(r)

	return r
}
