package route

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/whop-relay/internal/adapter/api/dto"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Version é a versão informada pelo health check
const Version = "1.0.0"

// SetupHealthRoutes configura o health check e a documentação Swagger
func SetupHealthRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status:  "ok",
			Version: Version,
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
