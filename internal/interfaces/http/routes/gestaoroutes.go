package routes

import (
	"github.com/gin-gonic/gin"

	"gestao/internal/interfaces/http/handlers"
)

// GestaoRouteConfig holds dependencies for the management routes.
type GestaoRouteConfig struct {
	CustomerHandler     *handlers.CustomerHandler
	PlanHandler         *handlers.PlanHandler
	SubscriptionHandler *handlers.SubscriptionHandler
}

// SetupGestaoRoutes configures the subscription management routes.
func SetupGestaoRoutes(engine *gin.Engine, cfg *GestaoRouteConfig) {
	gestao := engine.Group("/gestao")
	{
		gestao.GET("/clientes", cfg.CustomerHandler.ListCustomers)

		gestao.GET("/planos", cfg.PlanHandler.ListPlans)
		gestao.PATCH("/planos/:idPlano", cfg.PlanHandler.UpdatePlanCost)

		gestao.POST("/assinaturas", cfg.SubscriptionHandler.CreateSubscription)
		gestao.GET("/assinaturas/:tipo", cfg.SubscriptionHandler.ListSubscriptionsByType)
		gestao.GET("/assinaturascliente/:codcli", cfg.SubscriptionHandler.ListCustomerSubscriptions)
		gestao.GET("/assinaturasplano/:codplano", cfg.SubscriptionHandler.ListPlanSubscriptions)

		gestao.POST("/pagamentos", cfg.SubscriptionHandler.RegisterPayment)
	}
}
