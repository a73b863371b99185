package http

import (
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"

	customerusecases "gestao/internal/application/customer/usecases"
	planusecases "gestao/internal/application/plan/usecases"
	subscriptionusecases "gestao/internal/application/subscription/usecases"
	"gestao/internal/infrastructure/repository"
	"gestao/internal/interfaces/http/handlers"
	"gestao/internal/interfaces/http/middleware"
	"gestao/internal/interfaces/http/routes"
	"gestao/internal/shared/biztime"
	"gestao/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the HTTP router. mode is the gin mode (debug, release,
// test).
func NewRouter(db *gorm.DB, mode string) *Router {
	gin.SetMode(mode)

	log := logger.NewLogger()

	subscriptionRepo := repository.NewSubscriptionRepository(db, log.Named("subscription-repo"))
	planRepo := repository.NewPlanRepository(db, log.Named("plan-repo"))
	customerRepo := repository.NewCustomerRepository(db, log.Named("customer-repo"))
	paymentRepo := repository.NewPaymentRepository(db, log.Named("payment-repo"))

	now := biztime.NowUTC

	createSubscriptionUC := subscriptionusecases.NewCreateSubscriptionUseCase(subscriptionRepo, planRepo, customerRepo, now, log)
	listSubscriptionsByTypeUC := subscriptionusecases.NewListSubscriptionsByTypeUseCase(subscriptionRepo, now, log)
	listCustomerSubscriptionsUC := subscriptionusecases.NewListCustomerSubscriptionsUseCase(subscriptionRepo, customerRepo, now, log)
	listPlanSubscriptionsUC := subscriptionusecases.NewListPlanSubscriptionsUseCase(subscriptionRepo, planRepo, now, log)
	registerPaymentUC := subscriptionusecases.NewRegisterPaymentUseCase(subscriptionRepo, paymentRepo, now, log)

	listPlansUC := planusecases.NewListPlansUseCase(planRepo, log)
	updatePlanCostUC := planusecases.NewUpdatePlanCostUseCase(planRepo, now, log)

	listCustomersUC := customerusecases.NewListCustomersUseCase(customerRepo, log)

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log.Named("http")))

	routes.SetupGestaoRoutes(engine, &routes.GestaoRouteConfig{
		CustomerHandler: handlers.NewCustomerHandler(listCustomersUC),
		PlanHandler:     handlers.NewPlanHandler(listPlansUC, updatePlanCostUC),
		SubscriptionHandler: handlers.NewSubscriptionHandler(
			createSubscriptionUC,
			listSubscriptionsByTypeUC,
			listCustomerSubscriptionsUC,
			listPlanSubscriptionsUC,
			registerPaymentUC,
			now,
		),
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
