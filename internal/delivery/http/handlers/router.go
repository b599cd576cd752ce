package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/inflink/inflink-escrow-service/internal/usecase"
	escrowusecase "github.com/inflink/inflink-escrow-service/internal/usecase/escrow"
)

func NewRouter(
	contractUsecase usecase.ContractUsecase,
	escrowUsecase escrowusecase.EscrowUsecase,
	negotiationUsecase usecase.NegotiationUsecase,
) *gin.Engine {
	router := gin.Default()

	contractHandler := NewContractHandler(contractUsecase)
	escrowHandler := NewEscrowHandler(escrowUsecase)
	chatHandler := NewChatHandler(negotiationUsecase)

	contracts := router.Group("/contracts")
	{
		contracts.POST("", contractHandler.Propose)
		contracts.GET("", contractHandler.ListByParty)
		contracts.GET("/:id", contractHandler.Get)
		contracts.POST("/:id/respond", contractHandler.Respond)
		contracts.POST("/:id/complete", contractHandler.Complete)
	}

	escrows := router.Group("/escrows")
	{
		escrows.POST("", escrowHandler.Create)
		escrows.GET("", escrowHandler.ListByParty)
		escrows.GET("/:id", escrowHandler.Get)
		escrows.GET("/:id/progress", escrowHandler.Progress)
		escrows.POST("/:id/advance", escrowHandler.Advance)
		escrows.POST("/:id/milestones/:milestoneId/start", escrowHandler.StartMilestone)
		escrows.POST("/:id/milestones/:milestoneId/evidence", escrowHandler.RecordEvidence)
		escrows.POST("/:id/milestones/:milestoneId/review", escrowHandler.Review)
	}

	router.POST("/chat/completions", chatHandler.Complete)
	router.POST("/chat/conclude", chatHandler.Conclude)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
