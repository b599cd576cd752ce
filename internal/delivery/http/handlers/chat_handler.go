package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inflink/inflink-escrow-service/internal/domain"
	"github.com/inflink/inflink-escrow-service/internal/usecase"
	contractdto "github.com/inflink/inflink-escrow-service/internal/usecase/dto/contract"
)

type ChatHandler struct {
	negotiationUsecase usecase.NegotiationUsecase
}

func NewChatHandler(negotiationUsecase usecase.NegotiationUsecase) *ChatHandler {
	return &ChatHandler{negotiationUsecase: negotiationUsecase}
}

type ChatMessageRequest struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type CompleteChatRequest struct {
	Messages []ChatMessageRequest `json:"messages" binding:"required"`
}

func (h *ChatHandler) Complete(c *gin.Context) {
	var req CompleteChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	reply, err := h.negotiationUsecase.Complete(c.Request.Context(), toChatMessages(req.Messages))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": reply})
}

type ConcludeChatRequest struct {
	Messages []ChatMessageRequest   `json:"messages" binding:"required"`
	Terms    ProposeContractRequest `json:"terms" binding:"required"`
}

// Conclude finishes a negotiation: the collaborator answers, then the
// agreed terms become a pending contract.
func (h *ChatHandler) Conclude(c *gin.Context) {
	var req ConcludeChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := parseDate(req.Terms.StartDate)
	if err != nil {
		respondError(c, err)
		return
	}
	endDate, err := parseDate(req.Terms.EndDate)
	if err != nil {
		respondError(c, err)
		return
	}

	contract, reply, err := h.negotiationUsecase.ConcludeContract(
		c.Request.Context(),
		toChatMessages(req.Messages),
		&contractdto.ProposeContractInput{
			CampaignID:   req.Terms.CampaignID,
			BrandID:      req.Terms.BrandID,
			InfluencerID: req.Terms.InfluencerID,
			CampaignName: req.Terms.CampaignName,
			StartDate:    startDate,
			EndDate:      endDate,
			Compensation: req.Terms.Compensation,
			Deliverables: req.Terms.Deliverables,
		},
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  reply,
		"contract": toContractResponse(contract),
	})
}

func toChatMessages(requests []ChatMessageRequest) []domain.ChatMessage {
	messages := make([]domain.ChatMessage, len(requests))
	for i, m := range requests {
		messages[i] = domain.ChatMessage{
			Role:    domain.ChatRole(m.Role),
			Content: m.Content,
		}
	}
	return messages
}
