package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inflink/inflink-escrow-service/internal/domain"
	"github.com/inflink/inflink-escrow-service/internal/usecase"
	contractdto "github.com/inflink/inflink-escrow-service/internal/usecase/dto/contract"
)

const dateLayout = "2006-01-02"

type ContractHandler struct {
	contractUsecase usecase.ContractUsecase
}

func NewContractHandler(contractUsecase usecase.ContractUsecase) *ContractHandler {
	return &ContractHandler{contractUsecase: contractUsecase}
}

type ProposeContractRequest struct {
	CampaignID   string `json:"campaign_id" binding:"required"`
	BrandID      string `json:"brand_id" binding:"required"`
	InfluencerID string `json:"influencer_id" binding:"required"`
	CampaignName string `json:"campaign_name"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	Compensation string `json:"compensation"`
	Deliverables string `json:"deliverables" binding:"required"`
}

type ContractResponse struct {
	ID           string `json:"id"`
	CampaignID   string `json:"campaign_id"`
	BrandID      string `json:"brand_id"`
	InfluencerID string `json:"influencer_id"`
	CampaignName string `json:"campaign_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Compensation string `json:"compensation"`
	Deliverables string `json:"deliverables"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

func (h *ContractHandler) Propose(c *gin.Context) {
	var req ProposeContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondError(c, err)
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		respondError(c, err)
		return
	}

	contract, err := h.contractUsecase.ProposeContract(&contractdto.ProposeContractInput{
		CampaignID:   req.CampaignID,
		BrandID:      req.BrandID,
		InfluencerID: req.InfluencerID,
		CampaignName: req.CampaignName,
		StartDate:    startDate,
		EndDate:      endDate,
		Compensation: req.Compensation,
		Deliverables: req.Deliverables,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toContractResponse(contract))
}

type RespondContractRequest struct {
	Decision string `json:"decision" binding:"required"`
}

func (h *ContractHandler) Respond(c *gin.Context) {
	var req RespondContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	contract, err := h.contractUsecase.RespondContract(c.Param("id"), domain.ContractDecision(req.Decision))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toContractResponse(contract))
}

func (h *ContractHandler) Complete(c *gin.Context) {
	contract, err := h.contractUsecase.CompleteContract(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toContractResponse(contract))
}

func (h *ContractHandler) Get(c *gin.Context) {
	contract, err := h.contractUsecase.GetContractByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toContractResponse(contract))
}

func (h *ContractHandler) ListByParty(c *gin.Context) {
	partyID := c.Query("party_id")
	if partyID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "party_id is required"})
		return
	}

	contracts, err := h.contractUsecase.GetContractsByParty(partyID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]ContractResponse, len(contracts))
	for i, contract := range contracts {
		responses[i] = toContractResponse(contract)
	}
	c.JSON(http.StatusOK, gin.H{"contracts": responses})
}

func toContractResponse(contract *domain.Contract) ContractResponse {
	return ContractResponse{
		ID:           contract.ID,
		CampaignID:   contract.CampaignID,
		BrandID:      contract.BrandID,
		InfluencerID: contract.InfluencerID,
		CampaignName: contract.CampaignName,
		StartDate:    contract.StartDate.Format(dateLayout),
		EndDate:      contract.EndDate.Format(dateLayout),
		Compensation: contract.Compensation,
		Deliverables: contract.Deliverables,
		Status:       string(contract.Status),
		CreatedAt:    contract.CreatedAt.Format(time.RFC3339),
	}
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", domain.ErrInvalidTerms, value)
	}
	return date, nil
}
