package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inflink/inflink-escrow-service/internal/domain"
	escrowdto "github.com/inflink/inflink-escrow-service/internal/usecase/dto/escrow"
	escrowusecase "github.com/inflink/inflink-escrow-service/internal/usecase/escrow"
)

type EscrowHandler struct {
	escrowUsecase escrowusecase.EscrowUsecase
}

func NewEscrowHandler(escrowUsecase escrowusecase.EscrowUsecase) *EscrowHandler {
	return &EscrowHandler{escrowUsecase: escrowUsecase}
}

type CreateEscrowRequest struct {
	ContractID string                 `json:"contract_id" binding:"required"`
	Amount     float64                `json:"amount" binding:"required"`
	// Milestones may be omitted; they are then derived from the
	// contract's deliverables.
	Milestones []MilestoneSpecRequest `json:"milestones"`
}

type MilestoneSpecRequest struct {
	Description string `json:"description" binding:"required"`
	DueDate     string `json:"due_date" binding:"required"`
}

type EscrowResponse struct {
	ID            string              `json:"id"`
	CampaignID    string              `json:"campaign_id"`
	ContractID    string              `json:"contract_id"`
	InfluencerID  string              `json:"influencer_id"`
	BrandID       string              `json:"brand_id"`
	Amount        float64             `json:"amount"`
	Status        string              `json:"status"`
	Milestones    []MilestoneResponse `json:"milestones"`
	DisputeReason string              `json:"dispute_reason,omitempty"`
	ReleaseDate   string              `json:"release_date,omitempty"`
	CreatedAt     string              `json:"created_at"`
	UpdatedAt     string              `json:"updated_at"`
}

type MilestoneResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
	Evidence    string `json:"evidence,omitempty"`
}

func (h *EscrowHandler) Create(c *gin.Context) {
	var req CreateEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	specs := make([]escrowdto.MilestoneSpecInput, 0, len(req.Milestones))
	for _, spec := range req.Milestones {
		dueDate, err := parseDate(spec.DueDate)
		if err != nil {
			respondError(c, err)
			return
		}
		specs = append(specs, escrowdto.MilestoneSpecInput{
			Description: spec.Description,
			DueDate:     dueDate,
		})
	}

	escrow, err := h.escrowUsecase.CreateEscrow(&escrowdto.CreateEscrowInput{
		ContractID: req.ContractID,
		Amount:     req.Amount,
		Milestones: specs,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toEscrowResponse(escrow))
}

type AdvanceEscrowRequest struct {
	Status        string `json:"status" binding:"required"`
	DisputeReason string `json:"dispute_reason"`
}

func (h *EscrowHandler) Advance(c *gin.Context) {
	var req AdvanceEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	escrow, err := h.escrowUsecase.Advance(&escrowdto.AdvanceEscrowInput{
		EscrowID:      c.Param("id"),
		TargetStatus:  req.Status,
		DisputeReason: req.DisputeReason,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEscrowResponse(escrow))
}

func (h *EscrowHandler) StartMilestone(c *gin.Context) {
	milestone, err := h.escrowUsecase.StartMilestone(c.Param("id"), c.Param("milestoneId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMilestoneResponse(milestone))
}

type RecordEvidenceRequest struct {
	Evidence string `json:"evidence" binding:"required"`
}

func (h *EscrowHandler) RecordEvidence(c *gin.Context) {
	var req RecordEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	milestone, err := h.escrowUsecase.RecordMilestoneEvidence(c.Param("id"), c.Param("milestoneId"), req.Evidence)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMilestoneResponse(milestone))
}

type ReviewMilestoneRequest struct {
	Decision string `json:"decision" binding:"required"`
}

func (h *EscrowHandler) Review(c *gin.Context) {
	var req ReviewMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	escrow, err := h.escrowUsecase.ReviewMilestone(c.Param("id"), c.Param("milestoneId"), domain.MilestoneDecision(req.Decision))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEscrowResponse(escrow))
}

func (h *EscrowHandler) Get(c *gin.Context) {
	escrow, err := h.escrowUsecase.GetEscrowByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEscrowResponse(escrow))
}

func (h *EscrowHandler) ListByParty(c *gin.Context) {
	partyID := c.Query("party_id")
	if partyID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "party_id is required"})
		return
	}

	escrows, err := h.escrowUsecase.GetEscrowsByParty(partyID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]EscrowResponse, len(escrows))
	for i, escrow := range escrows {
		responses[i] = toEscrowResponse(escrow)
	}
	c.JSON(http.StatusOK, gin.H{"escrows": responses})
}

type ProgressResponse struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Approved   int `json:"approved"`
	Rejected   int `json:"rejected"`
}

func (h *EscrowHandler) Progress(c *gin.Context) {
	progress, err := h.escrowUsecase.GetProgress(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProgressResponse{
		Total:      progress.Total,
		Pending:    progress.Pending,
		InProgress: progress.InProgress,
		Completed:  progress.Completed,
		Approved:   progress.Approved,
		Rejected:   progress.Rejected,
	})
}

func toEscrowResponse(escrow *domain.EscrowTransaction) EscrowResponse {
	milestones := make([]MilestoneResponse, len(escrow.Milestones))
	for i, milestone := range escrow.Milestones {
		milestones[i] = toMilestoneResponse(milestone)
	}

	response := EscrowResponse{
		ID:            escrow.ID,
		CampaignID:    escrow.CampaignID,
		ContractID:    escrow.ContractID,
		InfluencerID:  escrow.InfluencerID,
		BrandID:       escrow.BrandID,
		Amount:        escrow.Amount,
		Status:        string(escrow.Status),
		Milestones:    milestones,
		DisputeReason: escrow.DisputeReason,
		CreatedAt:     escrow.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     escrow.UpdatedAt.Format(time.RFC3339),
	}
	if escrow.ReleaseDate != nil {
		response.ReleaseDate = escrow.ReleaseDate.Format(time.RFC3339)
	}
	return response
}

func toMilestoneResponse(milestone *domain.Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:          milestone.ID,
		Description: milestone.Description,
		DueDate:     milestone.DueDate.Format(dateLayout),
		Status:      string(milestone.Status),
		Evidence:    milestone.Evidence,
	}
}
