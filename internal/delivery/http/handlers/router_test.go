package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/inflink/inflink-escrow-service/internal/domain"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/memstore"
	"github.com/inflink/inflink-escrow-service/internal/usecase"
	escrowusecase "github.com/inflink/inflink-escrow-service/internal/usecase/escrow"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	contractRepo := memstore.NewInMemoryContractRepository()
	contractUC := usecase.NewDefaultContractUsecase(contractRepo, nil, nil, nil)
	escrowUC := escrowusecase.NewDefaultEscrowUsecase(memstore.NewInMemoryEscrowRepository(), contractRepo, nil, nil, nil)
	negotiationUC := usecase.NewDefaultNegotiationUsecase(&fixedCompleter{reply: "Agreed."}, contractUC, nil)

	return NewRouter(contractUC, escrowUC, negotiationUC)
}

type fixedCompleter struct {
	reply string
}

func (f *fixedCompleter) Complete(ctx context.Context, conversation []domain.ChatMessage) (string, error) {
	return f.reply, nil
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func proposeRequest() gin.H {
	return gin.H{
		"campaign_id":   "camp001",
		"brand_id":      "brand001",
		"influencer_id": "infp001",
		"campaign_name": "Summer beauty launch",
		"start_date":    "2023-06-15",
		"end_date":      "2023-07-15",
		"compensation":  "₩800,000",
		"deliverables":  "First Instagram feed post, Second Instagram feed post",
	}
}

func acceptedContract(t *testing.T, router *gin.Engine) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/contracts", proposeRequest())
	require.Equal(t, http.StatusCreated, rec.Code)

	var contract ContractResponse
	decodeBody(t, rec, &contract)

	rec = doJSON(t, router, http.MethodPost, "/contracts/"+contract.ID+"/respond", gin.H{"decision": "accept"})
	require.Equal(t, http.StatusOK, rec.Code)

	return contract.ID
}

func createEscrow(t *testing.T, router *gin.Engine, contractID string) EscrowResponse {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/escrows", gin.H{
		"contract_id": contractID,
		"amount":      800000,
		"milestones": []gin.H{
			{"description": "First Instagram feed post", "due_date": "2023-07-15"},
			{"description": "Second Instagram feed post", "due_date": "2023-07-15"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var escrow EscrowResponse
	decodeBody(t, rec, &escrow)
	return escrow
}

func TestContractEndpoints(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/contracts", proposeRequest())
	require.Equal(t, http.StatusCreated, rec.Code)

	var contract ContractResponse
	decodeBody(t, rec, &contract)
	require.Equal(t, "pending", contract.Status)
	require.Equal(t, "2023-06-15", contract.StartDate)

	rec = doJSON(t, router, http.MethodGet, "/contracts/"+contract.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/contracts?party_id=brand001", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/contracts/missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContractBadDate(t *testing.T) {
	router := newTestRouter()

	body := proposeRequest()
	body["start_date"] = "June 15, 2023"
	rec := doJSON(t, router, http.MethodPost, "/contracts", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRespondConflictStatus(t *testing.T) {
	router := newTestRouter()
	contractID := acceptedContract(t, router)

	rec := doJSON(t, router, http.MethodPost, "/contracts/"+contractID+"/respond", gin.H{"decision": "reject"})
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestEscrowEndpoints(t *testing.T) {
	router := newTestRouter()
	contractID := acceptedContract(t, router)
	escrow := createEscrow(t, router, contractID)
	require.Equal(t, "pending", escrow.Status)
	require.Len(t, escrow.Milestones, 2)

	// duplicate funding of the same contract
	rec := doJSON(t, router, http.MethodPost, "/escrows", gin.H{
		"contract_id": contractID,
		"amount":      800000,
		"milestones": []gin.H{
			{"description": "First Instagram feed post", "due_date": "2023-07-15"},
		},
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/escrows/"+escrow.ID+"/advance", gin.H{"status": "in_progress"})
	require.Equal(t, http.StatusOK, rec.Code)

	// skipping completed is rejected
	rec = doJSON(t, router, http.MethodPost, "/escrows/"+escrow.ID+"/advance", gin.H{"status": "released"})
	require.Equal(t, http.StatusConflict, rec.Code)

	// disputing without a reason
	rec = doJSON(t, router, http.MethodPost, "/escrows/"+escrow.ID+"/advance", gin.H{"status": "disputed"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/escrows/"+escrow.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/escrows?party_id=infp001", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMilestoneEndpoints(t *testing.T) {
	router := newTestRouter()
	contractID := acceptedContract(t, router)
	escrow := createEscrow(t, router, contractID)

	base := fmt.Sprintf("/escrows/%s/milestones/%s", escrow.ID, escrow.Milestones[0].ID)

	rec := doJSON(t, router, http.MethodPost, base+"/start", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, base+"/evidence", gin.H{"evidence": "https://instagram.com/p/abc123"})
	require.Equal(t, http.StatusOK, rec.Code)

	var milestone MilestoneResponse
	decodeBody(t, rec, &milestone)
	require.Equal(t, "completed", milestone.Status)

	rec = doJSON(t, router, http.MethodPost, base+"/review", gin.H{"decision": "approve"})
	require.Equal(t, http.StatusOK, rec.Code)

	// reviewing the last milestone completes the transaction
	second := fmt.Sprintf("/escrows/%s/milestones/%s", escrow.ID, escrow.Milestones[1].ID)
	rec = doJSON(t, router, http.MethodPost, second+"/evidence", gin.H{"evidence": "https://instagram.com/p/def456"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPost, second+"/review", gin.H{"decision": "approve"})
	require.Equal(t, http.StatusOK, rec.Code)

	var after EscrowResponse
	decodeBody(t, rec, &after)
	require.Equal(t, "completed", after.Status)

	rec = doJSON(t, router, http.MethodGet, "/escrows/"+escrow.ID+"/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var progress ProgressResponse
	decodeBody(t, rec, &progress)
	require.Equal(t, 2, progress.Total)
	require.Equal(t, 2, progress.Approved)
}

func TestChatEndpoints(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/chat/completions", gin.H{
		"messages": []gin.H{
			{"role": "user", "content": "Two posts for ₩800,000?"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/chat/conclude", gin.H{
		"messages": []gin.H{
			{"role": "user", "content": "Deal."},
		},
		"terms": proposeRequest(),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
}
