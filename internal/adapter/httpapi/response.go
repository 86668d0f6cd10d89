package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucasmv/bankapi/internal/domain"
)

type accountResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Number       int64           `json:"number"`
	Balance      decimal.Decimal `json:"balance"`
	SpecialLimit decimal.Decimal `json:"specialLimit"`
}

type transactionResponse struct {
	ID              string           `json:"id"`
	Type            string           `json:"type"`
	SourceAccount   accountResponse  `json:"sourceAccount"`
	ReceiverAccount *accountResponse `json:"receiverAccount"`
	Amount          decimal.Decimal  `json:"amount"`
	CreatedAt       time.Time        `json:"createdAt"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:           a.ID,
		Name:         a.Name,
		Number:       a.Number,
		Balance:      a.Balance,
		SpecialLimit: a.SpecialLimit,
	}
}

func toAccountResponses(accounts []*domain.Account) []accountResponse {
	out := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	return out
}

func toTransactionResponse(tx *domain.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:            tx.ID.String(),
		Type:          string(tx.Type),
		SourceAccount: toAccountResponse(tx.SourceAccount),
		Amount:        tx.Amount,
		CreatedAt:     tx.CreatedAt,
	}

	if tx.ReceiverAccount != nil {
		receiver := toAccountResponse(tx.ReceiverAccount)
		resp.ReceiverAccount = &receiver
	}

	return resp
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// writeError maps domain errors onto HTTP statuses: unknown account ->
// 404, insufficient balance and invalid input -> 400, anything else -> 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInsufficientBalance), errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		s.Logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
