package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/lucasmv/bankapi/internal/log"
	"github.com/lucasmv/bankapi/internal/usecase/account"
	"github.com/lucasmv/bankapi/internal/usecase/transaction"
)

// Server is the HTTP transport over the account and transaction services.
// It only parses requests, delegates to the usecases and shapes responses;
// all domain rules live below it.
type Server struct {
	Accounts     *account.Service
	Transactions *transaction.Service
	Logger       *log.Logger
}

// NewServer creates a new HTTP server instance
func NewServer(accounts *account.Service, transactions *transaction.Service, logger *log.Logger) *Server {
	return &Server{
		Accounts:     accounts,
		Transactions: transactions,
		Logger:       logger,
	}
}

// Router returns the route table without middleware applied
func (s *Server) Router() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /account", s.listAccounts)
	mux.HandleFunc("GET /account/{number}", s.getAccount)
	mux.HandleFunc("POST /account", s.createAccount)
	mux.HandleFunc("PUT /account/{id}", s.updateAccount)

	mux.HandleFunc("POST /transaction/withdraw", s.withdraw)
	mux.HandleFunc("POST /transaction/transfer", s.transfer)

	return mux
}

// Handler returns the router wrapped with request logging and, when
// apiToken is non-empty, bearer-token authentication.
func (s *Server) Handler(apiToken string) http.Handler {
	var h http.Handler = s.Router()
	if apiToken != "" {
		h = withAuth(apiToken, h)
	}
	return withLogging(s.Logger, h)
}

type accountRequest struct {
	Name         string          `json:"name"`
	Number       int64           `json:"number"`
	Balance      decimal.Decimal `json:"balance"`
	SpecialLimit decimal.Decimal `json:"specialLimit"`
}

type withdrawRequest struct {
	SourceAccountNumber int64           `json:"sourceAccountNumber"`
	Amount              decimal.Decimal `json:"amount"`
}

type transferRequest struct {
	SourceAccountNumber   int64           `json:"sourceAccountNumber"`
	ReceiverAccountNumber int64           `json:"receiverAccountNumber"`
	Amount                decimal.Decimal `json:"amount"`
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.Accounts.GetAll(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponses(accounts))
}

func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.ParseInt(r.PathValue("number"), 10, 64)
	if err != nil {
		writeBadRequest(w, "account number must be an integer")
		return
	}

	acc, err := s.Accounts.GetByNumber(r.Context(), number)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(acc))
}

func (s *Server) createAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	acc, err := s.Accounts.Save(r.Context(), account.AccountInput{
		Name:         req.Name,
		Number:       req.Number,
		Balance:      req.Balance,
		SpecialLimit: req.SpecialLimit,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountResponse(acc))
}

func (s *Server) updateAccount(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeBadRequest(w, "account id must be an integer")
		return
	}

	var req accountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	acc, err := s.Accounts.Update(r.Context(), id, account.AccountInput{
		Name:         req.Name,
		Number:       req.Number,
		Balance:      req.Balance,
		SpecialLimit: req.SpecialLimit,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(acc))
}

func (s *Server) withdraw(w http.ResponseWriter, r *http.Request) {
	var req withdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	tx, err := s.Transactions.Withdraw(r.Context(), req.SourceAccountNumber, req.Amount)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTransactionResponse(tx))
}

func (s *Server) transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	tx, err := s.Transactions.Transfer(r.Context(), req.SourceAccountNumber, req.ReceiverAccountNumber, req.Amount)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTransactionResponse(tx))
}
