package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mealmasterhq/meal-master-api/internal/api/shared"
	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"github.com/mealmasterhq/meal-master-api/internal/platform/logger"
	"github.com/mealmasterhq/meal-master-api/internal/service/payments"
	"github.com/mealmasterhq/meal-master-api/internal/store"
)

// PaymentHandler handles payment-intent creation and the payment
// history endpoints.
type PaymentHandler struct {
	intents      payments.IntentService
	paymentStore store.PaymentStore
	memberships  store.MembershipStore
}

// NewPaymentHandler creates a new PaymentHandler with the given
// dependencies.
func NewPaymentHandler(intents payments.IntentService, paymentStore store.PaymentStore, memberships store.MembershipStore) *PaymentHandler {
	return &PaymentHandler{
		intents:      intents,
		paymentStore: paymentStore,
		memberships:  memberships,
	}
}

// CreatePaymentIntent handles POST /auth/create-payment-intent: price
// in, client confirmation secret out. A caller retry creates a second
// intent; there is deliberately no idempotency key.
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req PaymentIntentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	secret, err := h.intents.CreateIntent(r.Context(), req.Price)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PaymentIntentResponse{ClientSecret: secret})
}

// CreatePaymentRecord handles POST /auth/payments-history: stores the
// confirmed payment. The payer identity is the verified token email;
// records are immutable after insert.
func (h *PaymentHandler) CreatePaymentRecord(w http.ResponseWriter, r *http.Request) {
	email, ok := requireAuthenticatedEmail(w, r)
	if !ok {
		return
	}

	var req CreatePaymentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	payment := &domain.Payment{
		UserName:      req.UserName,
		UserEmail:     email,
		Amount:        req.Amount,
		Badge:         req.Badge,
		TransactionID: req.TransactionID,
		PaidAt:        time.Now().UTC(),
	}

	id, err := h.paymentStore.Create(r.Context(), payment)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to record payment",
			"error", err, "email", email)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, InsertResponse{InsertedID: id.Hex()})
}

// ListPayments handles GET /auth/payments-history/{email}: self-only
// payment history.
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	email, ok := requireSelf(w, r, chi.URLParam(r, "email"))
	if !ok {
		return
	}

	history, err := h.paymentStore.ListByEmail(r.Context(), email)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"result": history})
}

// ListMembershipTiers handles GET /membership: public read-only tier
// listing.
func (h *PaymentHandler) ListMembershipTiers(w http.ResponseWriter, r *http.Request) {
	tiers, err := h.memberships.List(r.Context())
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"result": tiers})
}
