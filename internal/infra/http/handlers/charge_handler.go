package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/epayco-charge/internal/entity"
	"github.com/xavierca1/epayco-charge/internal/infra/http/middleware"
	"github.com/xavierca1/epayco-charge/internal/usecase"
)

const MsgInternalError = "Error interno del servidor"

type ChargeProcessor interface {
	Execute(ctx context.Context, input usecase.ProcessChargeInput) (*usecase.ProcessChargeOutput, error)
}

type ChargeHandler struct {
	ProcessChargeUC ChargeProcessor
	Logger          *zap.Logger
}

func NewChargeHandler(uc ChargeProcessor, logger *zap.Logger) *ChargeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChargeHandler{ProcessChargeUC: uc, Logger: logger}
}

// Handle atende o POST /charge. É a única fronteira que traduz erro em
// status HTTP.
func (h *ChargeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input entity.ChargeRequest

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&input); err != nil {
		h.Logger.Warn("corpo do /charge inválido", zap.Error(err))
		middleware.RecordCharge("validation_error")
		writeErrorResponse(w, http.StatusBadRequest, usecase.MsgIncompleteData, usecase.DetailsIncompleteData)
		return
	}

	output, err := h.ProcessChargeUC.Execute(r.Context(), usecase.ProcessChargeInput{
		Request:  &input,
		ClientIP: clientIP(r),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	middleware.RecordCharge("success")
	writeJSON(w, http.StatusOK, output)
}

func (h *ChargeHandler) writeError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		middleware.RecordCharge(outcome(domainErr.Code))
		writeErrorResponse(w, http.StatusBadRequest, domainErr.Message, domainErr.Details)
		return
	}

	var technicalErr *usecase.TechnicalError
	if errors.As(err, &technicalErr) {
		middleware.RecordCharge(outcome(technicalErr.Code))
		writeErrorResponse(w, http.StatusInternalServerError, technicalErr.Message, technicalErr.Details)
		return
	}

	h.Logger.Error("erro processando a solicitação", zap.Error(err))
	middleware.RecordCharge("internal_error")
	writeErrorResponse(w, http.StatusInternalServerError, MsgInternalError, err.Error())
}

func outcome(code string) string {
	switch code {
	case usecase.CodeValidation:
		return "validation_error"
	case usecase.CodeTokenRejected, usecase.CodeCustomerRejected, usecase.CodeChargeRejected:
		return "gateway_rejected"
	case usecase.CodeInvoiceFailed:
		return "invoice_failed"
	default:
		return "internal_error"
	}
}

// clientIP é o endereço do socket, sem porta. Headers de proxy são ignorados.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
