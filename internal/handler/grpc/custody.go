package grpc

import (
	"context"

	"github.com/MKhiriev/go-custody/models"
)

func (h *Handler) Withdraw(ctx context.Context, req *models.WithdrawRequest) (*models.BucketPayload, error) {
	bucket, err := h.services.CustodyService.Withdraw(ctx, *req)
	if err != nil {
		return nil, statusError(ctx, err, "withdraw rejected")
	}
	return &bucket, nil
}

func (h *Handler) WithdrawConfidential(ctx context.Context, req *models.WithdrawConfidentialRequest) (*models.BucketPayload, error) {
	bucket, err := h.services.CustodyService.WithdrawConfidential(ctx, *req)
	if err != nil {
		return nil, statusError(ctx, err, "confidential withdraw rejected")
	}
	return &bucket, nil
}

func (h *Handler) GetBalance(ctx context.Context, _ *Empty) (*models.BalanceResponse, error) {
	amount, err := h.services.CustodyService.GetBalance(ctx)
	if err != nil {
		return nil, statusError(ctx, err, "error reading balance")
	}
	return &models.BalanceResponse{Amount: amount}, nil
}

func (h *Handler) GetCounter(ctx context.Context, _ *Empty) (*models.CounterResponse, error) {
	counter, err := h.services.CustodyService.Counter(ctx)
	if err != nil {
		return nil, statusError(ctx, err, "error reading counter")
	}
	return &models.CounterResponse{Counter: counter}, nil
}
