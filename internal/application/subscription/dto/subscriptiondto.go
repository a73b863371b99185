package dto

import (
	"fmt"
	"time"

	"gestao/internal/domain/subscription"
	"gestao/internal/shared/biztime"
)

// ListFilter selects which subscriptions a listing returns.
type ListFilter string

const (
	FilterAll       ListFilter = "TODOS"
	FilterActive    ListFilter = "ATIVOS"
	FilterCancelled ListFilter = "CANCELADOS"
)

// ParseListFilter validates a raw filter value from the transport layer.
func ParseListFilter(raw string) (ListFilter, error) {
	switch ListFilter(raw) {
	case FilterAll, FilterActive, FilterCancelled:
		return ListFilter(raw), nil
	default:
		return "", fmt.Errorf("invalid subscription filter: %s", raw)
	}
}

// SubscriptionSummaryDTO is the listing projection. Status is computed at
// projection time from the evaluation instant, never read from storage.
type SubscriptionSummaryDTO struct {
	SubscriptionCode uint   `json:"subscriptionCode"`
	CustomerCode     uint   `json:"customerCode"`
	PlanCode         uint   `json:"planCode"`
	FidelityStart    string `json:"fidelityStart"`
	FidelityEnd      string `json:"fidelityEnd"`
	Status           string `json:"status"`
}

// NewSubscriptionSummaryDTO projects a subscription at the given instant.
func NewSubscriptionSummaryDTO(sub *subscription.Subscription, now time.Time) SubscriptionSummaryDTO {
	return SubscriptionSummaryDTO{
		SubscriptionCode: sub.Code(),
		CustomerCode:     sub.CustomerCode(),
		PlanCode:         sub.PlanCode(),
		FidelityStart:    biztime.FormatStored(sub.FidelityStart()),
		FidelityEnd:      biztime.FormatStored(sub.FidelityEnd()),
		Status:           string(sub.StatusAt(now)),
	}
}

// NewSubscriptionSummaryDTOs projects a slice of subscriptions at the same
// instant, keeping one evaluation time for the whole listing.
func NewSubscriptionSummaryDTOs(subs []*subscription.Subscription, now time.Time) []SubscriptionSummaryDTO {
	dtos := make([]SubscriptionSummaryDTO, 0, len(subs))
	for _, sub := range subs {
		dtos = append(dtos, NewSubscriptionSummaryDTO(sub, now))
	}
	return dtos
}
