package service

import (
	"context"
	"fmt"

	"housing-reviews/housing-svc/internal/domain"
)

// AggregateReviewer keeps a housing's aggregateReview in step with its reviews.
type AggregateReviewer struct {
	client Summarizer
}

func NewAggregateReviewer(client Summarizer) *AggregateReviewer {
	return &AggregateReviewer{client: client}
}

// AfterAdd summarizes existing plus the new content. A sentinel answer keeps current.
func (a *AggregateReviewer) AfterAdd(ctx context.Context, current *string, existing []domain.Review, newContent string) (*string, error) {
	texts := make([]string, 0, len(existing)+1)
	for _, r := range existing {
		texts = append(texts, r.Content)
	}
	texts = append(texts, newContent)
	return a.regenerate(ctx, current, texts)
}

// AfterDelete summarizes what remains. No reviews left means no summary and no call.
func (a *AggregateReviewer) AfterDelete(ctx context.Context, current *string, remaining []domain.Review) (*string, error) {
	if len(remaining) == 0 {
		return nil, nil
	}
	texts := make([]string, 0, len(remaining))
	for _, r := range remaining {
		texts = append(texts, r.Content)
	}
	return a.regenerate(ctx, current, texts)
}

func (a *AggregateReviewer) regenerate(ctx context.Context, current *string, texts []string) (*string, error) {
	summary, err := a.client.Summarize(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSummarizerUnavailable, err)
	}
	if summary == domain.NotEnoughInformation {
		return current, nil
	}
	return &summary, nil
}
