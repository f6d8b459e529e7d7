package store

import (
	"context"
	"fmt"

	"github.com/abhisek/diagen/ent"
	"github.com/abhisek/diagen/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldID))

	if opts.Purpose != "" {
		q = q.Where(llmrequestevent.PurposeEQ(opts.Purpose))
	}
	if opts.FailedOnly {
		q = q.Where(llmrequestevent.SuccessEQ(false))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	events := make([]LLMEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, llmEventFromRow(row))
	}
	return events, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	e := llmEventFromRow(row)
	return &e, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	var rows []struct {
		Purpose       string  `json:"purpose"`
		Calls         int     `json:"count"`
		InputTokens   int     `json:"sum_input_tokens"`
		OutputTokens  int     `json:"sum_output_tokens"`
		MeanLatencyMs float64 `json:"mean_latency_ms"`
	}

	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "count"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "sum_input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "sum_output_tokens"),
			ent.As(ent.Mean(llmrequestevent.FieldLatencyMs), "mean_latency_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by purpose: %w", err)
	}

	usage := make([]PurposeUsage, 0, len(rows))
	for _, row := range rows {
		usage = append(usage, PurposeUsage{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int64(row.MeanLatencyMs),
		})
	}
	return usage, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	var rows []struct {
		Model        string `json:"model"`
		Calls        int    `json:"count"`
		InputTokens  int    `json:"sum_input_tokens"`
		OutputTokens int    `json:"sum_output_tokens"`
	}

	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "count"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "sum_input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "sum_output_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by model: %w", err)
	}

	usage := make([]ModelUsage, 0, len(rows))
	for _, row := range rows {
		usage = append(usage, ModelUsage{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
		})
	}
	return usage, nil
}

func llmEventFromRow(row *ent.LLMRequestEvent) LLMEvent {
	return LLMEvent{
		ID:           row.ID,
		Timestamp:    row.Timestamp,
		Provider:     row.Provider,
		Model:        row.Model,
		Purpose:      row.Purpose,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		LatencyMs:    row.LatencyMs,
		Success:      row.Success,
		ErrorMessage: row.ErrorMessage,
		RequestBody:  row.RequestBody,
		ResponseBody: row.ResponseBody,
	}
}
