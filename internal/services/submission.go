package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/prepit-kitchen/prepit/internal/repositories"
	"github.com/prepit-kitchen/prepit/internal/submissions"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=submission.go -destination=submission_mock.go -package=services

var (
	ErrBatchNotFound   = errors.New("submission batch not found")
	ErrNothingToSubmit = errors.New("prep sheet has no viewable items")
)

// SubmittedPrepItemReader defines read-only operations for submitted prep items.
type SubmittedPrepItemReader interface {
	List(ctx context.Context, cursor string, limit int) (models.Page[models.SubmittedPrepItem], error)
}

// SubmittedPrepItemWriter defines write operations for submitted prep items.
type SubmittedPrepItemWriter interface {
	Create(ctx context.Context, item *models.SubmittedPrepItem) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// SubmissionService records completed prep sheets and reports them as batches.
type SubmissionService struct {
	reader      SubmittedPrepItemReader
	writer      SubmittedPrepItemWriter
	kafkaWriter KafkaWriter
}

// NewSubmissionService creates a new SubmissionService. kafkaWriter may be nil.
func NewSubmissionService(reader SubmittedPrepItemReader, writer SubmittedPrepItemWriter, kafkaWriter KafkaWriter) *SubmissionService {
	return &SubmissionService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// SubmitPrepSheet writes one record per viewable entry, all stamped with the same time.
// Writes run concurrently and are all awaited; failed entries are reported in the result
// and successful ones are kept.
func (s *SubmissionService) SubmitPrepSheet(ctx context.Context, station, submittedBy string, entries []models.PrepSheetEntry) (*models.SubmitResult, error) {
	station = strings.TrimSpace(station)
	if station == "" {
		return nil, ErrEmptyStation
	}

	// TIMESTAMPTZ keeps microseconds; a finer stamp could round into the next minute.
	now := time.Now().UTC().Truncate(time.Microsecond)
	var records []*models.SubmittedPrepItem
	for _, e := range entries {
		if !e.Viewable {
			continue
		}
		records = append(records, &models.SubmittedPrepItem{
			PrepName:     e.PrepName,
			ParLabel:     e.ParLabel,
			ParAmount:    e.ParAmount,
			PrepComplete: e.PrepComplete,
			UserSubmit:   submittedBy,
			Notes:        e.Notes,
			Date:         now,
			StationName:  station,
		})
	}
	if len(records) == 0 {
		return nil, ErrNothingToSubmit
	}

	errs := fanOut(ctx, records, s.writer.Create)

	result := &models.SubmitResult{
		BatchID:   submissions.BatchID(station, submissions.RoundToMinute(now)),
		Submitted: []string{},
		Failures:  []models.SubmitFailure{},
	}
	for i, err := range errs {
		if err != nil {
			logger.Log.Errorw("failed to submit prep item", "station", station, "prep_name", records[i].PrepName, "error", err)
			result.Failures = append(result.Failures, models.SubmitFailure{
				PrepName: records[i].PrepName,
				Error:    err.Error(),
			})
			continue
		}
		result.Submitted = append(result.Submitted, records[i].PrepName)
	}

	if len(result.Submitted) > 0 {
		s.publishSubmission(ctx, models.PrepSheetSubmittedEvent{
			EventID:     uuid.NewString(),
			BatchID:     result.BatchID,
			StationName: station,
			SubmittedBy: submittedBy,
			Timestamp:   now.Unix(),
			ItemCount:   len(result.Submitted),
			FailedCount: len(result.Failures),
		})
	}

	return result, nil
}

// publishSubmission publishes a submission event to Kafka. Failures are only logged.
func (s *SubmissionService) publishSubmission(ctx context.Context, event models.PrepSheetSubmittedEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "batch_id", event.BatchID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal submission event for Kafka", "batch_id", event.BatchID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.StationName),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish submission event to Kafka", "batch_id", event.BatchID, "error", err)
	} else {
		logger.Log.Infow("Submission event published to Kafka", "batch_id", event.BatchID, "items", event.ItemCount)
	}
}

func (s *SubmissionService) allItems(ctx context.Context) ([]models.SubmittedPrepItem, error) {
	items, err := repositories.CollectAll(ctx, func(ctx context.Context, cursor string) (models.Page[models.SubmittedPrepItem], error) {
		return s.reader.List(ctx, cursor, repositories.DefaultPageSize)
	})
	if err != nil {
		logger.Log.Errorw("failed to load submitted prep items", "error", err)
		return nil, err
	}
	return items, nil
}

// ListBatches returns submission batches newest first. An empty station matches all
// stations and zero from/to bounds are open.
func (s *SubmissionService) ListBatches(ctx context.Context, station string, from, to time.Time) ([]models.SubmissionBatch, error) {
	items, err := s.allItems(ctx)
	if err != nil {
		return nil, err
	}
	batches := submissions.Group(items)
	if station != "" {
		batches = submissions.ForStation(batches, station)
	}
	return submissions.Between(batches, from, to), nil
}

// ListDays returns submission batches bucketed by calendar day in loc.
func (s *SubmissionService) ListDays(ctx context.Context, loc *time.Location) ([]models.SubmissionDay, error) {
	items, err := s.allItems(ctx)
	if err != nil {
		return nil, err
	}
	return submissions.GroupByDay(submissions.Group(items), loc), nil
}

// GetBatch returns the batch with the given id.
func (s *SubmissionService) GetBatch(ctx context.Context, batchID string) (*models.SubmissionBatch, error) {
	items, err := s.allItems(ctx)
	if err != nil {
		return nil, err
	}
	batch, ok := submissions.Find(submissions.Group(items), batchID)
	if !ok {
		return nil, ErrBatchNotFound
	}
	return &batch, nil
}
