// Package inventory holds the product rules: validation, sale and price changes.
package inventory

import (
	"context"
	"time"

	"github.com/rogerio-castellano/inventory-service/internal/models"
	"github.com/rogerio-castellano/inventory-service/internal/repo"
	"go.uber.org/zap"
)

const publishTimeout = time.Second

// Publisher receives inventory activity. Delivery is best effort.
type Publisher interface {
	Publish(ctx context.Context, event models.ActivityEvent) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, models.ActivityEvent) error { return nil }

type Service struct {
	products  repo.ProductRepository
	movements repo.MovementRepository
	metrics   repo.MetricsRepository
	publisher Publisher
	logger    *zap.Logger
	now       func() time.Time

	lowStockThreshold int
}

type Option func(*Service)

func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLowStockThreshold sets the stock level under which a sale logs a low stock alert.
func WithLowStockThreshold(n int) Option {
	return func(s *Service) { s.lowStockThreshold = n }
}

func WithMetricsRepository(m repo.MetricsRepository) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(products repo.ProductRepository, movements repo.MovementRepository, opts ...Option) *Service {
	s := &Service{
		products:          products,
		movements:         movements,
		publisher:         nopPublisher{},
		logger:            zap.NewNop(),
		now:               time.Now,
		lowStockThreshold: 5,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = repo.NewInMemoryMetricsRepository(products, movements)
	}
	return s
}

func (s *Service) publish(ctx context.Context, event models.ActivityEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("activity publish failed",
			zap.String("type", event.Type),
			zap.Int("product_id", event.ProductID),
			zap.Error(err),
		)
	}
}
