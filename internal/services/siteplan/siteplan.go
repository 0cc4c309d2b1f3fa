// Package services содержит бизнес-логику работы с тарифными планами сайтов:
// хранение записей API в кэше и сборку нормализованных планов.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/siteplan-view/internal/models"
	"github.com/magabrotheeeer/siteplan-view/internal/plans"
)

// ErrPlanNotFound возвращается, если для сайта нет сохранённой записи плана.
var ErrPlanNotFound = errors.New("site plan not found")

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(ctx context.Context, key string) error
}

// SitePlanService собирает планы и хранит исходные записи в кеше.
type SitePlanService struct {
	cache     Cache
	assembler *plans.Assembler
	ttl       time.Duration
	log       *slog.Logger
}

// NewSitePlanService создает новый экземпляр SitePlanService.
func NewSitePlanService(cache Cache, assembler *plans.Assembler, ttl time.Duration, log *slog.Logger) *SitePlanService {
	if assembler == nil {
		assembler = plans.NewAssembler(nil, nil)
	}
	return &SitePlanService{
		cache:     cache,
		assembler: assembler,
		ttl:       ttl,
		log:       log,
	}
}

func cacheKey(siteID int64) string {
	return fmt.Sprintf("siteplan:%d", siteID)
}

// Assemble собирает план из записи без обращения к кешу.
func (s *SitePlanService) Assemble(raw *models.RawPlan) models.SitePlan {
	return s.assembler.CreateSitePlanObject(raw)
}

// Store сохраняет запись плана сайта и возвращает собранный план.
func (s *SitePlanService) Store(ctx context.Context, siteID int64, raw models.RawPlan) (models.SitePlan, error) {
	const op = "services.siteplan.Store"
	key := cacheKey(siteID)
	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		return models.SitePlan{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("stored site plan", slog.String("key", key))
	return s.assembler.CreateSitePlanObject(&raw), nil
}

// Get читает запись плана сайта из кеша и собирает план.
func (s *SitePlanService) Get(ctx context.Context, siteID int64) (models.SitePlan, error) {
	const op = "services.siteplan.Get"
	var raw models.RawPlan
	found, err := s.cache.Get(ctx, cacheKey(siteID), &raw)
	if err != nil {
		return models.SitePlan{}, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return models.SitePlan{}, fmt.Errorf("%s: site %d: %w", op, siteID, ErrPlanNotFound)
	}
	return s.assembler.CreateSitePlanObject(&raw), nil
}

// Remove удаляет запись плана сайта.
func (s *SitePlanService) Remove(ctx context.Context, siteID int64) error {
	const op = "services.siteplan.Remove"
	key := cacheKey(siteID)
	if err := s.cache.Invalidate(ctx, key); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("removed site plan", slog.String("key", key))
	return nil
}
