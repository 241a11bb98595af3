package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"talent-match/internal/config"
	dbpostgres "talent-match/internal/database/postgres"
	"talent-match/internal/domain/extraction"
	"talent-match/internal/domain/geo"
	"talent-match/internal/domain/matching"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/infrastructure/geocode"
	pgstore "talent-match/internal/infrastructure/persistence/postgres"
	"talent-match/internal/infrastructure/sheets"
	"talent-match/internal/infrastructure/workbook"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"
)

// closableStore is what every record-store backend provides beyond the
// repository contract.
type closableStore interface {
	repository.RecordStore
	Close() error
}

// Container constructs and owns every service the delivery layer depends on.
type Container struct {
	Config config.Config
	Logger *log.Logger

	Store repository.RecordStore
	Cache *cache.Redis

	Matching     usecase.MatchingUsecase
	JobList      usecase.JobListUsecase
	Registration usecase.RegistrationUsecase
	StoreStatus  usecase.StoreStatusUsecase

	store closableStore
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	store, err := newRecordStore(cfg, logger)
	if err != nil {
		_ = redisCache.Close()
		return nil, err
	}

	// Geocoding stack: Nominatim behind a coordinate cache behind the soft
	// failure semantics of the scorer.
	geocoder := geocode.NewCached(geocode.NewNominatim(cfg.Geocoder), redisCache)
	locations := geo.NewScorer(geocoder, logger)

	// The extractor runs in fallback mode; an EntityTagger can be plugged in
	// here when one is available.
	extractor := extraction.NewExtractor(nil)
	builder := matching.NewFeatureBuilder(extractor)
	engine := matching.NewEngine(locations, matching.DefaultWeights())

	c := &Container{
		Config:       cfg,
		Logger:       logger,
		Store:        store,
		Cache:        redisCache,
		Matching:     usecase.NewMatchingUsecase(store, builder, engine, redisCache, cfg.Matching.Workers, cfg.Geocoder.RPS, logger),
		JobList:      usecase.NewJobListUsecase(store, logger),
		Registration: usecase.NewRegistrationUsecase(store, redisCache, logger),
		StoreStatus:  usecase.NewStoreStatusUsecase(store),
		store:        store,
	}
	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var firstErr error
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			firstErr = err
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func newRecordStore(cfg config.Config, logger *log.Logger) (closableStore, error) {
	switch cfg.RecordStore.Backend {
	case config.BackendSheets:
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return sheets.NewStore(ctx, cfg.RecordStore)
	case config.BackendWorkbook:
		logger.Printf("[Store] using local workbook backend: %s", cfg.RecordStore.WorkbookPath)
		return workbook.NewStore(cfg.RecordStore.WorkbookPath), nil
	case config.BackendPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return pgstore.NewStore(db), nil
	default:
		return nil, fmt.Errorf("unknown record store backend: %s", cfg.RecordStore.Backend)
	}
}
