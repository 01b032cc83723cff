package scheduler

import (
	"context"
	"time"

	"productcatalog/cache"
	"productcatalog/logger"
)

// StartScheduler 만료된 캐시 항목을 주기적으로 정리하는 스케줄러 시작.
// ctx가 취소되면 종료되며, 반환된 채널은 고루틴이 끝날 때 닫힙니다.
func StartScheduler(ctx context.Context, store cache.Store, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	logger.WithFields(map[string]interface{}{"interval": interval.String()}).Info("Scheduler started")

	// 서버 시작 시 즉시 한 번 실행
	PurgeExpiredCache(ctx, store)

	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info("Scheduler stopped")
				return
			case <-ticker.C:
				logger.Debug("Scheduler tick: Running PurgeExpiredCache")
				PurgeExpiredCache(ctx, store)
			}
		}
	}()

	return done
}

// PurgeExpiredCache 만료된 캐시 항목 삭제
func PurgeExpiredCache(ctx context.Context, store cache.Store) int64 {
	purged, err := store.PurgeExpired(ctx)
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"error": err.Error(),
		}).Error("Failed to purge expired cache entries")
		return 0
	}

	if purged > 0 {
		logger.WithFields(map[string]interface{}{
			"count": purged,
		}).Info("Expired cache entries purged")
	}
	return purged
}
