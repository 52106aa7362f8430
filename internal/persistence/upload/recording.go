package upload

import (
	"context"
	"log"
	"time"

	"missionloop.ai/internal/lifecycle"
)

const maxAttempts = 4

// Recording uploads one finished recording, retrying with a growing backoff.
// It returns the object key the file was stored under.
func (c *Client) Recording(ctx context.Context, localPath string, sleep lifecycle.SleepFunc, logger *log.Logger) (string, error) {
	if sleep == nil {
		sleep = lifecycle.Sleep
	}
	key := c.Key(localPath)
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		actx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		err := c.PutFile(actx, key, localPath)
		cancel()
		if err == nil {
			if logger != nil {
				logger.Printf("uploaded %s to %s/%s", localPath, c.bucket, key)
			}
			return key, nil
		}
		lastErr = err
		if logger != nil {
			logger.Printf("warn: upload attempt %d/%d: %v", attempt, maxAttempts, err)
		}
		if attempt < maxAttempts {
			if err := sleep(ctx, time.Duration(attempt*attempt)*200*time.Millisecond); err != nil {
				return key, err
			}
		}
	}
	return key, lastErr
}
