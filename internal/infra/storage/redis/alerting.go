package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/starwatch/internal/alerting"

	"github.com/redis/go-redis/v9"
)

// alertSent is the terminal value of an alert key.
const alertSent = "done"

// releaseClaimScript deletes a key only while it still holds an open claim,
// so a delivered alert is never released.
var releaseClaimScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == "" then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// alertKey builds "starwatch:alert:<txnHash>".
func alertKey(txnHash string) string {
	return fmt.Sprintf("%s:alert:%s", keyPrefix, txnHash)
}

// ClaimAlert reserves txnHash for ttl.
//
// A key holding "done" yields alerting.ErrAlreadyAlerted and any other live
// key yields alerting.ErrAlertInProgress.
func (c *client) ClaimAlert(ctx context.Context, txnHash string, ttl time.Duration) error {
	key := alertKey(txnHash)

	val, err := c.conn.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	if val == alertSent {
		return alerting.ErrAlreadyAlerted
	}

	ok, err := c.conn.SetNX(ctx, key, "", ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return alerting.ErrAlertInProgress
	}

	return nil
}

// MarkAlertSent makes the alert record permanent.
func (c *client) MarkAlertSent(ctx context.Context, txnHash string) error {
	return c.conn.Set(ctx, alertKey(txnHash), alertSent, 0).Err()
}

// ReleaseAlert drops an open claim so the transaction can be alerted again.
func (c *client) ReleaseAlert(ctx context.Context, txnHash string) error {
	return releaseClaimScript.Run(ctx, c.conn, []string{alertKey(txnHash)}).Err()
}

var _ alerting.AlertLedger = new(client)
