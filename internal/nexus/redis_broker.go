package nexus

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"waniyilo/models"
	"waniyilo/stores"
)

const (
	streamKey = "nexus:events"
	groupName = "nexus:group"

	// streamMaxLen bounds stream history with approximate trimming.
	streamMaxLen = 10000
	// reclaimIdle is how long a message may sit unacked before another
	// consumer claims it.
	reclaimIdle = 30 * time.Second
)

// RedisBroker fans events out across instances through a Redis Stream
// consumer group. Each instance reads the shared stream and dispatches
// to its local subscribers.
type RedisBroker struct {
	rdb          *redis.Client
	reg          *registry
	consumerName string
	cancel       context.CancelFunc
}

// NewRedisBroker connects, joins the consumer group and starts the
// consume loop.
func NewRedisBroker(ctx context.Context, addr, password string, dbIndex int) (*RedisBroker, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       dbIndex,
	})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("consumer-%s-%d", hostname, os.Getpid())

	// Create consumer group if it doesn't exist.
	err := rdb.XGroupCreateMkStream(ctx, streamKey, groupName, "0").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		log.Printf("consumer group create: %v", err)
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	b := &RedisBroker{
		rdb:          rdb,
		reg:          newRegistry(),
		consumerName: consumerName,
		cancel:       cancel,
	}
	go b.consumeLoop(loopCtx)
	return b, nil
}

// PublishGlobal adds a community message to the stream.
func (b *RedisBroker) PublishGlobal(ctx context.Context, msg models.NexusMessage) error {
	return b.publish(ctx, &Event{Kind: KindGlobal, Global: &msg})
}

// PublishPrivate adds a private message to the stream.
func (b *RedisBroker) PublishPrivate(ctx context.Context, msg models.PrivateMessage) error {
	return b.publish(ctx, &Event{Kind: KindPrivate, Private: &msg})
}

func (b *RedisBroker) publish(ctx context.Context, event *Event) error {
	data, err := MarshalEvent(event)
	if err != nil {
		return err
	}
	_, err = b.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: streamKey,
		Values: map[string]interface{}{"data": data},
		MaxLen: streamMaxLen,
		Approx: true,
	}).Result()
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// SubscribeGlobal registers a community-channel listener.
func (b *RedisBroker) SubscribeGlobal(cb func(models.NexusMessage)) stores.Subscription {
	return b.reg.addGlobal(cb)
}

// SubscribePrivate registers a listener for one matricule's inbox.
func (b *RedisBroker) SubscribePrivate(matricule string, cb func(models.PrivateMessage)) stores.Subscription {
	return b.reg.addPrivate(matricule, cb)
}

// Close stops the consume loop and releases the client.
func (b *RedisBroker) Close() {
	b.cancel()
	if err := b.rdb.Close(); err != nil {
		log.Printf("redis close: %v", err)
	}
}

func (b *RedisBroker) consumeLoop(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		streams, err := b.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    groupName,
			Consumer: b.consumerName,
			Streams:  []string{streamKey, ">"},
			Count:    100,
			Block:    time.Second,
		}).Result()

		if err != nil {
			if err == redis.Nil {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			time.Sleep(time.Second)
			continue
		}

		for _, stream := range streams {
			for _, message := range stream.Messages {
				if err := b.processMessage(message); err != nil {
					log.Printf("nexus message dropped: %v", err)
					continue
				}
				if err := b.rdb.XAck(ctx, streamKey, groupName, message.ID).Err(); err != nil {
					log.Printf("ack failed for %s: %v", message.ID, err)
				}
			}
		}

		b.reclaimPendingMessages(ctx)
	}
}

func (b *RedisBroker) processMessage(message redis.XMessage) error {
	data, ok := message.Values["data"].(string)
	if !ok {
		return fmt.Errorf("invalid message format: missing data field")
	}
	event, err := UnmarshalEvent(data)
	if err != nil {
		return err
	}
	switch event.Kind {
	case KindGlobal:
		b.reg.dispatchGlobal(*event.Global)
	case KindPrivate:
		b.reg.dispatchPrivate(*event.Private)
	}
	return nil
}

// reclaimPendingMessages claims messages another consumer read but
// never acked.
func (b *RedisBroker) reclaimPendingMessages(ctx context.Context) {
	pending, err := b.rdb.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: streamKey,
		Group:  groupName,
		Start:  "-",
		End:    "+",
		Count:  100,
	}).Result()
	if err != nil {
		return
	}

	for _, p := range pending {
		if p.Idle <= reclaimIdle {
			continue
		}
		claimed, err := b.rdb.XClaim(ctx, &redis.XClaimArgs{
			Stream:   streamKey,
			Group:    groupName,
			Consumer: b.consumerName,
			MinIdle:  reclaimIdle,
			Messages: []string{p.ID},
		}).Result()
		if err != nil {
			continue
		}
		for _, msg := range claimed {
			if err := b.processMessage(msg); err != nil {
				log.Printf("reclaimed message dropped: %v", err)
			}
			b.rdb.XAck(ctx, streamKey, groupName, msg.ID)
		}
	}
}
