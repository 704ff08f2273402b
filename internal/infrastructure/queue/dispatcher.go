package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/goodmart/ecommerce-api/internal/api/metrics"
	"github.com/goodmart/ecommerce-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes rating refreshes to a fixed set of workers using
// consistent hashing on the product id, so refreshes for the same product
// never race each other.
type Dispatcher struct {
	workers []chan int64
	service ports.RatingService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.RatingService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan int64, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan int64, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a product to the worker responsible for it. The send never
// blocks: when the worker's buffer is full, which also covers workers that
// already stopped on shutdown, the refresh is dropped and counted.
func (d *Dispatcher) Enqueue(productID int64) {
	i := d.shardIndex(productID)
	select {
	case d.workers[i] <- productID:
		metrics.RatingQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	default:
		metrics.RatingRefreshTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().
			Int64("product_id", productID).
			Int("worker_id", i).
			Msg("rating refresh dropped, worker queue full")
	}
}

// shardIndex maps a product id deterministically to a worker index.
func (d *Dispatcher) shardIndex(productID int64) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(productID, 10)))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan int64) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case productID, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Refresh(ctx, productID); err != nil {
				metrics.RatingRefreshTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Int64("product_id", productID).
					Int("worker_id", id).
					Msg("rating refresh failed")
			} else {
				metrics.RatingRefreshTotal.WithLabelValues("ok").Inc()
			}
			metrics.RatingQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
		}
	}
}
