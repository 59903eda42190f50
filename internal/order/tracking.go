package order

import (
	"time"

	"github.com/anthony-garcia-santos/techstorage/internal/types/order"
)

// StageInterval separates the synthetic timestamps of consecutive stages.
const StageInterval = 24 * time.Hour

type stageInfo struct {
	description string
	location    string
}

var stages = map[order.OrderStatus]stageInfo{
	order.StatusPending:    {"Order received", "São Paulo, SP"},
	order.StatusProcessing: {"Order being prepared", "Distribution Center - São Paulo, SP"},
	order.StatusShipped:    {"Order shipped", "In transit"},
	order.StatusDelivered:  {"Order delivered", "Delivery address"},
	order.StatusCancelled:  {"Order cancelled", ""},
}

func event(status order.OrderStatus, at time.Time) order.TrackingEvent {
	info := stages[status]
	return order.TrackingEvent{
		Status:      status,
		Description: info.description,
		Date:        at,
		Location:    info.location,
	}
}

// TrackingHistory rebuilds the events for an order that has reached status,
// one per stage from pending, each StageInterval after the previous one.
// The result depends only on its arguments.
func TrackingHistory(status order.OrderStatus, createdAt time.Time) []order.TrackingEvent {
	last := status.Stage()
	if last < 0 {
		last = 0
	}
	events := make([]order.TrackingEvent, 0, last+1)
	for i := 0; i <= last; i++ {
		events = append(events, event(order.Progression[i], createdAt.Add(time.Duration(i)*StageInterval)))
	}
	return events
}

// cancelledHistory keeps the progression reached before cancelling and
// closes it with a cancelled event, never stamped before the last stage.
func cancelledHistory(from order.OrderStatus, createdAt, at time.Time) []order.TrackingEvent {
	events := TrackingHistory(from, createdAt)
	if last := events[len(events)-1].Date; at.Before(last) {
		at = last
	}
	return append(events, event(order.StatusCancelled, at))
}
