package store

import (
	"context"
	"time"

	"artisan-storefront/internal/app/metrics"
	"artisan-storefront/internal/domain/notify"
)

// notify appends a toast and schedules its removal. Must run on the loop.
func (s *Store) notify(st *State, message string, severity notify.Severity) notify.Notification {
	n := st.Notifications.Add(s.now(), message, severity)
	metrics.RecordNotification(string(n.Type))
	s.publish(notify.Event{Kind: notify.EventAdded, Notification: n})

	id := n.ID
	time.AfterFunc(s.ttl, func() {
		s.post(func(st *State) {
			if gone, ok := st.Notifications.Remove(id); ok {
				s.publish(notify.Event{Kind: notify.EventExpired, Notification: gone})
			}
		})
	})
	return n
}

func (s *Store) publish(ev notify.Event) {
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
			s.log.WithField("notification", ev.Notification.ID).Warn("dropping notification event for slow subscriber")
		}
	}
}

// Notifications lists the toasts that have not expired yet.
func (s *Store) Notifications(ctx context.Context) ([]notify.Notification, error) {
	var out []notify.Notification
	err := s.do(ctx, func(st *State) {
		out = st.Notifications.Items()
	})
	return out, err
}

// Subscribe streams notification events until cancel is called or the store closes.
func (s *Store) Subscribe(ctx context.Context) (<-chan notify.Event, func(), error) {
	ch := make(chan notify.Event, 16)
	var id int
	err := s.do(ctx, func(*State) {
		id = s.nextSub
		s.nextSub++
		s.subs[id] = ch
	})
	if err != nil {
		return nil, nil, err
	}

	cancel := func() {
		s.post(func(*State) {
			if sub, ok := s.subs[id]; ok {
				close(sub)
				delete(s.subs, id)
			}
		})
	}
	return ch, cancel, nil
}
