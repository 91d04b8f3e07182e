package eventbus

// Topics published by the entity repositories. Events carry no payload: they
// are pure invalidation signals and subscribers re-read authoritative state
// themselves.
const (
	TopicProductsUpdated = "products.updated"
	TopicAvatarsUpdated  = "avatars.updated"
	TopicAllDataUpdated  = "alldata.updated"
)

type subscriber struct {
	token    uint64
	callback func()
}

// Bus is a synchronous publish/subscribe register. Delivery happens on the
// emitter's turn of execution, in registration order. Emissions raised while
// a delivery is in progress are queued and flushed after the current delivery
// completes, so every subscriber observes a strictly ordered sequence of
// invalidations even when a callback triggers another write.
//
// Bus is an explicit service object: construct one at application start and
// pass it to every component that needs pub/sub. It is not safe for
// concurrent use on its own: emissions are serialized by the repositories'
// mutation lock, and subscriptions happen during startup or under that same
// lock's delivery.
type Bus struct {
	nextToken   uint64
	subscribers map[string][]subscriber
	delivering  bool
	pending     []string
}

func New() *Bus {
	return &Bus{subscribers: make(map[string][]subscriber)}
}

// Subscribe registers callback on topic and returns an unsubscribe function.
// Unsubscribing is idempotent and safe to call multiple times.
func (b *Bus) Subscribe(topic string, callback func()) (unsubscribe func()) {
	b.nextToken++
	token := b.nextToken
	b.subscribers[topic] = append(b.subscribers[topic], subscriber{token: token, callback: callback})
	return func() {
		subs := b.subscribers[topic]
		for i, sub := range subs {
			if sub.token == token {
				b.subscribers[topic] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers topic to every currently registered subscriber. Re-entrant
// emits are deferred until the in-progress delivery has visited all of its
// subscribers.
func (b *Bus) Emit(topic string) {
	b.pending = append(b.pending, topic)
	if b.delivering {
		return
	}
	b.delivering = true
	defer func() { b.delivering = false }()
	for len(b.pending) > 0 {
		next := b.pending[0]
		b.pending = b.pending[1:]
		// snapshot so unsubscribes during delivery cannot shift the walk
		subs := append([]subscriber(nil), b.subscribers[next]...)
		for _, sub := range subs {
			sub.callback()
		}
	}
}
