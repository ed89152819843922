package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"match-gateway/contract"
	"match-gateway/domain"
	"match-gateway/domain/event"

	"github.com/samber/lo"
)

// Presence fans events out to a user's chat peers. Delivery order across
// peers is unspecified; each peer receives an independent stream.
type Presence struct {
	log      *slog.Logger
	registry contract.IRegistry
}

func NewPresence(log *slog.Logger, registry contract.IRegistry) *Presence {
	return &Presence{log: log, registry: registry}
}

// NotifyPeers delivers the envelope to every peer currently registered,
// never to the originating user itself.
func (p *Presence) NotifyPeers(ctx context.Context, origin domain.UserID, peers []domain.UserID, e event.Envelope) {
	snapshot := p.registry.Snapshot()
	for _, peer := range peers {
		if peer == origin {
			continue
		}
		sink, ok := snapshot[peer]
		if !ok {
			continue
		}
		if err := sink.Deliver(ctx, e); err != nil {
			p.log.Warn(fmt.Sprintf("Failed to deliver %s to user %d", e.Event, peer), "err", err)
		}
	}
}

// OnlineSnapshot returns the subset of peers currently registered.
func (p *Presence) OnlineSnapshot(peers []domain.UserID) []domain.UserID {
	snapshot := p.registry.Snapshot()
	return lo.Filter(peers, func(peer domain.UserID, _ int) bool {
		_, ok := snapshot[peer]
		return ok
	})
}
