package ga

import (
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/evocore/entity"
)

// PopulationHost is what a Population's migration phase needs from its
// owning host: whether migration is currently possible, and whether an
// outbound entity is accepted into the shared migration queue (spec.md
// §4.9). Population.Evolve accepts nil to run a single island with no
// migration.
type PopulationHost interface {
	CanMigrate() bool
	Offer(sourceIslandID uuid.UUID, e *entity.Entity) bool
}

// hostMigrant is one entry in a host's shared migration queue: a migrating
// entity tagged with the island and host it departed from (spec.md §3:
// "a shared migration queue of (sourceHostId, migratingEntity) pairs").
type hostMigrant struct {
	sourceHostID   uuid.UUID
	sourceIslandID uuid.UUID
	entity         *entity.Entity
}

// Host owns a map islandId -> Population and dispatches the shared
// migration queue inline, on the caller's goroutine (spec.md §3). It is not
// safe for concurrent use — callers driving multiple islands' Evolve from
// separate goroutines should use AsyncHost instead.
type Host struct {
	hostID  uuid.UUID
	islands map[uuid.UUID]*Population
	order   []uuid.UUID // insertion order, for deterministic destination choice
	queue   []hostMigrant
}

// NewHost constructs an empty Host with a fresh id.
func NewHost() *Host {
	return &Host{hostID: uuid.New(), islands: make(map[uuid.UUID]*Population)}
}

// HostID returns this host's stable identifier.
func (h *Host) HostID() uuid.UUID { return h.hostID }

// AddIsland registers pop under its own islandId.
func (h *Host) AddIsland(pop *Population) {
	if _, exists := h.islands[pop.IslandID()]; !exists {
		h.order = append(h.order, pop.IslandID())
	}
	h.islands[pop.IslandID()] = pop
}

// Island returns the population registered under id, or ErrUnknownIsland.
func (h *Host) Island(id uuid.UUID) (*Population, error) {
	pop, ok := h.islands[id]
	if !ok {
		return nil, ErrUnknownIsland
	}
	return pop, nil
}

// CanMigrate reports whether at least two islands are registered.
func (h *Host) CanMigrate() bool { return len(h.islands) > 1 }

// Offer enqueues a migrating entity and dispatches the queue inline. Always
// returns true: the queue has no capacity limit (spec.md describes it as
// lock-free/unbounded at the host level, distinct from the bounded
// free-entity pool).
func (h *Host) Offer(sourceIslandID uuid.UUID, e *entity.Entity) bool {
	h.queue = append(h.queue, hostMigrant{sourceHostID: h.hostID, sourceIslandID: sourceIslandID, entity: e})
	h.dispatch()
	return true
}

// dispatch drains the queue, routing each migrant to the first registered
// island other than its source (spec.md §4.9: "push to any population whose
// islandId ≠ entity.islandId"; deterministic insertion-order choice makes
// the two-island case in spec.md §8 property 12 route predictably).
func (h *Host) dispatch() {
	for len(h.queue) > 0 {
		m := h.queue[0]
		h.queue = h.queue[1:]
		if m.sourceHostID != h.hostID {
			continue // spec.md §3: cross-host migrants are silently discarded
		}
		for _, id := range h.order {
			if id == m.sourceIslandID {
				continue
			}
			h.islands[id].EnqueueInbound(m.sourceIslandID, m.entity)
			break
		}
	}
}

// AsyncHost wraps Host with a mutex over the island map and a background
// goroutine draining the migration queue, so multiple Populations may call
// Offer concurrently from their own Evolve goroutines (spec.md §5: "the
// host's population map is guarded by a mutex in the async host variant").
type AsyncHost struct {
	mu       sync.Mutex
	host     *Host
	incoming chan hostMigrant
	stop     chan struct{}
	wg       sync.WaitGroup
}

// NewAsyncHost constructs an AsyncHost and starts its dispatcher goroutine.
// queueCapacity bounds the incoming channel; Offer returns false if full.
func NewAsyncHost(queueCapacity int) *AsyncHost {
	ah := &AsyncHost{
		host:     NewHost(),
		incoming: make(chan hostMigrant, queueCapacity),
		stop:     make(chan struct{}),
	}
	ah.wg.Add(1)
	go ah.run()
	return ah
}

func (ah *AsyncHost) run() {
	defer ah.wg.Done()
	for {
		select {
		case m := <-ah.incoming:
			ah.mu.Lock()
			ah.host.queue = append(ah.host.queue, m)
			ah.host.dispatch()
			ah.mu.Unlock()
		case <-ah.stop:
			return
		}
	}
}

// HostID returns this host's stable identifier.
func (ah *AsyncHost) HostID() uuid.UUID { return ah.host.hostID }

// AddIsland registers pop under its own islandId.
func (ah *AsyncHost) AddIsland(pop *Population) {
	ah.mu.Lock()
	defer ah.mu.Unlock()
	ah.host.AddIsland(pop)
}

// CanMigrate reports whether at least two islands are registered.
func (ah *AsyncHost) CanMigrate() bool {
	ah.mu.Lock()
	defer ah.mu.Unlock()
	return ah.host.CanMigrate()
}

// Offer submits a migrating entity to the dispatcher goroutine. Returns
// false without blocking if the incoming channel is full.
func (ah *AsyncHost) Offer(sourceIslandID uuid.UUID, e *entity.Entity) bool {
	select {
	case ah.incoming <- hostMigrant{sourceHostID: ah.host.hostID, sourceIslandID: sourceIslandID, entity: e}:
		return true
	default:
		return false
	}
}

// Close stops the dispatcher goroutine and waits for it to exit.
func (ah *AsyncHost) Close() {
	close(ah.stop)
	ah.wg.Wait()
}
