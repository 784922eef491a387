package agents

import (
	"fmt"

	"github.com/zefrenchwan/stochkit.git/stochastic"
)

// PopulationUpdater implements stochastic.StateUpdater by dispatching a fired
// event's process index to the populationProcess that knows how to apply it.
// The engine never down-casts a stochastic.Process back to a populationProcess:
// this map is the one place that association lives.
type PopulationUpdater struct {
	byIndex map[int]populationProcess
}

// newPopulationUpdater returns an updater with no registered processes.
func newPopulationUpdater() *PopulationUpdater {
	return &PopulationUpdater{byIndex: make(map[int]populationProcess)}
}

// ApplyEvent implements stochastic.StateUpdater.
func (u *PopulationUpdater) ApplyEvent(event stochastic.Event) error {
	process, found := u.byIndex[event.Process().Index()]
	if !found {
		return fmt.Errorf("no population process registered for index %d", event.Process().Index())
	}
	return process.Apply()
}

// PopulationSystemBuilder pairs a stochastic.SystemBuilder with the PopulationUpdater
// that applies population arithmetic on firing, so scenario code never has to wire
// the two together by hand.
type PopulationSystemBuilder struct {
	builder *stochastic.SystemBuilder
	updater *PopulationUpdater
}

// NewPopulationSystemBuilder returns an empty builder.
func NewPopulationSystemBuilder() *PopulationSystemBuilder {
	return &PopulationSystemBuilder{
		builder: stochastic.NewSystemBuilder(),
		updater: newPopulationUpdater(),
	}
}

// NextIndex hands out the next process index, to be passed to a process constructor
// before calling AddProcess.
func (b *PopulationSystemBuilder) NextIndex() int {
	return b.builder.NextIndex()
}

// AddProcess registers p both with the engine-facing builder and the updater that
// will apply its firing semantics.
func (b *PopulationSystemBuilder) AddProcess(p populationProcess) error {
	if p == nil {
		return fmt.Errorf("cannot add a nil population process")
	} else if err := b.builder.AddProcess(p); err != nil {
		return err
	}

	b.updater.byIndex[p.Index()] = p
	return nil
}

// Build assembles the stochastic.System, wiring the dependency links and installing
// the population updater as its state-update hook.
func (b *PopulationSystemBuilder) Build(links []stochastic.DependencyLink) (*stochastic.System, error) {
	return b.builder.Build(links, b.updater)
}
