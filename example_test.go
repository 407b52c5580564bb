package eureka_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/wnf2018888/eureka"
	"github.com/wnf2018888/eureka/event"
)

// Instance is a registry entry whose identity is its ID; Status may change
// between events about the same instance.
type Instance struct {
	ID     string
	Status string
}

// ExamplePipeline demonstrates delineating and collapsing a raw change
// stream.
func ExamplePipeline() {
	cmp := func(a, b Instance) int {
		return strings.Compare(a.ID, b.ID)
	}

	handler := eureka.HandlerFunc[Instance](func(_ context.Context, batch []event.Event[Instance]) error {
		for _, ev := range batch {
			fmt.Printf("%s %s\n", ev.Kind(), ev.Data().ID)
		}
		return nil
	})

	p, err := eureka.New(cmp, handler)
	if err != nil {
		fmt.Printf("Failed to create pipeline: %v\n", err)
		return
	}
	defer p.Close()

	ctx := context.Background()
	events := []event.Event[Instance]{
		event.NewBufferStart[Instance](),
		event.NewAdd(Instance{ID: "web-1", Status: "starting"}),
		event.NewAdd(Instance{ID: "web-2", Status: "up"}),
		event.NewModify(Instance{ID: "web-1", Status: "up"}),
		event.NewDelete(Instance{ID: "web-2"}),
		event.NewBufferEnd[Instance](),
	}
	for _, ev := range events {
		if err := p.Handle(ctx, ev); err != nil {
			fmt.Printf("Failed to handle event: %v\n", err)
			return
		}
	}

	// Output:
	// Add web-1
	// Delete web-2
}

// ExampleNewSnapshotPipeline demonstrates materializing running snapshots
// from a change stream.
func ExampleNewSnapshotPipeline() {
	cmp := func(a, b Instance) int {
		return strings.Compare(a.ID, b.ID)
	}

	handler := eureka.SnapshotHandlerFunc[Instance](func(_ context.Context, snap []Instance) error {
		ids := make([]string, 0, len(snap))
		for _, inst := range snap {
			ids = append(ids, inst.ID)
		}
		fmt.Printf("live: [%s]\n", strings.Join(ids, " "))
		return nil
	})

	p, err := eureka.NewSnapshotPipeline(cmp, handler)
	if err != nil {
		fmt.Printf("Failed to create pipeline: %v\n", err)
		return
	}
	defer p.Close()

	ctx := context.Background()
	events := []event.Event[Instance]{
		event.NewAdd(Instance{ID: "web-1"}),
		event.NewAdd(Instance{ID: "web-2"}),
		event.NewDelete(Instance{ID: "web-1"}),
	}
	for _, ev := range events {
		if err := p.Handle(ctx, ev); err != nil {
			fmt.Printf("Failed to handle event: %v\n", err)
			return
		}
	}

	// Output:
	// live: [web-1]
	// live: [web-1 web-2]
	// live: [web-2]
}
