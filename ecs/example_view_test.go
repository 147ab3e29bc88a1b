package ecs_test

import (
	"fmt"

	"github.com/plus3/composia/ecs"
)

func ExampleNewView() {
	reg := ecs.New()

	for i := 0; i < 3; i++ {
		e := reg.Create()
		ecs.Add(reg, e, Position{X: float32(i), Y: 0})
		if i != 1 {
			ecs.Add(reg, e, Velocity{DX: 10, DY: 1})
		}
	}

	// A movement pass over every entity that has both components.
	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](reg)

	view.Each(func(_ ecs.Entity, row struct {
		*Position
		*Velocity
	}) {
		row.Position.X += row.Velocity.DX
		row.Position.Y += row.Velocity.DY
	})

	for e := range view.Entities() {
		p := ecs.Get[Position](reg, e)
		fmt.Printf("entity %d at %g,%g\n", e, p.X, p.Y)
	}

	// Output:
	// entity 0 at 10,1
	// entity 2 at 12,1
}

func ExampleView_optional() {
	reg := ecs.New()

	named := reg.Create()
	ecs.Add(reg, named, Position{X: 1})
	ecs.Add(reg, named, Name{Value: "scout"})

	anonymous := reg.Create()
	ecs.Add(reg, anonymous, Position{X: 2})

	type row struct {
		Pos   *Position
		Label *Name `ecs:"optional"`
	}

	for e, r := range ecs.NewView[row](reg).Iter() {
		if r.Label != nil {
			fmt.Printf("entity %d is %q\n", e, r.Label.Value)
		} else {
			fmt.Printf("entity %d is unnamed\n", e)
		}
	}

	// Output:
	// entity 0 is "scout"
	// entity 1 is unnamed
}
