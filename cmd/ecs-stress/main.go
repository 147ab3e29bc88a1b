package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/composia/ecs"
)

// Component types exercised by the stress loop
type Position struct{ X, Y float32 }
type Velocity struct{ DX, DY float32 }
type Health struct{ Current, Max int }
type Lifetime struct{ Remaining float32 }
type Team struct{ ID int }
type Damage struct{ Amount int }
type Shield struct{ Strength float32 }
type Score struct{ Points int64 }

const componentTypeCount = 8

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	churn := flag.Int("churn", 100, "Entities destroyed and recreated per frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting registry stress test...")

	reg := ecs.New()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// 1. Populate the registry with entities carrying 1 to 5 random components
	log.Printf("Populating registry with %d entities...\n", *entityCount)
	entities := make([]ecs.Entity, 0, *entityCount)
	for i := 0; i < *entityCount; i++ {
		entities = append(entities, spawnRandomEntity(reg, rng))
	}
	log.Println("Population complete.")

	movers := ecs.NewView[struct {
		*Position
		*Velocity
	}](reg)
	expiring := ecs.NewView[struct {
		*Lifetime
	}](reg)

	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		ComponentTypes: componentTypeCount,
		ChurnPerFrame:  *churn,
		GCPauseMetrics: *gcPauseMetrics,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	// 2. Run the churn loop
	log.Printf("Running churn loop for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalFrames int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			frameStart := time.Now()

			// movement pass over the Position+Velocity intersection
			movers.Each(func(_ ecs.Entity, row struct {
				*Position
				*Velocity
			}) {
				row.Position.X += row.Velocity.DX
				row.Position.Y += row.Velocity.DY
			})

			// countdown pass, queuing destruction through a command buffer
			cmd := ecs.NewCommands()
			expiring.Each(func(e ecs.Entity, row struct {
				*Lifetime
			}) {
				row.Lifetime.Remaining -= 1.0 / 60.0
				if row.Lifetime.Remaining <= 0 {
					cmd.Destroy(e)
				}
			})
			cmd.Flush(reg)

			// structural churn: recycle a slice of the population
			for i := 0; i < *churn && len(entities) > 0; i++ {
				idx := rng.Intn(len(entities))
				reg.Destroy(entities[idx])
				entities[idx] = spawnRandomEntity(reg, rng)
			}

			report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
			totalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = totalFrames
	report.FinalEntities = reg.EntityCount()
	report.FinalPools = reg.PoolCount()
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Churn loop finished.")

	// 3. Generate report to console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

func spawnRandomEntity(reg *ecs.Registry, rng *rand.Rand) ecs.Entity {
	e := reg.Create()

	ecs.Add(reg, e, Position{X: rng.Float32() * 1000, Y: rng.Float32() * 1000})

	if rng.Intn(2) == 0 {
		ecs.Add(reg, e, Velocity{DX: rng.Float32()*2 - 1, DY: rng.Float32()*2 - 1})
	}
	if rng.Intn(3) == 0 {
		ecs.Add(reg, e, Health{Current: rng.Intn(100), Max: 100})
	}
	if rng.Intn(4) == 0 {
		ecs.Add(reg, e, Lifetime{Remaining: rng.Float32() * 30})
	}
	if rng.Intn(4) == 0 {
		ecs.Add(reg, e, Team{ID: rng.Intn(4)})
	}
	if rng.Intn(5) == 0 {
		ecs.Add(reg, e, Damage{Amount: rng.Intn(25)})
	}
	if rng.Intn(5) == 0 {
		ecs.Add(reg, e, Shield{Strength: rng.Float32() * 50})
	}
	if rng.Intn(6) == 0 {
		ecs.Add(reg, e, Score{Points: int64(rng.Intn(10000))})
	}

	return e
}
